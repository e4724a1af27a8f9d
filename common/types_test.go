package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddress(t *testing.T) {
	addr := HexToAddress("0x1111111111111111111111111111111111111111")
	assert.Equal(t, "0x1111111111111111111111111111111111111111", addr.LowerHex())
	assert.False(t, addr.IsZero())
	assert.True(t, (Address{}).IsZero())

	// oversized input keeps the low bytes
	long := HexToAddress("0xff1111111111111111111111111111111111111111")
	assert.Equal(t, "0x1111111111111111111111111111111111111111", long.LowerHex())
}

func TestIsHexAddress(t *testing.T) {
	assert.True(t, IsHexAddress("0x1111111111111111111111111111111111111111"))
	assert.True(t, IsHexAddress("0xAbC1111111111111111111111111111111111111"))
	// the 0x prefix is optional
	assert.True(t, IsHexAddress("1111111111111111111111111111111111111111"))
	assert.False(t, IsHexAddress("0x11"))
	assert.False(t, IsHexAddress("0xzz11111111111111111111111111111111111111"))
	assert.False(t, IsHexAddress(""))
}

func TestIsZeroAddress(t *testing.T) {
	assert.True(t, IsZeroAddress("0x0000000000000000000000000000000000000000"))
	assert.False(t, IsZeroAddress("0x0000000000000000000000000000000000000001"))
	assert.False(t, IsZeroAddress("junk"))
}

func TestSameAddress(t *testing.T) {
	assert.True(t, SameAddress(
		"0xABCDEF1234567890abcdef1234567890ABCDEF12",
		"0xabcdef1234567890abcdef1234567890abcdef12"))
	assert.True(t, SameAddress(
		"abcdef1234567890abcdef1234567890abcdef12",
		"0xABCDEF1234567890abcdef1234567890ABCDEF12"))
	assert.False(t, SameAddress(
		"0x1111111111111111111111111111111111111111",
		"0x2222222222222222222222222222222222222222"))
}

func TestFuncSelector(t *testing.T) {
	assert.Equal(t, "0x06fdde03", ToHex(FuncSelector("name()")))
	assert.Equal(t, "0xa9059cbb", ToHex(FuncSelector("transfer(address,uint256)")))
}

func TestGetBigIntFromStr(t *testing.T) {
	bi, err := GetBigIntFromStr("12345")
	assert.NoError(t, err)
	assert.Equal(t, int64(12345), bi.Int64())

	bi, err = GetBigIntFromStr("0xff")
	assert.NoError(t, err)
	assert.Equal(t, int64(255), bi.Int64())

	_, err = GetBigIntFromStr("junk")
	assert.Error(t, err)
}

func TestGetDataPadding(t *testing.T) {
	data := []byte{0x01, 0x02}
	padded := GetData(data, 0, 32)
	assert.Len(t, padded, 32)
	assert.Equal(t, byte(0x01), padded[0])

	// reads beyond the end are zero filled, never panic
	padded = GetData(data, 100, 32)
	assert.Equal(t, make([]byte, 32), padded)
}
