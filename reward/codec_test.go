package reward

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeExact(t *testing.T) {
	cases := []struct {
		value    string
		decimals uint8
		want     int64
	}{
		{"1", 12, 1000000000000},
		{"0.5", 6, 500000},
		{"0", 6, 0},
		{"123.456789", 6, 123456789},
		// digits beyond the precision truncate toward zero
		{"0.0000019", 6, 1},
		{"1.9999999", 6, 1999999},
		{" 42 ", 0, 42},
	}
	for _, c := range cases {
		amount, err := Encode(c.value, c.decimals)
		require.NoError(t, err, "value %q", c.value)
		assert.Equal(t, c.want, amount.Magnitude, "value %q", c.value)
		assert.False(t, amount.WasCapped, "value %q", c.value)
		assert.Equal(t, MaxSafeMagnitude, amount.MaxSafe)
	}
}

func TestEncodeCapsAtMaxSafe(t *testing.T) {
	// the magnitude one above the bound caps to the bound exactly
	amount, err := Encode("9007199254740992", 0)
	require.NoError(t, err)
	assert.Equal(t, MaxSafeMagnitude, amount.Magnitude)
	assert.True(t, amount.WasCapped)

	// the bound itself is representable and not capped
	amount, err = Encode("9007199254740991", 0)
	require.NoError(t, err)
	assert.Equal(t, MaxSafeMagnitude, amount.Magnitude)
	assert.False(t, amount.WasCapped)

	// far overflow still caps exactly, never wraps
	amount, err = Encode("1000000000000", 18)
	require.NoError(t, err)
	assert.Equal(t, MaxSafeMagnitude, amount.Magnitude)
	assert.True(t, amount.WasCapped)

	// one whole unit of an 18-decimals token already exceeds the bound
	amount, err = Encode("1", 18)
	require.NoError(t, err)
	assert.Equal(t, MaxSafeMagnitude, amount.Magnitude)
	assert.True(t, amount.WasCapped)
}

func TestEncodeRejectsNegative(t *testing.T) {
	_, err := Encode("-1", 6)
	assert.Equal(t, ErrNegativeValue, err)

	// the sign violation wins over the range check
	_, err = Encode("-9007199254740992", 0)
	assert.Equal(t, ErrNegativeValue, err)

	// a negative fraction that truncates to zero is still negative input
	_, err = Encode("-0.0000001", 6)
	assert.Equal(t, ErrNegativeValue, err)
}

func TestEncodeRejectsGarbage(t *testing.T) {
	for _, value := range []string{"", "abc", "1.2.3", "1e", "--1"} {
		_, err := Encode(value, 6)
		assert.Equal(t, ErrBadDecimalString, err, "value %q", value)
	}
}

func TestEncodeSigned(t *testing.T) {
	amount, err := EncodeSigned("-0.5", 6)
	require.NoError(t, err)
	assert.Equal(t, int64(-500000), amount.Magnitude)
	assert.False(t, amount.WasCapped)

	// positive overflow caps, negative overflow is rejected
	amount, err = EncodeSigned("9007199254740992", 0)
	require.NoError(t, err)
	assert.True(t, amount.WasCapped)

	_, err = EncodeSigned("-9007199254740992", 0)
	assert.Equal(t, ErrOutOfRange, err)
}

func TestDecodeRoundTrip(t *testing.T) {
	cases := []struct {
		magnitude int64
		decimals  uint8
		want      string
	}{
		{1000000000000000000, 18, "1"},
		{500000, 6, "0.5"},
		{123456789, 6, "123.456789"},
		{0, 6, "0"},
		{-500000, 6, "-0.5"},
		{MaxSafeMagnitude, 0, "9007199254740991"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Decode(c.magnitude, c.decimals))
	}

	// every in-range encoding decodes back to an equal value
	amount, err := Encode("123.456789", 6)
	require.NoError(t, err)
	assert.Equal(t, "123.456789", Decode(amount.Magnitude, amount.Decimals))
}

func TestDisplay(t *testing.T) {
	cases := []struct {
		magnitude int64
		decimals  uint8
		want      string
	}{
		{1500000, 6, "1.5"},
		{1000000, 6, "1"},
		{0, 6, "0"},
		{-1500000, 6, "-1.5"},
		// more fractional digits than the display precision round away
		{1234567891234567891, 18, "1.234568"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Display(c.magnitude, c.decimals))
	}
}
