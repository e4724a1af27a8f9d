package common

import (
	"encoding/hex"
	"math/big"
)

// FromHex returns the bytes represented by the hexadecimal string s.
// s may be prefixed with "0x".
func FromHex(s string) []byte {
	if has0xPrefix(s) {
		s = s[2:]
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	return Hex2Bytes(s)
}

// Hex2Bytes returns the bytes represented by the hexadecimal string str.
func Hex2Bytes(str string) []byte {
	h, _ := hex.DecodeString(str)
	return h
}

// ToHex returns the hex representation of b, prefixed with "0x".
func ToHex(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

// LeftPadBytes zero-pads slice to the left up to length l.
func LeftPadBytes(slice []byte, l int) []byte {
	if l <= len(slice) {
		return slice
	}
	padded := make([]byte, l)
	copy(padded[l-len(slice):], slice)
	return padded
}

// GetData returns a slice from the data based on the start and size and pads
// up to size with zero's. This function is overflow safe.
func GetData(data []byte, start, size uint64) []byte {
	length := uint64(len(data))
	if start > length {
		start = length
	}
	end := start + size
	if end > length {
		end = length
	}
	return RightPadBytes(data[start:end], int(size))
}

// RightPadBytes zero-pads slice to the right up to length l.
func RightPadBytes(slice []byte, l int) []byte {
	if l <= len(slice) {
		return slice
	}
	padded := make([]byte, l)
	copy(padded, slice)
	return padded
}

// GetBigInt interprets a 'size' length big-endian slice at 'start' as a big integer.
func GetBigInt(data []byte, start, size uint64) *big.Int {
	return new(big.Int).SetBytes(GetData(data, start, size))
}

// GetUint64 interprets a 'size' length slice as a uint64,
// reporting whether the value overflows.
func GetUint64(data []byte, start, size uint64) (uint64, bool) {
	v := GetBigInt(data, start, size)
	return v.Uint64(), !v.IsUint64()
}
