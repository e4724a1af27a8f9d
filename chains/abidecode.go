package chains

import (
	"errors"
	"math/big"

	"github.com/3dpass/bridge-core/common"
)

// ErrParseDataError parse error of abi encoded return data
var ErrParseDataError = errors.New("parse data error")

// ParseStringInData parse a dynamic string at word position pos
func ParseStringInData(data []byte, pos uint64) (string, error) {
	offset, overflow := common.GetUint64(data, pos, 32)
	if overflow {
		return "", ErrParseDataError
	}
	length, overflow := common.GetUint64(data, offset, 32)
	if overflow {
		return "", ErrParseDataError
	}
	if uint64(len(data)) < offset+32+length {
		return "", ErrParseDataError
	}
	return string(common.GetData(data, offset+32, length)), nil
}

// ParseAddressInData parse an address word at position pos
func ParseAddressInData(data []byte, pos uint64) (common.Address, error) {
	if uint64(len(data)) < pos+32 {
		return common.Address{}, ErrParseDataError
	}
	return common.BytesToAddress(common.GetData(data, pos, 32)), nil
}

// ParseBigIntInData parse an unsigned integer word at position pos
func ParseBigIntInData(data []byte, pos uint64) (*big.Int, error) {
	if uint64(len(data)) < pos+32 {
		return nil, ErrParseDataError
	}
	return common.GetBigInt(data, pos, 32), nil
}

// ParseHashInData parse a 32-byte word at position pos
func ParseHashInData(data []byte, pos uint64) (common.Hash, error) {
	if uint64(len(data)) < pos+32 {
		return common.Hash{}, ErrParseDataError
	}
	return common.BytesToHash(common.GetData(data, pos, 32)), nil
}

// ParseAddressSliceInData parse a dynamic address array at word position pos
func ParseAddressSliceInData(data []byte, pos uint64) ([]string, error) {
	offset, overflow := common.GetUint64(data, pos, 32)
	if overflow {
		return nil, ErrParseDataError
	}
	length, overflow := common.GetUint64(data, offset, 32)
	if overflow {
		return nil, ErrParseDataError
	}
	offset += 32
	if uint64(len(data)) < offset+length*32 {
		return nil, ErrParseDataError
	}
	addresses := make([]string, length)
	for i := uint64(0); i < length; i++ {
		addresses[i] = common.BytesToAddress(common.GetData(data, offset, 32)).LowerHex()
		offset += 32
	}
	return addresses, nil
}
