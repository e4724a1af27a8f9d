package chains

import (
	"math/big"

	"github.com/3dpass/bridge-core/common"
	"github.com/3dpass/bridge-core/common/hexutil"
)

const latestBlock = "latest"

// CallGetString call a no-argument method returning a string
func CallGetString(c Caller, networkKey, contract string, selector []byte) (string, error) {
	result, err := c.CallContract(networkKey, contract, hexutil.Bytes(selector), latestBlock)
	if err != nil {
		return "", err
	}
	return ParseStringInData(common.FromHex(result), 0)
}

// CallGetAddress call a no-argument method returning an address
func CallGetAddress(c Caller, networkKey, contract string, selector []byte) (common.Address, error) {
	result, err := c.CallContract(networkKey, contract, hexutil.Bytes(selector), latestBlock)
	if err != nil {
		return common.Address{}, err
	}
	return ParseAddressInData(common.FromHex(result), 0)
}

// CallGetBigInt call a no-argument method returning an unsigned integer
func CallGetBigInt(c Caller, networkKey, contract string, selector []byte) (*big.Int, error) {
	result, err := c.CallContract(networkKey, contract, hexutil.Bytes(selector), latestBlock)
	if err != nil {
		return nil, err
	}
	return ParseBigIntInData(common.FromHex(result), 0)
}

// CallGetHash call a no-argument method returning a 32-byte word
func CallGetHash(c Caller, networkKey, contract string, selector []byte) (common.Hash, error) {
	result, err := c.CallContract(networkKey, contract, hexutil.Bytes(selector), latestBlock)
	if err != nil {
		return common.Hash{}, err
	}
	return ParseHashInData(common.FromHex(result), 0)
}

// CallGetAddressSlice call a no-argument method returning address[]
func CallGetAddressSlice(c Caller, networkKey, contract string, selector []byte) ([]string, error) {
	result, err := c.CallContract(networkKey, contract, hexutil.Bytes(selector), latestBlock)
	if err != nil {
		return nil, err
	}
	return ParseAddressSliceInData(common.FromHex(result), 0)
}

// CallWithArgs call a method with packed arguments, returning raw return data
func CallWithArgs(c Caller, networkKey, contract string, selector []byte, args ...interface{}) ([]byte, error) {
	data := PackDataWithSelector(selector, args...)
	result, err := c.CallContract(networkKey, contract, hexutil.Bytes(data), latestBlock)
	if err != nil {
		return nil, err
	}
	return common.FromHex(result), nil
}
