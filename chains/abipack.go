package chains

import (
	"fmt"
	"math/big"

	"github.com/3dpass/bridge-core/common"
)

// PackDataWithSelector pack calldata with a 4-byte method selector
func PackDataWithSelector(selector []byte, args ...interface{}) []byte {
	packData := PackData(args...)

	bs := make([]byte, 4+len(packData))

	copy(bs[:4], selector)
	copy(bs[4:], packData)

	return bs
}

// PackData pack arguments into 32-byte words
func PackData(args ...interface{}) []byte {
	lenArgs := len(args)
	bs := make([]byte, lenArgs*32)
	for i, arg := range args {
		switch v := arg.(type) {
		case common.Hash:
			copy(bs[i*32:], v.Bytes())
		case common.Address:
			copy(bs[i*32:], v.Hash().Bytes())
		case *big.Int:
			copy(bs[i*32:(i+1)*32], packBigInt(v))
		case string:
			offset := big.NewInt(int64(len(bs)))
			copy(bs[i*32:], packBigInt(offset))
			bs = append(bs, packString(v)...)
		case uint64:
			copy(bs[i*32:], packBigInt(new(big.Int).SetUint64(v)))
		case int64:
			copy(bs[i*32:], packBigInt(big.NewInt(v)))
		case int:
			copy(bs[i*32:], packBigInt(big.NewInt(int64(v))))
		default:
			panic(fmt.Sprintf("unsupported to pack %v (%T)", v, v))
		}
	}
	return bs
}

func packBigInt(bi *big.Int) []byte {
	return common.LeftPadBytes(bi.Bytes(), 32)
}

func packString(str string) []byte {
	strLen := len(str)
	paddedStrLen := (strLen + 31) / 32 * 32

	bs := make([]byte, 32+paddedStrLen)

	copy(bs[:32], packBigInt(big.NewInt(int64(strLen))))
	copy(bs[32:], str)

	return bs
}
