package common

import (
	"errors"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/crypto/sha3"
)

// Keccak256Hash calculates the Keccak256 hash of the input data.
func Keccak256Hash(data ...[]byte) (h Hash) {
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		d.Write(b)
	}
	d.Sum(h[:0])
	return h
}

// FuncSelector returns the first 4 bytes of the keccak256 hash of a
// canonical method signature, eg. "name()".
func FuncSelector(signature string) []byte {
	h := Keccak256Hash([]byte(signature))
	return h[:4]
}

// GetBigIntFromStr parses a quantity string (decimal or 0x-prefixed hex)
// into a big integer.
func GetBigIntFromStr(str string) (*big.Int, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return nil, errors.New("empty integer string")
	}
	base := 10
	if has0xPrefix(str) {
		str = str[2:]
		base = 16
		if str == "" {
			return big.NewInt(0), nil
		}
	}
	bi, ok := new(big.Int).SetString(str, base)
	if !ok {
		return nil, errors.New("invalid integer: " + str)
	}
	return bi, nil
}

// GetUint64FromStr parses a quantity string into a uint64.
func GetUint64FromStr(str string) (uint64, error) {
	bi, err := GetBigIntFromStr(str)
	if err != nil {
		return 0, err
	}
	if !bi.IsUint64() {
		return 0, errors.New("value overflows uint64: " + str)
	}
	return bi.Uint64(), nil
}

// Now returns the current unix timestamp.
func Now() int64 {
	return time.Now().Unix()
}

// NowMilli returns the current unix timestamp in milliseconds.
func NowMilli() int64 {
	return time.Now().UnixNano() / 1e6
}

// FileExist checks if a file exists at filePath.
func FileExist(filePath string) bool {
	_, err := os.Stat(filePath)
	return err == nil
}

// CurrentDir returns the current working directory.
func CurrentDir() (string, error) {
	return os.Getwd()
}

// AbsolutePath returns datadir + filename, or filename if it is absolute.
func AbsolutePath(datadir string, filename string) string {
	if filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(datadir, filename)
}
