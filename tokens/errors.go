package tokens

import (
	"errors"
)

// common errors
var (
	ErrUnknownNetwork       = errors.New("unknown network")
	ErrUnknownToken         = errors.New("unknown token")
	ErrInvalidOracleAddress = errors.New("invalid oracle address")
	ErrOracleUnreachable    = errors.New("oracle is unreachable")
)
