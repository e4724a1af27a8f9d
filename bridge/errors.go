package bridge

import (
	"errors"
)

// common errors
var (
	ErrDetectBridgeType  = errors.New("unable to detect bridge type")
	ErrInvalidOracle     = errors.New("invalid oracle")
	ErrNoRegistry        = errors.New("network has no registry contract")
	ErrBridgeNotFound    = errors.New("bridge not found in known descriptors")
	ErrNoForeignToken    = errors.New("bridge has no foreign token address")
	ErrNoPairedBridge    = errors.New("no paired bridge found")
	ErrPairingMismatch   = errors.New("bridge pairing identifier mismatch")
	ErrDirectionMismatch = errors.New("bridge direction mismatch")
)
