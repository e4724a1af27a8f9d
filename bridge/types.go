// Package bridge classifies deployed bridge contracts, aggregates their
// on-chain wiring into normalized descriptors, walks registries, and
// picks the paired bridge a claim must be filed on.
package bridge

import (
	"fmt"
)

// Variant is the bridge protocol variant.
type Variant uint8

// bridge protocol variants
const (
	VariantUnknown Variant = iota
	VariantExport
	VariantImport
	VariantImportWrapper
)

func (v Variant) String() string {
	switch v {
	case VariantExport:
		return "export"
	case VariantImport:
		return "import"
	case VariantImportWrapper:
		return "import-wrapper"
	default:
		return "unknown"
	}
}

// IsImportFamily returns true for import and import-wrapper variants.
func (v Variant) IsImportFamily() bool {
	return v == VariantImport || v == VariantImportWrapper
}

// TokenRef is a token address together with its resolved symbol.
type TokenRef struct {
	Address string
	Symbol  string
}

// Descriptor is the normalized description of one bridge instance.
// Immutable once produced; re-detection supersedes it, never mutates it.
//
// Invariant: import family descriptors carry a non empty OracleAddress,
// export descriptors never require one.
type Descriptor struct {
	Address        string
	Variant        Variant
	HomeNetwork    string
	HomeToken      TokenRef
	ForeignNetwork string
	ForeignToken   TokenRef
	StakeToken     TokenRef
	OracleAddress  string `json:",omitempty"`
	PairingID      string
	CreationTS     uint64 `json:",omitempty"`
}

// AggregationError is a structured aggregation failure. InvalidOracle
// distinguishes hard oracle failures from generic ones so callers can
// branch without string matching.
type AggregationError struct {
	Reason        string
	InvalidOracle bool
	Err           error
}

func (e *AggregationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %v", e.Reason, e.Err)
	}
	return e.Reason
}

// Unwrap support errors.Is / errors.As
func (e *AggregationError) Unwrap() error {
	return e.Err
}

// IsInvalidOracle returns true if err is an aggregation failure caused
// by a missing or non-validating oracle.
func IsInvalidOracle(err error) bool {
	aggErr, ok := err.(*AggregationError)
	return ok && aggErr.InvalidOracle
}
