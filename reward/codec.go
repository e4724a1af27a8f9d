// Package reward converts user-entered decimal reward amounts to and
// from the fixed-point integer magnitude bridge contracts expect,
// keeping results inside the range user agents can represent exactly.
package reward

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxSafeMagnitude is the largest integer exactly representable in an
// IEEE-754 double, the exact-integer limit of the consuming user agents.
const MaxSafeMagnitude int64 = 9007199254740991

const displayPrecision = 6

// codec errors
var (
	ErrBadDecimalString = errors.New("bad decimal string")
	ErrNegativeValue    = errors.New("negative value not allowed")
	ErrOutOfRange       = errors.New("value out of representable range")
)

var maxSafeDecimal = decimal.NewFromInt(MaxSafeMagnitude)

// Amount is a user-entered decimal reward and its derived fixed-point
// magnitude. When the exact magnitude would exceed MaxSafeMagnitude it is
// capped to the bound exactly and WasCapped is set; capping is never an
// error.
type Amount struct {
	Original  string
	Decimals  uint8
	Magnitude int64
	WasCapped bool
	MaxSafe   int64
	Display   string
}

// Encode converts a non-negative decimal string to its fixed-point
// magnitude at the given decimals. Fractional digits beyond the
// precision are truncated toward zero.
func Encode(value string, decimals uint8) (*Amount, error) {
	return encode(value, decimals, false)
}

// EncodeSigned converts a decimal string that may be negative. Capping
// applies to the positive overflow case only: observed usage never caps
// negative rewards, so a magnitude below the negative bound is rejected
// rather than silently capped.
func EncodeSigned(value string, decimals uint8) (*Amount, error) {
	return encode(value, decimals, true)
}

func encode(value string, decimals uint8, signed bool) (*Amount, error) {
	value = strings.TrimSpace(value)
	dec, err := decimal.NewFromString(value)
	if err != nil {
		return nil, ErrBadDecimalString
	}
	// sign is checked before any range handling so a negative overflow
	// still reports the sign violation for the unsigned variant
	if !signed && dec.IsNegative() {
		return nil, ErrNegativeValue
	}

	magnitude := dec.Shift(int32(decimals)).Truncate(0)

	wasCapped := false
	switch {
	case magnitude.GreaterThan(maxSafeDecimal):
		magnitude = maxSafeDecimal
		wasCapped = true
	case magnitude.LessThan(maxSafeDecimal.Neg()):
		return nil, ErrOutOfRange
	}

	mag := magnitude.IntPart()
	return &Amount{
		Original:  value,
		Decimals:  decimals,
		Magnitude: mag,
		WasCapped: wasCapped,
		MaxSafe:   MaxSafeMagnitude,
		Display:   Display(mag, decimals),
	}, nil
}

// Decode renders a fixed-point magnitude back to its exact decimal
// string form at the given decimals.
func Decode(magnitude int64, decimals uint8) string {
	return decimal.NewFromInt(magnitude).Shift(-int32(decimals)).String()
}

// Display renders magnitude/10^decimals with at most six fractional
// digits, trailing zeros trimmed.
func Display(magnitude int64, decimals uint8) string {
	dec := decimal.NewFromInt(magnitude).Shift(-int32(decimals))
	fixed := dec.StringFixed(displayPrecision)
	fixed = strings.TrimRight(fixed, "0")
	fixed = strings.TrimSuffix(fixed, ".")
	if fixed == "" || fixed == "-" {
		return "0"
	}
	return fixed
}
