// Package tokens resolves raw on-chain addresses into token records and
// validates price oracles, consulting session settings first, static
// configuration second and the chain last.
package tokens

import (
	"strings"

	"github.com/3dpass/bridge-core/common"
	"github.com/3dpass/bridge-core/params"
)

// Kind is the closed set of token ledger shapes a resolved address can have.
type Kind uint8

// token kinds
const (
	KindUnknown Kind = iota
	KindNative
	KindPrecompileNative
	KindPrecompileAsset
	KindStandard
)

// kind names as stored in configuration
const (
	KindNameNative           = "native"
	KindNamePrecompileNative = "precompile-native"
	KindNamePrecompileAsset  = "precompile-asset"
	KindNameStandard         = "standard"
)

func (k Kind) String() string {
	switch k {
	case KindNative:
		return KindNameNative
	case KindPrecompileNative:
		return KindNamePrecompileNative
	case KindPrecompileAsset:
		return KindNamePrecompileAsset
	case KindStandard:
		return KindNameStandard
	default:
		return "unknown"
	}
}

// KindFromName parse a configured kind name
func KindFromName(name string) Kind {
	switch name {
	case KindNameNative:
		return KindNative
	case KindNamePrecompileNative:
		return KindPrecompileNative
	case KindNamePrecompileAsset:
		return KindPrecompileAsset
	case KindNameStandard:
		return KindStandard
	default:
		return KindUnknown
	}
}

// platform address patterns
var (
	// the native currency exposed as an ERC20-shaped precompile
	NativePrecompileAddress = common.HexToAddress("0x0000000000000000000000000000000000000802")

	// local asset ledgers exposed as precompiles carry this prefix,
	// the low 16 bytes hold the asset identifier
	assetPrecompilePrefix = []byte{0xfb, 0xfb, 0xfb, 0xfa}
)

// ClassifyAddress determines the token kind from the address pattern
// alone. No chain access: the expensive trial-and-error probing is
// reserved for bridge variant disambiguation.
func ClassifyAddress(address string) Kind {
	if common.IsZeroAddress(address) {
		return KindNative
	}
	if !common.IsHexAddress(address) {
		return KindUnknown
	}
	addr := common.HexToAddress(address)
	if addr == NativePrecompileAddress {
		return KindPrecompileNative
	}
	if hasAssetPrecompilePrefix(addr) {
		return KindPrecompileAsset
	}
	return KindStandard
}

func hasAssetPrecompilePrefix(addr common.Address) bool {
	for i, b := range assetPrecompilePrefix {
		if addr[i] != b {
			return false
		}
	}
	return true
}

// AssetIDFromAddress decode the asset identifier encoded in the low
// bytes of an asset precompile address. Empty for other kinds.
func AssetIDFromAddress(address string) string {
	if ClassifyAddress(address) != KindPrecompileAsset {
		return ""
	}
	addr := common.HexToAddress(address)
	return common.GetBigInt(addr.Bytes(), uint64(len(assetPrecompilePrefix)), uint64(common.AddressLength-len(assetPrecompilePrefix))).String()
}

// Record is a resolved token. Immutable once produced.
type Record struct {
	Address  string
	Symbol   string
	Name     string
	Decimals uint8
	Kind     Kind
	AssetID  string
}

// ToConfig convert the record to its configuration shape
func (r *Record) ToConfig() *params.TokenConfig {
	return &params.TokenConfig{
		Address:  strings.ToLower(r.Address),
		Symbol:   r.Symbol,
		Name:     r.Name,
		Decimals: r.Decimals,
		Kind:     r.Kind.String(),
		AssetID:  r.AssetID,
	}
}

// RecordFromConfig convert a configuration entry to a record
func RecordFromConfig(cfg *params.TokenConfig) *Record {
	return &Record{
		Address:  cfg.Address,
		Symbol:   cfg.Symbol,
		Name:     cfg.Name,
		Decimals: cfg.Decimals,
		Kind:     KindFromName(cfg.Kind),
		AssetID:  cfg.AssetID,
	}
}
