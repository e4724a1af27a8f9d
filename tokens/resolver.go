package tokens

import (
	"strings"

	"github.com/3dpass/bridge-core/chains"
	"github.com/3dpass/bridge-core/log"
	"github.com/3dpass/bridge-core/params"
)

// UnknownSymbol is the symbol of tokens that could not be resolved
const UnknownSymbol = "UNKNOWN"

// Resolver resolves (network, address) into token records through a
// tiered lookup: session settings, static configuration, live chain
// query. Successful chain queries are written back into settings so
// repeated resolutions become settings hits. Resolution is idempotent:
// chain data does not change between reads, so concurrent discovery of
// the same address converges to the same record.
type Resolver struct {
	caller   chains.Caller
	settings params.Settings
}

// NewResolver create a token resolver
func NewResolver(caller chains.Caller, settings params.Settings) *Resolver {
	return &Resolver{caller: caller, settings: settings}
}

// Settings the settings tier the resolver writes discoveries into
func (r *Resolver) Settings() params.Settings {
	return r.settings
}

// Resolve a token address on a network. Never fatal to the caller: a
// failed resolution yields an UnknownSymbol record. The returned flag is
// true when the record was discovered on chain and newly added to the
// settings tier.
func (r *Resolver) Resolve(networkKey, address string) (record *Record, discovered bool) {
	netCfg := params.GetNetworkConfig(networkKey)

	// the zero address is the native currency; resolved from
	// configuration, never via chain probing
	if ClassifyAddress(address) == KindNative {
		if netCfg == nil {
			return unknownRecord(address), false
		}
		return &Record{
			Address:  address,
			Symbol:   netCfg.NativeSymbol,
			Name:     netCfg.Name,
			Decimals: netCfg.NativeDecimals,
			Kind:     KindNative,
		}, false
	}

	// tier 1: session settings
	if cfg := r.settings.GetToken(networkKey, address); cfg != nil {
		return RecordFromConfig(cfg), false
	}

	// tier 2: static configuration
	if netCfg != nil {
		if cfg := netCfg.GetTokenConfig(address); cfg != nil {
			return RecordFromConfig(cfg), false
		}
	}

	// tier 3: live chain query
	record, err := r.queryChain(networkKey, address)
	if err != nil {
		log.Warn("token resolution failed", "network", networkKey, "address", address, "err", err)
		return unknownRecord(address), false
	}
	added := r.settings.MergeToken(networkKey, record.ToConfig())
	if added {
		log.Info("discovered new token", "network", networkKey,
			"address", record.Address, "symbol", record.Symbol, "kind", record.Kind.String())
	}
	return record, added
}

// queryChain reads symbol, name and decimals through the interface shape
// selected by the address pattern. All three shapes answer the fungible
// token getters; the kind decides the asset identifier extraction.
func (r *Resolver) queryChain(networkKey, address string) (*Record, error) {
	kind := ClassifyAddress(address)
	if kind == KindUnknown {
		return nil, ErrUnknownToken
	}

	symbol, err := chains.CallGetString(r.caller, networkKey, address, chains.SelSymbol)
	if err != nil {
		return nil, err
	}
	decimalsBig, err := chains.CallGetBigInt(r.caller, networkKey, address, chains.SelDecimals)
	if err != nil {
		return nil, err
	}
	// name is cosmetic, a missing getter degrades to the symbol
	name, err := chains.CallGetString(r.caller, networkKey, address, chains.SelName)
	if err != nil {
		name = symbol
	}

	return &Record{
		Address:  strings.ToLower(address),
		Symbol:   symbol,
		Name:     name,
		Decimals: uint8(decimalsBig.Uint64()),
		Kind:     kind,
		AssetID:  AssetIDFromAddress(address),
	}, nil
}

func unknownRecord(address string) *Record {
	return &Record{
		Address: strings.ToLower(address),
		Symbol:  UnknownSymbol,
		Kind:    ClassifyAddress(address),
	}
}
