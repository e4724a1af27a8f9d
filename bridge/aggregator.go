package bridge

import (
	"strings"
	"sync"

	"github.com/3dpass/bridge-core/chains"
	"github.com/3dpass/bridge-core/common"
	"github.com/3dpass/bridge-core/log"
	"github.com/3dpass/bridge-core/params"
	"github.com/3dpass/bridge-core/tokens"
)

// Aggregator extracts the per-variant on-chain wiring of a detected
// bridge and produces a normalized Descriptor.
type Aggregator struct {
	caller   chains.Caller
	resolver *tokens.Resolver
}

// NewAggregator create an aggregator
func NewAggregator(caller chains.Caller, resolver *tokens.Resolver) *Aggregator {
	return &Aggregator{caller: caller, resolver: resolver}
}

// Result of a successful aggregation. OracleSuggestion is advisory: the
// oracle validated but is not yet present in configuration.
type Result struct {
	Descriptor       *Descriptor
	OracleSuggestion *tokens.OracleSuggestion
	NewTokens        int
}

// Aggregate detects the variant of the bridge at address and pulls its
// network identifiers, assets, stake token and (import family) oracle.
// fallbackToken is the caller-provided token address the stake token
// degrades to when the optional settings query fails.
func (a *Aggregator) Aggregate(networkKey, address, fallbackToken string) (*Result, error) {
	variant, err := DetectVariant(a.caller, networkKey, address)
	if err != nil {
		return nil, &AggregationError{Reason: ErrDetectBridgeType.Error(), Err: err}
	}
	if variant == VariantExport {
		return a.aggregateExport(networkKey, address, fallbackToken)
	}
	return a.aggregateImport(networkKey, address, fallbackToken, variant)
}

func (a *Aggregator) aggregateExport(networkKey, address, fallbackToken string) (*Result, error) {
	var (
		wg sync.WaitGroup

		foreignNetRaw, foreignAsset string
		pairingID                   common.Hash
		stakeAddr                   string
		creationTS                  uint64

		foreignNetErr, foreignAssetErr, pairingErr error
	)
	wg.Add(5)
	go func() {
		defer wg.Done()
		foreignNetRaw, foreignNetErr = chains.CallGetString(a.caller, networkKey, address, chains.SelForeignNetwork)
	}()
	go func() {
		defer wg.Done()
		foreignAsset, foreignAssetErr = chains.CallGetString(a.caller, networkKey, address, chains.SelForeignAsset)
	}()
	go func() {
		defer wg.Done()
		pairingID, pairingErr = chains.CallGetHash(a.caller, networkKey, address, chains.SelPairingID)
	}()
	go func() {
		defer wg.Done()
		stakeAddr = a.stakeTokenAddress(networkKey, address, fallbackToken)
	}()
	go func() {
		defer wg.Done()
		creationTS = a.creationTimestamp(networkKey, address)
	}()
	wg.Wait()

	for _, err := range []error{foreignNetErr, foreignAssetErr, pairingErr} {
		if err != nil {
			return nil, &AggregationError{Reason: "read export bridge fields failed", Err: err}
		}
	}

	newTokens := 0
	stakeToken, discovered := a.resolveToken(networkKey, stakeAddr)
	if discovered {
		newTokens++
	}

	foreignNetwork := NormalizeNetworkName(foreignNetRaw)
	foreignToken, discovered := a.resolveForeignToken(foreignNetwork, foreignAsset)
	if discovered {
		newTokens++
	}

	descriptor := &Descriptor{
		Address:        strings.ToLower(address),
		Variant:        VariantExport,
		HomeNetwork:    homeDisplayName(networkKey),
		HomeToken:      stakeToken,
		ForeignNetwork: foreignNetwork,
		ForeignToken:   foreignToken,
		StakeToken:     stakeToken,
		PairingID:      pairingID.Hex(),
		CreationTS:     creationTS,
	}
	return &Result{Descriptor: descriptor, NewTokens: newTokens}, nil
}

func (a *Aggregator) aggregateImport(networkKey, address, fallbackToken string, variant Variant) (*Result, error) {
	var (
		wg sync.WaitGroup

		homeNetRaw, homeAsset string
		oracleAddr            common.Address
		pairingID             common.Hash
		stakeAddr             string
		creationTS            uint64

		homeNetErr, homeAssetErr, oracleErr, pairingErr error
	)
	wg.Add(6)
	go func() {
		defer wg.Done()
		homeNetRaw, homeNetErr = chains.CallGetString(a.caller, networkKey, address, chains.SelHomeNetwork)
	}()
	go func() {
		defer wg.Done()
		homeAsset, homeAssetErr = chains.CallGetString(a.caller, networkKey, address, chains.SelHomeAsset)
	}()
	go func() {
		defer wg.Done()
		oracleAddr, oracleErr = chains.CallGetAddress(a.caller, networkKey, address, chains.SelOracleAddress)
	}()
	go func() {
		defer wg.Done()
		pairingID, pairingErr = chains.CallGetHash(a.caller, networkKey, address, chains.SelPairingID)
	}()
	go func() {
		defer wg.Done()
		stakeAddr = a.stakeTokenAddress(networkKey, address, fallbackToken)
	}()
	go func() {
		defer wg.Done()
		creationTS = a.creationTimestamp(networkKey, address)
	}()
	wg.Wait()

	for _, err := range []error{homeNetErr, homeAssetErr, pairingErr} {
		if err != nil {
			return nil, &AggregationError{Reason: "read import bridge fields failed", Err: err}
		}
	}

	// import family bridges must carry a working oracle; a bridge with a
	// broken oracle reference is never silently admitted
	if oracleErr != nil || oracleAddr.IsZero() {
		return nil, &AggregationError{Reason: ErrInvalidOracle.Error(), InvalidOracle: true, Err: oracleErr}
	}
	oracle := oracleAddr.LowerHex()
	if err := tokens.ValidateOracle(a.caller, networkKey, oracle); err != nil {
		return nil, &AggregationError{Reason: ErrInvalidOracle.Error(), InvalidOracle: true, Err: err}
	}
	suggestion := tokens.SuggestOracle(a.resolver.Settings(), networkKey, oracle)

	// the foreign side representation: a plain import holds its own
	// token ledger, a wrapper delegates to a precompiled one
	foreignAsset := strings.ToLower(address)
	if variant == VariantImportWrapper {
		precompile, err := a.wrapperPrecompile(networkKey, address)
		if err != nil {
			return nil, &AggregationError{Reason: "read wrapper precompile address failed", Err: err}
		}
		foreignAsset = precompile
	}

	newTokens := 0
	stakeToken, discovered := a.resolveToken(networkKey, stakeAddr)
	if discovered {
		newTokens++
	}
	foreignToken, discovered := a.resolveToken(networkKey, foreignAsset)
	if discovered {
		newTokens++
	}

	homeNetwork := NormalizeNetworkName(homeNetRaw)
	homeToken, discovered := a.resolveForeignToken(homeNetwork, homeAsset)
	if discovered {
		newTokens++
	}

	descriptor := &Descriptor{
		Address:        strings.ToLower(address),
		Variant:        variant,
		HomeNetwork:    homeNetwork,
		HomeToken:      homeToken,
		ForeignNetwork: homeDisplayName(networkKey),
		ForeignToken:   foreignToken,
		StakeToken:     stakeToken,
		OracleAddress:  oracle,
		PairingID:      pairingID.Hex(),
		CreationTS:     creationTS,
	}
	return &Result{Descriptor: descriptor, OracleSuggestion: suggestion, NewTokens: newTokens}, nil
}

// stakeTokenAddress reads the first settings word. The settings query is
// individually optional: a failure degrades to the caller-provided token
// address and is logged, not escalated.
func (a *Aggregator) stakeTokenAddress(networkKey, address, fallbackToken string) string {
	data, err := chains.CallWithArgs(a.caller, networkKey, address, chains.SelSettings)
	if err == nil {
		if stake, perr := chains.ParseAddressInData(data, 0); perr == nil {
			return stake.LowerHex()
		}
	}
	log.Info("settings query failed, fall back to provided token address",
		"network", networkKey, "bridge", address, "fallback", fallbackToken, "err", err)
	return fallbackToken
}

// creationTimestamp is optional, zero when the contract does not expose it.
func (a *Aggregator) creationTimestamp(networkKey, address string) uint64 {
	ts, err := chains.CallGetBigInt(a.caller, networkKey, address, chains.SelCreationTS)
	if err != nil || !ts.IsUint64() {
		return 0
	}
	return ts.Uint64()
}

func (a *Aggregator) wrapperPrecompile(networkKey, address string) (string, error) {
	addr, err := chains.CallGetAddress(a.caller, networkKey, address, chains.SelPrecompileAddress)
	if err == nil && !addr.IsZero() {
		return addr.LowerHex(), nil
	}
	if err != nil && !chains.IsCallRejected(err) {
		return "", err
	}
	addr, err = chains.CallGetAddress(a.caller, networkKey, address, chains.SelP3DPrecompile)
	if err != nil {
		return "", err
	}
	return addr.LowerHex(), nil
}

// resolveToken resolves a token on a network identified by its key.
func (a *Aggregator) resolveToken(networkKey, address string) (TokenRef, bool) {
	if address == "" {
		return TokenRef{}, false
	}
	record, discovered := a.resolver.Resolve(networkKey, address)
	return TokenRef{Address: record.Address, Symbol: record.Symbol}, discovered
}

// resolveForeignToken resolves a token on the counterparty network,
// which may not be configured locally. An unconfigured network keeps the
// raw address with an unknown symbol.
func (a *Aggregator) resolveForeignToken(networkName, address string) (TokenRef, bool) {
	key := NetworkKeyFromName(networkName)
	if params.GetNetworkConfig(key) == nil {
		return TokenRef{Address: strings.ToLower(address), Symbol: tokens.UnknownSymbol}, false
	}
	return a.resolveToken(key, address)
}

func homeDisplayName(networkKey string) string {
	if netCfg := params.GetNetworkConfig(networkKey); netCfg != nil {
		return NormalizeNetworkName(netCfg.Name)
	}
	return NormalizeNetworkName(networkKey)
}
