package tokens

import (
	"fmt"

	"github.com/3dpass/bridge-core/chains"
	"github.com/3dpass/bridge-core/common"
	"github.com/3dpass/bridge-core/log"
	"github.com/3dpass/bridge-core/params"
)

// canonical probe pair for the oracle price query
const (
	oracleProbeBase  = "_NATIVE_"
	oracleProbeQuote = "USD"
)

// OracleSuggestion is an advisory "oracle needs addition" record emitted
// when a validated oracle is not yet present in configuration.
type OracleSuggestion struct {
	Key         string
	Address     string
	Name        string
	Description string
}

// ValidateOracle confirms a candidate address answers the price-query
// capability. Any contract-level response, including a domain-specific
// revert, counts as present and responsive; only a malformed address or
// a transport failure is invalid.
func ValidateOracle(caller chains.Caller, networkKey, address string) error {
	if !common.IsHexAddress(address) || common.IsZeroAddress(address) {
		return fmt.Errorf("%w: '%v'", ErrInvalidOracleAddress, address)
	}
	_, err := chains.CallWithArgs(caller, networkKey, address, chains.SelGetPrice, oracleProbeBase, oracleProbeQuote)
	if err == nil || chains.IsCallRejected(err) {
		return nil
	}
	log.Warn("oracle probe transport failure", "network", networkKey, "oracle", address, "err", err)
	return fmt.Errorf("%w: %v", ErrOracleUnreachable, err)
}

// SuggestOracle returns an advisory addition record if the oracle address
// is absent from both the settings tier and the static configuration,
// nil if it is already known.
func SuggestOracle(settings params.Settings, networkKey, address string) *OracleSuggestion {
	if settings.GetOracle(networkKey, address) != nil {
		return nil
	}
	if netCfg := params.GetNetworkConfig(networkKey); netCfg != nil {
		if netCfg.GetOracleConfig(address) != nil {
			return nil
		}
	}
	return &OracleSuggestion{
		Key:         fmt.Sprintf("oracle-%v", address[2:10]),
		Address:     address,
		Name:        "Discovered price oracle",
		Description: fmt.Sprintf("price oracle discovered on network %v", networkKey),
	}
}
