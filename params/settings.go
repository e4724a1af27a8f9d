package params

import (
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/3dpass/bridge-core/log"
)

// Settings is the mutable session overlay of the static network
// configuration. Lookups consult it before the static tables; token and
// oracle discoveries are merged back into it so repeated resolutions hit
// the settings tier. Merging is a per-key (lowercase address) upsert and
// never deletes entries.
type Settings interface {
	GetToken(networkKey, address string) *TokenConfig
	MergeToken(networkKey string, token *TokenConfig) (added bool)
	GetOracle(networkKey, address string) *OracleConfig
	MergeOracle(networkKey string, oracle *OracleConfig) (added bool)
}

// MemSettings is the in-process Settings implementation.
// Safe for concurrent use; concurrent merges of the same key are
// last-write-wins at single key granularity.
type MemSettings struct {
	mu      sync.RWMutex
	tokens  map[string]map[string]*TokenConfig
	oracles map[string]map[string]*OracleConfig
}

// NewMemSettings create empty settings
func NewMemSettings() *MemSettings {
	return &MemSettings{
		tokens:  make(map[string]map[string]*TokenConfig),
		oracles: make(map[string]map[string]*OracleConfig),
	}
}

func settingsKey(s string) string {
	return strings.ToLower(s)
}

// GetToken get a session token record, nil if absent
func (s *MemSettings) GetToken(networkKey, address string) *TokenConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens[settingsKey(networkKey)][settingsKey(address)]
}

// MergeToken upsert a token record, keyed by lowercase address.
// Returns true if the record is newly added. An address collision with
// differing content is a configuration error: it is logged and the new
// record wins.
func (s *MemSettings) MergeToken(networkKey string, token *TokenConfig) bool {
	netKey := settingsKey(networkKey)
	addrKey := settingsKey(token.Address)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tokens[netKey] == nil {
		s.tokens[netKey] = make(map[string]*TokenConfig)
	}
	old, exist := s.tokens[netKey][addrKey]
	if exist && (old.Symbol != token.Symbol || old.Decimals != token.Decimals) {
		log.Error("token address collision in settings",
			"network", networkKey, "address", token.Address,
			"oldSymbol", old.Symbol, "newSymbol", token.Symbol,
			"oldDecimals", old.Decimals, "newDecimals", token.Decimals)
	}
	s.tokens[netKey][addrKey] = token
	return !exist
}

// GetOracle get a session oracle record, nil if absent
func (s *MemSettings) GetOracle(networkKey, address string) *OracleConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.oracles[settingsKey(networkKey)][settingsKey(address)]
}

// MergeOracle upsert an oracle record, keyed by lowercase address.
// Returns true if the record is newly added.
func (s *MemSettings) MergeOracle(networkKey string, oracle *OracleConfig) bool {
	netKey := settingsKey(networkKey)
	addrKey := settingsKey(oracle.Address)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.oracles[netKey] == nil {
		s.oracles[netKey] = make(map[string]*OracleConfig)
	}
	_, exist := s.oracles[netKey][addrKey]
	s.oracles[netKey][addrKey] = oracle
	return !exist
}

// settingsFile is the toml shape of a settings overlay file
type settingsFile struct {
	Networks []*NetworkConfig
}

// LoadSettingsFile merge token and oracle records from a toml overlay
// file into the settings. Used at startup and on file-change events.
func LoadSettingsFile(s Settings, file string) error {
	var overlay settingsFile
	if _, err := toml.DecodeFile(file, &overlay); err != nil {
		return err
	}
	var tokens, oracles int
	for _, netCfg := range overlay.Networks {
		for _, token := range netCfg.Tokens {
			if s.MergeToken(netCfg.Key, token) {
				tokens++
			}
		}
		for _, oracle := range netCfg.Oracles {
			if s.MergeOracle(netCfg.Key, oracle) {
				oracles++
			}
		}
	}
	log.Info("load settings overlay success", "file", file, "newTokens", tokens, "newOracles", oracles)
	return nil
}
