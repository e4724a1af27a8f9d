// Package params holds the static client configuration (per network
// token / oracle / contract tables) and the mutable session settings.
package params

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/3dpass/bridge-core/common"
	"github.com/3dpass/bridge-core/log"
)

const defaultAPIPort = 11556

var (
	clientConfig      *ClientConfig
	loadConfigStarter sync.Once

	locDataDir string
)

// ClientConfig config items (decode from toml file)
type ClientConfig struct {
	Identifier string
	Networks   []*NetworkConfig
	APIServer  *APIServerConfig `toml:",omitempty" json:",omitempty"`
	Scan       *ScanConfig      `toml:",omitempty" json:",omitempty"`

	networkIndex map[string]*NetworkConfig
}

// NetworkConfig describes one supported network
type NetworkConfig struct {
	Key            string // canonical network key, eg. "3dpass"
	Name           string // display name
	NativeSymbol   string
	NativeDecimals uint8
	RPCURLs        []string
	Registry       string `toml:",omitempty" json:",omitempty"` // bridge registry contract

	Tokens  []*TokenConfig  `toml:",omitempty" json:",omitempty"`
	Oracles []*OracleConfig `toml:",omitempty" json:",omitempty"`
}

// TokenConfig describes a known token on a network
type TokenConfig struct {
	Address  string
	Symbol   string
	Name     string
	Decimals uint8
	Kind     string // native | precompile-native | precompile-asset | standard
	AssetID  string `toml:",omitempty" json:",omitempty"`
}

// OracleConfig describes a known price oracle on a network
type OracleConfig struct {
	Key         string
	Address     string
	Name        string
	Description string `toml:",omitempty" json:",omitempty"`
}

// APIServerConfig api service config
type APIServerConfig struct {
	Port             int
	AllowedOrigins   []string
	MaxRequestsLimit int
}

// ScanConfig background registry rescan config
type ScanConfig struct {
	IntervalSeconds uint64
	Workers         int
	SettingsFile    string `toml:",omitempty" json:",omitempty"`
}

// GetConfig get client config
func GetConfig() *ClientConfig {
	return clientConfig
}

// SetConfig set client config
func SetConfig(config *ClientConfig) {
	config.networkIndex = make(map[string]*NetworkConfig, len(config.Networks))
	for _, netCfg := range config.Networks {
		config.networkIndex[strings.ToLower(netCfg.Key)] = netCfg
	}
	clientConfig = config
}

// GetNetworkConfig get the config of a network by its key (case insensitive)
func GetNetworkConfig(networkKey string) *NetworkConfig {
	if clientConfig == nil {
		return nil
	}
	return clientConfig.networkIndex[strings.ToLower(networkKey)]
}

// GetAPIServerConfig get api server config
func GetAPIServerConfig() *APIServerConfig {
	return GetConfig().APIServer
}

// GetScanConfig get scan config
func GetScanConfig() *ScanConfig {
	return GetConfig().Scan
}

// GetAPIPort get api service port
func GetAPIPort() int {
	apiServer := GetAPIServerConfig()
	if apiServer == nil || apiServer.Port == 0 {
		return defaultAPIPort
	}
	return apiServer.Port
}

// GetTokenConfig find a token record by address on a network (case insensitive)
func (c *NetworkConfig) GetTokenConfig(address string) *TokenConfig {
	for _, token := range c.Tokens {
		if common.SameAddress(token.Address, address) {
			return token
		}
	}
	return nil
}

// GetOracleConfig find an oracle record by address on a network (case insensitive)
func (c *NetworkConfig) GetOracleConfig(address string) *OracleConfig {
	for _, oracle := range c.Oracles {
		if common.SameAddress(oracle.Address, address) {
			return oracle
		}
	}
	return nil
}

// LoadConfig load config from a toml file, only once
func LoadConfig(configFile string) *ClientConfig {
	loadConfigStarter.Do(func() {
		if configFile == "" {
			log.Fatalf("LoadConfig error: no config file specified")
		}
		if !common.FileExist(configFile) {
			log.Fatalf("LoadConfig error: config file %v not exist", configFile)
		}
		config := &ClientConfig{}
		if _, err := toml.DecodeFile(configFile, &config); err != nil {
			log.Fatalf("LoadConfig error (toml DecodeFile): %v", err)
		}

		SetConfig(config)

		var bs []byte
		if log.JSONFormat {
			bs, _ = json.Marshal(config)
		} else {
			bs, _ = json.MarshalIndent(config, "", "  ")
		}
		log.Println("LoadConfig finished.", string(bs))

		if err := CheckConfig(); err != nil {
			log.Fatalf("Check config failed. %v", err)
		}
		log.Info("Check config success", "configFile", configFile)
	})
	return clientConfig
}

// SetDataDir set data dir (for the local event cache)
func SetDataDir(dir string) {
	if dir == "" {
		return
	}
	currDir, err := common.CurrentDir()
	if err != nil {
		log.Fatal("get current dir failed", "err", err)
	}
	locDataDir = common.AbsolutePath(currDir, dir)
	log.Info("set data dir success", "datadir", locDataDir)
}

// GetDataDir get data dir
func GetDataDir() string {
	return locDataDir
}
