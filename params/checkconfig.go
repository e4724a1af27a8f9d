package params

import (
	"errors"
	"fmt"
	"strings"

	"github.com/3dpass/bridge-core/common"
)

// CheckConfig check client config
func CheckConfig() (err error) {
	config := GetConfig()
	if config == nil {
		return errors.New("empty config")
	}
	if config.Identifier == "" {
		return errors.New("must config non empty 'Identifier'")
	}
	if len(config.Networks) == 0 {
		return errors.New("must config at least one network")
	}
	seen := make(map[string]struct{}, len(config.Networks))
	for _, netCfg := range config.Networks {
		if err = netCfg.CheckConfig(); err != nil {
			return err
		}
		// keys index case insensitively, so the duplicate check must too
		lowerKey := strings.ToLower(netCfg.Key)
		if _, exist := seen[lowerKey]; exist {
			return fmt.Errorf("duplicate network key '%v'", netCfg.Key)
		}
		seen[lowerKey] = struct{}{}
	}
	if config.APIServer != nil {
		if port := config.APIServer.Port; port < 0 || port > 65535 {
			return fmt.Errorf("wrong api server port %v", port)
		}
	}
	return nil
}

// CheckConfig check network config
func (c *NetworkConfig) CheckConfig() error {
	if c.Key == "" {
		return errors.New("network must config non empty 'Key'")
	}
	if c.NativeSymbol == "" {
		return fmt.Errorf("network '%v' must config 'NativeSymbol'", c.Key)
	}
	if len(c.RPCURLs) == 0 {
		return fmt.Errorf("network '%v' must config 'RPCURLs'", c.Key)
	}
	if c.Registry != "" && !common.IsHexAddress(c.Registry) {
		return fmt.Errorf("network '%v' has wrong registry address '%v'", c.Key, c.Registry)
	}
	for _, token := range c.Tokens {
		if err := token.CheckConfig(c.Key); err != nil {
			return err
		}
	}
	for _, oracle := range c.Oracles {
		if err := oracle.CheckConfig(c.Key); err != nil {
			return err
		}
	}
	return nil
}

// CheckConfig check token config
func (c *TokenConfig) CheckConfig(networkKey string) error {
	// the zero address denotes the native currency and carries no contract
	if c.Address != "" && !common.IsZeroAddress(c.Address) && !common.IsHexAddress(c.Address) {
		return fmt.Errorf("network '%v' token '%v' has wrong address '%v'", networkKey, c.Symbol, c.Address)
	}
	if c.Symbol == "" {
		return fmt.Errorf("network '%v' has token with empty symbol (address '%v')", networkKey, c.Address)
	}
	return nil
}

// CheckConfig check oracle config
func (c *OracleConfig) CheckConfig(networkKey string) error {
	if c.Key == "" {
		return fmt.Errorf("network '%v' has oracle with empty key", networkKey)
	}
	if !common.IsHexAddress(c.Address) {
		return fmt.Errorf("network '%v' oracle '%v' has wrong address '%v'", networkKey, c.Key, c.Address)
	}
	return nil
}
