package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validTestConfig() *ClientConfig {
	return &ClientConfig{
		Identifier: "testclient",
		Networks: []*NetworkConfig{
			{
				Key:            "3dpass",
				Name:           "3DPass",
				NativeSymbol:   "P3D",
				NativeDecimals: 12,
				RPCURLs:        []string{"http://localhost:9978"},
				Registry:       "0x7777777777777777777777777777777777777777",
				Tokens: []*TokenConfig{
					{Address: "0x0000000000000000000000000000000000000000", Symbol: "P3D", Decimals: 12, Kind: "native"},
				},
				Oracles: []*OracleConfig{
					{Key: "main", Address: "0x5555555555555555555555555555555555555555", Name: "Main"},
				},
			},
		},
	}
}

func TestCheckConfigValid(t *testing.T) {
	SetConfig(validTestConfig())
	assert.NoError(t, CheckConfig())
}

func TestCheckConfigRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ClientConfig)
	}{
		{"empty identifier", func(c *ClientConfig) { c.Identifier = "" }},
		{"no networks", func(c *ClientConfig) { c.Networks = nil }},
		{"empty network key", func(c *ClientConfig) { c.Networks[0].Key = "" }},
		{"no native symbol", func(c *ClientConfig) { c.Networks[0].NativeSymbol = "" }},
		{"no rpc urls", func(c *ClientConfig) { c.Networks[0].RPCURLs = nil }},
		{"bad registry", func(c *ClientConfig) { c.Networks[0].Registry = "0x12" }},
		{"bad token address", func(c *ClientConfig) { c.Networks[0].Tokens[0].Address = "junk" }},
		{"empty token symbol", func(c *ClientConfig) { c.Networks[0].Tokens[0].Symbol = "" }},
		{"empty oracle key", func(c *ClientConfig) { c.Networks[0].Oracles[0].Key = "" }},
		{"bad oracle address", func(c *ClientConfig) { c.Networks[0].Oracles[0].Address = "junk" }},
		{"duplicate network key", func(c *ClientConfig) {
			c.Networks = append(c.Networks, &NetworkConfig{
				Key: "3dpass", NativeSymbol: "P3D", RPCURLs: []string{"http://localhost:9978"},
			})
		}},
		{"duplicate network key differing only in case", func(c *ClientConfig) {
			c.Networks = append(c.Networks, &NetworkConfig{
				Key: "3DPass", NativeSymbol: "P3D", RPCURLs: []string{"http://localhost:9978"},
			})
		}},
		{"bad api port", func(c *ClientConfig) { c.APIServer = &APIServerConfig{Port: 99999} }},
	}
	for _, c := range cases {
		config := validTestConfig()
		c.mutate(config)
		SetConfig(config)
		assert.Error(t, CheckConfig(), c.name)
	}
}
