package discover

import (
	"github.com/3dpass/bridge-core/log"
	"github.com/3dpass/bridge-core/params"
)

// ServerInfo server info
type ServerInfo struct {
	Identifier string   `json:"identifier"`
	Networks   []string `json:"networks"`
	Version    string   `json:"version"`
}

// PostResult post result
type PostResult string

// SuccessPostResult success post result
var SuccessPostResult PostResult = "Success"

// GetServerInfo api
func GetServerInfo() (*ServerInfo, error) {
	log.Debug("[api] receive GetServerInfo")
	config := params.GetConfig()
	if config == nil {
		return nil, nil
	}
	networks := make([]string, 0, len(config.Networks))
	for _, network := range config.Networks {
		networks = append(networks, network.Key)
	}
	return &ServerInfo{
		Identifier: config.Identifier,
		Networks:   networks,
		Version:    params.VersionWithMeta,
	}, nil
}
