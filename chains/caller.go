// Package chains implements the read-only chain access port: issuing
// eth_call requests against a network's configured RPC gateways and
// decoding the returned words.
package chains

import (
	"errors"
	"fmt"

	"github.com/3dpass/bridge-core/common"
	"github.com/3dpass/bridge-core/common/hexutil"
	"github.com/3dpass/bridge-core/params"
	"github.com/3dpass/bridge-core/rpc/client"
)

// call errors
var (
	ErrUnknownNetwork = errors.New("unknown network")
	ErrEmptyURLs      = errors.New("empty gateway URLs")
)

// Caller issues a read-only contract call on a network.
// Implementations never interpret the call result, only transport it.
type Caller interface {
	CallContract(networkKey, contract string, data hexutil.Bytes, blockTag string) (string, error)
}

// IsCallRejected returns true if the endpoint was reachable but answered
// the call with an error (reverted, unknown method, bad params).
// Such errors rule out a capability; any other error is a transport
// failure and must not be reinterpreted as "capability not present".
func IsCallRejected(err error) bool {
	return client.IsRPCError(err)
}

// EVMCaller calls contracts through the JSON-RPC gateways configured per
// network, trying each URL in order until one answers.
type EVMCaller struct{}

// NewEVMCaller create an EVM caller
func NewEVMCaller() *EVMCaller {
	return &EVMCaller{}
}

// CallContract call eth_call
func (c *EVMCaller) CallContract(networkKey, contract string, data hexutil.Bytes, blockTag string) (string, error) {
	netCfg := params.GetNetworkConfig(networkKey)
	if netCfg == nil {
		return "", fmt.Errorf("%w: %v", ErrUnknownNetwork, networkKey)
	}
	return callContract(contract, netCfg.RPCURLs, data, blockTag)
}

func callContract(contract string, urls []string, data hexutil.Bytes, blockTag string) (string, error) {
	if len(urls) == 0 {
		return "", ErrEmptyURLs
	}
	reqArgs := map[string]interface{}{
		"to":   contract,
		"data": data,
	}
	var result string
	var err error
	for _, url := range urls {
		err = client.RPCPost(&result, url, "eth_call", reqArgs, blockTag)
		if err == nil {
			return result, nil
		}
		if client.IsRPCError(err) {
			// the gateway answered; trying more gateways cannot change
			// a contract-level rejection
			return "", err
		}
	}
	return "", err
}

// GetLatestBlockNumber call eth_blockNumber on a network
func GetLatestBlockNumber(networkKey string) (uint64, error) {
	netCfg := params.GetNetworkConfig(networkKey)
	if netCfg == nil {
		return 0, fmt.Errorf("%w: %v", ErrUnknownNetwork, networkKey)
	}
	var result string
	var err error
	for _, url := range netCfg.RPCURLs {
		err = client.RPCPost(&result, url, "eth_blockNumber")
		if err == nil {
			return common.GetUint64FromStr(result)
		}
	}
	return 0, err
}
