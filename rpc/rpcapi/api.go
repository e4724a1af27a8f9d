// Package rpcapi provides JSON RPC service.
package rpcapi

import (
	"net/http"

	"github.com/3dpass/bridge-core/bridge"
	"github.com/3dpass/bridge-core/eventstore"
	"github.com/3dpass/bridge-core/internal/discover"
	"github.com/3dpass/bridge-core/params"
	"github.com/3dpass/bridge-core/tokens"
)

// RPCAPI rpc api handler
type RPCAPI struct{}

// RPCNullArgs null args
type RPCNullArgs struct{}

// BridgeArgs bridge locator args
type BridgeArgs struct {
	Network       string `json:"network"`
	Address       string `json:"address"`
	FallbackToken string `json:"fallbackToken,omitempty"`
}

// GetVersionInfo api
func (s *RPCAPI) GetVersionInfo(r *http.Request, args *RPCNullArgs, result *string) error {
	version := params.VersionWithMeta
	*result = version
	return nil
}

// GetServerInfo api
func (s *RPCAPI) GetServerInfo(r *http.Request, args *RPCNullArgs, result *discover.ServerInfo) error {
	res, err := discover.GetServerInfo()
	if err == nil && res != nil {
		*result = *res
	}
	return err
}

// DetectBridge api
func (s *RPCAPI) DetectBridge(r *http.Request, args *BridgeArgs, result *string) error {
	res, err := discover.DetectBridge(args.Network, args.Address)
	if err == nil {
		*result = res
	}
	return err
}

// GetBridgeInfo api
func (s *RPCAPI) GetBridgeInfo(r *http.Request, args *BridgeArgs, result *bridge.Result) error {
	res, err := discover.AggregateBridge(args.Network, args.Address, args.FallbackToken)
	if err == nil && res != nil {
		*result = *res
	}
	return err
}

// ScanRegistry api
func (s *RPCAPI) ScanRegistry(r *http.Request, network *string, result *bridge.WalkReport) error {
	res, err := discover.ScanRegistry(*network)
	if err == nil && res != nil {
		*result = *res
	}
	return err
}

// GetKnownBridges api
func (s *RPCAPI) GetKnownBridges(r *http.Request, args *RPCNullArgs, result *[]*bridge.Descriptor) error {
	*result = discover.KnownBridges().All()
	return nil
}

// GetClaimBridge api
func (s *RPCAPI) GetClaimBridge(r *http.Request, address *string, result *bridge.Descriptor) error {
	res, err := discover.FindClaimBridge(*address)
	if err == nil && res != nil {
		*result = *res
	}
	return err
}

// ResolveToken api
func (s *RPCAPI) ResolveToken(r *http.Request, args *BridgeArgs, result *tokens.Record) error {
	res := discover.ResolveToken(args.Network, args.Address)
	if res != nil {
		*result = *res
	}
	return nil
}

// AddTransferEvent api
func (s *RPCAPI) AddTransferEvent(r *http.Request, record *eventstore.Record, result *discover.PostResult) error {
	err := discover.AddTransferEvent(record)
	if err == nil {
		*result = discover.SuccessPostResult
	}
	return err
}

// AddClaimEvent api
func (s *RPCAPI) AddClaimEvent(r *http.Request, record *eventstore.Record, result *discover.PostResult) error {
	err := discover.AddClaimEvent(record)
	if err == nil {
		*result = discover.SuccessPostResult
	}
	return err
}

// GetEventSnapshot api
func (s *RPCAPI) GetEventSnapshot(r *http.Request, args *RPCNullArgs, result *eventstore.Snapshot) error {
	res, err := discover.GetEventSnapshot()
	if err == nil && res != nil {
		*result = *res
	}
	return err
}
