// Package discover wires the detector, aggregator, walker, claim
// discriminant and event cache together behind the API surface the rpc
// handlers expose.
package discover

import (
	"errors"

	"github.com/3dpass/bridge-core/bridge"
	"github.com/3dpass/bridge-core/chains"
	"github.com/3dpass/bridge-core/eventstore"
	"github.com/3dpass/bridge-core/log"
	"github.com/3dpass/bridge-core/params"
	"github.com/3dpass/bridge-core/tokens"
)

// ErrNoEventStore no data dir was configured, the event cache is disabled
var ErrNoEventStore = errors.New("event store is not configured")

var (
	caller     chains.Caller
	settings   params.Settings
	resolver   *tokens.Resolver
	aggregator *bridge.Aggregator
	walker     *bridge.Walker
	known      *bridge.Set
	events     *eventstore.Store
)

// Init wire the discovery services. events may be nil when no data dir
// is configured; event endpoints then answer with an error.
func Init(chainCaller chains.Caller, sessionSettings params.Settings, eventStore *eventstore.Store, walkWorkers int) {
	caller = chainCaller
	settings = sessionSettings
	resolver = tokens.NewResolver(caller, settings)
	aggregator = bridge.NewAggregator(caller, resolver)
	walker = bridge.NewWalker(caller, aggregator, walkWorkers)
	known = bridge.NewSet()
	events = eventStore
	log.Info("discover service initialized", "walkWorkers", walkWorkers)
}

// Settings the session settings tier
func Settings() params.Settings {
	return settings
}

// KnownBridges the current descriptor set
func KnownBridges() *bridge.Set {
	return known
}

// DetectBridge classify the bridge at address
func DetectBridge(networkKey, address string) (string, error) {
	variant, err := bridge.DetectVariant(caller, networkKey, address)
	if err != nil {
		return "", err
	}
	return variant.String(), nil
}

// AggregateBridge detect and aggregate one bridge, remembering the
// resulting descriptor for later claim matching.
func AggregateBridge(networkKey, address, fallbackToken string) (*bridge.Result, error) {
	result, err := aggregator.Aggregate(networkKey, address, fallbackToken)
	if err != nil {
		return nil, err
	}
	known.Put(result.Descriptor)
	if result.OracleSuggestion != nil {
		log.Info("oracle needs addition", "network", networkKey,
			"oracle", result.OracleSuggestion.Address, "key", result.OracleSuggestion.Key)
	}
	return result, nil
}

// ScanRegistry walk the registry of a network and remember every
// successfully aggregated descriptor.
func ScanRegistry(networkKey string) (*bridge.WalkReport, error) {
	report, err := walker.Walk(networkKey)
	if err != nil {
		return nil, err
	}
	for _, d := range report.Bridges {
		known.Put(d)
	}
	return report, nil
}

// FindClaimBridge pick the paired bridge a claim for a transfer filed on
// sourceAddress belongs on.
func FindClaimBridge(sourceAddress string) (*bridge.Descriptor, error) {
	return bridge.FindClaimBridge(sourceAddress, known.All())
}

// ResolveToken resolve a token address on a network
func ResolveToken(networkKey, address string) *tokens.Record {
	record, _ := resolver.Resolve(networkKey, address)
	return record
}

// AddTransferEvent upsert a transfer record into the event cache
func AddTransferEvent(record *eventstore.Record) error {
	if events == nil {
		return ErrNoEventStore
	}
	return events.UpsertTransfer(record)
}

// AddClaimEvent upsert a claim record into the event cache
func AddClaimEvent(record *eventstore.Record) error {
	if events == nil {
		return ErrNoEventStore
	}
	return events.UpsertClaim(record)
}

// GetEventSnapshot unified view of cached transfers and claims
func GetEventSnapshot() (*eventstore.Snapshot, error) {
	if events == nil {
		return &eventstore.Snapshot{}, nil
	}
	return events.GetSnapshot()
}
