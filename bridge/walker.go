package bridge

import (
	"fmt"
	"strings"
	"sync"

	"github.com/3dpass/bridge-core/chains"
	"github.com/3dpass/bridge-core/log"
	"github.com/3dpass/bridge-core/params"
	"github.com/3dpass/bridge-core/tokens"
)

const defaultWalkWorkers = 4

// walkKeySymbolRemaps maps wrapped representations to the symbol users
// know the route by when deriving result keys.
var walkKeySymbolRemaps = map[string]string{
	"WP3D": "P3D",
	"WETH": "ETH",
	"WBNB": "BNB",
}

// Assistant is a pooled assistant contract serving one bridge.
type Assistant struct {
	Address       string
	BridgeAddress string
	ShareSymbol   string
}

// WalkReport collects the outcome of one registry walk. Failures are
// isolated per address: one bridge failing never removes its siblings.
type WalkReport struct {
	NetworkKey string

	Bridges      map[string]*Descriptor
	BridgeErrors map[string]error

	Assistants      map[string]*Assistant
	AssistantErrors map[string]error

	Suggestions []*tokens.OracleSuggestion

	TotalBridges     int
	SuccessBridges   int
	FailedBridges    int
	TotalAssistants  int
	SuccessAssistant int
	FailedAssistant  int
	NewTokens        int
}

// Walker enumerates the bridge and assistant addresses known to a
// network's registry contract and drives the aggregator over each
// independently with a bounded worker count.
type Walker struct {
	caller     chains.Caller
	aggregator *Aggregator
	workers    int
}

// NewWalker create a registry walker. workers <= 0 selects the default.
func NewWalker(caller chains.Caller, aggregator *Aggregator, workers int) *Walker {
	if workers <= 0 {
		workers = defaultWalkWorkers
	}
	return &Walker{caller: caller, aggregator: aggregator, workers: workers}
}

// Walk enumerate and aggregate everything the registry knows.
func (w *Walker) Walk(networkKey string) (*WalkReport, error) {
	netCfg := params.GetNetworkConfig(networkKey)
	if netCfg == nil {
		return nil, fmt.Errorf("%w: %v", chains.ErrUnknownNetwork, networkKey)
	}
	if netCfg.Registry == "" {
		return nil, fmt.Errorf("%w: %v", ErrNoRegistry, networkKey)
	}

	bridgeAddrs, err := chains.CallGetAddressSlice(w.caller, networkKey, netCfg.Registry, chains.SelGetAllBridges)
	if err != nil {
		return nil, fmt.Errorf("read registry bridges failed: %w", err)
	}
	// assistants are optional registry content
	assistantAddrs, err := chains.CallGetAddressSlice(w.caller, networkKey, netCfg.Registry, chains.SelGetAllAssistants)
	if err != nil {
		log.Warn("read registry assistants failed", "network", networkKey, "registry", netCfg.Registry, "err", err)
		assistantAddrs = nil
	}

	report := &WalkReport{
		NetworkKey:      networkKey,
		Bridges:         make(map[string]*Descriptor, len(bridgeAddrs)),
		BridgeErrors:    make(map[string]error),
		Assistants:      make(map[string]*Assistant, len(assistantAddrs)),
		AssistantErrors: make(map[string]error),
		TotalBridges:    len(bridgeAddrs),
		TotalAssistants: len(assistantAddrs),
	}

	w.walkBridges(networkKey, bridgeAddrs, report)
	w.walkAssistants(networkKey, assistantAddrs, report)

	log.Info("registry walk finished", "network", networkKey,
		"bridges", report.TotalBridges, "bridgesOK", report.SuccessBridges, "bridgesFailed", report.FailedBridges,
		"assistants", report.TotalAssistants, "assistantsOK", report.SuccessAssistant, "assistantsFailed", report.FailedAssistant,
		"newTokens", report.NewTokens)
	return report, nil
}

func (w *Walker) walkBridges(networkKey string, addrs []string, report *WalkReport) {
	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		jobs = make(chan string)
	)
	for i := 0; i < w.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for addr := range jobs {
				result, err := w.aggregator.Aggregate(networkKey, addr, "")
				mu.Lock()
				if err != nil {
					report.BridgeErrors[strings.ToLower(addr)] = err
					report.FailedBridges++
					log.Warn("aggregate bridge failed", "network", networkKey, "bridge", addr,
						"invalidOracle", IsInvalidOracle(err), "err", err)
				} else {
					report.Bridges[deriveKey(report.Bridges, result.Descriptor)] = result.Descriptor
					report.SuccessBridges++
					report.NewTokens += result.NewTokens
					if result.OracleSuggestion != nil {
						report.Suggestions = append(report.Suggestions, result.OracleSuggestion)
					}
				}
				mu.Unlock()
			}
		}()
	}
	for _, addr := range addrs {
		jobs <- addr
	}
	close(jobs)
	wg.Wait()
}

func (w *Walker) walkAssistants(networkKey string, addrs []string, report *WalkReport) {
	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		jobs = make(chan string)
	)
	for i := 0; i < w.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for addr := range jobs {
				assistant, err := w.aggregateAssistant(networkKey, addr)
				mu.Lock()
				if err != nil {
					report.AssistantErrors[strings.ToLower(addr)] = err
					report.FailedAssistant++
					log.Warn("aggregate assistant failed", "network", networkKey, "assistant", addr, "err", err)
				} else {
					key := fmt.Sprintf("assistant/%v", remapSymbol(assistant.ShareSymbol))
					if _, exist := report.Assistants[key]; exist {
						key = fmt.Sprintf("%v@%v", key, shortAddr(addr))
					}
					report.Assistants[key] = assistant
					report.SuccessAssistant++
				}
				mu.Unlock()
			}
		}()
	}
	for _, addr := range addrs {
		jobs <- addr
	}
	close(jobs)
	wg.Wait()
}

func (w *Walker) aggregateAssistant(networkKey, addr string) (*Assistant, error) {
	bridgeAddr, err := chains.CallGetAddress(w.caller, networkKey, addr, chains.SelBridgeAddress)
	if err != nil {
		return nil, err
	}
	shareSymbol, err := chains.CallGetString(w.caller, networkKey, addr, chains.SelSymbol)
	if err != nil {
		return nil, err
	}
	return &Assistant{
		Address:       strings.ToLower(addr),
		BridgeAddress: bridgeAddr.LowerHex(),
		ShareSymbol:   shareSymbol,
	}, nil
}

// deriveKey builds the human readable result key: variant and foreign
// token symbol with remaps applied. Key collisions (two routes of the
// same symbol) keep both entries distinct via an address suffix.
func deriveKey(existing map[string]*Descriptor, d *Descriptor) string {
	key := fmt.Sprintf("%v/%v", d.Variant.String(), remapSymbol(d.ForeignToken.Symbol))
	if _, exist := existing[key]; exist {
		key = fmt.Sprintf("%v@%v", key, shortAddr(d.Address))
	}
	return key
}

func remapSymbol(symbol string) string {
	if remapped, exist := walkKeySymbolRemaps[strings.ToUpper(symbol)]; exist {
		return remapped
	}
	return symbol
}

func shortAddr(addr string) string {
	addr = strings.ToLower(strings.TrimPrefix(addr, "0x"))
	if len(addr) > 8 {
		addr = addr[:8]
	}
	return addr
}
