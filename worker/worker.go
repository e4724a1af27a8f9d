// Package worker runs the background discovery jobs.
package worker

import (
	"time"

	"github.com/3dpass/bridge-core/internal/discover"
	"github.com/3dpass/bridge-core/params"
	"github.com/3dpass/bridge-core/rpc/client"
)

const interval = 10 * time.Millisecond

// StartWork start discovery background work
func StartWork() {
	logWorker("worker", "start discovery worker")

	client.InitHTTPClient()

	go StartRescanJob()
	time.Sleep(interval)

	go WatchSettingsFile()
}

// StartRescanJob periodically walk the registries of every configured
// network so newly deployed bridges show up without a restart.
func StartRescanJob() {
	scanConfig := params.GetScanConfig()
	if scanConfig == nil || scanConfig.IntervalSeconds == 0 {
		logWorker("rescan", "registry rescan disabled")
		return
	}
	restInterval := time.Duration(scanConfig.IntervalSeconds) * time.Second
	logWorker("rescan", "start registry rescan job", "interval", restInterval.String())

	for {
		rescanNetworks()
		restInJob(restInterval)
	}
}

// rescanNetworks walks the registry of every network that has one,
// returning how many walks finished and how many failed.
func rescanNetworks() (scanned, failed int) {
	for _, network := range params.GetConfig().Networks {
		if network.Registry == "" {
			continue
		}
		report, err := discover.ScanRegistry(network.Key)
		if err != nil {
			logWorkerError("rescan", "scan registry failed", err, "network", network.Key)
			failed++
			continue
		}
		scanned++
		logWorker("rescan", "scan registry finished", "network", network.Key,
			"bridges", report.TotalBridges, "bridgesOK", report.SuccessBridges,
			"bridgesFailed", report.FailedBridges, "assistants", report.TotalAssistants,
			"newTokens", report.NewTokens)
	}
	return scanned, failed
}
