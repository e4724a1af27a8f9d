package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/3dpass/bridge-core/chains"
	"github.com/3dpass/bridge-core/cmd/utils"
	"github.com/3dpass/bridge-core/eventstore"
	"github.com/3dpass/bridge-core/internal/discover"
	"github.com/3dpass/bridge-core/log"
	"github.com/3dpass/bridge-core/params"
	"github.com/3dpass/bridge-core/rpc/client"
	rpcserver "github.com/3dpass/bridge-core/rpc/server"
	"github.com/3dpass/bridge-core/worker"
	"github.com/urfave/cli/v2"
)

var (
	clientIdentifier = "bridgescan"
	// Git SHA1 commit hash of the release (set via linker flags)
	gitCommit = ""
	gitDate   = ""
	// The app that holds all commands and flags.
	app = utils.NewApp(clientIdentifier, gitCommit, gitDate, "the bridgescan command line interface")
)

func initApp() {
	app.Action = bridgescan
	app.HideVersion = true // we have a command to print the version
	app.Commands = []*cli.Command{
		utils.VersionCommand,
		detectCommand,
		bridgeInfoCommand,
		scanCommand,
	}
	app.Flags = []cli.Flag{
		utils.ConfigFileFlag,
		utils.DataDirFlag,
		utils.LogFileFlag,
		utils.LogRotationFlag,
		utils.LogMaxAgeFlag,
		utils.VerbosityFlag,
		utils.JSONFormatFlag,
		utils.ColorFormatFlag,
	}
	sort.Sort(cli.CommandsByName(app.Commands))
}

func main() {
	initApp()
	if err := app.Run(os.Args); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func bridgescan(ctx *cli.Context) error {
	utils.SetLogger(ctx)
	if ctx.NArg() > 0 {
		return fmt.Errorf("invalid command: %q", ctx.Args().Get(0))
	}
	initDiscover(ctx, true)

	worker.StartWork()
	time.Sleep(100 * time.Millisecond)
	rpcserver.StartAPIServer()

	utils.TopWaitGroupWait()
	return nil
}

// initDiscover load config and wire the discovery services. The event
// store is only opened for the long running server.
func initDiscover(ctx *cli.Context, withEventStore bool) {
	configFile := utils.GetConfigFilePath(ctx)
	config := params.LoadConfig(configFile)

	client.InitHTTPClient()

	settings := params.NewMemSettings()
	scanConfig := params.GetScanConfig()
	if scanConfig != nil && scanConfig.SettingsFile != "" {
		if err := params.LoadSettingsFile(settings, scanConfig.SettingsFile); err != nil {
			log.Warn("load settings file failed", "file", scanConfig.SettingsFile, "err", err)
		}
	}

	var events *eventstore.Store
	if withEventStore {
		dataDir := utils.GetDataDir(ctx)
		if dataDir != "" {
			params.SetDataDir(dataDir)
			store, err := eventstore.Open(filepath.Join(dataDir, "events"))
			if err != nil {
				log.Fatal("open event store failed", "datadir", dataDir, "err", err)
			}
			events = store
		} else {
			log.Info("no data dir specified, event cache is disabled")
		}
	}

	workers := 0
	if scanConfig != nil {
		workers = scanConfig.Workers
	}
	discover.Init(chains.NewEVMCaller(), settings, events, workers)
	log.Info("discover initialized", "identifier", config.Identifier, "networks", len(config.Networks))
}

var detectCommand = &cli.Command{
	Action:    detect,
	Name:      "detect",
	Usage:     "Detect the variant of a bridge contract",
	ArgsUsage: "<network> <address>",
	Flags: []cli.Flag{
		utils.ConfigFileFlag,
	},
}

func detect(ctx *cli.Context) error {
	utils.SetLogger(ctx)
	if ctx.NArg() != 2 {
		return fmt.Errorf("usage: detect <network> <address>")
	}
	initDiscover(ctx, false)
	variant, err := discover.DetectBridge(ctx.Args().Get(0), ctx.Args().Get(1))
	if err != nil {
		return err
	}
	fmt.Println(variant)
	return nil
}

var bridgeInfoCommand = &cli.Command{
	Action:    bridgeInfo,
	Name:      "bridgeinfo",
	Usage:     "Detect and aggregate one bridge contract",
	ArgsUsage: "<network> <address>",
	Flags: []cli.Flag{
		utils.ConfigFileFlag,
	},
}

func bridgeInfo(ctx *cli.Context) error {
	utils.SetLogger(ctx)
	if ctx.NArg() != 2 {
		return fmt.Errorf("usage: bridgeinfo <network> <address>")
	}
	initDiscover(ctx, false)
	result, err := discover.AggregateBridge(ctx.Args().Get(0), ctx.Args().Get(1), "")
	if err != nil {
		return err
	}
	return printJSON(result)
}

var scanCommand = &cli.Command{
	Action:    scan,
	Name:      "scan",
	Usage:     "Walk the bridge registry of a network",
	ArgsUsage: "<network>",
	Flags: []cli.Flag{
		utils.ConfigFileFlag,
	},
}

func scan(ctx *cli.Context) error {
	utils.SetLogger(ctx)
	if ctx.NArg() != 1 {
		return fmt.Errorf("usage: scan <network>")
	}
	initDiscover(ctx, false)
	report, err := discover.ScanRegistry(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	return printJSON(report)
}

func printJSON(value interface{}) error {
	jsonData, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(jsonData))
	return nil
}
