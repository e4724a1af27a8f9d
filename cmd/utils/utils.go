package utils

import (
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/3dpass/bridge-core/log"
	"github.com/3dpass/bridge-core/params"
	"github.com/urfave/cli/v2"
)

var (
	clientIdentifier string
	gitCommit        string
	gitDate          string

	// TopWaitGroup wait group of top level goroutines
	TopWaitGroup = new(sync.WaitGroup)
	// CleanupChan call cleanup and exit when closed
	CleanupChan = make(chan struct{})
)

// NewApp creates an app with sane defaults.
func NewApp(identifier, gitcommit, gitdate, usage string) *cli.App {
	clientIdentifier = identifier
	gitCommit = gitcommit
	gitDate = gitdate
	app := cli.NewApp()
	app.Name = filepath.Base(os.Args[0])
	app.Version = params.VersionWithCommit(gitCommit, gitDate)
	app.Usage = usage
	return app
}

// TopWaitGroupWait wait exit signal and then wait top level goroutines
// to finish their cleanup.
func TopWaitGroupWait() {
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-signalChan
	log.Info("receive exit signal", "signal", sig)
	close(CleanupChan)
	TopWaitGroup.Wait()
}
