package worker

import (
	"strings"

	"github.com/3dpass/bridge-core/cmd/utils"
	"github.com/3dpass/bridge-core/internal/discover"
	"github.com/3dpass/bridge-core/log"
	"github.com/3dpass/bridge-core/params"
	"github.com/fsnotify/fsnotify"
)

// WatchSettingsFile reload the session settings overlay when the
// configured settings file changes on disk.
func WatchSettingsFile() {
	scanConfig := params.GetScanConfig()
	if scanConfig == nil || scanConfig.SettingsFile == "" {
		log.Warn("settings file is empty, nothing to watch")
		return
	}

	watch, err := fsnotify.NewWatcher()
	if err != nil {
		log.Error("fsnotify.NewWatcher failed", "err", err)
		return
	}

	err = watch.Add(scanConfig.SettingsFile)
	if err != nil {
		log.Error("watch.Add settings file failed", "file", scanConfig.SettingsFile, "err", err)
		return
	}

	utils.TopWaitGroup.Add(1)
	go startWatcher(watch)
}

func startWatcher(watch *fsnotify.Watcher) {
	log.Info("start fsnotify watch")
	defer func() {
		log.Info("stop fsnotify watch")
		_ = watch.Close()
		utils.TopWaitGroup.Done()
	}()

	ops := []fsnotify.Op{
		fsnotify.Create,
		fsnotify.Write,
	}

	for {
		select {
		case <-utils.CleanupChan:
			return
		case ev, ok := <-watch.Events:
			if !ok {
				continue
			}
			log.Trace("fsnotify watch event", "event", ev)
			for _, op := range ops {
				if ev.Op&op == op {
					err := reloadSettings(ev.Name)
					if err != nil {
						log.Info("reload settings error", "settingsFile", ev.Name, "err", err)
					}
					break
				}
			}
		case werr, ok := <-watch.Errors:
			if !ok {
				continue
			}
			log.Warn("fsnotify watch error", "err", werr)
		}
	}
}

func reloadSettings(fileName string) error {
	if !strings.HasSuffix(fileName, ".toml") {
		return nil
	}
	settings := discover.Settings()
	if settings == nil {
		return nil
	}
	return params.LoadSettingsFile(settings, fileName)
}
