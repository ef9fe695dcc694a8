package backend

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"sync"
	"time"

	"atvremote/internal/bridge"
	"atvremote/internal/i18n"
	"atvremote/internal/remote"
	"atvremote/internal/storage"

	"go.uber.org/zap"
)

const (
	configFile          = "config.toml"
	configWriteInterval = 2 * time.Minute
)

var ErrNoDataDir = errors.New("data directory unavailable")

// Options carries what StartupApp needs from the process configuration.
type Options struct {
	AppName       string
	Version       string
	DataDir       string
	BridgePath    string
	BridgeTimeout time.Duration

	// Runner replaces the located adb executable.
	Runner bridge.Runner
	// DetectLanguage picks the first-launch language. Defaults to the
	// OS locale.
	DetectLanguage storage.LanguageDetector
}

type App struct {
	Config     *Config
	Docs       *storage.Documents
	Translator *i18n.Translator
	Remote     *remote.Controller

	// Bridge is nil when Options.Runner was supplied.
	Bridge *bridge.Exec

	// UI callback to be set in main
	OnExit func()

	storage *storage.AppStorage

	appName       string
	appVersion    string
	isFirstLaunch bool // set by config file reader
	bgrndCtx      context.Context
	cancel        context.CancelFunc

	cfgMu          sync.Mutex
	lastWrittenCfg Config
}

func StartupApp(opts Options) (*App, error) {
	appStorage, err := storage.NewAppStorage(opts.DataDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoDataDir, err)
	}

	detect := opts.DetectLanguage
	if detect == nil {
		detect = i18n.DetectLanguage
	}
	docs, err := storage.OpenDocuments(appStorage, detect)
	if err != nil {
		return nil, fmt.Errorf("load documents: %w", err)
	}

	a := &App{
		Docs:       docs,
		Translator: i18n.NewTranslator(docs.Translations(), docs.Language()),
		storage:    appStorage,
		appName:    opts.AppName,
		appVersion: opts.Version,
	}

	runner := opts.Runner
	if runner == nil {
		path, err := bridge.Locate(opts.BridgePath)
		if err != nil {
			zap.S().Warnw("adb not found, device calls will fail", "error", err)
		}
		a.Bridge = bridge.New(path, opts.BridgeTimeout)
		runner = a.Bridge
	}
	a.Remote = remote.NewController(runner, docs)

	a.bgrndCtx, a.cancel = context.WithCancel(context.Background())
	a.readConfig()

	zap.S().Infof("Starting %s %s...", a.appName, a.appVersion)
	zap.S().Infof("Using data dir: %s", appStorage.ConfigPath())
	if a.Bridge != nil {
		zap.S().Infof("Using adb: %s", a.Bridge.Path())
	}

	a.startConfigWriter(a.bgrndCtx)

	return a, nil
}

func (a *App) VersionTag() string {
	return a.appVersion
}

func (a *App) IsFirstLaunch() bool {
	return a.isFirstLaunch
}

func (a *App) DataDir() string {
	return a.storage.ConfigPath()
}

// Context is cancelled by Shutdown.
func (a *App) Context() context.Context {
	return a.bgrndCtx
}

// SetLanguage persists the choice and switches the translator.
func (a *App) SetLanguage(lang string) error {
	if err := a.Docs.SetLanguage(lang); err != nil {
		return err
	}
	a.Translator.SetLanguage(lang)
	return nil
}

func (a *App) readConfig() {
	cfgPath := a.configFilePath()
	a.isFirstLaunch = !a.storage.FileExists(cfgPath)

	cfg, err := ReadConfigFile(cfgPath)
	if err != nil {
		cfg = DefaultConfig()
		if !a.isFirstLaunch {
			backupCfgName := fmt.Sprintf("%s.bak", configFile)
			backupPath := filepath.Join(a.storage.ConfigPath(), backupCfgName)
			zap.S().Warnf("Config file may be malformed: copying to %s: %v", backupCfgName, err)
			_ = a.storage.CopyFile(cfgPath, backupPath)
		}
	}
	a.Config = cfg
}

func (a *App) startConfigWriter(ctx context.Context) {
	tick := time.NewTicker(configWriteInterval)
	go func() {
		defer tick.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-tick.C:
				if a.configChanged() {
					a.SaveConfigFile()
				}
			}
		}
	}()
}

func (a *App) configChanged() bool {
	a.cfgMu.Lock()
	defer a.cfgMu.Unlock()
	return !reflect.DeepEqual(&a.lastWrittenCfg, a.Config)
}

func (a *App) callOnExit() error {
	if a.OnExit == nil {
		return errors.New("no quit handler registered")
	}
	go func() {
		time.Sleep(10 * time.Millisecond)
		a.OnExit()
	}()
	return nil
}

// Quit asks the UI to exit.
func (a *App) Quit() error {
	return a.callOnExit()
}

// Close stops background work without saving preferences.
func (a *App) Close() {
	a.cancel()
}

func (a *App) Shutdown() {
	a.Config.Application.LastLaunchedVersion = a.appVersion
	a.SaveConfigFile()
	a.cancel()
}

func (a *App) SaveConfigFile() {
	a.cfgMu.Lock()
	defer a.cfgMu.Unlock()
	if err := a.Config.WriteConfigFile(a.configFilePath()); err != nil {
		zap.S().Errorw("write config", "error", err)
		return
	}
	a.lastWrittenCfg = *a.Config
}

func (a *App) configFilePath() string {
	return filepath.Join(a.storage.ConfigPath(), configFile)
}

func clamp(i, min, max int) int {
	if i < min {
		i = min
	} else if i > max {
		i = max
	}
	return i
}
