package cmd

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"atvremote/backend"
	"atvremote/internal/bridge"
	"atvremote/internal/config"
	"atvremote/internal/storage"
	logg "atvremote/pkg/logger"
	"atvremote/res"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	//go:embed version.txt
	version string

	configPath = "config.yml"
	skipConfig = false

	// runnerOverride replaces the located adb executable in tests.
	runnerOverride bridge.Runner
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     res.AppName,
	Short:   "Android TV remote control over adb.",
	Long:    "A desktop remote for Android TV devices. Without a subcommand it opens the remote window; the subcommands drive the same device connection from the shell.",
	RunE:    runGUI,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// resolveConfig or exit with error
func resolveConfig() *config.Config {
	cfg, err := config.New(configPath, skipConfig)
	if err != nil {
		fmt.Printf("unable to initialize config: %s\n", err.Error())
		os.Exit(1)
	}

	if skipConfig {
		fmt.Println("Skipped file-based configuration, using only ENV")
	}

	return cfg
}

// setupLogger installs the process logger. Logs go to the data
// directory unless the config names another place.
func setupLogger(cfg *config.Config) *zap.Logger {
	lc := cfg.Logger
	if cfg.Debug {
		lc.Level = "debug"
	}
	if lc.Dir == "" {
		dataDir := cfg.Storage.DataDir
		if dataDir == "" {
			dataDir, _ = storage.DefaultDataDir()
		}
		lc.Dir = filepath.Join(dataDir, "logs")
	}

	logger := logg.New(lc).Desugar()
	zap.ReplaceGlobals(logger)
	return logger
}

func appVersion() string {
	return strings.TrimSpace(version)
}

func startApp(cfg *config.Config) (*backend.App, error) {
	return backend.StartupApp(backend.Options{
		AppName:       res.AppName,
		Version:       appVersion(),
		DataDir:       cfg.Storage.DataDir,
		BridgePath:    cfg.Bridge.Path,
		BridgeTimeout: cfg.Bridge.Timeout,
		Runner:        runnerOverride,
	})
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yml", "path to yml or toml config")
	rootCmd.PersistentFlags().BoolVar(&skipConfig, "skip-config", false, "skips config and uses ENV only")
	rootCmd.SilenceUsage = true
	rootCmd.Version = appVersion()
}
