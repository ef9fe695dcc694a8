package backend

import (
	"os"
	"sync"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const (
	minPollSeconds = 1
	maxPollSeconds = 60
)

type AppConfig struct {
	WindowWidth         int
	WindowHeight        int
	LastLaunchedVersion string
	EnableSystemTray    bool
	CloseToSystemTray   bool
	ShowNotifications   bool
	PollIntervalSeconds int
	SettingsTab         string
}

type Config struct {
	Application AppConfig
}

func DefaultConfig() *Config {
	return &Config{
		Application: AppConfig{
			WindowWidth:         300,
			WindowHeight:        600,
			LastLaunchedVersion: "",
			EnableSystemTray:    true,
			CloseToSystemTray:   false,
			ShowNotifications:   true,
			PollIntervalSeconds: 3,
			SettingsTab:         "General",
		},
	}
}

// PollInterval is the status poll period, clamped to a sane range.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(clamp(c.Application.PollIntervalSeconds, minPollSeconds, maxPollSeconds)) * time.Second
}

func ReadConfigFile(filepath string) (*Config, error) {
	f, err := os.Open(filepath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c := DefaultConfig()
	if err := toml.NewDecoder(f).Decode(c); err != nil {
		return nil, err
	}

	return c, nil
}

var writeLock sync.Mutex

func (c *Config) WriteConfigFile(filepath string) error {
	if !writeLock.TryLock() {
		return nil // another write in progress
	}
	defer writeLock.Unlock()

	b, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, b, 0o644)
}
