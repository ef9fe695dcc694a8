package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"atvremote/pkg/logger"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env     string        `yaml:"env" toml:"env" env:"APP_ENV" env-default:"production" env-description:"Environment [production, local]"`
	Debug   bool          `yaml:"debug" toml:"debug" env:"APP_DEBUG" env-default:"false" env-description:"Enables debug mode"`
	Logger  logger.Config `yaml:"logger" toml:"logger"`
	Storage Storage       `yaml:"storage" toml:"storage"`
	Bridge  Bridge        `yaml:"bridge" toml:"bridge"`
}

type Storage struct {
	DataDir string `yaml:"data_dir" toml:"data_dir" env:"ATV_DATA_DIR" env-description:"Directory holding ips.json, language.json and translations.json"`
}

type Bridge struct {
	Path    string        `yaml:"path" toml:"path" env:"ATV_BRIDGE_PATH" env-description:"Path to the adb executable"`
	Timeout time.Duration `yaml:"timeout" toml:"timeout" env:"ATV_BRIDGE_TIMEOUT" env-default:"10s" env-description:"Upper bound for a single adb call, 0 disables"`
}

// New reads configPath (yml or toml) overlaid with the environment. A
// missing file is not an error; the environment and defaults are used.
func New(configPath string, skipConfig bool) (*Config, error) {
	cfg := &Config{}

	if skipConfig || configPath == "" {
		return cfg, cleanenv.ReadEnv(cfg)
	}

	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		return cfg, cleanenv.ReadEnv(cfg)
	}

	return cfg, cleanenv.ReadConfig(configPath, cfg)
}

// Usage describes the supported environment variables.
func Usage() string {
	desc, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return ""
	}
	return desc
}
