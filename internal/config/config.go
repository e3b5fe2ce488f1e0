package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultServerAddr is the quiz server the desktop builds shipped with.
const DefaultServerAddr = "williamlung.ddns.net:38000"

type Config struct {
	Server struct {
		Addr    string `yaml:"addr"`
		Timeout string `yaml:"timeout"`
	} `yaml:"server"`
	Debug struct {
		LogFile string `yaml:"log_file"`
	} `yaml:"debug"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	cfg := Config{}
	cfg.Server.Addr = DefaultServerAddr
	return cfg
}

// Load reads YAML config from path.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultServerAddr
	}
	return cfg, nil
}

// Timeout parses a duration string or returns the fallback if empty or
// invalid.
func Timeout(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
