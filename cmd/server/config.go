package main

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the server settings read from config.toml.
type Config struct {
	Port                 string `toml:"port"`
	DefaultGridSize      int    `toml:"default_grid_size"`
	DefaultLevel         int    `toml:"default_level"`
	PathTimeLimitSeconds int    `toml:"path_time_limit_seconds"`
}

func defaultConfig() Config {
	return Config{
		Port:                 "8080",
		DefaultGridSize:      7,
		DefaultLevel:         1,
		PathTimeLimitSeconds: 240,
	}
}

// LoadConfig reads filename, falling back to defaults when the file is
// absent. A PORT environment variable overrides the configured port.
func LoadConfig(filename string) (Config, error) {
	config := defaultConfig()
	if _, err := os.Stat(filename); err == nil {
		if _, err := toml.DecodeFile(filename, &config); err != nil {
			return config, err
		}
	}
	if port := os.Getenv("PORT"); port != "" {
		config.Port = port
	}
	return config, nil
}
