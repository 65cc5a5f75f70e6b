// Package config loads the server configuration from a YAML file.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Server holds the serve command's settings. Flags override file values.
type Server struct {
	Addr     string `yaml:"addr"`
	DataDir  string `yaml:"dataDir"`
	LogLevel string `yaml:"logLevel"`
}

// Defaults returns the built-in server settings.
func Defaults() Server {
	return Server{
		Addr:     ":8080",
		DataDir:  "./data",
		LogLevel: "info",
	}
}

// Load reads a YAML config file over the defaults. An empty path or a
// missing file yields the defaults unchanged.
func Load(path string) (Server, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}
