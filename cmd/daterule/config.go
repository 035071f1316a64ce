package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// config holds the settings shared by all commands. Values from the config
// file are overridden by flags set on the command line.
type config struct {
	Calendar string `yaml:"calendar" toml:"calendar"`
	Database string `yaml:"database" toml:"database"`
	Table    string `yaml:"table" toml:"table"`
	Holidays string `yaml:"holidays" toml:"holidays"`
	Lenient  bool   `yaml:"lenient" toml:"lenient"`
	LogLevel string `yaml:"log_level" toml:"log_level"`
}

func defaultConfig() config {
	return config{LogLevel: "warn"}
}

// loadConfig reads a YAML or TOML config file into cfg, detecting the
// format from the file extension.
func loadConfig(path string, cfg *config) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return fmt.Errorf("YAML parse error: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(content, cfg); err != nil {
			return fmt.Errorf("TOML parse error: %w", err)
		}
	default:
		return fmt.Errorf("unsupported config format: %s", path)
	}
	return nil
}
