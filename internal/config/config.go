package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvPort        = "ROBOADVISOR_PORT"
	EnvLogLevel    = "ROBOADVISOR_LOG_LEVEL"
	EnvLogFormat   = "ROBOADVISOR_LOG_FORMAT"
	EnvMaxSlotSize = "ROBOADVISOR_MAX_SLOT_SIZE"
)

// DefaultPath is read when no --config flag is given.
const DefaultPath = "roboadvisor.yaml"

// Config is the process configuration shared by every command.
type Config struct {
	Server      ServerConfig `yaml:"server" json:"server"`
	Log         LogConfig    `yaml:"log" json:"log"`
	MaxSlotSize int          `yaml:"max_slot_size" json:"max_slot_size"`
}

type ServerConfig struct {
	Port string `yaml:"port" json:"port"`
}

type LogConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server:      ServerConfig{Port: "8080"},
		Log:         LogConfig{Level: "info", Format: "text"},
		MaxSlotSize: 4096,
	}
}

// Load reads a YAML or JSON file (by extension) over the defaults and then
// applies environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return cfg, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := decode(path, data, &cfg); err != nil {
				return cfg, err
			}
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
		return nil
	}
	// Default to YAML
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvPort); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv(EnvMaxSlotSize); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxSlotSize, err)
		}
		cfg.MaxSlotSize = size
	}
	return nil
}

// Validate rejects settings no command can run with.
func (c Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server.port is required")
	}
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("server.port %q is not a number", c.Server.Port)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	if c.MaxSlotSize <= 0 {
		return fmt.Errorf("max_slot_size must be positive, got %d", c.MaxSlotSize)
	}
	return nil
}
