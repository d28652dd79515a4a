package panel

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/gwillem/scara/pkg/command"
	"github.com/gwillem/scara/pkg/render"
	"github.com/gwillem/scara/pkg/transport"
)

// DefaultConfigFile is read when no other config path is given.
const DefaultConfigFile = "scara.json"

// DefaultStep is how far one key press moves a slider.
const DefaultStep = 8

// Config holds the panel configuration. Values come from the defaults, then
// the config file, then the environment.
type Config struct {
	Broker         string `json:"broker" env:"SCARA_BROKER"`
	ClientID       string `json:"client_id,omitempty" env:"SCARA_CLIENT_ID"`
	TopicRoot      string `json:"topic_root" env:"SCARA_TOPIC_ROOT"`
	Hz             int    `json:"hz" env:"SCARA_HZ"`
	Step           int    `json:"step" env:"SCARA_STEP"`
	ConnectTimeout int    `json:"connect_timeout_sec" env:"SCARA_CONNECT_TIMEOUT"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Broker:         transport.DefaultBroker,
		TopicRoot:      command.DefaultRoot,
		Hz:             render.DefaultHz,
		Step:           DefaultStep,
		ConnectTimeout: int(transport.DefaultConnectTimeout / time.Second),
	}
}

// Timeout returns the connect timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.ConnectTimeout) * time.Second
}

// LoadConfigFrom loads configuration from path, falling back to the
// defaults when the file does not exist, and applies environment overrides.
func LoadConfigFrom(path string) (*Config, error) {
	cfg, err := ReadConfigFile(path)
	if err != nil {
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.fillDefaults()
	return cfg, nil
}

// ReadConfigFile loads configuration from path over the defaults, without
// environment overrides. A missing file yields the defaults.
func ReadConfigFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config file: %w", err)
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config JSON: %w", err)
		}
	}

	cfg.fillDefaults()
	return &cfg, nil
}

// fillDefaults replaces empty or invalid values with the defaults.
func (c *Config) fillDefaults() {
	def := DefaultConfig()
	if c.Broker == "" {
		c.Broker = def.Broker
	}
	if c.TopicRoot == "" {
		c.TopicRoot = def.TopicRoot
	}
	if c.Hz <= 0 {
		c.Hz = def.Hz
	}
	if c.Step <= 0 {
		c.Step = def.Step
	}
	if c.ConnectTimeout <= 0 {
		c.ConnectTimeout = def.ConnectTimeout
	}
}

// SaveTo saves configuration to a specific file
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
