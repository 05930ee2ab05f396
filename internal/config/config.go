package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/trellomcp/trello-mcp/internal/common"
)

// Config holds all trello-mcp configuration. Credentials are deliberately
// absent: they come only from the process environment and are resolved on
// every request.
type Config struct {
	Server  ServerConfig         `toml:"server"`
	Trello  TrelloConfig         `toml:"trello"`
	Logging common.LoggingConfig `toml:"logging"`
}

// ServerConfig holds MCP server settings.
type ServerConfig struct {
	Name string `toml:"name"`
	Port string `toml:"port"`
}

// TrelloConfig holds remote API settings.
type TrelloConfig struct {
	BaseURL  string `toml:"base_url"`
	Timeout  string `toml:"timeout"`
	BasePath string `toml:"base_path"` // optional endpoint path for the streamable HTTP transport
}

// GetTimeout parses and returns the HTTP timeout duration.
func (c *TrelloConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// NewDefaultConfig returns a Config with sensible defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Name: "trello-mcp",
			Port: "4280",
		},
		Trello: TrelloConfig{
			BaseURL: "https://api.trello.com/1",
			Timeout: "30s",
		},
		Logging: common.LoggingConfig{
			Level:      "info",
			Outputs:    []string{"console", "file"},
			FilePath:   "logs/trello-mcp.log",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
	}
}

// Load loads configuration with priority: defaults -> file -> env.
// A missing config file is not an error; the defaults apply.
func Load(path string) (*Config, error) {
	cfg := NewDefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		} else if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to config.
func applyEnvOverrides(cfg *Config) {
	if url := os.Getenv("TRELLO_BASE_URL"); url != "" {
		cfg.Trello.BaseURL = url
	}
	if bp := os.Getenv("BASE_PATH"); bp != "" {
		cfg.Trello.BasePath = bp
	}
	if port := os.Getenv("TRELLO_MCP_PORT"); port != "" {
		cfg.Server.Port = port
	}
	if level := os.Getenv("TRELLO_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
}
