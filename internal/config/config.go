// Package config loads the service configuration from the environment, with
// an optional YAML file overriding per-agent reasoning settings.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const envPrefix = "PHARMINTEL"

// Config is the full service configuration. Every field maps to a
// PHARMINTEL_* environment variable.
type Config struct {
	// OpenAIAPIKey authenticates against the reasoning engine API.
	OpenAIAPIKey string `envconfig:"OPENAI_API_KEY" required:"true"`
	// OpenAIBaseURL overrides the engine endpoint, for proxies and
	// compatible providers.
	OpenAIBaseURL string `envconfig:"OPENAI_BASE_URL"`
	// Model is the default reasoning model for every agent.
	Model       string  `envconfig:"MODEL" default:"gpt-4o"`
	Temperature float32 `envconfig:"TEMPERATURE" default:"0.1"`
	MaxTokens   int     `envconfig:"MAX_TOKENS" default:"4096"`

	// GatewayBaseURL is the data gateway root, without a trailing slash.
	GatewayBaseURL string `envconfig:"GATEWAY_BASE_URL" default:"http://localhost:8000"`
	// SearxngBaseURL is the metasearch instance used by the web agent.
	// Empty disables the web search capability.
	SearxngBaseURL string `envconfig:"SEARXNG_BASE_URL"`

	// DatasetPath points at the intelligence dataset served by the gateway
	// endpoints.
	DatasetPath string `envconfig:"DATASET_PATH" default:"dataset.json"`
	// ReportsDir is where generated report files land.
	ReportsDir string `envconfig:"REPORTS_DIR" default:"reports"`

	// Addr is the HTTP listen address.
	Addr     string `envconfig:"ADDR" default:":8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// AgentsFile optionally points at a YAML file with per-agent overrides.
	AgentsFile string `envconfig:"AGENTS_FILE"`

	// Agents holds the per-agent overrides loaded from AgentsFile, keyed by
	// agent name.
	Agents map[string]AgentOverride `ignored:"true"`
}

// AgentOverride tunes one agent's reasoning settings without recompiling.
// Zero values leave the built-in setting in place.
type AgentOverride struct {
	Model         string  `yaml:"model"`
	Temperature   float32 `yaml:"temperature"`
	MaxTokens     int     `yaml:"max_tokens"`
	MaxIterations int     `yaml:"max_iterations"`
	SystemPrompt  string  `yaml:"system_prompt"`
}

// Load reads the configuration from the environment and, when configured,
// the agents override file.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg.GatewayBaseURL = strings.TrimSuffix(cfg.GatewayBaseURL, "/")
	if cfg.AgentsFile != "" {
		agents, err := loadAgentsFile(cfg.AgentsFile)
		if err != nil {
			return nil, err
		}
		cfg.Agents = agents
	}
	return &cfg, nil
}

func loadAgentsFile(path string) (map[string]AgentOverride, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read agents file: %w", err)
	}
	var doc struct {
		Agents map[string]AgentOverride `yaml:"agents"`
	}
	if err := yaml.Unmarshal(bs, &doc); err != nil {
		return nil, fmt.Errorf("config: parse agents file: %w", err)
	}
	return doc.Agents, nil
}

// Agent returns the override for the named agent, or the zero override.
func (c *Config) Agent(name string) AgentOverride {
	return c.Agents[name]
}

// SlogLevel maps the configured level name to a slog level, defaulting to
// info on an unknown name.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
