package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration structure.
type Config struct {
	Gateway    GatewayConfig    `yaml:"gateway"`
	Confluence ConfluenceConfig `yaml:"confluence"`
	LogLevel   string           `yaml:"log_level"`
}

type GatewayConfig struct {
	Env         string   `yaml:"env"`      // environment name, selects the endpoint
	Endpoint    string   `yaml:"endpoint"` // explicit endpoint, overrides env
	JWTEnv      string   `yaml:"jwt_env"`  // env var holding the gateway credential
	Provider    string   `yaml:"provider"`
	Model       string   `yaml:"model"`
	MaxTokens   int      `yaml:"max_tokens"`
	Temperature *float64 `yaml:"temperature,omitempty"`
	TopP        *float64 `yaml:"top_p,omitempty"`
	Timeout     string   `yaml:"timeout"`
}

type ConfluenceConfig struct {
	BaseURL  string `yaml:"base_url"`
	SpaceKey string `yaml:"space_key"`
	Timeout  string `yaml:"timeout"`
}

// endpoints maps gateway environment names to their API base URLs.
var endpoints = map[string]string{
	"prod": "https://caas.api.godaddy.com",
	"dev":  "https://caas.api.dev-godaddy.com",
	"test": "https://caas.api.test-godaddy.com",
}

// JWT returns the resolved gateway credential token.
func (c *Config) JWT() string {
	env := c.Gateway.JWTEnv
	if env == "" {
		env = "GATEWAY_JWT"
	}
	return os.Getenv(env)
}

// Endpoint returns the gateway base URL: explicit endpoint if set, otherwise
// derived from the environment name.
func (c *Config) Endpoint() string {
	if c.Gateway.Endpoint != "" {
		return c.Gateway.Endpoint
	}
	if url, ok := endpoints[c.Gateway.Env]; ok {
		return url
	}
	return endpoints["prod"]
}

// ConfluenceEmail returns the Confluence account email from the environment.
func (c *Config) ConfluenceEmail() string {
	return os.Getenv("CONFLUENCE_EMAIL")
}

// ConfluenceToken returns the Confluence API token from the environment.
func (c *Config) ConfluenceToken() string {
	return os.Getenv("CONFLUENCE_API_TOKEN")
}

// GatewayTimeout parses the configured gateway HTTP timeout.
func (c *Config) GatewayTimeout() time.Duration {
	return parseTimeout(c.Gateway.Timeout)
}

// ConfluenceTimeout parses the configured Confluence HTTP timeout.
func (c *Config) ConfluenceTimeout() time.Duration {
	return parseTimeout(c.Confluence.Timeout)
}

func parseTimeout(s string) time.Duration {
	if s != "" {
		if d, err := time.ParseDuration(s); err == nil {
			return d
		}
	}
	return 30 * time.Second
}

// Validate checks the configuration required by every command.
// It must pass before any network call is made.
func (c *Config) Validate() error {
	if c.JWT() == "" {
		env := c.Gateway.JWTEnv
		if env == "" {
			env = "GATEWAY_JWT"
		}
		return fmt.Errorf("missing required environment variable: %s", env)
	}
	if c.Gateway.Model == "" {
		return fmt.Errorf("gateway.model is required")
	}
	return nil
}

// ValidatePublish checks the additional configuration the publish command needs.
func (c *Config) ValidatePublish() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Confluence.BaseURL == "" {
		return fmt.Errorf("missing Confluence base URL: set CONFLUENCE_BASE_URL or confluence.base_url")
	}
	if c.Confluence.SpaceKey == "" {
		return fmt.Errorf("missing Confluence space key: set CONFLUENCE_SPACE_KEY or confluence.space_key")
	}
	if c.ConfluenceEmail() == "" {
		return fmt.Errorf("missing required environment variable: CONFLUENCE_EMAIL")
	}
	if c.ConfluenceToken() == "" {
		return fmt.Errorf("missing required environment variable: CONFLUENCE_API_TOKEN")
	}
	return nil
}

// Load resolves config from defaults → user file → project file → environment.
// A .env file in the working directory is honored, matching the original tool's
// dotenv behavior.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	// user-level config
	if home, err := os.UserHomeDir(); err == nil {
		userPath := filepath.Join(home, ".docuflux", "config.yaml")
		if err := mergeFile(cfg, userPath); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("loading user config: %w", err)
		}
	}

	// project-level config (highest file priority)
	projectPath := filepath.Join(".docuflux", "config.yaml")
	if err := mergeFile(cfg, projectPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	// environment overrides
	if v := os.Getenv("GATEWAY_ENV"); v != "" {
		cfg.Gateway.Env = v
	}
	if v := os.Getenv("CONFLUENCE_BASE_URL"); v != "" {
		cfg.Confluence.BaseURL = v
	}
	if v := os.Getenv("CONFLUENCE_SPACE_KEY"); v != "" {
		cfg.Confluence.SpaceKey = v
	}

	return cfg, nil
}

func mergeFile(dst *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, dst)
}

func defaults() *Config {
	return &Config{
		Gateway: GatewayConfig{
			Env:       "prod",
			JWTEnv:    "GATEWAY_JWT",
			Provider:  "anthropic_chat",
			Model:     "claude-3-sonnet-20240229-v1:0",
			MaxTokens: 4000,
			Timeout:   "30s",
		},
		Confluence: ConfluenceConfig{
			Timeout: "30s",
		},
		LogLevel: "info",
	}
}
