package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config struct to hold the configuration settings
type Config struct {
	HTTP          HTTPConfig          `yaml:"http"`
	Game          GameConfig          `yaml:"game"`
	EventBus      EventBusConfig      `yaml:"event_bus"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// HTTPConfig holds the API server configuration.
type HTTPConfig struct {
	Address         string        `yaml:"address"`
	CORSOrigins     []string      `yaml:"cors_origins"`
	RateLimit       float64       `yaml:"rate_limit"` // requests per second per IP; 0 disables
	RateBurst       int           `yaml:"rate_burst"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// GameConfig bounds the live game registry.
type GameConfig struct {
	MaxGames int           `yaml:"max_games"`
	IdleTTL  time.Duration `yaml:"idle_ttl"`
}

// EventBusConfig holds the in-process bus settings.
type EventBusConfig struct {
	Buffer int64 `yaml:"buffer"`
}

// ObservabilityConfig holds configuration for observability components
type ObservabilityConfig struct {
	Environment      string `yaml:"environment"`
	LogLevel         string `yaml:"log_level"`
	LogFormat        string `yaml:"log_format"` // json|text
	MetricsEnabled   bool   `yaml:"metrics_enabled"`
	MetricsNamespace string `yaml:"metrics_namespace"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:         ":8080",
			CORSOrigins:     []string{"*"},
			RateLimit:       10,
			RateBurst:       20,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		Game: GameConfig{
			MaxGames: 1000,
			IdleTTL:  6 * time.Hour,
		},
		EventBus: EventBusConfig{
			Buffer: 64,
		},
		Observability: ObservabilityConfig{
			Environment:      "development",
			LogLevel:         "info",
			LogFormat:        "json",
			MetricsEnabled:   true,
			MetricsNamespace: "bowling",
		},
	}
}

// LoadConfig loads the configuration from a YAML file. When the file cannot
// be read the configuration comes from the environment alone. Environment
// variables override the file either way.
func LoadConfig(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides cfg with any environment variables that are set.
func applyEnv(cfg *Config) error {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_CORS_ORIGINS"); v != "" {
		cfg.HTTP.CORSOrigins = strings.Split(v, ",")
	}
	if v := os.Getenv("HTTP_RATE_LIMIT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid HTTP_RATE_LIMIT value: %v", err)
		}
		cfg.HTTP.RateLimit = f
	}
	if v := os.Getenv("HTTP_RATE_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid HTTP_RATE_BURST value: %v", err)
		}
		cfg.HTTP.RateBurst = n
	}
	if v := os.Getenv("HTTP_SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid HTTP_SHUTDOWN_TIMEOUT value: %v", err)
		}
		cfg.HTTP.ShutdownTimeout = d
	}
	if v := os.Getenv("GAME_MAX_GAMES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid GAME_MAX_GAMES value: %v", err)
		}
		cfg.Game.MaxGames = n
	}
	if v := os.Getenv("GAME_IDLE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid GAME_IDLE_TTL value: %v", err)
		}
		cfg.Game.IdleTTL = d
	}
	if v := os.Getenv("ENV"); v != "" {
		cfg.Observability.Environment = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Observability.LogFormat = v
	}
	if v := os.Getenv("METRICS_ENABLED"); v != "" {
		cfg.Observability.MetricsEnabled = v == "true"
	}
	return nil
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return fmt.Errorf("http.address must be set")
	}
	if c.HTTP.RateLimit < 0 || c.HTTP.RateBurst < 0 {
		return fmt.Errorf("http rate limit must not be negative")
	}
	if c.HTTP.RateLimit > 0 && c.HTTP.RateBurst == 0 {
		return fmt.Errorf("http.rate_burst must be positive when rate_limit is set")
	}
	if c.Game.MaxGames < 0 {
		return fmt.Errorf("game.max_games must not be negative")
	}
	switch c.Observability.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("observability.log_format must be json or text, got %q", c.Observability.LogFormat)
	}
	return nil
}
