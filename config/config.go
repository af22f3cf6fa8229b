package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the assistant.
type Config struct {
	General   GeneralConfig   `mapstructure:"general"`
	Server    ServerConfig    `mapstructure:"server"`
	LLM       LLMConfig       `mapstructure:"llm"`
	Sources   SourcesConfig   `mapstructure:"sources"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// GeneralConfig contains general application settings
type GeneralConfig struct {
	Debug          bool          `mapstructure:"debug"`
	LogLevel       string        `mapstructure:"log_level"`
	DefaultTimeout time.Duration `mapstructure:"default_timeout"`
}

// ServerConfig contains HTTP server and auth settings
type ServerConfig struct {
	Address   string `mapstructure:"address"`
	JWTSecret string `mapstructure:"jwt_secret"`
}

// LLMConfig contains completion-provider settings
type LLMConfig struct {
	Provider    string        `mapstructure:"provider"` // openai, anthropic, gemini
	APIKey      string        `mapstructure:"api_key"`
	BaseURL     string        `mapstructure:"base_url"`
	Model       string        `mapstructure:"model"`
	Temperature float64       `mapstructure:"temperature"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

func (l LLMConfig) Validate() error {
	if strings.TrimSpace(l.Provider) == "" {
		return fmt.Errorf("llm.provider is required")
	}
	if strings.TrimSpace(l.Model) == "" {
		return fmt.Errorf("llm.model is required")
	}
	return nil
}

// SourcesConfig contains external data source configurations
type SourcesConfig struct {
	NewsAPI   NewsAPIConfig   `mapstructure:"newsapi"`
	WebSearch WebSearchConfig `mapstructure:"web_search"`
}

// NewsAPIConfig contains NewsAPI settings. An empty APIKey switches the
// fetch adapter to its deterministic mock dataset.
type NewsAPIConfig struct {
	APIKey   string        `mapstructure:"api_key"`
	Endpoint string        `mapstructure:"endpoint"`
	Language string        `mapstructure:"language"`
	PageSize int           `mapstructure:"page_size"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

func (n NewsAPIConfig) Validate() error {
	if strings.TrimSpace(n.Endpoint) == "" {
		return fmt.Errorf("sources.newsapi.endpoint is required")
	}
	if n.PageSize <= 0 {
		return fmt.Errorf("sources.newsapi.page_size must be > 0")
	}
	return nil
}

// WebSearchConfig contains web search settings. Missing provider key
// switches the search adapter to its mock dataset.
type WebSearchConfig struct {
	Provider     string        `mapstructure:"provider"` // brave or serper
	BraveAPIKey  string        `mapstructure:"brave_api_key"`
	SerperAPIKey string        `mapstructure:"serper_api_key"`
	MaxResults   int           `mapstructure:"max_results"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

func (w WebSearchConfig) Validate() error {
	if w.MaxResults <= 0 {
		return fmt.Errorf("sources.web_search.max_results must be > 0")
	}
	switch w.Provider {
	case "brave", "serper":
		return nil
	}
	return fmt.Errorf("sources.web_search.provider must be brave or serper, got %q", w.Provider)
}

// Key returns the API key for the configured search provider.
func (w WebSearchConfig) Key() string {
	switch w.Provider {
	case "serper":
		return w.SerperAPIKey
	default:
		return w.BraveAPIKey
	}
}

// TelemetryConfig contains metrics settings
type TelemetryConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LoadConfig loads config from file and NEWSGENIE_* environment variables.
// A missing config file is not fatal: defaults plus env are enough to run
// with mock data sources.
func LoadConfig(path string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("json")

	viper.SetDefault("general.log_level", "info")
	// Empty defaults keep secret keys visible to AutomaticEnv during Unmarshal.
	viper.SetDefault("server.jwt_secret", "")
	viper.SetDefault("llm.api_key", "")
	viper.SetDefault("llm.base_url", "")
	viper.SetDefault("sources.newsapi.api_key", "")
	viper.SetDefault("sources.web_search.brave_api_key", "")
	viper.SetDefault("sources.web_search.serper_api_key", "")
	viper.SetDefault("general.default_timeout", 60*time.Second)
	viper.SetDefault("server.address", ":10001")
	viper.SetDefault("llm.provider", "openai")
	viper.SetDefault("llm.model", "gpt-4o-mini")
	viper.SetDefault("llm.temperature", 0.2)
	viper.SetDefault("llm.max_tokens", 4096)
	viper.SetDefault("llm.timeout", 30*time.Second)
	viper.SetDefault("sources.newsapi.endpoint", "https://newsapi.org/v2/top-headlines")
	viper.SetDefault("sources.newsapi.language", "en")
	viper.SetDefault("sources.newsapi.page_size", 5)
	viper.SetDefault("sources.newsapi.timeout", 10*time.Second)
	viper.SetDefault("sources.web_search.provider", "brave")
	viper.SetDefault("sources.web_search.max_results", 3)
	viper.SetDefault("sources.web_search.timeout", 10*time.Second)
	viper.SetDefault("telemetry.enabled", true)

	if path == "" {
		viper.AddConfigPath("./config")
		viper.AddConfigPath(".")
	} else {
		viper.SetConfigFile(path)
	}

	viper.SetEnvPrefix("NEWSGENIE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.LLM.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Sources.NewsAPI.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Sources.WebSearch.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
