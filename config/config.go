package config

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	AI        AIConfig        `mapstructure:"ai"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
}

// ServerConfig HTTP server settings.
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// DatabaseConfig MySQL connection settings.
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	Charset  string `mapstructure:"charset"`
}

// AIConfig settings for the description generator
// (any OpenAI-compatible chat/completions endpoint).
type AIConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	BaseURL        string        `mapstructure:"base_url"`
	APIKey         string        `mapstructure:"api_key"`
	Model          string        `mapstructure:"model"`
	TimeoutSeconds int           `mapstructure:"timeout_seconds"`
	Timeout        time.Duration `mapstructure:"-"`
}

// RateLimitConfig write-endpoint rate limiter settings.
type RateLimitConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	MaxRequests   int  `mapstructure:"max_requests"`
	WindowSeconds int  `mapstructure:"window_seconds"`
}

var (
	// GlobalConfig is the process-wide configuration instance.
	GlobalConfig *Config
)

// LoadConfig loads configuration with priority:
// external config file > embedded defaults, then env overrides.
// configPath is an optional explicit config file path.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// 1. Embedded defaults first.
	if err := v.ReadConfig(bytes.NewReader(DefaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("failed to read embedded config: %w", err)
	}

	// 2. Optional external config file overriding the defaults.
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			log.Printf("warning: cannot read config file %s: %v", configPath, err)
		} else {
			log.Printf("merged external config file: %s", configPath)
		}
	} else {
		externalViper := viper.New()
		externalViper.SetConfigName("config")
		externalViper.SetConfigType("yaml")
		externalViper.AddConfigPath(".")
		externalViper.AddConfigPath("./config")
		externalViper.AddConfigPath("/etc/menucatalog")
		externalViper.AddConfigPath("$HOME/.menucatalog")

		if err := externalViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(externalViper.AllSettings()); err != nil {
				log.Printf("warning: failed to merge external config: %v", err)
			} else {
				log.Printf("merged external config file: %s", externalViper.ConfigFileUsed())
			}
		}
	}

	// 3. Environment variable overrides (MENU_SERVER_PORT, MENU_AI_API_KEY, ...).
	v.SetEnvPrefix("MENU")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.AI.TimeoutSeconds <= 0 {
		cfg.AI.TimeoutSeconds = 30
	}
	cfg.AI.Timeout = time.Duration(cfg.AI.TimeoutSeconds) * time.Second

	GlobalConfig = &cfg

	return &cfg, nil
}

// MustLoadConfig loads configuration and panics on failure.
func MustLoadConfig(configPath string) *Config {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// GetConfig returns the global configuration.
func GetConfig() *Config {
	if GlobalConfig == nil {
		panic("config not initialized, call LoadConfig first")
	}
	return GlobalConfig
}

// PrintConfig logs the active configuration, hiding secrets.
func PrintConfig() {
	if GlobalConfig == nil {
		return
	}
	log.Printf("active config:")
	log.Printf("  server: %s (mode: %s)", GlobalConfig.Server.Port, GlobalConfig.Server.Mode)
	log.Printf("  database: %s@%s:%s/%s",
		GlobalConfig.Database.Username,
		GlobalConfig.Database.Host,
		GlobalConfig.Database.Port,
		GlobalConfig.Database.DBName)
	log.Printf("  ai generator: %v (model: %s)", GlobalConfig.AI.Enabled, GlobalConfig.AI.Model)
}
