// Package config provides Viper-based hierarchical configuration:
// defaults, then an optional config.yaml, then BANKPARSE_* environment
// variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Server struct {
		Host        string `mapstructure:"host" yaml:"host"`
		Port        int    `mapstructure:"port" yaml:"port"`
		MaxUploadMB int64  `mapstructure:"max_upload_mb" yaml:"max_upload_mb"`
	} `mapstructure:"server" yaml:"server"`

	AI struct {
		Enabled        bool   `mapstructure:"enabled" yaml:"enabled"`
		Model          string `mapstructure:"model" yaml:"model"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		MaxPromptChars int    `mapstructure:"max_prompt_chars" yaml:"max_prompt_chars"`
		APIKey         string `mapstructure:"api_key" yaml:"-"` // Never serialize the API key
	} `mapstructure:"ai" yaml:"ai"`

	Parser struct {
		// DayFirst reads slash dates as DD/MM/YYYY instead of the
		// default MM/DD/YYYY.
		DayFirst bool `mapstructure:"day_first" yaml:"day_first"`
	} `mapstructure:"parser" yaml:"parser"`

	Categories struct {
		MappingsFile string `mapstructure:"mappings_file" yaml:"mappings_file"`
	} `mapstructure:"categories" yaml:"categories"`
}

// InitializeConfig loads the configuration hierarchy.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.bankparse")
	v.AddConfigPath(".bankparse")
	v.AddConfigPath(".")

	v.SetEnvPrefix("BANKPARSE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// A malformed config file should not kill the process;
			// defaults and env vars still apply.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	// The API key always comes from the conventional unprefixed variable.
	if err := v.BindEnv("ai.api_key", "GEMINI_API_KEY"); err != nil {
		fmt.Printf("Warning: failed to bind GEMINI_API_KEY environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 4000)
	v.SetDefault("server.max_upload_mb", 32)

	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.model", "gemini-2.0-flash")
	v.SetDefault("ai.timeout_seconds", 30)
	v.SetDefault("ai.max_prompt_chars", 12000)

	v.SetDefault("parser.day_first", false)

	v.SetDefault("categories.mappings_file", "")
}

func validateConfig(config *Config) error {
	switch strings.ToLower(config.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", config.Log.Level)
	}
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", config.Server.Port)
	}
	if config.AI.TimeoutSeconds <= 0 {
		return fmt.Errorf("ai timeout must be positive, got %d", config.AI.TimeoutSeconds)
	}
	if config.AI.MaxPromptChars <= 0 {
		return fmt.Errorf("ai max prompt chars must be positive, got %d", config.AI.MaxPromptChars)
	}
	return nil
}
