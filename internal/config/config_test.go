package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfigDefaults(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, int64(32), cfg.Server.MaxUploadMB)
	assert.False(t, cfg.AI.Enabled)
	assert.Equal(t, "gemini-2.0-flash", cfg.AI.Model)
	assert.Equal(t, 30, cfg.AI.TimeoutSeconds)
	assert.Equal(t, 12000, cfg.AI.MaxPromptChars)
	assert.False(t, cfg.Parser.DayFirst)
	assert.Empty(t, cfg.Categories.MappingsFile)
}

func TestInitializeConfigEnvOverrides(t *testing.T) {
	t.Setenv("BANKPARSE_LOG_LEVEL", "debug")
	t.Setenv("BANKPARSE_SERVER_PORT", "9090")
	t.Setenv("BANKPARSE_PARSER_DAY_FIRST", "true")
	t.Setenv("BANKPARSE_AI_ENABLED", "true")
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.Parser.DayFirst)
	assert.True(t, cfg.AI.Enabled)
	assert.Equal(t, "test-key", cfg.AI.APIKey)
}

func TestInitializeConfigValidation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"Unknown log level", "BANKPARSE_LOG_LEVEL", "verbose"},
		{"Port out of range", "BANKPARSE_SERVER_PORT", "70000"},
		{"Non-positive ai timeout", "BANKPARSE_AI_TIMEOUT_SECONDS", "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			_, err := InitializeConfig()
			assert.Error(t, err)
		})
	}
}
