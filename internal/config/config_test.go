package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yevintheenura01/LLM-Utility-Toolkit/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("should load config with defaults", func(t *testing.T) {
		// Clear environment
		os.Clearenv()

		cfg := config.Load()

		require.NotNil(t, cfg)

		// Verify defaults
		require.Equal(t, "0.0.0.0", cfg.Server.Host)
		require.Equal(t, 8000, cfg.Server.Port)
		require.Equal(t, 30, cfg.Server.ReadTimeout)
		require.Equal(t, 90, cfg.Server.WriteTimeout)
		require.Equal(t, config.ProviderOpenAI, cfg.Provider)
		require.Equal(t, "https://api.openai.com/v1", cfg.OpenAI.BaseURL)
		require.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
		require.InDelta(t, 0.7, cfg.OpenAI.Temperature, 0.0001)
		require.Equal(t, 60, cfg.OpenAI.Timeout)
		require.Empty(t, cfg.OpenAI.APIKey)
	})

	t.Run("should load config from environment variables", func(t *testing.T) {
		// Set environment variables using t.Setenv for automatic cleanup
		t.Setenv("API_HOST", "127.0.0.1")
		t.Setenv("API_PORT", "9000")
		t.Setenv("PROVIDER", "echo")
		t.Setenv("OPENAI_API_KEY", "sk-test-key")
		t.Setenv("OPENAI_BASE_URL", "https://test.openai.com")
		t.Setenv("OPENAI_MODEL", "gpt-4o")
		t.Setenv("OPENAI_TEMPERATURE", "0.2")
		t.Setenv("OPENAI_TIMEOUT", "120")

		cfg := config.Load()

		require.NotNil(t, cfg)

		// Verify loaded values
		require.Equal(t, "127.0.0.1", cfg.Server.Host)
		require.Equal(t, 9000, cfg.Server.Port)
		require.Equal(t, config.ProviderEcho, cfg.Provider)
		require.Equal(t, "sk-test-key", cfg.OpenAI.APIKey)
		require.Equal(t, "https://test.openai.com", cfg.OpenAI.BaseURL)
		require.Equal(t, "gpt-4o", cfg.OpenAI.Model)
		require.InDelta(t, 0.2, cfg.OpenAI.Temperature, 0.0001)
		require.Equal(t, 120, cfg.OpenAI.Timeout)
	})
}

func TestParseDependenciesConfig(t *testing.T) {
	os.Clearenv()

	cfg := config.Load()
	deps := config.ParseDependenciesConfig(cfg)

	require.Same(t, &cfg.Server, deps.ServerConfig)
	require.Same(t, &cfg.CORS, deps.CORSConfig)
	require.Same(t, &cfg.OpenAI, deps.Config)
}
