package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, ProviderOpenAI, cfg.AIProvider)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
	assert.Equal(t, 30*time.Second, cfg.GenerationTimeout())
	assert.Equal(t, 2*time.Second, cfg.GenerationRetryDelay())
	assert.Equal(t, 2*time.Second, cfg.PaymentDelay())
	assert.Equal(t, "./data/payment_pages.db", cfg.DatabasePath)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("AI_PROVIDER", "simulated")
	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("PAYMENT_DELAY_MS", "10")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, ProviderSimulated, cfg.AIProvider)
	assert.Equal(t, "sk-env", cfg.OpenAIKey)
	assert.Equal(t, 10*time.Millisecond, cfg.PaymentDelay())
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	yaml := "SERVER_ADDRESS: \":9090\"\nGEMINI_MODEL: gemini-2.0-flash\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.ServerAddress)
	assert.Equal(t, "gemini-2.0-flash", cfg.GeminiModel)
}

func TestLoadConfigRejectsUnknownProvider(t *testing.T) {
	t.Setenv("AI_PROVIDER", "llama")
	_, err := LoadConfig(t.TempDir())
	assert.ErrorContains(t, err, "unknown AI_PROVIDER")
}
