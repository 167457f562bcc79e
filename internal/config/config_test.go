package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useSecretsDir(t *testing.T, dir string) {
	t.Helper()
	prev := secretsDir
	secretsDir = dir
	t.Cleanup(func() { secretsDir = prev })
}

func TestLoadConfig_Defaults(t *testing.T) {
	useSecretsDir(t, t.TempDir())
	t.Setenv(GoogleAPIKeyEnv, "")
	t.Setenv(OpenAIAPIKeyEnv, "")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "en", cfg.DefaultLocale)
	assert.Equal(t, ProviderGemini, cfg.AITextProvider)
	assert.Equal(t, ProviderGemini, cfg.AIImageProvider)
	assert.Equal(t, 120*time.Second, cfg.AITimeout)
	assert.Equal(t, SessionBackendMemory, cfg.SessionBackend)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, uint(10), cfg.ClientRatePerMinute)
	assert.Empty(t, cfg.GoogleAPIKey)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	useSecretsDir(t, t.TempDir())
	t.Setenv("AI_TEXT_PROVIDER", " OpenAI ")
	t.Setenv("AI_IMAGE_PROVIDER", "openai")
	t.Setenv("AI_TIMEOUT", "45s")
	t.Setenv("SESSION_BACKEND", "redis")
	t.Setenv(OpenAIAPIKeyEnv, "sk-test")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, ProviderOpenAI, cfg.AITextProvider)
	assert.Equal(t, 45*time.Second, cfg.AITimeout)
	assert.Equal(t, SessionBackendRedis, cfg.SessionBackend)

	key, env := cfg.APIKeyFor(ProviderOpenAI)
	assert.Equal(t, "sk-test", key)
	assert.Equal(t, OpenAIAPIKeyEnv, env)
}

func TestLoadConfig_RejectsUnknownValues(t *testing.T) {
	useSecretsDir(t, t.TempDir())

	tests := map[string]string{
		"AI_TEXT_PROVIDER":  "anthropic",
		"AI_IMAGE_PROVIDER": "ollama",
		"SESSION_BACKEND":   "postgres",
		"AI_TIMEOUT":        "0s",
	}
	for name, value := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv(name, value)
			_, err := LoadConfig("")
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_ReadsDockerSecret(t *testing.T) {
	dir := t.TempDir()
	useSecretsDir(t, dir)
	t.Setenv(GoogleAPIKeyEnv, "")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "google_api_key"), []byte("from-secret\n"), 0o600))

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "from-secret", cfg.GoogleAPIKey)

	t.Setenv(GoogleAPIKeyEnv, "from-env")
	cfg, err = LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.GoogleAPIKey)
}

func TestAllowedOrigins(t *testing.T) {
	cfg := &Config{CORSAllowedOrigins: " https://a.example ,,https://b.example"}
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins())
	assert.Empty(t, (&Config{}).AllowedOrigins())
}

func TestAPIKeyFor_Ollama(t *testing.T) {
	key, env := (&Config{}).APIKeyFor(ProviderOllama)
	assert.Empty(t, key)
	assert.Empty(t, env)
}
