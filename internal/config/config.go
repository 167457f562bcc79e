package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
)

// Provider names accepted by AI_TEXT_PROVIDER / AI_IMAGE_PROVIDER.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
)

// Session backends accepted by SESSION_BACKEND.
const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

// Credential environment variables. They are looked up in the environment first,
// then in /run/secrets/<lowercase name>.
const (
	GoogleAPIKeyEnv = "GOOGLE_API_KEY"
	OpenAIAPIKeyEnv = "OPENAI_API_KEY"
)

// secretsDir is the Docker secrets mount point.
var secretsDir = "/run/secrets"

// Config holds the service configuration.
type Config struct {
	Env         string `envconfig:"ENV" default:"development"`
	ServerPort  string `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogEncoding string `envconfig:"LOG_ENCODING" default:"json"`

	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:""`
	DefaultLocale      string `envconfig:"DEFAULT_LOCALE" default:"en"`

	// AI collaborators
	AITextProvider  string        `envconfig:"AI_TEXT_PROVIDER" default:"gemini"`
	AIImageProvider string        `envconfig:"AI_IMAGE_PROVIDER" default:"gemini"`
	AITextModel     string        `envconfig:"AI_TEXT_MODEL" default:""`
	AIImageModel    string        `envconfig:"AI_IMAGE_MODEL" default:""`
	AIBaseURL       string        `envconfig:"AI_BASE_URL" default:""`
	AITimeout       time.Duration `envconfig:"AI_TIMEOUT" default:"120s"`
	AITemperature   float64       `envconfig:"AI_TEMPERATURE" default:"0.7"`
	AIMaxTokens     int           `envconfig:"AI_MAX_TOKENS" default:"2048"`
	AIRatePerMinute int           `envconfig:"AI_RATE_PER_MINUTE" default:"30"`
	AIRateBurst     int           `envconfig:"AI_RATE_BURST" default:"5"`

	// Per client IP, only in front of generation endpoints. Zero disables it.
	ClientRatePerMinute uint `envconfig:"CLIENT_RATE_PER_MINUTE" default:"10"`

	// Session storage
	SessionBackend string        `envconfig:"SESSION_BACKEND" default:"memory"`
	SessionTTL     time.Duration `envconfig:"SESSION_TTL" default:"30m"`
	RedisAddr      string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisDB        int           `envconfig:"REDIS_DB" default:"0"`
	// Secrets are read by readCredential, not by envconfig.
	RedisPassword string `ignored:"true"`

	// Credentials are optional at startup; a missing key is reported per request.
	GoogleAPIKey string `ignored:"true"`
	OpenAIAPIKey string `ignored:"true"`
}

// LoadConfig reads an optional .env file, then the environment and secrets.
func LoadConfig(envFile string) (*Config, error) {
	if envFile != "" {
		// .env is a development convenience; its absence is not an error.
		_ = godotenv.Load(envFile)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	cfg.GoogleAPIKey = readCredential(GoogleAPIKeyEnv)
	cfg.OpenAIAPIKey = readCredential(OpenAIAPIKeyEnv)
	cfg.RedisPassword = readCredential("REDIS_PASSWORD")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	c.AITextProvider = strings.ToLower(strings.TrimSpace(c.AITextProvider))
	c.AIImageProvider = strings.ToLower(strings.TrimSpace(c.AIImageProvider))
	c.SessionBackend = strings.ToLower(strings.TrimSpace(c.SessionBackend))

	switch c.AITextProvider {
	case ProviderGemini, ProviderOpenAI, ProviderOllama:
	default:
		return fmt.Errorf("unknown AI_TEXT_PROVIDER %q", c.AITextProvider)
	}
	switch c.AIImageProvider {
	case ProviderGemini, ProviderOpenAI:
	default:
		return fmt.Errorf("unknown AI_IMAGE_PROVIDER %q", c.AIImageProvider)
	}
	switch c.SessionBackend {
	case SessionBackendMemory, SessionBackendRedis:
	default:
		return fmt.Errorf("unknown SESSION_BACKEND %q", c.SessionBackend)
	}
	if c.AITimeout <= 0 {
		return fmt.Errorf("AI_TIMEOUT must be positive, got %v", c.AITimeout)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %v", c.SessionTTL)
	}
	return nil
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS on commas.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// APIKeyFor returns the credential used by provider and the variable it comes from.
// Ollama needs no credential.
func (c *Config) APIKeyFor(provider string) (key, envName string) {
	switch provider {
	case ProviderGemini:
		return c.GoogleAPIKey, GoogleAPIKeyEnv
	case ProviderOpenAI:
		return c.OpenAIAPIKey, OpenAIAPIKeyEnv
	}
	return "", ""
}

// LogSummary logs the loaded configuration without secrets.
func (c *Config) LogSummary(logger *zap.Logger) {
	logger.Info("Configuration loaded",
		zap.String("env", c.Env),
		zap.String("port", c.ServerPort),
		zap.String("text_provider", c.AITextProvider),
		zap.String("text_model", c.AITextModel),
		zap.String("image_provider", c.AIImageProvider),
		zap.String("image_model", c.AIImageModel),
		zap.Duration("ai_timeout", c.AITimeout),
		zap.Int("ai_rate_per_minute", c.AIRatePerMinute),
		zap.Uint("client_rate_per_minute", c.ClientRatePerMinute),
		zap.String("session_backend", c.SessionBackend),
		zap.Duration("session_ttl", c.SessionTTL),
		zap.Bool("google_api_key_set", c.GoogleAPIKey != ""),
		zap.Bool("openai_api_key_set", c.OpenAIAPIKey != ""),
	)
}

// readCredential prefers the environment variable, then the Docker secret file.
func readCredential(name string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	secret, err := os.ReadFile(filepath.Join(secretsDir, strings.ToLower(name)))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(secret))
}
