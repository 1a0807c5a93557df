package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"productimage/internal/imagegen"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv             string
	Port               string
	CORSAllowedOrigins []string
	HTTPReadTimeout    time.Duration
	HTTPWriteTimeout   time.Duration
	HTTPIdleTimeout    time.Duration
	ProviderTimeout    time.Duration
	Provider           imagegen.ProviderConfig
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
// The provider endpoint and API key are not required here; a missing value is
// reported by the image client on each request.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		Port:               getEnv("PORT", "8080"),
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		HTTPReadTimeout:    time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:   time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 90)),
		HTTPIdleTimeout:    time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		ProviderTimeout:    time.Second * time.Duration(getEnvInt("PROVIDER_TIMEOUT_SECONDS", 60)),
		Provider: imagegen.ProviderConfig{
			APIVersion:     getEnv("AZURE_OPENAI_API_VERSION", imagegen.DefaultAPIVersion),
			EndpointBase:   os.Getenv("AZURE_OPENAI_DALLE_ENDPOINT"),
			DeploymentName: getEnv("AZURE_OPENAI_DALLE_DEPLOYMENT_NAME", imagegen.DefaultDeploymentName),
			APIKey:         os.Getenv("OPENAI_API_KEY"),
		},
	}

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 0 || port > 65535 {
		return nil, fmt.Errorf("PORT must be a number between 0 and 65535, got %q", cfg.Port)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			return i
		}
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
