package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	OIDC     OIDCConfig
	Services ServicesConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// OIDCConfig holds the identity provider configuration. Issuer is the realm
// base URL, e.g. http://localhost:8080/realms/hrm.
type OIDCConfig struct {
	Issuer       string
	ClientID     string
	ClientSecret string
	// DevSecret switches token verification to HS256 with a shared secret
	// instead of the provider's JWKS. Local development only.
	DevSecret string
}

// ServicesConfig holds base URLs for the backend services the gateway fans
// out to.
type ServicesConfig struct {
	EmployeeServiceURL     string
	TimeServiceURL         string
	NotificationServiceURL string
	Timeout                time.Duration
}

func Load() (*Config, error) {
	// Optional in containerized deployments where env vars come from the
	// orchestrator.
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := getEnvInt("APP_PORT", 5000)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	config.OIDC = OIDCConfig{
		Issuer:       getEnv("OIDC_ISSUER", "http://localhost:8080/realms/hrm"),
		ClientID:     getEnv("OIDC_CLIENT_ID", "hrm-frontend"),
		ClientSecret: getEnv("OIDC_CLIENT_SECRET", ""),
		DevSecret:    getEnv("OIDC_DEV_SECRET", ""),
	}

	timeout, err := time.ParseDuration(getEnv("BACKEND_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid BACKEND_TIMEOUT: %w", err)
	}

	config.Services = ServicesConfig{
		EmployeeServiceURL:     getEnv("EMPLOYEE_SERVICE_URL", "http://localhost:5002"),
		TimeServiceURL:         getEnv("TIME_SERVICE_URL", "http://localhost:5004"),
		NotificationServiceURL: getEnv("NOTIFICATION_SERVICE_URL", "http://localhost:5005"),
		Timeout:                timeout,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.OIDC.Issuer == "" {
		return fmt.Errorf("OIDC_ISSUER is required")
	}
	if c.OIDC.ClientID == "" {
		return fmt.Errorf("OIDC_CLIENT_ID is required")
	}
	if c.Services.EmployeeServiceURL == "" {
		return fmt.Errorf("EMPLOYEE_SERVICE_URL is required")
	}
	if c.Services.TimeServiceURL == "" {
		return fmt.Errorf("TIME_SERVICE_URL is required")
	}
	if c.Services.NotificationServiceURL == "" {
		return fmt.Errorf("NOTIFICATION_SERVICE_URL is required")
	}
	return nil
}

// TokenEndpoint returns the identity provider's OAuth2 token endpoint.
func (c *OIDCConfig) TokenEndpoint() string {
	return strings.TrimSuffix(c.Issuer, "/") + "/protocol/openid-connect/token"
}

// LogoutEndpoint returns the identity provider's logout endpoint.
func (c *OIDCConfig) LogoutEndpoint() string {
	return strings.TrimSuffix(c.Issuer, "/") + "/protocol/openid-connect/logout"
}

// JWKSEndpoint returns the identity provider's certificate endpoint.
func (c *OIDCConfig) JWKSEndpoint() string {
	return strings.TrimSuffix(c.Issuer, "/") + "/protocol/openid-connect/certs"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	var result int
	_, err := fmt.Sscanf(value, "%d", &result)
	return result, err
}
