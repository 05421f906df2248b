package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Secret is a string type that redacts itself when printed
type Secret string

// String implements fmt.Stringer to redact the secret
func (s Secret) String() string {
	if s == "" {
		return ""
	}
	return "***"
}

// MarshalJSON implements json.Marshaler to prevent secrets in JSON logs
func (s Secret) MarshalJSON() ([]byte, error) {
	if s == "" {
		return json.Marshal("")
	}
	return json.Marshal("***")
}

// Placeholder credential values shipped in .env.example. Login falls back to
// the mock callback while these are still in place.
const (
	PlaceholderClientID     = "your-rso-client-id"
	PlaceholderClientSecret = "your-rso-client-secret"
)

// Config holds the environment-driven application configuration
type Config struct {
	Addr        string `env:"ADDR" envDefault:":8080"`
	BaseURL     string `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`
	Environment string `env:"APP_ENV" envDefault:"development"`

	RiotAPIKey      Secret `env:"RIOT_API_KEY"`
	RSOClientID     string `env:"RSO_CLIENT_ID"`
	RSOClientSecret Secret `env:"RSO_CLIENT_SECRET"`
}

// Load reads configuration from the environment, loading a .env file first
// when one is present
func Load() (Config, error) {
	// The .env file might not exist and that's ok
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return Config{}, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the resolved configuration
func Validate(cfg *Config) error {
	if cfg.Addr == "" {
		return fmt.Errorf("ADDR is required")
	}
	if cfg.BaseURL == "" {
		return fmt.Errorf("APP_BASE_URL is required")
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("APP_BASE_URL must be an absolute URL, got %q", cfg.BaseURL)
	}
	return nil
}

// IsDev reports whether we're running in development mode, where cookie
// security requirements are relaxed
func (c Config) IsDev() bool {
	environment := strings.ToLower(c.Environment)
	return environment == "development" || environment == "dev"
}

// CookieSecure returns the Secure attribute for cookies in this environment
func (c Config) CookieSecure() bool {
	return !c.IsDev()
}

// HasRSOCredentials reports whether real RSO credentials are configured.
// Missing or placeholder credentials route login through the mock callback.
func (c Config) HasRSOCredentials() bool {
	if c.RSOClientID == "" || c.RSOClientSecret == "" {
		return false
	}
	if c.RSOClientID == PlaceholderClientID || string(c.RSOClientSecret) == PlaceholderClientSecret {
		return false
	}
	return true
}

// RedirectURI is the callback URL registered with RSO
func (c Config) RedirectURI() string {
	return strings.TrimRight(c.BaseURL, "/") + "/auth/callback"
}
