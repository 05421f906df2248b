package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecret_Redaction(t *testing.T) {
	assert.Equal(t, "***", Secret("super-secret").String())
	assert.Equal(t, "", Secret("").String())

	data, err := json.Marshal(Secret("super-secret"))
	require.NoError(t, err)
	assert.Equal(t, `"***"`, string(data))

	data, err = json.Marshal(Secret(""))
	require.NoError(t, err)
	assert.Equal(t, `""`, string(data))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		errContains string
	}{
		{
			name: "valid",
			cfg:  Config{Addr: ":8080", BaseURL: "https://riftrewind.example.com"},
		},
		{
			name:        "missing_addr",
			cfg:         Config{BaseURL: "https://riftrewind.example.com"},
			errContains: "ADDR",
		},
		{
			name:        "missing_base_url",
			cfg:         Config{Addr: ":8080"},
			errContains: "APP_BASE_URL",
		},
		{
			name:        "relative_base_url",
			cfg:         Config{Addr: ":8080", BaseURL: "/app"},
			errContains: "absolute URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.cfg)
			if tt.errContains == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
			}
		})
	}
}

func TestIsDev(t *testing.T) {
	assert.True(t, Config{Environment: "development"}.IsDev())
	assert.True(t, Config{Environment: "dev"}.IsDev())
	assert.True(t, Config{Environment: "DEV"}.IsDev())
	assert.False(t, Config{Environment: "production"}.IsDev())

	assert.False(t, Config{Environment: "development"}.CookieSecure())
	assert.True(t, Config{Environment: "production"}.CookieSecure())
}

func TestHasRSOCredentials(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		secret   string
		expected bool
	}{
		{name: "both_set", id: "real-id", secret: "real-secret", expected: true},
		{name: "missing_id", id: "", secret: "real-secret", expected: false},
		{name: "missing_secret", id: "real-id", secret: "", expected: false},
		{name: "placeholder_id", id: PlaceholderClientID, secret: "real-secret", expected: false},
		{name: "placeholder_secret", id: "real-id", secret: PlaceholderClientSecret, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{RSOClientID: tt.id, RSOClientSecret: Secret(tt.secret)}
			assert.Equal(t, tt.expected, cfg.HasRSOCredentials())
		})
	}
}

func TestRedirectURI(t *testing.T) {
	cfg := Config{BaseURL: "https://riftrewind.example.com/"}
	assert.Equal(t, "https://riftrewind.example.com/auth/callback", cfg.RedirectURI())

	cfg = Config{BaseURL: "http://localhost:8080"}
	assert.Equal(t, "http://localhost:8080/auth/callback", cfg.RedirectURI())
}
