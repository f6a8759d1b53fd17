package testutils

import (
	"testing"

	"github.com/lastlook/site/internal/config"
)

// TestSessionSecret is a 32-byte secret accepted by config validation.
const TestSessionSecret = "0123456789abcdef0123456789abcdef"

// ConfigForTests loads a development configuration through the same path
// the commands use, with extra LASTLOOK_* settings applied first. The
// environment is restored when the test ends.
func ConfigForTests(t *testing.T, env map[string]string) *config.Config {
	t.Helper()

	base := map[string]string{
		"LASTLOOK_ADDR":             "127.0.0.1:8080",
		"LASTLOOK_BASE_URL":         "http://localhost:8080",
		"LASTLOOK_ENV":              config.EnvDevelopment,
		"LASTLOOK_SESSION_SECRET":   TestSessionSecret,
		"LASTLOOK_SHUTDOWN_TIMEOUT": "1s",
	}
	for key, value := range env {
		base[key] = value
	}
	// t.Setenv is the idiomatic and safest way to handle test environments.
	for key, value := range base {
		t.Setenv(key, value)
	}

	cfg, err := config.Load(nil)
	if err != nil {
		t.Fatalf("failed to load test config: %v", err)
	}
	return cfg
}
