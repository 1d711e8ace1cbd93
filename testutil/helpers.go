package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"
)

const defaultEmailRandomLength = 10

// configEnv lists every variable the config package reads.
var configEnv = []string{"API_BASE_URL", "API_TIMEOUT", "API_KEY", "LOG_LEVEL", "LOG_HTTP", "API_ENV_FILE"}

func RandomString(length int) string {
	bytes := make([]byte, length/2+1)
	if _, err := rand.Read(bytes); err != nil {
		return ""
	}

	return hex.EncodeToString(bytes)[:length]
}

func RandomEmail() string {
	return "test_" + RandomString(defaultEmailRandomLength) + "@reqres.in"
}

// IsolateConfigEnv unsets every configuration variable for the duration of
// the test and points API_ENV_FILE at a file that does not exist, so neither
// the caller's shell nor a stray .env leaks in. Not usable with t.Parallel.
func IsolateConfigEnv(t *testing.T) {
	t.Helper()

	for _, key := range configEnv {
		t.Setenv(key, "")

		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unset %s: %v", key, err)
		}
	}

	t.Setenv("API_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
}

func RequireEnv(t *testing.T, key string) string {
	t.Helper()

	value := os.Getenv(key)
	if value == "" {
		t.Skipf("Environment variable %s is required but not set", key)
	}

	return value
}
