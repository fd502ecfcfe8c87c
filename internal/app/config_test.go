package app_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pwned/internal/app"
)

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := app.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "https://haveibeenpwned.com/api/", cfg.Pwned.ServiceAPIURL)
	assert.Equal(t, "2", cfg.Pwned.ServiceAPIVersion)
	assert.Equal(t, "https://api.pwnedpasswords.com/", cfg.Pwned.PasswordsAPIURL)
	assert.Equal(t, 30*time.Second, cfg.Pwned.BreachTimeout)
	assert.Equal(t, 3, cfg.Pwned.PasswordRetries)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pwned.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
Pwned:
  UserAgent: acme-identity/2.1
  ServiceApiUrl: http://127.0.0.1:8080/api/
  PasswordsApiUrl: http://127.0.0.1:8080/
  BreachTimeout: 5s
  PasswordBackoff: 50ms
  BreachRetries: -1
Log:
  Level: debug
  Format: json
`), 0o644))

	cfg, err := app.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "acme-identity/2.1", cfg.Pwned.UserAgent)
	assert.Equal(t, "http://127.0.0.1:8080/api/", cfg.Pwned.ServiceAPIURL)
	assert.Equal(t, "http://127.0.0.1:8080/", cfg.Pwned.PasswordsAPIURL)
	assert.Equal(t, 5*time.Second, cfg.Pwned.BreachTimeout)
	assert.Equal(t, 50*time.Millisecond, cfg.Pwned.PasswordBackoff)
	assert.Equal(t, -1, cfg.Pwned.BreachRetries)
	assert.Equal(t, "2", cfg.Pwned.ServiceAPIVersion)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadConfig_Env(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PWNED_USERAGENT", "env-agent")
	t.Setenv("PWNED_SERVICEAPIVERSION", "3")
	t.Setenv("PWNED_PASSWORDTIMEOUT", "750ms")
	t.Setenv("PWNED_LOG_LEVEL", "error")

	cfg, err := app.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "env-agent", cfg.Pwned.UserAgent)
	assert.Equal(t, "3", cfg.Pwned.ServiceAPIVersion)
	assert.Equal(t, 750*time.Millisecond, cfg.Pwned.PasswordTimeout)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := app.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
