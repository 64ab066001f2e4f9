package configs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnewsmcp/gnewsmcp/configs"
)

// clearEnv unsets every GNEWS_* variable from the ambient environment so
// Load sees only what the test sets. t.Setenv registers the restore;
// envconfig treats a set-but-empty variable as "", so a true unset is
// needed for defaults to apply.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, "GNEWS_") {
			t.Setenv(name, "")
			os.Unsetenv(name)
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	clearEnv(t)
	cfg, err := configs.Load()
	require.NoError(err)

	assert.Equal(":8080", cfg.ListenAddr)
	assert.Equal(":8081", cfg.AdminAddr)
	assert.Equal(30*time.Second, cfg.HTTPClientTimeout)
	assert.Equal(5*time.Second, cfg.ShutdownTimeout)
	assert.Equal("https://news.google.com/rss", cfg.FeedBaseURL)
	assert.Equal("en", cfg.DefaultLanguage)
	assert.Equal("US", cfg.DefaultCountry)
	assert.Equal("7d", cfg.DefaultPeriod)
	assert.Equal(10, cfg.DefaultMaxResults)
	assert.Empty(cfg.ExcludeWebsites)
}

func TestLoad_EnvOverrides(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	clearEnv(t)
	t.Setenv("GNEWS_LISTEN_ADDR", ":9999")
	t.Setenv("GNEWS_DEFAULT_LANGUAGE", "de")
	t.Setenv("GNEWS_EXCLUDE_WEBSITES", "Spam.example, junk.example")
	t.Setenv("GNEWS_LOG_LEVEL", "debug")

	cfg, err := configs.Load()
	require.NoError(err)

	assert.Equal(":9999", cfg.ListenAddr)
	assert.Equal("de", cfg.DefaultLanguage)
	assert.Equal([]string{"spam.example", "junk.example"}, cfg.ExcludeWebsites)
	assert.Equal("debug", cfg.LogLevel)
}

func TestLoad_FileMergesExcludes(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	clearEnv(t)
	path := filepath.Join(t.TempDir(), "gnewsmcp.yaml")
	require.NoError(os.WriteFile(path, []byte("exclude_websites:\n  - Tabloid.example\n  - spam.example\n"), 0o644))

	t.Setenv("GNEWS_CONFIG_FILE", path)
	t.Setenv("GNEWS_EXCLUDE_WEBSITES", "spam.example")

	cfg, err := configs.Load()
	require.NoError(err)

	// Env entries come first; the file's are appended and deduplicated.
	assert.Equal([]string{"spam.example", "tabloid.example"}, cfg.ExcludeWebsites)
}

func TestLoad_MissingFileFails(t *testing.T) {
	clearEnv(t)
	t.Setenv("GNEWS_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := configs.Load()
	require.Error(t, err)
}

func TestParsedLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"debug", "DEBUG"},
		{"info", "INFO"},
		{"WARN", "WARN"},
		{"warning", "WARN"},
		{"error", "ERROR"},
		{"bogus", "INFO"},
		{"", "INFO"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			cfg := configs.Config{LogLevel: tt.in}
			assert.Equal(t, tt.want, cfg.ParsedLogLevel().String())
		})
	}
}
