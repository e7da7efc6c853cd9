package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, kv map[string]string) {
	t.Helper()
	for _, k := range []string{"STORE", "DATABASE_URL", "SQLITE_PATH", "UI_LOCALE", "TIMEZONE", "LOG_LEVEL", "LOG_ENCODING", "PROMPT_EDITOR", "USER"} {
		t.Setenv(k, kv[k])
	}
}

func TestLoad_Defaults(t *testing.T) {
	setEnv(t, map[string]string{"USER": "alice"})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StorePostgres, cfg.Store)
	assert.Equal(t, "postgres://localhost:5432/typeprompt?sslmode=disable", cfg.DatabaseURL)
	assert.Equal(t, "typeprompt.db", cfg.SQLitePath)
	assert.Equal(t, "en", cfg.UILocale)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, "alice", cfg.Editor)
}

func TestLoad_SQLite(t *testing.T) {
	setEnv(t, map[string]string{
		"STORE":         "SQLite",
		"DATABASE_URL":  "not a url",
		"SQLITE_PATH":   "/tmp/x.db",
		"UI_LOCALE":     "fr",
		"PROMPT_EDITOR": "bob",
		"USER":          "alice",
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StoreSQLite, cfg.Store)
	assert.Equal(t, "/tmp/x.db", cfg.SQLitePath)
	assert.Equal(t, "fr", cfg.UILocale)
	assert.Equal(t, "bob", cfg.Editor)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"store":    {"STORE": "mongo"},
		"url":      {"DATABASE_URL": "localhost"},
		"locale":   {"UI_LOCALE": "??-!!"},
		"timezone": {"TIMEZONE": "Mars/Olympus"},
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			setEnv(t, env)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
