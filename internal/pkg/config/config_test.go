package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.Equal(t, uint64(5), cfg.Store.ConnectRetries)
	assert.True(t, cfg.Seed.Enabled)
	assert.Equal(t, "admin", cfg.Actor.DefaultID)
	assert.Equal(t, "Admin Khan", cfg.Actor.DefaultName)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roadtrack.yaml")
	body := `
server:
  addr: ":9090"
log:
  level: debug
  format: console
store:
  driver: postgres
  dsn: postgres://localhost/roadtrack
seed:
  enabled: false
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Setenv("ROADTRACK_ACTOR_DEFAULT_NAME", "Clerk")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, "postgres://localhost/roadtrack", cfg.Store.DSN)
	assert.False(t, cfg.Seed.Enabled)
	assert.Equal(t, "Clerk", cfg.Actor.DefaultName)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		ok     bool
	}{
		{name: "defaults", mutate: func(c *Config) {}, ok: true},
		{name: "postgres without dsn", mutate: func(c *Config) { c.Store.Driver = "postgres" }},
		{name: "unknown driver", mutate: func(c *Config) { c.Store.Driver = "sqlite" }},
		{name: "bad level", mutate: func(c *Config) { c.Log.Level = "loud" }},
		{name: "bad format", mutate: func(c *Config) { c.Log.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("")
			require.NoError(t, err)
			tt.mutate(&cfg)
			if tt.ok {
				assert.NoError(t, cfg.Validate())
			} else {
				assert.Error(t, cfg.Validate())
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
