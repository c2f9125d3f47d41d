package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"debt-planner/amortization"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, DefaultMinBudget, cfg.Planner.MinBudget)
	assert.Equal(t, DefaultMaxLoans, cfg.Planner.MaxLoans)
	assert.Equal(t, amortization.Independent, cfg.Mode())
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.yaml")
	content := `
server:
  port: 9090
cache:
  ttl: 30s
planner:
  allocation_mode: shared
  currency: NOK
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	t.Setenv("PLANNER_PLANNER_MIN_BUDGET", "2500")
	t.Setenv("PLANNER_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.Equal(t, amortization.Shared, cfg.Mode())
	assert.Equal(t, "NOK", cfg.Planner.Currency)
	assert.Equal(t, 2500.0, cfg.Planner.MinBudget)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid"},
		{name: "port", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: "invalid port"},
		{name: "mode", mutate: func(c *Config) { c.Planner.AllocationMode = "pooled" }, wantErr: "allocation_mode"},
		{name: "redis without addr", mutate: func(c *Config) { c.Redis.Enabled = true; c.Redis.Addr = "" }, wantErr: "redis.addr"},
		{name: "max loans", mutate: func(c *Config) { c.Planner.MaxLoans = 0 }, wantErr: "max_loans"},
		{name: "negative budget", mutate: func(c *Config) { c.Planner.MinBudget = -1 }, wantErr: "min_budget"},
		{name: "unbounded months", mutate: func(c *Config) { c.Planner.MaxMonths = 0 }, wantErr: "max_months"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("")
			require.NoError(t, err)
			if tt.mutate != nil {
				tt.mutate(cfg)
			}

			err = cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
