package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every key Load reads so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	for _, k := range []string{
		"NORTHSTAR_CONFIG", "APP_ENV", "LISTEN_ADDR", "STORE_DRIVER", "DATABASE_URL", "SQLITE_PATH",
		"LOG_LEVEL", "LOG_FORMAT", "SESSION_TIMEOUT", "SWEEP_INTERVAL", "OUTCOME_WEBHOOK_URL",
		"NOTIFY_WORKERS", "NOTIFY_QUEUE", "INGEST_CONCURRENCY", "SCHEDULE_ENABLED", "SCHEDULE_INTERVAL",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.StoreDriver)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, 30*time.Minute, cfg.SessionTimeout)
	assert.Equal(t, 4, cfg.IngestConcurrency)
	assert.False(t, cfg.Schedule.Enabled)
	assert.Equal(t, 24*time.Hour, cfg.Schedule.Interval)
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "northstar.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
store_driver: postgres
database_url: postgres://northstar@localhost/northstar
session_timeout: 10m
notify_workers: 3
listen_addr: ":9000"
`), 0o600))
	t.Setenv("NORTHSTAR_CONFIG", path)
	t.Setenv("LISTEN_ADDR", ":9100")
	t.Setenv("INGEST_CONCURRENCY", "8")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.StoreDriver)
	assert.Equal(t, "postgres://northstar@localhost/northstar", cfg.DatabaseURL)
	assert.Equal(t, 10*time.Minute, cfg.SessionTimeout)
	assert.Equal(t, 3, cfg.NotifyWorkers)
	assert.Equal(t, ":9100", cfg.ListenAddr, "environment overrides the file")
	assert.Equal(t, 8, cfg.IngestConcurrency)
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]map[string]string{
		"postgres without url": {"STORE_DRIVER": "postgres"},
		"unknown driver":       {"STORE_DRIVER": "mysql"},
		"bad duration":         {"SESSION_TIMEOUT": "soon"},
		"bad integer":          {"NOTIFY_QUEUE": "lots"},
		"zero workers":         {"NOTIFY_WORKERS": "0"},
		"negative interval":    {"SWEEP_INTERVAL": "-1s"},
		"bad boolean":          {"SCHEDULE_ENABLED": "sometimes"},
		"schedule no sources":  {"SCHEDULE_ENABLED": "true"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadRejectsUnknownFileKeys(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "northstar.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store_drvier: sqlite\n"), 0o600))
	t.Setenv("NORTHSTAR_CONFIG", path)
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadSchedule(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "northstar.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
schedule:
  interval: 12h
  sources:
    - source: grants.gov
      queries: [rural health, broadband]
      max_results: 50
      days: [Monday, wed]
    - source: nsf.gov
`), 0o600))
	t.Setenv("NORTHSTAR_CONFIG", path)
	t.Setenv("SCHEDULE_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Schedule.Enabled)
	assert.Equal(t, 12*time.Hour, cfg.Schedule.Interval)
	require.Len(t, cfg.Schedule.Sources, 2)
	first := cfg.Schedule.Sources[0]
	assert.Equal(t, []string{"rural health", "broadband"}, first.Queries)
	assert.Equal(t, 50, first.MaxResults)
	days, err := first.Weekdays()
	require.NoError(t, err)
	assert.Equal(t, []time.Weekday{time.Monday, time.Wednesday}, days)

	days, err = cfg.Schedule.Sources[1].Weekdays()
	require.NoError(t, err)
	assert.Empty(t, days)
}

func TestLoadScheduleRejectsUnknownDay(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "northstar.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
schedule:
  enabled: true
  sources:
    - source: grants.gov
      days: [someday]
`), 0o600))
	t.Setenv("NORTHSTAR_CONFIG", path)
	_, err := Load()
	assert.ErrorContains(t, err, "someday")
}
