package config

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config is read from an optional YAML file named by NORTHSTAR_CONFIG, then
// overridden key by key from the environment.
type Config struct {
	Env               string        `yaml:"env"`
	ListenAddr        string        `yaml:"listen_addr"`
	StoreDriver       string        `yaml:"store_driver"`
	DatabaseURL       string        `yaml:"database_url"`
	SQLitePath        string        `yaml:"sqlite_path"`
	LogLevel          string        `yaml:"log_level"`
	LogFormat         string        `yaml:"log_format"`
	SessionTimeout    time.Duration `yaml:"session_timeout"`
	SweepInterval     time.Duration `yaml:"sweep_interval"`
	OutcomeWebhookURL string        `yaml:"outcome_webhook_url"`
	NotifyWorkers     int           `yaml:"notify_workers"`
	NotifyQueue       int           `yaml:"notify_queue"`
	IngestConcurrency int           `yaml:"ingest_concurrency"`
	Schedule          Schedule      `yaml:"schedule"`
}

// Schedule drives unattended discovery runs. Sources only come from the
// config file; the environment can toggle the schedule and its interval.
type Schedule struct {
	Enabled  bool              `yaml:"enabled"`
	Interval time.Duration     `yaml:"interval"`
	Sources  []ScheduledSource `yaml:"sources"`
}

// ScheduledSource is one discovery run the scheduler starts. An empty Days
// list runs it on every tick.
type ScheduledSource struct {
	Source     string            `yaml:"source"`
	Queries    []string          `yaml:"queries"`
	Engines    []string          `yaml:"engines"`
	Parameters map[string]string `yaml:"parameters"`
	MaxResults int               `yaml:"max_results"`
	Days       []string          `yaml:"days"`
}

var weekdays = func() map[string]time.Weekday {
	m := make(map[string]time.Weekday, 14)
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		m[name] = d
		m[name[:3]] = d
	}
	return m
}()

// Weekdays parses Days. Full names and three letter abbreviations are
// accepted in any case.
func (s ScheduledSource) Weekdays() ([]time.Weekday, error) {
	out := make([]time.Weekday, 0, len(s.Days))
	for _, d := range s.Days {
		wd, ok := weekdays[strings.ToLower(strings.TrimSpace(d))]
		if !ok {
			return nil, fmt.Errorf("schedule source %s: unknown day %q", s.Source, d)
		}
		out = append(out, wd)
	}
	return out, nil
}

func defaults() Config {
	return Config{
		Env:               "development",
		ListenAddr:        ":8080",
		StoreDriver:       DriverSQLite,
		SQLitePath:        "northstar.db",
		LogLevel:          "info",
		LogFormat:         "json",
		SessionTimeout:    30 * time.Minute,
		SweepInterval:     time.Minute,
		NotifyWorkers:     2,
		NotifyQueue:       256,
		IngestConcurrency: 4,
		Schedule:          Schedule{Interval: 24 * time.Hour},
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s: %q is not an integer", key, v)
	}
	return n, nil
}

func getenvBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("%s: %q is not a boolean", key, v)
	}
	return b, nil
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

// Load builds and validates the configuration.
func Load() (Config, error) {
	cfg := defaults()
	if path := os.Getenv("NORTHSTAR_CONFIG"); path != "" {
		if err := cfg.readFile(path); err != nil {
			return cfg, err
		}
	}

	cfg.Env = getenv("APP_ENV", cfg.Env)
	cfg.ListenAddr = getenv("LISTEN_ADDR", cfg.ListenAddr)
	cfg.StoreDriver = strings.ToLower(getenv("STORE_DRIVER", cfg.StoreDriver))
	cfg.DatabaseURL = getenv("DATABASE_URL", cfg.DatabaseURL)
	cfg.SQLitePath = getenv("SQLITE_PATH", cfg.SQLitePath)
	cfg.LogLevel = getenv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getenv("LOG_FORMAT", cfg.LogFormat)
	cfg.OutcomeWebhookURL = getenv("OUTCOME_WEBHOOK_URL", cfg.OutcomeWebhookURL)

	var err error
	if cfg.SessionTimeout, err = getenvDuration("SESSION_TIMEOUT", cfg.SessionTimeout); err != nil {
		return cfg, err
	}
	if cfg.SweepInterval, err = getenvDuration("SWEEP_INTERVAL", cfg.SweepInterval); err != nil {
		return cfg, err
	}
	if cfg.NotifyWorkers, err = getenvInt("NOTIFY_WORKERS", cfg.NotifyWorkers); err != nil {
		return cfg, err
	}
	if cfg.NotifyQueue, err = getenvInt("NOTIFY_QUEUE", cfg.NotifyQueue); err != nil {
		return cfg, err
	}
	if cfg.IngestConcurrency, err = getenvInt("INGEST_CONCURRENCY", cfg.IngestConcurrency); err != nil {
		return cfg, err
	}
	if cfg.Schedule.Enabled, err = getenvBool("SCHEDULE_ENABLED", cfg.Schedule.Enabled); err != nil {
		return cfg, err
	}
	if cfg.Schedule.Interval, err = getenvDuration("SCHEDULE_INTERVAL", cfg.Schedule.Interval); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) readFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c Config) Validate() error {
	switch c.StoreDriver {
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres store")
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the sqlite store")
		}
	default:
		return fmt.Errorf("STORE_DRIVER must be postgres or sqlite, got %q", c.StoreDriver)
	}
	if c.SessionTimeout <= 0 {
		return fmt.Errorf("SESSION_TIMEOUT must be positive")
	}
	if c.SweepInterval <= 0 {
		return fmt.Errorf("SWEEP_INTERVAL must be positive")
	}
	if c.NotifyWorkers < 1 || c.NotifyQueue < 1 || c.IngestConcurrency < 1 {
		return fmt.Errorf("NOTIFY_WORKERS, NOTIFY_QUEUE and INGEST_CONCURRENCY must be at least 1")
	}
	if !c.Schedule.Enabled {
		return nil
	}
	if c.Schedule.Interval <= 0 {
		return fmt.Errorf("SCHEDULE_INTERVAL must be positive")
	}
	if len(c.Schedule.Sources) == 0 {
		return fmt.Errorf("schedule is enabled but lists no sources")
	}
	for _, src := range c.Schedule.Sources {
		if strings.TrimSpace(src.Source) == "" {
			return fmt.Errorf("schedule source is missing its source")
		}
		if _, err := src.Weekdays(); err != nil {
			return err
		}
	}
	return nil
}
