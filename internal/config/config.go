package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Port        int
	MetricsPort int `toml:"metrics_port"`
	// logging
	LogLevel    string `toml:"log_level"`
	LogsPath    string `toml:"logs_path"`
	LogToStdout bool   `toml:"log_to_stdout"`
	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// auth
	SessionTTLHours   int `toml:"session_ttl_hours"`
	LoginRatePerHour  int `toml:"login_rate_per_hour"`
	// volume spike thresholds, in percent increase week over week
	RunningSpikeThreshold  float64 `toml:"running_spike_threshold"`
	StrengthSpikeThreshold float64 `toml:"strength_spike_threshold"`
	// dashboard summary cache
	DashboardCacheTTLSeconds int `toml:"dashboard_cache_ttl_seconds"`

	HoneycombTracingEnabled bool `toml:"honeycomb_tracing_enabled"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML config file and returns the section for the given environment,
// with defaults applied for fields the file leaves out.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config section for env %s is empty", env)
	}

	if cfg.SessionTTLHours <= 0 {
		cfg.SessionTTLHours = 24 * 7
	}
	if cfg.LoginRatePerHour <= 0 {
		cfg.LoginRatePerHour = 10
	}
	if cfg.RunningSpikeThreshold <= 0 {
		cfg.RunningSpikeThreshold = 10
	}
	if cfg.StrengthSpikeThreshold <= 0 {
		cfg.StrengthSpikeThreshold = 20
	}
	if cfg.DashboardCacheTTLSeconds <= 0 {
		cfg.DashboardCacheTTLSeconds = 60
	}

	return cfg, nil
}
