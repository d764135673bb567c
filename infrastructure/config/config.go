package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "ORGCONNECT_"

// PathEnv names the config file when no -config flag is given.
const PathEnv = EnvPrefix + "CONFIG"

// Config defines server configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server" envPrefix:"SERVER_"`
	DB         DBConfig         `yaml:"db" envPrefix:"DB_"`
	Log        LogConfig        `yaml:"log" envPrefix:"LOG_"`
	Session    SessionConfig    `yaml:"session" envPrefix:"SESSION_"`
	Simulation SimulationConfig `yaml:"simulation" envPrefix:"SIMULATION_"`
	Demo       DemoConfig       `yaml:"demo" envPrefix:"DEMO_"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr" env:"ADDR"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"`
}

type DBConfig struct {
	Path string `yaml:"path" env:"PATH"`
}

type LogConfig struct {
	Level  string `yaml:"level" env:"LEVEL"`
	Format string `yaml:"format" env:"FORMAT"`
}

type SessionConfig struct {
	TTL time.Duration `yaml:"ttl" env:"TTL"`
}

// SimulationConfig drives the live-update jobs of every workspace.
type SimulationConfig struct {
	DashboardInterval time.Duration `yaml:"dashboard_interval" env:"DASHBOARD_INTERVAL"`
	AnalyticsInterval time.Duration `yaml:"analytics_interval" env:"ANALYTICS_INTERVAL"`
	AuditInterval     time.Duration `yaml:"audit_interval" env:"AUDIT_INTERVAL"`
	Resolution        time.Duration `yaml:"resolution" env:"RESOLUTION"`
	// Seed of 0 seeds each workspace from the clock.
	Seed uint64 `yaml:"seed" env:"SEED"`
}

type DemoConfig struct {
	Password string `yaml:"password" env:"PASSWORD"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: 10 * time.Second,
		},
		DB: DBConfig{
			Path: "orgconnect.db",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Session: SessionConfig{
			TTL: 12 * time.Hour,
		},
		Simulation: SimulationConfig{
			DashboardInterval: 5 * time.Second,
			AnalyticsInterval: 3 * time.Second,
			AuditInterval:     10 * time.Second,
			Resolution:        time.Second,
		},
		Demo: DemoConfig{
			Password: "password",
		},
	}
}

// Load layers defaults, the optional YAML file at path, then environment
// variables. An empty path falls back to ORGCONNECT_CONFIG.
func Load(path string) (Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) == "" {
		path = os.Getenv(PathEnv)
	}
	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the server cannot run with.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Server.Addr) == "" {
		errs = append(errs, errors.New("server addr is required"))
	}
	if strings.TrimSpace(c.DB.Path) == "" {
		errs = append(errs, errors.New("db path is required"))
	}
	if c.Session.TTL <= 0 {
		errs = append(errs, errors.New("session ttl must be positive"))
	}
	for name, d := range map[string]time.Duration{
		"dashboard_interval": c.Simulation.DashboardInterval,
		"analytics_interval": c.Simulation.AnalyticsInterval,
		"audit_interval":     c.Simulation.AuditInterval,
		"resolution":         c.Simulation.Resolution,
	} {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("simulation %s must be positive", name))
		}
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Log.Format))
	}
	return errors.Join(errs...)
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
