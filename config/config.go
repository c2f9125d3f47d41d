package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"debt-planner/amortization"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Log       LogConfig       `mapstructure:"log"`
	Planner   PlannerConfig   `mapstructure:"planner"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

type RateLimitConfig struct {
	Capacity int           `mapstructure:"capacity"`
	Refill   time.Duration `mapstructure:"refill"`
}

type RedisConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Addr       string `mapstructure:"addr"`
	Password   string `mapstructure:"password"`
	DB         int    `mapstructure:"db"`
	MaxRetries int    `mapstructure:"max_retries"`
}

type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
	File        string `mapstructure:"file"`
}

type PlannerConfig struct {
	// AllocationMode is "independent" or "shared".
	AllocationMode string  `mapstructure:"allocation_mode"`
	MinBudget      float64 `mapstructure:"min_budget"`
	MaxLoans       int     `mapstructure:"max_loans"`
	// MaxMonths bounds single-loan projections and interest accumulation.
	MaxMonths int    `mapstructure:"max_months"`
	Currency  string `mapstructure:"currency"`
}

const (
	EnvPrefix = "PLANNER"

	DefaultPort      = 8080
	DefaultMinBudget = 1000.0
	DefaultMaxLoans  = 5
	DefaultMaxMonths = 1200
)

var defaults = map[string]interface{}{
	"server.port":             DefaultPort,
	"server.read_timeout":     15 * time.Second,
	"server.write_timeout":    15 * time.Second,
	"server.idle_timeout":     60 * time.Second,
	"rate_limit.capacity":     60,
	"rate_limit.refill":       time.Minute,
	"redis.enabled":           false,
	"redis.addr":              "localhost:6379",
	"redis.password":          "",
	"redis.db":                0,
	"redis.max_retries":       3,
	"cache.ttl":               10 * time.Minute,
	"log.level":               "info",
	"log.development":         false,
	"log.file":                "",
	"planner.allocation_mode": string(amortization.Independent),
	"planner.min_budget":      DefaultMinBudget,
	"planner.max_loans":       DefaultMaxLoans,
	"planner.max_months":      DefaultMaxMonths,
	"planner.currency":        "kr",
}

// Load reads defaults, then the optional file at path, then PLANNER_*
// environment variables (PLANNER_SERVER_PORT overrides server.port).
func Load(path string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port %d: must be between 1 and 65535", c.Server.Port))
	}
	if c.RateLimit.Capacity <= 0 {
		errs = append(errs, fmt.Errorf("rate_limit.capacity must be positive, got %d", c.RateLimit.Capacity))
	}
	if c.RateLimit.Refill <= 0 {
		errs = append(errs, errors.New("rate_limit.refill must be positive"))
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		errs = append(errs, errors.New("redis.addr is required when redis is enabled"))
	}
	if c.Cache.TTL < 0 {
		errs = append(errs, errors.New("cache.ttl cannot be negative"))
	}
	if _, err := amortization.ParseMode(c.Planner.AllocationMode); err != nil {
		errs = append(errs, fmt.Errorf("planner.allocation_mode: %w", err))
	}
	if c.Planner.MinBudget < 0 {
		errs = append(errs, errors.New("planner.min_budget cannot be negative"))
	}
	if c.Planner.MaxLoans <= 0 {
		errs = append(errs, fmt.Errorf("planner.max_loans must be positive, got %d", c.Planner.MaxLoans))
	}
	if c.Planner.MaxMonths <= 0 {
		errs = append(errs, fmt.Errorf("planner.max_months must be positive, got %d", c.Planner.MaxMonths))
	}

	return errors.Join(errs...)
}

// Mode returns the parsed allocation mode. Call after Validate.
func (c *Config) Mode() amortization.Mode {
	m, _ := amortization.ParseMode(c.Planner.AllocationMode)
	return m
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
