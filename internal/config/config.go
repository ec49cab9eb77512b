package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Monetize MonetizeConfig `mapstructure:"monetize"`
	Gate     GateConfig     `mapstructure:"gate"`
	IPLookup IPLookupConfig `mapstructure:"iplookup"`
	RocketMQ RocketMQConfig `mapstructure:"rocketmq"`
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// DatabaseConfig represents database configuration
type DatabaseConfig struct {
	MySQL MySQLConfig `mapstructure:"mysql"`
	Redis RedisConfig `mapstructure:"redis"`
}

// MySQLConfig represents MySQL configuration
type MySQLConfig struct {
	DSN string `mapstructure:"dsn"`
}

// RedisConfig represents Redis configuration
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// MonetizeConfig represents earnings-accrual configuration
type MonetizeConfig struct {
	DefaultCpmMicros int64         `mapstructure:"default_cpm_micros"`
	Window           time.Duration `mapstructure:"window"`
	CookieName       string        `mapstructure:"cookie_name"`
	CookieTTL        time.Duration `mapstructure:"cookie_ttl"`
}

// GateConfig represents gate state machine configuration
type GateConfig struct {
	ItemDwell   time.Duration `mapstructure:"item_dwell"`
	Countdown   time.Duration `mapstructure:"countdown"`
	MinDuration time.Duration `mapstructure:"min_duration"`
	SessionTTL  time.Duration `mapstructure:"session_ttl"`
}

// IPLookupConfig represents the external IP lookup client configuration
type IPLookupConfig struct {
	Endpoint string        `mapstructure:"endpoint"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// RocketMQConfig represents RocketMQ configuration
type RocketMQConfig struct {
	NameServer string `mapstructure:"nameserver"`
	Topic      string `mapstructure:"topic"`
	Group      string `mapstructure:"group"`
}

// Global config instance
var cfg *Config

// Load loads configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Set defaults
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Expand environment variables
	cfg.Database.Redis.Password = expandEnv(cfg.Database.Redis.Password)
	cfg.Database.MySQL.DSN = expandEnv(cfg.Database.MySQL.DSN)

	return cfg, nil
}

// Get returns the global config instance
func Get() *Config {
	return cfg
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("monetize.default_cpm_micros", 3000000)
	v.SetDefault("monetize.window", "30m")
	v.SetDefault("monetize.cookie_name", "ysl_last_visit")
	v.SetDefault("monetize.cookie_ttl", "720h")
	v.SetDefault("gate.item_dwell", "2s")
	v.SetDefault("gate.countdown", "5s")
	v.SetDefault("gate.min_duration", "10s")
	v.SetDefault("gate.session_ttl", "1h")
	v.SetDefault("iplookup.endpoint", "https://api.ipify.org")
	v.SetDefault("iplookup.timeout", "5s")
	v.SetDefault("rocketmq.topic", "earnings_notifications")
	v.SetDefault("rocketmq.group", "yoursublink_consumer_group")
}

// expandEnv expands environment variables in the string
func expandEnv(s string) string {
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		envKey := s[2 : len(s)-1]
		return viper.GetString(envKey)
	}
	return s
}
