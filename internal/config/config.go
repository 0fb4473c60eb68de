// Package config loads application settings from configs/config.yml, an
// optional .env file and CHILL_* environment variables, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPrefix  = "CHILL"
	configName = "config"

	// DefaultSigningKey is only meant for local runs.
	DefaultSigningKey = "chill-timer-dev-key"
)

type Config struct {
	Port    string        `mapstructure:"port"`
	DB      DBConfig      `mapstructure:"db"`
	Log     LogConfig     `mapstructure:"log"`
	Auth    AuthConfig    `mapstructure:"auth"`
	WS      WSConfig      `mapstructure:"ws"`
	Watcher WatcherConfig `mapstructure:"watcher"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type AuthConfig struct {
	SigningKey string        `mapstructure:"signing_key"`
	TokenTTL   time.Duration `mapstructure:"token_ttl"`
}

type WSConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

type WatcherConfig struct {
	Tick time.Duration `mapstructure:"tick"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("db.path", "chill.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("auth.signing_key", DefaultSigningKey)
	v.SetDefault("auth.token_ttl", time.Hour)
	v.SetDefault("ws.interval", time.Second)
	v.SetDefault("watcher.tick", time.Second)
}

// Load reads dir/config.yml (missing file is fine) and dir/../.env, then
// applies environment overrides.
func Load(dir string) (*Config, error) {
	if err := loadDotEnv(filepath.Join(dir, "..", ".env")); err != nil {
		return nil, err
	}

	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName(configName)
	v.SetConfigType("yml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
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

// godotenv never overrides variables that are already set.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Validate rejects settings the service cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Port == "":
		return errors.New("config: port is empty")
	case c.DB.Path == "":
		return errors.New("config: db.path is empty")
	case c.Auth.SigningKey == "":
		return errors.New("config: auth.signing_key is empty")
	case c.Auth.TokenTTL <= 0:
		return fmt.Errorf("config: auth.token_ttl must be positive, got %s", c.Auth.TokenTTL)
	case c.WS.Interval <= 0:
		return fmt.Errorf("config: ws.interval must be positive, got %s", c.WS.Interval)
	case c.Watcher.Tick <= 0:
		return fmt.Errorf("config: watcher.tick must be positive, got %s", c.Watcher.Tick)
	}
	return nil
}
