// Package config provides Viper-based hierarchical configuration management:
// defaults, then an optional config file, then MOMO_-prefixed environment
// variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var (
	log  = logrus.New()
	once sync.Once
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`

	Database struct {
		Driver string `mapstructure:"driver"`
		DSN    string `mapstructure:"dsn"`
	} `mapstructure:"database"`

	Ingest struct {
		BodySource        string `mapstructure:"body_source"`
		SkipUncategorized bool   `mapstructure:"skip_uncategorized"`
		AuditLog          string `mapstructure:"audit_log"`
	} `mapstructure:"ingest"`

	Server struct {
		Addr string `mapstructure:"addr"`
	} `mapstructure:"server"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter"`
	} `mapstructure:"csv"`

	Categories struct {
		File string `mapstructure:"file"`
	} `mapstructure:"categories"`
}

// Load initializes configuration with hierarchical loading.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.momo")
	v.AddConfigPath(".momo")
	v.AddConfigPath(".")

	v.SetEnvPrefix("MOMO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Invalid config file is not fatal: continue with defaults and env.
			log.Warnf("Error reading config file %s: %v", v.ConfigFileUsed(), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", filepath.Join("database", "momo.db"))

	v.SetDefault("ingest.body_source", "auto")
	v.SetDefault("ingest.skip_uncategorized", true)
	v.SetDefault("ingest.audit_log", filepath.Join("logs", "unprocessed_messages.log"))

	v.SetDefault("server.addr", ":8080")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("categories.file", "")
}

func validate(cfg *Config) error {
	switch cfg.Database.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}

	switch cfg.Ingest.BodySource {
	case "auto", "attribute", "element":
	default:
		return fmt.Errorf("unsupported ingest body source: %s", cfg.Ingest.BodySource)
	}

	if _, err := logrus.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", cfg.Log.Level)
	}

	if len(cfg.CSV.Delimiter) != 1 {
		return fmt.Errorf("csv delimiter must be a single character, got %q", cfg.CSV.Delimiter)
	}

	return nil
}

// ConfigureLogging builds a logger from the log section of the configuration.
func ConfigureLogging(cfg *Config) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(strings.ToLower(cfg.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", cfg.Log.Level)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if strings.ToLower(cfg.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}

// LoadEnv loads environment variables from a .env file if one exists.
func LoadEnv() {
	once.Do(func() {
		envFile := ".env"
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			envFile = filepath.Join("..", ".env")
			if _, err := os.Stat(envFile); os.IsNotExist(err) {
				return
			}
		}
		_ = godotenv.Load(envFile)
	})
}
