package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	AppHost                string
	AppPort                int
	DatabaseDriver         string
	DatabaseDSN            string
	LogLevel               string
	LogFormat              string
	CORSAllowedOrigins     []string
	ShutdownTimeoutSeconds int
}

// AppURL is the listen address handed to echo.
func (c Config) AppURL() string {
	return fmt.Sprintf("%s:%d", c.AppHost, c.AppPort)
}

// Load resolves configuration from defaults, an optional YAML file and the
// environment, in increasing order of precedence. Nested keys map to
// environment variables by upper-casing and replacing dots, so app.port is
// read from APP_PORT.
func Load(configFile string) (Config, error) {
	v := viper.New()

	v.SetDefault("app.host", "127.0.0.1")
	v.SetDefault("app.port", 5000)
	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.dsn", "tasks.db?_busy_timeout=5000&_journal_mode=WAL")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:4200"})
	v.SetDefault("shutdown_timeout_seconds", 20)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	cfg := Config{
		AppHost:                v.GetString("app.host"),
		AppPort:                v.GetInt("app.port"),
		DatabaseDriver:         strings.ToLower(v.GetString("database.driver")),
		DatabaseDSN:            v.GetString("database.dsn"),
		LogLevel:               v.GetString("log.level"),
		LogFormat:              strings.ToLower(v.GetString("log.format")),
		CORSAllowedOrigins:     splitList(v.GetStringSlice("cors.allowed_origins")),
		ShutdownTimeoutSeconds: v.GetInt("shutdown_timeout_seconds"),
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.AppHost == "" {
		return fmt.Errorf("APP_HOST must not be empty")
	}
	if cfg.AppPort <= 0 || cfg.AppPort > 65535 {
		return fmt.Errorf("APP_PORT must be between 1 and 65535, got %d", cfg.AppPort)
	}
	if cfg.DatabaseDriver != DriverSQLite && cfg.DatabaseDriver != DriverPostgres {
		return fmt.Errorf("DATABASE_DRIVER must be %q or %q, got %q", DriverSQLite, DriverPostgres, cfg.DatabaseDriver)
	}
	if cfg.DatabaseDSN == "" {
		return fmt.Errorf("DATABASE_DSN must not be empty")
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "console" {
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", cfg.LogFormat)
	}
	if cfg.ShutdownTimeoutSeconds <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0")
	}
	return nil
}

// splitList accepts both YAML lists and comma separated environment values.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
