package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrGatewayNotConfigured = errors.New("gateway url is not configured")

type GatewayConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

type AuthConfig struct {
	// SigningSecret is base64 encoded.
	SigningSecret string        `yaml:"signing_secret"`
	TokenTTL      time.Duration `yaml:"token_ttl"`
	CookieName    string        `yaml:"cookie_name"`
}

type DatabaseConfig struct {
	// Driver is "memory", "sqlite" or "mysql".
	Driver         string `yaml:"driver"`
	DSN            string `yaml:"dsn"`
	MaxConnections int    `yaml:"max_connections"`
	LogLevel       string `yaml:"log_level"`
}

type SlackConfig struct {
	Token   string `yaml:"token"`
	Channel string `yaml:"channel"`

	// ErrorChannel receives job failures; defaults to Channel.
	ErrorChannel string `yaml:"error_channel"`
}

type EmailConfig struct {
	Region string   `yaml:"region"`
	From   string   `yaml:"from"`
	To     []string `yaml:"to"`
}

type ExportConfig struct {
	Bucket string `yaml:"bucket"`
	Prefix string `yaml:"prefix"`
}

type Config struct {
	Addr         string         `yaml:"addr"`
	Language     string         `yaml:"language"`
	TimeZone     string         `yaml:"time_zone"`
	SSMParameter string         `yaml:"ssm_parameter"`
	Gateway      GatewayConfig  `yaml:"gateway"`
	Auth         AuthConfig     `yaml:"auth"`
	Database     DatabaseConfig `yaml:"database"`
	Slack        SlackConfig    `yaml:"slack"`
	Email        EmailConfig    `yaml:"email"`
	Export       ExportConfig   `yaml:"export"`
}

func Default() *Config {
	return &Config{
		Addr:     ":8090",
		Language: "it",
		TimeZone: "Europe/Rome",
		Gateway: GatewayConfig{
			Timeout: 30 * time.Second,
		},
		Auth: AuthConfig{
			TokenTTL:   12 * time.Hour,
			CookieName: "timesheet.ApplicationCookie",
		},
		Database: DatabaseConfig{
			Driver:         "memory",
			MaxConnections: 10,
			LogLevel:       "warn",
		},
		Export: ExportConfig{
			Prefix: "exports/",
		},
	}
}

// Load reads the YAML file at path over the defaults, then applies the
// environment. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("unmarshal yaml: %w", err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	strs := map[string]*string{
		"TIMESHEET_ADDR":           &c.Addr,
		"TIMESHEET_LANGUAGE":       &c.Language,
		"TIMESHEET_TIME_ZONE":      &c.TimeZone,
		"TIMESHEET_SSM_PARAMETER":  &c.SSMParameter,
		"TIMESHEET_GATEWAY_URL":    &c.Gateway.URL,
		"TIMESHEET_SIGNING_SECRET": &c.Auth.SigningSecret,
		"TIMESHEET_DB_DRIVER":      &c.Database.Driver,
		"DSN":                      &c.Database.DSN,
		"SLACK_BOT_TOKEN":          &c.Slack.Token,
		"SLACK_CHANNEL":            &c.Slack.Channel,
		"SLACK_ERROR_CHANNEL":      &c.Slack.ErrorChannel,
		"TIMESHEET_EMAIL_FROM":     &c.Email.From,
		"TIMESHEET_EXPORT_BUCKET":  &c.Export.Bucket,
	}
	for key, target := range strs {
		if v, ok := os.LookupEnv(key); ok {
			*target = v
		}
	}

	if v, ok := os.LookupEnv("TIMESHEET_GATEWAY_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("TIMESHEET_GATEWAY_TIMEOUT: %w", err)
		}
		c.Gateway.Timeout = d
	}
	if v, ok := os.LookupEnv("TIMESHEET_DB_MAX_CONNECTIONS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TIMESHEET_DB_MAX_CONNECTIONS: %w", err)
		}
		c.Database.MaxConnections = n
	}
	return nil
}

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	if c.Gateway.URL == "" {
		return ErrGatewayNotConfigured
	}
	if c.Auth.SigningSecret == "" {
		return errors.New("signing secret is not configured")
	}
	switch c.Database.Driver {
	case "memory", "sqlite", "mysql":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	return nil
}
