package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// placeholderSecret is the value shipped in sample env files; it is never accepted.
const placeholderSecret = "change-me"

// Config holds application level configuration loaded from environment variables
// and an optional config.yaml.
type Config struct {
	ServerPort  string   `mapstructure:"server_port"`
	CORSOrigins []string `mapstructure:"cors_origins"`
	SwaggerHost string   `mapstructure:"swagger_host"`
	ResetDB     bool     `mapstructure:"reset_db"`

	DatabaseDriver string `mapstructure:"database_driver"`
	DatabaseDSN    string `mapstructure:"database_dsn"`

	RedisAddr string `mapstructure:"redis_addr"`
	RedisDB   int    `mapstructure:"redis_db"`
	RedisPass string `mapstructure:"redis_password"`

	JWTSecret   string `mapstructure:"jwt_secret"`
	FrontendURL string `mapstructure:"frontend_url"`

	VAPIDPublicKey  string `mapstructure:"vapid_public_key"`
	VAPIDPrivateKey string `mapstructure:"vapid_private_key"`
	VAPIDSubject    string `mapstructure:"vapid_subject"`

	MailHost        string `mapstructure:"mail_host"`
	MailPort        int    `mapstructure:"mail_port"`
	MailUsername    string `mapstructure:"mail_username"`
	MailPassword    string `mapstructure:"mail_password"`
	MailFromName    string `mapstructure:"mail_from_name"`
	MailFromAddress string `mapstructure:"mail_from_address"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	LogFile   string `mapstructure:"log_file"`

	WorkerCount     int           `mapstructure:"worker_count"`
	WorkerQueue     int           `mapstructure:"worker_queue"`
	DeliveryTimeout time.Duration `mapstructure:"delivery_timeout"`
}

// PushEnabled reports whether VAPID keys were supplied.
func (c *Config) PushEnabled() bool {
	return c.VAPIDPublicKey != "" || c.VAPIDPrivateKey != ""
}

// MailEnabled reports whether an SMTP relay was configured.
func (c *Config) MailEnabled() bool {
	return c.MailHost != ""
}

// Load builds Config from environment and optional config file. Secrets have no
// defaults: a missing JWT secret fails startup.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("server_port", "8080")
	v.SetDefault("cors_origins", []string{"*"})
	v.SetDefault("reset_db", false)
	v.SetDefault("database_driver", "mysql")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_db", 0)
	v.SetDefault("frontend_url", "http://localhost:5173")
	v.SetDefault("mail_port", 587)
	v.SetDefault("mail_from_name", "Roster")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("worker_count", 4)
	v.SetDefault("worker_queue", 256)
	v.SetDefault("delivery_timeout", 10*time.Second)

	// Keys without defaults must still be known to viper for env lookup.
	for _, key := range []string{
		"swagger_host", "database_dsn", "redis_password", "jwt_secret",
		"vapid_public_key", "vapid_private_key", "vapid_subject",
		"mail_host", "mail_username", "mail_password", "mail_from_address", "log_file",
	} {
		_ = v.BindEnv(key)
	}

	if cfgFile := os.Getenv("CONFIG_FILE"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	// CORS_ORIGINS arrives from env as a single comma separated string.
	if len(cfg.CORSOrigins) == 1 && strings.Contains(cfg.CORSOrigins[0], ",") {
		cfg.CORSOrigins = splitCSV(cfg.CORSOrigins[0])
	}
	cfg.FrontendURL = strings.TrimRight(cfg.FrontendURL, "/")

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MustLoad is Load for entrypoints that cannot continue without configuration.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func validate(c *Config) error {
	secret := strings.TrimSpace(c.JWTSecret)
	if secret == "" || secret == placeholderSecret {
		return errors.New("JWT_SECRET must be set")
	}
	if strings.TrimSpace(c.DatabaseDSN) == "" {
		return errors.New("DATABASE_DSN must be set")
	}
	switch c.DatabaseDriver {
	case "mysql", "postgres":
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.DatabaseDriver)
	}
	if c.PushEnabled() && (c.VAPIDPublicKey == "" || c.VAPIDPrivateKey == "") {
		return errors.New("VAPID_PUBLIC_KEY and VAPID_PRIVATE_KEY must be set together")
	}
	if c.PushEnabled() && c.VAPIDSubject == "" {
		return errors.New("VAPID_SUBJECT must be set when push is enabled")
	}
	if c.MailEnabled() && c.MailFromAddress == "" {
		return errors.New("MAIL_FROM_ADDRESS must be set when MAIL_HOST is configured")
	}
	if c.WorkerCount <= 0 {
		return errors.New("WORKER_COUNT must be positive")
	}
	return nil
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
