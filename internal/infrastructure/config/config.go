package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	StoreDriverDynamoDB = "dynamodb"
	StoreDriverPostgres = "postgres"
	StoreDriverSQLite   = "sqlite"
)

type Config struct {
	ServiceHost     string
	ServicePort     int
	ShutdownTimeout time.Duration
	LogLevel        string
	LogFormat       string
	StaticDir       string
	MaxImageBytes   int64

	Admin    AdminConfig
	Session  SessionConfig
	Store    StoreConfig
	DynamoDB DynamoDBConfig
	Redis    RedisConfig
	MinIO    MinIOConfig
}

type AdminConfig struct {
	Password string
}

type SessionConfig struct {
	Secret       string
	TTL          time.Duration
	CookieSecure bool
}

type StoreConfig struct {
	Driver      string
	Table       string
	DatabaseDSN string
	SQLitePath  string
}

type DynamoDBConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
}

type RedisConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DialTimeout time.Duration
	ReadTimeout time.Duration
}

// Enabled reports whether a Redis server was configured.
func (r RedisConfig) Enabled() bool { return r.Host != "" }

func (r RedisConfig) Addr() string { return fmt.Sprintf("%s:%d", r.Host, r.Port) }

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Enabled reports whether object storage for project images was configured.
func (m MinIOConfig) Enabled() bool { return m.Endpoint != "" }

var defaults = map[string]any{
	"SERVICE_HOST":          "",
	"SERVICE_PORT":          8080,
	"SHUTDOWN_TIMEOUT":      "10s",
	"LOG_LEVEL":             "info",
	"LOG_FORMAT":            "text",
	"STATIC_DIR":            "./static",
	"MAX_IMAGE_BYTES":       5 << 20,
	"ADMIN_PASSWORD":        "admin",
	"SESSION_SECRET":        "",
	"SESSION_TTL":           "0s",
	"SESSION_COOKIE_SECURE": false,
	"STORE_DRIVER":          StoreDriverDynamoDB,
	"QUOTE_REQUESTS_TABLE":  "requests",
	"DATABASE_DSN":          "",
	"SQLITE_PATH":           "probuilder.db",
	"AWS_REGION":            "us-east-1",
	"AWS_ACCESS_KEY_ID":     "local",
	"AWS_SECRET_ACCESS_KEY": "local",
	"DYNAMODB_ENDPOINT":     "",
	"REDIS_HOST":            "",
	"REDIS_PORT":            6379,
	"REDIS_USER":            "",
	"REDIS_PASSWORD":        "",
	"MINIO_ENDPOINT":        "",
	"MINIO_ACCESS_KEY":      "",
	"MINIO_SECRET_KEY":      "",
	"MINIO_BUCKET":          "quote-request-images",
	"MINIO_USE_SSL":         false,
}

// NewConfig reads .env, an optional TOML config file (CONFIG_NAME, default
// "config", searched in ./config and .) and the process environment, in
// increasing order of precedence.
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.AutomaticEnv()

	configName := "config"
	if name := os.Getenv("CONFIG_NAME"); name != "" {
		configName = name
	}
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.AddConfigPath("config")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{
		ServiceHost:     v.GetString("SERVICE_HOST"),
		ServicePort:     v.GetInt("SERVICE_PORT"),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		LogFormat:       v.GetString("LOG_FORMAT"),
		StaticDir:       v.GetString("STATIC_DIR"),
		MaxImageBytes:   v.GetInt64("MAX_IMAGE_BYTES"),
		Admin: AdminConfig{
			Password: v.GetString("ADMIN_PASSWORD"),
		},
		Session: SessionConfig{
			Secret:       v.GetString("SESSION_SECRET"),
			TTL:          v.GetDuration("SESSION_TTL"),
			CookieSecure: v.GetBool("SESSION_COOKIE_SECURE"),
		},
		Store: StoreConfig{
			Driver:      strings.ToLower(strings.TrimSpace(v.GetString("STORE_DRIVER"))),
			Table:       v.GetString("QUOTE_REQUESTS_TABLE"),
			DatabaseDSN: v.GetString("DATABASE_DSN"),
			SQLitePath:  v.GetString("SQLITE_PATH"),
		},
		DynamoDB: DynamoDBConfig{
			Region:          v.GetString("AWS_REGION"),
			AccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
			Endpoint:        v.GetString("DYNAMODB_ENDPOINT"),
		},
		Redis: RedisConfig{
			Host:        v.GetString("REDIS_HOST"),
			Port:        v.GetInt("REDIS_PORT"),
			User:        v.GetString("REDIS_USER"),
			Password:    v.GetString("REDIS_PASSWORD"),
			DialTimeout: 10 * time.Second,
			ReadTimeout: 10 * time.Second,
		},
		MinIO: MinIOConfig{
			Endpoint:  v.GetString("MINIO_ENDPOINT"),
			AccessKey: v.GetString("MINIO_ACCESS_KEY"),
			SecretKey: v.GetString("MINIO_SECRET_KEY"),
			Bucket:    v.GetString("MINIO_BUCKET"),
			UseSSL:    v.GetBool("MINIO_USE_SSL"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Admin.Password == defaults["ADMIN_PASSWORD"] {
		log.Warn("ADMIN_PASSWORD is the default value; set it before exposing the site")
	}

	log.Info("config parsed")
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case StoreDriverDynamoDB, StoreDriverSQLite:
	case StoreDriverPostgres:
		if strings.TrimSpace(c.Store.DatabaseDSN) == "" {
			return errors.New("DATABASE_DSN is required when STORE_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}
	if c.ServicePort <= 0 || c.ServicePort > 65535 {
		return fmt.Errorf("invalid SERVICE_PORT %d", c.ServicePort)
	}
	if c.Session.TTL < 0 {
		return fmt.Errorf("invalid SESSION_TTL %s", c.Session.TTL)
	}
	return nil
}

func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.ServiceHost, c.ServicePort)
}
