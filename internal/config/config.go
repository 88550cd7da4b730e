package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/mmynk/bucketwise/pkg/logging"
)

const (
	envPrefix           = "BUCKETWISE"
	defaultHTTPAddress  = ":8080"
	defaultDatabasePath = "./data/bucketwise.db"
	defaultLogLevel     = "info"
	defaultBucketCost   = "20"
	defaultAMQPExchange = "bucketwise"
	defaultServerURL    = "http://localhost:8080"
)

// AppConfig captures runtime configuration for the server and the CLI client.
type AppConfig struct {
	HTTPAddress  string
	DatabasePath string
	LogLevel     string
	BucketCost   decimal.Decimal
	AMQPURL      string // empty disables event publishing
	AMQPExchange string
	ServerURL    string
}

// NewViper returns a viper instance with defaults and env bindings configured.
func NewViper() *viper.Viper {
	configViper := viper.New()
	ApplyDefaults(configViper)
	return configViper
}

// ApplyDefaults configures defaults and env bindings on the provided viper instance.
func ApplyDefaults(configViper *viper.Viper) {
	configViper.SetEnvPrefix(envPrefix)
	configViper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	configViper.AutomaticEnv()

	configViper.SetDefault("http.address", defaultHTTPAddress)
	configViper.SetDefault("database.path", defaultDatabasePath)
	configViper.SetDefault("log.level", defaultLogLevel)
	configViper.SetDefault("bucket.cost", defaultBucketCost)
	configViper.SetDefault("amqp.url", "")
	configViper.SetDefault("amqp.exchange", defaultAMQPExchange)
	configViper.SetDefault("server.url", defaultServerURL)
}

// Load parses runtime configuration from viper.
func Load(configViper *viper.Viper) (AppConfig, error) {
	cost, err := decimal.NewFromString(strings.TrimSpace(configViper.GetString("bucket.cost")))
	if err != nil {
		return AppConfig{}, fmt.Errorf("bucket.cost: %w", err)
	}

	cfg := AppConfig{
		HTTPAddress:  configViper.GetString("http.address"),
		DatabasePath: configViper.GetString("database.path"),
		LogLevel:     configViper.GetString("log.level"),
		BucketCost:   cost,
		AMQPURL:      configViper.GetString("amqp.url"),
		AMQPExchange: configViper.GetString("amqp.exchange"),
		ServerURL:    strings.TrimRight(configViper.GetString("server.url"), "/"),
	}

	if err := cfg.validate(); err != nil {
		return AppConfig{}, err
	}

	return cfg, nil
}

func (c AppConfig) validate() error {
	if strings.TrimSpace(c.HTTPAddress) == "" {
		return fmt.Errorf("http.address is required")
	}
	if strings.TrimSpace(c.DatabasePath) == "" {
		return fmt.Errorf("database.path is required")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if !c.BucketCost.IsPositive() {
		return fmt.Errorf("bucket.cost must be positive, got %s", c.BucketCost)
	}
	if c.AMQPURL != "" && strings.TrimSpace(c.AMQPExchange) == "" {
		return fmt.Errorf("amqp.exchange is required when amqp.url is set")
	}
	u, err := url.Parse(c.ServerURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("server.url must be an absolute URL, got %q", c.ServerURL)
	}
	return nil
}
