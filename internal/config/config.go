package config

import (
	"os"
	"time"

	"github.com/joeshaw/envdecode"
	errwrap "github.com/pkg/errors"
	"github.com/subosito/gotenv"
)

type Config struct {
	AppEnv   string `env:"APP_ENV,default=development"`
	AppPort  string `env:"APP_PORT,default=8080"`
	LogLevel string `env:"LOG_LEVEL,default=info"`

	Database  DatabaseConfig
	Shopify   ShopifyConfig
	AMQP      AMQPConfig
	GuestList GuestListConfig
}

type DatabaseConfig struct {
	Driver string `env:"DB_DRIVER,default=sqlite"`
	DSN    string `env:"DB_DSN,default=compare.db"`
}

type ShopifyConfig struct {
	APIKey     string `env:"SHOPIFY_API_KEY"`
	APISecret  string `env:"SHOPIFY_API_SECRET"`
	APIVersion string `env:"SHOPIFY_API_VERSION,default=2025-01"`
	// AccessToken is used for shops without a stored offline session.
	AccessToken string        `env:"SHOPIFY_ACCESS_TOKEN"`
	Timeout     time.Duration `env:"SHOPIFY_TIMEOUT,default=30s"`
}

type AMQPConfig struct {
	URL      string `env:"AMQP_URL"`
	Exchange string `env:"AMQP_EXCHANGE,default=product-compare"`
}

type GuestListConfig struct {
	TTL       time.Duration `env:"GUEST_LIST_TTL,default=720h"`
	SweepCron string        `env:"GUEST_LIST_SWEEP_CRON,default=0 3 * * *"`
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Load reads envFile (when present) into the environment and decodes Config.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := gotenv.Load(envFile); err != nil {
				return nil, errwrap.Wrap(err, "load env file")
			}
		}
	}

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && err != envdecode.ErrNoTargetFieldsAreSet {
		return nil, errwrap.Wrap(err, "decode config")
	}
	return &cfg, nil
}
