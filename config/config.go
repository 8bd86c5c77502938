package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

type Config struct {
	Account string        `env:"PAYEER_ACCOUNT"`
	ApiId   string        `env:"PAYEER_API_ID"`
	ApiPass string        `env:"PAYEER_API_PASS"`
	ApiUrl  string        `env:"PAYEER_API_URL"`
	Timeout time.Duration `env:"PAYEER_TIMEOUT" envDefault:"30s"`

	ShopId  string `env:"PAYEER_SHOP_ID"`
	ShopKey string `env:"PAYEER_SHOP_KEY"`

	NotifyAddr        string   `env:"NOTIFY_ADDRESS" envDefault:":8080"`
	NotifyAllowedIPs  []string `env:"NOTIFY_ALLOWED_IPS" envSeparator:","`
	NotifyBehindProxy bool     `env:"NOTIFY_BEHIND_PROXY"`

	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
}

var (
	ErrNoCredentials = errors.New("PAYEER_ACCOUNT, PAYEER_API_ID and PAYEER_API_PASS must be set")
	ErrNoShop        = errors.New("PAYEER_SHOP_ID and PAYEER_SHOP_KEY must be set")
)

// Read loads envFile when it exists and then parses the environment.
// Variables already set in the environment win over the file.
func Read(envFile string) (*Config, error) {
	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}
	conf := new(Config)
	if err := env.Parse(conf); err != nil {
		return nil, err
	}
	return conf, nil
}

func (c *Config) CheckCredentials() error {
	if c.Account == "" || c.ApiId == "" || c.ApiPass == "" {
		return ErrNoCredentials
	}
	return nil
}

func (c *Config) CheckShop() error {
	if c.ShopId == "" || c.ShopKey == "" {
		return ErrNoShop
	}
	return nil
}
