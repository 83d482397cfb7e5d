package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Environment string         `mapstructure:"environment"`
	Database    DatabaseConfig `mapstructure:"database"`
	Billing     BillingConfig  `mapstructure:"billing"`
	UI          UIConfig       `mapstructure:"ui"`
	Log         LogConfig      `mapstructure:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// DatabaseConfig holds sqlite settings. An empty Path keeps the whole
// session in memory.
type DatabaseConfig struct {
	Path     string `mapstructure:"path"`
	SeedDemo bool   `mapstructure:"seed_demo"`
}

// BillingConfig holds document workflow settings.
type BillingConfig struct {
	PaymentTermDays int `mapstructure:"payment_term_days"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencySymbol string `mapstructure:"currency_symbol"`
	DateFormat     string `mapstructure:"date_format"`
}

// Load reads configuration from file and env. Env var overrides use prefix HAULBOARD_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("environment", "development")
	v.SetDefault("database.path", "")
	v.SetDefault("database.seed_demo", true)
	v.SetDefault("billing.payment_term_days", 30)
	v.SetDefault("ui.currency_symbol", "N$")
	v.SetDefault("ui.date_format", "02 Jan 2006")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("HAULBOARD_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "haulboard"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("HAULBOARD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Billing.PaymentTermDays <= 0 {
		return Config{}, fmt.Errorf("billing.payment_term_days must be positive, got %d", c.Billing.PaymentTermDays)
	}
	return c, nil
}
