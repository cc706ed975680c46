package config

import (
	"time"

	"github.com/spf13/viper"
)

// PlaceholderLedgerURL is the recognizable "not yet configured" value.
// Any URL containing it routes submissions to the degrade-to-logging
// path instead of an outbound call.
const PlaceholderLedgerURL = "PLACEHOLDER"

type Config struct {
	Server   ServerConfig
	Ledger   LedgerConfig
	Database DatabaseConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port int
}

type LedgerConfig struct {
	// URL of the ledger append endpoint the gateway forwards to. Empty
	// or placeholder values enable the degrade-to-logging path.
	URL            string
	ForwardTimeout time.Duration
	// WholesalePricePerLoaf is the flat per-loaf rate defaulted into
	// Price/Loaf for wholesale rows, as a decimal string.
	WholesalePricePerLoaf string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("LEDGER_URL", PlaceholderLedgerURL)
	viper.SetDefault("LEDGER_FORWARD_TIMEOUT", "15s")
	viper.SetDefault("WHOLESALE_PRICE_PER_LOAF", "8.00")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 3306)
	viper.SetDefault("DB_USER", "brekkie")
	viper.SetDefault("DB_PASSWORD", "secret")
	viper.SetDefault("DB_NAME", "brekkie")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	viper.SetDefault("LOG_LEVEL", "info")

	forwardTimeout, err := time.ParseDuration(viper.GetString("LEDGER_FORWARD_TIMEOUT"))
	if err != nil {
		return nil, err
	}

	connMaxLifetime, err := time.ParseDuration(viper.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Ledger: LedgerConfig{
			URL:                   viper.GetString("LEDGER_URL"),
			ForwardTimeout:        forwardTimeout,
			WholesalePricePerLoaf: viper.GetString("WHOLESALE_PRICE_PER_LOAF"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			Name:            viper.GetString("DB_NAME"),
			MaxOpenConns:    viper.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connMaxLifetime,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	return cfg, nil
}
