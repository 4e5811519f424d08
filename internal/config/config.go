package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Stripe   StripeConfig
	Resend   ResendConfig
	Email    EmailConfig
	Site     SiteConfig
	Sweep    SweepConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port int
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

type StripeConfig struct {
	SecretKey string
}

type ResendConfig struct {
	APIKey string
}

type EmailConfig struct {
	OperatorAddress string
	OperatorFrom    string
	CustomerFrom    string
}

type SiteConfig struct {
	BaseURL string
}

type SweepConfig struct {
	Interval      time.Duration
	MaxPendingAge time.Duration
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 3306)
	viper.SetDefault("DB_USER", "bluw")
	viper.SetDefault("DB_PASSWORD", "secret")
	viper.SetDefault("DB_NAME", "bluw")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	viper.SetDefault("STRIPE_SECRET_KEY", "")
	viper.SetDefault("RESEND_API_KEY", "")
	viper.SetDefault("EMAIL_OPERATOR_ADDRESS", "streulens.salif@gmail.com")
	viper.SetDefault("EMAIL_OPERATOR_FROM", "Bluw <onboarding@resend.dev>")
	viper.SetDefault("EMAIL_CUSTOMER_FROM", "BLUW Design <noreply@bluwdesign.fr>")
	viper.SetDefault("SITE_BASE_URL", "https://bluwdesign.fr")
	viper.SetDefault("SWEEP_INTERVAL", "1h")
	viper.SetDefault("SWEEP_MAX_PENDING_AGE", "72h")
	viper.SetDefault("LOG_LEVEL", "info")

	connMaxLifetime, err := time.ParseDuration(viper.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		return nil, err
	}

	sweepInterval, err := time.ParseDuration(viper.GetString("SWEEP_INTERVAL"))
	if err != nil {
		return nil, err
	}

	maxPendingAge, err := time.ParseDuration(viper.GetString("SWEEP_MAX_PENDING_AGE"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
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
		Stripe: StripeConfig{
			SecretKey: viper.GetString("STRIPE_SECRET_KEY"),
		},
		Resend: ResendConfig{
			APIKey: viper.GetString("RESEND_API_KEY"),
		},
		Email: EmailConfig{
			OperatorAddress: viper.GetString("EMAIL_OPERATOR_ADDRESS"),
			OperatorFrom:    viper.GetString("EMAIL_OPERATOR_FROM"),
			CustomerFrom:    viper.GetString("EMAIL_CUSTOMER_FROM"),
		},
		Site: SiteConfig{
			BaseURL: viper.GetString("SITE_BASE_URL"),
		},
		Sweep: SweepConfig{
			Interval:      sweepInterval,
			MaxPendingAge: maxPendingAge,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	return cfg, nil
}
