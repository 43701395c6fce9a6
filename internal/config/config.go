package config

import (
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/Xenn-00/schicht-meister/internal/utils"
)

type AppConfig struct {
	APP struct {
		Name  string `mapstructure:"NAME"`
		Port  string `mapstructure:"PORT"`
		State string `mapstructure:"STATE"`
	}

	DATABASE struct {
		Postgres struct {
			DSN string `mapstructure:"DSN"`
		}
		Redis struct {
			Addr     string `mapstructure:"ADDR"`
			Password string `mapstructure:"PASSWORD"`
		}
	}

	APP_SECRET struct {
		Paseto struct {
			HexKey string `mapstructure:"HEX_KEY"`
		}
	}

	MAILTRAP struct {
		Sandbox struct {
			SandboxHost   string `mapstructure:"SANDBOX_HOST"`
			SandboxAPI    string `mapstructure:"SANDBOX_API"`
			SandboxURL    string `mapstructure:"SANDBOX_URL"`
			SandboxDomain string `mapstructure:"SANDBOX_DOMAIN"`
		}
		API struct {
			APIToken         string `mapstructure:"API_TOKEN"`
			APIHost          string `mapstructure:"API_HOST"`
			MailtrapTokenAPI string `mapstructure:"MAILTRAP_TOKEN_API"`
			MailtrapURL      string `mapstructure:"MAILTRAP_URL"`
			MailtrapDomain   string `mapstructure:"MAILTRAP_DOMAIN"`
		}
	}

	WAGE struct {
		// Mindeststundenlohn als Dezimalstring, z.B. "17.20".
		MinimumHourly string `mapstructure:"MINIMUM_HOURLY"`
		// Provisorische Einsatzdauer in Minuten beim Anlegen.
		DefaultEinsatzMinutes int `mapstructure:"DEFAULT_EINSATZ_MINUTES"`
	}
}

func LoadConfig() *AppConfig {
	viper.SetConfigName("application")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		log.Error().Err(err).Msg("Fehler beim Lesen der Konfigurationsdatei")
		return nil
	}

	var config AppConfig
	if err := viper.Unmarshal(&config); err != nil {
		log.Error().Err(err).Msg("Fehler beim Entpacken der Konfiguration")
		return nil
	}

	if config.APP.Port == "" {
		config.APP.Port = "8080"
	}

	if config.DATABASE.Postgres.DSN == "" {
		log.Error().Msg("Datenbank-DSN ist nicht konfiguriert")
		return nil
	}

	if config.APP_SECRET.Paseto.HexKey == "" {
		config.APP_SECRET.Paseto.HexKey = utils.GenerateSymmetricKey()
	}

	if config.WAGE.MinimumHourly == "" {
		config.WAGE.MinimumHourly = "17.20"
	}
	if _, err := decimal.NewFromString(config.WAGE.MinimumHourly); err != nil {
		log.Error().Err(err).Msg("WAGE.MINIMUM_HOURLY ist keine gültige Dezimalzahl")
		return nil
	}

	if config.WAGE.DefaultEinsatzMinutes <= 0 {
		config.WAGE.DefaultEinsatzMinutes = 10
	}

	log.Info().Msg("Konfiguration geladen...")
	return &config
}

// MinimumWage liefert den geparsten Mindeststundenlohn. LoadConfig hat den
// String bereits validiert.
func (c *AppConfig) MinimumWage() decimal.Decimal {
	wage, err := decimal.NewFromString(c.WAGE.MinimumHourly)
	if err != nil {
		return decimal.NewFromFloat(17.20)
	}
	return wage
}
