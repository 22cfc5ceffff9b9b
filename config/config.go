package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var ErrMissingAPIKey = errors.New("WEATHER_API_KEY is not configured")

type Config struct {
	ServiceName string
	Port        string

	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	WeatherAPIKey     string
	WeatherAPIBaseURL string
	UpstreamTimeout   time.Duration
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "weather-proxy")

	v.SetDefault("PORT", "3001")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("HTTP_TIMEOUT", 10)
	v.SetDefault("WEATHER_API_BASE_URL", "https://api.weatherapi.com/v1")
	v.SetDefault("UPSTREAM_TIMEOUT", time.Duration(0))

	v.AutomaticEnv()
	if err := v.BindEnv("ENV", "ENV", "NODE_ENV"); err != nil {
		return nil, fmt.Errorf("error binding ENV: %w", err)
	}

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:       v.GetString("SERVICE_NAME"),
		Port:              v.GetString("PORT"),
		DBName:            v.GetString("DATABASE_NAME"),
		DBPassword:        v.GetString("DATABASE_PASSWORD"),
		DBUser:            v.GetString("DATABASE_USER"),
		DBPort:            v.GetString("DATABASE_PORT"),
		DBHost:            v.GetString("DATABASE_HOST"),
		Env:               v.GetString("ENV"),
		LogLevel:          v.GetString("LOG_LEVEL"),
		HTTPTimeout:       v.GetInt32("HTTP_TIMEOUT"),
		WeatherAPIKey:     v.GetString("WEATHER_API_KEY"),
		WeatherAPIBaseURL: v.GetString("WEATHER_API_BASE_URL"),
		UpstreamTimeout:   v.GetDuration("UPSTREAM_TIMEOUT"),
	}

	return config, nil
}

// Validate reports configuration faults that should stop the process at startup.
func (c *Config) Validate() error {
	if c.WeatherAPIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

func (c *Config) ServerAddress() string {
	return ":" + c.Port
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

// QueryLogEnabled is true when a database is configured for the weather query log.
func (c *Config) QueryLogEnabled() bool {
	return c.DBHost != ""
}
