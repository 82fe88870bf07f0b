package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Port     string
	Env      string
	Timezone string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	Limit  int
	Window time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	rateLimitWindow, err := time.ParseDuration(viper.GetString("RATE_LIMIT_WINDOW"))
	if err != nil {
		rateLimitWindow = time.Minute
	}
	rateLimit := viper.GetInt("RATE_LIMIT")
	if rateLimit <= 0 {
		rateLimit = 120
	}

	timezone := viper.GetString("APP_TIMEZONE")
	if timezone == "" {
		timezone = "UTC"
	}

	config := &Config{
		App: AppConfig{
			Port:     viper.GetString("APP_PORT"),
			Env:      viper.GetString("APP_ENV"),
			Timezone: timezone,
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		RateLimit: RateLimitConfig{
			Limit:  rateLimit,
			Window: rateLimitWindow,
		},
	}

	return config, nil
}
