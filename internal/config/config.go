package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config конфигурация сервиса. Подключение к удалённому бэкенду опционально:
// если SupabaseURL или SupabaseAnonKey пустые, включается fallback-режим
// с in-memory хранилищем.
type Config struct {
	Port        string
	Environment string
	LogLevel    string
	Supabase    SupabaseConfig
	SaveTimeout time.Duration // таймаут на сохранение товара в админке
}

type SupabaseConfig struct {
	URL     string
	AnonKey string
}

// Configured сообщает, заданы ли оба параметра подключения
func (s SupabaseConfig) Configured() bool {
	return s.URL != "" && s.AnonKey != ""
}

// Load читает .env (если есть) и переменные окружения
func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SAVE_TIMEOUT_SECONDS", 25)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// .env не обязателен, работаем на одних переменных окружения
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		LogLevel:    getEnvOrViper("LOG_LEVEL", "info"),
		Supabase: SupabaseConfig{
			URL:     strings.TrimSpace(getEnvOrViper("SUPABASE_URL", "")),
			AnonKey: strings.TrimSpace(getEnvOrViper("SUPABASE_ANON_KEY", "")),
		},
		SaveTimeout: time.Duration(viper.GetInt("SAVE_TIMEOUT_SECONDS")) * time.Second,
	}

	if cfg.SaveTimeout <= 0 {
		cfg.SaveTimeout = 25 * time.Second
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
