// Package config загружает конфигурацию сервиса из флагов и переменных окружения.
package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// DBTimeout ограничивает длительность одного обращения к базе данных.
const DBTimeout = 3 * time.Second

type ConfigType struct {
	ServerAddress   string `env:"SERVER_ADDRESS"`
	BaseAddress     string `env:"BASE_URL"`
	DSN             string `env:"DATABASE_DSN"`
	FileStoragePath string `env:"FILE_STORAGE_PATH"`
	SecretKey       string `env:"SECRET_KEY"`
}

func NewConfig() *ConfigType {
	config := ConfigType{}

	flag.StringVar(&config.ServerAddress, "a", "localhost:8080", "HTTP server address")
	flag.StringVar(&config.BaseAddress, "b", "http://localhost:8080", "short link base address")
	flag.StringVar(&config.DSN, "d", "", "database connection string")
	flag.StringVar(&config.FileStoragePath, "f", "", "file storage path")
	flag.StringVar(&config.SecretKey, "k", "", "secret key for signing session tokens")

	flag.Parse()

	if err := env.Parse(&config); err != nil {
		fmt.Printf("Ошибка загрузки конфигурации из env: %v\n", err)
	}

	return &config
}
