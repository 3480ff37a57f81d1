package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken string // токен бота для cmd/bottlebot
	ParamsFile    string // путь к файлу с параметрами детекции
	ResultsDB     string // путь к базе SQLite с результатами, пусто — не писать
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		ParamsFile:    getEnv("PARAMS_FILE", "bottle_counter_params.txt"),
		ResultsDB:     os.Getenv("RESULTS_DB"),
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
