package main

import (
	"log"

	"bottle-counter/config"
	telegram "bottle-counter/internal/api"
	"bottle-counter/internal/container"
	"bottle-counter/internal/infrastructure/storage"
	"bottle-counter/internal/infrastructure/vision"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.TelegramToken == "" {
		log.Fatal("TELEGRAM_TOKEN is required")
	}

	// Параметры детекции из файла, либо значения по умолчанию
	params := storage.LoadParams(cfg.ParamsFile)

	// Создаём хранилище пользователей
	userRepo := storage.NewMemoryUserRepository()

	// Собираем сервисы приложения
	appContainer := container.New(userRepo, vision.NewGoCVDetector())

	// Создаём бота
	bot, err := telegram.NewBot(cfg.TelegramToken, appContainer.UserService, appContainer.CountService, params)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	log.Println("Bot is running...")
	if err := bot.Run(); err != nil {
		log.Fatalf("Bot error: %v", err)
	}
}
