package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDSN       string // пусто - работаем с локальным файлом
	DataFile    string
	HTTPAddr    string
	StaticDir   string
	Environment string
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	cfg := &Config{
		DBDSN:       os.Getenv("DB_DSN"),
		DataFile:    os.Getenv("DATA_FILE"),
		HTTPAddr:    os.Getenv("HTTP_ADDR"),
		StaticDir:   os.Getenv("STATIC_DIR"),
		Environment: os.Getenv("ENV"),
	}

	// Устанавливаем дефолтные значения
	if cfg.DataFile == "" {
		cfg.DataFile = "reservations.json"
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":3000"
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	return cfg, nil
}
