package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config структура конфигурации
type Config struct {
	Port         string
	AppEnv       string
	GeminiAPIKey string
	GeminiModel  string
}

// LoadConfig загружает переменные из .env
func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️ .env файл не найден, используем переменные окружения")
	}

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		AppEnv:       getEnv("APP_ENV", "production"),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash-001"),
	}

	// Отсутствие ключа Gemini не фатально: поиск продолжит работать
	// в режиме детерминированного fallback-подбора
	if cfg.GeminiAPIKey == "" {
		log.Println("⚠️ GEMINI_API_KEY не задан, подбор специалистов работает в режиме fallback")
	}

	return cfg
}

// getEnv получает переменную окружения или использует дефолтное значение
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
