package common

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Общая конфигурация всего приложения
type Config struct {
	MongoUri        string `validate:"required"`
	MongoDb         string `validate:"required"`
	AppName         string
	AppVersion      string
	LogLevel        string
	LogDevelopMode  bool
	ServerPort      string
	CorsOrigin      string
	DefaultPageSize int
}

// Получение конфигурации из .env файла или переменных окружения
func GetConfig(envFile string) Config {
	_ = godotenv.Load(envFile)
	var cfg = Config{
		MongoUri:        os.Getenv("MONGO_URI"),
		MongoDb:         os.Getenv("MONGO_DB"),
		AppName:         getEnvOrDefault("APP_NAME", "dashboard-server"),
		AppVersion:      getEnvOrDefault("APP_VERSION", "0.0.0"),
		LogLevel:        getEnvOrDefault("LOG_LEVEL", "INFO"),
		LogDevelopMode:  os.Getenv("LOG_DEVELOP_MODE") == "true",
		ServerPort:      getEnvOrDefault("SERVER_PORT", "5000"),
		CorsOrigin:      getEnvOrDefault("CORS_ORIGIN", "http://localhost:5173"),
		DefaultPageSize: getEnvIntOrDefault("DEFAULT_PAGE_SIZE", 5),
	}
	return cfg
}

func getEnvOrDefault(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 1 {
		return defaultValue
	}
	return parsed
}
