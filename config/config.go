package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Session SessionConfig
	Admin   AdminConfig
	App     AppConfig
}

type ServerConfig struct {
	Port string
}

type StorageConfig struct {
	DatabasePath string
	UploadDir    string
}

type SessionConfig struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

type AdminConfig struct {
	Username string
	Password string
}

type AppConfig struct {
	Environment string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Storage: StorageConfig{
			DatabasePath: getEnv("DB_PATH", "data/projects.db"),
			UploadDir:    getEnv("UPLOAD_DIR", "data/uploads"),
		},
		Session: SessionConfig{
			RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvAsInt("REDIS_DB", 0),
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", ""),
			Password: getEnv("ADMIN_PASSWORD", ""),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Storage.DatabasePath == "" {
		return fmt.Errorf("DB_PATH is required")
	}

	// The seeded admin account has no fallback credentials.
	if c.Admin.Username == "" {
		return fmt.Errorf("ADMIN_USERNAME is required")
	}
	if c.Admin.Password == "" {
		return fmt.Errorf("ADMIN_PASSWORD is required")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}
