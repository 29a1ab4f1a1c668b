package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/dkrasnov/storefront/internal/db"
	"github.com/dkrasnov/storefront/internal/models"
	"gorm.io/gorm"
)

type Config struct {
	ServerPort int
	LogLevel   string

	DB_HOST     string
	DB_PORT     string
	DB_USER     string
	DB_PASSWORD string
	DB_NAME     string

	KafkaAddress string

	ES_URL      string
	ES_USER     string
	ES_PASSWORD string

	JWTSecret         string
	AdminUsername     string
	AdminPasswordHash string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		ServerPort: envIntDefault("SERVER_PORT", 8080),
		LogLevel:   os.Getenv("LOG_LEVEL"),

		DB_HOST:     os.Getenv("DB_HOST"),
		DB_PORT:     os.Getenv("DB_PORT"),
		DB_USER:     os.Getenv("DB_USER"),
		DB_PASSWORD: os.Getenv("DB_PASSWORD"),
		DB_NAME:     os.Getenv("DB_NAME"),

		KafkaAddress: os.Getenv("KAFKA_ADDRESS"),

		ES_URL:      os.Getenv("ES_URL"),
		ES_USER:     os.Getenv("ES_USER"),
		ES_PASSWORD: os.Getenv("ES_PASSWORD"),

		JWTSecret:         os.Getenv("JWT_SECRET"),
		AdminUsername:     os.Getenv("ADMIN_USERNAME"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}

	return config, nil
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DB_USER, c.DB_PASSWORD, c.DB_HOST, c.DB_PORT, c.DB_NAME,
	)
}

func InitDB(cfg *Config) (*gorm.DB, error) {
	conn, err := db.Open(cfg.DSN())
	if err != nil {
		return nil, err
	}
	if err := conn.AutoMigrate(&models.Product{}, &models.Order{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return conn, nil
}

func envIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
