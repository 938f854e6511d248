// Package config loads service configuration from the environment, with an
// optional .env file for local development. Keys in use: PORT, REDIS_URI,
// REDIS_PASSWORD, JWT_SECRET, LOG_LEVEL.
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: No .env file found, using environment variables")
	}
}

func GetEnv(key string, fallback string) string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	return val
}
