// Package config resolves runtime settings such as DB_URL, JWT_SECRET and
// TOTAL_SEATS from the process environment, preferring a local .env file
// when one exists.
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("Warning: .env file not found, reading from system environment variables")
	}

	return os.Getenv(key)
}
