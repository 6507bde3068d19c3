package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var loaded = false

// Config returns the value of the given env key, loading .env once.
func Config(key string) string {
	if !loaded {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("no .env file found, using environment only")
		}
		loaded = true
	}
	return os.Getenv(key)
}
