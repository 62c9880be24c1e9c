package config

import (
	"os"

	"github.com/joho/godotenv"
)

func Config(key string) string {
	// .env is optional, process env wins on deploy
	godotenv.Load(".env")
	return os.Getenv(key)
}
