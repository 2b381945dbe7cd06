package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Init loads a .env file into the environment if one exists. A missing file
// is not an error; deployments set real environment variables instead.
func Init() {
	if err := godotenv.Load(); err != nil {
		if os.IsNotExist(err) {
			return
		}
		log.Printf("config: could not load .env: %v", err)
		return
	}
	log.Println("config: loaded .env")
}

// Get returns the value for key or an error when it is unset or empty.
func Get(key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("config: empty key")
	}
	v := os.Getenv(key)
	if v == "" {
		return "", fmt.Errorf("config: %s is not set", key)
	}
	return v, nil
}

// GetDefault returns the value for key, or fallback when it is unset.
func GetDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
