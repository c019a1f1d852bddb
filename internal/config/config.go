package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from the environment. It is built
// once in main and passed down; nothing else touches os.Getenv.
type Config struct {
	MongoURI          string
	MongoDatabase     string
	Port              string
	AccessTokenSecret string
	StripeSecretKey   string
}

// Load reads .env (when present) and assembles the configuration.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	cfg := &Config{
		MongoURI:          os.Getenv("MONGO_URI"),
		MongoDatabase:     getEnv("MONGO_DATABASE", "dcmsDB"),
		Port:              getEnv("PORT", "5000"),
		AccessTokenSecret: os.Getenv("ACCESS_TOKEN_SECRET"),
		StripeSecretKey:   os.Getenv("STRIPE_SECRET_KEY"),
	}

	// Hosted deployments hand out DB_USER/DB_PASS instead of a full URI.
	if cfg.MongoURI == "" && os.Getenv("DB_USER") != "" {
		cfg.MongoURI = fmt.Sprintf(
			"mongodb+srv://%s:%s@cluster0.mkkr0dd.mongodb.net/?retryWrites=true&w=majority",
			os.Getenv("DB_USER"), os.Getenv("DB_PASS"),
		)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
