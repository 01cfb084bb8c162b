package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// AppConfig holds every configuration variable the application needs.
type AppConfig struct {
	Port            string
	Env             string
	MongoURI        string
	CloudinaryURL   string
	StripeKey       string
	PasetoSecretKey []byte
}

// Load reads configuration from a .env file or the environment.
func Load() *AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &AppConfig{
		Port:          getEnv("PORT", "4000"),
		Env:           getEnv("ENVIRONMENT", "development"),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017/swiftcart"),
		CloudinaryURL: getEnv("CLOUDINARY_URL", ""),
		StripeKey:     getEnv("STRIPE_KEY", ""),
	}

	key := getEnv("PASETO_SECRET_KEY", "")
	if len(key) != 32 {
		log.Fatal("PASETO_SECRET_KEY must be 32 characters long!")
	}
	cfg.PasetoSecretKey = []byte(key)

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
