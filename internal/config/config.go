// Package config loads the runtime configuration from the environment.
package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Addr is the address the HTTP server listens on.
	Addr string

	// Env is "development" or "production".
	Env string

	// DatabaseURL selects the storage backend: when set the Postgres
	// store is used, otherwise the seeded in-memory store.
	DatabaseURL string

	// RegistrationSecret is the shared secret required to register the
	// admin account. Registration is disabled when empty.
	RegistrationSecret string

	// Mail transport credentials. Email sending is skipped when unset.
	GmailUser        string
	GmailAppPassword string

	// BaseURL is the public URL of this deployment, used only by the
	// keep-alive pinger.
	BaseURL string
}

// Load reads configuration from the environment, after loading a .env
// file if one is present.
func Load(log *slog.Logger) Config {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment as-is")
	}

	return Config{
		Addr:               getEnv("ADDR", ":8080"),
		Env:                getEnv("ENV", "development"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		RegistrationSecret: os.Getenv("REGISTRATION_SECRET"),
		GmailUser:          os.Getenv("GMAIL_USER"),
		GmailAppPassword:   os.Getenv("GMAIL_APP_PASSWORD"),
		BaseURL:            os.Getenv("BASE_URL"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
