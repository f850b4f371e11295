package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config is the environment of the cmd binaries. The storefront library itself
// never reads the environment.
type Config struct {
	BaseURL          string
	StorageBaseURL   string
	Email            string
	Password         string
	StubAddr         string
	StubBucket       string
	MetricsNamespace string
	// RunLocal serves the stub over plain HTTP instead of as a Lambda handler.
	RunLocal         bool
}

// Load reads .env when present, then the process environment.
func Load() *Config {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Printf("error loading .env file: %v", err)
		} else {
			log.Println(".env file loaded")
		}
	}

	return &Config{
		BaseURL:          getEnv("STOREFRONT_BASE_URL", ""),
		StorageBaseURL:   getEnv("STOREFRONT_STORAGE_BASE_URL", ""),
		Email:            getEnv("STOREFRONT_EMAIL", ""),
		Password:         getEnv("STOREFRONT_PASSWORD", ""),
		StubAddr:         getEnv("STUB_ADDR", ":8080"),
		StubBucket:       getEnv("STUB_S3_BUCKET", ""),
		MetricsNamespace: getEnv("METRICS_NAMESPACE", ""),
		RunLocal:         getEnv("RUN_LOCAL", "") == "true",
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
