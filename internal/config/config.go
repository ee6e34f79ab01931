package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPPort     string
	DataDir      string
	JWTSecret    string
	CORSOrigins  string
	ScanInterval time.Duration
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:     getEnv("HTTP_PORT", "8080"),
		DataDir:      getEnv("DATA_DIR", "./data"),
		JWTSecret:    getEnv("JWT_SECRET", "replenishhq-dev-secret"),
		CORSOrigins:  getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		ScanInterval: getEnvSeconds("STOCK_SCAN_INTERVAL_SECONDS", 60),
	}

	if cfg.JWTSecret == "replenishhq-dev-secret" {
		log.Println("[WARN] JWT_SECRET not set, using the development default. Set a real secret before deploying.")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS not set, allowing the local dev frontend only.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvSeconds(key string, def int) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return time.Duration(def) * time.Second
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Printf("[WARN] %s=%q is not a positive integer, using %ds", key, raw, def)
		return time.Duration(def) * time.Second
	}
	return time.Duration(n) * time.Second
}
