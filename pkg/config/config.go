package config

import "os"

type Config struct {
	Port         string
	Env          string
	BaseURL      string
	PostgresURL  string
	JWTSecret    string
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	EmailFrom    string
}

func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("ENV", "development"),
		BaseURL:      getEnv("BASE_URL", "http://localhost:8080"),
		PostgresURL:  getEnv("POSTGRES_CONN_STR", ""),
		JWTSecret:    getEnv("JWT_SECRET", "supersecretjwtkey"),
		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     getEnv("SMTP_PORT", "25"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		EmailFrom:    getEnv("EMAIL_FROM", "noreply@socialconnect.local"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
