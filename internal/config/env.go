package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string

	DBUser     string
	DBPassword string
	DBHost     string
	DBName     string

	JWTSecret string

	CORSAllowedOrigins []string

	// EmailJS credentials for the booking notification template.
	EmailJSEndpoint   string
	EmailJSServiceID  string
	EmailJSTemplateID string
	EmailJSPublicKey  string
	NotifyEmailTo     string
}

func LoadEnv() Env {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	return Env{
		AppAddr: envOr("APP_ADDR", ":8080"),
		GinMode: strings.TrimSpace(os.Getenv("GIN_MODE")),

		DBUser:     envOr("DB_USER", "root"),
		DBPassword: strings.TrimSpace(os.Getenv("DB_PASSWORD")),
		DBHost:     envOr("DB_HOST", "127.0.0.1:3306"),
		DBName:     envOr("DB_NAME", "bds_ride"),

		JWTSecret: envOr("JWT_SECRET", "super-secret-key-change-me"),

		CORSAllowedOrigins: splitList(envOr("CORS_ALLOWED_ORIGINS",
			"http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")),

		EmailJSEndpoint:   envOr("EMAILJS_ENDPOINT", "https://api.emailjs.com/api/v1.0/email/send"),
		EmailJSServiceID:  strings.TrimSpace(os.Getenv("EMAILJS_SERVICE_ID")),
		EmailJSTemplateID: strings.TrimSpace(os.Getenv("EMAILJS_TEMPLATE_ID")),
		EmailJSPublicKey:  strings.TrimSpace(os.Getenv("EMAILJS_PUBLIC_KEY")),
		NotifyEmailTo:     strings.TrimSpace(os.Getenv("NOTIFY_EMAIL_TO")),
	}
}

func envOr(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func splitList(raw string) []string {
	out := []string{}
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
