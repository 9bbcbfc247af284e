package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	JwtSecret  string
	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	ServerPort string
	Issuer     string
	BaseURL    string

	// InvitationCooldownDays is the policy window during which a second
	// invitation to the same email for the same team is rejected.
	InvitationCooldownDays int

	// CorsOrigins is the comma-separated list of allowed browser origins.
	CorsOrigins []string

	SmtpHost string
	SmtpPort string
	SmtpUser string
	SmtpPass string
	SmtpFrom string
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "bugtracking")
	ServerPort = getEnv("SERVER_PORT", "8080")
	Issuer = getEnv("ISSUER", "bugtracking")
	BaseURL = getEnv("BASE_URL", "http://localhost:8080")

	InvitationCooldownDays, _ = strconv.Atoi(getEnv("INVITATION_COOLDOWN_DAYS", "5"))
	if InvitationCooldownDays <= 0 {
		InvitationCooldownDays = 5
	}

	CorsOrigins = strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ",")

	SmtpHost = getEnv("SMTP_HOST", "")
	SmtpPort = getEnv("SMTP_PORT", "25")
	SmtpUser = getEnv("SMTP_USER", "")
	SmtpPass = getEnv("SMTP_PASS", "")
	SmtpFrom = getEnv("SMTP_FROM", "noreply@bugtracking.local")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
