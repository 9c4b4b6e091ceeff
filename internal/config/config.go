package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

var (
	JwtSecret         string
	Issuer            string
	DbHost            string
	DbPort            string
	DbUser            string
	DbPassword        string
	DbName            string
	ServerPort        string
	AdminUsername     string
	AdminPasswordHash string
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("ISSUER", "quickhire")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "quickhire")
	ServerPort = getEnv("SERVER_PORT", "5000")

	AdminUsername = getEnv("ADMIN_USERNAME", "admin")
	AdminPasswordHash = getEnv("ADMIN_PASSWORD_HASH", "")
	if AdminPasswordHash == "" {
		// Hash the plaintext password at boot. With neither variable set the
		// well-known dev default is only acceptable outside release mode.
		plain := os.Getenv("ADMIN_PASSWORD")
		if plain == "" {
			if os.Getenv("GIN_MODE") == "release" {
				log.Fatal("ADMIN_PASSWORD_HASH or ADMIN_PASSWORD must be set in release mode")
			}
			log.Println("WARNING: no admin credentials configured; using the dev default admin/admin123")
			plain = "admin123"
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("Failed to hash admin password:", err)
		}
		AdminPasswordHash = string(hash)
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
