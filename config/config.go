package config

import (
	"log"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Env              string
	Port             string
	DBURL            string
	TokenSecret      string
	TokenKeyID       string
	AccessExpiryMin  int
	RefreshExpiryMin int
	BcryptCost       int
	CookieSecure     bool
	CookieSameSite   string
}

func Load() *Config {
	return &Config{
		Env:              getEnv("ENV", "development"),
		Port:             getEnv("PORT", "8080"),
		DBURL:            mustGetEnv("DB_URL"),
		TokenSecret:      mustGetEnv("TOKEN_SECRET"),
		TokenKeyID:       getEnv("TOKEN_KEY_ID", "v1"),
		AccessExpiryMin:  getEnvAsInt("ACCESS_TOKEN_EXPIRY", 30),
		RefreshExpiryMin: getEnvAsInt("REFRESH_TOKEN_EXPIRY", 3*24*60),
		BcryptCost:       getEnvAsInt("BCRYPT_COST", bcrypt.DefaultCost),
		CookieSecure:     getEnvAsBool("COOKIE_SECURE", false),
		CookieSameSite:   getEnv("COOKIE_SAME_SITE", "Lax"),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}

func getEnvAsBool(key string, defaultVal bool) bool {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %t", key, defaultVal)
		return defaultVal
	}
	return val
}
