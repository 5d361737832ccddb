package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	Env       string
	JWTKey    string
	SaltRound int

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	YouTubeAPIKey  string
	YouTubeAPIBase string

	AdminName     string
	AdminEmail    string
	AdminPassword string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "5000"),
		Env:       getEnv("APP_ENV", "development"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "youtube_lms"),
		DBPort:     getEnv("DB_PORT", "5432"),

		YouTubeAPIKey:  getEnv("YOUTUBE_API_KEY", ""),
		YouTubeAPIBase: getEnv("YOUTUBE_API_BASE", "https://www.googleapis.com/youtube/v3"),

		AdminName:     getEnv("ADMIN_NAME", "LMS Administrator"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "adminlms@gmail.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.YouTubeAPIKey == "" {
		log.Println("Warning: YOUTUBE_API_KEY not set. Playlist import will be unavailable.")
	}
}

// IsProduction reports whether error details should be masked in responses
func IsProduction() bool {
	return AppConfig != nil && AppConfig.Env == "production"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
