package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	ServerPort string
	GinMode    string

	SecretKey         string
	AccessTokenExpire time.Duration

	LogLevel string
	LogFile  string

	BootstrapDepartmentName        string
	BootstrapDepartmentDescription string
	BootstrapUsername              string
	BootstrapPassword              string
	BootstrapEmail                 string
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "hruser"),
		DBPassword: getEnv("DB_PASSWORD", "hrpassword"),
		DBName:     getEnv("DB_NAME", "hr_management"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		ServerPort: getEnv("SERVER_PORT", "8080"),
		GinMode:    getEnv("GIN_MODE", "debug"),

		SecretKey:         getEnv("SECRET_KEY", "default-secret-key-change-me"),
		AccessTokenExpire: time.Duration(getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30)) * time.Minute,

		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  getEnv("LOG_FILE", ""),

		BootstrapDepartmentName:        getEnv("BOOTSTRAP_DEPARTMENT_NAME", "Development"),
		BootstrapDepartmentDescription: getEnv("BOOTSTRAP_DEPARTMENT_DESCRIPTION", "Software development"),
		BootstrapUsername:              getEnv("BOOTSTRAP_USERNAME", "admin"),
		BootstrapPassword:              getEnv("BOOTSTRAP_PASSWORD", "change-me-now"),
		BootstrapEmail:                 getEnv("BOOTSTRAP_EMAIL", "admin@example.com"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}
