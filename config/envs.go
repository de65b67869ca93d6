package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the search service's configuration values.
type Config struct {
	HostIP     string // Host IP for the REST server
	RESTPort   int    // Port for the REST API
	DBHost     string // MongoDB host
	DBPort     int    // MongoDB port
	DBUser     string // MongoDB username
	DBPassword string // MongoDB password
	DBName     string // MongoDB database name
	RedisAddr  string // Redis address for the run lock
	GinMode    string // Gin framework mode (release, debug, test)
	JWTSecret  string // Secret key for JWT signing
	JWTIssuer  string // Issuer claim for JWTs
}

// Envs holds the service's configuration, loaded once from the environment.
var Envs = initConfig()

// initConfig loads a .env file if present, then reads the environment.
func initConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		DBHost:     mustGetEnv("DB_HOST"),
		DBPort:     mustGetEnvAsInt("DB_PORT"),
		DBUser:     mustGetEnv("DB_USER"),
		DBPassword: mustGetEnv("DB_PASS"),
		DBName:     mustGetEnv("DB_NAME"),
		RedisAddr:  mustGetEnv("REDIS_ADDR"),
		GinMode:    getEnvWithDefault("GIN_MODE", "release"),
		JWTSecret:  mustGetEnv("JWT_SECRET"),
		JWTIssuer:  getEnvWithDefault("JWT_ISSUER", "repmazed"),
		HostIP:     getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:   mustGetEnvAsInt("REST_PORT"),
	}
}

func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("[APP] [FATAL] Environment variable %s is not set", key)
	}
	return value
}

func mustGetEnvAsInt(key string) int {
	valueStr := mustGetEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
