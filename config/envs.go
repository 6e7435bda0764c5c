package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP        string // Host IP for the server
	RESTPort      int    // Port for the REST API
	DBHost        string // Hostname or IP address for the database
	DBPort        int    // Port number for the database
	DBUser        string // Username for the database
	DBPassword    string // Password for the database
	DBName        string // Name of the database
	RedisAddr     string // Address (host:port) of the Redis server holding maze history
	RedisPassword string // Password for the Redis server
	RedisDB       int    // Redis logical database index
	HistoryTTL    int    // Seconds a user's maze history is kept after its first entry
	HistorySize   int    // Number of mazes kept in memory per user
	MazeMaxWidth  int    // Largest maze width accepted by the API
	GinMode       string // Mode for the Gin framework (e.g., release, debug, test)
	JWTSecret     string // Secret key for JWT signing
	JWTIssuer     string // Issuer claim for JWTs
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:        mustGetEnv("HOST_IP"),
		RESTPort:      mustGetEnvAsInt("REST_PORT"),
		DBHost:        mustGetEnv("DB_HOST"),
		DBPort:        mustGetEnvAsInt("DB_PORT"),
		DBUser:        mustGetEnv("DB_USER"),
		DBPassword:    mustGetEnv("DB_PASS"),
		DBName:        mustGetEnv("DB_NAME"),
		RedisAddr:     mustGetEnv("REDIS_ADDR"),
		RedisPassword: getEnvWithDefault("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsIntWithDefault("REDIS_DB", 0),
		HistoryTTL:    getEnvAsIntWithDefault("HISTORY_TTL", 3600),
		HistorySize:   getEnvAsIntWithDefault("HISTORY_SIZE", 10),
		MazeMaxWidth:  getEnvAsIntWithDefault("MAZE_MAX_WIDTH", 100),
		GinMode:       getEnvWithDefault("GIN_MODE", "release"),
		JWTSecret:     mustGetEnv("JWT_SECRET"),
		JWTIssuer:     mustGetEnv("JWT_ISSUER"),
	}
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("[APP] [FATAL] Environment variable %s is not set", key)
	}
	return value
}

// mustGetEnvAsInt retrieves the value of an environment variable as an integer or logs a fatal error if not set or cannot be parsed.
func mustGetEnvAsInt(key string) int {
	valueStr := mustGetEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an integer environment variable or returns a default value if not set.
// A set but malformed value is fatal.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}
