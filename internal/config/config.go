package config // package config loads application configuration from environment variables

import (
	"log" // log is used to report configuration errors and halt execution
	"os"  // os provides access to environment variables
	"strconv"

	"github.com/joho/godotenv" // godotenv loads a .env file during development
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The struct is built once in main and handed to
// components at construction time; nothing mutates it afterwards.
type Config struct {
	Env           string // application environment (e.g. "dev", "prod")
	Port          string // HTTP port to listen on
	DBUser        string // database username
	DBPass        string // database password (optional)
	DBHost        string // database host address
	DBPort        string // database port number
	DBName        string // database name
	JWTSecret     string // secret used to sign session JWTs
	SessionTTLMin int    // session token time-to-live in minutes

	RapidAPIKey  string // key for the ExerciseDB catalog on RapidAPI
	RapidAPIHost string // RapidAPI host header (also the catalog hostname)

	YouTubeAPIKey string // key for the YouTube Data API v3

	AuthDomain       string // identity provider base URL or domain
	AuthClientID     string // OAuth client id registered with the provider
	AuthClientSecret string // OAuth client secret
	AuthCallbackURL  string // redirect URI for the code-flow callback
}

// Load reads configuration values from environment variables and returns a
// Config.  A .env file is honoured when present so local development matches
// production shape.  Required variables are enforced by must() and missing
// values cause the program to exit with a fatal log message.
func Load() Config {
	_ = godotenv.Load() // absence of a .env file is fine outside development

	return Config{
		Env:           must("APP_ENV"),
		Port:          must("APP_PORT"),
		DBUser:        must("DB_USER"),
		DBPass:        os.Getenv("DB_PASS"), // empty password allowed
		DBHost:        must("DB_HOST"),
		DBPort:        must("DB_PORT"),
		DBName:        must("DB_NAME"),
		JWTSecret:     must("JWT_SECRET"),
		SessionTTLMin: mustInt("SESSION_TTL_MIN"),

		RapidAPIKey:  must("RAPID_API_KEY"),
		RapidAPIHost: envStr("RAPID_API_HOST", "exercisedb.p.rapidapi.com"),

		YouTubeAPIKey: must("YOUTUBE_API_KEY"),

		AuthDomain:       must("AUTH_DOMAIN"),
		AuthClientID:     must("AUTH_CLIENT_ID"),
		AuthClientSecret: must("AUTH_CLIENT_SECRET"),
		AuthCallbackURL:  must("AUTH_CALLBACK_URL"),
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the retrieved string into an integer.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
