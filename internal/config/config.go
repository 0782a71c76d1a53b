package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port        string
	CORSOrigins string

	// Document store
	StoreBackend string

	// PostgreSQL (generic document store backend)
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Firestore (managed NoSQL backend)
	FirestoreProjectID       string
	FirestoreCredentialsFile string

	// Identity provider
	AuthProvider      string
	FirebaseProjectID string
	StaticAuthSecret  string

	// Identity stamped on unauthenticated restaurant writes
	OperatorName string
}

func Load() *Config {
	// A missing .env is fine; deployments set real environment variables.
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		StoreBackend: getEnv("STORE_BACKEND", "postgres"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "directory_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		FirestoreProjectID:       getEnv("FIRESTORE_PROJECT_ID", ""),
		FirestoreCredentialsFile: getEnv("FIRESTORE_CREDENTIALS_FILE", ""),

		AuthProvider:      getEnv("AUTH_PROVIDER", "google"),
		FirebaseProjectID: getEnv("FIREBASE_PROJECT_ID", ""),
		StaticAuthSecret:  getEnv("AUTH_STATIC_SECRET", ""),

		OperatorName: getEnv("OPERATOR_NAME", "admin"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
