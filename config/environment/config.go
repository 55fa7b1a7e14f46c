package environment

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite    = "sqlite"
	DriverMongo     = "mongo"
	DriverFirestore = "firestore"
)

// Config holds all application configuration.
type Config struct {
	Port        string
	StoreDriver string
	SQLitePath  string
	Mongo       MongoConfig
	Firebase    FirebaseConfig
	CORSOrigins []string
}

type MongoConfig struct {
	URI      string
	Database string
}

// FirebaseConfig carries the base64 encoded service account JSON and the
// project it belongs to.
type FirebaseConfig struct {
	CredentialsBase64 string
	ProjectID         string
}

// LoadDotEnv loads a .env file if one is present. A missing file is not an error.
func LoadDotEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		log.Println("No .env file found, using environment and defaults")
	}
}

// Load reads configuration from environment variables with defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "3000"),
		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", DriverSQLite)),
		SQLitePath:  getEnv("SQLITE_PATH", "exercise.db"),
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", ""),
			Database: getEnv("MONGO_DATABASE", "exercisetracker"),
		},
		Firebase: FirebaseConfig{
			CredentialsBase64: getEnv("FIREBASE_CREDENTIALS_BASE64", ""),
			ProjectID:         getEnv("FIREBASE_PROJECT_ID", ""),
		},
		CORSOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the settings the selected driver needs are present.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	switch c.StoreDriver {
	case DriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the sqlite store")
		}
	case DriverMongo:
		if c.Mongo.URI == "" {
			return fmt.Errorf("MONGO_URI is required for the mongo store")
		}
		if c.Mongo.Database == "" {
			return fmt.Errorf("MONGO_DATABASE is required for the mongo store")
		}
	case DriverFirestore:
		if c.Firebase.CredentialsBase64 == "" {
			return fmt.Errorf("FIREBASE_CREDENTIALS_BASE64 is required for the firestore store")
		}
		if c.Firebase.ProjectID == "" {
			return fmt.Errorf("FIREBASE_PROJECT_ID is required for the firestore store")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q (want sqlite, mongo or firestore)", c.StoreDriver)
	}
	return nil
}

// String masks credentials.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %s, Store: %s, SQLite: %s, Mongo: %s/%s, Firebase: %s, CORS: %v}",
		c.Port, c.StoreDriver, c.SQLitePath, maskURI(c.Mongo.URI), c.Mongo.Database, c.Firebase.ProjectID, c.CORSOrigins)
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func maskURI(uri string) string {
	if uri == "" {
		return ""
	}
	return "***"
}
