package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreFirestore = "firestore"
	StoreSQLite    = "sqlite"

	defaultPort         = "8080"
	defaultTimezone     = "Africa/Lagos"
	defaultStoreTimeout = 10 * time.Second
	defaultSQLitePath   = "budget.db"
	defaultEmailJSURL   = "https://api.emailjs.com"
)

type Config struct {
	ProjectID    string
	LogLevel     string
	Port         string
	StoreBackend string
	SQLitePath   string
	StoreTimeout time.Duration
	Location     *time.Location

	EmailJSURL              string
	EmailJSServiceID        string
	EmailJSTemplateID       string
	EmailJSPublicKey        string
	EmailJSPrivateKeySecret string
}

// New reads the environment, after loading an optional .env file from the
// working directory.
func New() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ProjectID:               os.Getenv("PROJECTID"),
		LogLevel:                os.Getenv("LOGLEVEL"),
		Port:                    getenv("PORT", defaultPort),
		StoreBackend:            getenv("STOREBACKEND", StoreFirestore),
		SQLitePath:              getenv("SQLITEPATH", defaultSQLitePath),
		EmailJSURL:              getenv("EMAILJSURL", defaultEmailJSURL),
		EmailJSServiceID:        os.Getenv("EMAILJSSERVICEID"),
		EmailJSTemplateID:       os.Getenv("EMAILJSTEMPLATEID"),
		EmailJSPublicKey:        os.Getenv("EMAILJSPUBLICKEY"),
		EmailJSPrivateKeySecret: os.Getenv("EMAILJSPRIVATEKEYSECRET"),
	}

	switch cfg.StoreBackend {
	case StoreFirestore, StoreSQLite:
	default:
		return nil, fmt.Errorf("unknown STOREBACKEND %q", cfg.StoreBackend)
	}

	var err error
	cfg.StoreTimeout = defaultStoreTimeout
	if v := os.Getenv("STORETIMEOUT"); v != "" {
		cfg.StoreTimeout, err = time.ParseDuration(v)
		if err != nil || cfg.StoreTimeout <= 0 {
			return nil, fmt.Errorf("invalid STORETIMEOUT %q", v)
		}
	}

	tz := getenv("TIMEZONE", defaultTimezone)
	cfg.Location, err = time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", tz, err)
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
