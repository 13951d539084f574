package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Store    StoreConfig
	Firebase FirebaseConfig
	Mongo    MongoConfig
	Auth     AuthConfig
	Upload   UploadConfig
	Maps     MapsConfig
}

type ServerConfig struct {
	AppEnv          string
	Host            string
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type StoreConfig struct {
	// Driver is one of firestore, mongo or memory.
	Driver string
}

type FirebaseConfig struct {
	CredentialsFile string
	ProjectID       string
	BucketName      string
}

type MongoConfig struct {
	URI      string
	Database string
}

type AuthConfig struct {
	// Provider is firebase or google.
	Provider       string
	AdminEmails    []string
	GoogleClientID string
	CookieName     string
	CookieSecure   bool
	SessionTTL     time.Duration
}

type UploadConfig struct {
	PublicBaseURL string
	ObjectPrefix  string
	MaxFileSize   int64
	MaxMemory     int64
}

type MapsConfig struct {
	APIKey string
}

const (
	DriverFirestore = "firestore"
	DriverMongo     = "mongo"
	DriverMemory    = "memory"

	ProviderFirebase = "firebase"
	ProviderGoogle   = "google"
)

func LoadEnv() *Config {
	bucket := getEnv("FIREBASE_BUCKET_NAME", "")
	return &Config{
		Server: ServerConfig{
			AppEnv:          getEnv("APP_ENV", "development"),
			Host:            getEnv("HOST", ""),
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     getEnvSeconds("SERVER_READ_TIMEOUT", 15),
			WriteTimeout:    getEnvSeconds("SERVER_WRITE_TIMEOUT", 60),
			ShutdownTimeout: getEnvSeconds("SERVER_SHUTDOWN_TIMEOUT", 10),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "info"),
			Encoding:          getEnv("LOGGER_ENCODING", "json"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Store: StoreConfig{
			Driver: strings.ToLower(getEnv("STORE_DRIVER", DriverFirestore)),
		},
		Firebase: FirebaseConfig{
			CredentialsFile: getEnv("FIREBASE_CREDENTIALS_FILE", ""),
			ProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),
			BucketName:      bucket,
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGODB_DATABASE", "ecommerce"),
		},
		Auth: AuthConfig{
			Provider:       strings.ToLower(getEnv("AUTH_PROVIDER", ProviderFirebase)),
			AdminEmails:    getEnvSlice("ADMIN_EMAILS", nil),
			GoogleClientID: getEnv("GOOGLE_CLIENT_ID", ""),
			CookieName:     getEnv("SESSION_COOKIE_NAME", "admin_session"),
			CookieSecure:   getEnvBool("SESSION_COOKIE_SECURE", true),
			SessionTTL:     time.Duration(getEnvInt("SESSION_TTL_HOURS", 24*5)) * time.Hour,
		},
		Upload: UploadConfig{
			PublicBaseURL: getEnv("UPLOAD_PUBLIC_BASE_URL", defaultPublicBaseURL(bucket)),
			ObjectPrefix:  getEnv("UPLOAD_OBJECT_PREFIX", "products/"),
			MaxFileSize:   int64(getEnvInt("UPLOAD_MAX_FILE_MB", 10)) << 20,
			MaxMemory:     int64(getEnvInt("UPLOAD_MAX_MEMORY_MB", 32)) << 20,
		},
		Maps: MapsConfig{
			APIKey: getEnv("GOOGLE_MAPS_API_KEY", ""),
		},
	}
}

// Validate rejects combinations the server cannot start with.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverFirestore, DriverMongo, DriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}
	switch c.Auth.Provider {
	case ProviderFirebase:
	case ProviderGoogle:
		if c.Auth.GoogleClientID == "" {
			return fmt.Errorf("GOOGLE_CLIENT_ID is required when AUTH_PROVIDER=%s", ProviderGoogle)
		}
	default:
		return fmt.Errorf("unknown AUTH_PROVIDER %q", c.Auth.Provider)
	}
	if len(c.Auth.AdminEmails) == 0 {
		return fmt.Errorf("ADMIN_EMAILS must list at least one admin")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "development"
}

// NeedsFirebase reports whether any configured component talks to Firebase.
func (c *Config) NeedsFirebase() bool {
	return c.Store.Driver == DriverFirestore ||
		c.Auth.Provider == ProviderFirebase ||
		c.Firebase.BucketName != ""
}

func (c *Config) Addr() string {
	return c.Server.Host + ":" + strings.TrimPrefix(c.Server.Port, ":")
}

func defaultPublicBaseURL(bucket string) string {
	if bucket == "" {
		return ""
	}
	return "https://storage.googleapis.com/" + bucket
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvSeconds(key string, fallback int) time.Duration {
	return time.Duration(getEnvInt(key, fallback)) * time.Second
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
