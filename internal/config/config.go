package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port          string `yaml:"port" env:"SERVER_PORT"`
		Mode          string `yaml:"mode" env:"SERVER_MODE"`
		AppName       string `yaml:"app_name" env:"APP_NAME"`
		StoragePath   string `yaml:"storage_path" env:"STORAGE_PATH"`
		UploadsURL    string `yaml:"uploads_url" env:"UPLOADS_URL"`
		StaticPath    string `yaml:"static_path" env:"STATIC_PATH"`
		TemplatesPath string `yaml:"templates_path" env:"TEMPLATES_PATH"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
		MigrationsPath  string `yaml:"migrations_path" env:"DB_MIGRATIONS_PATH"`
	} `yaml:"database"`

	Auth struct {
		Enabled           bool   `yaml:"enabled" env:"AUTH_ENABLED"`
		JWTSecret         string `yaml:"jwt_secret" env:"JWT_SECRET"`
		TokenExpiration   string `yaml:"token_expiration" env:"JWT_TOKEN_EXPIRATION"`
		Issuer            string `yaml:"issuer" env:"JWT_ISSUER"`
		AdminUsername     string `yaml:"admin_username" env:"ADMIN_USERNAME"`
		AdminPasswordHash string `yaml:"admin_password_hash" env:"ADMIN_PASSWORD_HASH"`
	} `yaml:"auth"`

	Upload struct {
		MaxSizeMB         int  `yaml:"max_size_mb" env:"UPLOAD_MAX_SIZE_MB"`
		PhotoWidth        int  `yaml:"photo_width" env:"UPLOAD_PHOTO_WIDTH"`
		PhotoHeight       int  `yaml:"photo_height" env:"UPLOAD_PHOTO_HEIGHT"`
		EnforceDimensions bool `yaml:"enforce_dimensions" env:"UPLOAD_ENFORCE_DIMENSIONS"`
	} `yaml:"upload"`

	Seed struct {
		Enabled bool `yaml:"enabled" env:"SEED_ENABLED"`
	} `yaml:"seed"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from .env, a YAML file and environment variables, in that order
// of increasing precedence. Both files are optional.
func LoadConfig(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "3019"
	config.Server.Mode = "development"
	config.Server.AppName = "CRUD_ALUMNOS"
	config.Server.StoragePath = "uploads"
	config.Server.UploadsURL = "/uploads"
	config.Server.StaticPath = "web/public"
	config.Server.TemplatesPath = "web/templates"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "crud_alumno"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 2
	config.Database.MaxOpenConns = 10
	config.Database.ConnMaxLifetime = "1h"
	config.Database.MigrationsPath = "migrations"

	config.Auth.TokenExpiration = "8h"
	config.Auth.Issuer = "crud-alumnos"
	config.Auth.AdminUsername = "admin"

	config.Upload.MaxSizeMB = 5
	config.Upload.PhotoWidth = 350
	config.Upload.PhotoHeight = 350
	config.Upload.EnforceDimensions = true

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if config.Database.DBName == "" {
		return fmt.Errorf("database name is required")
	}

	if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
		return fmt.Errorf("invalid database connection max lifetime: %w", err)
	}

	if config.Upload.MaxSizeMB <= 0 {
		return fmt.Errorf("upload max size must be positive")
	}
	if config.Upload.PhotoWidth <= 0 || config.Upload.PhotoHeight <= 0 {
		return fmt.Errorf("photo dimensions must be positive")
	}

	if config.Auth.Enabled {
		if config.Auth.JWTSecret == "" {
			return fmt.Errorf("JWT secret is required when auth is enabled")
		}
		if config.Auth.AdminPasswordHash == "" {
			return fmt.Errorf("admin password hash is required when auth is enabled")
		}
		if _, err := time.ParseDuration(config.Auth.TokenExpiration); err != nil {
			return fmt.Errorf("invalid JWT token expiration format: %w", err)
		}
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     c.Database.Host + ":" + c.Database.Port,
		Path:     "/" + c.Database.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(sslMode),
	}
	return u.String()
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Mode == "production"
}
