package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Import configuration: which legacy sheet holds which record kind
	ImportPeriodsSheet  string   `mapstructure:"IMPORT_PERIODS_SHEET"`
	ImportCoachesSheet  string   `mapstructure:"IMPORT_COACHES_SHEET"`
	ImportIgnoredSheets []string `mapstructure:"IMPORT_IGNORED_SHEETS"`
	ImportMaxUploadMB   int      `mapstructure:"IMPORT_MAX_UPLOAD_MB"`

	// Archive configuration for imported workbooks
	ArchiveBackend     string `mapstructure:"ARCHIVE_BACKEND"`
	ArchiveDir         string `mapstructure:"ARCHIVE_DIR"`
	ArchiveS3Bucket    string `mapstructure:"ARCHIVE_S3_BUCKET"`
	ArchiveS3Region    string `mapstructure:"ARCHIVE_S3_REGION"`
	ArchiveS3Endpoint  string `mapstructure:"ARCHIVE_S3_ENDPOINT"`
	ArchiveS3PathStyle bool   `mapstructure:"ARCHIVE_S3_PATH_STYLE"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Set default values
	setDefaults(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Comma separated env values arrive as a single element
	config.AllowedOrigins = splitList(config.AllowedOrigins)
	config.ImportIgnoredSheets = splitList(config.ImportIgnoredSheets)

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "7008")
	v.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "safety_tracker")
	v.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	v.SetDefault("JWT_SECRET", defaultJWTSecret)

	// CORS defaults
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"})

	// Import defaults
	v.SetDefault("IMPORT_PERIODS_SHEET", "Periods")
	v.SetDefault("IMPORT_COACHES_SHEET", "Coaches")
	v.SetDefault("IMPORT_IGNORED_SHEETS", []string{})
	v.SetDefault("IMPORT_MAX_UPLOAD_MB", 20)

	// Archive defaults
	v.SetDefault("ARCHIVE_BACKEND", "none")
	v.SetDefault("ARCHIVE_DIR", "./archive")
	v.SetDefault("ARCHIVE_S3_BUCKET", "")
	v.SetDefault("ARCHIVE_S3_REGION", "us-east-1")
	v.SetDefault("ARCHIVE_S3_ENDPOINT", "")
	v.SetDefault("ARCHIVE_S3_PATH_STYLE", false)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if strings.TrimSpace(config.ImportPeriodsSheet) == "" || strings.TrimSpace(config.ImportCoachesSheet) == "" {
		return fmt.Errorf("IMPORT_PERIODS_SHEET and IMPORT_COACHES_SHEET are required")
	}
	if strings.EqualFold(strings.TrimSpace(config.ImportPeriodsSheet), strings.TrimSpace(config.ImportCoachesSheet)) {
		return fmt.Errorf("periods and coaches must be read from different sheets")
	}

	switch config.ArchiveBackend {
	case "", "none":
	case "fs":
		if config.ArchiveDir == "" {
			return fmt.Errorf("ARCHIVE_DIR is required for the fs archive backend")
		}
	case "s3":
		if config.ArchiveS3Bucket == "" {
			return fmt.Errorf("ARCHIVE_S3_BUCKET is required for the s3 archive backend")
		}
	default:
		return fmt.Errorf("unknown ARCHIVE_BACKEND %q", config.ArchiveBackend)
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
