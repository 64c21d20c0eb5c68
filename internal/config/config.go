package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for our application
type Config struct {
	Port                 string
	Origin               string
	Environment          string
	Database             DatabaseConfig
	AWS                  AWSConfig
	Mailer               MailerConfig
	Admin                AdminConfig
	AnalyticsID          string
	MaxUploadSizeBytes   int64
	PresignExpiryMinutes int
}

// DatabaseConfig holds database connection details
type DatabaseConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Name     string
	DSN      string
}

// AWSConfig holds object storage and email credentials
type AWSConfig struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
}

// HasCredentials reports whether enough configuration exists to call AWS at all.
func (a AWSConfig) HasCredentials() bool {
	return a.AccessKeyID != "" && a.SecretAccessKey != "" && a.Region != ""
}

// MailerConfig holds email notification configuration
type MailerConfig struct {
	FromAddress  string
	AdminAddress string
}

// AdminConfig holds the single CRM operator login and token settings
type AdminConfig struct {
	Email                string
	PasswordHash         string
	JWTSecret            string
	JWTExpirationMinutes int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load database configuration
	dbConfig := DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "3306"),
		Username: getEnv("DB_USERNAME", "root"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "dental_tourism"),
	}

	// Build DSN (Data Source Name) for MySQL connection
	dbConfig.DSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		dbConfig.Username, dbConfig.Password, dbConfig.Host, dbConfig.Port, dbConfig.Name)

	awsConfig := AWSConfig{
		Region:          getEnv("AWS_REGION", "us-east-1"),
		Bucket:          getEnv("AWS_S3_BUCKET", ""),
		AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
	}

	mailerConfig := MailerConfig{
		FromAddress:  getEnv("MAILER_FROM", "noreply@mexidental.example.com"),
		AdminAddress: getEnv("MAILER_ADMIN_TO", "leads@mexidental.example.com"),
	}

	adminConfig := AdminConfig{
		Email:        getEnv("ADMIN_EMAIL", ""),
		PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		JWTSecret:    getEnv("JWT_SECRET", "default_jwt_secret"),
	}

	jwtExpMinutes, err := strconv.Atoi(getEnv("JWT_EXPIRATION_MINUTES", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION_MINUTES: %w", err)
	}
	adminConfig.JWTExpirationMinutes = jwtExpMinutes

	maxUploadMB, err := strconv.Atoi(getEnv("MAX_UPLOAD_SIZE_MB", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_UPLOAD_SIZE_MB: %w", err)
	}

	presignExpiry, err := strconv.Atoi(getEnv("PRESIGN_EXPIRY_MINUTES", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid PRESIGN_EXPIRY_MINUTES: %w", err)
	}

	// Return complete configuration
	return &Config{
		Port:                 getEnv("PORT", "3001"),
		Origin:               getEnv("ORIGIN", "http://localhost:5173"),
		Environment:          getEnv("APP_ENV", "development"),
		Database:             dbConfig,
		AWS:                  awsConfig,
		Mailer:               mailerConfig,
		Admin:                adminConfig,
		AnalyticsID:          getEnv("ANALYTICS_MEASUREMENT_ID", ""),
		MaxUploadSizeBytes:   int64(maxUploadMB) * 1024 * 1024,
		PresignExpiryMinutes: presignExpiry,
	}, nil
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
