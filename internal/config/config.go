// Package config loads runtime configuration from YAML with environment
// overrides. Everything is read once at startup into an immutable struct;
// no component reads the environment on its own.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// ConfigPath is the default configuration file location.
const ConfigPath = "config.yaml"

// FileConfig represents configuration loaded from YAML.
type FileConfig struct {
	Port     string `yaml:"port"`
	LogLevel string `yaml:"logLevel"`

	MongoURI      string `yaml:"mongoURI"`
	MongoDatabase string `yaml:"mongoDatabase"`

	JWTSecret  string `yaml:"jwtSecret"`
	JWTExpiry  string `yaml:"jwtExpiry"`
	BcryptCost int    `yaml:"bcryptCost"`

	UploadDir string `yaml:"uploadDir"`

	RedisAddr     string `yaml:"redisAddr"`
	RedisPassword string `yaml:"redisPassword"`

	SignInRateLimitPerMinute int `yaml:"signInRateLimitPerMinute"`
	OTPRateLimitPerHour      int `yaml:"otpRateLimitPerHour"`

	MinioEndpoint  string `yaml:"minioEndpoint"`
	MinioAccessKey string `yaml:"minioAccessKey"`
	MinioSecretKey string `yaml:"minioSecretKey"`
	MinioBucket    string `yaml:"minioBucket"`
	MinioUseSSL    bool   `yaml:"minioUseSSL"`
	AssetBaseURL   string `yaml:"assetBaseURL"`

	SendGridAPIKey string `yaml:"sendgridAPIKey"`
	MailFrom       string `yaml:"mailFrom"`
}

// Load reads config from path (defaults to config.yaml).
func Load(path string) (FileConfig, error) {
	cfg := FileConfig{}
	if path == "" {
		path = ConfigPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	applyEnvOverrides(&cfg)
	if err := validateConfig(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *FileConfig) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("MONGO_URI"); v != "" {
		cfg.MongoURI = v
	}
	if v := os.Getenv("MONGO_DATABASE"); v != "" {
		cfg.MongoDatabase = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("JWT_EXPIRY"); v != "" {
		cfg.JWTExpiry = v
	}
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.BcryptCost = n
		}
	}
	if v := os.Getenv("UPLOAD_DIR"); v != "" {
		cfg.UploadDir = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.RedisAddr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.RedisPassword = v
	}
	if v := os.Getenv("MINIO_ENDPOINT"); v != "" {
		cfg.MinioEndpoint = v
	}
	if v := os.Getenv("MINIO_ACCESS_KEY"); v != "" {
		cfg.MinioAccessKey = v
	}
	if v := os.Getenv("MINIO_SECRET_KEY"); v != "" {
		cfg.MinioSecretKey = v
	}
	if v := os.Getenv("MINIO_BUCKET"); v != "" {
		cfg.MinioBucket = v
	}
	if v := os.Getenv("ASSET_BASE_URL"); v != "" {
		cfg.AssetBaseURL = v
	}
	if v := os.Getenv("SENDGRID_API_KEY"); v != "" {
		cfg.SendGridAPIKey = v
	}
	if v := os.Getenv("MAIL_FROM"); v != "" {
		cfg.MailFrom = v
	}
}

func validateConfig(cfg FileConfig) error {
	if cfg.Port == "" {
		return errors.New("config: port is required")
	}
	if cfg.MongoURI == "" {
		return errors.New("config: mongoURI is required (set MONGO_URI)")
	}
	if cfg.MongoDatabase == "" {
		return errors.New("config: mongoDatabase is required")
	}
	if cfg.JWTSecret == "" {
		return errors.New("config: jwtSecret is required (set JWT_SECRET)")
	}
	if cfg.BcryptCost != 0 && (cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost) {
		return fmt.Errorf("config: bcryptCost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	if cfg.SignInRateLimitPerMinute < 0 || cfg.OTPRateLimitPerHour < 0 {
		return errors.New("config: rate limits must be >= 0")
	}
	return nil
}

// ParseJWTExpiry parses the credential expiry duration string.
// Empty input falls back to one hour.
func ParseJWTExpiry(raw string) (time.Duration, error) {
	if raw == "" {
		return time.Hour, nil
	}
	dur, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid jwtExpiry duration: %w", err)
	}
	if dur <= 0 {
		return 0, errors.New("jwtExpiry must be positive")
	}
	return dur, nil
}
