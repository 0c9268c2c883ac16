package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
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
	} `yaml:"database"`

	Redis struct {
		Addr     string `yaml:"addr" env:"REDIS_ADDR"`
		Password string `yaml:"password" env:"REDIS_PASSWORD"`
		DB       int    `yaml:"db" env:"REDIS_DB"`
	} `yaml:"redis"`

	Session struct {
		TTL        string `yaml:"ttl" env:"SESSION_TTL"`
		CookieName string `yaml:"cookie_name" env:"SESSION_COOKIE_NAME"`
	} `yaml:"session"`

	SMTP struct {
		Host        string `yaml:"host" env:"MAIL_HOST"`
		Port        int    `yaml:"port" env:"MAIL_PORT"`
		Username    string `yaml:"username" env:"MAIL_USERNAME"`
		Password    string `yaml:"password" env:"MAIL_PASSWORD"`
		FromName    string `yaml:"from_name" env:"MAIL_FROM_NAME"`
		FromAddress string `yaml:"from_address" env:"MAIL_FROM_ADDRESS"`
	} `yaml:"smtp"`

	SMS struct {
		Endpoint string `yaml:"endpoint" env:"SMS_ENDPOINT"`
		Username string `yaml:"username" env:"SMS_USERNAME"`
		Password string `yaml:"password" env:"SMS_PASSWORD"`
		Header   string `yaml:"header" env:"SMS_HEADER"`
	} `yaml:"sms"`

	Cloudflare struct {
		AccountID string `yaml:"account_id" env:"CLOUDFLARE_ACCOUNT_ID"`
		APIToken  string `yaml:"api_token" env:"CLOUDFLARE_IMAGES_TOKEN"`
	} `yaml:"cloudflare"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// A .env file is optional; env vars win over the yaml file either way
	_ = godotenv.Load()

	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		err = yaml.Unmarshal(file, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	// Database defaults
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "beartshare"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	// Redis defaults
	config.Redis.Addr = "localhost:6379"
	config.Redis.DB = 0

	// Session defaults
	config.Session.TTL = "24h"
	config.Session.CookieName = "admin_session"

	// SMTP defaults
	config.SMTP.Host = "smtp-relay.brevo.com"
	config.SMTP.Port = 587
	config.SMTP.FromName = "Beartshare"
	config.SMTP.FromAddress = "info@beartshare.com"

	// SMS defaults
	config.SMS.Endpoint = "http://soap.netgsm.com.tr:8080/Sms_webservis/SMS"
	config.SMS.Header = "BEARTSHARE"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port cannot be empty")
	}
	if config.Database.Host == "" || config.Database.Port == "" {
		return fmt.Errorf("database host and port are required")
	}
	if config.Database.DBName == "" {
		return fmt.Errorf("database name is required")
	}
	if config.Redis.Addr == "" {
		return fmt.Errorf("redis address is required")
	}
	if config.Session.CookieName == "" {
		return fmt.Errorf("session cookie name is required")
	}
	return nil
}

// GetPostgresConnectionString builds the pgx connection string
func (c *Config) GetPostgresConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}
