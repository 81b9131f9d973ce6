// Package config loads the immutable application configuration.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the application configuration, constructed once at startup and
// passed by reference into the gate and controllers.
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Database struct {
		URI  string `yaml:"uri" env:"DB_URL"`
		Name string `yaml:"name" env:"DB_NAME"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret" env:"JWT_SECRET"`
	} `yaml:"jwt"`

	Admin struct {
		// ID is the fixed administrator identity embedded in admin tokens.
		ID string `yaml:"id" env:"ADMIN_ID"`
		// PasswordHash is the bcrypt hash the admin login compares against.
		PasswordHash string `yaml:"password_hash" env:"ADMIN_PASSWORD"`
	} `yaml:"admin"`

	CORS struct {
		ClientOrigin string `yaml:"client_origin" env:"CLIENT_URL"`
	} `yaml:"cors"`

	Mail struct {
		Host     string `yaml:"host" env:"SMTP_HOST"`
		Port     int    `yaml:"port" env:"SMTP_PORT"`
		Username string `yaml:"username" env:"MAIL_USERNAME"`
		Password string `yaml:"password" env:"MAIL_PASSWORD"`
		From     string `yaml:"from" env:"MAIL_FROM"`
	} `yaml:"mail"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// IsProduction reports whether the server runs in production mode. The session
// cookie is marked Secure only in production.
func (c *Config) IsProduction() bool {
	return c.Server.Mode == "production"
}

// LoadConfig loads configuration from an optional yaml file, a local .env file
// and environment variables, in increasing order of precedence.
func LoadConfig(configPath string) (*Config, error) {
	// A missing .env file is fine; deployments set real environment variables.
	_ = godotenv.Load()

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

func setDefaults(config *Config) {
	config.Server.Port = "5000"
	config.Server.Mode = "development"

	config.Database.URI = "mongodb://localhost:27017"
	config.Database.Name = "placement_cell"

	config.Mail.Host = "smtp.gmail.com"
	config.Mail.Port = 587

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

func validateConfig(config *Config) error {
	if config.Database.URI == "" {
		return fmt.Errorf("database uri is required")
	}
	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if config.Admin.ID == "" {
		return fmt.Errorf("admin id is required")
	}
	if config.Admin.PasswordHash == "" {
		return fmt.Errorf("admin password hash is required")
	}
	return nil
}
