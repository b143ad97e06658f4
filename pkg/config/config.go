package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	// Required fields
	SessionSecret string `mapstructure:"session_secret"`

	// Optional HTTP settings
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`

	// Optional SSL settings
	SSLCert string `mapstructure:"ssl_cert"`
	SSLKey  string `mapstructure:"ssl_key"`

	// Optional storage settings
	DBPath         string   `mapstructure:"db_path"`
	UploadDir      string   `mapstructure:"upload_dir"`
	MaxUploadBytes int64    `mapstructure:"max_upload_bytes"`
	AllowedExts    []string `mapstructure:"allowed_extensions"`

	// Optional session settings
	SessionAlgorithm string `mapstructure:"session_algorithm"`

	// Optional logging settings
	LogLevel string `mapstructure:"log_level"`

	ConfigPath string
}

const (
	DefaultConfigPath       = "./config.yml"
	DefaultHost             = "127.0.0.1"
	DefaultPort             = 8340
	DefaultDBPath           = "./enroll.sqlite3"
	DefaultUploadDir        = "./static/uploads"
	DefaultMaxUploadBytes   = 2 * 1024 * 1024
	DefaultLogLevel         = "info"
	DefaultSessionAlgorithm = "HS256"
)

func DefaultAllowedExts() []string {
	return []string{"png", "jpg", "jpeg", "pdf"}
}

func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	// Set defaults
	viper.SetDefault("host", DefaultHost)
	viper.SetDefault("port", DefaultPort)
	viper.SetDefault("db_path", DefaultDBPath)
	viper.SetDefault("upload_dir", DefaultUploadDir)
	viper.SetDefault("max_upload_bytes", DefaultMaxUploadBytes)
	viper.SetDefault("allowed_extensions", DefaultAllowedExts())
	viper.SetDefault("log_level", DefaultLogLevel)
	viper.SetDefault("session_algorithm", DefaultSessionAlgorithm)

	// Allow environment variable overrides
	viper.AutomaticEnv()
	viper.SetEnvPrefix("ENROLL")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.ConfigPath = configPath

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.SessionSecret == "" {
		return fmt.Errorf("session_secret is required")
	}

	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be positive")
	}

	if len(c.AllowedExts) == 0 {
		return fmt.Errorf("allowed_extensions must not be empty")
	}

	// Validate SSL config if provided
	if c.SSLCert != "" || c.SSLKey != "" {
		if c.SSLCert == "" || c.SSLKey == "" {
			return fmt.Errorf("both ssl_cert and ssl_key must be provided")
		}
		if _, err := os.Stat(c.SSLCert); os.IsNotExist(err) {
			return fmt.Errorf("ssl_cert file does not exist: %s", c.SSLCert)
		}
		if _, err := os.Stat(c.SSLKey); os.IsNotExist(err) {
			return fmt.Errorf("ssl_key file does not exist: %s", c.SSLKey)
		}
	}

	return nil
}

func (c *Config) IsDevMode() bool {
	return os.Getenv("ENROLL_DEV_MODE") == "1"
}
