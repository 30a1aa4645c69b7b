package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the config file name looked up next to the binary.
const DefaultConfigFile = "config.yaml"

// AppConfig holds process-level options passed from the CLI.
type AppConfig struct {
	ConfigPath string // Path to the YAML config file.
}

// ServerConfig holds HTTP listener options.
type ServerConfig struct {
	Addr    string `yaml:"addr"`     // Listen address, e.g. ":8080".
	BaseURL string `yaml:"base-url"` // External base URL used to build share and upload links.
}

// DatabaseConfig holds database connection options.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"` // SQLite path or PostgreSQL DSN.
}

// JWTConfig holds token signing options.
type JWTConfig struct {
	Secret string        `yaml:"secret"` // HMAC signing secret.
	Expiry time.Duration `yaml:"expiry"` // Token lifetime; defaults to 72h.
}

// StorageConfig holds blob storage options.
type StorageConfig struct {
	Dir string `yaml:"dir"` // Directory uploaded files are written under.
}

// LogConfig holds logging options.
type LogConfig struct {
	Level      string `yaml:"level"`       // logrus level name; defaults to info.
	File       string `yaml:"file"`        // Optional log file; stdout when empty.
	MaxSizeMB  int    `yaml:"max-size"`    // Rotation size in MiB.
	MaxBackups int    `yaml:"max-backups"` // Rotated files kept.
	MaxAgeDays int    `yaml:"max-age"`     // Rotated file retention in days.
}

// Config is the root YAML configuration document.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
	Storage  StorageConfig  `yaml:"storage"`
	Log      LogConfig      `yaml:"log"`
}

// ResolveConfigPath resolves the effective config file path.
// An explicit path wins, then the DAWATI_CONFIG environment variable,
// then DefaultConfigFile in the working directory.
func ResolveConfigPath(explicit string) string {
	if trimmed := strings.TrimSpace(explicit); trimmed != "" {
		return filepath.Clean(trimmed)
	}
	if env := strings.TrimSpace(os.Getenv("DAWATI_CONFIG")); env != "" {
		return filepath.Clean(env)
	}
	return DefaultConfigFile
}

// Load reads and validates the YAML config file at path.
func Load(path string) (*Config, error) {
	data, errRead := os.ReadFile(path)
	if errRead != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, errRead)
	}
	var cfg Config
	if errUnmarshal := yaml.Unmarshal(data, &cfg); errUnmarshal != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, errUnmarshal)
	}
	cfg.applyDefaults()
	if errValidate := cfg.validate(); errValidate != nil {
		return nil, errValidate
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.Server.Addr) == "" {
		c.Server.Addr = ":8080"
	}
	if strings.TrimSpace(c.Server.BaseURL) == "" {
		c.Server.BaseURL = "http://localhost:8080"
	}
	c.Server.BaseURL = strings.TrimRight(c.Server.BaseURL, "/")
	if strings.TrimSpace(c.Database.DSN) == "" {
		c.Database.DSN = "dawati.db"
	}
	if c.JWT.Expiry <= 0 {
		c.JWT.Expiry = 72 * time.Hour
	}
	if strings.TrimSpace(c.Storage.Dir) == "" {
		c.Storage.Dir = "uploads"
	}
	if strings.TrimSpace(c.Log.Level) == "" {
		c.Log.Level = "info"
	}
	if c.Log.MaxSizeMB <= 0 {
		c.Log.MaxSizeMB = 50
	}
	if c.Log.MaxBackups <= 0 {
		c.Log.MaxBackups = 5
	}
	if c.Log.MaxAgeDays <= 0 {
		c.Log.MaxAgeDays = 30
	}
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.JWT.Secret) == "" {
		return fmt.Errorf("config: jwt.secret is required")
	}
	return nil
}
