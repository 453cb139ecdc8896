package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	ErrMissingAPIKey  = errors.New("gemini api key is required")
	ErrInvalidTimeout = errors.New("model timeout must be positive")
)

const (
	DefaultPort         = "3000"
	DefaultModel        = "gemini-2.0-flash"
	DefaultModelTimeout = 30 * time.Second
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	Model  ModelConfig  `yaml:"model"`
	Log    LogConfig    `yaml:"log"`
	Auth   AuthConfig   `yaml:"auth"`
}

type ServerConfig struct {
	Port           string   `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type ModelConfig struct {
	APIKey string `yaml:"api_key"`
	// EncryptedAPIKey is decrypted with CRYPTO_KEY when APIKey is empty.
	EncryptedAPIKey string        `yaml:"encrypted_api_key"`
	Name            string        `yaml:"name"`
	Timeout         time.Duration `yaml:"timeout"`
	Temperature     *float32      `yaml:"temperature"`
	// BaseURL points the client at a Gemini-compatible endpoint; empty uses Google's.
	BaseURL string `yaml:"base_url"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// AuthConfig enables bearer JWT checks on /api when JWTSecret is set.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           DefaultPort,
			AllowedOrigins: []string{"*"},
		},
		Model: ModelConfig{
			Name:    DefaultModel,
			Timeout: DefaultModelTimeout,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load builds the configuration from defaults, the optional YAML file at path
// and the process environment, in that order of precedence.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("LEARN_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	if cfg.Model.APIKey == "" && cfg.Model.EncryptedAPIKey != "" {
		c, err := NewCipher(os.Getenv("CRYPTO_KEY"))
		if err != nil {
			return nil, err
		}
		key, err := c.Decrypt(cfg.Model.EncryptedAPIKey)
		if err != nil {
			return nil, fmt.Errorf("decrypt api key: %w", err)
		}
		cfg.Model.APIKey = key
	}

	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		c.Server.AllowedOrigins = splitList(v)
	}

	// GEMINI_API_KEY wins over the generic Google key.
	if v := os.Getenv("GOOGLE_API_KEY"); v != "" {
		c.Model.APIKey = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.Model.APIKey = v
	}
	if v := os.Getenv("GEMINI_API_KEY_ENCRYPTED"); v != "" {
		c.Model.EncryptedAPIKey = v
	}
	if v := os.Getenv("LEARN_MODEL"); v != "" {
		c.Model.Name = v
	}
	if v := os.Getenv("LEARN_MODEL_BASE_URL"); v != "" {
		c.Model.BaseURL = v
	}
	if v := os.Getenv("LEARN_MODEL_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("LEARN_MODEL_TIMEOUT: %w", err)
		}
		c.Model.Timeout = d
	}
	if v := os.Getenv("LEARN_TEMPERATURE"); v != "" {
		f, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return fmt.Errorf("LEARN_TEMPERATURE: %w", err)
		}
		t := float32(f)
		c.Model.Temperature = &t
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Auth.JWTSecret = v
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Model.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.Model.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + c.Server.Port
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
