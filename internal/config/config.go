// Package config loads palettecraft settings from defaults, an optional YAML
// file and PALETTECRAFT_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/palettecraft/internal/logging"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "PALETTECRAFT_"

// Config is the full palettecraft configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Store    StoreConfig    `yaml:"store"`
	Log      LogConfig      `yaml:"log"`
	Client   ClientConfig   `yaml:"client"`
	Generate GenerateConfig `yaml:"generate"`

	// LoadedFrom lists the sources applied, lowest precedence first.
	LoadedFrom []string `yaml:"-"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr            string        `yaml:"addr" validate:"required"`
	ReadTimeout     time.Duration `yaml:"read_timeout" validate:"gte=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" validate:"gte=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes" validate:"gt=0"`
}

// StoreConfig selects the palette store.
type StoreConfig struct {
	Backend string `yaml:"backend" validate:"oneof=memory sqlite"`
	Path    string `yaml:"path" validate:"required_if=Backend sqlite"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// ClientConfig configures the share client.
type ClientConfig struct {
	Server  string        `yaml:"server" validate:"required,url"`
	Timeout time.Duration `yaml:"timeout" validate:"gt=0"`
}

// GenerateConfig holds defaults for palette generation.
type GenerateConfig struct {
	Count   int  `yaml:"count" validate:"min=1,max=20"`
	Preview bool `yaml:"preview"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 5 * time.Second,
			MaxBodyBytes:    1 << 20,
		},
		Store: StoreConfig{
			Backend: "memory",
			Path:    defaultDBPath(),
		},
		Log: LogConfig{
			Level: "info",
		},
		Client: ClientConfig{
			Server:  "http://localhost:8080",
			Timeout: 30 * time.Second,
		},
		Generate: GenerateConfig{
			Count:   5,
			Preview: true,
		},
		LoadedFrom: []string{"defaults"},
	}
}

func defaultDBPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "palettecraft", "palettes.db")
	}
	return "palettes.db"
}

// Load builds the configuration. path names a YAML file; when empty,
// $PALETTECRAFT_CONFIG is used if set. A missing file named only by the
// environment is an error just like one named explicitly.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvPrefix + "CONFIG")
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path) // #nosec G304 - Config path is user-supplied
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	c.LoadedFrom = append(c.LoadedFrom, path)
	return nil
}

func (c *Config) applyEnv() {
	before := *c
	c.Server.Addr = getEnv(EnvPrefix+"ADDR", c.Server.Addr)
	c.Store.Backend = getEnv(EnvPrefix+"STORE", c.Store.Backend)
	c.Store.Path = getEnv(EnvPrefix+"DB", c.Store.Path)
	c.Log.Level = getEnv(EnvPrefix+"LOG_LEVEL", c.Log.Level)
	c.Log.JSON = getEnvBool(EnvPrefix+"LOG_JSON", c.Log.JSON)
	c.Client.Server = getEnv(EnvPrefix+"SERVER", c.Client.Server)
	c.Generate.Count = getEnvInt(EnvPrefix+"COUNT", c.Generate.Count)

	if before.Server != c.Server || before.Store != c.Store || before.Log != c.Log ||
		before.Client != c.Client || before.Generate != c.Generate {
		c.LoadedFrom = append(c.LoadedFrom, "environment")
	}
}

var validate = validator.New()

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	var problems []string
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		for _, fe := range verrs {
			problems = append(problems, formatFieldError(fe))
		}
	}
	if !logging.ValidLevel(c.Log.Level) {
		problems = append(problems, fmt.Sprintf("log.level %q is not a known level", c.Log.Level))
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(strings.TrimPrefix(e.Namespace(), "Config."))
	switch e.Tag() {
	case "required", "required_if":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
