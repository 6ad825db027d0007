package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working and home directories.
const FileName = ".recipe-gpt.yaml"

// Config holds all configuration for the application.
type Config struct {
	LLM         string  `yaml:"llm"`
	Model       string  `yaml:"model"`
	Temperature float32 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
	RemoteURL   string  `yaml:"remote_url"`

	Store     string `yaml:"store"`
	StorePath string `yaml:"store_path"`

	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig holds settings for the recipe endpoint.
type ServerConfig struct {
	Host         string   `yaml:"host"`
	Port         int      `yaml:"port"`
	AllowOrigins []string `yaml:"allow_origins"`
	Persist      bool     `yaml:"persist"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Defaults returns the configuration used when no file is present.
func Defaults() *Config {
	return &Config{
		LLM:         "auto",
		Temperature: 0.7,
		MaxTokens:   2048,
		Store:       "json",
		StorePath:   "recipes.json",
		Server: ServerConfig{
			Host:         "127.0.0.1",
			Port:         8000,
			AllowOrigins: []string{"*"},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Search returns the config file to load: explicit if set, otherwise
// ./.recipe-gpt.yaml, then ~/.recipe-gpt.yaml. Empty means none was found.
func Search(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}
	if home, err := os.UserHomeDir(); err == nil {
		homePath := filepath.Join(home, FileName)
		if _, err := os.Stat(homePath); err == nil {
			return homePath
		}
	}
	return ""
}

// HomePath returns ~/.recipe-gpt.yaml, falling back to the working directory.
func HomePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return FileName
	}
	return filepath.Join(home, FileName)
}

// Load reads .env into the environment, then layers the config file at path
// over the defaults and applies RECIPE_GPT_* environment overrides.
// An empty path loads defaults only.
func Load(path string) (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.LLM = getEnv("RECIPE_GPT_LLM", cfg.LLM)
	cfg.Model = getEnv("RECIPE_GPT_MODEL", cfg.Model)
	cfg.RemoteURL = getEnv("RECIPE_GPT_REMOTE_URL", cfg.RemoteURL)
	cfg.StorePath = getEnv("RECIPE_GPT_STORE_PATH", cfg.StorePath)
	cfg.Server.Port = getEnvAsInt("RECIPE_GPT_PORT", cfg.Server.Port)
	cfg.Log.Level = getEnv("RECIPE_GPT_LOG_LEVEL", cfg.Log.Level)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configured values can be used.
func (c *Config) Validate() error {
	switch c.Store {
	case "json", "sqlite":
	default:
		return fmt.Errorf("store: unknown kind %q (use json or sqlite)", c.Store)
	}
	if c.StorePath == "" {
		return errors.New("store_path: must not be empty")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port: %d is out of range", c.Server.Port)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature: %v is out of range [0, 2]", c.Temperature)
	}
	if c.MaxTokens < 0 {
		return fmt.Errorf("max_tokens: must not be negative")
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("log.format: unknown format %q (use text or json)", c.Log.Format)
	}
	return nil
}

// Address returns host:port for the recipe endpoint.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// SaveModel writes llm and model into the file at path, keeping every
// other key already there.
func SaveModel(path, provider, model string) error {
	values := map[string]interface{}{}

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &values); err != nil {
			return fmt.Errorf("failed to parse config file: %w", err)
		}
		if values == nil {
			values = map[string]interface{}{}
		}
	}

	values["llm"] = provider
	if model == "" {
		delete(values, "model")
	} else {
		values["model"] = model
	}

	out, err := yaml.Marshal(values)
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0644)
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as int or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
