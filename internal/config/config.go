package config

import (
	"os"

	"storydoc/internal/extract"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Output struct {
		Path string `yaml:"path"`
	} `yaml:"output"`
	Manifest struct {
		TimeoutMs int `yaml:"timeout_ms"`
	} `yaml:"manifest"`
	Browser extract.RodConfig `yaml:"browser"`
	Cache   struct {
		Path string `yaml:"path"`
	} `yaml:"cache"`
	AI struct {
		APIKey string `yaml:"api_key"`
		Model  string `yaml:"model"`
	} `yaml:"ai"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.Output.Path = "storybook-export.md"
	cfg.Manifest.TimeoutMs = 30000
	cfg.Browser = extract.DefaultRodConfig()
	cfg.AI.Model = "gemini-2.5-flash-lite"
	return cfg
}

// LoadConfig reads the YAML config at path, layering .env and environment
// variable overrides on top. A missing config file is not an error; defaults
// apply.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := Default()

	// 2. Load YAML config
	file, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	// 3. Override with Environment Variables if present
	if apiKey := os.Getenv("STORYDOC_API_KEY"); apiKey != "" {
		cfg.AI.APIKey = apiKey
	}
	if model := os.Getenv("STORYDOC_AI_MODEL"); model != "" {
		cfg.AI.Model = model
	}

	return cfg, nil
}
