// Package config loads cinepick configuration from YAML with environment
// variable expansion.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all cinepick configuration.
type Config struct {
	DBPath string      `yaml:"db_path"`
	TMDB   TMDBConfig  `yaml:"tmdb"`
	Cache  CacheConfig `yaml:"cache"`
}

// TMDBConfig defines the remote catalog endpoint and credentials. The API
// key travels as a query parameter; the read token, when set, is sent as a
// bearer header.
type TMDBConfig struct {
	APIKey       string `yaml:"api_key"`
	ReadToken    string `yaml:"read_token"`
	BaseURL      string `yaml:"base_url"`
	ImageBaseURL string `yaml:"image_base_url"`
	Language     string `yaml:"language"`
}

// CacheConfig controls the response cache.
type CacheConfig struct {
	TTL time.Duration `yaml:"ttl"`
}

// Default returns a Config with sensible defaults. Credentials come from
// the environment so the CLI works without a config file.
func Default() *Config {
	return &Config{
		DBPath: "cinepick.db",
		TMDB: TMDBConfig{
			APIKey:       os.Getenv("TMDB_API_KEY"),
			ReadToken:    os.Getenv("TMDB_READ_TOKEN"),
			BaseURL:      "https://api.themoviedb.org/3",
			ImageBaseURL: "https://image.tmdb.org/t/p/w500",
			Language:     "zh-CN",
		},
		Cache: CacheConfig{
			TTL: 24 * time.Hour,
		},
	}
}

// Load reads a YAML config file and expands environment variables. A
// missing file is not an error: defaults apply.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}
