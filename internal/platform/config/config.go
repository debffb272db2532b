package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	configFileName = "config.yaml"
	defaultBaseURL = "http://localhost:5000/api"
)

// Config holds everything the client needs to reach the backend and keep
// its own state: the state directory (token, log file) and the API base URL.
type Config struct {
	StateDir   string `yaml:"-"`
	APIBaseURL string `yaml:"api_base_url"`
	LogPath    string `yaml:"log_path"`
}

// New resolves the configuration for stateDir. Values come from, in order of
// precedence: environment (optionally via a .env file), the YAML config file
// inside the state dir, and built-in defaults.
func New(stateDir string) (Config, error) {
	_ = godotenv.Load()

	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home dir: %w", err)
		}
		stateDir = filepath.Join(home, ".xunews")
	}

	cfg := Config{
		StateDir:   stateDir,
		APIBaseURL: defaultBaseURL,
	}

	payload, err := os.ReadFile(filepath.Join(stateDir, configFileName))
	if err == nil {
		if err := yaml.Unmarshal(payload, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	if v := os.Getenv("XUNEWS_API_BASE_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("XUNEWS_LOG_PATH"); v != "" {
		cfg.LogPath = v
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = defaultBaseURL
	}
	if cfg.LogPath == "" {
		cfg.LogPath = filepath.Join(stateDir, "xunews.log")
	}
	return cfg, nil
}

// TokenPath is the location of the persisted credential token.
func (c Config) TokenPath() string {
	return filepath.Join(c.StateDir, "token.json")
}
