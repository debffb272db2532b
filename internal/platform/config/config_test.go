package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/CloudAceEmma/xu-ai-news-rag/internal/platform/config"
)

func TestDefaultsWhenNoConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:5000/api" {
		t.Fatalf("unexpected default base url: %s", cfg.APIBaseURL)
	}
	if cfg.LogPath != filepath.Join(dir, "xunews.log") {
		t.Fatalf("unexpected default log path: %s", cfg.LogPath)
	}
	if cfg.TokenPath() != filepath.Join(dir, "token.json") {
		t.Fatalf("unexpected token path: %s", cfg.TokenPath())
	}
}

func TestConfigFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	file := "api_base_url: http://file.example/api\nlog_path: /tmp/file.log\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(file), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.APIBaseURL != "http://file.example/api" || cfg.LogPath != "/tmp/file.log" {
		t.Fatalf("config file not applied: %+v", cfg)
	}

	t.Setenv("XUNEWS_API_BASE_URL", "http://env.example/api")
	cfg, err = config.New(dir)
	if err != nil {
		t.Fatalf("new config with env: %v", err)
	}
	if cfg.APIBaseURL != "http://env.example/api" {
		t.Fatalf("env override not applied: %s", cfg.APIBaseURL)
	}
}

func TestMalformedConfigFileFails(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(":\n\t-"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := config.New(dir); err == nil {
		t.Fatalf("malformed yaml must fail")
	}
}
