package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.jsonc"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != "https://emojihub.yurace.pro" {
		t.Fatalf("unexpected api url %q", cfg.APIBaseURL)
	}
	if cfg.BannerDuration != 2*time.Second {
		t.Fatalf("expected 2s banner, got %v", cfg.BannerDuration)
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.jsonc")
	body := `{
  // comments are allowed
  "apiBaseURL": "http://file.example",
  "bannerDuration": "3s",
  "store": "sqlite",
  "storePath": "/tmp/favs.json",
}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("EMOJIHUB_API_URL", "http://env.example")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != "http://env.example" {
		t.Fatalf("env should win over file, got %q", cfg.APIBaseURL)
	}
	if cfg.BannerDuration != 3*time.Second {
		t.Fatalf("expected 3s from file, got %v", cfg.BannerDuration)
	}
	if cfg.StorePath != "/tmp/favs.db" {
		t.Fatalf("sqlite store should not use a .json path, got %q", cfg.StorePath)
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.jsonc")
	os.WriteFile(path, []byte(`{"httpTimeout": "soon"}`), 0644)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for bad duration")
	}
}

func TestLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"loud":  slog.LevelInfo,
	}
	for name, want := range cases {
		if got := (Config{LogLevel: name}).Level(); got != want {
			t.Errorf("Level(%q) = %v, want %v", name, got, want)
		}
	}
}
