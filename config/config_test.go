package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

type testConfig struct {
	Logging struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"logging"`
	Whisper struct {
		Model          string        `mapstructure:"model"`
		APIKey         string        `mapstructure:"api_key"`
		RequestTimeout time.Duration `mapstructure:"request_timeout"`
	} `mapstructure:"whisper"`
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_FromYAML(t *testing.T) {
	dir := t.TempDir()
	cfgFile := writeFile(t, dir, "config.yml", `
logging:
  level: debug
  format: json
whisper:
  model: whisper-large-v3
  api_key: YOUR_API_KEY
  request_timeout: 30s
`)

	var cfg testConfig
	if err := Load("speechkit", &cfg, WithConfigFile(cfgFile)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Whisper.Model != "whisper-large-v3" {
		t.Errorf("model = %q", cfg.Whisper.Model)
	}
	if cfg.Whisper.RequestTimeout != 30*time.Second {
		t.Errorf("request_timeout = %v, want 30s", cfg.Whisper.RequestTimeout)
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	cfgFile := writeFile(t, dir, "config.yml", `
logging:
  level: info
`)
	t.Setenv("SPEECHKIT_LOGGING_LEVEL", "warn")

	var cfg testConfig
	if err := Load("speechkit", &cfg, WithConfigFile(cfgFile)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("level = %q, want warn (env should win)", cfg.Logging.Level)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := writeFile(t, dir, ".env", "SPEECHKIT_WHISPER_API_KEY=sk-from-dotenv\n")
	t.Cleanup(func() { os.Unsetenv("SPEECHKIT_WHISPER_API_KEY") })

	var cfg testConfig
	if err := Load("speechkit", &cfg, WithEnvFile(envFile)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Whisper.APIKey != "sk-from-dotenv" {
		t.Errorf("api_key = %q, want sk-from-dotenv", cfg.Whisper.APIKey)
	}
}

func TestLoad_MissingFilesIsNotAnError(t *testing.T) {
	var cfg testConfig
	fs := &stubFS{}
	if err := Load("speechkit", &cfg, WithFileSystem(fs)); err != nil {
		t.Fatalf("Load with no files: %v", err)
	}
}

type stubFS struct{}

func (*stubFS) Exists(string) bool   { return false }
func (*stubFS) LoadEnv(string) error { return nil }

func TestAPIKeyResolver_PriorityOrder(t *testing.T) {
	t.Setenv(DefaultAPIKeyEnvVar, "sk-env")

	r := &APIKeyResolver{Packaged: "sk-packaged"}
	if got := r.Resolve(); got != "sk-packaged" {
		t.Errorf("Resolve = %q, want packaged value first", got)
	}

	r.Packaged = PlaceholderAPIKey
	if got := r.Resolve(); got != "sk-env" {
		t.Errorf("Resolve = %q, want env fallback when packaged is placeholder", got)
	}

	os.Unsetenv(DefaultAPIKeyEnvVar)
	r.SetOverride("sk-runtime")
	if got := r.Resolve(); got != "sk-runtime" {
		t.Errorf("Resolve = %q, want runtime override last", got)
	}
}

func TestAPIKeyResolver_RejectsPlaceholderAndEmpty(t *testing.T) {
	r := &APIKeyResolver{Packaged: "  "}
	if got := r.Resolve(); got != "" {
		t.Errorf("Resolve = %q, want empty", got)
	}

	r.SetOverride(PlaceholderAPIKey)
	if got := r.Resolve(); got != "" {
		t.Errorf("Resolve = %q, placeholder override must be rejected", got)
	}

	r.SetOverride("sk-good")
	r.SetOverride("")
	if got := r.Resolve(); got != "" {
		t.Errorf("Resolve = %q, empty override must clear", got)
	}
}
