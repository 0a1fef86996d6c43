package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/chaz8081/gostt-eval/internal/textnorm"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.Normalize.Language != "fr" {
		t.Errorf("Normalize.Language = %q, want %q", cfg.Normalize.Language, "fr")
	}
	if got, want := cfg.Normalize.TextConfig(), textnorm.DefaultConfig(); got != want {
		t.Errorf("Normalize.TextConfig() = %+v, want %+v", got, want)
	}
	if !cfg.Evaluate.UseIDs {
		t.Error("Evaluate.UseIDs should default to true")
	}
	if cfg.Evaluate.Normalization != "" {
		t.Errorf("Evaluate.Normalization = %q, want empty", cfg.Evaluate.Normalization)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return cfgPath
}

func TestLoad(t *testing.T) {
	cfgPath := writeConfig(t, `
log_level: debug
normalize:
  language: en
  keep_punctuation: true
  acronyms_file: /tmp/acronyms.txt
evaluate:
  use_ids: false
  normalization: fr+
  character_level: true
  words_list: /tmp/words.txt
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.Normalize.Language != "en" || !cfg.Normalize.KeepPunctuation {
		t.Errorf("Normalize = %+v", cfg.Normalize)
	}
	// Unset fields keep their defaults.
	if !cfg.Normalize.LowerCase || !cfg.Normalize.SafetyChecks {
		t.Errorf("defaults lost: %+v", cfg.Normalize)
	}
	if cfg.Normalize.AcronymsFile != "/tmp/acronyms.txt" {
		t.Errorf("Normalize.AcronymsFile = %q", cfg.Normalize.AcronymsFile)
	}
	if cfg.Evaluate.UseIDs || !cfg.Evaluate.CharacterLevel || cfg.Evaluate.Normalization != "fr+" {
		t.Errorf("Evaluate = %+v", cfg.Evaluate)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoadExpandsTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("cannot determine home directory")
	}

	cfg, err := Load(writeConfig(t, `
evaluate:
  replacements: ~/eval/replacements.txt
  xlsx_file: ~/eval/diff.xlsx
`))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if want := filepath.Join(home, "eval/replacements.txt"); cfg.Evaluate.Replacements != want {
		t.Errorf("Evaluate.Replacements = %q, want %q", cfg.Evaluate.Replacements, want)
	}
	if want := filepath.Join(home, "eval/diff.xlsx"); cfg.Evaluate.XLSXFile != want {
		t.Errorf("Evaluate.XLSXFile = %q, want %q", cfg.Evaluate.XLSXFile, want)
	}
}

func TestLoadFileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "invalid log level",
			modify:  func(c *Config) { c.LogLevel = "invalid" },
			wantErr: true,
		},
		{
			name:    "unsupported language",
			modify:  func(c *Config) { c.Normalize.Language = "de" },
			wantErr: true,
		},
		{
			name:    "buckwalter outside arabic",
			modify:  func(c *Config) { c.Normalize.Buckwalter = true },
			wantErr: true,
		},
		{
			name: "buckwalter with arabic",
			modify: func(c *Config) {
				c.Normalize.Language = "ar"
				c.Normalize.Buckwalter = true
			},
			wantErr: false,
		},
		{
			name:    "very strong normalization",
			modify:  func(c *Config) { c.Evaluate.Normalization = "ar++" },
			wantErr: false,
		},
		{
			name:    "unsupported normalization",
			modify:  func(c *Config) { c.Evaluate.Normalization = "xx+" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateUnsupportedLanguageIsConfigurationError(t *testing.T) {
	cfg := Default()
	cfg.Normalize.Language = "de"
	if err := cfg.Validate(); !errors.Is(err, textnorm.ErrConfiguration) {
		t.Errorf("Validate() error = %v, want ErrConfiguration", err)
	}
}

func TestLoadEnv(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "GOSTT_EVAL_LANGUAGE=ru\nGOSTT_EVAL_NORMALIZATION=en++\n"
	if err := os.WriteFile(envFile, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	// godotenv never overrides variables that are already set.
	t.Setenv("GOSTT_EVAL_LANGUAGE", "es")
	t.Setenv("GOSTT_EVAL_LOG_LEVEL", "warn")
	// Registered for cleanup, then cleared so the env file can set it.
	t.Setenv("GOSTT_EVAL_NORMALIZATION", "")
	os.Unsetenv("GOSTT_EVAL_NORMALIZATION")

	cfg := Default()
	if err := cfg.LoadEnv(envFile); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}

	if cfg.Normalize.Language != "es" {
		t.Errorf("Normalize.Language = %q, want %q", cfg.Normalize.Language, "es")
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "warn")
	}
	if cfg.Evaluate.Normalization != "en++" {
		t.Errorf("Evaluate.Normalization = %q, want %q", cfg.Evaluate.Normalization, "en++")
	}
}

func TestLoadEnvMissingFile(t *testing.T) {
	cfg := Default()
	if err := cfg.LoadEnv(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("LoadEnv() error = %v, want nil for a missing file", err)
	}
}

func TestWriteDefault_CreatesFile(t *testing.T) {
	// Use a temp dir as fake home to avoid touching real config
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	path, err := WriteDefault()
	if err != nil {
		t.Fatalf("WriteDefault() error = %v", err)
	}

	expectedPath := filepath.Join(tmpHome, ".config", "gostt-eval", "config.yaml")
	if path != expectedPath {
		t.Errorf("WriteDefault() path = %q, want %q", path, expectedPath)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read written config: %v", err)
	}
	if !strings.HasPrefix(string(data), "# gostt-eval") {
		t.Error("written config should start with header comment")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("written config is not valid YAML: %v", err)
	}
	if cfg.Normalize.Language != "fr" || !cfg.Evaluate.UseIDs {
		t.Errorf("written config = %+v, want defaults", cfg)
	}
}

func TestWriteDefault_NoOpIfExists(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	configDir := filepath.Join(tmpHome, ".config", "gostt-eval")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	existingContent := []byte("log_level: debug\n")
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, existingContent, 0644); err != nil {
		t.Fatalf("failed to write existing config: %v", err)
	}

	path, err := WriteDefault()
	if err != nil {
		t.Fatalf("WriteDefault() error = %v", err)
	}
	if path != "" {
		t.Errorf("WriteDefault() path = %q, want empty string for existing file", path)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("failed to read config: %v", err)
	}
	if string(data) != string(existingContent) {
		t.Error("WriteDefault() should not overwrite existing config file")
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo}, // defaults to info
		{"", slog.LevelInfo},        // defaults to info
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseLogLevel(tt.input)
			if got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, source, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if source != "defaults" || cfg.LogLevel != "info" {
		t.Errorf("LoadOrDefault() = %+v from %q, want defaults", cfg, source)
	}

	written, err := WriteDefault()
	if err != nil {
		t.Fatalf("WriteDefault() error = %v", err)
	}
	if _, source, err = LoadOrDefault(""); err != nil || source != written {
		t.Errorf("LoadOrDefault() source = %q, %v, want %q", source, err, written)
	}

	explicit := writeConfig(t, "log_level: error\n")
	cfg, source, err = LoadOrDefault(explicit)
	if err != nil || source != explicit || cfg.LogLevel != "error" {
		t.Errorf("LoadOrDefault(%q) = %+v, %q, %v", explicit, cfg, source, err)
	}
}
