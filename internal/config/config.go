package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/chaz8081/gostt-eval/internal/textnorm"
	"github.com/chaz8081/gostt-eval/internal/wer"
)

// Config holds all application configuration.
type Config struct {
	LogLevel  string          `yaml:"log_level"`
	Normalize NormalizeConfig `yaml:"normalize"`
	Evaluate  EvaluateConfig  `yaml:"evaluate"`
}

// NormalizeConfig holds text normalization settings.
type NormalizeConfig struct {
	Language                string `yaml:"language"`
	LowerCase               bool   `yaml:"lower_case"`
	KeepPunctuation         bool   `yaml:"keep_punctuation"`
	RemoveLigatures         bool   `yaml:"remove_ligatures"`
	ExtractParenthesis      bool   `yaml:"extract_parenthesis"`
	RemoveSuspiciousEntries bool   `yaml:"remove_suspicious_entries"`
	SafetyChecks            bool   `yaml:"safety_checks"`
	KeepLatinChars          bool   `yaml:"keep_latin_chars"`
	Buckwalter              bool   `yaml:"buckwalter"`
	AcronymsFile            string `yaml:"acronyms_file"`     // dump of acronyms seen, empty to skip
	SpecialCharsFile        string `yaml:"special_chars_file"` // dump of removed characters, empty to skip
}

// EvaluateConfig holds WER/CER computation settings.
type EvaluateConfig struct {
	UseIDs           bool   `yaml:"use_ids"`
	Normalization    string `yaml:"normalization"` // "", "fr", "fr+", "fr++", ...
	CharacterLevel   bool   `yaml:"character_level"`
	UsePercents      bool   `yaml:"use_percents"`
	AlignmentFile    string `yaml:"alignment_file"` // "-" for stdout
	IncludeCorrect   bool   `yaml:"include_correct"`
	WordsList        string `yaml:"words_list"`
	Replacements     string `yaml:"replacements"`
	ReplacementsRef  string `yaml:"replacements_ref"`
	ReplacementsPred string `yaml:"replacements_pred"`
	XLSXFile         string `yaml:"xlsx_file"`
}

// DefaultConfigDir returns the default config directory path.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "gostt-eval")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Normalize: NormalizeConfig{
			Language:        "fr",
			LowerCase:       true,
			RemoveLigatures: true,
			SafetyChecks:    true,
			KeepLatinChars:  true,
		},
		Evaluate: EvaluateConfig{
			UseIDs: true,
		},
	}
}

// Load reads and parses a YAML config file. Missing fields are filled
// with defaults. Tilde (~) in file paths is expanded to the user's home
// directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	cfg.expandPaths()
	return cfg, nil
}

// LoadOrDefault loads path when it is set, else the default config file
// when it exists, else the built-in defaults. source tells which one was
// used.
func LoadOrDefault(path string) (cfg *Config, source string, err error) {
	if path != "" {
		cfg, err = Load(path)
		return cfg, path, err
	}

	defaultPath := DefaultConfigPath()
	if _, err := os.Stat(defaultPath); err == nil {
		cfg, err := Load(defaultPath)
		if err != nil {
			return nil, "", fmt.Errorf("loading %s: %w", defaultPath, err)
		}
		return cfg, defaultPath, nil
	}
	return Default(), "defaults", nil
}

func (c *Config) expandPaths() {
	for _, p := range []*string{
		&c.Normalize.AcronymsFile,
		&c.Normalize.SpecialCharsFile,
		&c.Evaluate.AlignmentFile,
		&c.Evaluate.WordsList,
		&c.Evaluate.Replacements,
		&c.Evaluate.ReplacementsRef,
		&c.Evaluate.ReplacementsPred,
		&c.Evaluate.XLSXFile,
	} {
		*p = expandTilde(*p)
	}
}

// LoadEnv applies an optional .env file and GOSTT_EVAL_* environment
// variables on top of c. A missing env file is not an error.
func (c *Config) LoadEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", envFile, err)
		}
	}
	c.LogLevel = getEnv("GOSTT_EVAL_LOG_LEVEL", c.LogLevel)
	c.Normalize.Language = getEnv("GOSTT_EVAL_LANGUAGE", c.Normalize.Language)
	c.Evaluate.Normalization = getEnv("GOSTT_EVAL_NORMALIZATION", c.Evaluate.Normalization)
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

// Validate checks the config for invalid values.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be debug, info, warn, or error, got %q", c.LogLevel)
	}

	if _, err := textnorm.Lookup(c.Normalize.Language); err != nil {
		return fmt.Errorf("normalize.language: %w", err)
	}
	if c.Normalize.Buckwalter && c.Normalize.Language != "ar" {
		return fmt.Errorf("normalize.buckwalter requires language \"ar\", got %q", c.Normalize.Language)
	}

	if c.Evaluate.Normalization != "" {
		lang, _ := wer.ParseNormalization(c.Evaluate.Normalization)
		if _, err := textnorm.Lookup(lang); err != nil {
			return fmt.Errorf("evaluate.normalization: %w", err)
		}
	}
	return nil
}

// TextConfig converts the normalize section to normalizer options.
func (n NormalizeConfig) TextConfig() textnorm.Config {
	return textnorm.Config{
		LowerCase:               n.LowerCase,
		KeepPunctuation:         n.KeepPunctuation,
		RemoveLigatures:         n.RemoveLigatures,
		ExtractParenthesis:      n.ExtractParenthesis,
		RemoveSuspiciousEntries: n.RemoveSuspiciousEntries,
		SafetyChecks:            n.SafetyChecks,
		KeepLatinChars:          n.KeepLatinChars,
		Buckwalter:              n.Buckwalter,
	}
}

const defaultHeader = `# gostt-eval configuration
# Generated on first run. Edit as needed.
# Environment overrides: GOSTT_EVAL_LOG_LEVEL, GOSTT_EVAL_LANGUAGE, GOSTT_EVAL_NORMALIZATION

`

// WriteDefault writes the default config to DefaultConfigPath. It returns
// the written path, or "" when a config file already exists.
func WriteDefault() (string, error) {
	path := DefaultConfigPath()
	if _, err := os.Stat(path); err == nil {
		return "", nil
	}
	data, err := yaml.Marshal(Default())
	if err != nil {
		return "", fmt.Errorf("encoding default config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, append([]byte(defaultHeader), data...), 0o644); err != nil {
		return "", fmt.Errorf("writing config file: %w", err)
	}
	return path, nil
}

// ParseLogLevel maps a log_level value to a slog level. Unknown values
// fall back to info.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// expandTilde replaces a leading ~ with the user's home directory.
func expandTilde(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
