// Package config persists app-level preferences: interface language,
// score policy, and classifier selection.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/abhisek/lymphwatch/internal/risk"
)

// Config is the persisted application configuration.
type Config struct {
	// Language is a BCP 47 tag ("en", "zh-Hans", "es").
	Language string `json:"language"`
	// Policy selects the score derivation strategy.
	Policy risk.Policy `json:"policy"`
	// Classifier is "onnx" or "mock".
	Classifier string `json:"classifier"`
	// ManifestPath locates the model manifest for the onnx classifier.
	ManifestPath string `json:"manifest_path,omitempty"`
	// OrtLibraryPath optionally overrides the onnxruntime shared
	// library location.
	OrtLibraryPath string `json:"ort_library_path,omitempty"`
	// LogLevel is the zap level name.
	LogLevel string `json:"log_level"`
}

// Default returns sensible defaults: the current model generation's
// policy, English UI, and mock scoring until a model is configured.
func Default() Config {
	return Config{
		Language:   "en",
		Policy:     risk.PolicyDominant,
		Classifier: "mock",
		LogLevel:   "info",
	}
}

// Path resolves the config file location:
// 1. LYMPHWATCH_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/lymphwatch/config.json
// 3. ~/.config/lymphwatch/config.json
func Path() (string, error) {
	if p := os.Getenv("LYMPHWATCH_CONFIG"); p != "" {
		return p, nil
	}
	confHome := os.Getenv("XDG_CONFIG_HOME")
	if confHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		confHome = filepath.Join(home, ".config")
	}
	return filepath.Join(confHome, "lymphwatch", "config.json"), nil
}

// Load reads the config at path, returning defaults if the file does not
// exist yet.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path, creating parent directories as needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	raw, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(raw, '\n'), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
