// Package config loads authkit.yaml from the project root. A missing file
// returns defaults without error. CLI flags (bound via cobra) override file
// values by mutating the returned struct after loading.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the project root.
const FileName = "authkit.yaml"

// Default values for Config fields.
const (
	DefaultOutputDir    = "auth"
	DefaultSkipGitCheck = false
)

// Config holds all authkit settings.
type Config struct {
	OutputDir    string   `yaml:"output_dir"`
	SkipGitCheck bool     `yaml:"skip_git_check"`
	Providers    []string `yaml:"providers"`
}

func defaults() Config {
	return Config{
		OutputDir:    DefaultOutputDir,
		SkipGitCheck: DefaultSkipGitCheck,
	}
}

// partialConfig distinguishes an absent field (nil) from one set to its
// zero value.
type partialConfig struct {
	OutputDir    *string   `yaml:"output_dir"`
	SkipGitCheck *bool     `yaml:"skip_git_check"`
	Providers    *[]string `yaml:"providers"`
}

// LoadConfig reads the config file at path. If it does not exist, defaults
// are returned. Fields absent from the file keep their defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, err
	}

	var partial partialConfig
	if err := yaml.Unmarshal(data, &partial); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if partial.OutputDir != nil {
		cfg.OutputDir = *partial.OutputDir
	}
	if partial.SkipGitCheck != nil {
		cfg.SkipGitCheck = *partial.SkipGitCheck
	}
	if partial.Providers != nil {
		cfg.Providers = *partial.Providers
	}

	if cfg.OutputDir == "" {
		return nil, fmt.Errorf("%s: output_dir must not be empty", path)
	}
	return &cfg, nil
}
