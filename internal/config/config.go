// Package config holds bfk's constants and optional settings file support.
//
// Settings are read from bfk.yaml in the working directory when present.
// Everything has a sensible default; the file only overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SettingsFileName is looked up in the working directory.
const SettingsFileName = "bfk.yaml"

// Settings represents the bfk.yaml configuration.
type Settings struct {
	// TapeSize is the interpreter's memory capacity in cells.
	// Must be at least 1. Defaults to DefaultTapeSize.
	TapeSize int `yaml:"tape_size,omitempty"`

	// Prompt is the interactive prompt string. Defaults to "> ".
	Prompt string `yaml:"prompt,omitempty"`

	// Verbose reports compile duration for every compile when true,
	// as if -v were passed on the command line.
	Verbose bool `yaml:"verbose,omitempty"`
}

// DefaultSettings returns the built-in configuration.
func DefaultSettings() *Settings {
	return &Settings{
		TapeSize: DefaultTapeSize,
		Prompt:   DefaultPrompt,
	}
}

// Load parses a settings file. Fields absent from the file keep their defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	s := DefaultSettings()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("invalid settings file %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings file %s: %w", path, err)
	}
	return s, nil
}

// LoadDefault returns the working directory's bfk.yaml settings, or the
// built-in defaults when no file exists.
func LoadDefault() (*Settings, error) {
	if _, err := os.Stat(SettingsFileName); err != nil {
		return DefaultSettings(), nil
	}
	return Load(SettingsFileName)
}

// Validate checks the settings for values the interpreter cannot honor.
func (s *Settings) Validate() error {
	if s.TapeSize < 1 {
		return fmt.Errorf("tape_size must be at least 1, got %d", s.TapeSize)
	}
	return nil
}
