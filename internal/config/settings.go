package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables that override the settings file.
const (
	EnvEditor       = "BUILD_MY_OWN_EDITOR"
	EnvBasePath     = "BUILD_MY_OWN_BASE_PATH"
	EnvLaunchEditor = "BUILD_MY_OWN_LAUNCH_EDITOR"
	EnvRulesDir     = "BUILD_MY_OWN_RULES_DIR"
)

// Settings are the user's defaults for bootstrap runs.
type Settings struct {
	// Editor is the default editor identifier. Empty means autodetect.
	Editor string `yaml:"editor"`
	// BasePath is where projects are created. Empty means the working directory.
	BasePath string `yaml:"base_path"`
	// LaunchEditor opens the editor after a CLI bootstrap. Nil means true.
	LaunchEditor *bool `yaml:"launch_editor"`
	// RulesDir holds rules assets that take precedence over the built-in ones.
	RulesDir string `yaml:"rules_dir"`
}

// ShouldLaunch reports whether the editor should be opened after a bootstrap.
func (s Settings) ShouldLaunch() bool {
	return s.LaunchEditor == nil || *s.LaunchEditor
}

// Load reads settings from path and applies environment overrides.
// A missing file yields the defaults.
func Load(path string) (Settings, error) {
	var s Settings
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Settings{}, fmt.Errorf("reading config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &s); err != nil {
				return Settings{}, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}
	if err := s.applyEnv(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s *Settings) applyEnv() error {
	if v := strings.TrimSpace(os.Getenv(EnvEditor)); v != "" {
		s.Editor = v
	}
	if v := os.Getenv(EnvBasePath); v != "" {
		s.BasePath = v
	}
	if v := os.Getenv(EnvRulesDir); v != "" {
		s.RulesDir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLaunchEditor)); v != "" {
		launch, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", EnvLaunchEditor, v, err)
		}
		s.LaunchEditor = &launch
	}
	return nil
}
