// Package editor describes the AI-assistant editors build-my-own can
// configure: where each one expects its rules file, how to launch it, and
// which of them are installed on this machine.
package editor

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Kind identifies an editor.
type Kind string

// Known editors, in priority order (most capable first).
const (
	Cursor   Kind = "cursor"
	Windsurf Kind = "windsurf"
	VSCode   Kind = "vscode"
)

// Default is used when no editor is requested and none is detected.
const Default = Cursor

// ErrUnsupported is returned for identifiers outside the registry.
var ErrUnsupported = errors.New("unsupported editor")

// Config is the static description of one editor.
type Config struct {
	Kind        Kind
	DisplayName string
	// RulesDir holds the path segments below the project root where the
	// rules file lives. Nil means the project root itself.
	RulesDir      []string
	RulesFile     string
	LaunchCommand string
}

// HasRulesDir reports whether the rules file lives in a subdirectory.
func (c Config) HasRulesDir() bool {
	return len(c.RulesDir) > 0
}

// RulesRelPath returns the rules file path relative to the project root.
func (c Config) RulesRelPath() string {
	return filepath.Join(append(append([]string{}, c.RulesDir...), c.RulesFile)...)
}

var order = []Kind{Cursor, Windsurf, VSCode}

var registry = map[Kind]Config{
	Cursor: {
		Kind:          Cursor,
		DisplayName:   "Cursor",
		RulesDir:      []string{".cursor", "rules"},
		RulesFile:     "teach.mdc",
		LaunchCommand: "cursor",
	},
	Windsurf: {
		Kind:          Windsurf,
		DisplayName:   "Windsurf",
		RulesFile:     ".windsurfrules",
		LaunchCommand: "windsurf",
	},
	VSCode: {
		Kind:          VSCode,
		DisplayName:   "VS Code (GitHub Copilot)",
		RulesDir:      []string{".github"},
		RulesFile:     "copilot-instructions.md",
		LaunchCommand: "code",
	},
}

// ConfigFor returns the configuration for kind.
func ConfigFor(kind Kind) (Config, error) {
	cfg, ok := registry[kind]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q (supported: %s)", ErrUnsupported, kind, strings.Join(Names(), ", "))
	}
	return cfg, nil
}

// ParseKind normalizes user input into a registered Kind.
func ParseKind(s string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(s)))
	if _, err := ConfigFor(kind); err != nil {
		return "", err
	}
	return kind, nil
}

// All returns every registered editor in priority order.
func All() []Config {
	configs := make([]Config, 0, len(order))
	for _, kind := range order {
		configs = append(configs, registry[kind])
	}
	return configs
}

// Kinds returns every registered identifier in priority order.
func Kinds() []Kind {
	return append([]Kind(nil), order...)
}

// Names returns the registered identifiers as strings.
func Names() []string {
	names := make([]string, len(order))
	for i, kind := range order {
		names[i] = string(kind)
	}
	return names
}
