package main

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/build-my-own/internal/config"
	"github.com/gorewood/build-my-own/internal/editor"
	"github.com/gorewood/build-my-own/internal/output"
	"github.com/gorewood/build-my-own/internal/project"
	"github.com/gorewood/build-my-own/internal/rules"
)

// loadSettings reads the user's settings file with environment overrides.
func loadSettings() (config.Settings, error) {
	settings, err := config.Load(config.Path())
	if err != nil {
		return config.Settings{}, output.NewUserErrorWithCause("invalid configuration: "+err.Error(), err)
	}
	return settings, nil
}

// newLogger builds a text logger on stderr at the --log-level level.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := "warn"
	if flag := cmd.Root().PersistentFlags().Lookup("log-level"); flag != nil {
		level = flag.Value.String()
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: parseLevel(level)}))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// rulesLibrary layers the configured rules directory over the built-in assets.
func rulesLibrary(settings config.Settings) *rules.Library {
	if settings.RulesDir == "" {
		return rules.Default()
	}
	return rules.NewLibrary(rules.DirLayer(settings.RulesDir), rules.Builtin())
}

// newBootstrapper wires the orchestrator for a CLI invocation.
func newBootstrapper(library *rules.Library, detector editor.Availability, logger *slog.Logger) *project.Bootstrapper {
	return project.New(
		project.WithDetector(detector),
		project.WithLibrary(library),
		project.WithLogger(logger),
	)
}

// resolveEditor picks the flag value, then the configured default. Empty
// means autodetect.
func resolveEditor(flagValue string, settings config.Settings) (editor.Kind, error) {
	value := flagValue
	if value == "" {
		value = settings.Editor
	}
	if value == "" {
		return "", nil
	}
	kind, err := editor.ParseKind(value)
	if err != nil {
		return "", output.NewUserErrorWithCause(err.Error(), err)
	}
	return kind, nil
}

// resolveBase picks the flag value, then the configured default, then ".".
func resolveBase(flagValue string, settings config.Settings) (string, error) {
	value := flagValue
	if value == "" {
		value = settings.BasePath
	}
	path, err := project.ResolveBasePath(value)
	if err != nil {
		return "", output.NewUserErrorWithCause("invalid base path: "+err.Error(), err)
	}
	return path, nil
}
