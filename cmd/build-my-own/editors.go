package main

import (
	"slices"

	"github.com/spf13/cobra"

	"github.com/gorewood/build-my-own/internal/editor"
	"github.com/gorewood/build-my-own/internal/git"
	"github.com/gorewood/build-my-own/internal/output"
	"github.com/gorewood/build-my-own/internal/rules"
)

// editorRow describes one supported editor.
type editorRow struct {
	ID            editor.Kind `json:"id"`
	Name          string      `json:"name"`
	RulesPath     string      `json:"rules_path"`
	LaunchCommand string      `json:"launch_command"`
	Detected      bool        `json:"detected"`
	RulesSource   string      `json:"rules_source,omitempty"`
	Description   string      `json:"description,omitempty"`
}

// newEditorsCmd creates the editors command.
func newEditorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "editors",
		Short: "Show supported editors and which are installed",
		Long: `Show every supported editor, where its rules file goes, and whether its
command-line launcher was found on this machine. The first installed editor
is used when --editor is not given.

Examples:
  build-my-own editors
  build-my-own editors --json`,
		Args: cobra.NoArgs,
		RunE: runEditors,
	}
}

func runEditors(cmd *cobra.Command, _ []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	settings, err := loadSettings()
	if err != nil {
		printer.Error(err)
		return err
	}

	detected := editor.NewDetector().DetectAvailable(cmd.Context())
	assets := map[editor.Kind]rules.Info{}
	for _, info := range rulesLibrary(settings).List() {
		assets[info.Editor] = info
	}

	rows := make([]editorRow, 0, len(editor.All()))
	for _, cfg := range editor.All() {
		rows = append(rows, editorRow{
			ID:            cfg.Kind,
			Name:          cfg.DisplayName,
			RulesPath:     cfg.RulesRelPath(),
			LaunchCommand: cfg.LaunchCommand,
			Detected:      slices.Contains(detected, cfg.Kind),
			RulesSource:   assets[cfg.Kind].Source,
			Description:   assets[cfg.Kind].Description,
		})
	}
	def, err := resolveEditor("", settings)
	if err != nil {
		printer.Error(err)
		return err
	}
	if def == "" {
		def = editor.Preferred(detected)
	}
	gitVersion, gitErr := git.Version(cmd.Context())

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"editors":     rows,
			"detected":    nonNilKinds(detected),
			"default":     def,
			"git_version": gitVersion,
		})
	}

	table := make([][]string, 0, len(rows))
	for _, row := range rows {
		installed := "no"
		if row.Detected {
			installed = "yes"
		}
		table = append(table, []string{string(row.ID), row.Name, row.RulesPath, installed})
	}
	printer.Table([]string{"ID", "NAME", "RULES", "INSTALLED"}, table)
	printer.Println()
	printer.KeyValue("Default", string(def))
	if gitErr != nil {
		printer.Warn("git not found; cloning will fail until it is installed")
	} else {
		printer.KeyValue("Git", gitVersion)
	}
	return nil
}

func nonNilKinds(kinds []editor.Kind) []editor.Kind {
	if kinds == nil {
		return []editor.Kind{}
	}
	return kinds
}
