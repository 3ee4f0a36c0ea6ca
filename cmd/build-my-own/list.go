package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/build-my-own/internal/editor"
	"github.com/gorewood/build-my-own/internal/output"
)

// newListCmd creates the list command.
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [base-path]",
		Short: "List build-my-own projects in a directory",
		Long: `List the projects set up under a directory (default: base_path from the
config file, or the current directory).

Examples:
  build-my-own list
  build-my-own list ~/learn --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base := ""
			if len(args) == 1 {
				base = args[0]
			}
			return runList(cmd, base)
		},
	}
}

func runList(cmd *cobra.Command, baseArg string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	settings, err := loadSettings()
	if err != nil {
		printer.Error(err)
		return err
	}
	base, err := resolveBase(baseArg, settings)
	if err != nil {
		printer.Error(err)
		return err
	}

	bootstrapper := newBootstrapper(rulesLibrary(settings), editor.NewDetector(), newLogger(cmd))
	projects, err := bootstrapper.ListProjects(cmd.Context(), base)
	if err != nil {
		exitErr := toExitError(err)
		printer.Error(exitErr)
		return exitErr
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"base_path": base,
			"count":     len(projects),
			"projects":  projects,
		})
	}

	if len(projects) == 0 {
		printer.Println("No projects in " + base)
		return nil
	}

	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		editors := make([]string, 0, len(p.Editors))
		for _, kind := range p.Editors {
			editors = append(editors, string(kind))
		}
		rows = append(rows, []string{p.Name, strings.Join(editors, ","), p.Description})
	}
	printer.Table([]string{"NAME", "EDITORS", "DESCRIPTION"}, rows)
	return nil
}
