package main

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/build-my-own/internal/editor"
	"github.com/gorewood/build-my-own/internal/output"
	"github.com/gorewood/build-my-own/internal/project"
)

// newRulesCmd creates the rules command.
func newRulesCmd() *cobra.Command {
	var (
		editorFlag  string
		contentFile string
	)

	cmd := &cobra.Command{
		Use:   "rules <project-path>",
		Short: "Install or overwrite the teaching rules in a project",
		Long: `Write the editor rules file into an existing project directory, replacing
any previous content.

Without --content-file the default teaching rules are installed. With it, the
file's content (or stdin for "-") is written verbatim.

Examples:
  build-my-own rules ./redis                         # default rules, autodetected editor
  build-my-own rules ./redis --editor windsurf       # rules for Windsurf
  build-my-own rules ./redis --content-file my.md    # custom rules
  cat my.md | build-my-own rules ./redis --content-file -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRules(cmd, args[0], editorFlag, contentFile)
		},
	}

	cmd.Flags().StringVar(&editorFlag, "editor", "",
		"Editor to write rules for: "+strings.Join(editor.Names(), ", ")+" (default: autodetect)")
	cmd.Flags().StringVar(&contentFile, "content-file", "", `File with custom rules content ("-" for stdin)`)
	return cmd
}

func runRules(cmd *cobra.Command, projectPath, editorFlag, contentFile string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	settings, err := loadSettings()
	if err != nil {
		printer.Error(err)
		return err
	}
	kind, err := resolveEditor(editorFlag, settings)
	if err != nil {
		printer.Error(err)
		return err
	}
	path, err := project.ResolveBasePath(projectPath)
	if err != nil {
		exitErr := output.NewUserErrorWithCause("invalid project path: "+err.Error(), err)
		printer.Error(exitErr)
		return exitErr
	}

	req := project.RulesRequest{ProjectPath: path, Editor: kind}
	if contentFile != "" {
		content, err := readContent(cmd, contentFile)
		if err != nil {
			printer.Error(err)
			return err
		}
		req.Content = &content
	}

	bootstrapper := newBootstrapper(rulesLibrary(settings), editor.NewDetector(), newLogger(cmd))
	result, err := bootstrapper.InstallRules(cmd.Context(), req)
	if err != nil {
		exitErr := toExitError(err)
		printer.Error(exitErr)
		return exitErr
	}

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}
	source := "default"
	if result.Custom {
		source = "custom"
	}
	printer.Path("Wrote "+source+" rules", result.RulesFile)
	return nil
}

// readContent reads a rules file, or stdin for "-".
func readContent(cmd *cobra.Command, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", output.NewUserErrorWithCause("reading rules content: "+err.Error(), err)
	}
	return string(data), nil
}
