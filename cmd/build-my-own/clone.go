package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/build-my-own/internal/editor"
	"github.com/gorewood/build-my-own/internal/output"
	"github.com/gorewood/build-my-own/internal/project"
)

// bootstrapOptions are the flags shared by the root command and clone.
type bootstrapOptions struct {
	github     string
	basePath   string
	editor     string
	allEditors bool
	noLaunch   bool
	pickEditor bool
}

// addBootstrapFlags registers the bootstrap flags on cmd.
func addBootstrapFlags(cmd *cobra.Command, opts *bootstrapOptions) {
	cmd.Flags().StringVar(&opts.basePath, "base-path", "", "Directory to create the project in (default: current directory)")
	cmd.Flags().StringVar(&opts.editor, "editor", "",
		"Editor to install rules for: "+strings.Join(editor.Names(), ", ")+" (default: autodetect)")
	cmd.Flags().BoolVar(&opts.allEditors, "all-editors", false, "Install rules for every supported editor")
	cmd.Flags().BoolVar(&opts.noLaunch, "no-launch", false, "Do not open the editor when done")
	cmd.Flags().BoolVar(&opts.pickEditor, "pick-editor", false, "Choose the editor interactively from those installed")
	cmd.MarkFlagsMutuallyExclusive("editor", "pick-editor")
}

// newCloneCmd creates the clone command.
func newCloneCmd() *cobra.Command {
	var opts bootstrapOptions
	cmd := &cobra.Command{
		Use:   "clone <url>",
		Short: "Clone a repository and set up a build-my-own project",
		Long: `Clone a repository into <base>/<name>/<name>-original, create an empty
<name>-my-own workspace and install teaching rules for your editor.

The project directory must not exist yet. The editor is opened when done
unless --no-launch is given or launch_editor is false in the config file.

Examples:
  build-my-own clone https://github.com/user/redis.git
  build-my-own clone https://github.com/user/redis.git --editor vscode --no-launch
  build-my-own clone https://github.com/user/redis.git --pick-editor
  build-my-own clone https://github.com/user/redis.git --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBootstrap(cmd, args[0], opts)
		},
	}
	addBootstrapFlags(cmd, &opts)
	return cmd
}

// runBootstrap validates the inputs, runs the orchestrator and reports.
func runBootstrap(cmd *cobra.Command, url string, opts bootstrapOptions) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	req, bootstrapper, err := prepareBootstrap(cmd, url, opts)
	if err != nil {
		printer.Error(err)
		return err
	}

	result, err := bootstrapper.Bootstrap(cmd.Context(), req)
	if err != nil {
		exitErr := toExitError(err)
		printer.Error(exitErr)
		return exitErr
	}

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}
	printBootstrapResult(printer, result)
	return nil
}

func prepareBootstrap(cmd *cobra.Command, url string, opts bootstrapOptions) (project.Request, *project.Bootstrapper, error) {
	if err := project.ValidateURL(url); err != nil {
		return project.Request{}, nil, toExitError(err)
	}

	settings, err := loadSettings()
	if err != nil {
		return project.Request{}, nil, err
	}
	kind, err := resolveEditor(opts.editor, settings)
	if err != nil {
		return project.Request{}, nil, err
	}
	base, err := resolveBase(opts.basePath, settings)
	if err != nil {
		return project.Request{}, nil, err
	}

	logger := newLogger(cmd)
	detector := editor.NewDetector()

	if opts.pickEditor {
		if isJSONMode(cmd) || !output.IsTTY(cmd.OutOrStdout()) {
			return project.Request{}, nil, output.NewUserError("--pick-editor needs an interactive terminal; use --editor instead")
		}
		kind, err = pickEditor(detector.DetectAvailable(cmd.Context()))
		if err != nil {
			return project.Request{}, nil, err
		}
	}

	req := project.Request{
		URL:        url,
		BasePath:   base,
		Editor:     kind,
		AllEditors: opts.allEditors,
		Launch:     settings.ShouldLaunch() && !opts.noLaunch,
	}
	return req, newBootstrapper(rulesLibrary(settings), detector, logger), nil
}

func printBootstrapResult(printer *output.Printer, result *project.Result) {
	styles := printer.Styles()
	var body strings.Builder
	lines := [][2]string{
		{"Original", result.OriginalPath},
		{"Workspace", result.WorkspacePath},
		{"Editor", string(result.SelectedEditor)},
	}
	for _, line := range lines {
		body.WriteString(styles.Key.Render(line[0]+":") + " " + line[1] + "\n")
	}
	for _, path := range result.RulesFiles {
		body.WriteString(styles.Key.Render("Rules:") + " " + styles.Path.Render(path) + "\n")
	}
	body.WriteString("\nOpen " + result.ProjectPath + " in your editor and ask the assistant to start.")

	printer.Box("Project "+string(result.ProjectName)+" is ready", body.String())
	for _, warning := range result.Warnings {
		printer.Warn("%s", warning)
	}
}
