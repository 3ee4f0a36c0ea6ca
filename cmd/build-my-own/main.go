// Package main provides the entry point for the build-my-own CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/build-my-own/internal/config"
	"github.com/gorewood/build-my-own/internal/envfile"
	"github.com/gorewood/build-my-own/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// useColor resolves the --color flag against the command's output writer.
func useColor(cmd *cobra.Command) bool {
	mode := output.ColorAuto
	if flag := cmd.Root().PersistentFlags().Lookup("color"); flag != nil {
		mode = flag.Value.String()
	}
	return output.ColorEnabled(mode, cmd.OutOrStdout())
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the build-my-own CLI.
func newRootCmd() *cobra.Command {
	var opts bootstrapOptions

	cmd := &cobra.Command{
		Use:   "build-my-own [url]",
		Short: "Set up a project for rebuilding an existing repository yourself",
		Long: `build-my-own clones a repository as a read-only reference, creates an empty
workspace next to it and installs teaching rules for your AI editor.

  <base>/<name>/
    <name>-original/   the cloned repository
    <name>-my-own/     your implementation
    <rules file>       e.g. .cursor/rules/teach.mdc

With a URL (positional or --github) the project is set up and the editor is
opened. Without one, build-my-own runs as an MCP server over stdio so an
assistant can set projects up for you.

Examples:
  build-my-own https://github.com/user/repo.git
  build-my-own --github https://github.com/user/repo.git --editor windsurf
  build-my-own --base-path ~/learn --all-editors https://github.com/user/repo.git
  build-my-own                      # run the MCP server`,
		Version:       buildVersion(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			url := opts.github
			if len(args) == 1 {
				url = args[0]
			}
			if url == "" {
				return runServe(cmd)
			}
			return runBootstrap(cmd, url, opts)
		},
	}

	// Load .env.local, .env, then the global env file. Environment variables
	// always take precedence over file values.
	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		loadEnvFiles()
		return nil
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", output.ColorAuto, "Color output: auto, always, never")
	cmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error")

	cmd.Flags().StringVar(&opts.github, "github", "", "Git URL of the repository to rebuild (must end in .git)")
	addBootstrapFlags(cmd, &opts)

	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins; environment variables already set always take precedence.
//
// Resolution order:
//  1. $CWD/.env.local
//  2. $CWD/.env
//  3. ~/.config/build-my-own/env
func loadEnvFiles() {
	paths := []string{".env.local", ".env"}
	if dir := config.Dir(); dir != "" {
		paths = append(paths, filepath.Join(dir, "env"))
	}
	_ = envfile.LoadAll(paths...)
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "core", Title: "Core Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "info", Title: "Info Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "agent", Title: "Agent Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	addGroupedCommand(cmd, newCloneCmd(), "core")
	addGroupedCommand(cmd, newRulesCmd(), "core")

	addGroupedCommand(cmd, newListCmd(), "info")
	addGroupedCommand(cmd, newEditorsCmd(), "info")

	addGroupedCommand(cmd, newServeCmd(), "agent")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
