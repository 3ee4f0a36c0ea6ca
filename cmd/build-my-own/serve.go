package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/gorewood/build-my-own/internal/editor"
	bmomcp "github.com/gorewood/build-my-own/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run build-my-own as a Model Context Protocol (MCP) server over stdio.
Running build-my-own without a URL does the same.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "build-my-own": {
        "command": "build-my-own",
        "args": ["serve"]
      }
    }
  }

Available tools: clone_and_setup_project, start_to_build_my_own_x,
create_rules_file, list_projects, list_editors`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd)
		},
	}
}

// runServe serves the MCP tools on stdin/stdout until the client disconnects.
// Logs go to stderr because stdout carries the protocol.
func runServe(cmd *cobra.Command) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	kind, err := resolveEditor("", settings)
	if err != nil {
		return err
	}

	logger := newLogger(cmd)
	detector := editor.NewCachedDetector(editor.NewDetector(), editor.DefaultCacheTTL)
	library := rulesLibrary(settings)

	server := bmomcp.NewServer(buildVersion(), bmomcp.Deps{
		Bootstrapper: newBootstrapper(library, detector, logger),
		Detector:     detector,
		Library:      library,
		BasePath:     settings.BasePath,
		Editor:       kind,
		Logger:       logger,
	})
	logger.Info("serving MCP over stdio", "version", buildVersion())
	return server.Run(cmd.Context(), &mcp.StdioTransport{})
}
