// Package mcp provides a Model Context Protocol server for build-my-own.
// It exposes project bootstrapping as MCP tools that any MCP-capable agent
// environment can call.
package mcp

import (
	"io"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/build-my-own/internal/editor"
	"github.com/gorewood/build-my-own/internal/project"
	"github.com/gorewood/build-my-own/internal/rules"
)

// Deps are the collaborators the tools run against.
type Deps struct {
	Bootstrapper *project.Bootstrapper
	// Detector answers list_editors. It should be the same detector the
	// Bootstrapper uses so both agree within the cache window.
	Detector editor.Availability
	Library  *rules.Library
	// BasePath is used when a tool call omits base_path. Empty means ".".
	BasePath string
	// Editor is used when a tool call omits editor. Empty means autodetect.
	Editor editor.Kind
	Logger *slog.Logger
}

const instructions = `build-my-own sets up "rebuild it yourself" learning projects.
Call clone_and_setup_project with a git URL ending in .git to clone the
original next to an empty workspace and install teaching rules for the
user's editor. Then read the rules file and guide the user step by step.`

// NewServer creates an MCP server with all build-my-own tools registered.
func NewServer(version string, deps Deps) *mcp.Server {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if deps.Library == nil {
		deps.Library = rules.Default()
	}
	if deps.Detector == nil {
		deps.Detector = editor.NewCachedDetector(editor.NewDetector(), editor.DefaultCacheTTL)
	}
	if deps.Bootstrapper == nil {
		deps.Bootstrapper = project.New(
			project.WithDetector(deps.Detector),
			project.WithLibrary(deps.Library),
			project.WithLogger(deps.Logger),
		)
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "build-my-own",
		Version: version,
	}, &mcp.ServerOptions{Instructions: instructions})
	registerTools(server, &deps)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// cloneAnnotations marks tools that reach the network and create files.
func cloneAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(true),
	}
}

// writeAnnotations returns annotations for tools that overwrite a file.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(true),
		IdempotentHint:  true,
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all build-my-own tools to the server.
func registerTools(server *mcp.Server, deps *Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name: "clone_and_setup_project",
		Description: "Clone a git repository into <base_path>/<name>/<name>-original, create an empty " +
			"<name>-my-own workspace and install teaching rules for the editor. Fails if the project directory exists.",
		Annotations: cloneAnnotations(),
	}, handleClone(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "start_to_build_my_own_x",
		Description: "Start building your own version of a project: same as clone_and_setup_project with default options.",
		Annotations: cloneAnnotations(),
	}, handleStart(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name: "create_rules_file",
		Description: "Write or overwrite the editor rules file in an existing project directory. " +
			"rules_content is written verbatim; without it the default teaching rules are installed.",
		Annotations: writeAnnotations(),
	}, handleCreateRules(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_projects",
		Description: "List projects previously set up under base_path with their original, workspace and rules files.",
		Annotations: readOnlyAnnotations(),
	}, handleListProjects(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_editors",
		Description: "List supported editors, where each keeps its rules file, and which are installed on this machine.",
		Annotations: readOnlyAnnotations(),
	}, handleListEditors(deps))
}
