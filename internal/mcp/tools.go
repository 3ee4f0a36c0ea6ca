package mcp

import (
	"context"
	"slices"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/build-my-own/internal/editor"
	"github.com/gorewood/build-my-own/internal/project"
	"github.com/gorewood/build-my-own/internal/rules"
)

// --- Clone tools ---

// CloneInput is the input for the clone_and_setup_project tool.
type CloneInput struct {
	GitHubURL  string `json:"github_url"            jsonschema:"git URL of the repository, ending in .git"`
	BasePath   string `json:"base_path,omitempty"   jsonschema:"directory to create the project in (default: current directory)"`
	Editor     string `json:"editor,omitempty"      jsonschema:"editor to install rules for: cursor, windsurf or vscode (default: autodetect)"`
	AllEditors bool   `json:"all_editors,omitempty" jsonschema:"install rules for every supported editor"`
}

// StartInput is the input for the start_to_build_my_own_x tool.
type StartInput struct {
	GitHubURL string `json:"github_url" jsonschema:"git URL of the repository, ending in .git"`
}

// CloneOutput is the output for the clone tools.
type CloneOutput struct {
	Success         bool          `json:"success"                   jsonschema:"true when the project was set up"`
	ProjectName     string        `json:"project_name"              jsonschema:"name derived from the URL"`
	ProjectPath     string        `json:"project_path"              jsonschema:"absolute project directory"`
	OriginalPath    string        `json:"original_path"             jsonschema:"clone of the original repository"`
	WorkspacePath   string        `json:"workspace_path"            jsonschema:"empty directory for the user's implementation"`
	OriginalCommit  string        `json:"original_commit,omitempty" jsonschema:"abbreviated commit the clone is at"`
	RulesFiles      []string      `json:"rules_files"               jsonschema:"rules files written"`
	SelectedEditor  editor.Kind   `json:"selected_editor"           jsonschema:"editor the rules target"`
	DetectedEditors []editor.Kind `json:"detected_editors"          jsonschema:"editors found on this machine"`
	Warnings        []string      `json:"warnings,omitempty"        jsonschema:"non-fatal problems"`
	Message         string        `json:"message"                   jsonschema:"next steps for the assistant"`
}

func handleClone(deps *Deps) mcp.ToolHandlerFor[CloneInput, *CloneOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CloneInput) (*mcp.CallToolResult, *CloneOutput, error) {
		return runClone(ctx, deps, "clone_and_setup_project", input)
	}
}

func handleStart(deps *Deps) mcp.ToolHandlerFor[StartInput, *CloneOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input StartInput) (*mcp.CallToolResult, *CloneOutput, error) {
		return runClone(ctx, deps, "start_to_build_my_own_x", CloneInput{GitHubURL: input.GitHubURL})
	}
}

func runClone(ctx context.Context, deps *Deps, tool string, input CloneInput) (*mcp.CallToolResult, *CloneOutput, error) {
	kind, err := parseEditor(input.Editor, deps.Editor)
	if err != nil {
		return errorResult(deps.Logger, tool, err), nil, nil
	}
	base, err := basePath(input.BasePath, deps.BasePath)
	if err != nil {
		return errorResult(deps.Logger, tool, err), nil, nil
	}

	result, err := deps.Bootstrapper.Bootstrap(ctx, project.Request{
		URL:        input.GitHubURL,
		BasePath:   base,
		Editor:     kind,
		AllEditors: input.AllEditors,
	})
	if err != nil {
		return errorResult(deps.Logger, tool, err), nil, nil
	}

	return nil, &CloneOutput{
		Success:         result.Success,
		ProjectName:     string(result.ProjectName),
		ProjectPath:     result.ProjectPath,
		OriginalPath:    result.OriginalPath,
		WorkspacePath:   result.WorkspacePath,
		OriginalCommit:  result.OriginalCommit,
		RulesFiles:      result.RulesFiles,
		SelectedEditor:  result.SelectedEditor,
		DetectedEditors: result.DetectedEditors,
		Warnings:        result.Warnings,
		Message:         setupGuidance(result),
	}, nil
}

// --- Rules tool ---

// CreateRulesInput is the input for the create_rules_file tool.
type CreateRulesInput struct {
	ProjectPath  string  `json:"project_path"            jsonschema:"existing project directory"`
	RulesContent *string `json:"rules_content,omitempty" jsonschema:"content to write verbatim (default: built-in teaching rules)"`
	Editor       string  `json:"editor,omitempty"        jsonschema:"editor to write rules for: cursor, windsurf or vscode (default: autodetect)"`
}

// CreateRulesOutput is the output for the create_rules_file tool.
type CreateRulesOutput struct {
	Success     bool        `json:"success"      jsonschema:"true when the file was written"`
	ProjectPath string      `json:"project_path" jsonschema:"absolute project directory"`
	Editor      editor.Kind `json:"editor"       jsonschema:"editor the rules target"`
	RulesFile   string      `json:"rules_file"   jsonschema:"path of the rules file"`
	Custom      bool        `json:"custom"       jsonschema:"true when rules_content was written"`
	Message     string      `json:"message"      jsonschema:"confirmation for the assistant"`
}

func handleCreateRules(deps *Deps) mcp.ToolHandlerFor[CreateRulesInput, *CreateRulesOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CreateRulesInput) (*mcp.CallToolResult, *CreateRulesOutput, error) {
		const tool = "create_rules_file"

		kind, err := parseEditor(input.Editor, deps.Editor)
		if err != nil {
			return errorResult(deps.Logger, tool, err), nil, nil
		}
		path, err := project.ResolveBasePath(input.ProjectPath)
		if err != nil {
			return errorResult(deps.Logger, tool, err), nil, nil
		}

		result, err := deps.Bootstrapper.InstallRules(ctx, project.RulesRequest{
			ProjectPath: path,
			Editor:      kind,
			Content:     input.RulesContent,
		})
		if err != nil {
			return errorResult(deps.Logger, tool, err), nil, nil
		}

		return nil, &CreateRulesOutput{
			Success:     result.Success,
			ProjectPath: result.ProjectPath,
			Editor:      result.Editor,
			RulesFile:   result.RulesFile,
			Custom:      result.Custom,
			Message:     "Rules file written to " + result.RulesFile + ". Read it before continuing.",
		}, nil
	}
}

// --- Listing tools ---

// ListProjectsInput is the input for the list_projects tool.
type ListProjectsInput struct {
	BasePath string `json:"base_path,omitempty" jsonschema:"directory to scan (default: current directory)"`
}

// ListProjectsOutput is the output for the list_projects tool.
type ListProjectsOutput struct {
	BasePath string            `json:"base_path" jsonschema:"absolute directory scanned"`
	Count    int               `json:"count"     jsonschema:"number of projects found"`
	Projects []project.Summary `json:"projects"  jsonschema:"projects sorted by name"`
}

func handleListProjects(deps *Deps) mcp.ToolHandlerFor[ListProjectsInput, *ListProjectsOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ListProjectsInput) (*mcp.CallToolResult, *ListProjectsOutput, error) {
		base, err := basePath(input.BasePath, deps.BasePath)
		if err != nil {
			return errorResult(deps.Logger, "list_projects", err), nil, nil
		}
		projects, err := deps.Bootstrapper.ListProjects(ctx, base)
		if err != nil {
			return errorResult(deps.Logger, "list_projects", err), nil, nil
		}
		return nil, &ListProjectsOutput{BasePath: base, Count: len(projects), Projects: projects}, nil
	}
}

// ListEditorsInput is the input for the list_editors tool (no parameters needed).
type ListEditorsInput struct{}

// EditorInfo describes one supported editor.
type EditorInfo struct {
	ID            editor.Kind `json:"id"                     jsonschema:"editor identifier"`
	Name          string      `json:"name"                   jsonschema:"display name"`
	RulesPath     string      `json:"rules_path"             jsonschema:"rules file location relative to the project"`
	LaunchCommand string      `json:"launch_command"         jsonschema:"executable used to open the editor"`
	Detected      bool        `json:"detected"               jsonschema:"true when installed on this machine"`
	RulesSource   string      `json:"rules_source,omitempty" jsonschema:"where the default rules come from"`
	Description   string      `json:"description,omitempty"  jsonschema:"what the default rules teach"`
}

// ListEditorsOutput is the output for the list_editors tool.
type ListEditorsOutput struct {
	Editors  []EditorInfo  `json:"editors"  jsonschema:"supported editors in priority order"`
	Detected []editor.Kind `json:"detected" jsonschema:"installed editors in priority order"`
	Default  editor.Kind   `json:"default"  jsonschema:"editor used when none is given"`
}

func handleListEditors(deps *Deps) mcp.ToolHandlerFor[ListEditorsInput, *ListEditorsOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ ListEditorsInput) (*mcp.CallToolResult, *ListEditorsOutput, error) {
		detected := deps.Detector.DetectAvailable(ctx)
		if detected == nil {
			detected = []editor.Kind{}
		}
		return nil, &ListEditorsOutput{
			Editors:  editorInfos(detected, deps),
			Detected: detected,
			Default:  defaultEditor(deps.Editor, detected),
		}, nil
	}
}

func editorInfos(detected []editor.Kind, deps *Deps) []EditorInfo {
	assets := map[editor.Kind]rules.Info{}
	for _, info := range deps.Library.List() {
		assets[info.Editor] = info
	}

	infos := make([]EditorInfo, 0, len(editor.All()))
	for _, cfg := range editor.All() {
		infos = append(infos, EditorInfo{
			ID:            cfg.Kind,
			Name:          cfg.DisplayName,
			RulesPath:     cfg.RulesRelPath(),
			LaunchCommand: cfg.LaunchCommand,
			Detected:      slices.Contains(detected, cfg.Kind),
			RulesSource:   assets[cfg.Kind].Source,
			Description:   assets[cfg.Kind].Description,
		})
	}
	return infos
}

func defaultEditor(configured editor.Kind, detected []editor.Kind) editor.Kind {
	if configured != "" {
		return configured
	}
	return editor.Preferred(detected)
}
