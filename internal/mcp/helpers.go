package mcp

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/build-my-own/internal/editor"
	"github.com/gorewood/build-my-own/internal/project"
)

// errorResult reports a failed call as {"error": message} with isError set,
// leaving the server running.
func errorResult(logger *slog.Logger, tool string, err error) *mcp.CallToolResult {
	logger.Warn("tool call failed", "tool", tool, "kind", project.KindOf(err), "err", err)
	text, _ := json.Marshal(map[string]string{"error": err.Error()})
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: string(text)}},
	}
}

// parseEditor normalizes an optional editor argument, falling back to def.
func parseEditor(value string, def editor.Kind) (editor.Kind, error) {
	if strings.TrimSpace(value) == "" {
		return def, nil
	}
	kind, err := editor.ParseKind(value)
	if err != nil {
		return "", &project.Error{Kind: project.KindUnsupportedEditor, Message: fmt.Sprintf("unsupported editor %q", value), Err: err}
	}
	return kind, nil
}

// basePath picks the call's base path, the configured default, or ".".
func basePath(value, def string) (string, error) {
	if value == "" {
		value = def
	}
	return project.ResolveBasePath(value)
}

// setupGuidance tells the assistant what to do after a bootstrap.
func setupGuidance(result *project.Result) string {
	rulesNames := make([]string, 0, len(result.RulesFiles))
	for _, path := range result.RulesFiles {
		if rel, err := filepath.Rel(result.ProjectPath, path); err == nil {
			rulesNames = append(rulesNames, rel)
		} else {
			rulesNames = append(rulesNames, path)
		}
	}
	return fmt.Sprintf(
		"Project %s is ready at %s. Read the teaching rules in %s, then study the original code in %s "+
			"and guide the user step by step while they write their own version in %s. "+
			"Ask the user to open %s in their editor to continue.",
		result.ProjectName, result.ProjectPath, strings.Join(rulesNames, ", "),
		result.OriginalPath, result.WorkspacePath, result.ProjectPath)
}
