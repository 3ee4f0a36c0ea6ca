package mcp

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewServer_ListsTools(t *testing.T) {
	ctx := context.Background()
	deps := makeDeps(t, stubCloner)
	server := NewServer("test", *deps)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	defer func() { _ = serverSession.Close() }()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "test"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer func() { _ = session.Close() }()

	tools, err := session.ListTools(ctx, nil)
	require.NoError(t, err)

	names := make([]string, 0, len(tools.Tools))
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{
		"clone_and_setup_project",
		"start_to_build_my_own_x",
		"create_rules_file",
		"list_projects",
		"list_editors",
	}, names)
}

func TestNewServer_ToolErrorKeepsSessionAlive(t *testing.T) {
	ctx := context.Background()
	deps := makeDeps(t, stubCloner)
	deps.BasePath = t.TempDir()
	server := NewServer("test", *deps)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	defer func() { _ = serverSession.Close() }()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "test"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer func() { _ = session.Close() }()

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "start_to_build_my_own_x",
		Arguments: map[string]any{"github_url": "not-a-repo"},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Nil(t, res.StructuredContent, "error results carry only the error text")

	res, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "start_to_build_my_own_x",
		Arguments: map[string]any{"github_url": widgetURL},
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.NotNil(t, res.StructuredContent)

	res, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "start_to_build_my_own_x",
		Arguments: map[string]any{"github_url": widgetURL},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError, "second bootstrap of the same project conflicts")
	assert.Nil(t, res.StructuredContent)
}

func TestNewServer_Defaults(t *testing.T) {
	server := NewServer("test", Deps{})
	assert.NotNil(t, server)
}
