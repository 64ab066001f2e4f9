package mcptools

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnewsmcp/gnewsmcp/internal/domain"
	"github.com/gnewsmcp/gnewsmcp/internal/usecase"
	"github.com/gnewsmcp/gnewsmcp/internal/version"
)

// nopInvoker satisfies Invoker for registration tests.
type nopInvoker struct{}

func (nopInvoker) Invoke(ctx context.Context, tool string, args map[string]any) domain.Envelope {
	return domain.Success(nil)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestToolDefinitions_CoverEveryTool(t *testing.T) {
	tools := toolDefinitions()
	require.Len(t, tools, 7)

	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.Name)
	}
	assert.Equal(t, usecase.ToolNames(), names)
}

func TestRegister_AddsAllTools(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	srv := server.NewMCPServer("test", "0.0.0")
	Register(srv, nopInvoker{}, testLogger())

	raw := srv.HandleMessage(context.Background(),
		json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	body, err := json.Marshal(raw)
	require.NoError(err)

	var resp struct {
		Result struct {
			Tools []struct {
				Name string `json:"name"`
			} `json:"tools"`
		} `json:"result"`
	}
	require.NoError(json.Unmarshal(body, &resp))

	names := make([]string, 0, len(resp.Result.Tools))
	for _, tool := range resp.Result.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(usecase.ToolNames(), names)
}

func TestConfigResource_ListsCapabilities(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	res := configResource()
	assert.Equal(ConfigResourceURI, res.URI)
	assert.Equal("application/json", res.MIMEType)

	contents, err := serveConfigResource(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(err)
	require.Len(contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(ok, "expected text resource contents")
	assert.Equal(ConfigResourceURI, text.URI)
	assert.Equal("application/json", text.MIMEType)

	var doc struct {
		Server       string   `json:"server"`
		Version      string   `json:"version"`
		Capabilities []string `json:"capabilities"`
	}
	require.NoError(json.Unmarshal([]byte(text.Text), &doc))
	assert.Equal(version.ServerName, doc.Server)
	assert.Equal(version.Version, doc.Version)
	assert.Equal(usecase.ToolNames(), doc.Capabilities)
	assert.Len(doc.Capabilities, 7)
}
