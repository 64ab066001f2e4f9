package mcptools

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gnewsmcp/gnewsmcp/internal/domain"
	"github.com/gnewsmcp/gnewsmcp/internal/usecase"
	"github.com/gnewsmcp/gnewsmcp/internal/version"
)

// ConfigResourceURI identifies the server-configuration MCP resource.
const ConfigResourceURI = "gnews://config"

// Invoker is the inbound port the tool handlers call into.
type Invoker interface {
	Invoke(ctx context.Context, tool string, args map[string]any) domain.Envelope
}

// Register declares the news tools and the configuration resource on
// the MCP server, binding each tool to the invoker.
func Register(s *server.MCPServer, invoker Invoker, logger *slog.Logger) {
	log := logger.With("component", "mcptools")

	tools := toolDefinitions()
	for _, tool := range tools {
		s.AddTool(tool, Handler(invoker, tool.Name, log))
	}
	s.AddResource(configResource(), serveConfigResource)

	log.Info("Registered MCP tools.", slog.Int("count", len(tools)))
}

// Handler builds the mcp-go handler for one tool. The envelope is
// rendered as indented JSON text; invocation faults surface inside the
// envelope, never as a protocol error.
func Handler(invoker Invoker, tool string, log *slog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		env := invoker.Invoke(ctx, tool, req.GetArguments())
		body, err := json.MarshalIndent(env, "", "  ")
		if err != nil {
			log.Error("Failed to encode envelope.", slog.String("tool", tool), slog.Any("error", err))
			return mcp.NewToolResultError("failed to encode response"), nil
		}
		return mcp.NewToolResultText(string(body)), nil
	}
}

func toolDefinitions() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool(usecase.ToolSearchNews,
			mcp.WithDescription("Search for news articles by keyword."),
			mcp.WithString("keyword",
				mcp.Required(),
				mcp.Description("Search keyword or phrase."),
			),
			languageOption(),
			countryOption(),
			mcp.WithString("period",
				mcp.Description("Lookback window, e.g. 7d, 12h, 1m, 1y."),
				mcp.DefaultString("7d"),
			),
			maxResultsOption(),
			excludeWebsitesOption(),
		),
		mcp.NewTool(usecase.ToolTopNews,
			mcp.WithDescription("Get top news headlines."),
			languageOption(),
			countryOption(),
			maxResultsOption(),
			excludeWebsitesOption(),
		),
		mcp.NewTool(usecase.ToolNewsByTopic,
			mcp.WithDescription("Get news for a topic category (WORLD, NATION, BUSINESS, TECHNOLOGY, ENTERTAINMENT, SPORTS, SCIENCE, HEALTH, POLITICS, CELEBRITIES)."),
			mcp.WithString("topic",
				mcp.Required(),
				mcp.Description("Topic category, case-insensitive."),
			),
			languageOption(),
			countryOption(),
			maxResultsOption(),
			excludeWebsitesOption(),
		),
		mcp.NewTool(usecase.ToolNewsByLocation,
			mcp.WithDescription("Get news for a location (city, state or country name)."),
			mcp.WithString("location",
				mcp.Required(),
				mcp.Description("Location to fetch news for."),
			),
			languageOption(),
			maxResultsOption(),
			excludeWebsitesOption(),
		),
		mcp.NewTool(usecase.ToolNewsBySite,
			mcp.WithDescription("Get news published by a specific website."),
			mcp.WithString("site",
				mcp.Required(),
				mcp.Description("Website domain, e.g. bbc.com."),
			),
			languageOption(),
			countryOption(),
			maxResultsOption(),
			excludeWebsitesOption(),
		),
		mcp.NewTool(usecase.ToolAvailableCountries,
			mcp.WithDescription("List the supported countries and their codes."),
		),
		mcp.NewTool(usecase.ToolAvailableLanguages,
			mcp.WithDescription("List the supported languages and their codes."),
		),
	}
}

func languageOption() mcp.ToolOption {
	return mcp.WithString("language",
		mcp.Description("Language name or code, e.g. english or en."),
		mcp.DefaultString("en"),
	)
}

func countryOption() mcp.ToolOption {
	return mcp.WithString("country",
		mcp.Description("Country name or code, e.g. United States or US."),
		mcp.DefaultString("US"),
	)
}

func maxResultsOption() mcp.ToolOption {
	return mcp.WithNumber("max_results",
		mcp.Description("Maximum number of articles to return (1-100)."),
		mcp.DefaultNumber(10),
		mcp.Min(1),
		mcp.Max(100),
	)
}

func excludeWebsitesOption() mcp.ToolOption {
	return mcp.WithString("exclude_websites",
		mcp.Description("Comma-separated domains to drop from the results."),
	)
}

func configResource() mcp.Resource {
	return mcp.NewResource(ConfigResourceURI, "Server configuration",
		mcp.WithResourceDescription("Server name, version and capability list."),
		mcp.WithMIMEType("application/json"),
	)
}

func serveConfigResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	doc := struct {
		Server       string   `json:"server"`
		Version      string   `json:"version"`
		Capabilities []string `json:"capabilities"`
	}{
		Server:       version.ServerName,
		Version:      version.Version,
		Capabilities: usecase.ToolNames(),
	}
	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      ConfigResourceURI,
			MIMEType: "application/json",
			Text:     string(body),
		},
	}, nil
}
