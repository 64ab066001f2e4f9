package usecase

import (
	"context"
	"errors"

	"github.com/gnewsmcp/gnewsmcp/internal/domain"
)

// Tool names exposed over MCP.
const (
	ToolSearchNews         = "search_news"
	ToolTopNews            = "get_top_news"
	ToolNewsByTopic        = "get_news_by_topic"
	ToolNewsByLocation     = "get_news_by_location"
	ToolNewsBySite         = "get_news_by_site"
	ToolAvailableCountries = "get_available_countries"
	ToolAvailableLanguages = "get_available_languages"
)

// ToolNames lists every tool in registration order.
func ToolNames() []string {
	return []string{
		ToolSearchNews,
		ToolTopNews,
		ToolNewsByTopic,
		ToolNewsByLocation,
		ToolNewsBySite,
		ToolAvailableCountries,
		ToolAvailableLanguages,
	}
}

// Standard errors returned by use cases and adapters.
var ErrUnknownTool = errors.New("unknown tool")

// NewsSource is the outbound port to the news search collaborator.
// Implementations must return records in upstream order and signal
// failure distinctly from an empty result set (nil error, empty slice).
type NewsSource interface {
	Search(ctx context.Context, q domain.Query) ([]domain.RawArticle, error)
}
