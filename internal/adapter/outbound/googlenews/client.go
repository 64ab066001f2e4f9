package googlenews

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/mmcdole/gofeed/rss"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/gnewsmcp/gnewsmcp/internal/domain"
)

// DefaultBaseURL is the Google News RSS root.
const DefaultBaseURL = "https://news.google.com/rss"

// Google News rejects requests without a browser-ish user agent.
const userAgent = "Mozilla/5.0 (compatible; gnewsmcp/1.0; +https://github.com/gnewsmcp/gnewsmcp)"

// Feed IDs for topics that have no named headline section upstream.
var topicFeedIDs = map[string]string{
	"POLITICS":    "CAAqIggKIhxDQkFTRHdvSkwyMHZNRFZ4ZERBU0FtVnVLQUFQAQ",
	"CELEBRITIES": "CAAqJggKIiBDQkFTRWdvSUwyMHZNRFZxYUdjU0FtVnVHZ0pWVXlnQVAB",
}

// Client queries the Google News RSS endpoints. It implements
// usecase.NewsSource. The raw RSS 2.0 parser is used (rather than the
// universal gofeed one) because the publisher rides in the <source>
// element, which only the RSS item shape exposes.
type Client struct {
	httpClient *http.Client
	parser     *rss.Parser
	baseURL    string
	logger     *slog.Logger
	tracer     trace.Tracer
}

// New creates a Client. A nil httpClient falls back to
// http.DefaultClient; an empty baseURL falls back to DefaultBaseURL.
func New(httpClient *http.Client, baseURL string, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: httpClient,
		parser:     &rss.Parser{},
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger.With("component", "googlenews"),
		tracer:     otel.Tracer("googlenews"),
	}
}

// Search fetches the feed matching the query kind and returns its
// records in upstream order. An empty feed yields an empty slice and a
// nil error.
func (c *Client) Search(ctx context.Context, q domain.Query) ([]domain.RawArticle, error) {
	feedURL, err := c.feedURL(q)
	if err != nil {
		return nil, err
	}

	ctx, span := c.tracer.Start(ctx, "googlenews.Search",
		trace.WithAttributes(attribute.String("query.kind", string(q.Kind))))
	defer span.End()

	log := c.logger.With(slog.String("kind", string(q.Kind)))
	log.Debug("Fetching feed.", slog.String("url", feedURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("feed request returned status %d", resp.StatusCode)
		span.RecordError(err)
		return nil, err
	}

	feed, err := c.parser.Parse(resp.Body)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	articles := make([]domain.RawArticle, 0, len(feed.Items))
	for _, item := range feed.Items {
		articles = append(articles, rawArticle(item))
	}
	log.Debug("Fetched feed.", slog.Int("items", len(articles)))
	return articles, nil
}

// feedURL maps a resolved query to exactly one upstream feed URL.
func (c *Client) feedURL(q domain.Query) (string, error) {
	params := url.Values{}
	params.Set("hl", q.Language)
	if q.Kind != domain.KindLocation {
		// Geo feeds are self-describing and take no country parameter.
		params.Set("gl", q.Country)
		params.Set("ceid", q.Country+":"+q.Language)
	}

	switch q.Kind {
	case domain.KindKeyword:
		query := q.Keyword
		if q.Period != "" {
			query += " when:" + q.Period
		}
		params.Set("q", query)
		return c.baseURL + "/search?" + params.Encode(), nil
	case domain.KindTop:
		return c.baseURL + "?" + params.Encode(), nil
	case domain.KindTopic:
		if id, ok := topicFeedIDs[q.Topic]; ok {
			return c.baseURL + "/topics/" + id + "?" + params.Encode(), nil
		}
		return c.baseURL + "/headlines/section/topic/" + q.Topic + "?" + params.Encode(), nil
	case domain.KindLocation:
		return c.baseURL + "/headlines/section/geo/" + url.PathEscape(q.Location) + "?" + params.Encode(), nil
	case domain.KindSite:
		params.Set("q", "site:"+q.Site)
		return c.baseURL + "/search?" + params.Encode(), nil
	default:
		return "", fmt.Errorf("unsupported query kind: %q", q.Kind)
	}
}

func rawArticle(item *rss.Item) domain.RawArticle {
	a := domain.RawArticle{
		Title:       item.Title,
		Description: item.Description,
		Link:        item.Link,
		Published:   item.PubDate,
	}
	if item.Source != nil {
		a.Publisher = domain.Publisher{Href: item.Source.URL, Title: item.Source.Title}
	}
	return a
}
