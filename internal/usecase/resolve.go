package usecase

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gnewsmcp/gnewsmcp/internal/domain"
)

// Result cap bounds. Raw values outside the range are clamped, not
// rejected.
const (
	minResults = 1
	maxResults = 100
)

// ValidationError reports a malformed or missing tool argument.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Field, e.Reason)
}

// Defaults holds the fallback values applied when a tool call omits an
// argument.
type Defaults struct {
	Language   string
	Country    string
	Period     string
	MaxResults int
}

// Resolver validates and defaults raw argument bags into typed queries.
// Loosely-typed maps stop here; everything downstream trusts the
// resolved form.
type Resolver struct {
	defaults Defaults
	excludes []string
	logger   *slog.Logger
}

// NewResolver creates a Resolver. globalExcludes are domains excluded
// from every query, merged with per-call exclusions.
func NewResolver(defaults Defaults, globalExcludes []string, logger *slog.Logger) *Resolver {
	return &Resolver{
		defaults: defaults,
		excludes: globalExcludes,
		logger:   logger.With("component", "resolver"),
	}
}

// Resolve produces a domain.Query for the named tool, or a
// ValidationError naming the offending argument. Out-of-range result
// caps and unrecognized locale codes degrade to defaults rather than
// failing the call.
func (r *Resolver) Resolve(tool string, args map[string]any) (domain.Query, error) {
	q := domain.Query{
		Language:        r.language(args),
		Country:         r.country(args),
		MaxResults:      clampResults(intArg(args, "max_results", r.defaults.MaxResults)),
		ExcludeWebsites: r.excludeWebsites(args),
	}

	switch tool {
	case ToolSearchNews:
		keyword, err := requiredArg(args, "keyword")
		if err != nil {
			return domain.Query{}, err
		}
		q.Kind = domain.KindKeyword
		q.Keyword = keyword
		q.Period = strings.TrimSpace(stringArg(args, "period", r.defaults.Period))

	case ToolTopNews:
		q.Kind = domain.KindTop

	case ToolNewsByTopic:
		raw, err := requiredArg(args, "topic")
		if err != nil {
			return domain.Query{}, err
		}
		topic, ok := domain.CanonicalTopic(raw)
		if !ok {
			return domain.Query{}, &ValidationError{
				Field:  "topic",
				Reason: fmt.Sprintf("unsupported topic %q, valid topics: %s", raw, strings.Join(domain.TopicNames(), ", ")),
			}
		}
		q.Kind = domain.KindTopic
		q.Topic = topic

	case ToolNewsByLocation:
		location, err := requiredArg(args, "location")
		if err != nil {
			return domain.Query{}, err
		}
		q.Kind = domain.KindLocation
		q.Location = location
		// Locations are self-describing; the country parameter is not
		// sent for geo feeds.
		q.Country = ""

	case ToolNewsBySite:
		site, err := requiredArg(args, "site")
		if err != nil {
			return domain.Query{}, err
		}
		q.Kind = domain.KindSite
		q.Site = strings.ToLower(site)

	default:
		return domain.Query{}, fmt.Errorf("%w: %s", ErrUnknownTool, tool)
	}

	return q, nil
}

func (r *Resolver) language(args map[string]any) string {
	raw := strings.TrimSpace(stringArg(args, "language", ""))
	if raw == "" {
		return r.defaults.Language
	}
	if code, ok := domain.LookupLanguage(raw); ok {
		return code
	}
	r.logger.Debug("Unrecognized language, using default.",
		slog.String("language", raw), slog.String("default", r.defaults.Language))
	return r.defaults.Language
}

func (r *Resolver) country(args map[string]any) string {
	raw := strings.TrimSpace(stringArg(args, "country", ""))
	if raw == "" {
		return r.defaults.Country
	}
	if code, ok := domain.LookupCountry(raw); ok {
		return code
	}
	r.logger.Debug("Unrecognized country, using default.",
		slog.String("country", raw), slog.String("default", r.defaults.Country))
	return r.defaults.Country
}

// excludeWebsites merges the resolver-wide exclusion list with the
// comma-separated per-call one into a deduplicated, lowercased set.
func (r *Resolver) excludeWebsites(args map[string]any) []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(raw string) {
		site := strings.ToLower(strings.TrimSpace(raw))
		if site == "" {
			return
		}
		if _, dup := seen[site]; dup {
			return
		}
		seen[site] = struct{}{}
		out = append(out, site)
	}
	for _, d := range r.excludes {
		add(d)
	}
	for _, d := range strings.Split(stringArg(args, "exclude_websites", ""), ",") {
		add(d)
	}
	return out
}

func clampResults(n int) int {
	if n < minResults {
		return minResults
	}
	if n > maxResults {
		return maxResults
	}
	return n
}

func requiredArg(args map[string]any, field string) (string, error) {
	v := strings.TrimSpace(stringArg(args, field, ""))
	if v == "" {
		return "", &ValidationError{Field: field, Reason: "required"}
	}
	return v, nil
}

func stringArg(args map[string]any, key, def string) string {
	v, ok := args[key]
	if !ok || v == nil {
		return def
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// intArg coerces the loosely-typed scalars JSON decoding produces.
func intArg(args map[string]any, key string, def int) int {
	switch v := args[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return def
}
