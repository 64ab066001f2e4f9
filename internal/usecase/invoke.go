package usecase

import (
	"context"
	"log/slog"

	"github.com/gnewsmcp/gnewsmcp/internal/domain"
)

// NewsUseCase is the single entry point for tool invocations: it
// resolves the argument bag, dispatches one query to the news source,
// and normalizes the returned records into an envelope.
type NewsUseCase struct {
	source   NewsSource
	resolver *Resolver
	logger   *slog.Logger
}

// NewNewsUseCase creates a new NewsUseCase.
func NewNewsUseCase(source NewsSource, resolver *Resolver, logger *slog.Logger) *NewsUseCase {
	return &NewsUseCase{
		source:   source,
		resolver: resolver,
		logger:   logger.With("usecase", "News"),
	}
}

// Invoke executes the named tool against the argument bag. Every fault
// is converted to an error envelope; no error escapes. An empty result
// set is a success, not an error.
func (uc *NewsUseCase) Invoke(ctx context.Context, tool string, args map[string]any) domain.Envelope {
	log := uc.logger.With(slog.String("tool", tool))

	// The table tools bypass dispatch and normalization entirely.
	switch tool {
	case ToolAvailableCountries:
		return domain.CountryListing()
	case ToolAvailableLanguages:
		return domain.LanguageListing()
	}

	q, err := uc.resolver.Resolve(tool, args)
	if err != nil {
		log.Warn("Rejected tool arguments.", slog.Any("error", err))
		return domain.Failure(err.Error())
	}

	log.Info("Dispatching news query.",
		slog.String("kind", string(q.Kind)),
		slog.String("language", q.Language),
		slog.Int("max_results", q.MaxResults))

	raw, err := uc.source.Search(ctx, q)
	if err != nil {
		// The caller gets a generic message; the cause stays in the log.
		log.Error("News source call failed.", slog.Any("error", err))
		return domain.Failure("news source request failed")
	}

	results := Normalize(raw, q)
	log.Info("News query completed.",
		slog.Int("fetched", len(raw)),
		slog.Int("results", len(results)))
	return domain.Success(results)
}
