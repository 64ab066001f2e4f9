package usecase

import (
	"net/url"
	"strings"

	"github.com/gnewsmcp/gnewsmcp/internal/domain"
)

// Normalize converts raw source records into the stable output shape,
// drops articles from excluded websites, and caps the sequence at the
// query's result limit. Source ordering is preserved; the cap applies
// after exclusion, so exclusions reduce the effective yield rather
// than being backfilled.
func Normalize(raw []domain.RawArticle, q domain.Query) []domain.Article {
	out := make([]domain.Article, 0, len(raw))
	for _, r := range raw {
		if q.MaxResults > 0 && len(out) == q.MaxResults {
			break
		}
		a := domain.Article{
			Title:         r.Title,
			Description:   r.Description,
			PublishedDate: r.Published,
			URL:           r.Link,
			Publisher:     r.Publisher,
		}
		if excluded(a, q.ExcludeWebsites) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// excluded reports whether the article's publisher href or URL host
// matches any excluded domain, exactly or as a dot-suffix.
func excluded(a domain.Article, domains []string) bool {
	if len(domains) == 0 {
		return false
	}
	hosts := [2]string{hostOf(a.Publisher.Href), hostOf(a.URL)}
	for _, d := range domains {
		for _, h := range hosts {
			if h == "" {
				continue
			}
			if h == d || strings.HasSuffix(h, "."+d) {
				return true
			}
		}
	}
	return false
}

// hostOf extracts the lowercased host from a URL, tolerating bare
// domains with or without a path. The leading "www." label is dropped
// so "www.b.com" matches an exclusion of "b.com".
func hostOf(raw string) string {
	if raw == "" {
		return ""
	}
	host := raw
	if u, err := url.Parse(raw); err == nil && u.Host != "" {
		host = u.Hostname()
	} else if i := strings.IndexByte(host, '/'); i >= 0 {
		// Scheme-less values like "b.com/news" parse with an empty
		// Host; keep only the part before the path.
		host = host[:i]
	}
	return strings.TrimPrefix(strings.ToLower(host), "www.")
}
