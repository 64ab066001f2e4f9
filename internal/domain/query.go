package domain

// QueryKind selects which upstream feed a resolved query targets.
type QueryKind string

const (
	KindKeyword  QueryKind = "keyword"
	KindTop      QueryKind = "top"
	KindTopic    QueryKind = "topic"
	KindLocation QueryKind = "location"
	KindSite     QueryKind = "site"
)

// Query is the fully resolved, validated form of a tool's argument bag.
// Among Keyword/Topic/Location/Site, only the field matching Kind is
// populated. Language and Country always hold canonical codes, and
// MaxResults is always within [1,100].
type Query struct {
	Kind     QueryKind
	Keyword  string
	Topic    string
	Location string
	Site     string

	Language string
	Country  string
	// Period is a free-form lookback token (e.g. "7d", "12h"). It is
	// interpreted by the upstream source, not validated here, and is
	// only set for keyword queries.
	Period     string
	MaxResults int

	// ExcludeWebsites holds lowercased domains whose articles are
	// dropped from the results.
	ExcludeWebsites []string
}
