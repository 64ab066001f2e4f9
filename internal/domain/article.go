package domain

// Publisher identifies the outlet that published an article.
type Publisher struct {
	Href  string `json:"href"`
	Title string `json:"title"`
}

// RawArticle is a record as returned by the news source, prior to
// normalization. Any field may be empty.
type RawArticle struct {
	Title       string
	Description string
	Link        string
	Published   string
	Publisher   Publisher
}

// Article is the stable output shape. Every field is always present in
// the serialized form; missing source fields become empty strings.
type Article struct {
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	PublishedDate string    `json:"published_date"`
	URL           string    `json:"url"`
	Publisher     Publisher `json:"publisher"`
}
