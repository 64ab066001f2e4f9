package domain

import "encoding/json"

// Envelope statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope is the fixed-shape wrapper returned from every tool
// invocation. Exactly one payload field is populated, selected by the
// constructor that built it; MarshalJSON emits only that variant.
type Envelope struct {
	Status    string
	Message   string
	Results   []Article
	Countries map[string]string
	Languages map[string]string
}

// Success wraps an ordered result sequence. A nil slice marshals as an
// empty array, never null.
func Success(results []Article) Envelope {
	if results == nil {
		results = []Article{}
	}
	return Envelope{Status: StatusSuccess, Results: results}
}

// Failure wraps a human-readable error message.
func Failure(message string) Envelope {
	return Envelope{Status: StatusError, Message: message}
}

// CountryListing returns the static country table as a success envelope.
func CountryListing() Envelope {
	return Envelope{Status: StatusSuccess, Countries: CountryTable}
}

// LanguageListing returns the static language table as a success envelope.
func LanguageListing() Envelope {
	return Envelope{Status: StatusSuccess, Languages: LanguageTable}
}

func (e Envelope) MarshalJSON() ([]byte, error) {
	switch {
	case e.Status == StatusError:
		return json.Marshal(struct {
			Status  string `json:"status"`
			Message string `json:"message"`
		}{e.Status, e.Message})
	case e.Countries != nil:
		return json.Marshal(struct {
			Status    string            `json:"status"`
			Countries map[string]string `json:"countries"`
		}{e.Status, e.Countries})
	case e.Languages != nil:
		return json.Marshal(struct {
			Status    string            `json:"status"`
			Languages map[string]string `json:"languages"`
		}{e.Status, e.Languages})
	default:
		results := e.Results
		if results == nil {
			results = []Article{}
		}
		return json.Marshal(struct {
			Status  string    `json:"status"`
			Results []Article `json:"results"`
		}{e.Status, results})
	}
}
