package domain

import (
	"sort"
	"strings"
)

// LanguageTable maps a human-readable language name to the code the
// upstream feed accepts. Mirrors the languages Google News publishes
// editions for. Read-only after init.
var LanguageTable = map[string]string{
	"english":             "en",
	"indonesian":          "id",
	"czech":               "cs",
	"german":              "de",
	"spanish":             "es-419",
	"french":              "fr",
	"italian":             "it",
	"latvian":             "lv",
	"lithuanian":          "lt",
	"hungarian":           "hu",
	"dutch":               "nl",
	"norwegian":           "no",
	"polish":              "pl",
	"portuguese brasil":   "pt-419",
	"portuguese portugal": "pt-150",
	"romanian":            "ro",
	"slovak":              "sk",
	"slovenian":           "sl",
	"swedish":             "sv",
	"vietnamese":          "vi",
	"turkish":             "tr",
	"greek":               "el",
	"bulgarian":           "bg",
	"russian":             "ru",
	"serbian":             "sr",
	"ukrainian":           "uk",
	"hebrew":              "he",
	"arabic":              "ar",
	"marathi":             "mr",
	"hindi":               "hi",
	"bengali":             "bn",
	"tamil":               "ta",
	"telugu":              "te",
	"malayalam":           "ml",
	"thai":                "th",
	"chinese simplified":  "zh-Hans",
	"chinese traditional": "zh-Hant",
	"japanese":            "ja",
	"korean":              "ko",
}

// CountryTable maps a country name to its upstream country code.
// Read-only after init.
var CountryTable = map[string]string{
	"Australia":            "AU",
	"Botswana":             "BW",
	"Canada":               "CA",
	"Ethiopia":             "ET",
	"Ghana":                "GH",
	"India":                "IN",
	"Indonesia":            "ID",
	"Ireland":              "IE",
	"Israel":               "IL",
	"Kenya":                "KE",
	"Latvia":               "LV",
	"Malaysia":             "MY",
	"Namibia":              "NA",
	"New Zealand":          "NZ",
	"Nigeria":              "NG",
	"Pakistan":             "PK",
	"Philippines":          "PH",
	"Singapore":            "SG",
	"South Africa":         "ZA",
	"Tanzania":             "TZ",
	"Uganda":               "UG",
	"United Kingdom":       "GB",
	"United States":        "US",
	"Zimbabwe":             "ZW",
	"Czech Republic":       "CZ",
	"Germany":              "DE",
	"Austria":              "AT",
	"Switzerland":          "CH",
	"Argentina":            "AR",
	"Chile":                "CL",
	"Colombia":             "CO",
	"Cuba":                 "CU",
	"Mexico":               "MX",
	"Peru":                 "PE",
	"Venezuela":            "VE",
	"Belgium":              "BE",
	"France":               "FR",
	"Morocco":              "MA",
	"Senegal":              "SN",
	"Italy":                "IT",
	"Lithuania":            "LT",
	"Hungary":              "HU",
	"Netherlands":          "NL",
	"Norway":               "NO",
	"Poland":               "PL",
	"Brazil":               "BR",
	"Portugal":             "PT",
	"Romania":              "RO",
	"Slovakia":             "SK",
	"Slovenia":             "SI",
	"Sweden":               "SE",
	"Vietnam":              "VN",
	"Turkey":               "TR",
	"Greece":               "GR",
	"Bulgaria":             "BG",
	"Russia":               "RU",
	"Ukraine":              "UA",
	"Serbia":               "RS",
	"United Arab Emirates": "AE",
	"Saudi Arabia":         "SA",
	"Lebanon":              "LB",
	"Egypt":                "EG",
	"Bangladesh":           "BD",
	"Thailand":             "TH",
	"China":                "CN",
	"Taiwan":               "TW",
	"Hong Kong":            "HK",
	"Japan":                "JP",
	"Republic of Korea":    "KR",
}

// TopicSet is the fixed set of topic feeds the upstream exposes.
var TopicSet = map[string]struct{}{
	"WORLD":         {},
	"NATION":        {},
	"BUSINESS":      {},
	"TECHNOLOGY":    {},
	"ENTERTAINMENT": {},
	"SPORTS":        {},
	"SCIENCE":       {},
	"HEALTH":        {},
	"POLITICS":      {},
	"CELEBRITIES":   {},
}

// Lowercased name-or-code lookup indexes, built once at startup and
// never mutated afterwards.
var (
	languageIndex = buildIndex(LanguageTable)
	countryIndex  = buildIndex(CountryTable)
)

func buildIndex(table map[string]string) map[string]string {
	idx := make(map[string]string, len(table)*2)
	for name, code := range table {
		idx[strings.ToLower(name)] = code
		idx[strings.ToLower(code)] = code
	}
	return idx
}

// LookupLanguage resolves a language given either its name or code.
func LookupLanguage(s string) (string, bool) {
	code, ok := languageIndex[strings.ToLower(strings.TrimSpace(s))]
	return code, ok
}

// LookupCountry resolves a country given either its name or code.
func LookupCountry(s string) (string, bool) {
	code, ok := countryIndex[strings.ToLower(strings.TrimSpace(s))]
	return code, ok
}

// CanonicalTopic upper-cases a topic and reports whether it is one of
// the supported topic feeds.
func CanonicalTopic(s string) (string, bool) {
	t := strings.ToUpper(strings.TrimSpace(s))
	_, ok := TopicSet[t]
	return t, ok
}

// TopicNames returns the supported topics in sorted order.
func TopicNames() []string {
	names := make([]string, 0, len(TopicSet))
	for t := range TopicSet {
		names = append(names, t)
	}
	sort.Strings(names)
	return names
}
