package location

import "strings"

// stateAbbreviations maps full US state names (lowercased) to their postal
// abbreviations. Used by the classifier to recognize state queries without a
// database round trip.
var stateAbbreviations = map[string]string{
	"alabama":              "AL",
	"alaska":               "AK",
	"arizona":              "AZ",
	"arkansas":             "AR",
	"california":           "CA",
	"colorado":             "CO",
	"connecticut":          "CT",
	"delaware":             "DE",
	"district of columbia": "DC",
	"florida":              "FL",
	"georgia":              "GA",
	"hawaii":               "HI",
	"idaho":                "ID",
	"illinois":             "IL",
	"indiana":              "IN",
	"iowa":                 "IA",
	"kansas":               "KS",
	"kentucky":             "KY",
	"louisiana":            "LA",
	"maine":                "ME",
	"maryland":             "MD",
	"massachusetts":        "MA",
	"michigan":             "MI",
	"minnesota":            "MN",
	"mississippi":          "MS",
	"missouri":             "MO",
	"montana":              "MT",
	"nebraska":             "NE",
	"nevada":               "NV",
	"new hampshire":        "NH",
	"new jersey":           "NJ",
	"new mexico":           "NM",
	"new york":             "NY",
	"north carolina":       "NC",
	"north dakota":         "ND",
	"ohio":                 "OH",
	"oklahoma":             "OK",
	"oregon":               "OR",
	"pennsylvania":         "PA",
	"rhode island":         "RI",
	"south carolina":       "SC",
	"south dakota":         "SD",
	"tennessee":            "TN",
	"texas":                "TX",
	"utah":                 "UT",
	"vermont":              "VT",
	"virginia":             "VA",
	"washington":           "WA",
	"west virginia":        "WV",
	"wisconsin":            "WI",
	"wyoming":              "WY",
}

var validAbbreviations = func() map[string]bool {
	m := make(map[string]bool, len(stateAbbreviations))
	for _, abbr := range stateAbbreviations {
		m[abbr] = true
	}
	return m
}()

// IsStateAbbreviation reports whether s is a valid two-letter state code.
func IsStateAbbreviation(s string) bool {
	return validAbbreviations[strings.ToUpper(strings.TrimSpace(s))]
}

// StateAbbreviationFor returns the postal abbreviation for a state name or
// abbreviation, and whether it was recognized.
func StateAbbreviationFor(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if IsStateAbbreviation(s) {
		return strings.ToUpper(s), true
	}
	abbr, ok := stateAbbreviations[strings.ToLower(s)]
	return abbr, ok
}
