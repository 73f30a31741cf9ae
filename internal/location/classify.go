package location

import (
	"regexp"
	"strings"
)

type QueryKind string

const (
	KindZip        QueryKind = "zip"
	KindState      QueryKind = "state"
	KindCity       QueryKind = "city"
	KindLawyerName QueryKind = "lawyer_name"
)

// Classification is the parsed form of a free-text search query.
type Classification struct {
	Kind    QueryKind
	ZipCode string
	City    string
	State   string // postal abbreviation when recognized
}

var (
	zipPattern        = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	digitsOnlyPattern = regexp.MustCompile(`^\d+$`)
)

// Classify decides whether a trimmed query is a zip code, state, city, or
// lawyer name. Heuristics are ordered; the first match wins. Callers that get
// KindLawyerName back should attempt a city search first, since multi-word
// city names ("Los Angeles") are indistinguishable from person names here.
func Classify(q string) Classification {
	q = strings.TrimSpace(q)
	if q == "" {
		return Classification{Kind: KindLawyerName}
	}

	if zipPattern.MatchString(q) {
		return Classification{Kind: KindZip, ZipCode: q[:5]}
	}

	if abbr, ok := StateAbbreviationFor(q); ok {
		return Classification{Kind: KindState, State: abbr}
	}

	// "City, ST" or "City, State Name"
	if city, state, ok := splitCityState(q); ok {
		return Classification{Kind: KindCity, City: city, State: state}
	}

	if digitsOnlyPattern.MatchString(q) {
		return Classification{Kind: KindZip, ZipCode: q}
	}

	words := strings.Fields(q)
	if len(words) == 1 {
		return Classification{Kind: KindCity, City: q}
	}

	// "Kansas City MO" style: trailing token is a state code.
	last := words[len(words)-1]
	if len(last) == 2 && IsStateAbbreviation(last) {
		return Classification{
			Kind:  KindCity,
			City:  strings.Join(words[:len(words)-1], " "),
			State: strings.ToUpper(last),
		}
	}

	return Classification{Kind: KindLawyerName}
}

func splitCityState(q string) (city, state string, ok bool) {
	idx := strings.LastIndex(q, ",")
	if idx < 0 {
		return "", "", false
	}
	city = strings.TrimSpace(q[:idx])
	statePart := strings.TrimSpace(q[idx+1:])
	if city == "" || statePart == "" {
		return "", "", false
	}
	abbr, recognized := StateAbbreviationFor(statePart)
	if !recognized {
		return "", "", false
	}
	return city, abbr, true
}
