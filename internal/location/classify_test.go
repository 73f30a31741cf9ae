package location

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  Classification
	}{
		{"five digit zip", "30309", Classification{Kind: KindZip, ZipCode: "30309"}},
		{"zip plus four keeps five digits", "30309-1234", Classification{Kind: KindZip, ZipCode: "30309"}},
		{"short digits still zip", "303", Classification{Kind: KindZip, ZipCode: "303"}},
		{"state abbreviation", "GA", Classification{Kind: KindState, State: "GA"}},
		{"state abbreviation lowercase", "ga", Classification{Kind: KindState, State: "GA"}},
		{"state full name", "Georgia", Classification{Kind: KindState, State: "GA"}},
		{"city comma state", "Atlanta, GA", Classification{Kind: KindCity, City: "Atlanta", State: "GA"}},
		{"city comma state name", "Atlanta, Georgia", Classification{Kind: KindCity, City: "Atlanta", State: "GA"}},
		{"city trailing state code", "Kansas City MO", Classification{Kind: KindCity, City: "Kansas City", State: "MO"}},
		{"single word is city", "Atlanta", Classification{Kind: KindCity, City: "Atlanta"}},
		{"two words fall to lawyer name", "Jane Smith", Classification{Kind: KindLawyerName}},
		{"comma with unknown state is lawyer name", "Smith, Jane", Classification{Kind: KindLawyerName}},
		{"empty", "", Classification{Kind: KindLawyerName}},
		{"whitespace only", "   ", Classification{Kind: KindLawyerName}},
		{"padded zip", "  30309  ", Classification{Kind: KindZip, ZipCode: "30309"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.query)
			if got != tc.want {
				t.Fatalf("Classify(%q) = %+v, want %+v", tc.query, got, tc.want)
			}
		})
	}
}

func TestStateAbbreviationFor(t *testing.T) {
	if abbr, ok := StateAbbreviationFor("new york"); !ok || abbr != "NY" {
		t.Fatalf("new york: got %q ok=%v", abbr, ok)
	}
	if abbr, ok := StateAbbreviationFor(" tx "); !ok || abbr != "TX" {
		t.Fatalf("padded tx: got %q ok=%v", abbr, ok)
	}
	if _, ok := StateAbbreviationFor("narnia"); ok {
		t.Fatalf("narnia should not be a state")
	}
}

func TestIsStateAbbreviation(t *testing.T) {
	if !IsStateAbbreviation("wa") {
		t.Fatalf("wa should be valid")
	}
	if IsStateAbbreviation("ZZ") {
		t.Fatalf("ZZ should not be valid")
	}
}
