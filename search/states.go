package search

import "sort"

type usState struct {
	name   string // lowercase full name
	abbrev string // lowercase postal code
}

var usStates = []usState{
	{"alabama", "al"}, {"alaska", "ak"}, {"arizona", "az"}, {"arkansas", "ar"},
	{"california", "ca"}, {"colorado", "co"}, {"connecticut", "ct"}, {"delaware", "de"},
	{"district of columbia", "dc"}, {"florida", "fl"}, {"georgia", "ga"}, {"hawaii", "hi"},
	{"idaho", "id"}, {"illinois", "il"}, {"indiana", "in"}, {"iowa", "ia"},
	{"kansas", "ks"}, {"kentucky", "ky"}, {"louisiana", "la"}, {"maine", "me"},
	{"maryland", "md"}, {"massachusetts", "ma"}, {"michigan", "mi"}, {"minnesota", "mn"},
	{"mississippi", "ms"}, {"missouri", "mo"}, {"montana", "mt"}, {"nebraska", "ne"},
	{"nevada", "nv"}, {"new hampshire", "nh"}, {"new jersey", "nj"}, {"new mexico", "nm"},
	{"new york", "ny"}, {"north carolina", "nc"}, {"north dakota", "nd"}, {"ohio", "oh"},
	{"oklahoma", "ok"}, {"oregon", "or"}, {"pennsylvania", "pa"}, {"rhode island", "ri"},
	{"south carolina", "sc"}, {"south dakota", "sd"}, {"tennessee", "tn"}, {"texas", "tx"},
	{"utah", "ut"}, {"vermont", "vt"}, {"virginia", "va"}, {"washington", "wa"},
	{"west virginia", "wv"}, {"wisconsin", "wi"}, {"wyoming", "wy"},
}

// statesByNameLength lists states longest full name first, so "west
// virginia" is tested before "virginia".
var statesByNameLength = func() []usState {
	sorted := append([]usState(nil), usStates...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].name) > len(sorted[j].name)
	})
	return sorted
}()

// StateAbbrev returns the lowercase postal code for a full state name or
// abbreviation, and false when s names no state.
func StateAbbrev(s string) (string, bool) {
	for _, st := range usStates {
		if s == st.name || s == st.abbrev {
			return st.abbrev, true
		}
	}
	return "", false
}
