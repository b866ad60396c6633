package search

import (
	"strings"

	"github.com/poiesic/schoolfinder/core"
)

// Words that mark the text after a comma as part of the school name
// rather than a city.
var schoolTypeKeywords = []string{"elementary", "middle", "high", "school", "academy", "institute"}

// A trailing word in either set is never taken as a city.
var schoolTermIndicators = map[string]bool{
	"school": true, "elementary": true, "middle": true, "high": true,
	"academy": true, "institute": true, "center": true, "campus": true,
	"prep": true, "charter": true,
}

var directionWords = map[string]bool{
	"north": true, "south": true, "east": true, "west": true,
	"central": true, "upper": true, "lower": true, "new": true,
	"old": true, "greater": true, "metro": true, "downtown": true,
}

// ParseQuery splits a free-text query into school terms, an optional city
// and an optional state. Parsing runs in a fixed order: trailing state,
// then comma-separated city, then the trailing-word city heuristic.
func ParseQuery(query string) core.QueryComponents {
	var qc core.QueryComponents
	working := strings.TrimSpace(query)

	if rest, abbrev, ok := extractState(working); ok {
		qc.State = abbrev
		working = rest
	}

	if i := strings.LastIndex(working, ","); i >= 0 {
		before, after := working[:i], strings.TrimSpace(working[i+1:])
		if after != "" && !containsSchoolKeyword(after) {
			qc.City = normalizeSpace(after)
			working = strings.TrimRight(before, ", ")
		}
	}

	if qc.City == "" {
		words := strings.Fields(working)
		if len(words) >= 2 {
			last := words[len(words)-1]
			lower := strings.ToLower(last)
			if runeLen(last) >= 3 && !schoolTermIndicators[lower] && !directionWords[lower] {
				qc.City = last
				words = words[:len(words)-1]
				working = strings.Join(words, " ")
			}
		}
	}

	qc.SchoolTerms = normalizeSpace(working)
	return qc
}

// extractState removes a trailing state name or abbreviation preceded by
// a comma or space. Full names are tried before abbreviations.
func extractState(s string) (rest, abbrev string, ok bool) {
	try := func(suffix string) bool {
		cut := len(s) - len(suffix)
		if cut < 1 || !strings.EqualFold(s[cut:], suffix) {
			return false
		}
		if sep := s[cut-1]; sep != ',' && sep != ' ' {
			return false
		}
		rest = strings.TrimRight(s[:cut-1], ", ")
		return true
	}

	for _, st := range statesByNameLength {
		if try(st.name) {
			return rest, st.abbrev, true
		}
	}
	for _, st := range usStates {
		if try(st.abbrev) {
			return rest, st.abbrev, true
		}
	}
	return s, "", false
}

func containsSchoolKeyword(s string) bool {
	lower := strings.ToLower(s)
	for _, kw := range schoolTypeKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
