// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package search

import (
	"math"
	"strings"

	"github.com/poiesic/schoolfinder/core"
)

// Relevance weights and bonuses. The score is unbounded above; bonuses
// stack on top of the weighted similarities.
const (
	NameWeight            = 0.4
	CityWeight            = 0.3
	CityPrefixGuessWeight = 0.35
	StateWeight           = 0.2

	CityPrefixGuessMinScore = 70.0

	LocalMatchBonus     = 25.0
	LocalMatchCityMin   = 80.0
	LocalMatchNameMin   = 50.0
	CityPrefixBonus     = 40.0
	LevelMatchBonus     = 15.0
	GeoBonus            = 20.0
	GeoBonusCityWeight  = 20.0
	GeoBonusStateWeight = 15.0

	ScoresBonus     = 8.0
	HighRatingBonus = 6.0
	HighRatingMin   = 8.0
	EnrollmentBonus = 3.0
	EnrollmentMin   = 100

	// MinRelevance is the inclusion floor applied by the aggregator.
	MinRelevance = 10.0
)

// Strategy sources, in descending bonus order.
const (
	SourceCitySpecific  = "city-specific"
	SourceLastWordCity  = "last-word-city"
	SourceFullQuery     = "full-query"
	SourceFirstWordCity = "first-word-city"
	SourceExactMatch    = "exact-match"
	SourceAutocomplete  = "autocomplete"
	SourceCitySearch    = "city-search"
	SourceFuzzySearch   = "fuzzy-search"
	SourceBroadSearch   = "broad-search"
)

var sourceBonus = map[string]float64{
	SourceCitySpecific:  25,
	SourceLastWordCity:  22,
	SourceFullQuery:     20,
	SourceFirstWordCity: 18,
	SourceExactMatch:    15,
	SourceAutocomplete:  12,
	SourceCitySearch:    8,
	SourceFuzzySearch:   6,
	SourceBroadSearch:   3,
}

// SourceBonus returns the fixed bonus for a strategy source, 0 if unknown.
func SourceBonus(source string) float64 {
	return sourceBonus[source]
}

// Scorer computes relevance scores. The zero value scores without the
// fuzzy Levenshtein branch.
type Scorer struct {
	Fuzzy bool
}

// Similarity scores candidate against query using the scorer's fuzzy
// setting.
func (s Scorer) Similarity(query, candidate string) float64 {
	return similarity(query, candidate, s.Fuzzy)
}

// Score rates how well rec answers query when it was found by source.
// The result is never negative and never NaN or infinite.
func (s Scorer) Score(rec *core.SchoolRecord, query, source string) float64 {
	if rec == nil {
		return 0
	}
	return s.score(rec, query, ParseQuery(query), source)
}

func (s Scorer) score(rec *core.SchoolRecord, query string, qc core.QueryComponents, source string) float64 {
	first := firstWord(query)

	nameScore := s.Similarity(qc.SchoolTerms, rec.Name)
	total := nameScore * NameWeight

	var cityScore, cityWeight float64
	if qc.HasCity() {
		cityScore = s.Similarity(qc.City, rec.City)
		cityWeight = cityScore * CityWeight
	} else if runeLen(first) >= 2 {
		if guess := s.Similarity(first, rec.City); guess >= CityPrefixGuessMinScore {
			cityWeight = guess * CityPrefixGuessWeight
		}
	}
	total += cityWeight

	var stateWeight float64
	if qc.HasState() {
		stateWeight = s.Similarity(qc.State, rec.State) * StateWeight
	}
	total += stateWeight

	if qc.HasCity() && cityScore > LocalMatchCityMin && nameScore > LocalMatchNameMin {
		total += LocalMatchBonus
	}

	if first != "" && strings.HasPrefix(strings.ToLower(strings.TrimSpace(rec.City)), first) {
		total += CityPrefixBonus
	}

	if levelRequested(query, rec.Level) {
		total += LevelMatchBonus
	}

	if cityWeight > GeoBonusCityWeight && stateWeight > GeoBonusStateWeight {
		total += GeoBonus
	}

	if rec.TestScores.HasScores() {
		total += ScoresBonus
	}
	if rec.Rating >= HighRatingMin {
		total += HighRatingBonus
	}
	if rec.Enrollment > EnrollmentMin {
		total += EnrollmentBonus
	}

	total += SourceBonus(source)

	if math.IsNaN(total) || math.IsInf(total, 0) {
		return 0
	}
	return math.Max(total, 0)
}

// levelRequested reports whether query names the level rec has.
func levelRequested(query string, level core.SchoolLevel) bool {
	q := strings.ToLower(query)
	switch level {
	case core.LevelElementary:
		return strings.Contains(q, "elementary")
	case core.LevelMiddle:
		return strings.Contains(q, "middle")
	case core.LevelHigh:
		return strings.Contains(q, "high")
	default:
		return false
	}
}
