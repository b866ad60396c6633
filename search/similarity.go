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

	"github.com/agnivade/levenshtein"
)

// Similarity tuning. These values are empirical and the ranking tests
// depend on their exact shape.
const (
	ExactScore = 100.0

	PrefixCeiling = 95.0
	PrefixFloor   = 85.0

	TokenPrefixCeiling = 80.0
	TokenPrefixFloor   = 70.0

	LengthPenalty = 0.5

	ContainmentWeight = 0.7
	FuzzyThreshold    = 0.7
	FuzzyWeight       = 0.5

	ExactTokenWeight   = 100.0
	PartialTokenWeight = 60.0
)

// Levenshtein returns the edit distance between a and b with unit costs,
// counted in characters rather than bytes.
func Levenshtein(a, b string) int {
	return levenshtein.ComputeDistance(a, b)
}

// Similarity scores candidate against query in [0,100] with fuzzy token
// matching enabled.
func Similarity(query, candidate string) float64 {
	return similarity(query, candidate, true)
}

func similarity(query, candidate string, fuzzy bool) float64 {
	q := strings.ToLower(strings.TrimSpace(query))
	c := strings.ToLower(strings.TrimSpace(candidate))
	if q == "" || c == "" {
		return 0
	}

	if q == c {
		return ExactScore
	}

	if strings.HasPrefix(c, q) {
		return math.Max(PrefixFloor, PrefixCeiling-LengthPenalty*float64(runeLen(c)-runeLen(q)))
	}

	for _, token := range strings.Fields(c) {
		if strings.HasPrefix(token, q) {
			return math.Max(TokenPrefixFloor, TokenPrefixCeiling-LengthPenalty*float64(runeLen(token)-runeLen(q)))
		}
	}

	return tokenSimilarity(normalizeTokens(query), normalizeTokens(candidate), fuzzy)
}

func tokenSimilarity(queryTokens, candidateTokens []string, fuzzy bool) float64 {
	total := len(queryTokens)
	if total == 0 {
		return 0
	}

	var exact, partial int
	for _, qt := range queryTokens {
		best := bestTokenScore(qt, candidateTokens, fuzzy)
		switch {
		case best == 1:
			exact++
		case best > 0 && best < 1:
			partial++
		}
	}

	score := ExactTokenWeight*float64(exact)/float64(total) + PartialTokenWeight*float64(partial)/float64(total)
	return math.Min(score, ExactScore)
}

// bestTokenScore returns 1 on an exact token hit, otherwise the highest
// containment or fuzzy score against any candidate token.
func bestTokenScore(qt string, candidateTokens []string, fuzzy bool) float64 {
	for _, ct := range candidateTokens {
		if qt == ct {
			return 1
		}
	}

	var best float64
	for _, ct := range candidateTokens {
		var s float64
		ql, cl := runeLen(qt), runeLen(ct)
		longer, shorter := max(ql, cl), min(ql, cl)

		if strings.Contains(ct, qt) || strings.Contains(qt, ct) {
			s = ContainmentWeight * float64(longer) / float64(shorter)
		} else if fuzzy {
			sim := float64(longer-Levenshtein(qt, ct)) / float64(longer)
			if sim > FuzzyThreshold {
				s = FuzzyWeight * sim
			}
		}
		best = math.Max(best, s)
	}
	return best
}
