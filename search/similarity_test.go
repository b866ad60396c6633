package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	assert.Equal(t, 3, Levenshtein("kitten", "sitting"))
	assert.Equal(t, 3, Levenshtein("sitting", "kitten"))
	assert.Equal(t, 3, Levenshtein("", "abc"))
	assert.Equal(t, 1, Levenshtein("lincon", "lincoln"))

	for _, s := range []string{"", "a", "lincoln", "washington high"} {
		assert.Equal(t, 0, Levenshtein(s, s), s)
	}

	pairs := [][2]string{{"austin", "boston"}, {"elementary", "elem"}, {"madison", "medina"}}
	for _, p := range pairs {
		assert.Equal(t, Levenshtein(p[0], p[1]), Levenshtein(p[1], p[0]), "%s/%s", p[0], p[1])
	}
}

func TestLevenshtein_CountsCharacters(t *testing.T) {
	assert.Equal(t, 1, Levenshtein("ñ", "n"))
	assert.Equal(t, 1, Levenshtein("peña", "pena"))
	assert.Equal(t, 0, Levenshtein("peña", "peña"))
	assert.Equal(t, 2, Levenshtein("josé", "jose "))
}

func TestSimilarity_AccentedNames(t *testing.T) {
	accented := Similarity("pena elementary", "Peña Elementary")
	typo := Similarity("pena elementary", "Pera Elementary")

	// one exact token plus one fuzzy partial at distance 1 over 4 characters
	assert.InDelta(t, 80.0, accented, 1e-9)
	assert.GreaterOrEqual(t, accented, typo)
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		candidate string
		want      float64
	}{
		{"exact", "lincoln", "lincoln", 100},
		{"exact ignores case and padding", " Lincoln ", "LINCOLN", 100},
		{"prefix", "linc", "lincoln elementary", 88},
		{"prefix floor", "a", "abcdefghijklmnopqrstuvwxyz abcdefghijklmnopqrstuvwxyz", 85},
		{"token prefix", "elem", "lincoln elementary", 77},
		{"all tokens exact after normalization", "lincoln elem school", "Lincoln Elementary", 100},
		{"one exact one containment", "lincolns academy", "Lincoln Academy", 80},
		{"saint abbreviation", "st mary", "Saint Mary's Academy", 100},
		{"no overlap", "washington", "Lincoln Elementary", 0},
		{"empty query", "", "Lincoln", 0},
		{"stop words only", "the of", "lincoln elementary", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Similarity(tt.query, tt.candidate), 1e-9)
		})
	}
}

func TestSimilarity_PrefixRuleLowerBound(t *testing.T) {
	assert.GreaterOrEqual(t, Similarity("linc", "lincoln elementary"), 85.0)
}

func TestSimilarity_FuzzyBranch(t *testing.T) {
	// lincon vs lincoln: distance 1 over 7 characters
	assert.InDelta(t, 60.0, similarity("lincon", "Lincoln Park", true), 1e-9)
	assert.Zero(t, similarity("lincon", "Lincoln Park", false))
}

func TestSimilarity_Bounds(t *testing.T) {
	inputs := []string{"", "a", "lincoln", "lincoln elementary", "st. mary's", "the of", "Washington High School"}
	for _, q := range inputs {
		for _, c := range inputs {
			s := Similarity(q, c)
			assert.GreaterOrEqual(t, s, 0.0, "%q/%q", q, c)
			assert.LessOrEqual(t, s, 100.0, "%q/%q", q, c)
		}
	}
}

func TestNormalizeTokens(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Lincoln Elem. School", []string{"lincoln", "elementary"}},
		{"St. Mary's Jr High", []string{"saint", "mary", "middle", "high"}},
		{"Mt. Hood Sr. Sch", []string{"mount", "hood", "high"}},
		{"The School of the Arts", []string{"arts"}},
		{"A B C", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeTokens(tt.in))
		})
	}
}
