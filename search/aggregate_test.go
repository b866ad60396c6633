package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/schoolfinder/core"
)

func TestAggregate_DedupKeepsHigherScore(t *testing.T) {
	rec := core.SchoolRecord{Name: "Lincoln Elementary", City: "Austin", State: "TX", Level: core.LevelElementary}
	results := []StrategyResult{
		{Source: SourceAutocomplete, Priority: PriorityAutocomplete, Records: []core.SchoolRecord{rec}},
		{Source: SourceCitySpecific, Priority: PriorityCitySpecific, Records: []core.SchoolRecord{rec}},
	}

	got := aggregate(results, "lincoln elementary austin tx", Scorer{Fuzzy: true}, 15, &noopMonitor{})
	require.Len(t, got, 1)
	assert.Equal(t, SourceCitySpecific, got[0].SearchSource)

	low := Scorer{Fuzzy: true}.Score(&rec, "lincoln elementary austin tx", SourceAutocomplete)
	high := Scorer{Fuzzy: true}.Score(&rec, "lincoln elementary austin tx", SourceCitySpecific)
	require.Greater(t, high, low)
	assert.InDelta(t, high, got[0].RelevanceScore, 1e-9)
}

func TestAggregate_DropsBelowFloor(t *testing.T) {
	results := []StrategyResult{{
		Source:   "",
		Priority: 1,
		Records: []core.SchoolRecord{
			{Name: "Zzyzx", City: "Nowhere", State: "AK", Level: core.LevelK12},
			{Name: "Lincoln Elementary", City: "Austin", State: "TX", Level: core.LevelElementary},
		},
	}}

	monitor := &recordingMonitor{}
	got := aggregate(results, "lincoln elementary austin tx", Scorer{Fuzzy: true}, 15, monitor)
	require.Len(t, got, 1)
	assert.Equal(t, "Lincoln Elementary", got[0].Name)
	assert.Equal(t, []string{"Zzyzx"}, monitor.dropped)
	for _, r := range got {
		assert.GreaterOrEqual(t, r.RelevanceScore, MinRelevance)
	}
}

func TestAggregate_TieBreakOnRatingAndRank(t *testing.T) {
	results := []StrategyResult{{
		Source:   SourceExactMatch,
		Priority: PriorityExactName,
		Records: []core.SchoolRecord{
			{Name: "Lincoln", City: "Springfield", Level: core.LevelK12, Rating: 5},
			{Name: "Lincoln", City: "Shelbyville", Level: core.LevelK12, Rating: 7},
			{Name: "Lincoln", City: "Ogdenville", Level: core.LevelK12, Rating: 7, Rank: 10, RankTotal: 500},
		},
	}}

	got := aggregate(results, "lincoln", Scorer{}, 15, &noopMonitor{})
	require.Len(t, got, 3)
	assert.Equal(t, got[0].RelevanceScore, got[2].RelevanceScore, "scores tie")
	assert.Equal(t, "Ogdenville", got[0].City)
	assert.Equal(t, "Shelbyville", got[1].City)
	assert.Equal(t, "Springfield", got[2].City)
}

func TestAggregate_Truncates(t *testing.T) {
	var records []core.SchoolRecord
	for _, city := range []string{"Springfield", "Shelbyville", "Ogdenville", "Capital City", "North Haverbrook"} {
		records = append(records, core.SchoolRecord{Name: "Lincoln", City: city, Level: core.LevelK12})
	}
	results := []StrategyResult{{Source: SourceExactMatch, Priority: PriorityExactName, Records: records}}

	got := aggregate(results, "lincoln", Scorer{}, 3, &noopMonitor{})
	assert.Len(t, got, 3)
}

func TestAggregate_IndependentOfResultOrder(t *testing.T) {
	a := StrategyResult{Source: SourceAutocomplete, Priority: PriorityAutocomplete, Records: []core.SchoolRecord{
		{Name: "Lincoln Elementary School", City: "Austin", State: "TX", Rating: 5},
		{Name: "Lincoln Middle", City: "Austin", State: "TX", Rating: 6},
	}}
	b := StrategyResult{Source: SourceCitySpecific, Priority: PriorityCitySpecific, Records: []core.SchoolRecord{
		{Name: "Lincoln Elementary", City: "Austin", State: "TX", Rating: 9},
	}}

	query := "lincoln elementary austin tx"
	first := aggregate([]StrategyResult{a, b}, query, Scorer{Fuzzy: true}, 15, &noopMonitor{})
	second := aggregate([]StrategyResult{b, a}, query, Scorer{Fuzzy: true}, 15, &noopMonitor{})
	assert.Equal(t, first, second)
}

func TestAggregate_Empty(t *testing.T) {
	got := aggregate(nil, "lincoln", Scorer{}, 15, &noopMonitor{})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
