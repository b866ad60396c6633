package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/poiesic/schoolfinder/core"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		query string
		want  core.QueryComponents
	}{
		{
			"lincoln elementary austin",
			core.QueryComponents{SchoolTerms: "lincoln elementary", City: "austin"},
		},
		{
			"Washington High School, Madison, WI",
			core.QueryComponents{SchoolTerms: "Washington High School", City: "Madison", State: "wi"},
		},
		{
			"lincoln elementary austin tx",
			core.QueryComponents{SchoolTerms: "lincoln elementary", City: "austin", State: "tx"},
		},
		{
			"Jefferson Middle School, Charleston, West Virginia",
			core.QueryComponents{SchoolTerms: "Jefferson Middle School", City: "Charleston", State: "wv"},
		},
		{
			"Central High, Little Rock",
			core.QueryComponents{SchoolTerms: "Central High", City: "Little Rock"},
		},
		{
			"lincoln texas",
			core.QueryComponents{SchoolTerms: "lincoln", State: "tx"},
		},
		{
			"roosevelt high",
			core.QueryComponents{SchoolTerms: "roosevelt high"},
		},
		{
			"kennedy elementary north",
			core.QueryComponents{SchoolTerms: "kennedy elementary north"},
		},
		{
			"lincoln ab",
			core.QueryComponents{SchoolTerms: "lincoln ab"},
		},
		{
			"lincoln",
			core.QueryComponents{SchoolTerms: "lincoln"},
		},
		{
			"  lincoln   elementary  ",
			core.QueryComponents{SchoolTerms: "lincoln elementary"},
		},
		{
			"Oak Ridge, Prep Academy",
			core.QueryComponents{SchoolTerms: "Oak Ridge, Prep Academy"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseQuery(tt.query))
		})
	}
}

func TestParseQuery_StateNeedsSeparator(t *testing.T) {
	// "austin" ends in "in" (Indiana) but not after a space or comma
	qc := ParseQuery("lincoln austin")
	assert.Empty(t, qc.State)
	assert.Equal(t, "austin", qc.City)
}

func TestStateAbbrev(t *testing.T) {
	abbrev, ok := StateAbbrev("new mexico")
	assert.True(t, ok)
	assert.Equal(t, "nm", abbrev)

	abbrev, ok = StateAbbrev("dc")
	assert.True(t, ok)
	assert.Equal(t, "dc", abbrev)

	_, ok = StateAbbrev("narnia")
	assert.False(t, ok)
	assert.Len(t, usStates, 51)
}
