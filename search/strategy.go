package search

import (
	"context"
	"strings"

	"github.com/poiesic/schoolfinder/core"
	"github.com/poiesic/schoolfinder/directory"
)

// Strategy priorities. Higher runs first in aggregation.
const (
	PriorityAutocomplete = 30
	PriorityCitySpecific = 25
	PriorityLastWordCity = 22
	PriorityExactName    = 20
)

const (
	autocompleteReturnCount = 20
	schoolsPerPage          = 25
	schoolsSortBy           = "rank"
)

// Strategy is one parameterized query against the directory.
type Strategy struct {
	Name     string
	Source   string
	Priority int
	Execute  func(ctx context.Context, dir directory.Directory) ([]directory.RawSchool, error)
}

// Plan picks the strategies for query. It always returns exactly two: the
// autocomplete strategy plus one chosen by the shape of the query.
// state, when non-empty, overrides any state parsed from the query.
func Plan(query, state string, qc core.QueryComponents, opts *core.SearchOptions) []Strategy {
	query = normalizeSpace(query)
	st := strings.ToUpper(strings.TrimSpace(state))
	if st == "" {
		st = strings.ToUpper(qc.State)
	}

	geographic := opts == nil || opts.EnableGeographicSearch

	strategies := []Strategy{autocompleteStrategy(query, st)}

	words := strings.Fields(qc.SchoolTerms)
	switch {
	case geographic && qc.HasCity():
		strategies = append(strategies, citySpecificStrategy(qc.SchoolTerms, qc.City, st))
	case geographic && len(words) >= 2:
		city := words[len(words)-1]
		terms := strings.Join(words[:len(words)-1], " ")
		strategies = append(strategies, lastWordCityStrategy(terms, city, st))
	default:
		strategies = append(strategies, exactNameStrategy(query, st))
	}
	return strategies
}

func autocompleteStrategy(query, st string) Strategy {
	return Strategy{
		Name:     "smart-autocomplete",
		Source:   SourceAutocomplete,
		Priority: PriorityAutocomplete,
		Execute: func(ctx context.Context, dir directory.Directory) ([]directory.RawSchool, error) {
			return dir.Autocomplete(ctx, directory.AutocompleteQuery{
				Q:           query,
				State:       st,
				ReturnCount: autocompleteReturnCount,
			})
		},
	}
}

func citySpecificStrategy(terms, city, st string) Strategy {
	return Strategy{
		Name:     "city-specific",
		Source:   SourceCitySpecific,
		Priority: PriorityCitySpecific,
		Execute: func(ctx context.Context, dir directory.Directory) ([]directory.RawSchool, error) {
			return dir.Schools(ctx, directory.SchoolsQuery{
				Q:        terms,
				City:     city,
				State:    st,
				PerPage:  schoolsPerPage,
				SortBy:   schoolsSortBy,
				NameOnly: true,
			})
		},
	}
}

func lastWordCityStrategy(terms, city, st string) Strategy {
	return Strategy{
		Name:     "last-word-city",
		Source:   SourceLastWordCity,
		Priority: PriorityLastWordCity,
		Execute: func(ctx context.Context, dir directory.Directory) ([]directory.RawSchool, error) {
			return dir.Schools(ctx, directory.SchoolsQuery{
				Q:        terms,
				City:     city,
				State:    st,
				PerPage:  schoolsPerPage,
				SortBy:   schoolsSortBy,
				NameOnly: true,
			})
		},
	}
}

func exactNameStrategy(query, st string) Strategy {
	return Strategy{
		Name:     "exact-name",
		Source:   SourceExactMatch,
		Priority: PriorityExactName,
		Execute: func(ctx context.Context, dir directory.Directory) ([]directory.RawSchool, error) {
			return dir.Schools(ctx, directory.SchoolsQuery{
				Q:        query,
				State:    st,
				PerPage:  schoolsPerPage,
				SortBy:   schoolsSortBy,
				NameOnly: true,
			})
		},
	}
}
