package directory

import "context"

// RawSchool is one school object exactly as the directory returned it.
type RawSchool map[string]any

// AutocompleteQuery parameterizes GET /autocomplete/schools.
type AutocompleteQuery struct {
	Q           string
	State       string // two-letter abbreviation, optional
	ReturnCount int
}

// SchoolsQuery parameterizes GET /schools.
type SchoolsQuery struct {
	Q        string
	City     string
	State    string
	PerPage  int
	SortBy   string
	NameOnly bool // qSearchSchoolNameOnly
}

// Directory is the query surface the search engine needs from the external
// school directory. Client is the HTTP implementation; mock.MockDirectory is
// the test double.
type Directory interface {
	// Autocomplete returns the schoolMatches of an autocomplete call.
	Autocomplete(ctx context.Context, q AutocompleteQuery) ([]RawSchool, error)

	// Schools returns the schoolList of a schools search.
	Schools(ctx context.Context, q SchoolsQuery) ([]RawSchool, error)

	// School fetches a single school by directory id.
	School(ctx context.Context, id string) (RawSchool, error)
}
