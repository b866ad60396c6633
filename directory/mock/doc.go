// Package mock provides a test double for directory.Directory.
//
// MockDirectory lets search tests run without an HTTP server. Behavior is
// injected through function fields; with no functions set every call
// returns an empty result.
//
// # Usage in Tests
//
//	dir := mock.NewMockDirectory()
//	dir.AutocompleteFunc = func(ctx context.Context, q directory.AutocompleteQuery) ([]directory.RawSchool, error) {
//	    return []directory.RawSchool{{"schoolName": "Lincoln Elementary", "city": "Austin", "state": "TX"}}, nil
//	}
//
//	// Check call counts
//	count := dir.CallCount()
package mock
