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

package core

import (
	"fmt"
	"strings"
)

// DefaultMaxResults is used when SearchOptions.MaxResults is zero.
const DefaultMaxResults = 15

// SearchOptions tunes a single search call.
type SearchOptions struct {
	// MaxResults caps the ranked list. Zero means DefaultMaxResults.
	MaxResults int

	// EnableFuzzySearch allows edit-distance token matching when scoring.
	EnableFuzzySearch bool

	// EnableGeographicSearch allows city-scoped directory strategies.
	EnableGeographicSearch bool
}

// DefaultSearchOptions returns options with every search feature enabled.
func DefaultSearchOptions() *SearchOptions {
	return &SearchOptions{
		MaxResults:             DefaultMaxResults,
		EnableFuzzySearch:      true,
		EnableGeographicSearch: true,
	}
}

// ValidateSearchOptions validates options and fills in MaxResults when it is
// left at zero.
func ValidateSearchOptions(opts *SearchOptions) error {
	if opts == nil {
		return fmt.Errorf("%w: options are nil", ErrInvalidSearchOptions)
	}
	if opts.MaxResults < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidSearchOptions, ErrNegativeMaxResults)
	}
	if opts.MaxResults == 0 {
		opts.MaxResults = DefaultMaxResults
	}
	return nil
}

// ValidateSchoolRecord checks the fields every normalized record must carry.
//
// Validation rules:
//   - Name must not be blank
//   - Level must be one of the four known levels
//
// Rank and RankTotal are directory-supplied and are not cross-checked.
func ValidateSchoolRecord(record *SchoolRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidSchoolRecord)
	}
	if strings.TrimSpace(record.Name) == "" {
		return fmt.Errorf("%w: name is blank", ErrInvalidSchoolRecord)
	}
	switch record.Level {
	case LevelElementary, LevelMiddle, LevelHigh, LevelK12:
	default:
		return fmt.Errorf("%w: unknown level %q", ErrInvalidSchoolRecord, record.Level)
	}
	return nil
}
