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

// Package search ranks schools from an external directory against
// free-text queries.
//
// The Searcher runs a multi-stage pipeline:
//   - The query is parsed into school terms, an optional city and an
//     optional state
//   - Two strategies are planned from the query's shape and run
//     concurrently against the directory
//   - Every candidate is scored by name, city and state similarity plus
//     geography, data-quality and source bonuses
//   - Candidates are deduplicated by name, city and state, sorted and
//     truncated
//
// Search never returns an error; a failing directory yields an empty list
// and a "directory unavailable" warning. GetByID propagates errors.
package search
