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

import "errors"

var (
	// ErrInvalidSearchOptions indicates SearchOptions failed validation.
	ErrInvalidSearchOptions = errors.New("invalid search options")

	// ErrNegativeMaxResults indicates MaxResults is below zero.
	ErrNegativeMaxResults = errors.New("max results cannot be negative")

	// ErrEmptySchoolID indicates a lookup was attempted without an ID.
	ErrEmptySchoolID = errors.New("school id cannot be empty")

	// ErrInvalidSchoolRecord indicates a SchoolRecord failed validation.
	ErrInvalidSchoolRecord = errors.New("invalid school record")
)
