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

package directory

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrConfigRequired is returned when a client is created without a config.
	ErrConfigRequired = errors.New("directory config required")

	// ErrMissingCredentials is returned when the app id or app key is absent.
	ErrMissingCredentials = errors.New("directory credentials missing")

	// ErrDirectoryHTTP matches every *DirectoryError via errors.Is.
	ErrDirectoryHTTP = errors.New("directory http error")

	// ErrMalformedResponse indicates the directory returned JSON of an
	// unexpected shape, or no JSON at all.
	ErrMalformedResponse = errors.New("malformed directory response")

	// ErrInvalidMaxAttempts is returned when retry attempts are not positive.
	ErrInvalidMaxAttempts = errors.New("max attempts must be greater than 0")
)

// DirectoryError is a non-2xx response from the directory.
type DirectoryError struct {
	Status  int
	Message string
	Body    string // best-effort response body, possibly truncated
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("directory: http %d: %s", e.Status, e.Message)
}

func (e *DirectoryError) Is(target error) bool {
	return target == ErrDirectoryHTTP
}

// NotFound reports whether the directory answered 404.
func (e *DirectoryError) NotFound() bool {
	return e.Status == http.StatusNotFound
}

// Retryable reports whether the failure is a server-side one worth retrying.
func (e *DirectoryError) Retryable() bool {
	return e.Status >= 500
}

func newDirectoryError(status int, body string) *DirectoryError {
	var msg string
	switch status {
	case http.StatusBadRequest:
		msg = "bad request: check query parameter names and formats"
	case http.StatusUnauthorized:
		msg = "unauthorized: check the appID and appKey credentials"
	case http.StatusForbidden:
		msg = "forbidden: the plan may not include this endpoint or the caller's region is restricted"
	case http.StatusNotFound:
		msg = "not found"
	case http.StatusTooManyRequests:
		msg = "rate limit exceeded: too many calls for the current plan"
	default:
		msg = "unexpected response"
	}
	if detail := strings.TrimSpace(body); detail != "" {
		if len(detail) > 200 {
			detail = detail[:200]
		}
		msg += " (" + detail + ")"
	}
	return &DirectoryError{Status: status, Message: msg, Body: body}
}
