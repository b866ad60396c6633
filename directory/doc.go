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

// Package directory talks to the external school directory API.
//
// The Client issues one logical call per request: it checks the response
// cache, waits on the shared RateLimiter, injects the appID/appKey
// credentials and classifies non-2xx responses into *DirectoryError values.
// Raw payloads differ between endpoints; Normalize maps any of them onto a
// core.SchoolRecord using the FieldSources table.
//
// A single Client (and therefore a single RateLimiter) must be shared by
// every concurrently running search strategy so the call rate is bounded in
// aggregate.
package directory
