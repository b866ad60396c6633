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

// Package storage provides the response cache abstraction for schoolfinder.
//
// The directory client caches raw JSON responses keyed by endpoint and
// query parameters. Entries are never swept; an entry older than the TTL is
// reported as a miss and overwritten by the next successful call.
//
// # Usage
//
// Open an in-memory cache:
//
//	cache, backend, err := badger.NewMemoryCache()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer backend.Close()
//
// Or a persistent one that survives restarts:
//
//	backend, err := badger.OpenBackend("/var/cache/schoolfinder", false)
//	cache := badger.NewCache(backend)
package storage
