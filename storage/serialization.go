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

package storage

import (
	"fmt"
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// MarshalCacheEntry serializes a CacheEntry to bytes.
// Layout: key, timestamp (unix micros, varint), data.
func MarshalCacheEntry(entry *CacheEntry) []byte {
	ts := entry.Timestamp.UnixMicro()
	size := ord.String.Size(entry.Key) + varint.Int64.Size(ts) + ord.ByteSlice.Size(entry.Data)
	buf := make([]byte, size)
	n := ord.String.Marshal(entry.Key, buf)
	n += varint.Int64.Marshal(ts, buf[n:])
	ord.ByteSlice.Marshal(entry.Data, buf[n:])
	return buf
}

func UnmarshalCacheEntry(data []byte) (*CacheEntry, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, ErrTruncatedData)
	}
	key, n, err := ord.String.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: key: %w", ErrSerializationFailed, err)
	}
	ts, m, err := varint.Int64.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: timestamp: %w", ErrSerializationFailed, err)
	}
	n += m
	body, _, err := ord.ByteSlice.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: data: %w", ErrSerializationFailed, err)
	}
	return &CacheEntry{
		Key:       key,
		Data:      body,
		Timestamp: time.UnixMicro(ts).UTC(),
	}, nil
}
