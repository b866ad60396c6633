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

package schoolfinder

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/poiesic/schoolfinder/config"
	"github.com/poiesic/schoolfinder/core"
	"github.com/poiesic/schoolfinder/directory"
	"github.com/poiesic/schoolfinder/search"
	"github.com/poiesic/schoolfinder/storage"
	"github.com/poiesic/schoolfinder/storage/badger"
)

// Finder owns one response cache, one rate-limited directory client and
// one searcher. Create it once and share it; Close releases everything.
type Finder struct {
	backend  *badger.Backend
	cache    *badger.Cache
	client   *directory.Client
	searcher *search.Searcher
	logger   *slog.Logger
}

// FinderOption configures a Finder.
type FinderOption func(*finderOptions)

type finderOptions struct {
	cacheDir   string
	cacheTTL   time.Duration
	poolSize   int
	httpClient *http.Client
	logger     *slog.Logger
}

// WithCacheDir persists the response cache under dir. By default the
// cache lives in memory and is lost on Close.
func WithCacheDir(dir string) FinderOption {
	return func(o *finderOptions) { o.cacheDir = dir }
}

func WithCacheTTL(ttl time.Duration) FinderOption {
	return func(o *finderOptions) { o.cacheTTL = ttl }
}

func WithPoolSize(size int) FinderOption {
	return func(o *finderOptions) { o.poolSize = size }
}

func WithHTTPClient(hc *http.Client) FinderOption {
	return func(o *finderOptions) { o.httpClient = hc }
}

func WithLogger(logger *slog.Logger) FinderOption {
	return func(o *finderOptions) { o.logger = logger }
}

// NewFinder validates cfg and wires cache, client and searcher.
func NewFinder(cfg *directory.Config, opts ...FinderOption) (*Finder, error) {
	options := &finderOptions{
		cacheTTL: storage.DefaultTTL,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}

	if cfg == nil {
		return nil, directory.ErrConfigRequired
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	backend, err := badger.OpenBackend(options.cacheDir, options.cacheDir == "")
	if err != nil {
		return nil, err
	}
	cache := badger.NewCache(backend, badger.WithTTL(options.cacheTTL))

	clientOpts := []directory.ClientOption{directory.WithLogger(options.logger)}
	if options.httpClient != nil {
		clientOpts = append(clientOpts, directory.WithHTTPClient(options.httpClient))
	}
	client, err := directory.NewClient(cfg, cache, clientOpts...)
	if err != nil {
		backend.Close()
		return nil, err
	}

	searchOpts := []search.Option{search.WithLogger(options.logger)}
	if options.poolSize > 0 {
		searchOpts = append(searchOpts, search.WithPoolSize(options.poolSize))
	}
	searcher, err := search.NewSearcher(client, searchOpts...)
	if err != nil {
		backend.Close()
		return nil, err
	}

	return &Finder{
		backend:  backend,
		cache:    cache,
		client:   client,
		searcher: searcher,
		logger:   options.logger,
	}, nil
}

// NewFinderFromSettings builds a Finder from loaded settings. Extra
// options are applied after the settings.
func NewFinderFromSettings(s *config.Settings, opts ...FinderOption) (*Finder, error) {
	if s == nil {
		return nil, directory.ErrConfigRequired
	}
	base := []FinderOption{
		WithCacheDir(s.CacheDir),
		WithCacheTTL(s.CacheTTL),
		WithPoolSize(s.PoolSize),
	}
	return NewFinder(s.Directory, append(base, opts...)...)
}

func (f *Finder) Close() error {
	f.searcher.Release()

	if err := f.backend.Close(); err != nil {
		f.logger.Error("error closing cache backend", "err", err)
		return err
	}
	return nil
}

// Search returns ranked schools for query. It never fails.
func (f *Finder) Search(ctx context.Context, query, state string, opts *core.SearchOptions) []core.SchoolRecord {
	return f.searcher.Search(ctx, query, state, opts)
}

func (f *Finder) SearchWithMonitor(ctx context.Context, query, state string, opts *core.SearchOptions, monitor search.SearchMonitor) []core.SchoolRecord {
	return f.searcher.SearchWithMonitor(ctx, query, state, opts, monitor)
}

// GetByID fetches a single school and propagates directory errors.
func (f *Finder) GetByID(ctx context.Context, id string) (*core.SchoolRecord, error) {
	return f.searcher.GetByID(ctx, id)
}

func (f *Finder) Client() *directory.Client {
	return f.client
}
