package search

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"strings"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/schoolfinder/core"
	"github.com/poiesic/schoolfinder/directory"
)

// MinQueryLength is the shortest trimmed query Search will run.
const MinQueryLength = 2

// Searcher ranks schools from a directory against free-text queries.
type Searcher struct {
	dir    directory.Directory
	pool   *ants.Pool
	logger *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithPoolSize sets the worker pool size for concurrent strategy execution.
// Default is runtime.NumCPU(), with a minimum of 2.
func WithPoolSize(size int) Option {
	return func(s *Searcher) error {
		if size < 1 {
			size = 1
		}

		if s.pool != nil {
			s.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		s.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher over dir.
func NewSearcher(dir directory.Directory, opts ...Option) (*Searcher, error) {
	if dir == nil {
		return nil, ErrDirectoryRequired
	}

	poolSize := runtime.NumCPU()
	if poolSize < 2 {
		poolSize = 2
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	s := &Searcher{
		dir:    dir,
		pool:   pool,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			s.Release()
			return nil, err
		}
	}

	return s, nil
}

// Release stops the worker pool. The searcher must not be used afterwards.
func (s *Searcher) Release() {
	if s.pool != nil {
		s.pool.Release()
	}
}

// Search returns schools matching query, best first. state optionally
// restricts the directory calls to one state. opts may be nil for the
// defaults. Search never fails: invalid options, short queries and
// directory outages all yield an empty list.
func (s *Searcher) Search(ctx context.Context, query, state string, opts *core.SearchOptions) []core.SchoolRecord {
	return s.SearchWithMonitor(ctx, query, state, opts, nil)
}

// SearchWithMonitor is Search with callbacks at each stage. A panic in any
// stage, the monitor included, is logged and turned into an empty result.
func (s *Searcher) SearchWithMonitor(ctx context.Context, query, state string, opts *core.SearchOptions, monitor SearchMonitor) (ranked []core.SchoolRecord) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("search panicked", "query", query, "panic", r)
			ranked = []core.SchoolRecord{}
		}
	}()

	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(query)

	if len([]rune(strings.TrimSpace(query))) < MinQueryLength {
		monitor.Finish(nil)
		return []core.SchoolRecord{}
	}

	if opts == nil {
		opts = core.DefaultSearchOptions()
	} else {
		copied := *opts
		opts = &copied
	}
	if err := core.ValidateSearchOptions(opts); err != nil {
		s.logger.Warn("invalid search options", "err", err)
		monitor.Finish(nil)
		return []core.SchoolRecord{}
	}

	qc := ParseQuery(query)
	monitor.AfterQueryParse(qc)

	strategies := Plan(query, state, qc, opts)
	monitor.StrategiesPlanned(strategies)

	exec := &executor{pool: s.pool, dir: s.dir, logger: s.logger}
	results := exec.run(ctx, strategies)

	var errs []error
	for _, result := range results {
		monitor.StrategyFinished(result)
		if result.Err != nil {
			errs = append(errs, result.Err)
		}
	}

	if len(errs) == len(results) {
		s.logger.Warn("directory unavailable", "query", query, "err", errors.Join(errs...))
		monitor.DirectoryUnavailable(errs)
		monitor.Finish(nil)
		return []core.SchoolRecord{}
	}

	ranked = aggregate(results, query, Scorer{Fuzzy: opts.EnableFuzzySearch}, opts.MaxResults, monitor)
	if len(ranked) == 0 {
		s.logger.Debug("no results", "query", query)
	}
	monitor.Finish(ranked)

	return ranked
}

// GetByID fetches one school directly. Unlike Search it returns the
// directory's error.
func (s *Searcher) GetByID(ctx context.Context, id string) (*core.SchoolRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, core.ErrEmptySchoolID
	}

	raw, err := s.dir.School(ctx, id)
	if err != nil {
		s.logger.Debug("school lookup failed", "id", id, "err", err)
		return nil, err
	}

	rec := directory.Normalize(raw)
	if err := core.ValidateSchoolRecord(&rec); err != nil {
		s.logger.Warn("directory returned an incomplete school", "id", id, "err", err)
	}
	if rec.ID == "" {
		rec.ID = id
	}
	return &rec, nil
}
