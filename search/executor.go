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

package search

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/schoolfinder/core"
	"github.com/poiesic/schoolfinder/directory"
)

// StrategyResult is the outcome of one strategy. Err is set when the
// strategy failed; Records is then empty.
type StrategyResult struct {
	Name     string
	Source   string
	Priority int
	Records  []core.SchoolRecord
	Err      error
}

// executor runs strategies concurrently on a shared worker pool.
type executor struct {
	pool   *ants.Pool
	dir    directory.Directory
	logger *slog.Logger
}

// run executes every strategy and waits for all of them. Results are
// returned in the order of strategies regardless of completion order.
func (e *executor) run(ctx context.Context, strategies []Strategy) []StrategyResult {
	results := make([]StrategyResult, len(strategies))
	var wg sync.WaitGroup

	for i, strategy := range strategies {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			results[i] = e.execute(ctx, strategy)
		}
		if err := e.pool.Submit(task); err != nil {
			e.logger.Debug("worker pool rejected strategy, running inline", "strategy", strategy.Name, "err", err)
			task()
		}
	}

	wg.Wait()
	return results
}

// execute runs one strategy, turning errors and panics into a result.
func (e *executor) execute(ctx context.Context, strategy Strategy) (result StrategyResult) {
	result = StrategyResult{
		Name:     strategy.Name,
		Source:   strategy.Source,
		Priority: strategy.Priority,
	}

	defer func() {
		if r := recover(); r != nil {
			result.Records = nil
			result.Err = fmt.Errorf("strategy %s panicked: %v", strategy.Name, r)
			e.logger.Error("strategy panicked", "strategy", strategy.Name, "panic", r)
		}
	}()

	raws, err := strategy.Execute(ctx, e.dir)
	if err != nil {
		e.logger.Debug("strategy failed", "strategy", strategy.Name, "err", err)
		result.Err = err
		return result
	}

	result.Records = make([]core.SchoolRecord, 0, len(raws))
	for _, raw := range raws {
		result.Records = append(result.Records, directory.Normalize(raw))
	}
	return result
}
