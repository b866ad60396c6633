package search

import "github.com/poiesic/schoolfinder/core"

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
// Hooks may be called from the searching goroutine only; strategies report
// back through StrategyFinished after the fan-in.
type SearchMonitor interface {
	Start(query string)
	AfterQueryParse(components core.QueryComponents)
	StrategiesPlanned(strategies []Strategy)
	StrategyFinished(result StrategyResult)
	CandidateScored(record *core.SchoolRecord, source string, score float64)
	CandidateDropped(record *core.SchoolRecord, source string, score float64)
	DirectoryUnavailable(errs []error)
	Finish(results []core.SchoolRecord)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                                             {}
func (n *noopMonitor) AfterQueryParse(_ core.QueryComponents)                     {}
func (n *noopMonitor) StrategiesPlanned(_ []Strategy)                             {}
func (n *noopMonitor) StrategyFinished(_ StrategyResult)                          {}
func (n *noopMonitor) CandidateScored(_ *core.SchoolRecord, _ string, _ float64)  {}
func (n *noopMonitor) CandidateDropped(_ *core.SchoolRecord, _ string, _ float64) {}
func (n *noopMonitor) DirectoryUnavailable(_ []error)                             {}
func (n *noopMonitor) Finish(_ []core.SchoolRecord)                               {}
