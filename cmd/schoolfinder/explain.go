package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/poiesic/schoolfinder/core"
	"github.com/poiesic/schoolfinder/search"
)

// explainMonitor prints every stage of a search.
type explainMonitor struct {
	out io.Writer
}

var _ search.SearchMonitor = (*explainMonitor)(nil)

func (m *explainMonitor) Start(query string) {
	fmt.Fprintf(m.out, "query: %q\n", query)
}

func (m *explainMonitor) AfterQueryParse(qc core.QueryComponents) {
	fmt.Fprintf(m.out, "parsed: terms=%q city=%q state=%q\n", qc.SchoolTerms, qc.City, qc.State)
}

func (m *explainMonitor) StrategiesPlanned(strategies []search.Strategy) {
	names := make([]string, len(strategies))
	for i, s := range strategies {
		names[i] = fmt.Sprintf("%s(%d)", s.Name, s.Priority)
	}
	fmt.Fprintf(m.out, "strategies: %s\n", strings.Join(names, ", "))
}

func (m *explainMonitor) StrategyFinished(result search.StrategyResult) {
	if result.Err != nil {
		fmt.Fprintf(m.out, "  %s failed: %v\n", result.Name, result.Err)
		return
	}
	fmt.Fprintf(m.out, "  %s returned %d candidates\n", result.Name, len(result.Records))
}

func (m *explainMonitor) CandidateScored(rec *core.SchoolRecord, source string, score float64) {
	fmt.Fprintf(m.out, "    + %-40s %-16s %7.2f\n", rec.Name, source, score)
}

func (m *explainMonitor) CandidateDropped(rec *core.SchoolRecord, source string, score float64) {
	fmt.Fprintf(m.out, "    - %-40s %-16s %7.2f (below %.0f)\n", rec.Name, source, score, search.MinRelevance)
}

func (m *explainMonitor) DirectoryUnavailable(errs []error) {
	fmt.Fprintf(m.out, "directory unavailable: %d strategies failed\n", len(errs))
}

func (m *explainMonitor) Finish(results []core.SchoolRecord) {
	fmt.Fprintf(m.out, "ranked: %d\n", len(results))
}
