package search

import (
	"sort"

	"github.com/poiesic/schoolfinder/core"
)

// aggregate scores every candidate, drops those under MinRelevance, keeps
// the best variant per dedup key and returns at most maxResults records
// ordered by score, then by TieBreak.
func aggregate(results []StrategyResult, query string, scorer Scorer, maxResults int, monitor SearchMonitor) []core.SchoolRecord {
	ordered := append([]StrategyResult(nil), results...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority > ordered[j].Priority
	})

	qc := ParseQuery(query)
	best := make(map[string]int)
	merged := make([]core.SchoolRecord, 0)

	for _, result := range ordered {
		for i := range result.Records {
			rec := result.Records[i]
			score := scorer.score(&rec, query, qc, result.Source)
			if score < MinRelevance {
				monitor.CandidateDropped(&rec, result.Source, score)
				continue
			}
			monitor.CandidateScored(&rec, result.Source, score)

			rec.SearchSource = result.Source
			rec.RelevanceScore = score

			key := rec.DedupKey()
			if idx, seen := best[key]; seen {
				if score > merged[idx].RelevanceScore {
					merged[idx] = rec
				}
				continue
			}
			best[key] = len(merged)
			merged = append(merged, rec)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].RelevanceScore != merged[j].RelevanceScore {
			return merged[i].RelevanceScore > merged[j].RelevanceScore
		}
		return merged[i].TieBreak() > merged[j].TieBreak()
	})

	if maxResults > 0 && len(merged) > maxResults {
		merged = merged[:maxResults]
	}
	return merged
}
