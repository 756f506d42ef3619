package ats

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
)

// CompareEntry is one resume in a comparison run. Profile may be nil; a
// degraded profile is then derived from the raw text.
type CompareEntry struct {
	ID      string
	Resume  string
	Profile *ResumeProfile
}

// RankedResume is one comparison row: the entry's identifier, its rank
// (1-based) and its full analysis.
type RankedResume struct {
	ID       string          `json:"id"`
	Rank     int             `json:"rank"`
	Analysis *AnalysisResult `json:"analysis"`
}

// ComparisonResult ranks N resumes against one job description.
type ComparisonResult struct {
	Industry string         `json:"industry"`
	Ranking  []RankedResume `json:"ranking"`
	BestID   string         `json:"best_id,omitempty"`
}

// Compare analyzes each entry against the same job description and ranks
// the results by overall score, descending. Per-resume analyses share no
// mutable state and run on up to workers goroutines; ties keep the original
// input order, and the ranking is identical for any worker count.
func (rs *Ruleset) Compare(ctx context.Context, entries []CompareEntry, jobText string, workers int) (*ComparisonResult, error) {
	if workers < 1 {
		workers = 1
	}

	ranked := make([]RankedResume, len(entries))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, e := range entries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ranked[i] = RankedResume{ID: e.ID, Analysis: rs.Analyze(e.Resume, e.Profile, jobText)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Stable sort: equal scores keep input order regardless of concurrency.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Analysis.OverallScore > ranked[j].Analysis.OverallScore
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	result := &ComparisonResult{Ranking: ranked}
	if len(ranked) > 0 {
		result.BestID = ranked[0].ID
		result.Industry = ranked[0].Analysis.Industry
	}
	return result, nil
}
