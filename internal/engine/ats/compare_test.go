package ats

import (
	"context"
	"encoding/json"
	"testing"
)

// --- Compare ---

func compareEntries() []CompareEntry {
	strong := "Summary\nPython developer with AWS and Docker.\nSkills: Python, AWS, Docker\nExperience\n- Shipped python services on aws with docker\nEducation: Bachelor of Science"
	medium := "Summary\nPython engineer.\nSkills: Python\nEducation: Bachelor of Arts"
	weak := "I enjoy gardening and long walks."
	return []CompareEntry{
		{ID: "strong", Resume: strong},
		{ID: "medium", Resume: medium},
		{ID: "weak", Resume: weak},
	}
}

func TestCompareRanking(t *testing.T) {
	rs := testRuleset(t)

	got, err := rs.Compare(context.Background(), compareEntries(), analyzeJob, 4)
	if err != nil {
		t.Fatalf("Compare() error: %v", err)
	}

	if len(got.Ranking) != 3 {
		t.Fatalf("len(Ranking) = %d, want 3", len(got.Ranking))
	}
	if got.Ranking[0].ID != "strong" || got.Ranking[2].ID != "weak" {
		t.Errorf("ranking order = [%s %s %s], want strong first, weak last",
			got.Ranking[0].ID, got.Ranking[1].ID, got.Ranking[2].ID)
	}
	if got.BestID != "strong" {
		t.Errorf("BestID = %q, want strong", got.BestID)
	}
	for i, r := range got.Ranking {
		if r.Rank != i+1 {
			t.Errorf("Ranking[%d].Rank = %d, want %d", i, r.Rank, i+1)
		}
		if r.Analysis == nil {
			t.Errorf("Ranking[%d].Analysis = nil", i)
		}
	}
	for i := 1; i < len(got.Ranking); i++ {
		if got.Ranking[i].Analysis.OverallScore > got.Ranking[i-1].Analysis.OverallScore {
			t.Errorf("ranking not descending at %d", i)
		}
	}
}

func TestCompareWorkerCountInvariant(t *testing.T) {
	rs := testRuleset(t)

	var results [][]byte
	for _, workers := range []int{1, 2, 8, 0} {
		got, err := rs.Compare(context.Background(), compareEntries(), analyzeJob, workers)
		if err != nil {
			t.Fatalf("Compare(workers=%d) error: %v", workers, err)
		}
		b, err := json.Marshal(got)
		if err != nil {
			t.Fatal(err)
		}
		results = append(results, b)
	}
	for i := 1; i < len(results); i++ {
		if string(results[i]) != string(results[0]) {
			t.Errorf("worker count changed the result:\n%s\n%s", results[0], results[i])
		}
	}
}

func TestCompareTiesKeepInputOrder(t *testing.T) {
	rs := testRuleset(t)

	resume := compareEntries()[0].Resume
	entries := []CompareEntry{
		{ID: "first", Resume: resume},
		{ID: "second", Resume: resume},
	}

	got, err := rs.Compare(context.Background(), entries, analyzeJob, 4)
	if err != nil {
		t.Fatalf("Compare() error: %v", err)
	}
	if got.Ranking[0].ID != "first" || got.Ranking[1].ID != "second" {
		t.Errorf("tie broke input order: [%s %s]", got.Ranking[0].ID, got.Ranking[1].ID)
	}
}

func TestCompareCancelledContext(t *testing.T) {
	rs := testRuleset(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := rs.Compare(ctx, compareEntries(), analyzeJob, 1); err == nil {
		t.Error("Compare() with cancelled context returned nil error")
	}
}

func TestCompareEmpty(t *testing.T) {
	rs := testRuleset(t)

	got, err := rs.Compare(context.Background(), nil, analyzeJob, 4)
	if err != nil {
		t.Fatalf("Compare() error: %v", err)
	}
	if len(got.Ranking) != 0 || got.BestID != "" {
		t.Errorf("empty input produced ranking %+v", got)
	}
}
