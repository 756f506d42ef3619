package ats

import (
	"reflect"
	"testing"
)

// --- scoreKeywords ---

func TestScoreKeywordsEmptyJob(t *testing.T) {
	rs := testRuleset(t)

	job := rs.ParseJobDescription("")
	got := rs.scoreKeywords(Normalize("python aws", rs.Phrases), job)

	if got.Score != 100 {
		t.Errorf("Score = %v, want 100 (nothing to match against)", got.Score)
	}
	if len(got.Matched) != 0 || len(got.Missing) != 0 {
		t.Errorf("evidence not empty: matched %v missing %v", got.Matched, got.Missing)
	}
}

func TestScoreKeywordsOverlapAndDensity(t *testing.T) {
	rs := testRuleset(t)

	job := rs.ParseJobDescription("python aws docker")
	got := rs.scoreKeywords(Normalize("python python aws", rs.Phrases), job)

	// 2 of 3 keywords matched (66.7) plus one density bonus for the
	// repeated keyword (0.5).
	if got.Score != 67.2 {
		t.Errorf("Score = %v, want 67.2", got.Score)
	}
	if !reflect.DeepEqual(got.Missing, []string{"docker"}) {
		t.Errorf("Missing = %v, want [docker]", got.Missing)
	}
	if !reflect.DeepEqual(got.Matched, []string{"aws", "python"}) {
		t.Errorf("Matched = %v, want [aws python]", got.Matched)
	}
}

func TestScoreKeywordsDensityCapped(t *testing.T) {
	rs := testRuleset(t)

	job := rs.ParseJobDescription("python")
	got := rs.scoreKeywords(Normalize("python python python python python python python", rs.Phrases), job)

	// Full overlap already scores 100; stuffing cannot push past the clamp.
	if got.Score != 100 {
		t.Errorf("Score = %v, want 100", got.Score)
	}
}

func TestScoreKeywordsNoOverlap(t *testing.T) {
	rs := testRuleset(t)

	job := rs.ParseJobDescription("python aws docker")
	got := rs.scoreKeywords(Normalize("ceramics pottery kilns", rs.Phrases), job)

	if got.Score != 0 {
		t.Errorf("Score = %v, want 0", got.Score)
	}
	if len(got.Missing) != 3 {
		t.Errorf("Missing = %v, want all 3 job keywords", got.Missing)
	}
}
