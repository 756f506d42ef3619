package ats

import (
	"strings"
	"testing"
)

// --- recommend ---

func TestRecommendLowScores(t *testing.T) {
	rs := testRuleset(t)

	// Weak resume against a demanding job: several rules should fire.
	r := rs.Analyze("I enjoy gardening.", nil, analyzeJob)

	if len(r.Recommendations) == 0 {
		t.Fatal("no recommendations for a weak match")
	}
	if len(r.Recommendations) > maxRecommendations {
		t.Errorf("len = %d, exceeds cap %d", len(r.Recommendations), maxRecommendations)
	}

	joined := strings.Join(r.Recommendations, "\n")
	if !strings.Contains(joined, "missing key skills") {
		t.Errorf("no skills recommendation in:\n%s", joined)
	}
	if !strings.Contains(joined, "work experience") {
		t.Errorf("no experience recommendation in:\n%s", joined)
	}
}

func TestRecommendStrongMatchStaysQuiet(t *testing.T) {
	rs := testRuleset(t)

	resume := cleanResume() // clean formatting, has contact info
	r := rs.Analyze(resume, &ResumeProfile{
		Skills:         []Skill{{Name: "python"}, {Name: "aws"}, {Name: "docker"}},
		Experience:     []ExperienceEntry{{Title: "Python Developer", Description: "python aws docker experience bachelor degree required developer"}},
		Education:      []EducationEntry{{Degree: "Master of Science"}},
		Certifications: []string{},
	}, analyzeJob)

	// A strong match should not be told to add the skills it already has.
	for _, rec := range r.Recommendations {
		if strings.Contains(rec, "missing key skills") {
			t.Errorf("skills recommendation on a full skill match: %q", rec)
		}
	}
}

func TestRecommendDeterministic(t *testing.T) {
	rs := testRuleset(t)

	a := rs.Analyze("short resume", nil, analyzeJob)
	b := rs.Analyze("short resume", nil, analyzeJob)
	if strings.Join(a.Recommendations, "|") != strings.Join(b.Recommendations, "|") {
		t.Errorf("recommendations differ between runs:\n%v\n%v", a.Recommendations, b.Recommendations)
	}
}

// --- ImprovementPriorities ---

func TestImprovementPriorities(t *testing.T) {
	r := &AnalysisResult{
		Dimensions: []DimensionScore{
			{Dimension: DimensionKeyword, Score: 90},
			{Dimension: DimensionSkills, Score: 40},
			{Dimension: DimensionExperience, Score: 70},
			{Dimension: DimensionEducation, Score: 100},
			{Dimension: DimensionFormatting, Score: 70},
		},
	}

	got := ImprovementPriorities(r, 80)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3 (dimensions below 80)", len(got))
	}
	if got[0].Dimension != DimensionSkills || got[0].Impact != 60 {
		t.Errorf("got[0] = %+v, want skills with impact 60", got[0])
	}
	// Equal impact keeps the fixed dimension order.
	if got[1].Dimension != DimensionExperience || got[2].Dimension != DimensionFormatting {
		t.Errorf("tie order = [%s %s], want experience then formatting", got[1].Dimension, got[2].Dimension)
	}
	for _, p := range got {
		if p.Advice == "" {
			t.Errorf("no advice for %s", p.Dimension)
		}
	}
}

func TestImprovementPrioritiesAllStrong(t *testing.T) {
	r := &AnalysisResult{
		Dimensions: []DimensionScore{
			{Dimension: DimensionKeyword, Score: 95},
			{Dimension: DimensionSkills, Score: 90},
		},
	}
	if got := ImprovementPriorities(r, 80); len(got) != 0 {
		t.Errorf("ImprovementPriorities() = %+v, want none", got)
	}
}
