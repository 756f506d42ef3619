package ats

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
)

const analyzeJob = "Python developer with AWS and Docker experience. Bachelor's degree required."

func analyzeProfile() *ResumeProfile {
	return &ResumeProfile{
		Skills:         []Skill{{Name: "Python"}, {Name: "AWS"}},
		Experience:     []ExperienceEntry{},
		Education:      []EducationEntry{{Degree: "Bachelor of Science in Computer Science"}},
		Certifications: []string{},
	}
}

// --- Analyze ---

func TestAnalyze(t *testing.T) {
	rs := testRuleset(t)

	resume := "Summary\nPython engineer with AWS experience.\nSkills: Python, AWS\nEducation: Bachelor of Science"
	r := rs.Analyze(resume, analyzeProfile(), analyzeJob)

	dim := dimensionIndex(r)
	if got := dim[DimensionSkills].Score; got != 66.7 {
		t.Errorf("skills = %v, want 66.7 (2 of 3 required)", got)
	}
	if got := dim[DimensionEducation].Score; got != 100 {
		t.Errorf("education = %v, want 100", got)
	}
	if got := dim[DimensionExperience].Score; got != 0 {
		t.Errorf("experience = %v, want 0 (no entries)", got)
	}

	missing := strings.Join(r.MissingKeywords, " ")
	if !strings.Contains(missing, "docker") {
		t.Errorf("MissingKeywords = %v, want docker present", r.MissingKeywords)
	}

	if len(r.Dimensions) != 5 {
		t.Fatalf("len(Dimensions) = %d, want 5", len(r.Dimensions))
	}
	wantOrder := []string{DimensionKeyword, DimensionSkills, DimensionExperience, DimensionEducation, DimensionFormatting}
	for i, d := range r.Dimensions {
		if d.Dimension != wantOrder[i] {
			t.Errorf("Dimensions[%d] = %q, want %q", i, d.Dimension, wantOrder[i])
		}
	}
}

func TestAnalyzeOverallIsWeightedSum(t *testing.T) {
	rs := testRuleset(t)

	r := rs.Analyze("Python engineer, AWS, Docker. jane@example.com", nil, analyzeJob)

	dim := dimensionIndex(r)
	w := rs.Weights
	want := int(math.Round(dim[DimensionKeyword].Score*w.Keyword +
		dim[DimensionSkills].Score*w.Skills +
		dim[DimensionExperience].Score*w.Experience +
		dim[DimensionEducation].Score*w.Education +
		dim[DimensionFormatting].Score*w.Formatting))
	if r.OverallScore != want {
		t.Errorf("OverallScore = %d, want %d", r.OverallScore, want)
	}
	if r.OverallScore < 0 || r.OverallScore > 100 {
		t.Errorf("OverallScore = %d outside [0,100]", r.OverallScore)
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	rs := testRuleset(t)

	resume := "Summary\nPython and AWS work.\nSkills: Python, AWS, Docker\nExperience\n- Built APIs\nEducation: BSc"
	a, err := json.Marshal(rs.Analyze(resume, analyzeProfile(), analyzeJob))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		b, err := json.Marshal(rs.Analyze(resume, analyzeProfile(), analyzeJob))
		if err != nil {
			t.Fatal(err)
		}
		if string(a) != string(b) {
			t.Fatalf("run %d differs:\n%s\n%s", i, a, b)
		}
	}
}

func TestAnalyzeMonotonicKeywordAdd(t *testing.T) {
	rs := testRuleset(t)

	base := "Python engineer with AWS background and a bachelor degree"
	better := base + " plus docker in production"

	s1 := rs.Analyze(base, nil, analyzeJob).OverallScore
	s2 := rs.Analyze(better, nil, analyzeJob).OverallScore
	if s2 < s1 {
		t.Errorf("adding a matched keyword lowered the score: %d -> %d", s1, s2)
	}
}

func TestAnalyzeNilProfileFallsBack(t *testing.T) {
	rs := testRuleset(t)

	r := rs.Analyze("Python and AWS engineer, bachelor degree, jane@example.com", nil, analyzeJob)

	dim := dimensionIndex(r)
	if dim[DimensionSkills].Score != 66.7 {
		t.Errorf("fallback skills = %v, want 66.7", dim[DimensionSkills].Score)
	}
	if dim[DimensionExperience].Score != 0 {
		t.Errorf("fallback experience = %v, want 0", dim[DimensionExperience].Score)
	}
}

func TestAnalyzeIncompleteProfileWarns(t *testing.T) {
	rs := testRuleset(t)

	r := rs.Analyze("short text", &ResumeProfile{}, analyzeJob)

	found := false
	for _, iss := range r.FormattingIssues {
		if strings.Contains(iss.Message, "incomplete profile") {
			found = true
			if iss.Penalty != 0 {
				t.Errorf("incomplete-profile issue carries penalty %v", iss.Penalty)
			}
		}
	}
	if !found {
		t.Errorf("no incomplete-profile warning in %+v", r.FormattingIssues)
	}
}

func TestAnalyzeEmptyEverything(t *testing.T) {
	rs := testRuleset(t)

	r := rs.Analyze("", nil, "")

	dim := dimensionIndex(r)
	if dim[DimensionKeyword].Score != 100 || dim[DimensionSkills].Score != 100 {
		t.Errorf("empty job must not penalize: keyword %v skills %v",
			dim[DimensionKeyword].Score, dim[DimensionSkills].Score)
	}
	if dim[DimensionExperience].Score != 0 {
		t.Errorf("experience = %v, want 0", dim[DimensionExperience].Score)
	}
	if r.Industry != IndustryGeneral {
		t.Errorf("Industry = %q, want general", r.Industry)
	}
	if r.OverallScore < 0 || r.OverallScore > 100 {
		t.Errorf("OverallScore = %d outside range", r.OverallScore)
	}
}
