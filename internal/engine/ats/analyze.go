// Package ats implements the resume analysis engine: a deterministic,
// explainable compatibility score between a resume and a job description.
//
// The engine is a pure function of its inputs plus the static reference
// tables (skill taxonomy, industry keyword sets) held in a Ruleset. It
// performs no I/O, owns no long-lived state, and every analysis produces a
// fresh immutable result.
package ats

import (
	"fmt"
	"math"
)

// Dimension names, in the fixed order they appear in every result.
const (
	DimensionKeyword    = "keyword"
	DimensionSkills     = "skills"
	DimensionExperience = "experience"
	DimensionEducation  = "education"
	DimensionFormatting = "formatting"
)

// Weights is the fixed dimension weighting policy. The values sum to 1.0;
// they are a policy constant, not derived.
type Weights struct {
	Keyword    float64
	Skills     float64
	Experience float64
	Education  float64
	Formatting float64
}

// DefaultWeights is the standard scoring policy.
var DefaultWeights = Weights{
	Keyword:    0.25,
	Skills:     0.30,
	Experience: 0.20,
	Education:  0.10,
	Formatting: 0.15,
}

// Ruleset bundles the immutable reference data every scoring call needs.
// Build one at process start with NewRuleset and share it by reference;
// it is safe for concurrent use.
type Ruleset struct {
	Taxonomy   *Taxonomy
	Industries *IndustrySet
	Weights    Weights
	Phrases    *PhraseSet
}

// NewRuleset loads the reference tables (empty paths select the embedded
// defaults) and precomputes the phrase list for the normalizer. Malformed
// or empty reference data is an error: the engine cannot produce meaningful
// scores without it.
func NewRuleset(taxonomyPath, industriesPath string) (*Ruleset, error) {
	tax, err := LoadTaxonomy(taxonomyPath)
	if err != nil {
		return nil, err
	}
	inds, err := LoadIndustries(industriesPath)
	if err != nil {
		return nil, err
	}

	phraseSources := [][]string{tax.Names()}
	for _, p := range inds.Profiles {
		phraseSources = append(phraseSources, p.Keywords, p.Roles)
	}

	return &Ruleset{
		Taxonomy:   tax,
		Industries: inds,
		Weights:    DefaultWeights,
		Phrases:    NewPhraseSet(phraseSources...),
	}, nil
}

// DimensionScore is one 0–100 sub-score with its supporting evidence.
type DimensionScore struct {
	Dimension string   `json:"dimension"`
	Score     float64  `json:"score"`
	Matched   []string `json:"matched,omitempty"`
	Missing   []string `json:"missing,omitempty"`
	Rationale string   `json:"rationale"`
}

// AnalysisResult is the full outcome of one (resume, job description)
// analysis. It is created once and never mutated; re-analysis produces a
// new result.
type AnalysisResult struct {
	OverallScore    int              `json:"overall_score"`
	Dimensions      []DimensionScore `json:"dimensions"`
	Industry        string           `json:"industry"`
	MissingKeywords []string         `json:"missing_keywords"`
	// IndustryMissingKeywords are detected-industry keywords the job
	// description mentions but the resume lacks.
	IndustryMissingKeywords []string            `json:"industry_missing_keywords"`
	MatchedSkills           map[string][]string `json:"matched_skills,omitempty"`
	MissingSkills           map[string][]string `json:"missing_skills,omitempty"`
	FormattingIssues        []FormattingIssue   `json:"formatting_issues"`
	Recommendations         []string            `json:"recommendations"`
}

// Analyze scores a resume against a job description. Degenerate inputs
// (empty resume, empty job text, empty profile sections) are valid and
// produce low-but-defined scores, never errors. Pass a nil profile to have
// a degraded one derived from the raw text.
func (rs *Ruleset) Analyze(rawResume string, profile *ResumeProfile, jobText string) *AnalysisResult {
	var extra []FormattingIssue
	var prof ResumeProfile
	if profile == nil {
		prof = rs.FallbackProfile(rawResume)
	} else {
		var incomplete bool
		prof, incomplete = NormalizeProfile(*profile)
		if incomplete {
			extra = append(extra, FormattingIssue{
				Message:  "incomplete profile: one or more extractor sections were absent",
				Severity: SeverityWarning,
			})
		}
	}

	job := rs.ParseJobDescription(jobText)
	resumeDoc := Normalize(rawResume, rs.Phrases)

	keyword := rs.scoreKeywords(resumeDoc, job)
	skills := rs.scoreSkills(&prof, job)
	experience := rs.scoreExperience(&prof, job)
	education := rs.scoreEducation(&prof, job)
	formatting, issues := rs.scoreFormatting(rawResume, &prof, extra)

	w := rs.Weights
	overall := keyword.Score*w.Keyword +
		skills.Score*w.Skills +
		experience.Score*w.Experience +
		education.Score*w.Education +
		formatting.Score*w.Formatting

	industryMissing := rs.Industries.MissingIndustryKeywords(job.Industry, job.Doc, resumeDoc)
	matchedByCat, missingByCat := rs.splitSkillsByMatch(&prof, job)

	result := &AnalysisResult{
		OverallScore:            clampInt(int(math.Round(overall)), 0, 100),
		Dimensions:              []DimensionScore{keyword, skills, experience, education, formatting},
		Industry:                job.Industry,
		MissingKeywords:         rs.mergeMissing(keyword.Missing, industryMissing, job.Doc),
		IndustryMissingKeywords: industryMissing,
		MatchedSkills:           matchedByCat,
		MissingSkills:           missingByCat,
		FormattingIssues:        issues,
	}
	result.Recommendations = rs.recommend(result)
	return result
}

// mergeMissing combines the general and industry-specific missing keyword
// lists, deduplicated and specificity-sorted.
func (rs *Ruleset) mergeMissing(general, industry []string, jobDoc *Doc) []string {
	seen := make(map[string]bool, len(general)+len(industry))
	merged := make([]string, 0, len(general)+len(industry))
	for _, kw := range general {
		if !seen[kw] {
			seen[kw] = true
			merged = append(merged, kw)
		}
	}
	for _, kw := range industry {
		if !seen[kw] {
			seen[kw] = true
			merged = append(merged, kw)
		}
	}
	rs.Industries.SortBySpecificity(merged, jobDoc.Freq)
	return merged
}

// --- Score helpers ---

func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

func clampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// round1 rounds to 1 decimal so sub-scores are stable across platforms.
func round1(f float64) float64 {
	return math.Round(f*10) / 10
}

func rationalef(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
