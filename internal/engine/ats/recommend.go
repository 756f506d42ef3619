package ats

import (
	"fmt"
	"sort"
	"strings"
)

const maxRecommendations = 8

// recommend derives actionable advice from a finished result. Purely
// rule-based and deterministic: same result, same recommendations.
func (rs *Ruleset) recommend(r *AnalysisResult) []string {
	var recs []string
	dim := dimensionIndex(r)

	if s := dim[DimensionSkills]; s.Score < 70 && len(s.Missing) > 0 {
		recs = append(recs, fmt.Sprintf("Add these missing key skills to your resume: %s",
			strings.Join(topN(s.Missing, 5), ", ")))
	}
	if dim[DimensionExperience].Score < 70 {
		recs = append(recs, "Highlight more relevant work experience and quantify achievements with specific metrics")
	}
	if f := dim[DimensionFormatting]; f.Score < 80 && len(f.Missing) > 0 {
		recs = append(recs, "Fix formatting issues: "+f.Missing[0])
	}
	if kw := dim[DimensionKeyword]; len(kw.Missing) > 5 {
		recs = append(recs, fmt.Sprintf("Consider incorporating these job-relevant keywords: %s",
			strings.Join(topN(r.MissingKeywords, 3), ", ")))
	}
	if dim[DimensionEducation].Score < 70 {
		recs = append(recs, "Clearly highlight your educational background and relevant certifications")
	}
	if len(r.IndustryMissingKeywords) > 0 {
		recs = append(recs, fmt.Sprintf("Add %s terms recruiters scan for: %s",
			r.Industry, strings.Join(topN(r.IndustryMissingKeywords, 4), ", ")))
	}

	switch {
	case r.OverallScore < 40:
		recs = append(recs,
			"Use a simple, clean format with clear section headers",
			"Include a professional summary highlighting your key qualifications")
	case r.OverallScore < 60:
		recs = append(recs, "Focus on adding relevant keywords and improving format structure")
	case r.OverallScore < 80:
		recs = append(recs, "Good progress; fine-tune the specific gaps identified above")
	}

	return topN(recs, maxRecommendations)
}

// ImprovementPriority is one dimension worth improving, ranked by impact.
type ImprovementPriority struct {
	Dimension string  `json:"dimension"`
	Impact    float64 `json:"impact"` // 100 − sub-score
	Advice    string  `json:"advice"`
}

var priorityAdvice = map[string]string{
	DimensionKeyword:    "Mirror the job description's terminology in your resume",
	DimensionSkills:     "Add missing key skills from the job description",
	DimensionExperience: "Better highlight relevant work experience",
	DimensionEducation:  "Clarify your educational background",
	DimensionFormatting: "Improve ATS-friendly formatting",
}

// ImprovementPriorities returns the dimensions scoring below threshold,
// highest impact first. Ties keep the fixed dimension order.
func ImprovementPriorities(r *AnalysisResult, threshold float64) []ImprovementPriority {
	var out []ImprovementPriority
	for _, d := range r.Dimensions {
		if d.Score < threshold {
			out = append(out, ImprovementPriority{
				Dimension: d.Dimension,
				Impact:    round1(100 - d.Score),
				Advice:    priorityAdvice[d.Dimension],
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Impact > out[j].Impact })
	return out
}

func dimensionIndex(r *AnalysisResult) map[string]DimensionScore {
	m := make(map[string]DimensionScore, len(r.Dimensions))
	for _, d := range r.Dimensions {
		m[d.Dimension] = d
	}
	return m
}

func topN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
