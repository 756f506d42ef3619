package ats

import (
	"fmt"
	"sort"
	"strings"
)

// ScoreStatus maps a 0–100 score to a human status label.
func ScoreStatus(score float64) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Needs Improvement"
	default:
		return "Poor"
	}
}

// RenderReport formats an analysis as a markdown report: executive summary,
// score breakdown, skill analysis, formatting issues, recommendations, and
// an action plan ordered by improvement impact.
func RenderReport(label string, r *AnalysisResult) string {
	var b strings.Builder

	if label == "" {
		label = "Resume"
	}
	fmt.Fprintf(&b, "# ATS Analysis Report — %s\n\n", label)
	fmt.Fprintf(&b, "**Overall Score:** %d/100 (%s)  \n", r.OverallScore, ScoreStatus(float64(r.OverallScore)))
	fmt.Fprintf(&b, "**Detected Industry:** %s\n\n", r.Industry)

	b.WriteString("## Score Breakdown\n\n")
	b.WriteString("| Dimension | Score | Status |\n|---|---|---|\n")
	for _, d := range r.Dimensions {
		fmt.Fprintf(&b, "| %s | %.1f | %s |\n", d.Dimension, d.Score, ScoreStatus(d.Score))
	}
	b.WriteString("\n")

	writeSkillSection(&b, "Matched Skills", r.MatchedSkills)
	writeSkillSection(&b, "Missing Skills", r.MissingSkills)

	if len(r.MissingKeywords) > 0 {
		b.WriteString("## Missing Keywords\n\n")
		fmt.Fprintf(&b, "%s\n\n", strings.Join(topN(r.MissingKeywords, 15), ", "))
	}

	if len(r.FormattingIssues) > 0 {
		b.WriteString("## Formatting Issues\n\n")
		for _, iss := range r.FormattingIssues {
			fmt.Fprintf(&b, "- **%s**: %s\n", iss.Severity, iss.Message)
		}
		b.WriteString("\n")
	}

	if len(r.Recommendations) > 0 {
		b.WriteString("## Recommendations\n\n")
		for i, rec := range r.Recommendations {
			fmt.Fprintf(&b, "%d. %s\n", i+1, rec)
		}
		b.WriteString("\n")
	}

	if priorities := ImprovementPriorities(r, 80); len(priorities) > 0 {
		b.WriteString("## Action Plan\n\n")
		b.WriteString("Highest-impact improvements first:\n\n")
		for _, p := range priorities {
			fmt.Fprintf(&b, "- **%s** (impact %.0f): %s\n", p.Dimension, p.Impact, p.Advice)
		}
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeSkillSection(b *strings.Builder, title string, byCategory map[string][]string) {
	if len(byCategory) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	cats := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	for _, cat := range cats {
		fmt.Fprintf(b, "- **%s**: %s\n", cat, strings.Join(byCategory[cat], ", "))
	}
	b.WriteString("\n")
}
