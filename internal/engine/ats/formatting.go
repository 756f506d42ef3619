package ats

import (
	"regexp"
	"strings"
)

// Severity tags a formatting violation for downstream presentation.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// FormattingIssue is one violated formatting rule.
type FormattingIssue struct {
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
	Penalty  float64  `json:"penalty"`
}

// Formatting policy constants. Deductions start from a 100 baseline and the
// score floors at 0. Values carried over from the reference rule set.
var (
	PenaltyMissingHeaders = 15.0
	PenaltyNoBullets      = 10.0
	PenaltyTooShort       = 10.0
	PenaltyTooLong        = 5.0
	PenaltyNoEmail        = 10.0
	PenaltyNoPhone        = 5.0
	PenaltyBadChars       = 15.0
	PenaltyEmptyLines     = 8.0
	PenaltyColumnLayout   = 12.0

	MinResumeChars = 500
	MaxResumeChars = 3000
)

// sectionHeaders are the standard resume sections ATS parsers key on.
var sectionHeaders = []string{"summary", "experience", "education", "skills", "projects"}

var (
	bulletRe    = regexp.MustCompile(`(?m)^\s*(?:[-*•]\s|\d+\.\s)`)
	columnGapRe = regexp.MustCompile(`\S {3,}\S`)
)

// atsBreakingChars are glyphs known to confuse ATS parsers: table and box
// drawing characters plus non-ASCII bullets.
const atsBreakingChars = "─═┌┐└┘│┬┴├┤▪►●◦"

// scoreFormatting checks the raw resume text and extracted contact fields
// against a fixed ATS-compliance rule set. Each violated rule subtracts a
// fixed amount from a 100 baseline, floored at 0, and records an issue with
// a severity tag. Extra issues (e.g. the incomplete-profile warning) carry
// no deduction but still appear in the list.
func (rs *Ruleset) scoreFormatting(raw string, profile *ResumeProfile, extra []FormattingIssue) (DimensionScore, []FormattingIssue) {
	score := 100.0
	issues := append([]FormattingIssue{}, extra...)

	fail := func(msg string, sev Severity, penalty float64) {
		score -= penalty
		issues = append(issues, FormattingIssue{Message: msg, Severity: sev, Penalty: penalty})
	}

	lower := strings.ToLower(raw)

	found := 0
	for _, h := range sectionHeaders {
		if strings.Contains(lower, h) {
			found++
		}
	}
	if found < 3 {
		fail("missing standard section headers (summary, experience, education, skills)", SeverityWarning, PenaltyMissingHeaders)
	}

	if !bulletRe.MatchString(raw) {
		fail("no bullet points found; use bullets for scannable structure", SeverityInfo, PenaltyNoBullets)
	}

	switch n := len(raw); {
	case n < MinResumeChars:
		fail("resume text is very short; add detail to experience and skills", SeverityWarning, PenaltyTooShort)
	case n > MaxResumeChars:
		fail("resume text is long; consider condensing", SeverityInfo, PenaltyTooLong)
	}

	if profile.Email == "" && emailRe.FindString(raw) == "" {
		fail("no email address found", SeverityWarning, PenaltyNoEmail)
	}
	if profile.Phone == "" && phoneRe.FindString(raw) == "" {
		fail("no phone number found", SeverityInfo, PenaltyNoPhone)
	}

	if strings.ContainsAny(raw, atsBreakingChars) || strings.Contains(raw, "|") {
		fail("characters detected that break ATS parsers (tables, box drawing, non-ASCII bullets)", SeverityCritical, PenaltyBadChars)
	}

	if lines := strings.Split(raw, "\n"); len(lines) > 1 {
		empty := 0
		columnish := 0
		for _, line := range lines {
			if strings.TrimSpace(line) == "" {
				empty++
			}
			if len(columnGapRe.FindAllString(line, 3)) >= 2 {
				columnish++
			}
		}
		if float64(empty)/float64(len(lines)) > 0.5 {
			fail("more than half the lines are empty; tighten spacing", SeverityInfo, PenaltyEmptyLines)
		}
		if columnish >= 3 {
			fail("irregular whitespace suggests a multi-column layout; ATS parsers read columns out of order", SeverityWarning, PenaltyColumnLayout)
		}
	}

	if score < 0 {
		score = 0
	}

	var violated []string
	for _, iss := range issues {
		if iss.Penalty > 0 {
			violated = append(violated, iss.Message)
		}
	}
	return DimensionScore{
		Dimension: DimensionFormatting,
		Score:     round1(score),
		Missing:   violated,
		Rationale: rationalef("%d formatting rules violated", len(violated)),
	}, issues
}
