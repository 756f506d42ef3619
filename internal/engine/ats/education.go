package ats

// Education alignment policy constants.
var (
	// EducationGapPenalty is the deduction per ordinal level the resume
	// falls below the required degree.
	EducationGapPenalty = 25.0
	// EducationFloor is the minimum score when the candidate holds any
	// post-secondary degree: some education is never worth zero.
	EducationFloor = 25.0
)

// scoreEducation rates degree alignment on the fixed ordinal scale
// none < associate < bachelor < master < doctorate. Meeting or exceeding
// the requirement, or a job description that mentions no degree, scores
// 100; otherwise the score drops by EducationGapPenalty per missing level,
// floored at EducationFloor when the candidate has any degree at all.
func (rs *Ruleset) scoreEducation(profile *ResumeProfile, job *JobDescription) DimensionScore {
	required := job.DegreeRequired
	highest := HighestDegree(profile.Education)

	if required == DegreeNone {
		return DimensionScore{
			Dimension: DimensionEducation,
			Score:     100,
			Rationale: "job description mentions no degree requirement",
		}
	}
	if highest >= required {
		return DimensionScore{
			Dimension: DimensionEducation,
			Score:     100,
			Matched:   []string{highest.String()},
			Rationale: rationalef("%s meets required %s", highest, required),
		}
	}

	gap := float64(required - highest)
	score := 100 - gap*EducationGapPenalty
	if highest > DegreeNone && score < EducationFloor {
		score = EducationFloor
	}

	ds := DimensionScore{
		Dimension: DimensionEducation,
		Score:     clampScore(round1(score)),
		Missing:   []string{required.String()},
		Rationale: rationalef("highest degree %s is below required %s", highest, required),
	}
	if highest > DegreeNone {
		ds.Matched = []string{highest.String()}
	}
	return ds
}
