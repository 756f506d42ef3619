package ats

// Keyword & density policy constants. Empirical values carried over from the
// reference scoring tables; override before Ruleset construction if needed.
var (
	DensityBonusPerKeyword = 0.5 // points per keyword repeated in the resume
	DensityBonusCap        = 10.0
	DensityFreqCeiling     = 5 // repeats past this stop counting (anti-stuffing)
)

// scoreKeywords rates how much of the job description's keyword vocabulary
// the resume covers: overlap ratio × 100 plus a small, capped density bonus
// for keywords the resume repeats. A job description with no extractable
// keywords cannot penalize anyone and scores 100.
func (rs *Ruleset) scoreKeywords(resumeDoc *Doc, job *JobDescription) DimensionScore {
	jobKeywords := job.Doc.Distinct()
	if len(jobKeywords) == 0 {
		return DimensionScore{
			Dimension: DimensionKeyword,
			Score:     100,
			Rationale: "job description has no extractable keywords; nothing to match against",
		}
	}

	var matched, missing []string
	bonus := 0.0
	for _, kw := range jobKeywords {
		n := resumeDoc.Freq[kw]
		if n == 0 && !resumeDoc.Has(kw) {
			missing = append(missing, kw)
			continue
		}
		matched = append(matched, kw)
		if n > DensityFreqCeiling {
			n = DensityFreqCeiling
		}
		if n >= 2 {
			bonus += DensityBonusPerKeyword
		}
	}
	if bonus > DensityBonusCap {
		bonus = DensityBonusCap
	}

	rs.Industries.SortBySpecificity(missing, job.Doc.Freq)

	overlap := float64(len(matched)) / float64(len(jobKeywords))
	return DimensionScore{
		Dimension: DimensionKeyword,
		Score:     clampScore(round1(overlap*100 + bonus)),
		Matched:   matched,
		Missing:   missing,
		Rationale: rationalef("%d of %d job keywords found in resume", len(matched), len(jobKeywords)),
	}
}
