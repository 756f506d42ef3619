package ats

// Experience relevance policy constants.
var (
	// RelevanceSaturation is the job-keyword overlap fraction at which a
	// single experience entry counts as fully relevant.
	RelevanceSaturation = 0.35
	// TitleBoost multiplies an entry's relevance when its title contains one
	// of the detected industry's characteristic role keywords.
	TitleBoost = 1.25
)

// scoreExperience rates how relevant the work history is to the job
// description. Each entry contributes a 0–1 relevance weight from the token
// overlap of its description with the job keywords, boosted when the title
// matches an industry role keyword; the mean weight scales to 0–100.
// No experience at all is a genuine gap and scores 0, not a guard skip.
func (rs *Ruleset) scoreExperience(profile *ResumeProfile, job *JobDescription) DimensionScore {
	if len(profile.Experience) == 0 {
		return DimensionScore{
			Dimension: DimensionExperience,
			Score:     0,
			Rationale: "no experience entries found",
		}
	}

	jobKeywords := job.Doc.Distinct()
	industry := rs.Industries.Profile(job.Industry)

	var total float64
	var matched, missing []string
	for _, entry := range profile.Experience {
		r := rs.entryRelevance(entry, jobKeywords, industry)
		total += r
		if r > 0 {
			matched = append(matched, entry.Title)
		} else {
			missing = append(missing, entry.Title)
		}
	}

	score := total / float64(len(profile.Experience)) * 100
	return DimensionScore{
		Dimension: DimensionExperience,
		Score:     clampScore(round1(score)),
		Matched:   matched,
		Missing:   missing,
		Rationale: rationalef("%d of %d experience entries overlap the job description", len(matched), len(profile.Experience)),
	}
}

// entryRelevance computes one entry's 0–1 relevance weight.
func (rs *Ruleset) entryRelevance(entry ExperienceEntry, jobKeywords []string, industry *IndustryProfile) float64 {
	if len(jobKeywords) == 0 {
		// Unscoreable job text: any present entry counts as fully relevant.
		return 1
	}

	entryDoc := Normalize(entry.Title+" "+entry.Description, rs.Phrases)
	overlap := 0
	for _, kw := range jobKeywords {
		if entryDoc.Has(kw) {
			overlap++
		}
	}

	r := float64(overlap) / float64(len(jobKeywords)) / RelevanceSaturation
	if industry != nil && titleMatchesRole(entry.Title, industry) {
		r *= TitleBoost
	}
	if r > 1 {
		r = 1
	}
	return r
}

// titleMatchesRole reports whether the entry title contains any of the
// industry's characteristic role keywords.
func titleMatchesRole(title string, industry *IndustryProfile) bool {
	titleDoc := Normalize(title, NewPhraseSet(industry.Roles))
	for _, role := range industry.Roles {
		if titleDoc.Has(role) {
			return true
		}
	}
	return false
}
