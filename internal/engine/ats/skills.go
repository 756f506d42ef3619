package ats

// scoreSkills rates the overlap between the profile's skill set and the
// skills the job description requires. No required skills → 100 with empty
// evidence: an unscoreable requirement cannot penalize the candidate.
func (rs *Ruleset) scoreSkills(profile *ResumeProfile, job *JobDescription) DimensionScore {
	if len(job.RequiredSkills) == 0 {
		return DimensionScore{
			Dimension: DimensionSkills,
			Score:     100,
			Rationale: "job description lists no recognizable required skills",
		}
	}

	have := make(map[string]bool, len(profile.Skills))
	for _, s := range profile.Skills {
		have[s.Name] = true
	}

	var matched, missing []string
	for _, s := range job.RequiredSkills {
		if have[s.Name] {
			matched = append(matched, s.Name)
		} else {
			missing = append(missing, s.Name)
		}
	}

	score := float64(len(matched)) / float64(len(job.RequiredSkills)) * 100
	return DimensionScore{
		Dimension: DimensionSkills,
		Score:     clampScore(round1(score)),
		Matched:   matched,
		Missing:   missing,
		Rationale: rationalef("%d of %d required skills present", len(matched), len(job.RequiredSkills)),
	}
}

// splitSkillsByMatch partitions the job's required skills into matched and
// missing sets, grouped by taxonomy category for presentation.
func (rs *Ruleset) splitSkillsByMatch(profile *ResumeProfile, job *JobDescription) (matched, missing map[string][]string) {
	have := make(map[string]bool, len(profile.Skills))
	for _, s := range profile.Skills {
		have[s.Name] = true
	}
	var m, x []Skill
	for _, s := range job.RequiredSkills {
		if have[s.Name] {
			m = append(m, s)
		} else {
			x = append(x, s)
		}
	}
	return GroupByCategory(m), GroupByCategory(x)
}
