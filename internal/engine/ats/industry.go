package ats

import (
	"fmt"
	"sort"
	"strings"

	"go.yaml.in/yaml/v4"
)

// IndustryGeneral is the sentinel returned when no industry keyword matches.
const IndustryGeneral = "general"

// IndustryProfile is one fixed industry variant: its keyword set drives
// classification and gap recommendations, its role keywords boost experience
// titles.
type IndustryProfile struct {
	Name     string   `yaml:"name" json:"name"`
	Keywords []string `yaml:"keywords" json:"keywords"`
	Roles    []string `yaml:"roles" json:"roles"`

	keywordSet map[string]bool
}

type industriesFile struct {
	Industries []IndustryProfile `yaml:"industries"`
}

// IndustrySet holds the fixed industry profiles in declaration order plus
// precomputed keyword specificity weights. Immutable after load.
type IndustrySet struct {
	Profiles    []IndustryProfile
	specificity map[string]float64 // keyword → 1 / industries containing it
	byName      map[string]*IndustryProfile
}

// LoadIndustries reads industry profiles from the given YAML file, or the
// embedded default when path is empty. Declaration order is preserved; it is
// the classification tie-break order.
func LoadIndustries(path string) (*IndustrySet, error) {
	data, err := readDataFile(path, "data/industries.yml")
	if err != nil {
		return nil, fmt.Errorf("industries: %w", err)
	}

	var f industriesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("industries: parse: %w", err)
	}
	if len(f.Industries) == 0 {
		return nil, fmt.Errorf("industries: no profiles defined")
	}

	set := &IndustrySet{
		Profiles:    f.Industries,
		specificity: make(map[string]float64),
		byName:      make(map[string]*IndustryProfile),
	}

	counts := make(map[string]int)
	for i := range set.Profiles {
		p := &set.Profiles[i]
		p.Name = strings.ToLower(strings.TrimSpace(p.Name))
		if p.Name == "" || len(p.Keywords) == 0 {
			return nil, fmt.Errorf("industries: profile %d missing name or keywords", i)
		}
		p.keywordSet = make(map[string]bool, len(p.Keywords))
		for j, kw := range p.Keywords {
			kw = CanonicalSkill(kw)
			p.Keywords[j] = kw
			if !p.keywordSet[kw] {
				p.keywordSet[kw] = true
				counts[kw]++
			}
		}
		set.byName[p.Name] = p
	}
	for kw, n := range counts {
		set.specificity[kw] = 1 / float64(n)
	}
	return set, nil
}

// Specificity returns the weight of a keyword: 1 / (number of industries
// whose keyword set contains it), 0 for keywords outside every set.
func (s *IndustrySet) Specificity(keyword string) float64 {
	return s.specificity[CanonicalSkill(keyword)]
}

// Profile returns the profile for an industry name, nil for unknown names
// and for the "general" sentinel.
func (s *IndustrySet) Profile(name string) *IndustryProfile {
	return s.byName[strings.ToLower(strings.TrimSpace(name))]
}

// IndustryVote is one row of the classification tally.
type IndustryVote struct {
	Industry string  `json:"industry"`
	Score    float64 `json:"score"`
	Matched  int     `json:"matched"`
}

// DetectIndustry classifies a job description by voting across the fixed
// industry keyword sets. Each distinct document term present in a set adds
// that keyword's specificity weight. Ties break by declaration order; no
// match at all yields the "general" sentinel. Token order in the input
// cannot affect the outcome: only distinct term presence is counted.
func (s *IndustrySet) DetectIndustry(doc *Doc) (string, []IndustryVote) {
	votes := make([]IndustryVote, len(s.Profiles))
	best := -1
	for i := range s.Profiles {
		p := &s.Profiles[i]
		v := IndustryVote{Industry: p.Name}
		for _, kw := range p.Keywords {
			if doc.Has(kw) {
				v.Score += s.specificity[kw]
				v.Matched++
			}
		}
		votes[i] = v
		if v.Score > 0 && (best < 0 || v.Score > votes[best].Score) {
			best = i
		}
	}
	if best < 0 {
		return IndustryGeneral, votes
	}
	return votes[best].Industry, votes
}

// MissingIndustryKeywords returns the detected industry's keywords that the
// job description mentions but the resume lacks, specificity-sorted.
func (s *IndustrySet) MissingIndustryKeywords(industry string, jobDoc, resumeDoc *Doc) []string {
	p := s.Profile(industry)
	if p == nil {
		return nil // "general": no industry-specific recommendations
	}
	var missing []string
	seen := make(map[string]bool)
	for _, kw := range p.Keywords {
		if !seen[kw] && jobDoc.Has(kw) && !resumeDoc.Has(kw) {
			seen[kw] = true
			missing = append(missing, kw)
		}
	}
	s.SortBySpecificity(missing, jobDoc.Freq)
	return missing
}

// SortBySpecificity orders keywords rarest-first: higher specificity weight
// first, then higher job-description frequency, then alphabetically. The
// final alphabetical key keeps the order fully deterministic.
func (s *IndustrySet) SortBySpecificity(keywords []string, freq map[string]int) {
	sort.SliceStable(keywords, func(i, j int) bool {
		wi, wj := s.specificity[keywords[i]], s.specificity[keywords[j]]
		if wi != wj {
			return wi > wj
		}
		if fi, fj := freq[keywords[i]], freq[keywords[j]]; fi != fj {
			return fi > fj
		}
		return keywords[i] < keywords[j]
	})
}
