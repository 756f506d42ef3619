package ats

import (
	"regexp"
	"sort"
	"strings"
)

// --- Resume profile ---

// ExperienceEntry is one work history item from the structured extractor.
type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
}

// EducationEntry is one education item from the structured extractor.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution,omitempty"`
	Field       string `json:"field,omitempty"`
	Date        string `json:"date,omitempty"`
}

// ResumeProfile is the structured view of a resume. It is supplied by an
// external extractor and treated as read-only input; any section may be
// empty (degraded profile).
type ResumeProfile struct {
	Name           string            `json:"name,omitempty"`
	Email          string            `json:"email,omitempty"`
	Phone          string            `json:"phone,omitempty"`
	Experience     []ExperienceEntry `json:"experience"`
	Education      []EducationEntry  `json:"education"`
	Certifications []string          `json:"certifications"`
	Skills         []Skill           `json:"skills"`
}

// NormalizeProfile returns a copy with skills deduplicated on canonical name
// and nil containers replaced by empty ones. The second return reports
// whether any container was nil, a caller contract violation the analyzer
// surfaces as an "incomplete profile" warning instead of failing.
func NormalizeProfile(p ResumeProfile) (ResumeProfile, bool) {
	incomplete := p.Skills == nil || p.Experience == nil || p.Education == nil || p.Certifications == nil

	seen := make(map[string]bool, len(p.Skills))
	skills := make([]Skill, 0, len(p.Skills))
	for _, s := range p.Skills {
		name := CanonicalSkill(s.Name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		skills = append(skills, Skill{Name: name, Category: strings.ToLower(strings.TrimSpace(s.Category))})
	}
	sort.Slice(skills, func(i, j int) bool { return skills[i].Name < skills[j].Name })
	p.Skills = skills

	if p.Experience == nil {
		p.Experience = []ExperienceEntry{}
	}
	if p.Education == nil {
		p.Education = []EducationEntry{}
	}
	if p.Certifications == nil {
		p.Certifications = []string{}
	}
	return p, incomplete
}

// --- Job description ---

// JobDescription is raw job posting text plus everything the engine derives
// from it: normalized tokens, required skills, degree requirement, industry.
// Derivation is deterministic given the same text and reference tables.
type JobDescription struct {
	Raw            string  `json:"raw"`
	RequiredSkills []Skill `json:"required_skills"`
	Industry       string  `json:"industry"`
	DegreeRequired Degree  `json:"degree_required"`

	Doc *Doc `json:"-"`
}

// ParseJobDescription derives the job-side inputs for all scorers. Empty
// text is valid: it produces an empty token set, no required skills, the
// "general" industry, and no degree requirement.
func (rs *Ruleset) ParseJobDescription(raw string) *JobDescription {
	doc := Normalize(raw, rs.Phrases)
	industry, _ := rs.Industries.DetectIndustry(doc)
	return &JobDescription{
		Raw:            raw,
		RequiredSkills: rs.Taxonomy.MatchSkills(doc),
		Industry:       industry,
		DegreeRequired: DetectDegree(doc),
		Doc:            doc,
	}
}

// --- Degree levels ---

// Degree is the ordinal education level used for alignment scoring.
type Degree int

const (
	DegreeNone Degree = iota
	DegreeAssociate
	DegreeBachelor
	DegreeMaster
	DegreeDoctorate
)

// String returns the human-readable degree level name.
func (d Degree) String() string {
	switch d {
	case DegreeAssociate:
		return "associate"
	case DegreeBachelor:
		return "bachelor"
	case DegreeMaster:
		return "master"
	case DegreeDoctorate:
		return "doctorate"
	}
	return "none"
}

// degreeTerms maps degree tokens to ordinal levels. Checked highest-first.
var degreeTerms = []struct {
	level Degree
	terms []string
}{
	{DegreeDoctorate, []string{"phd", "ph.d", "doctorate", "doctoral"}},
	{DegreeMaster, []string{"master", "masters", "master's", "mba", "m.s", "m.a", "msc"}},
	{DegreeBachelor, []string{"bachelor", "bachelors", "bachelor's", "b.s", "b.a", "bsc", "undergraduate"}},
	{DegreeAssociate, []string{"associate", "associates", "associate's", "diploma"}},
}

// DetectDegree returns the highest degree level mentioned in the document,
// DegreeNone when no degree keyword appears.
func DetectDegree(doc *Doc) Degree {
	for _, d := range degreeTerms {
		for _, term := range d.terms {
			if doc.Has(term) {
				return d.level
			}
		}
	}
	return DegreeNone
}

// degreeFromText matches degree keywords inside a free-form degree string
// such as "Bachelor of Science".
func degreeFromText(s string) Degree {
	s = strings.ToLower(s)
	for _, d := range degreeTerms {
		for _, term := range d.terms {
			if strings.Contains(s, term) {
				return d.level
			}
		}
	}
	return DegreeNone
}

// HighestDegree returns the highest ordinal degree across education entries.
func HighestDegree(education []EducationEntry) Degree {
	best := DegreeNone
	for _, e := range education {
		if d := degreeFromText(e.Degree); d > best {
			best = d
		}
	}
	return best
}

// --- Degraded-profile fallback extraction ---

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe = regexp.MustCompile(`(?:\+?\d{1,3}[\s.-]?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`)
)

// FallbackProfile derives a degraded profile directly from raw resume text
// when no structured extractor output is available: skills via taxonomy
// phrase match, the highest degree via keyword lookup, contact via regex,
// certifications from a certifications section.
// Experience entries cannot be recovered this way and stay empty; the
// scorers treat that as a genuine gap.
func (rs *Ruleset) FallbackProfile(raw string) ResumeProfile {
	doc := Normalize(raw, rs.Phrases)

	p := ResumeProfile{
		Skills:         rs.Taxonomy.MatchSkills(doc),
		Experience:     []ExperienceEntry{},
		Education:      []EducationEntry{},
		Certifications: extractCertifications(raw),
	}
	if p.Skills == nil {
		p.Skills = []Skill{}
	}
	if m := emailRe.FindString(raw); m != "" {
		p.Email = m
	}
	if m := phoneRe.FindString(raw); m != "" {
		p.Phone = m
	}
	if d := DetectDegree(doc); d != DegreeNone {
		p.Education = append(p.Education, EducationEntry{Degree: d.String()})
	}
	return p
}

// extractCertifications collects the non-empty lines following a
// "certifications" heading, up to the next blank line or section heading.
func extractCertifications(raw string) []string {
	certs := []string{}
	in := false
	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)
		if strings.HasPrefix(lower, "certification") {
			in = true
			continue
		}
		if !in {
			continue
		}
		if trimmed == "" || isSectionHeading(lower) {
			break
		}
		certs = append(certs, strings.TrimLeft(trimmed, "-*• \t"))
	}
	return certs
}

func isSectionHeading(lower string) bool {
	for _, h := range sectionHeaders {
		if strings.HasPrefix(lower, h) {
			return true
		}
	}
	return false
}
