package ats

import (
	"embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"go.yaml.in/yaml/v4"
)

//go:embed data/*.yml
var dataFS embed.FS

// Skill is one canonical taxonomy entry.
type Skill struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Taxonomy maps canonical skill names to categories. Loaded once at startup
// and never mutated; all lookups are case/spacing normalized.
type Taxonomy struct {
	byName     map[string]string // canonical name → category
	categories []string          // sorted category names
	names      []string          // sorted canonical names
}

type taxonomyFile struct {
	Categories map[string][]string `yaml:"categories"`
}

// LoadTaxonomy reads a taxonomy from the given YAML file, or the embedded
// default when path is empty. An empty or unparsable taxonomy is an error:
// the engine cannot score without reference data.
func LoadTaxonomy(path string) (*Taxonomy, error) {
	data, err := readDataFile(path, "data/taxonomy.yml")
	if err != nil {
		return nil, fmt.Errorf("taxonomy: %w", err)
	}

	var tf taxonomyFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("taxonomy: parse: %w", err)
	}
	if len(tf.Categories) == 0 {
		return nil, fmt.Errorf("taxonomy: no categories defined")
	}

	t := &Taxonomy{byName: make(map[string]string)}
	for cat, skills := range tf.Categories {
		cat = strings.ToLower(strings.TrimSpace(cat))
		if cat == "" || len(skills) == 0 {
			return nil, fmt.Errorf("taxonomy: empty category entry")
		}
		for _, s := range skills {
			name := CanonicalSkill(s)
			if name == "" {
				continue
			}
			t.byName[name] = cat
		}
	}
	if len(t.byName) == 0 {
		return nil, fmt.Errorf("taxonomy: no skills defined")
	}

	for cat := range tf.Categories {
		t.categories = append(t.categories, strings.ToLower(strings.TrimSpace(cat)))
	}
	sort.Strings(t.categories)
	for name := range t.byName {
		t.names = append(t.names, name)
	}
	sort.Strings(t.names)
	return t, nil
}

// readDataFile reads path from disk, or fallback from the embedded defaults
// when path is empty.
func readDataFile(path, fallback string) ([]byte, error) {
	if path == "" {
		return dataFS.ReadFile(fallback)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// CanonicalSkill normalizes a skill name: lowercase, collapsed whitespace.
func CanonicalSkill(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// Category returns the category for a canonical skill name, or "" if the
// skill is not in the taxonomy.
func (t *Taxonomy) Category(name string) string {
	return t.byName[CanonicalSkill(name)]
}

// Names returns all canonical skill names, sorted.
func (t *Taxonomy) Names() []string {
	return t.names
}

// Categories returns all category names, sorted.
func (t *Taxonomy) Categories() []string {
	return t.categories
}

// Len returns the number of skills in the taxonomy.
func (t *Taxonomy) Len() int {
	return len(t.byName)
}

// MatchSkills returns taxonomy skills present in the document, sorted by name.
func (t *Taxonomy) MatchSkills(doc *Doc) []Skill {
	var out []Skill
	for _, name := range t.names {
		if doc.Has(name) {
			out = append(out, Skill{Name: name, Category: t.byName[name]})
		}
	}
	return out
}

// GroupByCategory buckets skills by taxonomy category. Skills unknown to the
// taxonomy land in "other". Bucket contents stay sorted by name.
func GroupByCategory(skills []Skill) map[string][]string {
	if len(skills) == 0 {
		return nil
	}
	out := make(map[string][]string)
	for _, s := range skills {
		cat := s.Category
		if cat == "" {
			cat = "other"
		}
		out[cat] = append(out[cat], s.Name)
	}
	for _, names := range out {
		sort.Strings(names)
	}
	return out
}
