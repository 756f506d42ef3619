package ats

import (
	"sort"
	"strings"
	"unicode"
)

// stopWords filters common English words that add noise to keyword matching.
var stopWords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "you": true,
	"are": true, "have": true, "will": true, "this": true, "that": true,
	"from": true, "our": true, "your": true, "their": true, "they": true,
	"about": true, "which": true, "what": true, "who": true, "how": true,
	"can": true, "not": true, "but": true, "all": true, "also": true,
	"more": true, "than": true, "into": true, "has": true, "its": true,
	"was": true, "were": true, "been": true, "each": true, "new": true,
	"use": true, "using": true, "used": true, "well": true, "such": true,
	"would": true, "could": true, "should": true, "may": true, "might": true,
	"must": true, "shall": true, "these": true, "those": true, "being": true,
	"within": true, "without": true, "between": true, "through": true,
	"during": true, "before": true, "after": true, "above": true, "below": true,
}

// PhraseSet holds multi-word terms that must survive tokenization as single
// tokens (e.g. "machine learning"). Built once from the reference tables.
type PhraseSet struct {
	phrases  map[string]bool
	maxWords int
}

// NewPhraseSet builds a phrase set from multi-word terms. Single-word terms
// are ignored; they need no merging.
func NewPhraseSet(terms ...[]string) *PhraseSet {
	ps := &PhraseSet{phrases: make(map[string]bool)}
	for _, list := range terms {
		for _, t := range list {
			fields := strings.Fields(strings.ToLower(t))
			n := len(fields)
			if n < 2 {
				continue
			}
			ps.phrases[strings.Join(fields, " ")] = true
			if n > ps.maxWords {
				ps.maxWords = n
			}
		}
	}
	return ps
}

// Doc is the normalized view of one input text: ordered keyword tokens,
// a frequency map for density scoring, and the full term set for skill lookup.
type Doc struct {
	Tokens []string       // keyword tokens in input order, stop words removed
	Freq   map[string]int // keyword token → occurrence count

	terms map[string]bool // every token incl. short ones, for exact term lookup
}

// Normalize tokenizes raw text: lowercase, punctuation stripped, multi-word
// phrases merged (longest match first), stop words removed from the keyword
// view. Empty input yields an empty Doc, never nil.
func Normalize(text string, phrases *PhraseSet) *Doc {
	doc := &Doc{Freq: make(map[string]int), terms: make(map[string]bool)}
	words := splitWords(text)

	maxN := 1
	if phrases != nil && phrases.maxWords > 1 {
		maxN = phrases.maxWords
	}

	for i := 0; i < len(words); {
		tok := words[i]
		adv := 1
		// Greedy longest-match merge against the phrase list.
		for n := min(maxN, len(words)-i); n >= 2; n-- {
			cand := strings.Join(words[i:i+n], " ")
			if phrases.phrases[cand] {
				tok = cand
				adv = n
				break
			}
		}
		i += adv

		doc.terms[tok] = true
		if adv == 1 && (len([]rune(tok)) < 3 || stopWords[tok]) {
			continue // phrases always count as keywords
		}
		doc.Tokens = append(doc.Tokens, tok)
		doc.Freq[tok]++
	}
	return doc
}

// splitWords lowercases and splits text into raw word tokens. Tech terms
// like "c++", "c#", "node.js", "ci/cd" and "scikit-learn" survive intact.
func splitWords(text string) []string {
	var words []string
	var word strings.Builder
	flush := func() {
		w := strings.Trim(word.String(), ".-/")
		word.Reset()
		if w != "" {
			words = append(words, w)
		}
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' || r == '-' || r == '/' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return words
}

// Has reports whether the normalized term (word or merged phrase) occurs in
// the document.
func (d *Doc) Has(term string) bool {
	return d.terms[strings.ToLower(term)]
}

// Distinct returns the sorted distinct keyword tokens.
func (d *Doc) Distinct() []string {
	out := make([]string, 0, len(d.Freq))
	for tok := range d.Freq {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}
