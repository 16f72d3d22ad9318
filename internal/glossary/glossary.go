// Package glossary holds the static musical vocabulary catalog and the
// term detection/categorization pipeline that operates over bracketed
// vocabulary in free prompt text.
package glossary

import (
	"sort"
	"strings"

	"github.com/tracklab/tracklab-api/internal/models"
)

// Lookup tables keyed by lower-cased term and synonym text, built once
// at process start. Duplicate surface terms keep their first catalog
// entry, same as a linear scan would find.
var (
	byTerm    = map[string]*models.GlossaryTerm{}
	bySynonym = map[string]*models.GlossaryTerm{}
)

func init() {
	for i := range catalog {
		entry := &catalog[i]
		key := strings.ToLower(entry.Term)
		if _, exists := byTerm[key]; !exists {
			byTerm[key] = entry
		}
		for _, syn := range entry.Synonyms {
			synKey := strings.ToLower(syn)
			if _, exists := bySynonym[synKey]; !exists {
				bySynonym[synKey] = entry
			}
		}
	}
	buildDetectionPatterns()
}

// Terms returns the full catalog.
func Terms() []models.GlossaryTerm {
	return catalog
}

// Lookup finds a catalog entry by exact term or synonym text,
// case-insensitive. Returns nil when the term is unknown.
func Lookup(term string) *models.GlossaryTerm {
	key := strings.ToLower(term)
	if entry, ok := byTerm[key]; ok {
		return entry
	}
	return bySynonym[key]
}

// IsGlossaryTerm reports whether the text matches a catalog term.
func IsGlossaryTerm(term string) bool {
	_, ok := byTerm[strings.ToLower(term)]
	return ok
}

// TermsByCategory returns the sorted term names in one category.
func TermsByCategory(category string) []string {
	var out []string
	for _, entry := range catalog {
		if entry.Category == category {
			out = append(out, entry.Term)
		}
	}
	sort.Strings(out)
	return out
}

// TermsByTier returns the sorted term names applicable to a tier.
func TermsByTier(tier models.Tier) []string {
	var out []string
	for _, entry := range catalog {
		for _, t := range entry.AppliesTo {
			if t == tier {
				out = append(out, entry.Term)
				break
			}
		}
	}
	sort.Strings(out)
	return out
}

// Categories returns all distinct category names in catalog order.
func Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, entry := range catalog {
		if !seen[entry.Category] {
			seen[entry.Category] = true
			out = append(out, entry.Category)
		}
	}
	return out
}

// SearchTerms returns catalog entries whose term, definition, or
// synonyms contain the query, case-insensitive.
func SearchTerms(query string) []models.GlossaryTerm {
	q := strings.ToLower(query)
	var out []models.GlossaryTerm
	for _, entry := range catalog {
		if strings.Contains(strings.ToLower(entry.Term), q) ||
			strings.Contains(strings.ToLower(entry.Definition), q) {
			out = append(out, entry)
			continue
		}
		for _, syn := range entry.Synonyms {
			if strings.Contains(strings.ToLower(syn), q) {
				out = append(out, entry)
				break
			}
		}
	}
	return out
}
