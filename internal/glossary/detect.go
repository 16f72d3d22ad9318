package glossary

import (
	"regexp"
	"sort"
	"strings"

	"github.com/tracklab/tracklab-api/internal/models"
)

var bracketedRe = regexp.MustCompile(`\[([^\]]+)\]`)

// termPattern pairs one catalog entry with its compiled word-boundary
// matcher. The slice is ordered longest term first so a short term
// never pre-empts a longer one containing it.
type termPattern struct {
	entry *models.GlossaryTerm
	re    *regexp.Regexp
}

var detectionPatterns []termPattern

func buildDetectionPatterns() {
	detectionPatterns = make([]termPattern, 0, len(catalog))
	for i := range catalog {
		entry := &catalog[i]
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(strings.ToLower(entry.Term)) + `\b`)
		detectionPatterns = append(detectionPatterns, termPattern{entry: entry, re: re})
	}
	sort.SliceStable(detectionPatterns, func(i, j int) bool {
		return len(detectionPatterns[i].entry.Term) > len(detectionPatterns[j].entry.Term)
	})
}

// DetectTerms scans free text for glossary terms that are not already
// bracketed. A candidate inside an unbalanced-bracket prefix (an odd
// number of '[' before it) is inside brackets and skipped, as is a
// candidate directly wrapped as [term]. Overlaps keep the
// earliest-starting, first-registered match.
func DetectTerms(text string) []models.DetectedTerm {
	var detected []models.DetectedTerm

	for _, pattern := range detectionPatterns {
		for _, loc := range pattern.re.FindAllStringIndex(text, -1) {
			start, end := loc[0], loc[1]
			if start > 0 && text[start-1] == '[' {
				continue
			}
			if end < len(text) && text[end] == ']' {
				continue
			}
			prefix := text[:start]
			if strings.Count(prefix, "[") != strings.Count(prefix, "]") {
				continue
			}
			detected = append(detected, models.DetectedTerm{
				Term:     text[start:end],
				Start:    start,
				End:      end,
				Category: pattern.entry.Category,
			})
		}
	}

	sort.SliceStable(detected, func(i, j int) bool {
		return detected[i].Start < detected[j].Start
	})

	filtered := make([]models.DetectedTerm, 0, len(detected))
	for _, term := range detected {
		overlaps := false
		for _, existing := range filtered {
			if (term.Start >= existing.Start && term.Start < existing.End) ||
				(term.End > existing.Start && term.End <= existing.End) {
				overlaps = true
				break
			}
		}
		if !overlaps {
			filtered = append(filtered, term)
		}
	}

	return filtered
}

// AutoBracketTerms wraps every detected term in brackets. Insertions
// run from the end of the string backward so earlier offsets stay
// valid as the string grows. Idempotent: bracketed terms are never
// re-detected.
func AutoBracketTerms(text string) string {
	detected := DetectTerms(text)
	if len(detected) == 0 {
		return text
	}

	result := text
	for i := len(detected) - 1; i >= 0; i-- {
		d := detected[i]
		result = result[:d.Start] + "[" + d.Term + "]" + result[d.End:]
	}
	return result
}

// ExtractBracketedTerms returns the contents of every [...] span,
// lower-cased and trimmed. Duplicates are preserved; dedup happens in
// categorization.
func ExtractBracketedTerms(text string) []string {
	matches := bracketedRe.FindAllStringSubmatch(text, -1)
	terms := make([]string, 0, len(matches))
	for _, m := range matches {
		terms = append(terms, strings.TrimSpace(strings.ToLower(m[1])))
	}
	return terms
}

// Hardcoded keyword lists checked before any glossary lookup, in fixed
// priority order: genre, mood, instrument, performance, production.
var (
	genreKeywords       = []string{"neo-soul", "jazz", "rock", "hip-hop", "reggae", "funk", "blues", "pop", "electronic"}
	moodKeywords        = []string{"melancholic", "uplifting", "intimate", "emotional", "powerful", "dark", "bright", "soulful"}
	instrumentKeywords  = []string{"vocal", "bass", "keys", "saxophone", "sax", "guitar", "drums", "piano", "moog", "electric piano", "analog", "synth"}
	performanceKeywords = []string{"rubato", "staccato", "crescendo", "funky", "lazy swing", "groove", "stripped back", "subtle"}
	productionKeywords  = []string{"reverb", "distortion", "delay", "compression", "saturation", "eq", "warm", "clean", "big", "slight"}
)

func containsAny(term string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(term, k) {
			return true
		}
	}
	return false
}

// CategorizeTerms places every input term into exactly one of the five
// tag buckets. Keyword lists win first; unknown terms fall back to the
// glossary category mapping; terms matching neither land in the
// performance bucket so nothing is silently dropped.
func CategorizeTerms(terms []string) models.TagBuckets {
	buckets := models.TagBuckets{
		GenreTags:       []string{},
		MoodTags:        []string{},
		InstrumentTags:  []string{},
		PerformanceTags: []string{},
		ProductionTags:  []string{},
	}

	seen := map[string]bool{}
	for _, term := range terms {
		if seen[term] {
			continue
		}
		seen[term] = true

		lower := strings.ToLower(term)
		switch {
		case containsAny(lower, genreKeywords):
			buckets.GenreTags = append(buckets.GenreTags, term)
		case containsAny(lower, moodKeywords):
			buckets.MoodTags = append(buckets.MoodTags, term)
		case containsAny(lower, instrumentKeywords):
			buckets.InstrumentTags = append(buckets.InstrumentTags, term)
		case containsAny(lower, performanceKeywords):
			buckets.PerformanceTags = append(buckets.PerformanceTags, term)
		case containsAny(lower, productionKeywords):
			buckets.ProductionTags = append(buckets.ProductionTags, term)
		default:
			appendByGlossaryCategory(&buckets, term)
		}
	}

	return buckets
}

func appendByGlossaryCategory(buckets *models.TagBuckets, term string) {
	var category string
	if entry := Lookup(term); entry != nil {
		category = entry.Category
	}

	switch category {
	case CategoryGenres:
		buckets.GenreTags = append(buckets.GenreTags, term)
	case CategoryMood:
		buckets.MoodTags = append(buckets.MoodTags, term)
	case CategoryInstrumenation:
		buckets.InstrumentTags = append(buckets.InstrumentTags, term)
	case CategoryTempoRhythm, CategoryDynamics:
		buckets.PerformanceTags = append(buckets.PerformanceTags, term)
	case CategoryProduction:
		buckets.ProductionTags = append(buckets.ProductionTags, term)
	default:
		// Unknown terms default to performance rather than being dropped.
		buckets.PerformanceTags = append(buckets.PerformanceTags, term)
	}
}
