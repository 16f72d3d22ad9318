package glossary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tracklab/tracklab-api/internal/models"
)

func TestDetectTerms(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		expectedTerms []string
	}{
		{
			name:          "plain terms",
			text:          "The chorus needs more reverb and swing",
			expectedTerms: []string{"chorus", "reverb", "swing"},
		},
		{
			name:          "already bracketed terms are skipped",
			text:          "add [reverb] and delay to the mix",
			expectedTerms: []string{"delay"},
		},
		{
			name:          "word boundary prevents substring matches",
			text:          "a slow decrescendo at the end",
			expectedTerms: []string{"decrescendo"},
		},
		{
			name:          "case insensitive",
			text:          "RUBATO feel with STACCATO keys",
			expectedTerms: []string{"RUBATO", "STACCATO"},
		},
		{
			name:          "no matches",
			text:          "nothing musical here",
			expectedTerms: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detected := DetectTerms(tt.text)

			var got []string
			for _, d := range detected {
				got = append(got, d.Term)
			}
			assert.Equal(t, tt.expectedTerms, got)
		})
	}
}

func TestDetectTermsSpans(t *testing.T) {
	detected := DetectTerms("swing feel")

	require.Len(t, detected, 1)
	assert.Equal(t, "swing", detected[0].Term)
	assert.Equal(t, 0, detected[0].Start)
	assert.Equal(t, 5, detected[0].End)
	assert.Equal(t, CategoryTempoRhythm, detected[0].Category)
}

func TestDetectTermsDuplicateCatalogEntry(t *testing.T) {
	// "Chorus" exists as both a song-structure term and an effect. The
	// first catalog entry wins; the second would overlap and is dropped.
	detected := DetectTerms("the chorus hits hard")

	require.Len(t, detected, 1)
	assert.Equal(t, CategoryStructure, detected[0].Category)
}

func TestAutoBracketTerms(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "brackets every detected term",
			text:     "chorus with reverb",
			expected: "[chorus] with [reverb]",
		},
		{
			name:     "leaves existing brackets alone",
			text:     "[chorus] with reverb",
			expected: "[chorus] with [reverb]",
		},
		{
			name:     "no terms no change",
			text:     "nothing to see",
			expected: "nothing to see",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AutoBracketTerms(tt.text))
		})
	}
}

func TestAutoBracketTermsIdempotent(t *testing.T) {
	text := "rubato intro, staccato keys, big crescendo into the chorus"

	once := AutoBracketTerms(text)
	twice := AutoBracketTerms(once)

	assert.Equal(t, once, twice)
}

func TestExtractBracketedTerms(t *testing.T) {
	terms := ExtractBracketedTerms("a [Neo-Soul] track with [ melancholic ] mood and [reverb], more [reverb]")

	assert.Equal(t, []string{"neo-soul", "melancholic", "reverb", "reverb"}, terms)
}

func TestExtractBracketedTermsEmpty(t *testing.T) {
	assert.Empty(t, ExtractBracketedTerms("no brackets here"))
}

func TestCategorizeTerms(t *testing.T) {
	buckets := CategorizeTerms([]string{
		"neo-soul",      // genre keyword
		"melancholic",   // mood keyword
		"analog moog",   // instrument keyword
		"rubato",        // performance keyword
		"slight reverb", // production keyword
	})

	assert.Equal(t, []string{"neo-soul"}, buckets.GenreTags)
	assert.Equal(t, []string{"melancholic"}, buckets.MoodTags)
	assert.Equal(t, []string{"analog moog"}, buckets.InstrumentTags)
	assert.Equal(t, []string{"rubato"}, buckets.PerformanceTags)
	assert.Equal(t, []string{"slight reverb"}, buckets.ProductionTags)
}

func TestCategorizeTermsDeduplicates(t *testing.T) {
	buckets := CategorizeTerms([]string{"reverb", "reverb", "reverb"})

	assert.Equal(t, []string{"reverb"}, buckets.ProductionTags)
}

func TestCategorizeTermsGlossaryFallback(t *testing.T) {
	// "melisma" matches no keyword list but is a melody glossary term;
	// unknown terms land in the performance bucket.
	buckets := CategorizeTerms([]string{"melisma", "completely unknown term"})

	assert.Contains(t, buckets.PerformanceTags, "melisma")
	assert.Contains(t, buckets.PerformanceTags, "completely unknown term")
	assert.Empty(t, buckets.GenreTags)
}

func TestCategorizeTermsKeywordPriority(t *testing.T) {
	// "soulful vocal" matches both a mood keyword (soulful) and an
	// instrument keyword (vocal); mood is checked first.
	buckets := CategorizeTerms([]string{"soulful vocal"})

	assert.Equal(t, []string{"soulful vocal"}, buckets.MoodTags)
	assert.Empty(t, buckets.InstrumentTags)
}

func TestLookup(t *testing.T) {
	require.NotNil(t, Lookup("Reverb"))
	require.NotNil(t, Lookup("reverb"))
	assert.Nil(t, Lookup("not a term"))
}

func TestTermsByTier(t *testing.T) {
	global := TermsByTier(models.TierGlobal)
	assert.NotEmpty(t, global)

	for _, name := range global {
		entry := Lookup(name)
		require.NotNil(t, entry)
		assert.Contains(t, entry.AppliesTo, models.TierGlobal)
	}
}

func TestCategoriesCoverCatalog(t *testing.T) {
	categories := Categories()
	assert.Len(t, categories, 9)

	for _, entry := range Terms() {
		assert.Contains(t, categories, entry.Category)
	}
}

func TestIsGlossaryTerm(t *testing.T) {
	assert.True(t, IsGlossaryTerm("Reverb"))
	assert.True(t, IsGlossaryTerm("swing"))
	assert.False(t, IsGlossaryTerm("kazoo solo"))
}

func TestTermsByCategory(t *testing.T) {
	terms := TermsByCategory(CategoryGenres)
	require.NotEmpty(t, terms)
	assert.Contains(t, terms, "Jazz")

	for _, name := range terms {
		entry := Lookup(name)
		require.NotNil(t, entry)
		assert.Equal(t, CategoryGenres, entry.Category)
	}
}

func TestTierCategoryLists(t *testing.T) {
	// Each tier's suggestion list only names real catalog categories.
	all := Categories()
	for _, list := range [][]string{GlobalCategories, InstrumentCategories, SectionCategories} {
		require.NotEmpty(t, list)
		for _, category := range list {
			assert.Contains(t, all, category)
		}
	}
}

func TestSearchTerms(t *testing.T) {
	results := SearchTerms("swing")
	require.NotEmpty(t, results)

	found := false
	for _, entry := range results {
		if entry.Term == "Swing" {
			found = true
		}
	}
	assert.True(t, found)

	assert.Empty(t, SearchTerms("zzzz"))
}
