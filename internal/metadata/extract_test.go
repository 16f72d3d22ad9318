package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tracklab/tracklab-api/internal/models"
)

func TestExtractTechnicalDetails(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		expectedBPM *int
		expectedKey string
		expectedSig string
	}{
		{
			name:        "all three present",
			text:        "a track at 110bpm in D minor with 4/4 time",
			expectedBPM: intPtr(110),
			expectedKey: "D minor",
			expectedSig: "4/4",
		},
		{
			name:        "bpm with space and mixed case",
			text:        "roughly 95 BPM",
			expectedBPM: intPtr(95),
		},
		{
			name:        "sharp key",
			text:        "ballad in F# major",
			expectedKey: "F# major",
		},
		{
			name:        "flat key",
			text:        "in Bb minor throughout",
			expectedKey: "Bb minor",
		},
		{
			name:        "odd time signature",
			text:        "jazz waltz in 7/8",
			expectedSig: "7/8",
		},
		{
			name: "nothing technical",
			text: "warm and mellow",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := ExtractTechnicalDetails(tt.text)

			assert.Equal(t, tt.expectedBPM, details.BPM)
			assert.Equal(t, tt.expectedKey, details.Key)
			assert.Equal(t, tt.expectedSig, details.TimeSignature)
		})
	}
}

func TestExtractMetadata(t *testing.T) {
	promptData := &models.PrototypePromptData{
		Global:         "a [neo-soul] track at 110bpm in D minor with [melancholic] mood, 4/4 time signature",
		NegativeGlobal: "no [aggressive] elements, avoid [harsh] sounds",
		Instruments: []models.PrototypeInstrument{
			{
				ID:                  "bass",
				Name:                "Bass",
				Description:         "[analog moog] bass with [funky] groove",
				NegativeDescription: "no [muddy] low end",
			},
		},
		Sections: []models.PrototypeSection{
			{
				ID:                  "intro",
				Type:                "Intro",
				Description:         "[rubato] feel with [slight reverb]",
				NegativeDescription: "avoid [loud] elements",
			},
		},
	}

	meta := ExtractMetadata(promptData)

	assert.Equal(t, []string{"neo-soul"}, meta.GenreTags)
	assert.Equal(t, []string{"melancholic"}, meta.MoodTags)
	assert.Equal(t, []string{"funky", "rubato"}, meta.PerformanceTags)
	assert.Equal(t, []string{"slight reverb"}, meta.ProductionTags)

	// Declared instrument names join the bracketed instrument tags.
	assert.Contains(t, meta.InstrumentTags, "analog moog")
	assert.Contains(t, meta.InstrumentTags, "bass")

	require.NotNil(t, meta.TechnicalDetails.BPM)
	assert.Equal(t, 110, *meta.TechnicalDetails.BPM)
	assert.Equal(t, "D minor", meta.TechnicalDetails.Key)
	assert.Equal(t, "4/4", meta.TechnicalDetails.TimeSignature)

	// Negative tags are categorized independently of positive ones.
	assert.NotContains(t, meta.NegativeMoodTags, "melancholic")
	assert.NotEmpty(t, meta.NegativePerformanceTags)
}

func TestExtractMetadataInstrumentMentions(t *testing.T) {
	promptData := &models.PrototypePromptData{
		Global: "piano and saxophone trade solos over the drums",
	}

	meta := ExtractMetadata(promptData)

	assert.Contains(t, meta.InstrumentTags, "piano")
	assert.Contains(t, meta.InstrumentTags, "saxophone")
	assert.Contains(t, meta.InstrumentTags, "drums")
}

func TestGenerateMasterPrompt(t *testing.T) {
	promptData := &models.PrototypePromptData{
		Global:         "a [neo-soul] track",
		NegativeGlobal: "no [harsh] sounds",
		Instruments: []models.PrototypeInstrument{
			{
				ID:                  "bass",
				Name:                "Bass",
				Description:         "[analog moog] bass",
				NegativeDescription: "no [muddy] low end",
			},
			{
				ID:          "keys",
				Name:        "Keys",
				Description: "[smooth] electric piano",
			},
		},
		Sections: []models.PrototypeSection{
			{
				ID:          "intro",
				Type:        "Intro",
				Description: "keys only",
			},
		},
	}

	expected := "Positive: a [neo-soul] track\n" +
		"Negative: no [harsh] sounds\n" +
		"\n" +
		"Instruments:\n" +
		"- Bass:\n" +
		"  Positive: [analog moog] bass\n" +
		"  Negative: no [muddy] low end\n" +
		"- Keys:\n" +
		"  Positive: [smooth] electric piano\n" +
		"\n" +
		"Sections:\n" +
		"- Intro:\n" +
		"  Positive: keys only"

	assert.Equal(t, expected, GenerateMasterPrompt(promptData))
}

func intPtr(v int) *int {
	return &v
}
