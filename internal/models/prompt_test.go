package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePrompt() ThreeTierPrompt {
	return ThreeTierPrompt{
		GlobalSettings: GlobalSettings{
			Genre: []string{"Jazz"},
			Tempo: Tempo{BPM: 120, Named: "Allegro"},
			Mood:  []string{"Bright"},
		},
		Instruments: []Instrument{
			{ID: "bass", Name: "Bass", Effects: []Effect{{Type: "Compression"}}},
			{ID: "keys", Name: "Keys"},
		},
		Sections: []Section{
			{
				ID:                    "verse",
				Type:                  "Verse",
				IncludedInstrumentIDs: []string{"bass", "keys"},
				Performance: map[string]PerformanceStyle{
					"bass": {Dynamics: []string{"Forte"}},
					"keys": {Melody: []string{"Arpeggio"}},
				},
			},
		},
	}
}

func TestRemoveInstrumentPrunesSections(t *testing.T) {
	p := samplePrompt()

	p.RemoveInstrument("keys")

	require.Len(t, p.Instruments, 1)
	assert.Equal(t, "bass", p.Instruments[0].ID)

	section := p.SectionByID("verse")
	require.NotNil(t, section)
	assert.Equal(t, []string{"bass"}, section.IncludedInstrumentIDs)
	assert.NotContains(t, section.Performance, "keys")
	assert.Contains(t, section.Performance, "bass")
}

func TestRemoveInstrumentUnknownIDIsNoOp(t *testing.T) {
	p := samplePrompt()

	p.RemoveInstrument("ghost")

	assert.Len(t, p.Instruments, 2)
	assert.Len(t, p.SectionByID("verse").IncludedInstrumentIDs, 2)
}

func TestThreeTierPromptCloneIsDeep(t *testing.T) {
	p := samplePrompt()
	clone := p.Clone()

	clone.GlobalSettings.Mood[0] = "Dark"
	clone.Instruments[0].Effects[0].Type = "Reverb"
	clone.Sections[0].IncludedInstrumentIDs[0] = "ghost"
	perf := clone.Sections[0].Performance["bass"]
	perf.Dynamics[0] = "Piano"

	assert.Equal(t, "Bright", p.GlobalSettings.Mood[0])
	assert.Equal(t, "Compression", p.Instruments[0].Effects[0].Type)
	assert.Equal(t, "bass", p.Sections[0].IncludedInstrumentIDs[0])
	assert.Equal(t, "Forte", p.Sections[0].Performance["bass"].Dynamics[0])
}

func TestInstrumentNameFallsBackToID(t *testing.T) {
	p := samplePrompt()

	assert.Equal(t, "Bass", p.InstrumentName("bass"))
	assert.Equal(t, "ghost", p.InstrumentName("ghost"))
}

func TestVersionCloneIsDeep(t *testing.T) {
	v := Version{
		ID:               "v1",
		PromptStructure:  samplePrompt(),
		EvaluationNotes:  NewEvaluationNotes(),
		SectionAudioURLs: map[string]string{"verse": "url"},
		ChangedComponent: &ChangedComponent{Type: ComponentSection, ID: "verse"},
	}
	v.EvaluationNotes.Instruments["bass"] = "good"

	clone := v.Clone()
	clone.SectionAudioURLs["verse"] = "other"
	clone.EvaluationNotes.Instruments["bass"] = "bad"
	clone.ChangedComponent.ID = "chorus"

	assert.Equal(t, "url", v.SectionAudioURLs["verse"])
	assert.Equal(t, "good", v.EvaluationNotes.Instruments["bass"])
	assert.Equal(t, "verse", v.ChangedComponent.ID)
}
