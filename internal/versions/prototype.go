package versions

import (
	"sync"
	"time"

	"github.com/tracklab/tracklab-api/internal/models"
)

// PrototypeEvaluationNotes is reviewer feedback in the reduced
// prototype flow. No quality rating, no save timestamps.
type PrototypeEvaluationNotes struct {
	Global      string            `json:"global"`
	Instruments map[string]string `json:"instruments"`
	Sections    map[string]string `json:"sections"`
}

// PrototypeChange is one diff entry shown in the prototype's preview.
type PrototypeChange struct {
	Category    string `json:"category"`
	TargetID    string `json:"target_id,omitempty"`
	TargetName  string `json:"target_name,omitempty"`
	Description string `json:"description"`
	OldValue    string `json:"old_value,omitempty"`
	NewValue    string `json:"new_value,omitempty"`
}

// PrototypeVersion is one entry in the prototype's linear history.
type PrototypeVersion struct {
	VersionNumber   int                        `json:"version_number"`
	PromptData      models.PrototypePromptData `json:"prompt_data"`
	EvaluationNotes PrototypeEvaluationNotes   `json:"evaluation_notes"`
	CreatedAt       time.Time                  `json:"created_at"`
}

// V1PromptData is the canned first version of the prototype walkthrough.
func V1PromptData() models.PrototypePromptData {
	return models.PrototypePromptData{
		Global:         "a [neo-soul] track at 110bpm in [D minor] with [melancholic] mood, [lazy swing] drums, 4/4 time signature",
		NegativeGlobal: "no [aggressive] elements, avoid [fast tempo], exclude [harsh] sounds",
		Instruments: []models.PrototypeInstrument{
			{
				ID:                  "vocal",
				Name:                "Vocal",
				Description:         "[soulful] British female vocal, [intimate] delivery with [slight reverb]",
				NegativeDescription: "avoid [breathy] delivery, no [autotune]",
			},
			{
				ID:                  "bass",
				Name:                "Bass",
				Description:         "[analog moog] bass with [clean] tone, [funky] groove",
				NegativeDescription: "no [muddy] low end, avoid [overcompression]",
			},
			{
				ID:                  "keys",
				Name:                "Keys",
				Description:         "[smooth] electric piano with [warm] [reverb]",
				NegativeDescription: "no [harsh] tones, avoid [excessive reverb]",
			},
		},
		Sections: []models.PrototypeSection{
			{
				ID:                  "intro",
				Type:                "Intro",
				Description:         "vocals and keys only, [rubato] feel, [melancholic] delivery, no drums no bass",
				NegativeDescription: "no [drums], no [bass], avoid [loud] elements",
			},
			{
				ID:                  "verse",
				Type:                "Verse",
				Description:         "all instruments enter, [stripped back] arrangement, [staccato] bass line, [lazy swing] drums",
				NegativeDescription: "avoid [overcrowding], no [saxophone]",
			},
			{
				ID:                  "chorus",
				Type:                "Chorus",
				Description:         "full arrangement, [powerful] vocals, [crescendo] into the hook, [emotional] delivery",
				NegativeDescription: "no [thin] sound, avoid [weak] vocals",
			},
		},
	}
}

// V1Notes is the canned feedback that drives the v1 to v2 transition.
func V1Notes() PrototypeEvaluationNotes {
	return PrototypeEvaluationNotes{
		Global: "Tempo feels too slow, try 120bpm for more energy. Keep the melancholic mood but make it more uplifting",
		Instruments: map[string]string{
			"vocal": "Perfect, keep this exactly as is",
			"bass":  "Too clean, needs more [distortion] and [saturation]",
			"keys":  "Good, no changes needed",
		},
		Sections: map[string]string{
			"intro":  "Works well, keep this",
			"verse":  "Bass too prominent here, make it more [subtle] in the mix",
			"chorus": "Needs a bigger [saxophone] presence to lift the energy",
		},
	}
}

// generateV2FromV1 produces the canned v2 prompt and the change list
// shown in the preview. The outputs are fixed regardless of any edits
// made to the notes; the walkthrough demonstrates the flow, not the
// interpreter.
func generateV2FromV1() (models.PrototypePromptData, []PrototypeChange) {
	changes := []PrototypeChange{
		{
			Category:    "global",
			Description: "Tempo 110bpm → 120bpm",
			OldValue:    "110bpm",
			NewValue:    "120bpm",
		},
		{
			Category:    "global",
			Description: "Added [uplifting] to mood",
			OldValue:    "with [melancholic] mood",
			NewValue:    "with [melancholic] [uplifting] mood",
		},
		{
			Category:    "instrument",
			TargetID:    "bass",
			TargetName:  "Bass",
			Description: "Added [distortion] and [saturation]",
			OldValue:    "[clean] tone",
			NewValue:    "[distortion] and [saturation]",
		},
		{
			Category:    "instrument",
			TargetID:    "sax",
			TargetName:  "Saxophone",
			Description: "Added Saxophone (new instrument)",
		},
		{
			Category:    "section",
			TargetID:    "verse",
			TargetName:  "Verse",
			Description: "Bass now [subtle]",
			OldValue:    "[staccato] bass line",
			NewValue:    "[subtle] bass in background",
		},
		{
			Category:    "section",
			TargetID:    "chorus",
			TargetName:  "Chorus",
			Description: "Added [saxophone] to arrangement",
			OldValue:    "full arrangement,",
			NewValue:    "full arrangement with [saxophone],",
		},
	}

	promptData := models.PrototypePromptData{
		Global:         "a [neo-soul] track at 120bpm in [D minor] with [melancholic] [uplifting] mood, [lazy swing] drums, 4/4 time signature",
		NegativeGlobal: "no [aggressive] elements, avoid [fast tempo], exclude [harsh] sounds",
		Instruments: []models.PrototypeInstrument{
			{
				ID:                  "vocal",
				Name:                "Vocal",
				Description:         "[soulful] British female vocal, [intimate] delivery with [slight reverb]",
				NegativeDescription: "avoid [breathy] delivery, no [autotune]",
			},
			{
				ID:                  "bass",
				Name:                "Bass",
				Description:         "[analog moog] bass with [distortion] and [saturation], [funky] groove",
				NegativeDescription: "no [muddy] low end, avoid [overcompression]",
			},
			{
				ID:                  "keys",
				Name:                "Keys",
				Description:         "[smooth] electric piano with [warm] [reverb]",
				NegativeDescription: "no [harsh] tones, avoid [excessive reverb]",
			},
			{
				ID:                  "sax",
				Name:                "Saxophone",
				Description:         "[emotional] saxophone with [big] presence, [powerful] delivery",
				NegativeDescription: "avoid [screechy] high notes, no [overblown] sounds",
			},
		},
		Sections: []models.PrototypeSection{
			{
				ID:                  "intro",
				Type:                "Intro",
				Description:         "vocals and keys only, [rubato] feel, [melancholic] delivery, no drums no bass",
				NegativeDescription: "no [drums], no [bass], avoid [loud] elements",
			},
			{
				ID:                  "verse",
				Type:                "Verse",
				Description:         "all instruments enter, [stripped back] arrangement, [subtle] bass in background, [lazy swing] drums",
				NegativeDescription: "avoid [overcrowding], no [saxophone], exclude [busy] arrangements",
			},
			{
				ID:                  "chorus",
				Type:                "Chorus",
				Description:         "full arrangement with [saxophone], [powerful] vocals, [crescendo] into the hook, [emotional] delivery",
				NegativeDescription: "no [thin] sound, avoid [weak] vocals",
			},
		},
	}

	return promptData, changes
}

// PrototypeStore drives the fixed two-version demo walkthrough: v1 is
// seeded, its notes are analyzed into a canned diff, and accepting the
// diff produces v2. There is no generation, no audio, and no branching.
type PrototypeStore struct {
	mu               sync.Mutex
	versions         []PrototypeVersion
	currentIndex     int
	previewModalOpen bool
	detectedChanges  []PrototypeChange
}

func NewPrototypeStore() *PrototypeStore {
	return &PrototypeStore{}
}

// InitializeV1 resets the walkthrough to a single seeded version.
func (s *PrototypeStore) InitializeV1(promptData models.PrototypePromptData, notes PrototypeEvaluationNotes) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.versions = []PrototypeVersion{{
		VersionNumber:   1,
		PromptData:      promptData,
		EvaluationNotes: notes,
		CreatedAt:       time.Now(),
	}}
	s.currentIndex = 0
	s.previewModalOpen = false
	s.detectedChanges = nil
}

// NavigateToVersion moves the cursor; out-of-range indexes are ignored.
func (s *PrototypeStore) NavigateToVersion(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index >= 0 && index < len(s.versions) {
		s.currentIndex = index
	}
}

// UpdateNotes merges a partial notes patch into the current version.
type PrototypeNotesUpdate struct {
	Global      *string           `json:"global,omitempty"`
	Instruments map[string]string `json:"instruments,omitempty"`
	Sections    map[string]string `json:"sections,omitempty"`
}

func (s *PrototypeStore) UpdateNotes(update PrototypeNotesUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.versions) == 0 {
		return
	}
	notes := &s.versions[s.currentIndex].EvaluationNotes
	if update.Global != nil {
		notes.Global = *update.Global
	}
	if update.Instruments != nil {
		notes.Instruments = update.Instruments
	}
	if update.Sections != nil {
		notes.Sections = update.Sections
	}
}

// AnalyzeNotesAndPreview populates the canned change list and opens the
// preview. Only meaningful while viewing v1.
func (s *PrototypeStore) AnalyzeNotesAndPreview() []PrototypeChange {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentIndex != 0 {
		return nil
	}
	_, changes := generateV2FromV1()
	s.detectedChanges = changes
	s.previewModalOpen = true
	return changes
}

// GenerateV2 appends the canned second version and makes it current.
// Guarded so repeated calls cannot grow the history past two entries.
func (s *PrototypeStore) GenerateV2() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentIndex != 0 || len(s.versions) != 1 {
		return
	}
	promptData, _ := generateV2FromV1()
	s.versions = append(s.versions, PrototypeVersion{
		VersionNumber: 2,
		PromptData:    promptData,
		EvaluationNotes: PrototypeEvaluationNotes{
			Instruments: map[string]string{},
			Sections:    map[string]string{},
		},
		CreatedAt: time.Now(),
	})
	s.currentIndex = 1
	s.previewModalOpen = false
	s.detectedChanges = nil
}

// SetPreviewModalOpen flips the preview flag.
func (s *PrototypeStore) SetPreviewModalOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.previewModalOpen = open
}

// PreviewModalOpen reports the preview flag.
func (s *PrototypeStore) PreviewModalOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.previewModalOpen
}

// DetectedChanges returns the pending change list from the last
// analysis, nil once a generation consumed it.
func (s *PrototypeStore) DetectedChanges() []PrototypeChange {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.detectedChanges
}

// CurrentVersion returns the version under the cursor.
func (s *PrototypeStore) CurrentVersion() (PrototypeVersion, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.versions) == 0 {
		return PrototypeVersion{}, false
	}
	return s.versions[s.currentIndex], true
}

// Versions returns the whole walkthrough history in order.
func (s *PrototypeStore) Versions() []PrototypeVersion {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]PrototypeVersion(nil), s.versions...)
}

func (s *PrototypeStore) CanNavigatePrev() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentIndex > 0
}

func (s *PrototypeStore) CanNavigateNext() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentIndex < len(s.versions)-1
}
