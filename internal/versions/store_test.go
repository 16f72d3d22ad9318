package versions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tracklab/tracklab-api/internal/models"
	"github.com/tracklab/tracklab-api/internal/services"
)

// newTestStore uses zero delays so generation completes synchronously.
func newTestStore(t *testing.T, opts ...Options) *Store {
	t.Helper()
	o := Options{}
	if len(opts) > 0 {
		o = opts[0]
	}
	return NewStore("project-1", services.NewCreditsService(), o)
}

func testPrompt() models.ThreeTierPrompt {
	return models.ThreeTierPrompt{
		GlobalSettings: models.GlobalSettings{
			Genre: []string{"Neo-Soul"},
			Tempo: models.Tempo{BPM: 110, Named: "Moderato"},
			Mood:  []string{"Melancholic"},
		},
		Instruments: []models.Instrument{
			{ID: "bass", Name: "Bass"},
			{ID: "keys", Name: "Keys"},
		},
		Sections: []models.Section{
			{ID: "verse", Type: "Verse", IncludedInstrumentIDs: []string{"bass", "keys"}},
			{ID: "chorus", Type: "Chorus", IncludedInstrumentIDs: []string{"bass", "keys"}},
		},
	}
}

func TestCreateVersion(t *testing.T) {
	store := newTestStore(t)

	id, err := store.CreateVersion(testPrompt(), "")
	require.NoError(t, err)

	v, ok := store.Version(id)
	require.True(t, ok)
	assert.Equal(t, 1, v.VersionNumber)
	assert.Equal(t, "project-1", v.ProjectID)
	assert.Empty(t, v.ParentVersionID)
	assert.Equal(t, models.GenerationPending, v.GenerationStatus)

	current, ok := store.CurrentVersion()
	require.True(t, ok)
	assert.Equal(t, id, current.ID)
}

func TestCreateVersionNumbersFollowParentLineage(t *testing.T) {
	store := newTestStore(t)

	rootID, err := store.CreateVersion(testPrompt(), "")
	require.NoError(t, err)
	childID, err := store.CreateVersion(testPrompt(), rootID)
	require.NoError(t, err)
	// Sibling of child: numbered from the same parent, not globally.
	siblingID, err := store.CreateVersion(testPrompt(), rootID)
	require.NoError(t, err)

	child, _ := store.Version(childID)
	sibling, _ := store.Version(siblingID)
	assert.Equal(t, 2, child.VersionNumber)
	assert.Equal(t, 2, sibling.VersionNumber)
	assert.Equal(t, rootID, child.ParentVersionID)
}

func TestCreateVersionRetentionLimit(t *testing.T) {
	store := newTestStore(t, Options{RetentionLimit: 2})

	_, err := store.CreateVersion(testPrompt(), "")
	require.NoError(t, err)
	_, err = store.CreateVersion(testPrompt(), "")
	require.NoError(t, err)

	_, err = store.CreateVersion(testPrompt(), "")
	assert.ErrorIs(t, err, ErrRetentionLimit)
}

func TestUpdateNotes(t *testing.T) {
	store := newTestStore(t)
	id, err := store.CreateVersion(testPrompt(), "")
	require.NoError(t, err)

	global := "tempo feels slow"
	store.UpdateNotes(id, NotesUpdate{
		Global:      &global,
		Instruments: map[string]string{"bass": "too clean"},
	})

	v, _ := store.Version(id)
	assert.Equal(t, "tempo feels slow", v.EvaluationNotes.Global)
	assert.Equal(t, "too clean", v.EvaluationNotes.Instruments["bass"])
	require.NotNil(t, v.EvaluationNotes.LastSavedAt)

	// Second partial update merges without clobbering earlier notes.
	rating := models.QualityGood
	store.UpdateNotes(id, NotesUpdate{
		QualityRating: &rating,
		Sections:      map[string]string{"verse": "works well"},
	})

	v, _ = store.Version(id)
	assert.Equal(t, "tempo feels slow", v.EvaluationNotes.Global)
	assert.Equal(t, "too clean", v.EvaluationNotes.Instruments["bass"])
	assert.Equal(t, models.QualityGood, v.EvaluationNotes.QualityRating)
	assert.Equal(t, "works well", v.EvaluationNotes.Sections["verse"])
}

func TestUpdateNotesUnknownIDIsNoOp(t *testing.T) {
	store := newTestStore(t)

	global := "lost"
	store.UpdateNotes("missing", NotesUpdate{Global: &global})

	assert.Empty(t, store.Versions())
}

func TestNavigateToVersion(t *testing.T) {
	store := newTestStore(t)
	firstID, err := store.CreateVersion(testPrompt(), "")
	require.NoError(t, err)
	_, err = store.CreateVersion(testPrompt(), firstID)
	require.NoError(t, err)

	store.NavigateToVersion(firstID)
	current, _ := store.CurrentVersion()
	assert.Equal(t, firstID, current.ID)

	// Unknown id leaves the cursor alone.
	store.NavigateToVersion("missing")
	current, _ = store.CurrentVersion()
	assert.Equal(t, firstID, current.ID)
}

func TestVersionSnapshotsAreDetached(t *testing.T) {
	store := newTestStore(t)
	id, err := store.CreateVersion(testPrompt(), "")
	require.NoError(t, err)

	snapshot, _ := store.Version(id)
	snapshot.PromptStructure.GlobalSettings.Tempo.BPM = 999
	snapshot.EvaluationNotes.Instruments["bass"] = "scribble"

	fresh, _ := store.Version(id)
	assert.Equal(t, 110, fresh.PromptStructure.GlobalSettings.Tempo.BPM)
	assert.Empty(t, fresh.EvaluationNotes.Instruments)
}

func TestGenerateAudio(t *testing.T) {
	store := newTestStore(t)
	id, err := store.CreateVersion(testPrompt(), "")
	require.NoError(t, err)

	require.NoError(t, store.GenerateAudio(context.Background(), id))

	v, _ := store.Version(id)
	assert.Equal(t, models.GenerationComplete, v.GenerationStatus)
	assert.Equal(t, mockFullAudioURL, v.AudioURL)
	assert.Equal(t, mockAudioDuration, v.AudioDurationSeconds)
	assert.Equal(t, services.CreditsInitialGeneration, v.APICreditsUsed)
	assert.NotEmpty(t, v.APIRequestID)
	assert.NotNil(t, v.GenerationStartedAt)
	assert.NotNil(t, v.GenerationCompletedAt)
	assert.False(t, store.IsGenerating())
}

func TestGenerateAudioCancelledMarksFailed(t *testing.T) {
	store := newTestStore(t, Options{GenerationDelay: time.Second})
	id, err := store.CreateVersion(testPrompt(), "")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = store.GenerateAudio(ctx, id)
	assert.ErrorIs(t, err, context.Canceled)

	v, _ := store.Version(id)
	assert.Equal(t, models.GenerationFailed, v.GenerationStatus)
	assert.NotEmpty(t, v.APIError)
	assert.False(t, store.IsGenerating())
}

func TestGenerateFromGlobal(t *testing.T) {
	store := newTestStore(t)
	parentID, err := store.CreateVersion(testPrompt(), "")
	require.NoError(t, err)

	updated := models.GlobalSettings{
		Genre: []string{"Neo-Soul"},
		Tempo: models.Tempo{BPM: 130, Named: "Allegro"},
		Mood:  []string{"Melancholic", "Energetic"},
	}
	childID, err := store.GenerateFromGlobal(context.Background(), parentID, updated)
	require.NoError(t, err)
	require.NotEqual(t, parentID, childID)

	child, ok := store.Version(childID)
	require.True(t, ok)
	assert.Equal(t, 2, child.VersionNumber)
	assert.Equal(t, parentID, child.ParentVersionID)
	assert.Equal(t, models.ScopeFull, child.ChangeScope)
	require.NotNil(t, child.ChangedComponent)
	assert.Equal(t, models.ComponentGlobal, child.ChangedComponent.Type)
	assert.Equal(t, 130, child.PromptStructure.GlobalSettings.Tempo.BPM)
	assert.Equal(t, models.GenerationComplete, child.GenerationStatus)
	assert.Equal(t, mockFullAudioURL, child.AudioURL)
	assert.Equal(t, services.CreditsFullRegeneration, child.APICreditsUsed)

	// Parent prompt untouched.
	parent, _ := store.Version(parentID)
	assert.Equal(t, 110, parent.PromptStructure.GlobalSettings.Tempo.BPM)

	// The new child becomes current.
	current, _ := store.CurrentVersion()
	assert.Equal(t, childID, current.ID)
}

func TestGenerateFromInstrument(t *testing.T) {
	store := newTestStore(t)
	parentID, err := store.CreateVersion(testPrompt(), "")
	require.NoError(t, err)

	updated := models.Instrument{ID: "bass", Name: "Bass", Timbre: []string{"Gritty"}}
	childID, err := store.GenerateFromInstrument(context.Background(), parentID, "bass", updated)
	require.NoError(t, err)

	child, _ := store.Version(childID)
	assert.Equal(t, models.ScopeFull, child.ChangeScope)
	require.NotNil(t, child.ChangedComponent)
	assert.Equal(t, models.ComponentInstrument, child.ChangedComponent.Type)
	assert.Equal(t, "bass", child.ChangedComponent.ID)
	assert.Equal(t, mockInstrumentAudioURL, child.AudioURL)
	assert.Equal(t, services.CreditsFullRegeneration, child.APICreditsUsed)

	inst := child.PromptStructure.InstrumentByID("bass")
	require.NotNil(t, inst)
	assert.Equal(t, []string{"Gritty"}, inst.Timbre)
}

func TestGenerateFromSection(t *testing.T) {
	store := newTestStore(t)
	parentID, err := store.CreateVersion(testPrompt(), "")
	require.NoError(t, err)
	require.NoError(t, store.GenerateAudio(context.Background(), parentID))

	updated := models.Section{ID: "chorus", Type: "Chorus", IncludedInstrumentIDs: []string{"bass"}}
	childID, err := store.GenerateFromSection(context.Background(), parentID, "chorus", updated)
	require.NoError(t, err)

	child, _ := store.Version(childID)
	assert.Equal(t, models.ScopeSection, child.ChangeScope)
	require.NotNil(t, child.ChangedComponent)
	assert.Equal(t, models.ComponentSection, child.ChangedComponent.Type)
	assert.Equal(t, "chorus", child.ChangedComponent.ID)

	// The parent's full mix carries over; only the section audio is new.
	assert.Equal(t, mockFullAudioURL, child.AudioURL)
	assert.Equal(t, mockAudioDuration, child.AudioDurationSeconds)
	assert.Equal(t, mockSectionAudioURL, child.SectionAudioURLs["chorus"])
	assert.Equal(t, services.CreditsSectionGeneration, child.APICreditsUsed)

	section := child.PromptStructure.SectionByID("chorus")
	require.NotNil(t, section)
	assert.Equal(t, []string{"bass"}, section.IncludedInstrumentIDs)
}

func TestGenerateUnknownVersion(t *testing.T) {
	store := newTestStore(t)

	childID, err := store.GenerateFromGlobal(context.Background(), "missing", models.GlobalSettings{})
	require.NoError(t, err)
	assert.Empty(t, childID)
}

func TestInterpretNotes(t *testing.T) {
	store := newTestStore(t)
	id, err := store.CreateVersion(testPrompt(), "")
	require.NoError(t, err)

	global := "make it faster"
	store.UpdateNotes(id, NotesUpdate{Global: &global})

	result, err := store.InterpretNotes(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, result.Changes, 1)
	assert.Equal(t, 130, result.UpdatedPrompt.GlobalSettings.Tempo.BPM)

	// The version itself is not mutated by interpretation.
	v, _ := store.Version(id)
	assert.Equal(t, 110, v.PromptStructure.GlobalSettings.Tempo.BPM)

	// Result is cached for the diff preview.
	cached := store.InterpretationResult()
	require.NotNil(t, cached)
	assert.Equal(t, result.Changes, cached.Changes)
}

func TestInterpretNotesUnknownVersion(t *testing.T) {
	store := newTestStore(t)

	_, err := store.InterpretNotes(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrVersionNotFound)
}

func TestLoadProject(t *testing.T) {
	store := newTestStore(t)

	seed := []models.Version{
		{ID: "a", VersionNumber: 1, PromptStructure: testPrompt(), EvaluationNotes: models.NewEvaluationNotes()},
		{ID: "b", VersionNumber: 2, ParentVersionID: "a", PromptStructure: testPrompt(), EvaluationNotes: models.NewEvaluationNotes()},
	}
	store.LoadProject(seed)

	versions := store.Versions()
	require.Len(t, versions, 2)
	assert.Equal(t, "project-1", versions[0].ProjectID)

	current, ok := store.CurrentVersion()
	require.True(t, ok)
	assert.Equal(t, "b", current.ID)
}

func TestUsageLedger(t *testing.T) {
	credits := services.NewCreditsService()
	store := NewStore("project-1", credits, Options{})

	id, err := store.CreateVersion(testPrompt(), "")
	require.NoError(t, err)
	require.NoError(t, store.GenerateAudio(context.Background(), id))

	_, err = store.GenerateFromSection(context.Background(), id, "verse", models.Section{ID: "verse", Type: "Verse"})
	require.NoError(t, err)

	stats := credits.GetUsageStats("project-1", time.Time{}, time.Time{})
	assert.Equal(t, int64(2), stats.TotalRequests)
	assert.Equal(t, services.CreditsInitialGeneration+services.CreditsSectionGeneration, stats.TotalCreditsUsed)

	history := credits.GetUsageHistory("project-1")
	require.Len(t, history, 2)
	assert.Equal(t, "section", history[0].Scope)
	assert.Equal(t, "initial", history[1].Scope)
}

func TestSessionFlags(t *testing.T) {
	store := newTestStore(t)

	store.SetPreviewModalOpen(true)
	store.SetManualEditorOpen(true)
	store.SetPreviewModalOpen(false)

	// Flags are session state only; they never touch version history.
	assert.Empty(t, store.Versions())
}
