package versions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInitializedPrototype() *PrototypeStore {
	s := NewPrototypeStore()
	s.InitializeV1(V1PromptData(), V1Notes())
	return s
}

func TestPrototypeInitializeV1(t *testing.T) {
	s := newInitializedPrototype()

	v, ok := s.CurrentVersion()
	require.True(t, ok)
	assert.Equal(t, 1, v.VersionNumber)
	assert.Contains(t, v.PromptData.Global, "110bpm")
	assert.Len(t, v.PromptData.Instruments, 3)
	assert.False(t, s.CanNavigatePrev())
	assert.False(t, s.CanNavigateNext())
}

func TestPrototypeAnalyzeNotesAndPreview(t *testing.T) {
	s := newInitializedPrototype()

	changes := s.AnalyzeNotesAndPreview()

	require.Len(t, changes, 6)
	assert.Equal(t, "Tempo 110bpm → 120bpm", changes[0].Description)
	assert.True(t, s.PreviewModalOpen())
	assert.Len(t, s.DetectedChanges(), 6)
}

func TestPrototypeGenerateV2(t *testing.T) {
	s := newInitializedPrototype()
	s.AnalyzeNotesAndPreview()

	s.GenerateV2()

	v, ok := s.CurrentVersion()
	require.True(t, ok)
	assert.Equal(t, 2, v.VersionNumber)
	assert.Contains(t, v.PromptData.Global, "120bpm")
	assert.Contains(t, v.PromptData.Global, "[uplifting]")
	assert.Len(t, v.PromptData.Instruments, 4)
	assert.Equal(t, "Saxophone", v.PromptData.Instruments[3].Name)
	assert.Empty(t, v.EvaluationNotes.Global)

	// Preview state is consumed by the generation.
	assert.False(t, s.PreviewModalOpen())
	assert.Empty(t, s.DetectedChanges())

	assert.True(t, s.CanNavigatePrev())
	assert.False(t, s.CanNavigateNext())
}

func TestPrototypeGenerateV2Guard(t *testing.T) {
	s := newInitializedPrototype()
	s.GenerateV2()

	// Repeated calls cannot grow the history past two versions.
	s.GenerateV2()
	s.GenerateV2()

	assert.Len(t, s.Versions(), 2)
}

func TestPrototypeNavigate(t *testing.T) {
	s := newInitializedPrototype()
	s.GenerateV2()

	s.NavigateToVersion(0)
	v, _ := s.CurrentVersion()
	assert.Equal(t, 1, v.VersionNumber)
	assert.True(t, s.CanNavigateNext())

	// Out-of-range indexes are ignored.
	s.NavigateToVersion(5)
	v, _ = s.CurrentVersion()
	assert.Equal(t, 1, v.VersionNumber)

	s.NavigateToVersion(1)
	v, _ = s.CurrentVersion()
	assert.Equal(t, 2, v.VersionNumber)
}

func TestPrototypeUpdateNotes(t *testing.T) {
	s := newInitializedPrototype()

	global := "new feedback"
	s.UpdateNotes(PrototypeNotesUpdate{Global: &global})

	v, _ := s.CurrentVersion()
	assert.Equal(t, "new feedback", v.EvaluationNotes.Global)
	// Untouched fields keep the seeded notes.
	assert.Equal(t, "Perfect, keep this exactly as is", v.EvaluationNotes.Instruments["vocal"])
}

func TestPrototypeAnalyzeOnlyOnV1(t *testing.T) {
	s := newInitializedPrototype()
	s.GenerateV2()

	assert.Nil(t, s.AnalyzeNotesAndPreview())
	assert.False(t, s.PreviewModalOpen())
}
