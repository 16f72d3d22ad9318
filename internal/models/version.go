package models

import "time"

// GenerationStatus tracks a version's audio generation lifecycle.
// Transitions are pending -> generating -> complete | failed; the
// terminal state is never left once set.
type GenerationStatus string

const (
	GenerationPending    GenerationStatus = "pending"
	GenerationGenerating GenerationStatus = "generating"
	GenerationComplete   GenerationStatus = "complete"
	GenerationFailed     GenerationStatus = "failed"
)

// QualityRating is the reviewer's overall verdict on a version's audio.
type QualityRating string

const (
	QualityExcellent QualityRating = "excellent"
	QualityGood      QualityRating = "good"
	QualityFair      QualityRating = "fair"
	QualityPoor      QualityRating = "poor"
)

// ChangeScope records how much of the track a new version invalidates.
type ChangeScope string

const (
	ScopeFull    ChangeScope = "full"
	ScopeSection ChangeScope = "section"
)

// ComponentType discriminates which prompt component a version changed.
type ComponentType string

const (
	ComponentGlobal     ComponentType = "global"
	ComponentInstrument ComponentType = "instrument"
	ComponentSection    ComponentType = "section"
)

// ChangedComponent identifies the prompt component edited when a child
// version was created. ID is empty for global changes.
type ChangedComponent struct {
	Type ComponentType `json:"type"`
	ID   string        `json:"id,omitempty"`
}

// EvaluationNotes is free-text reviewer feedback attached to one
// version. It is mutable until the notes are interpreted; it never
// exists outside its owning version.
type EvaluationNotes struct {
	Global        string            `json:"global"`
	OverallAudio  string            `json:"overall_audio"`
	QualityRating QualityRating     `json:"quality_rating,omitempty"`
	Instruments   map[string]string `json:"instruments"`
	Sections      map[string]string `json:"sections"`
	LastSavedAt   *time.Time        `json:"last_saved_at,omitempty"`
}

// NewEvaluationNotes returns an empty notes record with allocated maps.
func NewEvaluationNotes() EvaluationNotes {
	return EvaluationNotes{
		Instruments: map[string]string{},
		Sections:    map[string]string{},
	}
}

// Version is one immutable snapshot in a project's prompt history.
// Versions form a tree through ParentVersionID; VersionNumber counts
// depth along the parent lineage for display, not a global sequence.
type Version struct {
	ID               string            `json:"id"`
	ProjectID        string            `json:"project_id"`
	VersionNumber    int               `json:"version_number"`
	ParentVersionID  string            `json:"parent_version_id,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
	PromptStructure  ThreeTierPrompt   `json:"prompt_structure"`
	EvaluationNotes  EvaluationNotes   `json:"evaluation_notes"`
	ChangeScope      ChangeScope       `json:"change_scope,omitempty"`
	ChangedComponent *ChangedComponent `json:"changed_component,omitempty"`

	AudioURL             string            `json:"audio_url"`
	AudioDurationSeconds int               `json:"audio_duration_seconds"`
	SectionAudioURLs     map[string]string `json:"section_audio_urls"`

	GenerationStatus      GenerationStatus `json:"generation_status"`
	GenerationStartedAt   *time.Time       `json:"generation_started_at,omitempty"`
	GenerationCompletedAt *time.Time       `json:"generation_completed_at,omitempty"`
	APIRequestID          string           `json:"api_request_id"`
	APICreditsUsed        float64          `json:"api_credits_used"`
	APIError              string           `json:"api_error,omitempty"`
}

// Clone returns a deep copy of the version, detached from the store's
// internal state.
func (v *Version) Clone() Version {
	out := *v
	out.PromptStructure = v.PromptStructure.Clone()
	out.EvaluationNotes = v.EvaluationNotes.Clone()
	out.SectionAudioURLs = make(map[string]string, len(v.SectionAudioURLs))
	for k, u := range v.SectionAudioURLs {
		out.SectionAudioURLs[k] = u
	}
	if v.ChangedComponent != nil {
		cc := *v.ChangedComponent
		out.ChangedComponent = &cc
	}
	return out
}

// Clone returns a deep copy of the notes.
func (n EvaluationNotes) Clone() EvaluationNotes {
	out := n
	out.Instruments = make(map[string]string, len(n.Instruments))
	for k, note := range n.Instruments {
		out.Instruments[k] = note
	}
	out.Sections = make(map[string]string, len(n.Sections))
	for k, note := range n.Sections {
		out.Sections[k] = note
	}
	if n.LastSavedAt != nil {
		t := *n.LastSavedAt
		out.LastSavedAt = &t
	}
	return out
}

// Change is one discrete prompt edit proposed by the note interpreter.
// Ephemeral: rendered as a diff preview, never persisted.
type Change struct {
	Tier       Tier    `json:"tier"`
	TargetID   string  `json:"target_id,omitempty"`
	Field      string  `json:"field"`
	OldValue   any     `json:"old_value"`
	NewValue   any     `json:"new_value"`
	Reason     string  `json:"reason"`
	SourceNote string  `json:"source_note"`
	Confidence float64 `json:"confidence"`
}

// InterpretationResponse is the note interpreter's full output: the
// proposed changes, a candidate prompt with all of them applied, and
// aggregate confidence.
type InterpretationResponse struct {
	Changes           []Change        `json:"changes"`
	UpdatedPrompt     ThreeTierPrompt `json:"updated_prompt"`
	OverallConfidence float64         `json:"overall_confidence"`
	ProcessingTimeMs  int64           `json:"processing_time_ms"`
	Warnings          []string        `json:"warnings"`
}
