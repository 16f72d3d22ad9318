// Package versions holds a project's prompt version history: a tree of
// immutable snapshots keyed by id with parent pointers, plus the
// simulated generation and note-interpretation flows that grow it.
package versions

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tracklab/tracklab-api/internal/interpreter"
	"github.com/tracklab/tracklab-api/internal/logger"
	"github.com/tracklab/tracklab-api/internal/models"
	"github.com/tracklab/tracklab-api/internal/services"
)

// Mock generation output. The real backend does not exist in this
// prototype; these stand in for its responses.
const (
	mockFullAudioURL       = "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-1.mp3"
	mockInstrumentAudioURL = "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-2.mp3"
	mockSectionAudioURL    = "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-3.mp3"
	mockAudioDuration      = 180
)

// ErrVersionNotFound is returned by InterpretNotes for an unknown id.
// Every other missing-id path is a silent no-op: the UI only hands
// back ids it got from this store.
var ErrVersionNotFound = errors.New("version not found")

// ErrRetentionLimit is returned when a configured retention limit
// would be exceeded. History is never evicted, so the only option is
// refusing new versions.
var ErrRetentionLimit = errors.New("version retention limit reached")

// Options sets the simulated latencies and the optional history cap.
type Options struct {
	GenerationDelay     time.Duration // full-song generation
	SectionDelay        time.Duration // section-only generation
	InterpretationDelay time.Duration // note interpretation
	RetentionLimit      int           // 0 = unbounded
}

// DefaultOptions mirrors the latencies of the simulated backend.
func DefaultOptions() Options {
	return Options{
		GenerationDelay:     2 * time.Second,
		SectionDelay:        1500 * time.Millisecond,
		InterpretationDelay: time.Second,
	}
}

// Store owns one project's version history. All reads hand out deep
// copies and all mutations happen under one lock (released across
// simulated delays), preserving the copy-on-write semantics of a
// single-threaded session.
type Store struct {
	mu        sync.Mutex
	projectID string
	versions  map[string]*models.Version
	order     []string
	currentID string

	isGenerating     bool
	previewModalOpen bool
	manualEditorOpen bool
	interpretation   *models.InterpretationResponse

	opts    Options
	credits *services.CreditsService
}

// NewStore creates an empty store for one project.
func NewStore(projectID string, credits *services.CreditsService, opts Options) *Store {
	return &Store{
		projectID: projectID,
		versions:  map[string]*models.Version{},
		opts:      opts,
		credits:   credits,
	}
}

// ProjectID returns the owning project id.
func (s *Store) ProjectID() string { return s.projectID }

// LoadProject seeds the history and points the cursor at the latest
// version. Any previous state is discarded.
func (s *Store) LoadProject(seed []models.Version) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.versions = make(map[string]*models.Version, len(seed))
	s.order = make([]string, 0, len(seed))
	s.currentID = ""
	for i := range seed {
		v := seed[i].Clone()
		v.ProjectID = s.projectID
		s.versions[v.ID] = &v
		s.order = append(s.order, v.ID)
	}
	if len(s.order) > 0 {
		s.currentID = s.order[len(s.order)-1]
	}
}

// CreateVersion appends a new pending version and makes it current.
// The version number continues its parent's lineage, or starts at 1
// for a root. Generation is not triggered here.
func (s *Store) CreateVersion(prompt models.ThreeTierPrompt, parentID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkRetention(); err != nil {
		return "", err
	}

	versionNumber := 1
	if parent, ok := s.versions[parentID]; ok {
		versionNumber = parent.VersionNumber + 1
	}

	now := time.Now()
	v := &models.Version{
		ID:               uuid.NewString(),
		ProjectID:        s.projectID,
		VersionNumber:    versionNumber,
		ParentVersionID:  parentID,
		CreatedAt:        now,
		UpdatedAt:        now,
		PromptStructure:  prompt.Clone(),
		EvaluationNotes:  models.NewEvaluationNotes(),
		SectionAudioURLs: map[string]string{},
		GenerationStatus: models.GenerationPending,
	}

	s.versions[v.ID] = v
	s.order = append(s.order, v.ID)
	s.currentID = v.ID
	return v.ID, nil
}

// NotesUpdate is a partial-merge patch for a version's evaluation
// notes. Nil fields are left untouched; map entries merge key by key.
type NotesUpdate struct {
	Global        *string               `json:"global,omitempty"`
	OverallAudio  *string               `json:"overall_audio,omitempty"`
	QualityRating *models.QualityRating `json:"quality_rating,omitempty"`
	Instruments   map[string]string     `json:"instruments,omitempty"`
	Sections      map[string]string     `json:"sections,omitempty"`
}

// UpdateNotes merges the patch into a version's notes and stamps
// last_saved_at. Unknown ids are a silent no-op.
func (s *Store) UpdateNotes(versionID string, update NotesUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.versions[versionID]
	if !ok {
		return
	}

	if update.Global != nil {
		v.EvaluationNotes.Global = *update.Global
	}
	if update.OverallAudio != nil {
		v.EvaluationNotes.OverallAudio = *update.OverallAudio
	}
	if update.QualityRating != nil {
		v.EvaluationNotes.QualityRating = *update.QualityRating
	}
	for id, note := range update.Instruments {
		v.EvaluationNotes.Instruments[id] = note
	}
	for id, note := range update.Sections {
		v.EvaluationNotes.Sections[id] = note
	}

	now := time.Now()
	v.EvaluationNotes.LastSavedAt = &now
	v.UpdatedAt = now
}

// NavigateToVersion moves the current-version cursor. Unknown ids are
// ignored rather than corrupting the cursor.
func (s *Store) NavigateToVersion(versionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.versions[versionID]; ok {
		s.currentID = versionID
	}
}

// CurrentVersion returns a snapshot of the version under the cursor.
func (s *Store) CurrentVersion() (models.Version, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.versions[s.currentID]
	if !ok {
		return models.Version{}, false
	}
	return v.Clone(), true
}

// Version returns a snapshot of one version by id.
func (s *Store) Version(versionID string) (models.Version, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.versions[versionID]
	if !ok {
		return models.Version{}, false
	}
	return v.Clone(), true
}

// Versions returns snapshots of the whole history in creation order.
func (s *Store) Versions() []models.Version {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Version, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.versions[id].Clone())
	}
	return out
}

// IsGenerating reports whether a generation task is in flight.
func (s *Store) IsGenerating() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isGenerating
}

// SetPreviewModalOpen flips the diff-preview flag for the session.
func (s *Store) SetPreviewModalOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.previewModalOpen = open
}

// SetManualEditorOpen flips the manual-editor flag for the session.
func (s *Store) SetManualEditorOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.manualEditorOpen = open
}

// InterpretationResult returns the last interpretation, if any.
func (s *Store) InterpretationResult() *models.InterpretationResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interpretation
}

// InterpretNotes runs the note interpreter over a version's current
// notes after the simulated latency. The version itself is not
// mutated; the result is cached for the diff preview.
func (s *Store) InterpretNotes(ctx context.Context, versionID string) (*models.InterpretationResponse, error) {
	s.mu.Lock()
	v, ok := s.versions[versionID]
	if !ok {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrVersionNotFound, versionID)
	}
	snapshot := v.Clone()
	s.mu.Unlock()

	start := time.Now()
	if err := wait(ctx, s.opts.InterpretationDelay); err != nil {
		return nil, err
	}

	result := interpreter.Interpret(&snapshot)
	result.ProcessingTimeMs = time.Since(start).Milliseconds()

	s.mu.Lock()
	s.interpretation = &result
	s.mu.Unlock()

	logger.Info("Notes interpreted", logger.Fields{
		"project_id": s.projectID,
		"version_id": versionID,
		"changes":    len(result.Changes),
		"confidence": result.OverallConfidence,
	})
	return &result, nil
}

// GenerateAudio simulates a full-song generation for an existing
// version, using the prompt it was created with. On success the
// version completes with a mock audio URL; a cancelled wait marks it
// failed with the error as api_error.
func (s *Store) GenerateAudio(ctx context.Context, versionID string) error {
	s.mu.Lock()
	v, ok := s.versions[versionID]
	if !ok {
		s.mu.Unlock()
		return nil
	}
	now := time.Now()
	v.GenerationStatus = models.GenerationGenerating
	v.GenerationStartedAt = &now
	s.isGenerating = true
	s.mu.Unlock()

	start := time.Now()
	if err := wait(ctx, s.opts.GenerationDelay); err != nil {
		s.failGeneration(versionID, err)
		return err
	}

	s.mu.Lock()
	completed := time.Now()
	v.AudioURL = mockFullAudioURL
	v.AudioDurationSeconds = mockAudioDuration
	v.GenerationStatus = models.GenerationComplete
	v.GenerationCompletedAt = &completed
	v.APIRequestID = uuid.NewString()
	v.APICreditsUsed = s.credits.CalculateCredits("")
	v.UpdatedAt = completed
	s.isGenerating = false
	s.currentID = versionID
	requestID := v.APIRequestID
	credits := v.APICreditsUsed
	s.mu.Unlock()

	s.logGeneration(versionID, requestID, "initial", credits, time.Since(start))
	return nil
}

// GenerateFromGlobal creates a child version with only the global
// settings replaced and regenerates the full track. Global changes
// (tempo, key, mood) ripple through every section's mix, so a partial
// regeneration is never offered.
func (s *Store) GenerateFromGlobal(ctx context.Context, versionID string, updatedGlobal models.GlobalSettings) (string, error) {
	return s.generateFull(ctx, versionID,
		&models.ChangedComponent{Type: models.ComponentGlobal},
		mockFullAudioURL,
		func(p *models.ThreeTierPrompt) {
			p.GlobalSettings = updatedGlobal.Clone()
		})
}

// GenerateFromInstrument creates a child version with one instrument
// replaced and regenerates the full track, for the same reason as
// global changes: a swapped instrument affects every section it plays
// in.
func (s *Store) GenerateFromInstrument(ctx context.Context, versionID, instrumentID string, updatedInstrument models.Instrument) (string, error) {
	return s.generateFull(ctx, versionID,
		&models.ChangedComponent{Type: models.ComponentInstrument, ID: instrumentID},
		mockInstrumentAudioURL,
		func(p *models.ThreeTierPrompt) {
			for i := range p.Instruments {
				if p.Instruments[i].ID == instrumentID {
					p.Instruments[i] = updatedInstrument.Clone()
				}
			}
		})
}

func (s *Store) generateFull(ctx context.Context, versionID string, component *models.ChangedComponent, audioURL string, apply func(*models.ThreeTierPrompt)) (string, error) {
	s.mu.Lock()
	parent, ok := s.versions[versionID]
	if !ok {
		s.mu.Unlock()
		return "", nil
	}
	if err := s.checkRetention(); err != nil {
		s.mu.Unlock()
		return "", err
	}

	updatedPrompt := parent.PromptStructure.Clone()
	apply(&updatedPrompt)

	child := s.newChildLocked(parent, updatedPrompt)
	child.ChangeScope = models.ScopeFull
	child.ChangedComponent = component
	s.isGenerating = true
	s.mu.Unlock()

	start := time.Now()
	if err := wait(ctx, s.opts.GenerationDelay); err != nil {
		s.failGeneration(child.ID, err)
		return child.ID, err
	}

	s.mu.Lock()
	completed := time.Now()
	child.AudioURL = audioURL
	child.AudioDurationSeconds = mockAudioDuration
	child.GenerationStatus = models.GenerationComplete
	child.GenerationCompletedAt = &completed
	child.APICreditsUsed = s.credits.CalculateCredits("full")
	child.UpdatedAt = completed
	s.isGenerating = false
	requestID := child.APIRequestID
	credits := child.APICreditsUsed
	s.mu.Unlock()

	s.logGeneration(child.ID, requestID, "full", credits, time.Since(start))
	return child.ID, nil
}

// GenerateFromSection creates a child version with one section
// replaced and regenerates only that section's audio. The parent's
// full mix stays valid for the rest of the track, so its audio URL is
// carried over and only section_audio_urls gains an entry.
func (s *Store) GenerateFromSection(ctx context.Context, versionID, sectionID string, updatedSection models.Section) (string, error) {
	s.mu.Lock()
	parent, ok := s.versions[versionID]
	if !ok {
		s.mu.Unlock()
		return "", nil
	}
	if err := s.checkRetention(); err != nil {
		s.mu.Unlock()
		return "", err
	}

	updatedPrompt := parent.PromptStructure.Clone()
	for i := range updatedPrompt.Sections {
		if updatedPrompt.Sections[i].ID == sectionID {
			updatedPrompt.Sections[i] = updatedSection.Clone()
		}
	}

	child := s.newChildLocked(parent, updatedPrompt)
	child.ChangeScope = models.ScopeSection
	child.ChangedComponent = &models.ChangedComponent{Type: models.ComponentSection, ID: sectionID}
	child.AudioURL = parent.AudioURL
	child.AudioDurationSeconds = parent.AudioDurationSeconds
	for id, u := range parent.SectionAudioURLs {
		child.SectionAudioURLs[id] = u
	}
	s.isGenerating = true
	s.mu.Unlock()

	start := time.Now()
	if err := wait(ctx, s.opts.SectionDelay); err != nil {
		s.failGeneration(child.ID, err)
		return child.ID, err
	}

	s.mu.Lock()
	completed := time.Now()
	child.SectionAudioURLs[sectionID] = mockSectionAudioURL
	child.GenerationStatus = models.GenerationComplete
	child.GenerationCompletedAt = &completed
	child.APICreditsUsed = s.credits.CalculateCredits("section")
	child.UpdatedAt = completed
	s.isGenerating = false
	requestID := child.APIRequestID
	credits := child.APICreditsUsed
	s.mu.Unlock()

	s.logGeneration(child.ID, requestID, "section", credits, time.Since(start))
	return child.ID, nil
}

// newChildLocked appends a generating child of parent and makes it
// current. Caller holds the lock.
func (s *Store) newChildLocked(parent *models.Version, prompt models.ThreeTierPrompt) *models.Version {
	now := time.Now()
	child := &models.Version{
		ID:                  uuid.NewString(),
		ProjectID:           s.projectID,
		VersionNumber:       parent.VersionNumber + 1,
		ParentVersionID:     parent.ID,
		CreatedAt:           now,
		UpdatedAt:           now,
		PromptStructure:     prompt,
		EvaluationNotes:     models.NewEvaluationNotes(),
		SectionAudioURLs:    map[string]string{},
		GenerationStatus:    models.GenerationGenerating,
		GenerationStartedAt: &now,
		APIRequestID:        uuid.NewString(),
	}
	s.versions[child.ID] = child
	s.order = append(s.order, child.ID)
	s.currentID = child.ID
	return child
}

func (s *Store) failGeneration(versionID string, cause error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.versions[versionID]; ok {
		v.GenerationStatus = models.GenerationFailed
		v.APIError = cause.Error()
		v.UpdatedAt = time.Now()
	}
	s.isGenerating = false

	logger.Error("Generation failed", cause, logger.Fields{
		"project_id": s.projectID,
		"version_id": versionID,
	})
}

func (s *Store) logGeneration(versionID, requestID, scope string, credits float64, elapsed time.Duration) {
	s.credits.LogUsage(services.UsageLog{
		ProjectID:      s.projectID,
		VersionID:      versionID,
		RequestID:      requestID,
		Scope:          scope,
		CreditsCharged: credits,
		DurationMs:     elapsed.Milliseconds(),
	})
	logger.Info("Generation complete", logger.Fields{
		"project_id":  s.projectID,
		"version_id":  versionID,
		"scope":       scope,
		"credits":     credits,
		"duration_ms": elapsed.Milliseconds(),
	})
}

func (s *Store) checkRetention() error {
	if s.opts.RetentionLimit > 0 && len(s.order) >= s.opts.RetentionLimit {
		return fmt.Errorf("%w (%d versions)", ErrRetentionLimit, s.opts.RetentionLimit)
	}
	return nil
}

// CreditsFor returns the credit cost charged for a generation scope.
func CreditsFor(scope string) float64 {
	return services.CalculateCredits(scope)
}

// wait sleeps for the simulated latency, honoring cancellation.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
