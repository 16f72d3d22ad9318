package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tracklab/tracklab-api/internal/metrics"
	"github.com/tracklab/tracklab-api/internal/models"
	"github.com/tracklab/tracklab-api/internal/versions"
)

// VersionsHandler exposes a project's version history and the
// simulated generation and interpretation flows over it.
type VersionsHandler struct {
	manager *versions.Manager
	metrics *metrics.Client
}

func NewVersionsHandler(manager *versions.Manager, metricsClient *metrics.Client) *VersionsHandler {
	return &VersionsHandler{
		manager: manager,
		metrics: metricsClient,
	}
}

type createVersionRequest struct {
	Prompt          models.ThreeTierPrompt `json:"prompt" binding:"required"`
	ParentVersionID string                 `json:"parent_version_id"`
	Generate        bool                   `json:"generate"`
}

// Create appends a new version to the project and optionally runs the
// initial generation in the same request.
func (h *VersionsHandler) Create(c *gin.Context) {
	var req createVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	store := h.store(c)
	versionID, err := store.CreateVersion(req.Prompt, req.ParentVersionID)
	if err != nil {
		h.writeStoreError(c, err)
		return
	}

	if req.Generate {
		start := time.Now()
		if err := store.GenerateAudio(c.Request.Context(), versionID); err != nil {
			h.metrics.RecordGeneration("initial", 0, time.Since(start), false)
			h.writeStoreError(c, err)
			return
		}
		h.metrics.RecordGeneration("initial", versions.CreditsFor("initial"), time.Since(start), true)
	}

	version, _ := store.Version(versionID)
	c.JSON(http.StatusCreated, version)
}

// List returns the project's full version history in creation order.
func (h *VersionsHandler) List(c *gin.Context) {
	store := h.store(c)
	c.JSON(http.StatusOK, gin.H{
		"versions":      store.Versions(),
		"is_generating": store.IsGenerating(),
	})
}

// Current returns the version under the navigation cursor.
func (h *VersionsHandler) Current(c *gin.Context) {
	version, ok := h.store(c).CurrentVersion()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project has no versions"})
		return
	}
	c.JSON(http.StatusOK, version)
}

// Navigate moves the cursor to the given version.
func (h *VersionsHandler) Navigate(c *gin.Context) {
	store := h.store(c)
	store.NavigateToVersion(c.Param("versionID"))

	version, ok := store.CurrentVersion()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project has no versions"})
		return
	}
	c.JSON(http.StatusOK, version)
}

// UpdateNotes merges a partial notes patch into one version.
func (h *VersionsHandler) UpdateNotes(c *gin.Context) {
	var req versions.NotesUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	store := h.store(c)
	versionID := c.Param("versionID")
	store.UpdateNotes(versionID, req)

	version, ok := store.Version(versionID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Version not found"})
		return
	}
	c.JSON(http.StatusOK, version)
}

// Interpret runs the note interpreter over one version's notes.
func (h *VersionsHandler) Interpret(c *gin.Context) {
	versionID := c.Param("versionID")

	start := time.Now()
	result, err := h.store(c).InterpretNotes(c.Request.Context(), versionID)
	if err != nil {
		if errors.Is(err, versions.ErrVersionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Version not found"})
			return
		}
		h.writeStoreError(c, err)
		return
	}

	h.metrics.RecordInterpretation(len(result.Changes), result.OverallConfidence, time.Since(start))
	c.JSON(http.StatusOK, result)
}

// Generate runs the initial full-track generation for an existing
// version, using the prompt it was created with.
func (h *VersionsHandler) Generate(c *gin.Context) {
	store := h.store(c)
	versionID := c.Param("versionID")
	if _, ok := store.Version(versionID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Version not found"})
		return
	}

	start := time.Now()
	if err := store.GenerateAudio(c.Request.Context(), versionID); err != nil {
		h.metrics.RecordGeneration("initial", 0, time.Since(start), false)
		h.writeStoreError(c, err)
		return
	}
	h.metrics.RecordGeneration("initial", versions.CreditsFor("initial"), time.Since(start), true)

	version, _ := store.Version(versionID)
	c.JSON(http.StatusOK, version)
}

type generateGlobalRequest struct {
	GlobalSettings models.GlobalSettings `json:"global_settings" binding:"required"`
}

// GenerateGlobal creates a child version with new global settings and
// regenerates the full track.
func (h *VersionsHandler) GenerateGlobal(c *gin.Context) {
	var req generateGlobalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.respondGeneration(c, "full", func(store *versions.Store) (string, error) {
		return store.GenerateFromGlobal(c.Request.Context(), c.Param("versionID"), req.GlobalSettings)
	})
}

type generateInstrumentRequest struct {
	Instrument models.Instrument `json:"instrument" binding:"required"`
}

// GenerateInstrument creates a child version with one instrument
// replaced and regenerates the full track.
func (h *VersionsHandler) GenerateInstrument(c *gin.Context) {
	var req generateInstrumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.respondGeneration(c, "full", func(store *versions.Store) (string, error) {
		return store.GenerateFromInstrument(c.Request.Context(), c.Param("versionID"), c.Param("instrumentID"), req.Instrument)
	})
}

type generateSectionRequest struct {
	Section models.Section `json:"section" binding:"required"`
}

// GenerateSection creates a child version with one section replaced
// and regenerates only that section's audio.
func (h *VersionsHandler) GenerateSection(c *gin.Context) {
	var req generateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.respondGeneration(c, "section", func(store *versions.Store) (string, error) {
		return store.GenerateFromSection(c.Request.Context(), c.Param("versionID"), c.Param("sectionID"), req.Section)
	})
}

// Usage returns the project's simulated credit consumption.
func (h *VersionsHandler) Usage(c *gin.Context) {
	projectID := c.Param("projectID")
	credits := h.manager.Credits()

	history := credits.GetUsageHistory(projectID)
	if len(history) > maxHistoryPageSize {
		history = history[:maxHistoryPageSize]
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":   credits.GetUsageStats(projectID, time.Time{}, time.Time{}),
		"history": history,
	})
}

func (h *VersionsHandler) respondGeneration(c *gin.Context, scope string, run func(*versions.Store) (string, error)) {
	store := h.store(c)

	start := time.Now()
	versionID, err := run(store)
	if err != nil {
		h.metrics.RecordGeneration(scope, 0, time.Since(start), false)
		h.writeStoreError(c, err)
		return
	}
	if versionID == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Version not found"})
		return
	}

	h.metrics.RecordGeneration(scope, versions.CreditsFor(scope), time.Since(start), true)
	version, _ := store.Version(versionID)
	c.JSON(http.StatusCreated, version)
}

func (h *VersionsHandler) store(c *gin.Context) *versions.Store {
	return h.manager.Store(c.Param("projectID"))
}

func (h *VersionsHandler) writeStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, versions.ErrRetentionLimit):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusRequestTimeout, gin.H{"error": "Generation cancelled"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
