package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tracklab/tracklab-api/internal/glossary"
	"github.com/tracklab/tracklab-api/internal/models"
)

type GlossaryHandler struct{}

func NewGlossaryHandler() *GlossaryHandler {
	return &GlossaryHandler{}
}

// ListTerms returns the term catalog, optionally filtered by category
// or tier. Category and tier filters combine as an intersection.
func (h *GlossaryHandler) ListTerms(c *gin.Context) {
	terms := glossary.Terms()

	if q := c.Query("q"); q != "" {
		terms = glossary.SearchTerms(q)
	}
	if category := c.Query("category"); category != "" {
		terms = filterByCategory(terms, category)
	}
	if tier := c.Query("tier"); tier != "" {
		terms = filterByTier(terms, models.Tier(tier))
	}

	c.JSON(http.StatusOK, gin.H{
		"terms":      terms,
		"categories": glossary.Categories(),
	})
}

type detectRequest struct {
	Text string `json:"text" binding:"required"`
}

// DetectTerms finds un-bracketed glossary terms in free text.
func (h *GlossaryHandler) DetectTerms(c *gin.Context) {
	var req detectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	detected := glossary.DetectTerms(req.Text)
	c.JSON(http.StatusOK, gin.H{"terms": detected})
}

// BracketTerms wraps every detected glossary term in square brackets.
// Idempotent: already-bracketed terms are left alone.
func (h *GlossaryHandler) BracketTerms(c *gin.Context) {
	var req detectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"text": glossary.AutoBracketTerms(req.Text)})
}

func filterByCategory(terms []models.GlossaryTerm, category string) []models.GlossaryTerm {
	out := []models.GlossaryTerm{}
	for _, t := range terms {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

func filterByTier(terms []models.GlossaryTerm, tier models.Tier) []models.GlossaryTerm {
	out := []models.GlossaryTerm{}
	for _, t := range terms {
		for _, applicable := range t.AppliesTo {
			if applicable == tier {
				out = append(out, t)
				break
			}
		}
	}
	return out
}
