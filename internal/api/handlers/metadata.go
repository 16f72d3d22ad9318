package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tracklab/tracklab-api/internal/metadata"
	"github.com/tracklab/tracklab-api/internal/models"
)

type MetadataHandler struct{}

func NewMetadataHandler() *MetadataHandler {
	return &MetadataHandler{}
}

// Extract pulls categorized metadata out of flat prompt text.
func (h *MetadataHandler) Extract(c *gin.Context) {
	var req models.PrototypePromptData
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, metadata.ExtractMetadata(&req))
}

// MasterPrompt renders flat prompt text as one master prompt block.
func (h *MetadataHandler) MasterPrompt(c *gin.Context) {
	var req models.PrototypePromptData
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"master_prompt": metadata.GenerateMasterPrompt(&req)})
}
