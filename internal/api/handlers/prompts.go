package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tracklab/tracklab-api/internal/models"
	"github.com/tracklab/tracklab-api/internal/prompt"
)

type PromptHandler struct{}

func NewPromptHandler() *PromptHandler {
	return &PromptHandler{}
}

// Compile renders a structured three-tier prompt as master prompt text.
func (h *PromptHandler) Compile(c *gin.Context) {
	var req models.ThreeTierPrompt
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"master_prompt": prompt.CompileToMasterPrompt(&req)})
}
