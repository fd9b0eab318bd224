package handlers

import (
	"errors"
	"net/http"

	"store_expiry_backend/internal/services"
	"store_expiry_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AIHandler forwards inventory questions to the AI assistant.
type AIHandler struct {
	aiService services.AIService
}

// NewAIHandler creates a new AIHandler.
func NewAIHandler(as services.AIService) *AIHandler {
	return &AIHandler{aiService: as}
}

// Ask handles POST /ai/ask.
func (h *AIHandler) Ask(c *gin.Context) {
	var req services.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, "Query and systemInstruction are required.", err.Error())
		return
	}

	resp, err := h.aiService.Ask(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAIValidation):
			utils.RespondValidationFailed(c, "Query and systemInstruction are required.", "")
		case errors.Is(err, services.ErrAIUnavailable):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusServiceUnavailable, utils.ErrCodeServiceUnavailable, "The AI assistant is not configured.", ""))
		default:
			utils.LogError(err, "Ask: Error from aiService.Ask")
			utils.RespondInternalError(c, "An error occurred while processing your request with the AI assistant.")
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}
