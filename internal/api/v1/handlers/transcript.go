package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"echoscribe/internal/api/middleware"
	"echoscribe/internal/api/v1/dto"
	"echoscribe/internal/api/v1/services"
)

// TranscriptHandler handles transcript persistence
type TranscriptHandler struct {
	service services.TranscriptService
}

// NewTranscriptHandler creates a new transcript handler
func NewTranscriptHandler(service services.TranscriptService) *TranscriptHandler {
	return &TranscriptHandler{
		service: service,
	}
}

// Save handles POST /save_transcript
//
// @Summary Save transcript text
// @Description Persists the submitted content with a server-assigned timestamp
// @Tags transcripts
// @Accept json
// @Produce json
// @Param transcript body dto.SaveTranscriptRequest true "Transcript content"
// @Success 201 {object} dto.TranscriptResponse "Stored transcript"
// @Failure 401 {object} errors.APIError "Unauthenticated"
// @Failure 422 {object} errors.APIError "Validation error"
// @Failure 500 {object} errors.APIError "Write failure"
// @Security BearerAuth
// @Router /save_transcript [post]
func (h *TranscriptHandler) Save(c *gin.Context) {
	var req dto.SaveTranscriptRequest

	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	transcript, err := h.service.Save(c.Request.Context(), *req.Content)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTranscriptResponse(transcript))
}
