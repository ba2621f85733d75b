package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"echoscribe/internal/api/errors"
	"echoscribe/internal/api/middleware"
	"echoscribe/internal/api/v1/dto"
	"echoscribe/internal/api/v1/services"
)

// TranscriptionHandler handles audio transcription requests
type TranscriptionHandler struct {
	service services.TranscriptionService
}

// NewTranscriptionHandler creates a new transcription handler
func NewTranscriptionHandler(service services.TranscriptionService) *TranscriptionHandler {
	return &TranscriptionHandler{
		service: service,
	}
}

// Transcribe handles POST /transcribe
//
// @Summary Transcribe an uploaded audio file
// @Description Normalizes the uploaded audio and relays it to the external speech-to-text API
// @Tags transcriptions
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Audio file to transcribe"
// @Success 200 {object} dto.TranscribeResponse "Transcript text"
// @Failure 400 {object} errors.APIError "Bad request - missing or unsupported file"
// @Failure 401 {object} errors.APIError "Unauthenticated"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Security BearerAuth
// @Router /transcribe [post]
func (h *TranscriptionHandler) Transcribe(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("No file uploaded"))
		return
	}
	defer file.Close()

	text, err := h.service.Transcribe(c.Request.Context(), file, header)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TranscribeResponse{Transcript: text})
}
