package dto

import (
	"time"

	"echoscribe/internal/app/model"
)

// SaveTranscriptRequest is the JSON body of POST /save_transcript. Content is
// a pointer so a present-but-empty string is accepted while a missing field
// fails validation.
type SaveTranscriptRequest struct {
	Content *string `json:"content" binding:"required"`
}

// TranscriptResponse represents a stored transcript in API responses
type TranscriptResponse struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ToTranscriptResponse converts a model to response DTO
func ToTranscriptResponse(t *model.Transcript) TranscriptResponse {
	return TranscriptResponse{
		ID:        t.ID,
		Content:   t.Content,
		CreatedAt: t.CreatedAt,
	}
}

// TranscribeResponse carries the transcript text relayed from the upstream
// speech-to-text API.
type TranscribeResponse struct {
	Transcript string `json:"transcript"`
}
