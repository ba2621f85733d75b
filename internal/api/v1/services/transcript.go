package services

import (
	"context"
	"log/slog"

	apierrors "echoscribe/internal/api/errors"
	"echoscribe/internal/app/metrics"
	"echoscribe/internal/app/model"
	"echoscribe/internal/app/repository"
)

// TranscriptServiceImpl implements TranscriptService
type TranscriptServiceImpl struct {
	transcripts repository.TranscriptDAO
	logger      *slog.Logger
}

// NewTranscriptService creates a new transcript service
func NewTranscriptService(transcripts repository.TranscriptDAO, logger *slog.Logger) TranscriptService {
	return &TranscriptServiceImpl{
		transcripts: transcripts,
		logger:      logger,
	}
}

// Save stores the content verbatim with a database-assigned timestamp. Any
// datastore failure is logged and surfaced as a generic internal error.
func (s *TranscriptServiceImpl) Save(ctx context.Context, content string) (*model.Transcript, error) {
	t, err := s.transcripts.Save(ctx, content)
	if err != nil {
		s.logger.Error("transcript insert failed", "error", err)
		return nil, apierrors.NewInternalError("Error saving transcript")
	}

	metrics.TranscriptsSaved.Inc()
	return t, nil
}
