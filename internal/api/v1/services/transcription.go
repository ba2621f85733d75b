package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	apierrors "echoscribe/internal/api/errors"
	"echoscribe/internal/app/audio"
	"echoscribe/internal/app/metrics"
	"echoscribe/internal/app/transcriber"
)

// TranscriptionServiceImpl implements TranscriptionService
type TranscriptionServiceImpl struct {
	transcriber transcriber.Transcriber
	storage     StorageService
	logger      *slog.Logger
}

// NewTranscriptionService creates a new transcription service. storage may be
// nil; upload archival is then disabled.
func NewTranscriptionService(t transcriber.Transcriber, storage StorageService, logger *slog.Logger) TranscriptionService {
	return &TranscriptionServiceImpl{
		transcriber: t,
		storage:     storage,
		logger:      logger,
	}
}

// Transcribe writes the upload to a request-scoped scratch directory,
// re-encodes it to 16-bit PCM WAV, and relays it to the upstream API. The
// scratch directory is unique per request and removed on every exit path.
func (s *TranscriptionServiceImpl) Transcribe(ctx context.Context, file multipart.File, header *multipart.FileHeader) (string, error) {
	ext := filepath.Ext(header.Filename)
	if !audio.IsSupportedExtension(ext) {
		return "", apierrors.NewBadRequestError("Unsupported audio format")
	}

	scratchDir, err := os.MkdirTemp("", "echoscribe-")
	if err != nil {
		s.logger.Error("failed to create scratch directory", "error", err)
		return "", apierrors.NewInternalError("Error transcribing audio")
	}
	defer os.RemoveAll(scratchDir)

	inputPath := filepath.Join(scratchDir, "upload"+ext)
	if err := writeUpload(file, inputPath); err != nil {
		s.logger.Error("failed to store upload", "error", err)
		return "", apierrors.NewInternalError("Error transcribing audio")
	}

	wavPath := filepath.Join(scratchDir, uuid.New().String()+".wav")
	if err := audio.ConvertToWav16k(ctx, inputPath, wavPath); err != nil {
		metrics.TranscriptionsTotal.WithLabelValues(s.transcriber.Name(), "decode_error").Inc()
		s.logger.Error("audio conversion failed", "file", header.Filename, "error", err)
		return "", apierrors.NewInternalError("Error transcribing audio")
	}

	start := time.Now()
	text, err := s.transcriber.Transcribe(ctx, wavPath)
	metrics.UpstreamLatency.WithLabelValues(s.transcriber.Name()).Observe(time.Since(start).Seconds())

	if err != nil {
		var upstreamErr *transcriber.UpstreamError
		switch {
		case errors.As(err, &upstreamErr):
			metrics.TranscriptionsTotal.WithLabelValues(s.transcriber.Name(), "upstream_error").Inc()
			s.logger.Error("upstream transcription failed",
				"provider", upstreamErr.Provider,
				"status", upstreamErr.StatusCode,
			)
			return "", apierrors.NewUpstreamError(upstreamErr.StatusCode, "Failed to transcribe audio")
		case errors.Is(err, transcriber.ErrUnexpectedResponse):
			metrics.TranscriptionsTotal.WithLabelValues(s.transcriber.Name(), "parse_error").Inc()
			s.logger.Error("unexpected upstream response shape", "provider", s.transcriber.Name())
			return "", apierrors.NewInternalError("Error transcribing audio")
		default:
			metrics.TranscriptionsTotal.WithLabelValues(s.transcriber.Name(), "internal_error").Inc()
			s.logger.Error("transcription failed", "error", err)
			return "", apierrors.NewInternalError("Error transcribing audio")
		}
	}

	metrics.TranscriptionsTotal.WithLabelValues(s.transcriber.Name(), "success").Inc()

	if s.storage != nil {
		// Archival is best effort; a storage failure never fails the request.
		if key, err := s.storage.ArchiveUpload(ctx, inputPath, header.Filename); err != nil {
			s.logger.Warn("upload archival failed", "file", header.Filename, "error", err)
		} else {
			s.logger.Info("upload archived", "file", header.Filename, "key", key)
		}
	}

	return text, nil
}

func writeUpload(file multipart.File, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		return err
	}

	return out.Sync()
}
