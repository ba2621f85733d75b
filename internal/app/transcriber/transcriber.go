// Package transcriber defines the interface to external speech-to-text APIs
// and the error types their failures are translated into.
package transcriber

import (
	"context"
	"errors"
	"fmt"
)

// Transcriber sends a normalized WAV file to an external speech-to-text API
// and returns the transcript text.
type Transcriber interface {
	// Transcribe performs a single upstream call. No retries: one failure is
	// surfaced immediately.
	Transcribe(ctx context.Context, wavPath string) (string, error)

	// Name identifies the provider in logs and metrics.
	Name() string
}

// ErrUnexpectedResponse indicates the upstream returned a success status but
// the response body did not contain the expected transcript path.
var ErrUnexpectedResponse = errors.New("unexpected upstream response shape")

// UpstreamError carries a non-success HTTP status returned by the external
// API. The upstream body is never attached; it must not reach clients.
type UpstreamError struct {
	Provider   string
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Provider, e.StatusCode)
}
