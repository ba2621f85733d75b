// Package whisper implements transcriber.Transcriber on the OpenAI
// transcription API.
package whisper

import (
	"context"
	"errors"

	"github.com/sashabaranov/go-openai"

	"echoscribe/internal/app/transcriber"
)

// Provider uses the OpenAI API for remote transcription.
type Provider struct {
	client *openai.Client
}

// New creates a new Provider with the given API key.
func New(apiKey string) *Provider {
	return &Provider{client: openai.NewClient(apiKey)}
}

func (p *Provider) Name() string {
	return "openai_whisper"
}

// Transcribe sends the WAV file to the OpenAI transcription endpoint.
func (p *Provider) Transcribe(ctx context.Context, wavPath string) (string, error) {
	req := openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: wavPath,
	}

	resp, err := p.client.CreateTranscription(ctx, req)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", &transcriber.UpstreamError{Provider: p.Name(), StatusCode: apiErr.HTTPStatusCode}
		}
		return "", err
	}

	return resp.Text, nil
}
