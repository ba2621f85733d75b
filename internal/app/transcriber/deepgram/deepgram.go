// Package deepgram implements transcriber.Transcriber against the Deepgram
// listen API by posting raw WAV bytes over HTTPS.
package deepgram

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"echoscribe/internal/app/transcriber"
)

const defaultBaseURL = "https://api.deepgram.com"

// Config represents configuration for the Deepgram provider.
type Config struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
	Timeout int    `yaml:"timeout_sec"`
}

// Provider calls the Deepgram speech-to-text API.
type Provider struct {
	config Config
	client *http.Client
}

// listenResponse mirrors the subset of the Deepgram response this service
// reads: the first alternative of the first result.
type listenResponse struct {
	Results []struct {
		Alternatives []struct {
			Transcript string `json:"transcript"`
		} `json:"alternatives"`
	} `json:"results"`
}

// New creates a Deepgram provider. Zero-value config fields get defaults.
func New(config Config) *Provider {
	if config.BaseURL == "" {
		config.BaseURL = defaultBaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = 120
	}

	return &Provider{
		config: config,
		client: &http.Client{
			Timeout: time.Duration(config.Timeout) * time.Second,
		},
	}
}

func (p *Provider) Name() string {
	return "deepgram"
}

// Transcribe posts the WAV file as the request body and extracts
// results[0].alternatives[0].transcript from the JSON response.
func (p *Provider) Transcribe(ctx context.Context, wavPath string) (string, error) {
	file, err := os.Open(wavPath)
	if err != nil {
		return "", fmt.Errorf("failed to open audio file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat audio file: %w", err)
	}

	url := p.config.BaseURL + "/v1/listen"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, file)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.ContentLength = info.Size()
	req.Header.Set("Authorization", "Token "+p.config.APIKey)
	req.Header.Set("Content-Type", "audio/wav")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call Deepgram API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &transcriber.UpstreamError{Provider: p.Name(), StatusCode: resp.StatusCode}
	}

	var listenResp listenResponse
	if err := json.NewDecoder(resp.Body).Decode(&listenResp); err != nil {
		return "", transcriber.ErrUnexpectedResponse
	}

	if len(listenResp.Results) == 0 || len(listenResp.Results[0].Alternatives) == 0 {
		return "", transcriber.ErrUnexpectedResponse
	}

	return listenResp.Results[0].Alternatives[0].Transcript, nil
}
