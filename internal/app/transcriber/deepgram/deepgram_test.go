package deepgram

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"echoscribe/internal/app/transcriber"
)

func writeTestWav(t *testing.T, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.wav")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestTranscribe_Success(t *testing.T) {
	wavBytes := []byte("RIFF....WAVEfmt fake-pcm-payload")
	wavPath := writeTestWav(t, wavBytes)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/listen", r.URL.Path)
		assert.Equal(t, "Token test-api-key", r.Header.Get("Authorization"))
		assert.Equal(t, "audio/wav", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, wavBytes, body)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"alternatives":[{"transcript":"hello world"}]}]}`))
	}))
	defer server.Close()

	provider := New(Config{APIKey: "test-api-key", BaseURL: server.URL})

	text, err := provider.Transcribe(context.Background(), wavPath)
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)
}

func TestTranscribe_UpstreamFailureCarriesStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "unauthorized", status: http.StatusUnauthorized},
		{name: "rate_limited", status: http.StatusTooManyRequests},
		{name: "unavailable", status: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "upstream says no", tt.status)
			}))
			defer server.Close()

			provider := New(Config{APIKey: "test-api-key", BaseURL: server.URL})

			_, err := provider.Transcribe(context.Background(), writeTestWav(t, []byte("RIFF")))
			require.Error(t, err)

			var upstreamErr *transcriber.UpstreamError
			require.ErrorAs(t, err, &upstreamErr)
			assert.Equal(t, tt.status, upstreamErr.StatusCode)
			assert.Equal(t, "deepgram", upstreamErr.Provider)
		})
	}
}

func TestTranscribe_UnexpectedResponseShape(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not_json", body: "<html>gateway error</html>"},
		{name: "empty_results", body: `{"results":[]}`},
		{name: "empty_alternatives", body: `{"results":[{"alternatives":[]}]}`},
		{name: "empty_object", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			provider := New(Config{APIKey: "test-api-key", BaseURL: server.URL})

			_, err := provider.Transcribe(context.Background(), writeTestWav(t, []byte("RIFF")))
			assert.ErrorIs(t, err, transcriber.ErrUnexpectedResponse)
		})
	}
}

func TestTranscribe_EmptyTranscriptIsValid(t *testing.T) {
	// Silence yields an empty transcript, not an error.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[{"alternatives":[{"transcript":""}]}]}`))
	}))
	defer server.Close()

	provider := New(Config{APIKey: "test-api-key", BaseURL: server.URL})

	text, err := provider.Transcribe(context.Background(), writeTestWav(t, []byte("RIFF")))
	require.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestTranscribe_MissingFile(t *testing.T) {
	provider := New(Config{APIKey: "test-api-key"})

	_, err := provider.Transcribe(context.Background(), filepath.Join(t.TempDir(), "nope.wav"))
	require.Error(t, err)

	var upstreamErr *transcriber.UpstreamError
	assert.False(t, errors.As(err, &upstreamErr))
}

func TestNew_Defaults(t *testing.T) {
	provider := New(Config{APIKey: "test-api-key"})

	assert.Equal(t, defaultBaseURL, provider.config.BaseURL)
	assert.Equal(t, 120, provider.config.Timeout)
	assert.Equal(t, "deepgram", provider.Name())
}
