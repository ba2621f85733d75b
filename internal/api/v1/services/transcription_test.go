package services

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"mime/multipart"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "echoscribe/internal/api/errors"
	"echoscribe/internal/app/transcriber"
)

// fakeTranscriber records the WAV paths it receives and returns canned
// results.
type fakeTranscriber struct {
	mu    sync.Mutex
	paths []string
	text  string
	err   error
}

func (f *fakeTranscriber) Transcribe(_ context.Context, wavPath string) (string, error) {
	f.mu.Lock()
	f.paths = append(f.paths, wavPath)
	f.mu.Unlock()

	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func (f *fakeTranscriber) Name() string { return "fake" }

// writeWav writes a minimal but valid 16 kHz mono 16-bit PCM WAV file that
// ffmpeg can decode.
func writeWav(t *testing.T, path string) {
	t.Helper()

	const sampleRate = 16000
	samples := make([]byte, sampleRate/10*2) // 100ms of silence

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+len(samples)))
	buf.WriteString("WAVEfmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))            // fmt chunk size
	binary.Write(&buf, binary.LittleEndian, uint16(1))             // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(1))             // mono
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))    // sample rate
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*2))  // byte rate
	binary.Write(&buf, binary.LittleEndian, uint16(2))             // block align
	binary.Write(&buf, binary.LittleEndian, uint16(16))            // bits per sample
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(len(samples)))
	buf.Write(samples)

	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

// openUpload opens path as a multipart upload pair.
func openUpload(t *testing.T, path, filename string) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	file, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { file.Close() })

	return file, &multipart.FileHeader{Filename: filename}
}

func requireFfmpeg(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		t.Skip("ffmpeg not installed")
	}
}

func TestTranscribe_UnsupportedExtension(t *testing.T) {
	fake := &fakeTranscriber{text: "hello world"}
	service := NewTranscriptionService(fake, nil, discardLogger())

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("not audio"), 0o644))
	file, header := openUpload(t, path, "notes.txt")

	_, err := service.Transcribe(context.Background(), file, header)
	require.Error(t, err)

	apiErr, ok := err.(*apierrors.APIError)
	require.True(t, ok)
	assert.Equal(t, apierrors.KindBadRequest, apiErr.Kind)
	assert.Empty(t, fake.paths, "upstream must not be called for rejected uploads")
}

func TestTranscribe_ScratchCleanedUpOnConversionFailure(t *testing.T) {
	scratchRoot := t.TempDir()
	t.Setenv("TMPDIR", scratchRoot)

	fake := &fakeTranscriber{text: "hello world"}
	service := NewTranscriptionService(fake, nil, discardLogger())

	// Garbage bytes behind a supported extension fail ffmpeg decoding.
	path := filepath.Join(t.TempDir(), "broken.mp3")
	require.NoError(t, os.WriteFile(path, []byte("not really audio"), 0o644))
	file, header := openUpload(t, path, "broken.mp3")

	_, err := service.Transcribe(context.Background(), file, header)
	require.Error(t, err)

	entries, err := os.ReadDir(scratchRoot)
	require.NoError(t, err)
	assert.Empty(t, entries, "scratch directory must be removed on failure")
}

func TestTranscribe_Success(t *testing.T) {
	requireFfmpeg(t)

	scratchRoot := t.TempDir()
	t.Setenv("TMPDIR", scratchRoot)

	fake := &fakeTranscriber{text: "hello world"}
	service := NewTranscriptionService(fake, nil, discardLogger())

	path := filepath.Join(t.TempDir(), "speech.wav")
	writeWav(t, path)
	file, header := openUpload(t, path, "speech.wav")

	text, err := service.Transcribe(context.Background(), file, header)
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)

	require.Len(t, fake.paths, 1)
	assert.Equal(t, ".wav", filepath.Ext(fake.paths[0]))

	entries, err := os.ReadDir(scratchRoot)
	require.NoError(t, err)
	assert.Empty(t, entries, "scratch directory must be removed on success")
}

func TestTranscribe_ConcurrentRequestsUseDistinctScratchFiles(t *testing.T) {
	requireFfmpeg(t)

	fake := &fakeTranscriber{text: "hello world"}
	service := NewTranscriptionService(fake, nil, discardLogger())

	path := filepath.Join(t.TempDir(), "speech.wav")
	writeWav(t, path)

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			file, err := os.Open(path)
			if err != nil {
				errs[i] = err
				return
			}
			defer file.Close()

			_, errs[i] = service.Transcribe(context.Background(), file, &multipart.FileHeader{Filename: "speech.wav"})
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "request %d failed", i)
	}

	// No two requests may ever share an intermediate file path.
	seen := make(map[string]bool, workers)
	for _, p := range fake.paths {
		assert.False(t, seen[p], "scratch path %s reused across requests", p)
		seen[p] = true
	}
	assert.Len(t, seen, workers)
}

func TestTranscribe_UpstreamErrorMirrorsStatus(t *testing.T) {
	requireFfmpeg(t)

	fake := &fakeTranscriber{err: &transcriber.UpstreamError{Provider: "fake", StatusCode: http.StatusServiceUnavailable}}
	service := NewTranscriptionService(fake, nil, discardLogger())

	path := filepath.Join(t.TempDir(), "speech.wav")
	writeWav(t, path)
	file, header := openUpload(t, path, "speech.wav")

	_, err := service.Transcribe(context.Background(), file, header)
	require.Error(t, err)

	apiErr, ok := err.(*apierrors.APIError)
	require.True(t, ok)
	assert.Equal(t, apierrors.KindUpstream, apiErr.Kind)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.HTTPStatus())
}

func TestTranscribe_UnexpectedUpstreamResponseIsInternal(t *testing.T) {
	requireFfmpeg(t)

	fake := &fakeTranscriber{err: transcriber.ErrUnexpectedResponse}
	service := NewTranscriptionService(fake, nil, discardLogger())

	path := filepath.Join(t.TempDir(), "speech.wav")
	writeWav(t, path)
	file, header := openUpload(t, path, "speech.wav")

	_, err := service.Transcribe(context.Background(), file, header)
	require.Error(t, err)

	apiErr, ok := err.(*apierrors.APIError)
	require.True(t, ok)
	assert.Equal(t, apierrors.KindInternal, apiErr.Kind)
	assert.Equal(t, http.StatusInternalServerError, apiErr.HTTPStatus())
}

func TestTranscribe_StorageFailureDoesNotFailRequest(t *testing.T) {
	requireFfmpeg(t)

	fake := &fakeTranscriber{text: "hello world"}
	storage := &failingStorage{}
	service := NewTranscriptionService(fake, storage, discardLogger())

	path := filepath.Join(t.TempDir(), "speech.wav")
	writeWav(t, path)
	file, header := openUpload(t, path, "speech.wav")

	text, err := service.Transcribe(context.Background(), file, header)
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)
	assert.True(t, storage.called)
}

type failingStorage struct {
	called bool
}

func (s *failingStorage) ArchiveUpload(_ context.Context, _, _ string) (string, error) {
	s.called = true
	return "", errors.New("bucket unavailable")
}
