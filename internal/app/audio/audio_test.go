package audio

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSupportedExtension(t *testing.T) {
	tests := []struct {
		ext       string
		supported bool
	}{
		{ext: ".mp3", supported: true},
		{ext: ".MP3", supported: true},
		{ext: ".wav", supported: true},
		{ext: ".m4a", supported: true},
		{ext: ".flac", supported: true},
		{ext: ".ogg", supported: true},
		{ext: ".webm", supported: true},
		{ext: ".mp4", supported: true},
		{ext: ".txt", supported: false},
		{ext: ".exe", supported: false},
		{ext: "", supported: false},
		{ext: "mp3", supported: false}, // no leading dot
	}

	for _, tt := range tests {
		t.Run("ext_"+tt.ext, func(t *testing.T) {
			assert.Equal(t, tt.supported, IsSupportedExtension(tt.ext))
		})
	}
}

func TestConvertToWav16k_InvalidInput(t *testing.T) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		t.Skip("ffmpeg not installed")
	}

	dir := t.TempDir()
	inputPath := filepath.Join(dir, "broken.mp3")
	require.NoError(t, os.WriteFile(inputPath, []byte("not really audio"), 0o644))

	err := ConvertToWav16k(context.Background(), inputPath, filepath.Join(dir, "out.wav"))
	require.Error(t, err)
	// The ffmpeg stderr is preserved for operators.
	assert.Contains(t, err.Error(), "ffmpeg error")
}

func TestConvertToWav16k_MissingInput(t *testing.T) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		t.Skip("ffmpeg not installed")
	}

	dir := t.TempDir()
	err := ConvertToWav16k(context.Background(), filepath.Join(dir, "absent.mp3"), filepath.Join(dir, "out.wav"))
	assert.Error(t, err)
}
