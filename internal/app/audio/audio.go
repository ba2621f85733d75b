// Package audio normalizes uploaded audio to the canonical waveform format
// the upstream transcription APIs accept: 16 kHz, 16-bit PCM WAV.
package audio

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// supportedExtensions lists the container formats ffmpeg is asked to decode.
// Derived from the upload's filename extension.
var supportedExtensions = map[string]bool{
	".mp3":  true,
	".mp4":  true,
	".m4a":  true,
	".wav":  true,
	".flac": true,
	".ogg":  true,
	".webm": true,
}

// IsSupportedExtension reports whether the given filename extension (with
// leading dot) names a decodable container format.
func IsSupportedExtension(ext string) bool {
	return supportedExtensions[strings.ToLower(ext)]
}

// ConvertToWav16k decodes the audio file at inputPath and writes a 16 kHz
// 16-bit PCM WAV file to outputPath. The caller owns both paths; outputPath
// must be unique per request so concurrent conversions never collide.
func ConvertToWav16k(ctx context.Context, inputPath, outputPath string) error {
	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-i", inputPath,
		"-vn",
		"-acodec", "pcm_s16le",
		"-ar", "16000",
		"-ac", "1",
		"-y",
		outputPath,
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg error: %v, stderr: %s", err, stderr.String())
	}

	return nil
}
