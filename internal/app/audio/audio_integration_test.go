//go:build integration
// +build integration

package audio

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These are integration tests that can be run when FFmpeg is available
// Run with: go test -tags=integration ./internal/app/audio/

func TestFFmpegExtractorIntegration(t *testing.T) {
	if !isFFmpegAvailable() {
		t.Skip("FFmpeg not available, skipping integration tests")
	}

	dir := t.TempDir()
	video := filepath.Join(dir, "sample.mp4")
	audio := filepath.Join(dir, "sample.mp3")

	// two seconds of test pattern with a stereo 44.1 kHz tone
	gen := exec.Command("ffmpeg", "-y",
		"-f", "lavfi", "-i", "testsrc=duration=2:size=320x240:rate=25",
		"-f", "lavfi", "-i", "sine=frequency=440:duration=2:sample_rate=44100",
		"-ac", "2", "-shortest", video)
	out, err := gen.CombinedOutput()
	require.NoError(t, err, string(out))

	e := NewFFmpegExtractor(DefaultOptions(), nil, nil)
	require.NoError(t, e.Extract(context.Background(), video, audio))

	probe, err := exec.Command("ffprobe", "-v", "error",
		"-show_entries", "stream=codec_type,sample_rate,channels",
		"-of", "default=noprint_wrappers=1", audio).Output()
	require.NoError(t, err)

	info := string(probe)
	assert.Contains(t, info, "codec_type=audio")
	assert.NotContains(t, info, "codec_type=video")
	assert.Contains(t, info, "sample_rate=16000")
	assert.Contains(t, info, "channels=1")

	// running again overwrites instead of prompting
	require.NoError(t, e.Extract(context.Background(), video, audio))
}

func TestFFmpegExtractorIntegration_CorruptInput(t *testing.T) {
	if !isFFmpegAvailable() {
		t.Skip("FFmpeg not available, skipping integration tests")
	}

	dir := t.TempDir()
	video := filepath.Join(dir, "broken.mp4")
	require.NoError(t, os.WriteFile(video, []byte(strings.Repeat("x", 64)), 0o644))

	err := NewFFmpegExtractor(DefaultOptions(), nil, nil).Extract(context.Background(), video, filepath.Join(dir, "out.mp3"))
	assert.Error(t, err)
}

func isFFmpegAvailable() bool {
	_, err := exec.LookPath("ffmpeg")
	if err != nil {
		return false
	}
	_, err = exec.LookPath("ffprobe")
	return err == nil
}
