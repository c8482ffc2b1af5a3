package orchestrator

import (
	"reflect"
	"testing"
)

func TestBuildH264Args_NoAudio(t *testing.T) {
	args := buildH264Args(h264Job{
		SourcePattern: "/tmp/seq/shot.%04d.png",
		OutputPath:    "/tmp/shot.mp4",
		FrameRate:     24,
		CRF:           20,
		Preset:        "fast",
	})

	want := []string{
		"-y",
		"-framerate", "24",
		"-i", "/tmp/seq/shot.%04d.png",
		"-c:v", "libx264",
		"-crf:v", "20",
		"-preset:v", "fast",
		"-profile", "high",
		"-level", "4.0",
		"-pix_fmt", "yuv420p",
		"/tmp/shot.mp4",
	}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("args:\n got %v\nwant %v", args, want)
	}
}

func TestBuildH264Args_WithAudio(t *testing.T) {
	args := buildH264Args(h264Job{
		SourcePattern:  "/tmp/seq/shot.%04d.png",
		OutputPath:     "/tmp/shot.mov",
		FrameRate:      30,
		CRF:            18,
		Preset:         "veryslow",
		AudioPath:      "/audio/track.wav",
		AudioOffsetSec: 0.5,
	})

	want := []string{
		"-y",
		"-framerate", "30",
		"-i", "/tmp/seq/shot.%04d.png",
		"-ss", "0.5",
		"-i", "/audio/track.wav",
		"-c:v", "libx264",
		"-crf:v", "18",
		"-preset:v", "veryslow",
		"-profile", "high",
		"-level", "4.0",
		"-pix_fmt", "yuv420p",
		"-filter_complex", "[1:0] apad",
		"-shortest",
		"/tmp/shot.mov",
	}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("args:\n got %v\nwant %v", args, want)
	}
}

func TestFormatFrameRate(t *testing.T) {
	cases := []struct {
		fps  float64
		want string
	}{
		{24, "24"},
		{30, "30"},
		{23.976, "23.976"},
		{29.97, "29.97"},
	}
	for _, tc := range cases {
		if got := formatFrameRate(tc.fps); got != tc.want {
			t.Errorf("%v: expected %q, got %q", tc.fps, tc.want, got)
		}
	}
}
