package probe

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// MP4 with cover art ahead of the real video stream; nb_frames is present.
const sampleMP4 = `{
  "streams": [
    {
      "index": 0,
      "codec_name": "mjpeg",
      "codec_type": "video",
      "width": 600,
      "height": 900,
      "disposition": { "default": 0, "attached_pic": 1 }
    },
    {
      "index": 1,
      "codec_name": "h264",
      "codec_type": "video",
      "width": 1280,
      "height": 720,
      "avg_frame_rate": "24/1",
      "r_frame_rate": "24/1",
      "nb_frames": "240",
      "duration": "10.000000",
      "disposition": { "default": 1, "attached_pic": 0 }
    }
  ],
  "format": { "duration": "10.010000" }
}`

// MKV: no nb_frames, no stream duration; count must be estimated.
const sampleMKV = `{
  "streams": [
    {
      "index": 0,
      "codec_name": "hevc",
      "codec_type": "video",
      "width": 1920,
      "height": 1080,
      "avg_frame_rate": "30000/1001",
      "r_frame_rate": "30000/1001",
      "disposition": { "default": 1, "attached_pic": 0 }
    }
  ],
  "format": { "duration": "2.002000" }
}`

func TestParseJSON_ExactFrameCount(t *testing.T) {
	info, err := ParseJSON([]byte(sampleMP4))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if info.Codec != "h264" {
		t.Errorf("Codec = %q, want h264 (attached pic must be skipped)", info.Codec)
	}
	if info.FrameCount != 240 || !info.FrameCountExact {
		t.Errorf("FrameCount = %d exact=%v, want 240 exact", info.FrameCount, info.FrameCountExact)
	}
	if info.Resolution() != "1280x720" {
		t.Errorf("Resolution = %q", info.Resolution())
	}
	if info.FrameBytes() != 1280*720*3 {
		t.Errorf("FrameBytes = %d", info.FrameBytes())
	}
	if info.Duration != 10 {
		t.Errorf("Duration = %v, want stream duration 10", info.Duration)
	}
}

func TestParseJSON_EstimatedFrameCount(t *testing.T) {
	info, err := ParseJSON([]byte(sampleMKV))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if info.FrameCountExact {
		t.Error("FrameCountExact should be false without nb_frames")
	}
	if info.FrameCount != 60 {
		t.Errorf("FrameCount = %d, want 60 (2.002s at 29.97fps)", info.FrameCount)
	}
	if math.Abs(info.FrameRate-29.97) > 0.01 {
		t.Errorf("FrameRate = %v", info.FrameRate)
	}
}

func TestParseJSON_NoVideo(t *testing.T) {
	_, err := ParseJSON([]byte(`{"streams": [{"codec_type": "audio"}], "format": {}}`))
	if !errors.Is(err, ErrNoVideo) {
		t.Errorf("err = %v, want ErrNoVideo", err)
	}
}

func TestParseJSON_Invalid(t *testing.T) {
	if _, err := ParseJSON([]byte("not json")); err == nil {
		t.Error("ParseJSON should fail on invalid input")
	}
}

func TestParseRate(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"25/1", 25},
		{"30000/1001", 30000.0 / 1001},
		{"0/0", 0},
		{"24", 24},
		{"", 0},
	}
	for _, tt := range tests {
		if got := parseRate(tt.in); got != tt.want {
			t.Errorf("parseRate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestProbe_FakeBinary(t *testing.T) {
	dir := t.TempDir()
	script := "#!/bin/sh\ncat <<'JSON'\n" + sampleMP4 + "\nJSON\n"
	if err := os.WriteFile(filepath.Join(dir, "ffprobe"), []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))

	info, err := Probe(context.Background(), "/videos/clip.mp4")
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if info.Path != "/videos/clip.mp4" || info.FrameCount != 240 {
		t.Errorf("info = %+v", info)
	}
}

func TestProbe_Failure(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "ffprobe"), []byte("#!/bin/sh\nexit 1\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir)

	if _, err := Probe(context.Background(), "missing.mp4"); err == nil {
		t.Error("Probe should fail when ffprobe exits non-zero")
	}
}
