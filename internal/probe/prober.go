package probe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"
)

// ErrNoVideo is returned when the file has no decodable video stream.
var ErrNoVideo = errors.New("no video stream found")

// Probe runs ffprobe against path and returns the primary video stream.
func Probe(ctx context.Context, path string) (*VideoInfo, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "quiet",
		"-print_format", "json",
		"-show_format", "-show_streams",
		"-select_streams", "v",
		path,
	)

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffprobe %q: %w", path, err)
	}

	info, err := ParseJSON(out)
	if err != nil {
		return nil, err
	}
	info.Path = path
	return info, nil
}

// ParseJSON converts raw ffprobe JSON output into a VideoInfo.
// Exported for testing without a real ffprobe binary.
func ParseJSON(data []byte) (*VideoInfo, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse ffprobe JSON: %w", err)
	}
	return buildInfo(&raw)
}

// --- ffprobe JSON wire types ---

type ffprobeOutput struct {
	Format  ffprobeFormat   `json:"format"`
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeFormat struct {
	Duration string `json:"duration"`
}

type ffprobeStream struct {
	Index        int            `json:"index"`
	CodecName    string         `json:"codec_name"`
	CodecType    string         `json:"codec_type"`
	Width        int            `json:"width"`
	Height       int            `json:"height"`
	AvgFrameRate string         `json:"avg_frame_rate"`
	RFrameRate   string         `json:"r_frame_rate"`
	NbFrames     string         `json:"nb_frames"`
	Duration     string         `json:"duration"`
	Disposition  map[string]int `json:"disposition"`
}

// --- Conversion from wire types to domain types ---

func buildInfo(raw *ffprobeOutput) (*VideoInfo, error) {
	for i := range raw.Streams {
		s := &raw.Streams[i]
		if s.CodecType != "video" || s.Disposition["attached_pic"] == 1 {
			continue
		}
		info := &VideoInfo{
			Codec:    s.CodecName,
			Width:    s.Width,
			Height:   s.Height,
			Duration: parseFloat(s.Duration),
		}
		if info.Duration <= 0 {
			info.Duration = parseFloat(raw.Format.Duration)
		}
		info.FrameRate = parseRate(s.AvgFrameRate)
		if info.FrameRate <= 0 {
			info.FrameRate = parseRate(s.RFrameRate)
		}

		if n := parseInt(s.NbFrames); n > 0 {
			info.FrameCount = n
			info.FrameCountExact = true
		} else if info.Duration > 0 && info.FrameRate > 0 {
			info.FrameCount = int(math.Round(info.Duration * info.FrameRate))
		}
		return info, nil
	}
	return nil, ErrNoVideo
}

// --- Numeric parsing helpers (ffprobe returns numbers as strings) ---

// parseRate parses ffprobe rationals such as "30000/1001" or "25/1".
func parseRate(s string) float64 {
	s = strings.TrimSpace(s)
	num, den, ok := strings.Cut(s, "/")
	if !ok {
		return parseFloat(s)
	}
	n, d := parseFloat(num), parseFloat(den)
	if d == 0 {
		return 0
	}
	return n / d
}

func parseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

func parseInt(s string) int {
	s = strings.TrimSpace(s)
	n, _ := strconv.Atoi(s)
	return n
}
