package probe

import "strconv"

// VideoInfo describes the primary video stream of a file.
type VideoInfo struct {
	Path       string
	Codec      string
	Width      int
	Height     int
	FrameRate  float64 // Average frames per second; 0 when unknown.
	Duration   float64 // Seconds; stream duration, falling back to the container's.
	FrameCount int     // Exact when FrameCountExact, otherwise estimated.

	FrameCountExact bool
}

// Resolution returns "WxH", or "unknown" without a usable size.
func (v *VideoInfo) Resolution() string {
	if v.Width <= 0 || v.Height <= 0 {
		return "unknown"
	}
	return strconv.Itoa(v.Width) + "x" + strconv.Itoa(v.Height)
}

// FrameBytes is the size of one decoded BGR24 frame.
func (v *VideoInfo) FrameBytes() int {
	return v.Width * v.Height * 3
}
