package ffmpeg

import (
	"fmt"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// PixelFormat is the raw layout requested from ffmpeg; it matches
// frame.Frame's packed B,G,R order.
const PixelFormat = "bgr24"

// FrameStream builds the ffmpeg invocation that writes frame number
// position of path to stdout as one raw BGR24 image.
//
// gte(n,N) with a single output frame keeps the first frame at or after N,
// so a position past the end of the stream produces no output rather than
// a different frame.
func FrameStream(path string, position int) *ffmpeg.Stream {
	return ffmpeg.Input(path).
		Filter("select", ffmpeg.Args{fmt.Sprintf("gte(n,%d)", position)}).
		Output("pipe:", ffmpeg.KwArgs{
			"vframes": 1,
			"format":  "rawvideo",
			"pix_fmt": PixelFormat,
			"vsync":   "passthrough",
		}).
		GlobalArgs("-hide_banner", "-nostdin", "-loglevel", "error")
}

// FrameArgs returns the ffmpeg arguments (without the binary name) that
// [FrameStream] would run.
func FrameArgs(path string, position int) []string {
	return FrameStream(path, position).GetArgs()
}
