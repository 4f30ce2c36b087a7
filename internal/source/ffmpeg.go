package source

import (
	"context"
	"errors"

	"github.com/backmassage/framegrid/internal/ffmpeg"
	"github.com/backmassage/framegrid/internal/frame"
	"github.com/backmassage/framegrid/internal/probe"
)

// FFmpegName is the registry name of the subprocess backend.
const FFmpegName = "ffmpeg"

func init() { Register(FFmpegName, OpenFFmpeg) }

// FFmpeg decodes frames by running one ffmpeg process per position.
type FFmpeg struct {
	info   *probe.VideoInfo
	closed bool
}

// OpenFFmpeg probes path with ffprobe. Each later DecodeAt runs ffmpeg.
func OpenFFmpeg(ctx context.Context, path string) (Source, error) {
	info, err := probe.Probe(ctx, path)
	if err != nil {
		return nil, err
	}
	if info.FrameCount > 0 && (info.Width <= 0 || info.Height <= 0) {
		return nil, errors.New("video stream reports no frame size")
	}
	return &FFmpeg{info: info}, nil
}

// Info returns the probe result the source was opened with.
func (s *FFmpeg) Info() *probe.VideoInfo { return s.info }

func (s *FFmpeg) FrameCount() int { return s.info.FrameCount }

func (s *FFmpeg) Size() (int, int) { return s.info.Width, s.info.Height }

func (s *FFmpeg) DecodeAt(ctx context.Context, position int) (*frame.Frame, error) {
	if s.closed {
		return nil, &DecodeError{Position: position, Err: errors.New("source closed")}
	}
	if err := checkPosition(position, s.info.FrameCount); err != nil {
		return nil, err
	}
	pix, err := ffmpeg.ExtractFrame(ctx, s.info.Path, position, s.info.FrameBytes())
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		return nil, &DecodeError{Position: position, Err: err}
	}
	f, err := frame.New(s.info.Width, s.info.Height, pix)
	if err != nil {
		return nil, &DecodeError{Position: position, Err: err}
	}
	return f, nil
}

// Close marks the source released; there is no long-lived process to stop.
func (s *FFmpeg) Close() error {
	s.closed = true
	return nil
}
