//go:build gocv

package source

import (
	"context"
	"errors"
	"fmt"

	"gocv.io/x/gocv"

	"github.com/backmassage/framegrid/internal/frame"
)

// GoCVName is the registry name of the OpenCV backend.
const GoCVName = "gocv"

func init() { Register(GoCVName, OpenGoCV) }

// GoCV decodes frames through an OpenCV VideoCapture kept open for the
// whole run.
type GoCV struct {
	vc     *gocv.VideoCapture
	mat    gocv.Mat
	total  int
	width  int
	height int
}

// OpenGoCV opens path with OpenCV.
func OpenGoCV(_ context.Context, path string) (Source, error) {
	vc, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	if !vc.IsOpened() {
		vc.Close()
		return nil, fmt.Errorf("open %q: capture not opened", path)
	}
	return &GoCV{
		vc:     vc,
		mat:    gocv.NewMat(),
		total:  max(int(vc.Get(gocv.VideoCaptureFrameCount)), 0),
		width:  int(vc.Get(gocv.VideoCaptureFrameWidth)),
		height: int(vc.Get(gocv.VideoCaptureFrameHeight)),
	}, nil
}

func (s *GoCV) FrameCount() int { return s.total }

func (s *GoCV) Size() (int, int) { return s.width, s.height }

func (s *GoCV) DecodeAt(ctx context.Context, position int) (*frame.Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkPosition(position, s.total); err != nil {
		return nil, err
	}
	s.vc.Set(gocv.VideoCapturePosFrames, float64(position))
	if ok := s.vc.Read(&s.mat); !ok || s.mat.Empty() {
		return nil, &DecodeError{Position: position, Err: errors.New("no frame returned")}
	}
	if s.mat.Channels() != frame.Channels {
		return nil, &DecodeError{Position: position, Err: fmt.Errorf("unexpected %d channels", s.mat.Channels())}
	}
	// ToBytes copies, so the Mat can be reused for the next read.
	f, err := frame.New(s.mat.Cols(), s.mat.Rows(), s.mat.ToBytes())
	if err != nil {
		return nil, &DecodeError{Position: position, Err: err}
	}
	return f, nil
}

func (s *GoCV) Close() error {
	s.mat.Close()
	return s.vc.Close()
}
