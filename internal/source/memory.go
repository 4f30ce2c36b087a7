package source

import (
	"context"
	"errors"

	"github.com/backmassage/framegrid/internal/frame"
)

// Memory serves frames held in memory. It backs tests and any caller that
// already has decoded pixels.
type Memory struct {
	frames   []*frame.Frame
	failing  map[int]bool
	width    int
	height   int
	closed   int
	decodeOK int
}

// NewMemory returns a source over frames. All frames must share one size.
func NewMemory(frames ...*frame.Frame) *Memory {
	m := &Memory{frames: frames, failing: map[int]bool{}}
	if len(frames) > 0 {
		m.width, m.height = frames[0].Width, frames[0].Height
	}
	return m
}

// FailAt makes DecodeAt fail for the given positions.
func (m *Memory) FailAt(positions ...int) *Memory {
	for _, p := range positions {
		m.failing[p] = true
	}
	return m
}

// Opener returns an Opener that always yields m, ignoring the path.
func (m *Memory) Opener() Opener {
	return func(context.Context, string) (Source, error) { return m, nil }
}

// Closed reports how many times Close was called.
func (m *Memory) Closed() int { return m.closed }

// Decoded reports how many frames were returned successfully.
func (m *Memory) Decoded() int { return m.decodeOK }

func (m *Memory) FrameCount() int { return len(m.frames) }

func (m *Memory) Size() (int, int) { return m.width, m.height }

func (m *Memory) DecodeAt(ctx context.Context, position int) (*frame.Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkPosition(position, len(m.frames)); err != nil {
		return nil, err
	}
	if m.failing[position] {
		return nil, &DecodeError{Position: position, Err: errors.New("injected failure")}
	}
	m.decodeOK++
	return m.frames[position], nil
}

func (m *Memory) Close() error {
	m.closed++
	return nil
}
