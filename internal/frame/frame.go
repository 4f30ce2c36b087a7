// Package frame holds decoded video frames as packed BGR byte buffers.
package frame

import (
	"fmt"

	"github.com/backmassage/framegrid/internal/grid"
)

// Channels is the number of interleaved samples per pixel.
const Channels = 3

// Pixel is one decoded sample in the decoder's native channel order.
type Pixel struct {
	B, G, R uint8
}

// Frame is a decoded frame. Pix is row-major BGR with a stride of
// Width*Channels and is never modified after decoding.
type Frame struct {
	Width  int
	Height int
	Pix    []byte
}

// New wraps pix as a width x height frame. It fails when the buffer length
// does not match the dimensions.
func New(width, height int, pix []byte) (*Frame, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", width, height)
	}
	if want := width * height * Channels; len(pix) != want {
		return nil, fmt.Errorf("frame buffer is %d bytes, want %d for %dx%d", len(pix), want, width, height)
	}
	return &Frame{Width: width, Height: height, Pix: pix}, nil
}

// At returns the pixel at column x, row y.
func (f *Frame) At(x, y int) Pixel {
	i := (y*f.Width + x) * Channels
	return Pixel{B: f.Pix[i], G: f.Pix[i+1], R: f.Pix[i+2]}
}

// Region copies the pixels inside r in row-major order. An empty
// rectangle yields an empty slice.
func (f *Frame) Region(r grid.Rect) []Pixel {
	if r.Empty() {
		return nil
	}
	out := make([]Pixel, 0, r.Area())
	for y := r.Y1; y < r.Y2; y++ {
		for x := r.X1; x < r.X2; x++ {
			out = append(out, f.At(x, y))
		}
	}
	return out
}

// Fill returns a width x height frame where every pixel is p.
func Fill(width, height int, p Pixel) *Frame {
	pix := make([]byte, width*height*Channels)
	for i := 0; i < len(pix); i += Channels {
		pix[i], pix[i+1], pix[i+2] = p.B, p.G, p.R
	}
	return &Frame{Width: width, Height: height, Pix: pix}
}
