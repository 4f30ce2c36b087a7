package cellcolor

import (
	"fmt"
	"math"

	"github.com/backmassage/framegrid/internal/frame"
)

// Fixed-point BT.601 luma weights, scaled by 1<<lumaShift. These are the
// coefficients OpenCV uses for COLOR_BGR2GRAY on 8-bit input.
const (
	lumaShift = 14
	lumaR     = 4899
	lumaG     = 9617
	lumaB     = 1868

	bwThreshold = 128
)

// Reducer collapses cell pixels to a Color with a fixed method. Obtain one
// from [NewReducer] so the method is checked once, before any pixels are seen.
type Reducer struct {
	method Method
	fn     func([]frame.Pixel) Color
}

// NewReducer returns a Reducer for m, or an error when m is unsupported.
func NewReducer(m Method) (Reducer, error) {
	var fn func([]frame.Pixel) Color
	switch m {
	case MethodAverage:
		fn = average
	case MethodMode:
		fn = mode
	case MethodBlackWhite:
		fn = blackWhite
	default:
		return Reducer{}, fmt.Errorf("unsupported reduction method %q", m)
	}
	return Reducer{method: m, fn: fn}, nil
}

// Method returns the reduction the Reducer applies.
func (r Reducer) Method() Method { return r.method }

// Reduce returns the representative color of pixels. Pixels are in the
// decoder's BGR order; the result is in display order.
func (r Reducer) Reduce(pixels []frame.Pixel) Color {
	if len(pixels) == 0 {
		return Black
	}
	return r.fn(pixels)
}

// Reduce is a one-shot helper around [NewReducer].
func Reduce(pixels []frame.Pixel, m Method) (Color, error) {
	r, err := NewReducer(m)
	if err != nil {
		return Color{}, err
	}
	return r.Reduce(pixels), nil
}

func average(pixels []frame.Pixel) Color {
	var sb, sg, sr uint64
	for _, p := range pixels {
		sb += uint64(p.B)
		sg += uint64(p.G)
		sr += uint64(p.R)
	}
	n := float64(len(pixels))
	return Color{
		R: meanChannel(sr, n),
		G: meanChannel(sg, n),
		B: meanChannel(sb, n),
	}
}

func meanChannel(sum uint64, n float64) uint8 {
	return uint8(math.RoundToEven(float64(sum) / n))
}

func mode(pixels []frame.Pixel) Color {
	counts := make(map[frame.Pixel]int, len(pixels))
	for _, p := range pixels {
		counts[p]++
	}
	var best frame.Pixel
	bestN := 0
	for p, n := range counts {
		if n > bestN || (n == bestN && pixelLess(p, best)) {
			best, bestN = p, n
		}
	}
	return Color{R: best.R, G: best.G, B: best.B}
}

// pixelLess orders pixels lexicographically on (B, G, R).
func pixelLess(a, b frame.Pixel) bool {
	if a.B != b.B {
		return a.B < b.B
	}
	if a.G != b.G {
		return a.G < b.G
	}
	return a.R < b.R
}

func blackWhite(pixels []frame.Pixel) Color {
	var sum uint64
	for _, p := range pixels {
		sum += uint64(Luma(p))
	}
	// mean < 128  <=>  sum < 128*n, kept in integers to avoid float drift at the boundary.
	if sum < bwThreshold*uint64(len(pixels)) {
		return Black
	}
	return White
}

// Luma returns the rounded 8-bit BT.601 luminance of p.
func Luma(p frame.Pixel) uint8 {
	y := (uint32(p.R)*lumaR + uint32(p.G)*lumaG + uint32(p.B)*lumaB + 1<<(lumaShift-1)) >> lumaShift
	return uint8(y)
}
