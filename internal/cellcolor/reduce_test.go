package cellcolor

import (
	"testing"

	"github.com/backmassage/framegrid/internal/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniform(n int, p frame.Pixel) []frame.Pixel {
	out := make([]frame.Pixel, n)
	for i := range out {
		out[i] = p
	}
	return out
}

func gray(v uint8) frame.Pixel { return frame.Pixel{B: v, G: v, R: v} }

func TestAverage_UniformCellReordersChannels(t *testing.T) {
	// (B,G,R) = (200,100,50) -> R=0x32, G=0x64, B=0xC8.
	c, err := Reduce(uniform(16, frame.Pixel{B: 200, G: 100, R: 50}), MethodAverage)
	require.NoError(t, err)
	assert.Equal(t, "#3264C8", c.Hex())
}

func TestAverage_Rounding(t *testing.T) {
	tests := []struct {
		name   string
		pixels []frame.Pixel
		want   string
	}{
		{"mean 1.5 rounds to even 2", []frame.Pixel{{R: 1}, {R: 2}}, "#020000"},
		{"mean 2.5 rounds to even 2", []frame.Pixel{{R: 2}, {R: 3}}, "#020000"},
		{"mean 1/3 rounds down", []frame.Pixel{{G: 1}, {}, {}}, "#000000"},
		{"mean 2/3 rounds up", []frame.Pixel{{G: 1}, {G: 1}, {}}, "#000100"},
		{"full range", []frame.Pixel{{B: 255, G: 255, R: 255}, {B: 255, G: 255, R: 255}}, "#FFFFFF"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Reduce(tt.pixels, MethodAverage)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Hex())
		})
	}
}

func TestMode_MostFrequent(t *testing.T) {
	pixels := append(uniform(3, frame.Pixel{B: 1, G: 2, R: 3}), uniform(5, frame.Pixel{B: 10, G: 20, R: 30})...)
	c, err := Reduce(pixels, MethodMode)
	require.NoError(t, err)
	assert.Equal(t, Color{R: 30, G: 20, B: 10}, c)
	assert.Equal(t, "#1E140A", c.Hex())
}

func TestMode_TieBreaksOnSmallestBGR(t *testing.T) {
	a := frame.Pixel{B: 5, G: 0, R: 200}
	b := frame.Pixel{B: 4, G: 255, R: 255}
	c := frame.Pixel{B: 4, G: 255, R: 254}

	// Every order of the same multiset must pick c.
	orders := [][]frame.Pixel{
		{a, b, c, a, b, c},
		{c, c, b, b, a, a},
		{b, a, c, c, a, b},
	}
	for _, pixels := range orders {
		got, err := Reduce(pixels, MethodMode)
		require.NoError(t, err)
		assert.Equal(t, Color{R: 254, G: 255, B: 4}, got)
	}
}

func TestBlackWhite_Threshold(t *testing.T) {
	tests := []struct {
		name string
		luma uint8
		want Color
	}{
		{"bright", 200, White},
		{"dark", 50, Black},
		{"exactly 128 is white", 128, White},
		{"127 is black", 127, Black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Reduce(uniform(9, gray(tt.luma)), MethodBlackWhite)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBlackWhite_MeanAcrossCell(t *testing.T) {
	// Lumas 100 and 156 average to exactly 128.
	pixels := []frame.Pixel{gray(100), gray(156)}
	got, err := Reduce(pixels, MethodBlackWhite)
	require.NoError(t, err)
	assert.Equal(t, "#FFFFFF", got.Hex())

	pixels = []frame.Pixel{gray(100), gray(155)}
	got, err = Reduce(pixels, MethodBlackWhite)
	require.NoError(t, err)
	assert.Equal(t, "#000000", got.Hex())
}

func TestLuma_Weights(t *testing.T) {
	assert.Equal(t, uint8(76), Luma(frame.Pixel{R: 255}))
	assert.Equal(t, uint8(150), Luma(frame.Pixel{G: 255}))
	assert.Equal(t, uint8(29), Luma(frame.Pixel{B: 255}))
	assert.Equal(t, uint8(255), Luma(gray(255)))
	assert.Equal(t, uint8(0), Luma(gray(0)))
}

func TestReduce_EmptyCellIsBlack(t *testing.T) {
	for _, m := range Methods {
		t.Run(string(m), func(t *testing.T) {
			got, err := Reduce(nil, m)
			require.NoError(t, err)
			assert.Equal(t, "#000000", got.Hex())
		})
	}
}

func TestReduce_Idempotent(t *testing.T) {
	pixels := []frame.Pixel{{B: 1, G: 2, R: 3}, {B: 9, G: 8, R: 7}, {B: 1, G: 2, R: 3}, {B: 250, G: 0, R: 128}}
	for _, m := range Methods {
		r, err := NewReducer(m)
		require.NoError(t, err)
		assert.Equal(t, r.Reduce(pixels), r.Reduce(pixels), "method %s", m)
	}
}

func TestNewReducer_UnsupportedMethod(t *testing.T) {
	_, err := NewReducer("median")
	assert.Error(t, err)
}
