package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/backmassage/framegrid/internal/config"
)

func TestPositions(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		requested int
		want      []int
	}{
		{"empty video", 0, 10, []int{}},
		{"zero requested", 50, 0, []int{}},
		{"single", 50, 1, []int{0}},
		{"single frame video", 1, 10, []int{0}},
		{"endpoints", 50, 2, []int{0, 49}},
		{"even spread", 11, 3, []int{0, 5, 10}},
		{"integral steps", 10, 4, []int{0, 3, 6, 9}},
		{"fractional steps", 6, 4, []int{0, 2, 3, 5}},
		{"round to nearest", 100, 10, []int{0, 11, 22, 33, 44, 55, 66, 77, 88, 99}},
		{"half rounds away from zero", 8, 3, []int{0, 4, 7}},
		{"clamped to total", 10, 100, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{"all frames", 5, 5, []int{0, 1, 2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Positions(tt.total, tt.requested))
		})
	}
}

func TestPositions_Properties(t *testing.T) {
	for total := 0; total <= 60; total++ {
		for requested := 1; requested <= 70; requested++ {
			got := Positions(total, requested)

			assert.Len(t, got, min(total, requested), "total=%d requested=%d", total, requested)
			for i, p := range got {
				assert.GreaterOrEqual(t, p, 0)
				assert.Less(t, p, total)
				if i > 0 {
					assert.GreaterOrEqual(t, p, got[i-1], "total=%d requested=%d", total, requested)
				}
			}
			if len(got) >= 2 {
				assert.Equal(t, 0, got[0])
				assert.Equal(t, total-1, got[len(got)-1])
			}
		}
	}
}

func TestBuildPlan(t *testing.T) {
	cfg := config.DefaultConfig()

	plan := BuildPlan(&cfg, 200)
	assert.Equal(t, 10, plan.Len())
	assert.False(t, plan.Clamped())
	assert.Empty(t, plan.Note)

	cfg.NumFrames = 100
	plan = BuildPlan(&cfg, 10)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, plan.Positions)
	assert.True(t, plan.Clamped())
	assert.Contains(t, plan.Note, "sampling all")

	plan = BuildPlan(&cfg, 0)
	assert.True(t, plan.Empty())
	assert.Contains(t, plan.Note, "no frames")
}
