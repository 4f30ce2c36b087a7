package planner

import (
	"fmt"
	"math"

	"github.com/backmassage/framegrid/internal/config"
)

// BuildPlan computes the sample plan for a source with total frames using
// cfg.NumFrames as the requested count.
func BuildPlan(cfg *config.Config, total int) *Plan {
	plan := &Plan{
		TotalFrames: total,
		Requested:   cfg.NumFrames,
		Positions:   Positions(total, cfg.NumFrames),
	}

	switch {
	case total <= 0:
		plan.Note = "video has no frames; nothing to sample"
	case plan.Clamped():
		plan.Note = fmt.Sprintf("requested %d frames but video has %d; sampling all", cfg.NumFrames, total)
	}
	return plan
}

// Positions returns min(requested, total) frame positions spread evenly
// over [0, total-1], each rounded to the nearest integer. With two or
// more positions the first is 0 and the last is total-1; a single
// position is 0. A non-positive total or request yields an empty slice.
func Positions(total, requested int) []int {
	n := min(requested, total)
	if n <= 0 {
		return []int{}
	}
	if n == 1 {
		return []int{0}
	}

	out := make([]int, n)
	span := float64(total - 1)
	steps := float64(n - 1)
	for i := range out {
		out[i] = int(math.Round(float64(i) * span / steps))
	}
	// Pin the endpoint against float drift.
	out[n-1] = total - 1
	return out
}
