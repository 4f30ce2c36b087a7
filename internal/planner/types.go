package planner

// Plan is the ordered list of frame positions a run will decode.
type Plan struct {
	TotalFrames int   // Frame count reported by the source.
	Requested   int   // Frames asked for before clamping.
	Positions   []int // Non-decreasing, each in [0, TotalFrames-1].

	Note string // Human-readable explanation when the request was adjusted.
}

// Len is the number of planned positions.
func (p *Plan) Len() int { return len(p.Positions) }

// Empty reports whether nothing will be decoded.
func (p *Plan) Empty() bool { return len(p.Positions) == 0 }

// Clamped reports whether fewer positions were planned than requested.
func (p *Plan) Clamped() bool { return len(p.Positions) < p.Requested }
