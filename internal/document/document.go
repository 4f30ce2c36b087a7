// Package document defines the JSON artifact produced by an extraction run
// and consumed by the command emitter, plus the builder the pipeline uses
// to assemble it.
package document

import (
	"errors"

	"github.com/backmassage/framegrid/internal/cellcolor"
)

// ErrMalformed is returned by [Read] and [Document.Validate] when a
// document does not match the expected shape.
var ErrMalformed = errors.New("malformed grid document")

// Document is the run's only output. Field names are part of the on-disk
// contract.
type Document struct {
	Rows    int     `json:"rows"`
	Columns int     `json:"columns"`
	Frames  []Frame `json:"frames"`
}

// Frame holds the reduced grid for one sampled frame. Grid is Rows x
// Columns of "#RRGGBB" strings.
type Frame struct {
	FrameIndex int        `json:"frame_index"`
	Grid       [][]string `json:"grid"`
}

// Builder accumulates frames for a single run. The zero value is not
// usable; create one with [NewBuilder].
type Builder struct {
	doc  Document
	done bool
}

// NewBuilder starts an empty document for a rows x cols grid.
func NewBuilder(rows, cols int) *Builder {
	return &Builder{doc: Document{Rows: rows, Columns: cols, Frames: []Frame{}}}
}

// Add appends the grid for frame index idx. colors must be rows x cols.
func (b *Builder) Add(idx int, colors [][]cellcolor.Color) error {
	if b.done {
		return errors.New("document builder already finished")
	}
	if len(colors) != b.doc.Rows {
		return errors.New("grid row count does not match document")
	}
	g := make([][]string, len(colors))
	for i, row := range colors {
		if len(row) != b.doc.Columns {
			return errors.New("grid column count does not match document")
		}
		g[i] = make([]string, len(row))
		for j, c := range row {
			g[i][j] = c.Hex()
		}
	}
	b.doc.Frames = append(b.doc.Frames, Frame{FrameIndex: idx, Grid: g})
	return nil
}

// Len returns the number of frames added so far.
func (b *Builder) Len() int { return len(b.doc.Frames) }

// Finish returns the assembled document. The builder rejects further
// frames afterwards.
func (b *Builder) Finish() *Document {
	b.done = true
	return &b.doc
}

// Validate checks the grid dimensions of every frame against Rows and Columns.
func (d *Document) Validate() error {
	if d.Rows <= 0 || d.Columns <= 0 {
		return errors.Join(ErrMalformed, errors.New("rows and columns must be positive"))
	}
	for _, f := range d.Frames {
		if len(f.Grid) != d.Rows {
			return errors.Join(ErrMalformed, errors.New("frame grid row count mismatch"))
		}
		for _, row := range f.Grid {
			if len(row) != d.Columns {
				return errors.Join(ErrMalformed, errors.New("frame grid column count mismatch"))
			}
		}
	}
	return nil
}

// LastFrameIndex returns the frame_index of the final frame and false when
// the document has no frames.
func (d *Document) LastFrameIndex() (int, bool) {
	if len(d.Frames) == 0 {
		return 0, false
	}
	return d.Frames[len(d.Frames)-1].FrameIndex, true
}
