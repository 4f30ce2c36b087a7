// Package source defines the frame source contract used by the pipeline
// and the registry of decoding backends that implement it.
package source

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/backmassage/framegrid/internal/frame"
)

// ErrFrameDecode marks a per-position decode failure. The pipeline skips
// such frames and keeps going.
var ErrFrameDecode = errors.New("frame decode failed")

// ErrUnknownBackend is returned by [Lookup] for names nobody registered.
var ErrUnknownBackend = errors.New("unknown frame source backend")

// Source is an opened video. Implementations are used by one goroutine.
type Source interface {
	// FrameCount is the total number of frames, possibly zero.
	FrameCount() int
	// Size returns the frame dimensions in pixels.
	Size() (width, height int)
	// DecodeAt returns the frame at position. Failures wrap ErrFrameDecode.
	DecodeAt(ctx context.Context, position int) (*frame.Frame, error)
	// Close releases the underlying resource.
	Close() error
}

// Opener opens the video at path.
type Opener func(ctx context.Context, path string) (Source, error)

// DecodeError reports which position failed and why.
type DecodeError struct {
	Position int
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode frame %d: %v", e.Position, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is makes every DecodeError match ErrFrameDecode.
func (e *DecodeError) Is(target error) bool { return target == ErrFrameDecode }

var (
	mu       sync.RWMutex
	registry = map[string]Opener{}
)

// Register makes a backend available under name. Backends call it from
// init; registering the same name twice panics.
func Register(name string, open Opener) {
	mu.Lock()
	defer mu.Unlock()
	if _, dup := registry[name]; dup {
		panic("source: Register called twice for " + name)
	}
	registry[name] = open
}

// Lookup returns the opener registered under name.
func Lookup(name string) (Opener, error) {
	mu.RLock()
	defer mu.RUnlock()
	open, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownBackend, name, namesLocked())
	}
	return open, nil
}

// Names lists the registered backends in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	return namesLocked()
}

func namesLocked() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func checkPosition(position, total int) error {
	if position < 0 || position >= total {
		return &DecodeError{Position: position, Err: fmt.Errorf("position out of range [0,%d)", total)}
	}
	return nil
}
