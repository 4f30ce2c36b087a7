package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"strings"
)

// ExecResult holds the outcome of a single ffmpeg invocation.
type ExecResult struct {
	Stdout []byte
	Stderr string
	Err    error
}

// Execute runs the frame extraction command for position and captures
// both output streams. ctx is checked before the process starts; a
// single-frame decode is not interrupted once running.
func Execute(ctx context.Context, path string, position int) ExecResult {
	if err := ctx.Err(); err != nil {
		return ExecResult{Err: err}
	}

	var stdout, stderr bytes.Buffer
	cmd := FrameStream(path, position).Compile()
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return ExecResult{
		Stdout: stdout.Bytes(),
		Stderr: stderr.String(),
		Err:    err,
	}
}

// ExtractFrame decodes frame position of path and returns exactly
// frameBytes bytes of BGR24 pixels. Failures wrap one of the Err* reasons
// when the cause can be identified.
func ExtractFrame(ctx context.Context, path string, position, frameBytes int) ([]byte, error) {
	res := Execute(ctx, path, position)
	if res.Err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if reason := Classify(res.Stderr); reason != nil {
			return nil, fmt.Errorf("%w: %s", reason, firstLine(res.Stderr))
		}
		return nil, fmt.Errorf("ffmpeg: %w: %s", res.Err, firstLine(res.Stderr))
	}

	switch n := len(res.Stdout); {
	case n == 0:
		return nil, ErrNoFrame
	case n < frameBytes:
		return nil, fmt.Errorf("%w: got %d of %d bytes", ErrShortFrame, n, frameBytes)
	case n > frameBytes:
		// Extra output means the size from ffprobe is stale; keep the first frame.
		return res.Stdout[:frameBytes], nil
	}
	return res.Stdout, nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
