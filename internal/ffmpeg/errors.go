package ffmpeg

import (
	"errors"
	"regexp"
)

// Decode failure reasons, matched by [Classify] from ffmpeg stderr and by
// [ExtractFrame] from the shape of stdout.
var (
	ErrNoFrame       = errors.New("no frame at position")
	ErrShortFrame    = errors.New("truncated frame data")
	ErrCorruptStream = errors.New("corrupt or undecodable stream")
	ErrInputMissing  = errors.New("input cannot be opened")
)

// Pre-compiled regexes for classifying ffmpeg stderr output. Checked in
// order by Classify; the first match wins.
var (
	reInputMissing = regexp.MustCompile(
		`(?i)No such file or directory|Permission denied|Invalid data found when processing input`)

	reCorrupt = regexp.MustCompile(
		`(?i)error while decoding|corrupt|invalid NAL unit|missing picture|` +
			`concealing \d+ DC|decode_slice_header error|moov atom not found`)

	reNoFrame = regexp.MustCompile(
		`(?i)Output file is empty|nothing was encoded|Output file #0 does not contain any stream`)
)

// Classify maps ffmpeg stderr to one of the decode failure reasons, or nil
// when nothing recognizable is present.
func Classify(stderr string) error {
	switch {
	case reInputMissing.MatchString(stderr):
		return ErrInputMissing
	case reCorrupt.MatchString(stderr):
		return ErrCorruptStream
	case reNoFrame.MatchString(stderr):
		return ErrNoFrame
	}
	return nil
}
