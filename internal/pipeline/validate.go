package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/backmassage/framegrid/internal/logging"
)

// Known video container extensions (lowercase, with leading dot).
var mediaExtensions = map[string]bool{
	".mkv":  true,
	".mp4":  true,
	".avi":  true,
	".m4v":  true,
	".mov":  true,
	".wmv":  true,
	".flv":  true,
	".webm": true,
	".ts":   true,
	".m2ts": true,
	".mpg":  true,
	".mpeg": true,
	".vob":  true,
	".ogv":  true,
	".gif":  true,
}

// IsMediaFile reports whether path has a known video extension.
func IsMediaFile(path string) bool {
	return mediaExtensions[strings.ToLower(filepath.Ext(path))]
}

// ValidateInput checks that path is a non-empty regular file. An unknown
// extension only logs a warning since ffmpeg sniffs the container anyway.
func ValidateInput(path string, log *logging.Logger) error {
	fi, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrResourceUnavailable, err)
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("%w: %s is not a regular file", ErrResourceUnavailable, path)
	}
	if fi.Size() == 0 {
		return fmt.Errorf("%w: %s is empty", ErrResourceUnavailable, path)
	}
	if !IsMediaFile(path) {
		log.Warn("Unrecognized video extension %q; trying anyway", filepath.Ext(path))
	}
	return nil
}
