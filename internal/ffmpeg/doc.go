// Package ffmpeg decodes single frames out of a video by running ffmpeg
// with a select filter and reading raw BGR24 pixels from its stdout.
//
// The command line is assembled with ffmpeg-go so the filter graph and
// stream mapping stay consistent; stderr is captured and classified so a
// failed decode can be reported with a useful reason.
package ffmpeg
