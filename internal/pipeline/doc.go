// Package pipeline drives one extraction run: open the source, plan the
// sample positions, decode each frame, partition it and reduce every cell,
// and hand back the assembled document.
//
// A run either returns a complete document or a fatal error. Frames that
// fail to decode are logged and left out; they never fail the run.
package pipeline
