// Package probe inspects a video with a single ffprobe JSON call and
// reports what the frame decoder needs: frame count, frame size and rate.
//
// ffprobe reports nb_frames from the container when it can. When the
// container does not carry it (MKV, some streams), the count is estimated
// from duration x average frame rate, the same estimate OpenCV uses for
// CAP_PROP_FRAME_COUNT.
package probe
