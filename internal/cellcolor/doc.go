// Package cellcolor reduces the pixels of one grid cell to a single
// representative color and formats it as an upper-case #RRGGBB string.
//
// Three reductions are supported:
//
//   - average: per-channel mean, rounded half to even.
//   - mode: the most frequent exact color; ties go to the smallest color
//     compared as (B, G, R) tuples.
//   - black_white: mean BT.601 luma with the same fixed-point weights as
//     OpenCV's BGR2GRAY, thresholded at 128 (128 itself is white).
//
// An empty cell reduces to black under every method.
package cellcolor
