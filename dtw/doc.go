// Package dtw computes Dynamic Time Warping (DTW) distances between
// recorded signals, with optional alignment path and memory optimizations.
//
// DTW finds the cheapest alignment of two sequences when one may run ahead
// of or behind the other. In lvsignal it compares traces captured by a
// sink.Recorder, e.g. a block's response against a reference response
// sampled at a different rate.
//
// Key features:
//   - FullMatrix mode: O(N·M) time and memory, path recovery (WithPath)
//   - TwoRows / NoMemory modes: O(M) memory, distance only
//   - optional Sakoe-Chiba window (|i-j| <= w) via WithWindow
//   - slope penalty for non-diagonal steps via WithSlopePenalty
//
// Usage:
//
//	dist, path, err := dtw.Distance(a, b, dtw.WithWindow(10), dtw.WithPath())
//	dist, _, err = dtw.CompareRecorders(ref, got, dtw.WithMemoryMode(dtw.TwoRows))
package dtw
