// Package strategy decides the output track format for a transcode, given
// the input track's format and the caller's targets. The video decision
// combines a resizer chain with frame rate, keyframe interval, and bitrate
// negotiation, and short-circuits with ErrAlreadyCompressed when
// re-encoding would not improve any axis.
//
// The decision is a pure function of (input format, options): no I/O, no
// shared state, safe for concurrent use once built.
package strategy
