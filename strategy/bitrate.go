package strategy

// EstimateBitRate returns an approximate AVC bit rate in bits per second
// for the given frame geometry and rate, using 0.07 * 2 bits per pixel per
// frame. The constant is an empirical default for AVC; it is an
// approximation, not a guarantee of quality or size. Callers targeting a
// different codec should supply an explicit bit rate instead.
func EstimateBitRate(width, height, frameRate int) int64 {
	return int64(0.07 * 2 * float64(width) * float64(height) * float64(frameRate))
}
