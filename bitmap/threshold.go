package bitmap

// Threshold converts src to black and white: pixels with luminance above
// DefaultThreshold become white, all others black.
func Threshold(src *Image, opts ...Option) *Image {
	return ThresholdColors(src, Black, White, opts...)
}

// ThresholdColors is Threshold with caller chosen colours: low replaces
// black and high replaces white.
func ThresholdColors(src *Image, low, high Pixel, opts ...Option) *Image {
	return mapPixels(src, func(_, _ int, p Pixel) Pixel {
		if IsLight(p, DefaultThreshold) {
			return high
		}
		return low
	}, opts...)
}

// IsLight reports whether the luminance of p is strictly greater than
// threshold.
func IsLight(p Pixel, threshold float64) bool {
	return Luminance(p) > threshold
}
