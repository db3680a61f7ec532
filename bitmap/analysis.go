package bitmap

import (
	"math"
)

// Histogram returns the number of pixels for every rounded luminance value.
func Histogram(img *Image) [math.MaxUint8 + 1]int {
	var histogram [math.MaxUint8 + 1]int
	for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
		for x := img.Rect.Min.X; x < img.Rect.Max.X; x++ {
			histogram[uint8(math.Round(Luminance(img.PixelAt(x, y))))]++
		}
	}
	return histogram
}

// IsDocument reports whether the image looks like a scanned document, i.e.
// most of its pixels are either dark or light. Zero thresholds mean 50 and
// 200.
func IsDocument(img *Image, darkThreshold, lightThreshold uint8) bool {
	if img == nil {
		return false
	}
	if darkThreshold == 0 {
		darkThreshold = 50
	}
	if lightThreshold == 0 {
		lightThreshold = 200
	}
	histogram := Histogram(img)
	// sum all dark pixels in the range [0, darkThreshold)
	var (
		darkPixelCount  float64
		lightPixelCount float64
		totalPixelCount float64
	)
	for i, count := range histogram {
		totalPixelCount += float64(count)
		if i < int(darkThreshold) {
			darkPixelCount += float64(count)
		} else if i >= int(lightThreshold) {
			lightPixelCount += float64(count)
		}
	}
	if totalPixelCount == 0 {
		return false // no pixels to analyze
	}

	return (darkPixelCount+lightPixelCount)/totalPixelCount > 0.85
}

// WhiteFraction returns the share of pure white pixels in img.
func WhiteFraction(img *Image) float64 {
	total := img.Rect.Dx() * img.Rect.Dy()
	if total <= 0 {
		return 0
	}
	var white int
	for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
		for x := img.Rect.Min.X; x < img.Rect.Max.X; x++ {
			if img.PixelAt(x, y) == White {
				white++
			}
		}
	}
	return float64(white) / float64(total)
}
