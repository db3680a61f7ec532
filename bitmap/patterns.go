package bitmap

import (
	"image"
	"math"
	"sort"
)

// PatternFunc generates a synthetic test image of the given size.
type PatternFunc func(width, height int) *Image

// Patterns are the available test patterns by name.
var Patterns = map[string]PatternFunc{
	"gradient": Gradient,
	"checkers": Checkers,
	"bars":     Bars,
	"sine":     Sinusoidal,
}

// AllPatterns returns sorted pattern names.
func AllPatterns() []string {
	names := make([]string, 0, len(Patterns))
	for k := range Patterns {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Uniform returns an image where every pixel is p.
func Uniform(width, height int, p Pixel) *Image {
	img := NewImage(image.Rect(0, 0, width, height))
	img.Fill(p)
	return img
}

// Gradient draws a horizontal grey ramp from black on the left to white on
// the right.
func Gradient(width, height int) *Image {
	img := NewImage(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		v := uint8(0)
		if width > 1 {
			v = uint8(x * 255 / (width - 1))
		}
		for y := 0; y < height; y++ {
			img.SetPixel(x, y, Pixel{v, v, v})
		}
	}
	return img
}

// Checkers draws a one pixel black and white checkerboard with white at the
// origin.
func Checkers(width, height int) *Image {
	img := NewImage(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if (x+y)%2 == 0 {
				img.SetPixel(x, y, White)
			}
		}
	}
	return img
}

// Bars draws vertical bars of the primary8 palette colours.
//
//	| black | white | red | green | blue | yellow | magenta | cyan |
func Bars(width, height int) *Image {
	pal := namedPalettes["primary8"]
	img := NewImage(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		c := pal[x*len(pal)/max(width, 1)]
		for y := 0; y < height; y++ {
			img.SetPixel(x, y, c)
		}
	}
	return img
}

// Sinusoidal draws a black sine wave with the period of 100 pixels on white.
func Sinusoidal(width, height int) *Image {
	img := Uniform(width, height, White)
	mid := float64(height) / 2
	amp := mid - 2
	for x := 0; x < width; x++ {
		y := int(mid + amp*math.Sin(float64(x)*2*math.Pi/100))
		img.SetPixel(x, y, Black)
	}
	return img
}
