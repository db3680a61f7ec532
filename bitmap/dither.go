package bitmap

import (
	"image/color"
	"math/rand/v2"

	"github.com/makeworld-the-better-one/dither/v2"
)

// Noise provides the cutoff for every pixel in RandomDither.
type Noise interface {
	// Threshold returns a value in [0, 255) for the pixel at (x, y). It must
	// return the same value for the same coordinates.
	Threshold(x, y int) float64
}

type seededNoise struct {
	seed uint64
}

// NewNoise returns uniform Noise derived from seed and the pixel
// coordinates only, so the result does not depend on the order in which
// pixels are visited.
func NewNoise(seed uint64) Noise {
	return seededNoise{seed: seed}
}

func (n seededNoise) Threshold(x, y int) float64 {
	key := uint64(uint32(y))<<32 | uint64(uint32(x))
	pcg := rand.NewPCG(n.seed, mix64(key))
	// 53 random bits scaled to [0, 1), then to [0, 255).
	return float64(pcg.Uint64()>>11) * (1.0 / (1 << 53)) * 255
}

// mix64 is the splitmix64 finaliser.
func mix64(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// RandomDither converts src to black and white comparing the luminance of
// each pixel against its own random cutoff from noise instead of a fixed
// threshold. If noise is nil, NewNoise(0) is used.
func RandomDither(src *Image, noise Noise, opts ...Option) *Image {
	if noise == nil {
		noise = NewNoise(0)
	}
	return mapPixels(src, func(x, y int, p Pixel) Pixel {
		if Luminance(p) > noise.Threshold(x, y) {
			return White
		}
		return Black
	}, opts...)
}

// Checkerboard sets every other pixel of src to c, starting with the pixel
// at the origin, and copies the rest.
func Checkerboard(src *Image, c Pixel, opts ...Option) *Image {
	return mapPixels(src, func(x, y int, p Pixel) Pixel {
		if (x+y)&1 == 0 {
			return c
		}
		return p
	}, opts...)
}

// DefaultOrderSize is the Bayer matrix size used by Ordered.
const DefaultOrderSize = 8

// Ordered applies Bayer ordered dithering with a size x size matrix. Size
// must be a power of two between 2 and 16, otherwise DefaultOrderSize is
// used. Zero strength means 1.0.
//
// The ditherer schedules its own goroutines, so of the options only
// WithWorkers(1) has an effect: it makes the pass sequential.
func Ordered(src *Image, size int, strength float32, opts ...Option) *Image {
	if size < 2 || size > 16 || size&(size-1) != 0 {
		size = DefaultOrderSize
	}
	if strength == 0 {
		strength = 1.0
	}
	o := newOptions(opts)
	d := dither.NewDitherer([]color.Color{color.Black, color.White})
	d.Mapper = dither.Bayer(uint(size), uint(size), strength)
	d.SingleThreaded = o.workers == 1
	dst := NewImage(src.Rect)
	d.Draw(dst, dst.Bounds(), src, src.Rect.Min)
	return dst
}
