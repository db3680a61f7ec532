package bitmap

import (
	"fmt"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertBilevel(t *testing.T, img *Image) {
	t.Helper()
	for _, p := range pixels(img) {
		if p != Black && p != White {
			t.Fatalf("unexpected colour %v", p)
		}
	}
}

func TestNoise_Threshold(t *testing.T) {
	n := NewNoise(42)
	var distinct = make(map[float64]struct{})
	for y := -5; y < 50; y++ {
		for x := -5; x < 50; x++ {
			v := n.Threshold(x, y)
			require.GreaterOrEqual(t, v, 0.0)
			require.Less(t, v, 255.0)
			require.Equal(t, v, n.Threshold(x, y), "same coordinates must give the same value")
			distinct[v] = struct{}{}
		}
	}
	assert.Greater(t, len(distinct), 3000)
	assert.NotEqual(t, NewNoise(1).Threshold(3, 4), NewNoise(2).Threshold(3, 4))
}

func TestRandomDither_reproducible(t *testing.T) {
	src := Gradient(128, 64)
	first := RandomDither(src, NewNoise(7), WithWorkers(1))
	assertBilevel(t, first)
	assert.Equal(t, src.Bounds(), first.Bounds())
	for _, n := range []int{1, 0, 3, 16} {
		got := RandomDither(src, NewNoise(7), WithWorkers(n))
		assert.Equal(t, first, got, "workers=%d", n)
	}
	assert.NotEqual(t, first, RandomDither(src, NewNoise(8)))
}

func TestRandomDither_nilNoise(t *testing.T) {
	src := Gradient(32, 8)
	assert.Equal(t, RandomDither(src, NewNoise(0)), RandomDither(src, nil))
}

func TestRandomDither_extremes(t *testing.T) {
	assert.Equal(t, 0.0, WhiteFraction(RandomDither(Uniform(50, 50, Black), NewNoise(1))))
	assert.Equal(t, 1.0, WhiteFraction(RandomDither(Uniform(50, 50, White), NewNoise(1))))
}

// The share of white pixels approaches luminance/255.
func TestRandomDither_density(t *testing.T) {
	const tolerance = 0.02
	for _, v := range []uint8{13, 51, 100, 128, 200, 240} {
		for seed := uint64(1); seed <= 4; seed++ {
			t.Run(fmt.Sprintf("L=%d seed=%d", v, seed), func(t *testing.T) {
				t.Parallel()
				src := Uniform(100, 100, Pixel{v, v, v})
				got := WhiteFraction(RandomDither(src, NewNoise(seed)))
				assert.InDelta(t, float64(v)/255, got, tolerance)
			})
		}
	}
}

// stubNoise returns the same cutoff for every pixel.
type stubNoise float64

func (s stubNoise) Threshold(_, _ int) float64 { return float64(s) }

func TestRandomDither_strictCompare(t *testing.T) {
	src := grayImage(99, 100, 101)
	got := RandomDither(src, stubNoise(100))
	assert.Equal(t, []Pixel{Black, Black, White}, pixels(got))
}

func TestCheckerboard(t *testing.T) {
	src := Uniform(3, 2, Pixel{1, 2, 3})
	got := Checkerboard(src, White)
	c := Pixel{1, 2, 3}
	assert.Equal(t, []Pixel{
		White, c, White,
		c, White, c,
	}, pixels(got))
	assert.Equal(t, Pixel{1, 2, 3}, src.PixelAt(0, 0))
}

func TestCheckerboard_negativeOrigin(t *testing.T) {
	src := NewImage(image.Rect(-1, -1, 1, 0))
	got := Checkerboard(src, White)
	assert.Equal(t, []Pixel{White, Black}, pixels(got))
}

func TestOrdered(t *testing.T) {
	for _, size := range []int{0, 2, 4, 8, 16, 3} {
		t.Run(fmt.Sprint(size), func(t *testing.T) {
			src := Gradient(64, 16)
			got := Ordered(src, size, 0)
			assert.Equal(t, src.Bounds(), got.Bounds())
			assertBilevel(t, got)
		})
	}
}

func TestOrdered_workers(t *testing.T) {
	src := Gradient(64, 16)
	want := Ordered(src, 4, 0.5, WithWorkers(1))
	assertBilevel(t, want)
	for _, workers := range []int{0, 2, 8} {
		assert.Equal(t, want, Ordered(src, 4, 0.5, WithWorkers(workers)), "workers=%d", workers)
	}
}

func TestOrdered_offsetOrigin(t *testing.T) {
	src := Gradient(16, 4)
	shifted := NewImage(image.Rect(5, 7, 21, 11))
	for y := 0; y < 4; y++ {
		for x := 0; x < 16; x++ {
			shifted.SetPixel(x+5, y+7, src.PixelAt(x, y))
		}
	}
	got := Ordered(shifted, 2, 0)
	assert.Equal(t, shifted.Bounds(), got.Bounds())
	assertBilevel(t, got)
	assert.Equal(t, Black, got.PixelAt(5, 7), "black stays black")
}
