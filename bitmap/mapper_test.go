package bitmap

import (
	"image"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapPixels(t *testing.T) {
	tests := []struct {
		name    string
		rect    image.Rectangle
		workers int
	}{
		{"empty", image.Rect(0, 0, 0, 0), 4},
		{"single row", image.Rect(0, 0, 7, 1), 4},
		{"offset origin", image.Rect(-3, 5, 4, 12), 3},
		{"inline", image.Rect(0, 0, 9, 9), 1},
		{"more workers than rows", image.Rect(0, 0, 3, 3), 32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewImage(tt.rect)
			var calls atomic.Int64
			got := mapPixels(src, func(x, y int, p Pixel) Pixel {
				calls.Add(1)
				return Pixel{uint8(x), uint8(y), p.B + 1}
			}, WithWorkers(tt.workers))

			assert.Equal(t, tt.rect, got.Bounds())
			assert.Equal(t, int64(tt.rect.Dx()*tt.rect.Dy()), calls.Load(), "every pixel is visited once")
			for y := tt.rect.Min.Y; y < tt.rect.Max.Y; y++ {
				for x := tt.rect.Min.X; x < tt.rect.Max.X; x++ {
					assert.Equal(t, Pixel{uint8(x), uint8(y), 1}, got.PixelAt(x, y))
				}
			}
			assert.Equal(t, make([]uint8, len(src.Pix)), src.Pix, "source is untouched")
		})
	}
}

func TestNewOptions(t *testing.T) {
	assert.Equal(t, 3, newOptions([]Option{WithWorkers(3)}).workers)
	assert.Positive(t, newOptions(nil).workers)
	assert.Positive(t, newOptions([]Option{WithWorkers(-1)}).workers)
}
