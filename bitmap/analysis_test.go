package bitmap

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistogram(t *testing.T) {
	img := Uniform(10, 5, Pixel{100, 100, 100})
	img.SetPixel(0, 0, White)
	h := Histogram(img)
	assert.Equal(t, 49, h[100])
	assert.Equal(t, 1, h[255])

	var total int
	for _, n := range h {
		total += n
	}
	assert.Equal(t, 50, total)
}

func TestIsDocument(t *testing.T) {
	tests := []struct {
		name string
		img  *Image
		want bool
	}{
		{"nil", nil, false},
		{"empty", NewImage(image.Rect(0, 0, 0, 0)), false},
		{"checkers", Checkers(20, 20), true},
		{"gradient", Gradient(256, 4), false},
		{"mid grey", Uniform(8, 8, Pixel{128, 128, 128}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDocument(tt.img, 0, 0))
		})
	}
}

func TestWhiteFraction(t *testing.T) {
	assert.Equal(t, 0.5, WhiteFraction(Checkers(4, 4)))
	assert.Equal(t, 0.0, WhiteFraction(NewImage(image.Rect(0, 0, 0, 0))))
	assert.Equal(t, 1.0, WhiteFraction(Uniform(3, 3, White)))
}

func TestColorToGray(t *testing.T) {
	assert.Equal(t, uint8(128), ColorToGray(Pixel{128, 128, 128}))
	assert.Equal(t, uint8(76), ColorToGray(Pixel{255, 0, 0}))
	assert.Equal(t, uint8(255), ColorToGray(White))
}
