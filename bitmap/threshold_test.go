package bitmap

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func pixels(img *Image) []Pixel {
	var pp []Pixel
	for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
		for x := img.Rect.Min.X; x < img.Rect.Max.X; x++ {
			pp = append(pp, img.PixelAt(x, y))
		}
	}
	return pp
}

func TestThreshold(t *testing.T) {
	tests := []struct {
		name string
		src  *Image
		want []Pixel
	}{
		{
			name: "2x2 example",
			src: func() *Image {
				img := NewImage(image.Rect(0, 0, 2, 2))
				img.SetPixel(0, 0, Pixel{50, 50, 50})
				img.SetPixel(1, 0, Pixel{200, 200, 200})
				img.SetPixel(0, 1, Pixel{128, 128, 128})
				img.SetPixel(1, 1, Pixel{129, 129, 129})
				return img
			}(),
			want: []Pixel{Black, White, Black, White},
		},
		{
			name: "weighted luminance of exactly 128 is dark",
			src: func() *Image {
				img := NewImage(image.Rect(0, 0, 1, 1))
				img.SetPixel(0, 0, Pixel{4, 210, 31})
				return img
			}(),
			want: []Pixel{Black},
		},
		{
			name: "primary colours",
			src: func() *Image {
				img := NewImage(image.Rect(0, 0, 3, 1))
				img.SetPixel(0, 0, Pixel{255, 0, 0})   // 76.245
				img.SetPixel(1, 0, Pixel{0, 255, 0})   // 149.685
				img.SetPixel(2, 0, Pixel{255, 255, 0}) // 225.93
				return img
			}(),
			want: []Pixel{Black, White, White},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Threshold(tt.src)
			assert.Equal(t, tt.src.Bounds(), got.Bounds())
			assert.Equal(t, tt.want, pixels(got))
		})
	}
}

func TestThreshold_idempotent(t *testing.T) {
	once := Threshold(Gradient(64, 8))
	twice := Threshold(once)
	assert.Equal(t, once, twice)
}

func TestThreshold_doesNotModifySource(t *testing.T) {
	src := Gradient(16, 4)
	orig := FromImage(src)
	got := Threshold(src)
	assert.Equal(t, orig.Pix, src.Pix)
	assert.NotSame(t, &src.Pix[0], &got.Pix[0])
}

func TestThresholdColors(t *testing.T) {
	low, high := Pixel{0, 128, 255}, Pixel{255, 255, 0}
	src := grayImage(0, 127, 128, 129, 255)
	got := ThresholdColors(src, low, high)
	assert.Equal(t, []Pixel{low, low, low, high, high}, pixels(got))
}

func TestThresholdColors_matchesThreshold(t *testing.T) {
	src := Gradient(100, 3)
	assert.Equal(t, Threshold(src), ThresholdColors(src, Black, White))
}

func TestThreshold_workers(t *testing.T) {
	src := Gradient(97, 31)
	want := Threshold(src, WithWorkers(1))
	for _, n := range []int{0, 2, 7, 64} {
		assert.Equal(t, want, Threshold(src, WithWorkers(n)), "workers=%d", n)
	}
}

func TestIsLight(t *testing.T) {
	assert.False(t, IsLight(Pixel{128, 128, 128}, DefaultThreshold))
	assert.True(t, IsLight(Pixel{129, 129, 129}, DefaultThreshold))
	assert.False(t, IsLight(Black, 0))
	assert.True(t, IsLight(White, 254.99))
}
