// Package bitmap provides the colour reduction transforms: luminance
// thresholding, two-colour remapping, palette quantisation and noise
// dithering.
package bitmap

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

const (
	// DefaultThreshold is the luminance cutoff for the two-colour transforms.
	// Luminance strictly greater than the threshold is "light".
	DefaultThreshold = 128
	// DefaultGamma is a special value that instructs to skip the gamma
	// correction.
	DefaultGamma = 0.0
)

var (
	Black = Pixel{0, 0, 0}
	White = Pixel{255, 255, 255}
)

// Pixel is an opaque 8-bit RGB colour.
type Pixel struct {
	R, G, B uint8
}

func (p Pixel) RGBA() (r, g, b, a uint32) {
	r = uint32(p.R)
	r |= r << 8
	g = uint32(p.G)
	g |= g << 8
	b = uint32(p.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// PixelModel converts any colour to a Pixel, dropping the alpha channel.
var PixelModel color.Model = color.ModelFunc(pixelModel)

func pixelModel(c color.Color) color.Color {
	if _, ok := c.(Pixel); ok {
		return c
	}
	return toPixel(c)
}

func toPixel(c color.Color) Pixel {
	switch c := c.(type) {
	case Pixel:
		return c
	case color.Gray:
		return Pixel{c.Y, c.Y, c.Y}
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pixel{n.R, n.G, n.B}
}

// Luminance returns the BT.601 brightness of p in the range [0, 255].
//
// The weights are applied in integer arithmetic and divided once, so that
// grey pixels map to their channel value exactly.
func Luminance(p Pixel) float64 {
	return float64(299*uint32(p.R)+587*uint32(p.G)+114*uint32(p.B)) / 1000
}

// ColorToGray returns the luminance of c rounded to the nearest integer.
func ColorToGray(c color.Color) uint8 {
	if gray, ok := c.(color.Gray); ok {
		return gray.Y
	}
	return uint8(math.Round(Luminance(toPixel(c))))
}

// Image is an in-memory RGB image with 3 bytes per pixel.
type Image struct {
	// Pix holds the image's pixels in R, G, B order. The pixel at (x, y)
	// starts at Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)*3].
	Pix []uint8
	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
	// Rect is the image's bounds.
	Rect image.Rectangle
}

var _ draw.Image = (*Image)(nil)

// NewImage returns a new black Image with the given bounds.
func NewImage(r image.Rectangle) *Image {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		w, h = 0, 0
		r = image.Rectangle{Min: r.Min, Max: r.Min}
	}
	return &Image{
		Pix:    make([]uint8, 3*w*h),
		Stride: 3 * w,
		Rect:   r,
	}
}

// FromImage copies any image into a new Image with the top left corner at
// (0, 0).
func FromImage(src image.Image) *Image {
	if m, ok := src.(*Image); ok {
		dst := NewImage(image.Rect(0, 0, m.Rect.Dx(), m.Rect.Dy()))
		for y := 0; y < dst.Rect.Dy(); y++ {
			copy(dst.Pix[y*dst.Stride:(y+1)*dst.Stride], m.Pix[m.PixOffset(m.Rect.Min.X, m.Rect.Min.Y+y):])
		}
		return dst
	}
	sb := src.Bounds()
	// draw handles the common decoder outputs (YCbCr, Paletted, Gray) on its
	// fast paths, going through NRGBA keeps the channels unpremultiplied.
	tmp := image.NewNRGBA(image.Rect(0, 0, sb.Dx(), sb.Dy()))
	draw.Draw(tmp, tmp.Bounds(), src, sb.Min, draw.Src)
	dst := NewImage(tmp.Bounds())
	for i, j := 0, 0; i < len(tmp.Pix); i, j = i+4, j+3 {
		dst.Pix[j+0] = tmp.Pix[i+0]
		dst.Pix[j+1] = tmp.Pix[i+1]
		dst.Pix[j+2] = tmp.Pix[i+2]
	}
	return dst
}

func (m *Image) ColorModel() color.Model { return PixelModel }

func (m *Image) Bounds() image.Rectangle { return m.Rect }

func (m *Image) At(x, y int) color.Color {
	return m.PixelAt(x, y)
}

// PixelAt returns the pixel at (x, y), or black if the point is outside the
// bounds.
func (m *Image) PixelAt(x, y int) Pixel {
	if !(image.Point{x, y}.In(m.Rect)) {
		return Pixel{}
	}
	i := m.PixOffset(x, y)
	s := m.Pix[i : i+3 : i+3]
	return Pixel{s[0], s[1], s[2]}
}

// PixOffset returns the index of the first element of Pix that corresponds
// to the pixel at (x, y).
func (m *Image) PixOffset(x, y int) int {
	return (y-m.Rect.Min.Y)*m.Stride + (x-m.Rect.Min.X)*3
}

func (m *Image) Set(x, y int, c color.Color) {
	m.SetPixel(x, y, toPixel(c))
}

// SetPixel sets the pixel at (x, y). Points outside the bounds are ignored.
func (m *Image) SetPixel(x, y int, p Pixel) {
	if !(image.Point{x, y}.In(m.Rect)) {
		return
	}
	i := m.PixOffset(x, y)
	s := m.Pix[i : i+3 : i+3]
	s[0] = p.R
	s[1] = p.G
	s[2] = p.B
}

// SubImage returns an image representing the portion of m visible through
// r. The returned value shares pixels with the original image.
func (m *Image) SubImage(r image.Rectangle) image.Image {
	r = r.Intersect(m.Rect)
	// If r1 and r2 are Rectangles, r1.Intersect(r2) is not guaranteed to be
	// inside either r1 or r2 if the intersection is empty. Without explicitly
	// checking for this, the Pix[i:] expression below can panic.
	if r.Empty() {
		return &Image{}
	}
	i := m.PixOffset(r.Min.X, r.Min.Y)
	return &Image{
		Pix:    m.Pix[i:],
		Stride: m.Stride,
		Rect:   r,
	}
}

// Fill sets every pixel of m to p.
func (m *Image) Fill(p Pixel) {
	for y := m.Rect.Min.Y; y < m.Rect.Max.Y; y++ {
		for x := m.Rect.Min.X; x < m.Rect.Max.X; x++ {
			m.SetPixel(x, y, p)
		}
	}
}
