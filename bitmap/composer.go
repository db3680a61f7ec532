package bitmap

import (
	"image"
	"strings"

	"github.com/rusq/fontpic"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// DefaultFace is the font used for labels when none is given.
var DefaultFace font.Face = fontpic.Face8x16

var replacer = strings.NewReplacer("\t", strings.Repeat(" ", 8))

// Composer stacks images and text labels vertically on a white canvas of
// fixed width.
type Composer struct {
	dst *image.RGBA // destination image (canvas)
	sp  image.Point // current image position

	gap int // vertical space after each appended image
}

type ComposerOption func(*Composer)

// WithComposerGap sets the number of white lines added after each image.
func WithComposerGap(gap int) ComposerOption {
	return func(c *Composer) {
		if gap >= 0 {
			c.gap = gap
		}
	}
}

func NewComposer(width int, opt ...ComposerOption) *Composer {
	c := &Composer{
		dst: image.NewRGBA(image.Rect(0, 0, width, 0)),
		sp:  image.Point{},
	}
	for _, o := range opt {
		o(c)
	}
	return c
}

// AppendImage appends an image below the current content. Images wider
// than the canvas are scaled down to fit.
func (c *Composer) AppendImage(img image.Image) {
	if img == nil {
		return // nothing to append
	}
	if c.dst.Bounds().Dx() < img.Bounds().Dx() {
		img = ResizeToFit(img, c.dst.Bounds().Dx())
	}
	c.dst = ResizeCanvasY(c.dst, c.sp.Y+img.Bounds().Dy()+c.gap)
	r := image.Rectangle{Min: c.sp, Max: c.sp.Add(img.Bounds().Size())}
	draw.Draw(c.dst, r, img, img.Bounds().Min, draw.Src)
	c.sp.Y += img.Bounds().Dy() + c.gap // move down by the height of the new image
	c.sp.X = 0                          // reset X position to the start of the line
}

// AppendLabel renders text with face, or DefaultFace if face is nil, and
// appends it.
func (c *Composer) AppendLabel(face font.Face, text string) {
	if face == nil {
		face = DefaultFace
	}
	gap := c.gap
	c.gap = 0
	c.AppendImage(renderText(text, face, c.dst.Bounds().Dx()))
	c.gap = gap
}

// Image returns the composed image.
func (c *Composer) Image() image.Image {
	return c.dst
}

// Bounds returns the canvas rectangle.
func (c *Composer) Bounds() image.Rectangle {
	return c.dst.Bounds()
}

func renderText(text string, face font.Face, imgWidth int) image.Image {
	lines := strings.Split(text, "\n")
	imgHeight := len(lines) * face.Metrics().Height.Ceil()

	fg, bg := image.Black, image.White
	img := image.NewRGBA(image.Rect(0, 0, imgWidth, imgHeight))
	draw.Draw(img, img.Bounds(), bg, image.Point{}, draw.Src)

	var d = font.Drawer{
		Dst:  img,
		Src:  fg,
		Face: face,
		Dot:  fixed.P(0, face.Metrics().Ascent.Ceil()), // Start at the top
	}
	for _, line := range lines {
		d.DrawString(replacer.Replace(line))
		d.Dot.X = fixed.I(0) // Reset X position to the start of the line
		d.Dot.Y += face.Metrics().Height
	}
	return img
}
