package bitmap

import (
	"image"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// ResizeToFit scales the image down to the target width while maintaining
// aspect ratio. Images that are not wider than the target, and non-positive
// widths, return img unchanged.
func ResizeToFit(img image.Image, targetWidth int) image.Image {
	if targetWidth <= 0 || img.Bounds().Dx() <= targetWidth {
		return img
	}
	targetHeight := max(1, (img.Bounds().Dy()*targetWidth)/img.Bounds().Dx())
	resized := image.NewRGBA(image.Rect(0, 0, targetWidth, targetHeight))
	draw.CatmullRom.Scale(resized, resized.Bounds(), img, img.Bounds(), draw.Over, nil)
	return resized
}

// AdjustGamma applies gamma correction, gamma == DefaultGamma returns img
// unchanged.
func AdjustGamma(img image.Image, gamma float64) image.Image {
	if gamma == DefaultGamma {
		return img
	}
	return imaging.AdjustGamma(img, gamma)
}

// ResizeCanvasY resizes the destination image to the new height, filling with white
// if the new height is larger than the current height. If the new height is
// smaller or equal to the current height, it returns the original image.
func ResizeCanvasY(dst *image.RGBA, newHeight int) *image.RGBA {
	if newHeight <= dst.Bounds().Dy() {
		return dst // no need to resize
	}
	newRect := image.Rect(0, 0, dst.Bounds().Dx(), newHeight)
	newImg := image.NewRGBA(newRect)
	draw.Draw(newImg, newRect, image.White, image.Point{}, draw.Src) // fill with white
	draw.Draw(newImg, dst.Bounds(), dst, image.Point{}, draw.Src)
	return newImg
}
