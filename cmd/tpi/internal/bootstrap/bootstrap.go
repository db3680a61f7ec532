// Package bootstrap turns the command line configuration into images and
// transform parameters.
package bootstrap

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"github.com/rusq/tpimage/bitmap"
	"github.com/rusq/tpimage/cmd/tpi/internal/cfg"
)

// Load decodes the image file, applies the resize and gamma correction
// selected on the command line and returns the bitmap.
func Load(ctx context.Context, filename string) (*bitmap.Image, error) {
	img, err := imaging.Open(filename, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to open image %q: %w", filename, err)
	}
	slog.DebugContext(ctx, "image loaded", "filename", filename, "bounds", img.Bounds())
	img = bitmap.ResizeToFit(img, cfg.Width)
	img = bitmap.AdjustGamma(img, cfg.Gamma)
	return bitmap.FromImage(img), nil
}

// Save encodes the image, the format is chosen by the file extension.
func Save(img image.Image, filename string) error {
	if dir := filepath.Dir(filename); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := imaging.Save(img, filename); err != nil {
		return fmt.Errorf("failed to save image %q: %w", filename, err)
	}
	return nil
}

// Params returns the transform parameters from the command line flags.
func Params(ctx context.Context) (bitmap.Params, error) {
	p := bitmap.DefaultParams()
	var err error
	if p.Low, err = bitmap.ParsePixel(cfg.Low); err != nil {
		return p, fmt.Errorf("low colour: %w", err)
	}
	if p.High, err = bitmap.ParsePixel(cfg.High); err != nil {
		return p, fmt.Errorf("high colour: %w", err)
	}
	if p.Palette, err = bitmap.ParsePalette(cfg.Palette); err != nil {
		return p, fmt.Errorf("palette: %w", err)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
		slog.InfoContext(ctx, "using random seed, pass -seed to reproduce", "seed", seed)
	}
	p.Noise = bitmap.NewNoise(seed)
	p.Workers = cfg.Workers
	return p, nil
}

// Select returns the transform that should be applied to img. If automatic
// mode is on and the image looks like a document, dithering transforms are
// replaced with the plain threshold.
func Select(ctx context.Context, name string, img *bitmap.Image) string {
	if name == "" {
		name = bitmap.DefaultTransform
	}
	if !cfg.Auto || !bitmap.IsDither(name) {
		return name
	}
	if bitmap.IsDocument(img, 0, 0) {
		slog.InfoContext(ctx, "document detected, dithering disabled", "requested", name, "using", bitmap.DefaultTransform)
		return bitmap.DefaultTransform
	}
	return name
}
