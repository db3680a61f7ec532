// Package cmdprobe provides the subcommand that describes an image.
package cmdprobe

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/pterm/pterm"

	"github.com/rusq/tpimage/bitmap"
	"github.com/rusq/tpimage/cmd/tpi/internal/bootstrap"
	"github.com/rusq/tpimage/cmd/tpi/internal/cfg"
	"github.com/rusq/tpimage/cmd/tpi/internal/golang/base"
)

var CmdProbe = &base.Command{
	Run:        runProbe,
	UsageLine:  "tpi probe [flags] <image file>",
	Short:      "prints image properties and the colour of a pixel",
	FlagMask:   cfg.OmitTransformFlags,
	PrintFlags: true,
	Long: `
Prints the size of the image, whether it looks like a document, and the
colour and luminance of the pixel at -x, -y.
`,
}

var x, y int

func init() {
	CmdProbe.Flag.IntVar(&x, "x", 32, "pixel `column`")
	CmdProbe.Flag.IntVar(&y, "y", 52, "pixel `row`")
}

func runProbe(ctx context.Context, cmd *base.Command, args []string) error {
	if len(args) != 1 {
		base.SetExitStatus(base.SInvalidParameters)
		return errors.New("expected only one image")
	}

	img, err := bootstrap.Load(ctx, args[0])
	if err != nil {
		base.SetExitStatus(base.SInvalidParameters)
		return err
	}
	data, err := describe(img, image.Pt(x, y))
	if err != nil {
		base.SetExitStatus(base.SInvalidParameters)
		return err
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// describe returns the table of image properties.
func describe(img *bitmap.Image, pt image.Point) (pterm.TableData, error) {
	if !pt.In(img.Bounds()) {
		return nil, fmt.Errorf("pixel %v is outside of the image %v", pt, img.Bounds())
	}
	p := img.PixelAt(pt.X, pt.Y)
	return pterm.TableData{
		{"Property", "Value"},
		{"Size", fmt.Sprintf("%dx%d", img.Bounds().Dx(), img.Bounds().Dy())},
		{"Document", fmt.Sprint(bitmap.IsDocument(img, 0, 0))},
		{fmt.Sprintf("Colour at %d,%d", pt.X, pt.Y), fmt.Sprintf("#%s (%d, %d, %d)", p.Hex(), p.R, p.G, p.B)},
		{"Luminance", fmt.Sprintf("%.3f", bitmap.Luminance(p))},
		{"Light", fmt.Sprint(bitmap.IsLight(p, bitmap.DefaultThreshold))},
	}, nil
}
