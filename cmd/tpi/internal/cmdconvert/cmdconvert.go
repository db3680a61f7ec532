// Package cmdconvert provides the single transform subcommand.
package cmdconvert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/trace"
	"strings"

	"github.com/rusq/tpimage/bitmap"
	"github.com/rusq/tpimage/cmd/tpi/internal/bootstrap"
	"github.com/rusq/tpimage/cmd/tpi/internal/golang/base"
)

var CmdConvert = &base.Command{
	Run:        runConvert,
	UsageLine:  "tpi convert [flags] <input> <output>",
	Short:      "applies a transform to an image file",
	PrintFlags: true,
	Long: `
Applies one transform to the input image and saves the result. The output
format is chosen by the file extension: png, jpg, gif, tif or bmp.

Transforms:

  mono       black and white threshold at luminance 128
  two-color  threshold with the -low and -high colours
  palette    nearest colour of the -palette
  random     noise dithering, reproducible with -seed
  checker    every other pixel white
  bayer      8x8 ordered dithering
`,
}

var transform string

func init() {
	CmdConvert.Flag.StringVar(&transform, "t", bitmap.DefaultTransform, "transform `name`, one of: "+strings.Join(bitmap.AllTransforms(), ", "))
}

func runConvert(ctx context.Context, cmd *base.Command, args []string) error {
	if len(args) != 2 {
		base.SetExitStatus(base.SInvalidParameters)
		return errors.New("expected input and output filenames")
	}
	input, output := args[0], args[1]

	img, err := bootstrap.Load(ctx, input)
	if err != nil {
		base.SetExitStatus(base.SInvalidParameters)
		return err
	}
	p, err := bootstrap.Params(ctx)
	if err != nil {
		base.SetExitStatus(base.SInvalidParameters)
		return err
	}

	name := bootstrap.Select(ctx, transform, img)
	fn, ok := bitmap.Transform(name)
	if !ok {
		base.SetExitStatus(base.SInvalidParameters)
		return fmt.Errorf("unknown transform: %s", name)
	}

	var out *bitmap.Image
	trace.WithRegion(ctx, name, func() {
		out, err = fn(img, p)
	})
	if err != nil {
		base.SetExitStatus(base.SApplicationError)
		return fmt.Errorf("%s: %w", name, err)
	}

	if err := bootstrap.Save(out, output); err != nil {
		base.SetExitStatus(base.SApplicationError)
		return err
	}
	slog.InfoContext(ctx, "image saved", "transform", name, "output", output)
	return nil
}
