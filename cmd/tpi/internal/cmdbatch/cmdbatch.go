// Package cmdbatch provides the subcommand that runs every transform on one
// image.
package cmdbatch

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"runtime/trace"
	"strings"
	"sync/atomic"

	"github.com/pterm/pterm"
	"golang.org/x/image/font"

	"github.com/rusq/tpimage/bitmap"
	"github.com/rusq/tpimage/cmd/tpi/internal/bootstrap"
	"github.com/rusq/tpimage/cmd/tpi/internal/cfg"
	"github.com/rusq/tpimage/cmd/tpi/internal/golang/base"
	"github.com/rusq/tpimage/fontmgr"
)

var CmdBatch = &base.Command{
	Run:        runBatch,
	UsageLine:  "tpi batch [flags] <input> <output directory>",
	Short:      "runs all transforms on an image",
	PrintFlags: true,
	Long: `
Converts the input image with every transform and writes the results to the
output directory:

  output.png                  unmodified RGB copy
  half_white_output.png       every other pixel white
  monochrome_output.png       black and white threshold
  custom_output.png           threshold with the -low and -high colours
  output_palette.png          nearest colour of the -palette
  random_dithered_output.png  noise dithering

Failure of one transform does not stop the others. Use -sheet to also write
all results, labelled, into a single image. With -auto, the random dithering
of an image that looks like a document is replaced with the threshold.
`,
}

var (
	format     string
	sheet      string
	sheetWidth int
	sheetFont  string
)

func init() {
	CmdBatch.Flag.StringVar(&format, "format", "png", "output `format`: png, jpg, gif, tif or bmp")
	CmdBatch.Flag.StringVar(&sheet, "sheet", "", "write a contact sheet with all results to `filename`")
	CmdBatch.Flag.IntVar(&sheetWidth, "sheet-width", 384, "contact sheet width in `pixels`")
	CmdBatch.Flag.StringVar(&sheetFont, "sheet-font", fontmgr.DefaultName, "contact sheet label font `name`, one of: "+strings.Join(fontmgr.Names(), ", "))
}

// step is one output of the batch.
type step struct {
	name      string // output file name without extension
	label     string
	transform string // empty for a plain copy
}

var steps = []step{
	{name: "output", label: "original"},
	{name: "half_white_output", label: "half white", transform: "checker"},
	{name: "monochrome_output", label: "monochrome", transform: "mono"},
	{name: "custom_output", label: "custom colours", transform: "two-color"},
	{name: "output_palette", label: "palette", transform: "palette"},
	{name: "random_dithered_output", label: "random dithering", transform: "random"},
}

// result is the outcome of a single step.
type result struct {
	step      step
	transform string // applied transform, differs from the step's with -auto
	filename  string
	img       *bitmap.Image
	err       error
}

func runBatch(ctx context.Context, cmd *base.Command, args []string) error {
	if len(args) != 2 {
		base.SetExitStatus(base.SInvalidParameters)
		return errors.New("expected input filename and output directory")
	}
	input, outdir := args[0], args[1]
	format = strings.TrimPrefix(strings.ToLower(format), ".")

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

	face, err := fontmgr.ByName(sheetFont)
	if err != nil {
		base.SetExitStatus(base.SInvalidParameters)
		return err
	}

	var done atomic.Int32
	unregister := cfg.RegisterSigInfoReporter(func(w io.Writer) {
		fmt.Fprintf(w, "batch %s: %d of %d steps done\n", input, done.Load(), len(steps))
	})
	defer unregister()

	results := run(ctx, img, p, outdir, func(r result) {
		done.Add(1)
		report(r)
	})

	var failed int
	for _, r := range results {
		if r.err != nil {
			failed++
		}
	}

	if sheet != "" {
		if err := bootstrap.Save(contactSheet(results, sheetWidth, face), sheet); err != nil {
			pterm.Error.Printfln("contact sheet: %s", err)
			failed++
		} else {
			pterm.Success.Printfln("contact sheet saved to %s", sheet)
		}
	}

	if failed > 0 {
		base.SetExitStatus(base.SApplicationError)
		return fmt.Errorf("%d of %d outputs failed", failed, len(results))
	}
	pterm.Info.Printfln("all images saved in %s", outdir)
	return nil
}

// run executes all steps in order, calling fn after each one. Dithering
// steps are replaced with the threshold if -auto is set and img looks like a
// document.
func run(ctx context.Context, img *bitmap.Image, p bitmap.Params, outdir string, fn func(result)) []result {
	results := make([]result, 0, len(steps))
	for _, st := range steps {
		r := result{
			step:      st,
			transform: st.transform,
			filename:  filepath.Join(outdir, st.name+"."+format),
		}
		if r.transform != "" {
			r.transform = bootstrap.Select(ctx, r.transform, img)
		}
		trace.WithRegion(ctx, st.name, func() {
			r.img, r.err = apply(img, r.transform, p)
		})
		if r.err == nil {
			r.err = bootstrap.Save(r.img, r.filename)
		}
		results = append(results, r)
		if fn != nil {
			fn(r)
		}
	}
	return results
}

func apply(img *bitmap.Image, name string, p bitmap.Params) (*bitmap.Image, error) {
	if name == "" {
		return bitmap.FromImage(img), nil
	}
	fn, ok := bitmap.Transform(name)
	if !ok {
		return nil, fmt.Errorf("unknown transform: %s", name)
	}
	return fn(img, p)
}

func report(r result) {
	if r.err != nil {
		pterm.Error.Printfln("%s: %s", r.step.label, r.err)
		cfg.Log.Error("step failed", "step", r.step.name, "error", r.err)
		return
	}
	pterm.Success.Printfln("%s saved to %s", r.step.label, r.filename)
}

// contactSheet stacks the successful results under their labels.
func contactSheet(results []result, width int, face font.Face) image.Image {
	c := bitmap.NewComposer(width, bitmap.WithComposerGap(8))
	for _, r := range results {
		if r.err != nil || r.img == nil {
			continue
		}
		c.AppendLabel(face, r.step.label)
		c.AppendImage(r.img)
	}
	return c.Image()
}
