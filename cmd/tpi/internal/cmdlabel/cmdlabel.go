// Package cmdlabel provides the subcommand that renders text into an image.
package cmdlabel

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/image/font"

	"github.com/rusq/tpimage/bitmap"
	"github.com/rusq/tpimage/cmd/tpi/internal/bootstrap"
	"github.com/rusq/tpimage/cmd/tpi/internal/cfg"
	"github.com/rusq/tpimage/cmd/tpi/internal/golang/base"
	"github.com/rusq/tpimage/fontmgr"
)

var CmdLabel = &base.Command{
	Run:        runLabel,
	UsageLine:  "tpi label [flags] <text or - for stdin> <output>",
	Short:      "renders text into an image",
	FlagMask:   cfg.OmitImageFlags,
	PrintFlags: true,
	Long: `
Renders the text, or the standard input if '-' is given, black on white and
applies the -t transform to the result. With -auto, dithering transforms are
replaced with the plain threshold, as rendered text is always a document.
`,
}

var (
	FontFile    string
	FontName    string
	ListFonts   bool
	TTFFontSize float64
	TTFDPI      float64
	width       int
	transform   string
)

func init() {
	CmdLabel.Flag.StringVar(&FontFile, "font-file", "", "TrueType or OpenType font `filename` (overrides -font)")
	CmdLabel.Flag.StringVar(&FontName, "font", fontmgr.DefaultName, "select a built-in font `name`")
	CmdLabel.Flag.BoolVar(&ListFonts, "list-fonts", false, "lists built-in fonts")
	CmdLabel.Flag.Float64Var(&TTFFontSize, "font-size", 12.0, "font size in `pt` for true-type fonts")
	CmdLabel.Flag.Float64Var(&TTFDPI, "dpi", 203, "DPI for TrueType fonts")
	CmdLabel.Flag.IntVar(&width, "w", 384, "image width in `pixels`")
	CmdLabel.Flag.StringVar(&transform, "t", bitmap.DefaultTransform, "transform `name`, one of: "+strings.Join(bitmap.AllTransforms(), ", "))
}

func runLabel(ctx context.Context, cmd *base.Command, args []string) error {
	if ListFonts {
		return listFonts(os.Stdout)
	}
	if len(args) != 2 {
		base.SetExitStatus(base.SInvalidParameters)
		return errors.New("expected text and output filename")
	}
	if width <= 0 {
		base.SetExitStatus(base.SInvalidParameters)
		return fmt.Errorf("invalid width: %d", width)
	}
	text, output := args[0], args[1]

	face, err := loadFace()
	if err != nil {
		base.SetExitStatus(base.SInvalidParameters)
		return err
	}
	if text == "-" {
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(os.Stdin); err != nil {
			base.SetExitStatus(base.SApplicationError)
			return fmt.Errorf("failed to read text from stdin: %w", err)
		}
		text = strings.TrimRight(buf.String(), "\n")
	}

	p, err := bootstrap.Params(ctx)
	if err != nil {
		base.SetExitStatus(base.SInvalidParameters)
		return err
	}
	out, name, err := label(ctx, text, face, p)
	if err != nil {
		return err
	}
	if err := bootstrap.Save(out, output); err != nil {
		base.SetExitStatus(base.SApplicationError)
		return err
	}
	slog.InfoContext(ctx, "label saved", "output", output, "transform", name, "lines", strings.Count(text, "\n")+1)
	return nil
}

// label renders the text and applies the selected transform. It returns the
// image and the name of the transform that was applied.
func label(ctx context.Context, text string, face font.Face, p bitmap.Params) (*bitmap.Image, string, error) {
	img := render(text, face, width)
	name := bootstrap.Select(ctx, transform, img)
	fn, ok := bitmap.Transform(name)
	if !ok {
		base.SetExitStatus(base.SInvalidParameters)
		return nil, name, fmt.Errorf("unknown transform: %s", name)
	}
	out, err := fn(img, p)
	if err != nil {
		base.SetExitStatus(base.SApplicationError)
		return nil, name, fmt.Errorf("%s: %w", name, err)
	}
	return out, name, nil
}

func loadFace() (font.Face, error) {
	if FontFile != "" {
		return fontmgr.LoadFile(FontFile, TTFFontSize, TTFDPI)
	}
	return fontmgr.ByName(FontName)
}

// render draws the text on a white canvas of the given width.
func render(text string, face font.Face, width int) *bitmap.Image {
	c := bitmap.NewComposer(width)
	c.AppendLabel(face, text)
	return bitmap.FromImage(c.Image())
}

func listFonts(w io.Writer) error {
	for _, fi := range fontmgr.List() {
		if _, err := fmt.Fprintf(w, "%20s (%dx%d)\n", fi.Name, fi.Width, fi.Height); err != nil {
			return err
		}
	}
	return nil
}
