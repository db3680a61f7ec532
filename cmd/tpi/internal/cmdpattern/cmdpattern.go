// Package cmdpattern provides test pattern subcommand.
package cmdpattern

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rusq/tpimage/bitmap"
	"github.com/rusq/tpimage/cmd/tpi/internal/bootstrap"
	"github.com/rusq/tpimage/cmd/tpi/internal/cfg"
	"github.com/rusq/tpimage/cmd/tpi/internal/golang/base"
)

var CmdPattern = &base.Command{
	Run:        runPattern,
	UsageLine:  "tpi pattern [flags] <pattern name> <output>",
	Short:      "writes a test pattern image",
	FlagMask:   cfg.OmitAll,
	PrintFlags: true,
	Long: `
Writes a synthetic test image, useful as an input for the other commands.
`,
}

var (
	ListPatterns bool
	width        int
	height       int
)

func init() {
	CmdPattern.Flag.BoolVar(&ListPatterns, "list", false, "list patterns")
	CmdPattern.Flag.IntVar(&width, "w", 384, "image width in `pixels`")
	CmdPattern.Flag.IntVar(&height, "h", 192, "image height in `pixels`")
}

func runPattern(ctx context.Context, cmd *base.Command, args []string) error {
	if ListPatterns {
		return listPatterns(os.Stdout)
	}
	if len(args) != 2 {
		base.SetExitStatus(base.SInvalidParameters)
		listPatterns(os.Stderr)
		return errors.New("expected pattern name and output filename")
	}
	if width <= 0 || height <= 0 {
		base.SetExitStatus(base.SInvalidParameters)
		return fmt.Errorf("invalid size %dx%d", width, height)
	}
	fn, ok := bitmap.Patterns[args[0]]
	if !ok {
		base.SetExitStatus(base.SInvalidParameters)
		listPatterns(os.Stderr)
		return fmt.Errorf("unknown pattern: %s", args[0])
	}
	if err := bootstrap.Save(fn(width, height), args[1]); err != nil {
		base.SetExitStatus(base.SApplicationError)
		return err
	}
	slog.InfoContext(ctx, "pattern saved", "pattern", args[0], "output", args[1])
	return nil
}

func listPatterns(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Available test patterns: %v\n", bitmap.AllPatterns())
	return err
}
