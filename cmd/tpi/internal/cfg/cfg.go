// Package cfg contains common configuration variables.
package cfg

import (
	"flag"
	"log/slog"
	"strings"

	"github.com/rusq/osenv/v2"

	"github.com/rusq/tpimage/bitmap"
)

var (
	TraceFile   string = osenv.Value("TRACE_FILE", "")
	LogFile     string = osenv.Value("LOG_FILE", "")
	JSONHandler bool   = osenv.Value("JSON_LOG", false)
	Verbose     bool   = osenv.Value("DEBUG", false)

	// image preprocessing
	Gamma float64
	Width int

	// transform parameters
	Workers int
	Low     string
	High    string
	Palette string = osenv.Value("TPI_PALETTE", "primary8")
	Seed    uint64
	Auto    bool

	Log *slog.Logger = slog.Default()
)

type FlagMask uint16

const (
	DefaultFlags   FlagMask = 0
	OmitImageFlags FlagMask = 1 << (iota - 1)
	OmitTransformFlags

	OmitAll = OmitImageFlags | OmitTransformFlags
)

// SetBaseFlags sets base flags.
func SetBaseFlags(fs *flag.FlagSet, mask FlagMask) {
	fs.StringVar(&TraceFile, "trace", TraceFile, "trace `filename`")
	fs.StringVar(&LogFile, "log", LogFile, "log `file`, if not specified, messages are printed to STDERR")
	fs.BoolVar(&JSONHandler, "log-json", JSONHandler, "log in JSON format")
	fs.BoolVar(&Verbose, "v", Verbose, "verbose messages")

	if mask&OmitImageFlags == 0 {
		fs.Float64Var(&Gamma, "gamma", bitmap.DefaultGamma, "gamma correction applied before the transform, 0 disables")
		fs.IntVar(&Width, "width", 0, "scale images wider than `pixels` down to this width, 0 keeps the size")
	}

	if mask&OmitTransformFlags == 0 {
		fs.IntVar(&Workers, "workers", 0, "number of parallel `workers`, 0 uses all CPUs")
		fs.StringVar(&Low, "low", "0080ff", "`colour` for dark pixels of the two-color transform")
		fs.StringVar(&High, "high", "ffff00", "`colour` for light pixels of the two-color transform")
		fs.StringVar(&Palette, "palette", Palette, "palette `name` or comma separated hex colours, built-in: "+strings.Join(bitmap.AllPalettes(), ", "))
		fs.Uint64Var(&Seed, "seed", 0, "random dithering `seed`, 0 picks a random one")
		fs.BoolVar(&Auto, "auto", false, "use the plain threshold instead of dithering if the image looks like a document")
	}
}

// SetDebugLevel switches the default logger to the debug level.
func SetDebugLevel() {
	slog.SetLogLoggerLevel(slog.LevelDebug)
}
