package bitmap

import (
	"sort"
)

// TransformFunc produces a new image from src using the relevant fields of p.
type TransformFunc func(src *Image, p Params) (*Image, error)

// Params carries the arguments for the registered transforms. Each
// transform reads only the fields it needs.
type Params struct {
	Low, High Pixel   // two-color
	Palette   Palette // palette
	Noise     Noise   // random
	Checker   Pixel   // checker
	OrderSize int     // bayer
	Strength  float32 // bayer, 0 means 1.0
	Workers   int
}

// DefaultParams returns the parameters used by the driver when nothing is
// specified on the command line.
func DefaultParams() Params {
	pal, _ := NamedPalette("primary8")
	return Params{
		Low:       Pixel{0, 128, 255},
		High:      Pixel{255, 255, 0},
		Palette:   pal,
		Noise:     NewNoise(0),
		Checker:   White,
		OrderSize: DefaultOrderSize,
		Strength:  1.0,
	}
}

func (p Params) options() []Option {
	return []Option{WithWorkers(p.Workers)}
}

const DefaultTransform = "mono"

var transforms = map[string]TransformFunc{
	"mono": func(src *Image, p Params) (*Image, error) {
		return Threshold(src, p.options()...), nil
	},
	"two-color": func(src *Image, p Params) (*Image, error) {
		return ThresholdColors(src, p.Low, p.High, p.options()...), nil
	},
	"palette": func(src *Image, p Params) (*Image, error) {
		return ApplyPalette(src, p.Palette, p.options()...)
	},
	"random": func(src *Image, p Params) (*Image, error) {
		return RandomDither(src, p.Noise, p.options()...), nil
	},
	"checker": func(src *Image, p Params) (*Image, error) {
		return Checkerboard(src, p.Checker, p.options()...), nil
	},
	"bayer": func(src *Image, p Params) (*Image, error) {
		return Ordered(src, p.OrderSize, p.Strength, p.options()...), nil
	},
}

// Transform returns a registered transform by name. Empty name returns the
// default transform.
func Transform(name string) (TransformFunc, bool) {
	if name == "" {
		name = DefaultTransform
	}
	fn, ok := transforms[name]
	if !ok {
		return nil, false // function not found
	}
	return fn, true
}

// RegisterTransform allows to register a new transform by name.
func RegisterTransform(name string, fn TransformFunc) {
	if name == "" {
		panic("transform name cannot be empty")
	}
	if fn == nil {
		panic("transform function cannot be nil")
	}
	if _, exists := transforms[name]; exists {
		panic("transform already registered: " + name)
	}
	transforms[name] = fn
}

// AllTransforms returns a sorted list of all available transform names.
func AllTransforms() []string {
	keys := make([]string, 0, len(transforms))
	for k := range transforms {
		keys = append(keys, k)
	}
	sort.Strings(keys) // sort for consistent order
	return keys
}

// IsDither reports whether the named transform dithers, i.e. approximates
// intermediate tones with patterns.
func IsDither(name string) bool {
	return name == "random" || name == "bayer"
}
