package bitmap

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

var (
	// ErrEmptyPalette is returned by ApplyPalette when the palette has no
	// colours.
	ErrEmptyPalette = errors.New("palette is empty")
	// ErrInvalidColor is returned when a colour string can't be parsed.
	ErrInvalidColor = errors.New("invalid colour")
	// ErrUnknownPalette is returned by NamedPalette.
	ErrUnknownPalette = errors.New("unknown palette")
)

// Palette is an ordered list of colours. The order only matters when two
// entries are equally close to a pixel: the earlier one wins.
type Palette []Pixel

var namedPalettes = map[string]Palette{
	"mono": {Black, White},
	"primary8": {
		Black,
		White,
		{255, 0, 0},   // red
		{0, 255, 0},   // green
		{0, 0, 255},   // blue
		{255, 255, 0}, // yellow
		{255, 0, 255}, // magenta
		{0, 255, 255}, // cyan
	},
	"gray4": {
		Black,
		{85, 85, 85},
		{170, 170, 170},
		White,
	},
	"cga": {
		Black,
		{85, 255, 255},
		{255, 85, 255},
		White,
	},
}

// NamedPalette returns a copy of a built-in palette.
func NamedPalette(name string) (Palette, error) {
	pal, ok := namedPalettes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPalette, name)
	}
	return append(Palette(nil), pal...), nil
}

// AllPalettes returns sorted names of the built-in palettes.
func AllPalettes() []string {
	names := make([]string, 0, len(namedPalettes))
	for k := range namedPalettes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// ParsePixel parses a hex colour in "rrggbb" or "rgb" form, with an optional
// leading "#".
func ParsePixel(s string) (Pixel, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	case 6:
	default:
		return Pixel{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Pixel{}, fmt.Errorf("%w: %q: %w", ErrInvalidColor, s, err)
	}
	return Pixel{uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

// ParsePalette parses either a built-in palette name or a comma separated
// list of hex colours.
func ParsePalette(s string) (Palette, error) {
	if pal, err := NamedPalette(s); err == nil {
		return pal, nil
	}
	var pal Palette
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		p, err := ParsePixel(part)
		if err != nil {
			return nil, err
		}
		pal = append(pal, p)
	}
	if len(pal) == 0 {
		return nil, ErrEmptyPalette
	}
	return pal, nil
}

// Hex returns p as "rrggbb".
func (p Pixel) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", p.R, p.G, p.B)
}

func (pal Palette) String() string {
	s := make([]string, len(pal))
	for i, p := range pal {
		s[i] = p.Hex()
	}
	return strings.Join(s, ",")
}

// Distance returns the Euclidean distance between a and b in RGB space.
func Distance(a, b Pixel) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// Nearest returns the palette colour closest to p and its index. On a tie
// the entry that comes first wins. It returns -1 for an empty palette.
func (pal Palette) Nearest(p Pixel) (Pixel, int) {
	if len(pal) == 0 {
		return Pixel{}, -1
	}
	best, minDist := 0, math.MaxFloat64
	for i, c := range pal {
		if d := Distance(p, c); d < minDist {
			best, minDist = i, d
		}
	}
	return pal[best], best
}

// ApplyPalette replaces every pixel of src with the nearest palette colour.
// It returns ErrEmptyPalette if pal is empty.
func ApplyPalette(src *Image, pal Palette, opts ...Option) (*Image, error) {
	if len(pal) == 0 {
		return nil, ErrEmptyPalette
	}
	return mapPixels(src, func(_, _ int, p Pixel) Pixel {
		c, _ := pal.Nearest(p)
		return c
	}, opts...), nil
}
