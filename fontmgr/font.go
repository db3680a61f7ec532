// Package fontmgr resolves the fonts used to render text labels.
package fontmgr

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rusq/fontpic"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// DefaultName is the name of the face used when none is requested.
const DefaultName = "keyrus16"

var ErrNotFound = errors.New("font not found")

var embeddedFonts = map[string]font.Face{
	"keyrus16":  fontpic.Face8x16,
	"keyrus14":  fontpic.Face8x14,
	"keyrus8":   fontpic.Face8x8,
	"4x4":       fontpic.Face4x4,
	"4x4bold":   fontpic.Face4x4Bold,
	"4x4italic": fontpic.Face4x4Italic,
	"4x5":       fontpic.Face4x5,
	"6x5":       fontpic.Face6x5,
	"6x5bold":   fontpic.Face6x5Bold,
	"6x5italic": fontpic.Face6x5Italic,
	"robotron":  fontpic.FaceRobotron,
}

// Info describes an embedded face.
type Info struct {
	Name   string
	Width  int // advance of "W"
	Height int
}

// Names returns the sorted names of embedded faces.
func Names() []string {
	names := make([]string, 0, len(embeddedFonts))
	for name, face := range embeddedFonts {
		if face != nil {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// List returns the description of each embedded face, sorted by name.
func List() []Info {
	var out []Info
	for _, name := range Names() {
		face := embeddedFonts[name]
		out = append(out, Info{
			Name:   name,
			Width:  font.MeasureString(face, "W").Ceil(),
			Height: face.Metrics().Height.Ceil(),
		})
	}
	return out
}

// ByName returns the embedded face. Empty name returns the default face.
func ByName(name string) (font.Face, error) {
	if name == "" {
		name = DefaultName
	}
	face, ok := embeddedFonts[strings.ToLower(name)]
	if !ok || face == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return face, nil
}

// LoadFile loads a TrueType or OpenType font from disk.
func LoadFile(filename string, size float64, dpi float64) (font.Face, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".ttf", ".otf":
	default:
		return nil, fmt.Errorf("unsupported font type: %q", ext)
	}
	if size <= 0 || dpi <= 0 {
		return nil, fmt.Errorf("invalid font size %v at %v dpi", size, dpi)
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", filename, err)
	}
	return opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
}
