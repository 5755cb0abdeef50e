package measure

import (
	"fmt"
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// DefaultDPI is the canonical typographic resolution: one point per dot.
const DefaultDPI = 72

// Face measures strings against real glyph metrics from an OpenType font.
// A mutex guards the face because x/image faces cache glyph data and are
// not safe for concurrent use on their own.
type Face struct {
	mu   sync.Mutex
	face xfont.Face
}

// NewFace parses OpenType font data and returns an oracle measuring at
// the given size in points and resolution in dots per inch.
func NewFace(data []byte, sizePt, dpi float64) (*Face, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    sizePt,
		DPI:     dpi,
		Hinting: xfont.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}

	return &Face{face: face}, nil
}

// Default returns a Go Regular face at the given point size and 72 DPI.
func Default(sizePt float64) (*Face, error) {
	return NewFace(goregular.TTF, sizePt, DefaultDPI)
}

// Width implements Oracle. The 26.6 fixed-point advance converts to
// fractional pixels.
func (f *Face) Width(s string) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return float64(xfont.MeasureString(f.face, s)) / 64
}
