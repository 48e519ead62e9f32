/*
Package fontmetrics measures text with real font metrics.

It implements layout.Renderer on top of github.com/tdewolff/canvas:
font files are loaded into canvas font families once, and every width
query shapes the text with the selected face and converts the advance
from millimetres to device pixels at the configured DPI. Width lookups
are memoized, since layout asks for the same words over and over.
*/
package fontmetrics

import (
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/npillmayer/schuko/tracing"
	cache "github.com/patrickmn/go-cache"
	"github.com/tdewolff/canvas"

	"github.com/osteotek/crosspoint-reader/layout"
)

// tracer writes to trace with key 'crosspoint.fontmetrics'
func tracer() tracing.Trace {
	return tracing.Select("crosspoint.fontmetrics")
}

// Options configures a Measurer.
type Options struct {
	ScreenWidth int
	// DPI of the target screen; 96 when zero.
	DPI float64
}

// FaceSpec names the font files of one family. Missing faces are
// synthesized by the canvas library from the faces that are present.
type FaceSpec struct {
	Regular    string
	Bold       string
	Italic     string
	BoldItalic string
	SizePt     float64
}

type fontEntry struct {
	family *canvas.FontFamily
	sizePt float64
}

// Measurer implements layout.Renderer. Register fonts up front, then
// share the measurer across paragraphs; it is not safe for concurrent
// use.
type Measurer struct {
	opts   Options
	fonts  map[int]*fontEntry
	widths *cache.Cache
}

// New creates an empty Measurer.
func New(opts Options) *Measurer {
	if opts.DPI <= 0 {
		opts.DPI = 96
	}
	return &Measurer{
		opts:   opts,
		fonts:  make(map[int]*fontEntry),
		widths: cache.New(cache.NoExpiration, 0),
	}
}

// RegisterFont loads the face files of one font under the given id.
// At least one face file must be present.
func (m *Measurer) RegisterFont(fontID int, spec FaceSpec) error {
	family := canvas.NewFontFamily(fmt.Sprintf("font-%d", fontID))
	faces := []struct {
		path  string
		style canvas.FontStyle
	}{
		{spec.Regular, canvas.FontRegular},
		{spec.Bold, canvas.FontBold},
		{spec.Italic, canvas.FontItalic},
		{spec.BoldItalic, canvas.FontBold | canvas.FontItalic},
	}
	loaded := false
	for _, f := range faces {
		if f.path == "" {
			continue
		}
		data, err := os.ReadFile(f.path)
		if err != nil {
			return fmt.Errorf("read font %s: %w", f.path, err)
		}
		if err := family.LoadFont(data, 0, f.style); err != nil {
			return fmt.Errorf("load font %s: %w", f.path, err)
		}
		loaded = true
	}
	if !loaded {
		return fmt.Errorf("font %d: no face files given", fontID)
	}
	m.fonts[fontID] = &fontEntry{family: family, sizePt: spec.SizePt}
	tracer().Infof("font %d registered at %.1fpt", fontID, spec.SizePt)
	return nil
}

func canvasStyle(style layout.FontStyle) canvas.FontStyle {
	switch style {
	case layout.FontBold:
		return canvas.FontBold
	case layout.FontItalic:
		return canvas.FontItalic
	case layout.FontBoldItalic:
		return canvas.FontBold | canvas.FontItalic
	}
	return canvas.FontRegular
}

// mmToPx converts canvas millimetres to whole device pixels.
func mmToPx(mm, dpi float64) int {
	return int(math.Round(mm / 25.4 * dpi))
}

// TextWidth reports the advance width of text in pixels. Unknown font
// ids measure as zero width.
func (m *Measurer) TextWidth(fontID int, text string, style layout.FontStyle) int {
	key := fmt.Sprintf("%d\x00%d\x00%s", fontID, style, text)
	if v, ok := m.widths.Get(key); ok {
		return v.(int)
	}
	entry, ok := m.fonts[fontID]
	if !ok {
		tracer().Errorf("width query for unregistered font %d", fontID)
		return 0
	}
	face := entry.family.Face(entry.sizePt, color.Black, canvasStyle(style), canvas.FontNormal)
	w := mmToPx(face.TextWidth(text), m.opts.DPI)
	m.widths.Set(key, w, cache.NoExpiration)
	return w
}

// SpaceWidth reports the width of a single space.
func (m *Measurer) SpaceWidth(fontID int) int {
	return m.TextWidth(fontID, " ", layout.FontRegular)
}

// ScreenWidth reports the configured screen width.
func (m *Measurer) ScreenWidth() int { return m.opts.ScreenWidth }
