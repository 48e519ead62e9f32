package layout

// FontStyle selects one face of a font family.
type FontStyle uint8

const (
	FontRegular FontStyle = iota
	FontBold
	FontItalic
	FontBoldItalic
)

func (s FontStyle) String() string {
	switch s {
	case FontRegular:
		return "regular"
	case FontBold:
		return "bold"
	case FontItalic:
		return "italic"
	case FontBoldItalic:
		return "bold-italic"
	}
	return "unknown"
}

// Renderer measures text for the layout engines. Widths are integer
// pixels at the target screen's resolution; the engines never look at
// glyphs, only at these three numbers.
type Renderer interface {
	// TextWidth reports the advance width of text drawn in the given
	// font and style.
	TextWidth(fontID int, text string, style FontStyle) int
	// SpaceWidth reports the width of a single space in the given font.
	SpaceWidth(fontID int) int
	// ScreenWidth reports the full width of the page in pixels.
	ScreenWidth() int
}
