// Package config holds the reader's user-facing settings and their
// YAML persistence.
package config

import "fmt"

// Settings is the full configuration tree.
type Settings struct {
	Screen ScreenSettings `yaml:"screen"`
	Font   FontSettings   `yaml:"font"`
	Layout LayoutSettings `yaml:"layout"`
}

// ScreenSettings describe the target panel.
type ScreenSettings struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	DPI    float64 `yaml:"dpi"`
}

// FontSettings name the font files of the reading face.
type FontSettings struct {
	ID         int     `yaml:"id"`
	SizePt     float64 `yaml:"size_pt"`
	Regular    string  `yaml:"regular"`
	Bold       string  `yaml:"bold"`
	Italic     string  `yaml:"italic"`
	BoldItalic string  `yaml:"bold_italic"`
}

// LayoutSettings are the knobs the layout engine and page cache
// depend on.
type LayoutSettings struct {
	LineCompression       float32 `yaml:"line_compression"`
	MarginTop             int     `yaml:"margin_top"`
	MarginRight           int     `yaml:"margin_right"`
	MarginBottom          int     `yaml:"margin_bottom"`
	MarginLeft            int     `yaml:"margin_left"`
	Hyphenation           bool    `yaml:"hyphenation"`
	ExtraParagraphSpacing bool    `yaml:"extra_paragraph_spacing"`
	Justify               bool    `yaml:"justify"`
}

// Default returns the settings for a common 6-inch panel.
func Default() Settings {
	return Settings{
		Screen: ScreenSettings{Width: 758, Height: 1024, DPI: 212},
		Font:   FontSettings{ID: 0, SizePt: 11},
		Layout: LayoutSettings{
			LineCompression: 1.2,
			MarginTop:       20,
			MarginRight:     24,
			MarginBottom:    20,
			MarginLeft:      24,
			Hyphenation:     true,
			Justify:         true,
		},
	}
}

// Validate rejects settings the layout engine cannot work with.
func (s Settings) Validate() error {
	if s.Screen.Width <= 0 || s.Screen.Height <= 0 {
		return fmt.Errorf("screen size %dx%d is not positive", s.Screen.Width, s.Screen.Height)
	}
	if s.Font.SizePt <= 0 {
		return fmt.Errorf("font size %.1fpt is not positive", s.Font.SizePt)
	}
	if 2*s.Layout.MarginLeft >= s.Screen.Width || 2*s.Layout.MarginRight >= s.Screen.Width {
		return fmt.Errorf("margins leave no usable page width")
	}
	if s.Layout.LineCompression <= 0 {
		return fmt.Errorf("line compression %.2f is not positive", s.Layout.LineCompression)
	}
	return nil
}
