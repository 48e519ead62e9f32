package layout

import (
	"fmt"
	"io"

	"github.com/osteotek/crosspoint-reader/serialization"
)

// Alignment positions a line's words inside the page width.
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
	AlignJustified
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	case AlignJustified:
		return "justified"
	}
	return "unknown"
}

// TextBlock is one laid-out line: the words on it, the x position each
// word starts at, and the style each word draws in. The three slices
// are always the same length.
type TextBlock struct {
	Words     []string
	XPos      []uint16
	Styles    []FontStyle
	Alignment Alignment
}

// Serialize writes the block in the cache file format: each slice as a
// uint32 element count followed by its elements, then the alignment.
func (b *TextBlock) Serialize(w io.Writer) error {
	if err := serialization.WritePod(w, uint32(len(b.Words))); err != nil {
		return fmt.Errorf("write word count: %w", err)
	}
	for _, word := range b.Words {
		if err := serialization.WriteString(w, word); err != nil {
			return fmt.Errorf("write word: %w", err)
		}
	}
	if err := serialization.WritePod(w, uint32(len(b.XPos))); err != nil {
		return fmt.Errorf("write xpos count: %w", err)
	}
	for _, x := range b.XPos {
		if err := serialization.WritePod(w, x); err != nil {
			return fmt.Errorf("write xpos: %w", err)
		}
	}
	if err := serialization.WritePod(w, uint32(len(b.Styles))); err != nil {
		return fmt.Errorf("write style count: %w", err)
	}
	for _, style := range b.Styles {
		if err := serialization.WritePod(w, uint8(style)); err != nil {
			return fmt.Errorf("write style: %w", err)
		}
	}
	if err := serialization.WritePod(w, uint8(b.Alignment)); err != nil {
		return fmt.Errorf("write alignment: %w", err)
	}
	return nil
}

// DeserializeTextBlock reads a block written by Serialize.
func DeserializeTextBlock(r io.Reader) (*TextBlock, error) {
	b := &TextBlock{}
	wordCount, err := serialization.ReadPod[uint32](r)
	if err != nil {
		return nil, fmt.Errorf("read word count: %w", err)
	}
	b.Words = make([]string, 0, wordCount)
	for i := uint32(0); i < wordCount; i++ {
		word, err := serialization.ReadString(r)
		if err != nil {
			return nil, fmt.Errorf("read word %d: %w", i, err)
		}
		b.Words = append(b.Words, word)
	}
	xposCount, err := serialization.ReadPod[uint32](r)
	if err != nil {
		return nil, fmt.Errorf("read xpos count: %w", err)
	}
	b.XPos = make([]uint16, 0, xposCount)
	for i := uint32(0); i < xposCount; i++ {
		x, err := serialization.ReadPod[uint16](r)
		if err != nil {
			return nil, fmt.Errorf("read xpos %d: %w", i, err)
		}
		b.XPos = append(b.XPos, x)
	}
	styleCount, err := serialization.ReadPod[uint32](r)
	if err != nil {
		return nil, fmt.Errorf("read style count: %w", err)
	}
	b.Styles = make([]FontStyle, 0, styleCount)
	for i := uint32(0); i < styleCount; i++ {
		s, err := serialization.ReadPod[uint8](r)
		if err != nil {
			return nil, fmt.Errorf("read style %d: %w", i, err)
		}
		b.Styles = append(b.Styles, FontStyle(s))
	}
	alignment, err := serialization.ReadPod[uint8](r)
	if err != nil {
		return nil, fmt.Errorf("read alignment: %w", err)
	}
	b.Alignment = Alignment(alignment)
	if len(b.Words) != len(b.XPos) || len(b.Words) != len(b.Styles) {
		return nil, fmt.Errorf("inconsistent block: %d words, %d positions, %d styles",
			len(b.Words), len(b.XPos), len(b.Styles))
	}
	return b, nil
}
