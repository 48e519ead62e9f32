package section

import (
	"fmt"
	"io"

	"github.com/osteotek/crosspoint-reader/layout"
	"github.com/osteotek/crosspoint-reader/serialization"
)

// PlacedBlock is one line fixed at a vertical position on a page.
type PlacedBlock struct {
	Y     uint16
	Block *layout.TextBlock
}

// Page holds the lines of one screenful in reading order.
type Page struct {
	Blocks []PlacedBlock
}

// Serialize writes the page as a uint32 line count followed by each
// line's y position and block record.
func (p *Page) Serialize(w io.Writer) error {
	if err := serialization.WritePod(w, uint32(len(p.Blocks))); err != nil {
		return fmt.Errorf("write line count: %w", err)
	}
	for i, placed := range p.Blocks {
		if err := serialization.WritePod(w, placed.Y); err != nil {
			return fmt.Errorf("write line %d position: %w", i, err)
		}
		if err := placed.Block.Serialize(w); err != nil {
			return fmt.Errorf("write line %d: %w", i, err)
		}
	}
	return nil
}

// DeserializePage reads a page written by Serialize.
func DeserializePage(r io.Reader) (*Page, error) {
	count, err := serialization.ReadPod[uint32](r)
	if err != nil {
		return nil, fmt.Errorf("read line count: %w", err)
	}
	p := &Page{Blocks: make([]PlacedBlock, 0, count)}
	for i := uint32(0); i < count; i++ {
		y, err := serialization.ReadPod[uint16](r)
		if err != nil {
			return nil, fmt.Errorf("read line %d position: %w", i, err)
		}
		block, err := layout.DeserializeTextBlock(r)
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", i, err)
		}
		p.Blocks = append(p.Blocks, PlacedBlock{Y: y, Block: block})
	}
	return p, nil
}
