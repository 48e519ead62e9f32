package section

import (
	"github.com/osteotek/crosspoint-reader/layout"
)

// PageSink receives finished pages in reading order.
type PageSink func(*Page)

// BuilderOptions fixes the vertical geometry of every page.
type BuilderOptions struct {
	PageHeight       int
	LineHeight       int
	ParagraphSpacing int
	MarginTop        int
	MarginBottom     int
}

// PageBuilder stacks lines onto pages. Feed it lines with AddLine,
// mark paragraph ends with EndParagraph, and call Flush once at the
// end to emit the final partial page.
type PageBuilder struct {
	opts BuilderOptions
	sink PageSink

	page  *Page
	y     int
	count int
}

// NewPageBuilder creates a builder that hands every full page to sink.
func NewPageBuilder(opts BuilderOptions, sink PageSink) *PageBuilder {
	pb := &PageBuilder{opts: opts, sink: sink}
	pb.reset()
	return pb
}

func (pb *PageBuilder) reset() {
	pb.page = &Page{}
	pb.y = pb.opts.MarginTop
}

func (pb *PageBuilder) emit() {
	tracer().Debugf("page %d finished with %d lines", pb.count, len(pb.page.Blocks))
	pb.count++
	if pb.sink != nil {
		pb.sink(pb.page)
	}
	pb.reset()
}

// AddLine places one line on the current page, starting a new page
// when the line would cross the bottom margin.
func (pb *PageBuilder) AddLine(block *layout.TextBlock) {
	if pb.y+pb.opts.LineHeight > pb.opts.PageHeight-pb.opts.MarginBottom &&
		len(pb.page.Blocks) > 0 {
		pb.emit()
	}
	pb.page.Blocks = append(pb.page.Blocks, PlacedBlock{Y: uint16(pb.y), Block: block})
	pb.y += pb.opts.LineHeight
}

// EndParagraph inserts the configured spacing before the next
// paragraph. Spacing never carries over to the top of a fresh page.
func (pb *PageBuilder) EndParagraph() {
	if len(pb.page.Blocks) == 0 {
		return
	}
	pb.y += pb.opts.ParagraphSpacing
}

// Flush emits the final partial page, if any.
func (pb *PageBuilder) Flush() {
	if len(pb.page.Blocks) > 0 {
		pb.emit()
	}
}

// PageCount reports the number of pages emitted so far.
func (pb *PageBuilder) PageCount() int { return pb.count }
