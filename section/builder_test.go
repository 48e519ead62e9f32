package section

import (
	"testing"

	"github.com/osteotek/crosspoint-reader/layout"
)

func line(words ...string) *layout.TextBlock {
	b := &layout.TextBlock{}
	for _, w := range words {
		b.Words = append(b.Words, w)
		b.XPos = append(b.XPos, 0)
		b.Styles = append(b.Styles, layout.FontRegular)
	}
	return b
}

func TestBuilderPaginates(t *testing.T) {
	var pages []*Page
	pb := NewPageBuilder(BuilderOptions{
		PageHeight: 100,
		LineHeight: 30,
		MarginTop:  5,
	}, func(p *Page) { pages = append(pages, p) })

	// Three lines fit (y = 5, 35, 65); the fourth starts page two.
	for i := 0; i < 4; i++ {
		pb.AddLine(line("w"))
	}
	pb.Flush()

	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}
	if got := len(pages[0].Blocks); got != 3 {
		t.Errorf("first page has %d lines, want 3", got)
	}
	if y := pages[0].Blocks[1].Y; y != 35 {
		t.Errorf("second line at y=%d, want 35", y)
	}
	if y := pages[1].Blocks[0].Y; y != 5 {
		t.Errorf("page two starts at y=%d, want the top margin", y)
	}
	if pb.PageCount() != 2 {
		t.Errorf("PageCount() = %d, want 2", pb.PageCount())
	}
}

func TestBuilderParagraphSpacing(t *testing.T) {
	var pages []*Page
	pb := NewPageBuilder(BuilderOptions{
		PageHeight:       200,
		LineHeight:       30,
		ParagraphSpacing: 10,
	}, func(p *Page) { pages = append(pages, p) })

	pb.EndParagraph() // before any line: no effect
	pb.AddLine(line("a"))
	pb.EndParagraph()
	pb.AddLine(line("b"))
	pb.Flush()

	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}
	if y := pages[0].Blocks[0].Y; y != 0 {
		t.Errorf("first line at y=%d, want 0", y)
	}
	if y := pages[0].Blocks[1].Y; y != 40 {
		t.Errorf("line after paragraph break at y=%d, want 40", y)
	}
}

func TestBuilderFlushOnEmptyPage(t *testing.T) {
	pb := NewPageBuilder(BuilderOptions{PageHeight: 100, LineHeight: 30}, func(*Page) {
		t.Fatal("empty builder emitted a page")
	})
	pb.Flush()
	if pb.PageCount() != 0 {
		t.Errorf("PageCount() = %d, want 0", pb.PageCount())
	}
}
