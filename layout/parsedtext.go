package layout

import (
	"slices"
	"strings"

	"github.com/osteotek/crosspoint-reader/hyphenation"
)

// Engine selects the line-breaking strategy.
type Engine uint8

const (
	// EngineOptimal minimizes the summed squared leftover width over the
	// whole paragraph. The last line contributes no cost.
	EngineOptimal Engine = iota
	// EngineGreedy fills each line as far as it goes before breaking.
	EngineGreedy
)

// Paragraphs longer than this are truncated with a trace message.
const maxLayoutLines = 1000

// First-line indent used when paragraphs are not separated by extra
// vertical space.
const paragraphIndent = " " // em space

// LineSink receives finished lines in reading order.
type LineSink func(*TextBlock)

type styledWord struct {
	text  string
	style FontStyle
}

// ParsedText accumulates one paragraph and lays it out into lines.
// Layout drains the paragraph: words move into the emitted blocks and
// the ParsedText is spent afterwards, except for a held-back last line
// when includeLastLine is false.
type ParsedText struct {
	words                 []styledWord
	alignment             Alignment
	engine                Engine
	hyphenation           bool
	extraParagraphSpacing bool
	indented              bool
	drained               bool
}

// NewParsedText creates an empty paragraph. When extraParagraphSpacing
// is false the first line is indented by an em space instead.
func NewParsedText(alignment Alignment, extraParagraphSpacing, hyphenationEnabled bool) *ParsedText {
	return &ParsedText{
		alignment:             alignment,
		hyphenation:           hyphenationEnabled,
		extraParagraphSpacing: extraParagraphSpacing,
	}
}

// SetEngine switches the line-breaking strategy. The default is
// EngineOptimal.
func (pt *ParsedText) SetEngine(e Engine) { pt.engine = e }

// AddWord appends one word to the paragraph. Empty words and words
// added after the paragraph has been drained are dropped.
func (pt *ParsedText) AddWord(text string, style FontStyle) {
	if text == "" {
		return
	}
	if pt.drained {
		tracer().Infof("word %q added to a drained paragraph, dropping", text)
		return
	}
	pt.words = append(pt.words, styledWord{text: text, style: style})
}

// Len reports the number of words not yet laid out.
func (pt *ParsedText) Len() int { return len(pt.words) }

// IsEmpty reports whether the paragraph holds no words.
func (pt *ParsedText) IsEmpty() bool { return len(pt.words) == 0 }

// Layout breaks the paragraph into lines of the width left between the
// two margins and hands each line to sink. Emitted x positions are
// relative to the text origin; the drawing side adds the left margin.
// When includeLastLine is false the final line is held back, words
// intact, so a continuation of the paragraph can be appended and laid
// out later.
func (pt *ParsedText) Layout(r Renderer, fontID, leftMargin, rightMargin int, sink LineSink, includeLastLine bool) {
	if len(pt.words) == 0 {
		return
	}
	pageWidth := r.ScreenWidth() - leftMargin - rightMargin
	if pageWidth <= 0 {
		tracer().Errorf("margins %d+%d leave no usable page width, dropping %d words",
			leftMargin, rightMargin, len(pt.words))
		pt.words = nil
		pt.drained = true
		return
	}
	spaceWidth := r.SpaceWidth(fontID)
	widths := pt.measureWords(r, fontID, pageWidth)

	var breaks []int
	switch pt.engine {
	case EngineGreedy:
		breaks, widths = pt.greedyBreaks(r, fontID, widths, spaceWidth, pageWidth)
	default:
		breaks, widths = pt.optimalBreaks(r, fontID, widths, spaceWidth, pageWidth)
	}
	tracer().Debugf("paragraph of %d words laid out into %d lines", len(pt.words), len(breaks))
	pt.emitLines(breaks, widths, spaceWidth, pageWidth, sink, includeLastLine)
}

// measureWords indents the first line if needed, measures every word,
// and force-splits words wider than the whole page so that each entry
// can be placed on some line.
func (pt *ParsedText) measureWords(r Renderer, fontID, pageWidth int) []int {
	if !pt.extraParagraphSpacing && !pt.indented {
		pt.words[0].text = paragraphIndent + pt.words[0].text
		pt.indented = true
	}
	widths := make([]int, 0, len(pt.words))
	for i := 0; i < len(pt.words); i++ {
		style := pt.words[i].style
		w := r.TextWidth(fontID, pt.words[i].text, style)
		if w > pageWidth {
			if head, tail, headWidth, ok := pt.chooseSplit(r, fontID, pt.words[i].text, style, pageWidth, true); ok {
				pt.words[i].text = head
				pt.words = slices.Insert(pt.words, i+1, styledWord{text: tail, style: style})
				widths = append(widths, headWidth)
				continue
			}
			tracer().Infof("word %q wider than the page and unsplittable", pt.words[i].text)
		}
		widths = append(widths, w)
	}
	return widths
}

// chooseSplit picks the widest head of word (hyphen included) that
// still fits in availableWidth. With force set the hyphenation fallback
// window is used, so any sufficiently long word splits somewhere.
func (pt *ParsedText) chooseSplit(r Renderer, fontID int, text string, style FontStyle, availableWidth int, force bool) (head, tail string, headWidth int, ok bool) {
	if !force && !pt.hyphenation {
		return "", "", 0, false
	}
	for _, off := range hyphenation.BreakOffsets(text, force) {
		candidate := text[:off]
		if !strings.HasSuffix(candidate, "-") && !strings.HasSuffix(candidate, "‐") {
			candidate += "-"
		}
		w := r.TextWidth(fontID, candidate, style)
		if w > availableWidth {
			continue
		}
		head, tail, headWidth, ok = candidate, text[off:], w, true
	}
	return head, tail, headWidth, ok
}

// runDP computes optimal line breaks over widths. Lines never extend
// past an index in forced (a word ending in a hyphen must end its
// line). It returns the index of the last word of each line and the
// total cost.
func runDP(widths []int, spaceWidth, pageWidth int, forced map[int]bool) ([]int, int64) {
	n := len(widths)
	dp := make([]int64, n+1)
	ans := make([]int, n)
	for i := n - 1; i >= 0; i-- {
		ans[i] = i
		first := true
		currlen := -spaceWidth
		for j := i; j < n; j++ {
			currlen += widths[j] + spaceWidth
			if currlen > pageWidth {
				if j == i {
					// A word wider than the page gets its own line.
					over := int64(currlen - pageWidth)
					dp[i] = over*over + dp[i+1]
				}
				break
			}
			leftover := int64(pageWidth - currlen)
			lineCost := leftover * leftover
			if j == n-1 {
				lineCost = 0
			}
			if total := lineCost + dp[j+1]; first || total < dp[i] {
				dp[i] = total
				ans[i] = j
				first = false
			}
			if forced[j] {
				break
			}
		}
	}
	breaks := make([]int, 0, 8)
	for i := 0; i < n; i = ans[i] + 1 {
		breaks = append(breaks, ans[i])
	}
	return breaks, dp[0]
}

// optimalBreaks runs the optimal engine, then repeatedly tries to
// hyphenate the first word after some line into that line's leftover
// space. A split is kept only if it lowers the total cost; candidates
// that do not are discarded and the scan moves on to later lines.
// Refinement ends when a full pass applies nothing.
func (pt *ParsedText) optimalBreaks(r Renderer, fontID int, widths []int, spaceWidth, pageWidth int) ([]int, []int) {
	forced := make(map[int]bool)
	breaks, cost := runDP(widths, spaceWidth, pageWidth, forced)
	if !pt.hyphenation {
		return breaks, widths
	}
	for {
		applied := false
		lineStart := 0
		for li := 0; li < len(breaks)-1; li++ {
			end := breaks[li]
			lineWidth := lineWidthOf(widths[lineStart:end+1], spaceWidth)
			lineStart = end + 1
			avail := pageWidth - lineWidth - spaceWidth
			if avail <= 0 {
				continue
			}
			next := pt.words[end+1]
			head, tail, headWidth, ok := pt.chooseSplit(r, fontID, next.text, next.style, avail, false)
			if !ok {
				continue
			}
			candWords := slices.Clone(pt.words)
			candWords[end+1].text = head
			candWords = slices.Insert(candWords, end+2, styledWord{text: tail, style: next.style})
			candWidths := slices.Clone(widths)
			candWidths[end+1] = headWidth
			candWidths = slices.Insert(candWidths, end+2, r.TextWidth(fontID, tail, next.style))
			candForced := shiftForced(forced, end+1)
			candForced[end+1] = true
			candBreaks, candCost := runDP(candWidths, spaceWidth, pageWidth, candForced)
			if candCost >= cost {
				continue
			}
			pt.words, widths, forced = candWords, candWidths, candForced
			breaks, cost = candBreaks, candCost
			applied = true
			break
		}
		if !applied {
			return breaks, widths
		}
	}
}

// greedyBreaks fills lines left to right. When a word does not fit it
// is hyphenated into the remaining space if possible, otherwise it
// starts the next line.
func (pt *ParsedText) greedyBreaks(r Renderer, fontID int, widths []int, spaceWidth, pageWidth int) ([]int, []int) {
	var breaks []int
	lineStart := 0
	lineWidth := 0
	for i := 0; i < len(pt.words); i++ {
		if i == lineStart {
			lineWidth = widths[i]
			continue
		}
		if lineWidth+spaceWidth+widths[i] <= pageWidth {
			lineWidth += spaceWidth + widths[i]
			continue
		}
		avail := pageWidth - lineWidth - spaceWidth
		style := pt.words[i].style
		if head, tail, headWidth, ok := pt.chooseSplit(r, fontID, pt.words[i].text, style, avail, false); ok {
			pt.words[i].text = head
			pt.words = slices.Insert(pt.words, i+1, styledWord{text: tail, style: style})
			widths[i] = headWidth
			widths = slices.Insert(widths, i+1, r.TextWidth(fontID, tail, style))
			breaks = append(breaks, i)
			lineStart = i + 1
			continue
		}
		breaks = append(breaks, i-1)
		lineStart = i
		lineWidth = widths[i]
	}
	if len(pt.words) > 0 {
		breaks = append(breaks, len(pt.words)-1)
	}
	return breaks, widths
}

// emitLines converts break indexes into TextBlocks and drains the
// consumed words.
func (pt *ParsedText) emitLines(breaks, widths []int, spaceWidth, pageWidth int, sink LineSink, includeLastLine bool) {
	consumed := 0
	for li, end := range breaks {
		last := li == len(breaks)-1
		if last && !includeLastLine {
			break
		}
		if li >= maxLayoutLines {
			tracer().Errorf("paragraph exceeds %d lines, dropping %d words",
				maxLayoutLines, len(pt.words)-consumed)
			consumed = len(pt.words)
			break
		}
		block := pt.extractLine(pt.words[consumed:end+1], widths[consumed:end+1],
			spaceWidth, pageWidth, last)
		if sink != nil {
			sink(block)
		}
		consumed = end + 1
	}
	pt.words = pt.words[consumed:]
	if len(pt.words) == 0 {
		pt.words = nil
		pt.drained = true
	}
}

// extractLine computes x positions for one line, relative to the text
// origin. Justified lines stretch the inter-word gaps evenly, handing
// the division remainder to the leading gaps one pixel each; the last
// line of a justified paragraph keeps natural spacing.
func (pt *ParsedText) extractLine(words []styledWord, widths []int, spaceWidth, pageWidth int, lastLine bool) *TextBlock {
	count := len(words)
	block := &TextBlock{
		Words:     make([]string, count),
		XPos:      make([]uint16, count),
		Styles:    make([]FontStyle, count),
		Alignment: pt.alignment,
	}
	spare := pageWidth
	for _, w := range widths {
		spare -= w
	}

	spacing := spaceWidth
	remainder := 0
	x := 0
	switch pt.alignment {
	case AlignRight:
		x = spare - (count-1)*spaceWidth
	case AlignCenter:
		x = (spare - (count-1)*spaceWidth) / 2
	case AlignJustified:
		if !lastLine && count > 1 {
			spacing = spare / (count - 1)
			remainder = spare % (count - 1)
		}
	}
	if x < 0 {
		x = 0
	}
	for i := range words {
		block.Words[i] = words[i].text
		block.Styles[i] = words[i].style
		pos := x
		if pos < 0 {
			pos = 0
		}
		block.XPos[i] = uint16(pos)
		x += widths[i] + spacing
		if remainder > 0 {
			x++
			remainder--
		}
	}
	return block
}

func lineWidthOf(widths []int, spaceWidth int) int {
	total := -spaceWidth
	for _, w := range widths {
		total += w + spaceWidth
	}
	return total
}

func shiftForced(forced map[int]bool, insertAt int) map[int]bool {
	shifted := make(map[int]bool, len(forced)+1)
	for idx := range forced {
		if idx > insertAt {
			shifted[idx+1] = true
		} else {
			shifted[idx] = true
		}
	}
	return shifted
}
