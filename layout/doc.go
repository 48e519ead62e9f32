/*
Package layout breaks paragraphs into lines for a fixed-width page.

A ParsedText accumulates the words of one paragraph, then lays them out
against a Renderer that knows how wide each word draws in a given font
and style. Two engines are available: an optimal engine that minimizes
the summed squared leftover width over all lines (the last line rides
free), and a greedy engine that fills each line as far as it goes.
Both consult the hyphenation package when a word sticks out past the
right margin.

Laying out a paragraph drains it. The words move into the emitted
TextBlock values, one block per line, each carrying the x position and
style of every word on that line.
*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'crosspoint.layout'
func tracer() tracing.Trace {
	return tracing.Select("crosspoint.layout")
}
