/*
Package section turns laid-out lines into fixed-height pages and caches
them on disk.

Re-running the layout of a whole book is expensive on the target
hardware, so finished pages are written to small binary files next to
the book, together with a metadata record of the layout parameters that
produced them. On open, the cache is reused only when every parameter
matches bit for bit; otherwise the stale files are purged and the book
is laid out again.
*/
package section

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'crosspoint.section'
func tracer() tracing.Trace {
	return tracing.Select("crosspoint.section")
}
