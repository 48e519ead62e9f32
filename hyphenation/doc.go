/*
Package hyphenation finds legal break positions inside words.

The reader supports two writing systems, Latin and Cyrillic, with one
rule-based hyphenator per script. Both hyphenators share the same shape:
scan the word's vowel positions, place a tentative break inside every
inter-vowel consonant cluster (choosing the longest consonant sequence
that can legally begin a syllable in that language), then add breaks at
known morphological prefix/suffix boundaries and filter everything
through per-language adjacency rules.

Break positions are computed as codepoint indexes and handed out as byte
offsets into the original UTF-8 word, so callers can slice the word
directly. Words too short to leave a readable fragment on both sides of
the hyphen produce no candidates; that is a normal result, not an error.
*/
package hyphenation

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'crosspoint.hyphenate'
func tracer() tracing.Trace {
	return tracing.Select("crosspoint.hyphenate")
}
