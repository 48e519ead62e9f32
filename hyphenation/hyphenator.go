package hyphenation

// LanguageHyphenator is the capability shared by the per-script rule sets.
// Implementations are stateless and safe for concurrent use.
type LanguageHyphenator interface {
	Script() Script
	BreakIndexes(cps []CodepointInfo) []int
}

// The set of supported scripts is fixed at compile time, so the registry
// is a closed array rather than an open registration surface.
var languageHyphenators = [...]LanguageHyphenator{
	EnglishHyphenator{},
	RussianHyphenator{},
}

func hyphenatorForScript(script Script) LanguageHyphenator {
	for _, h := range languageHyphenators {
		if h.Script() == script {
			return h
		}
	}
	return nil
}

func hasOnlyAlphabetic(cps []CodepointInfo) bool {
	if len(cps) == 0 {
		return false
	}
	for _, info := range cps {
		if !isAlphabetic(info.Value) {
			return false
		}
	}
	return true
}

// explicitHyphenOffsets returns the positions immediately after hyphens
// that are flanked by letters. Author-written hyphens always win over
// algorithmic candidates.
func explicitHyphenOffsets(cps []CodepointInfo) []int {
	var offsets []int
	for i := 1; i+1 < len(cps); i++ {
		cp := cps[i].Value
		if cp != '-' && cp != 0x2010 {
			continue
		}
		if isAlphabetic(cps[i-1].Value) && isAlphabetic(cps[i+1].Value) {
			offsets = append(offsets, cps[i+1].ByteOffset)
		}
	}
	return offsets
}

// BreakOffsets returns byte offsets where word may be hyphenated, sorted
// ascending. Surrounding punctuation is ignored. Words shorter than the
// minimum prefix+suffix window, and words that are neither purely Latin
// nor purely Cyrillic, yield no algorithmic candidates. When
// includeFallback is set, every offset obeying the minimum window is
// added regardless of linguistic validity; callers use this to force-break
// a word that would not otherwise fit any line.
func BreakOffsets(word string, includeFallback bool) []int {
	if word == "" {
		return nil
	}
	cps := TrimSurroundingPunctuation(DecodeCodepoints(word))
	if len(cps) < MinPrefixCP+MinSuffixCP {
		return nil
	}

	if offsets := explicitHyphenOffsets(cps); len(offsets) > 0 {
		return offsets
	}

	var indexes []int
	if hasOnlyAlphabetic(cps) {
		if h := hyphenatorForScript(DetectScript(cps)); h != nil {
			indexes = h.BreakIndexes(cps)
		}
	}

	if includeFallback {
		for idx := MinPrefixCP; idx+MinSuffixCP <= len(cps); idx++ {
			indexes = append(indexes, idx)
		}
	}

	if len(indexes) == 0 {
		return nil
	}
	indexes = sortedUnique(indexes)

	offsets := make([]int, 0, len(indexes))
	for _, idx := range indexes {
		offsets = append(offsets, cps[idx].ByteOffset)
	}
	tracer().Debugf("word %q: %d break offsets", word, len(offsets))
	return offsets
}
