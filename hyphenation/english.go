package hyphenation

// EnglishHyphenator produces break candidates for Latin-script words using
// English phonotactics: syllable onsets (digraphs, stop/fricative plus
// approximant, s-clusters) and a small morphology table. It is stateless.
type EnglishHyphenator struct{}

// Script reports the script this hyphenator handles.
func (EnglishHyphenator) Script() Script { return Latin }

// BreakIndexes returns sorted, deduplicated codepoint indexes at which the
// word may be hyphenated.
func (EnglishHyphenator) BreakIndexes(cps []CodepointInfo) []int {
	return englishBreakIndexes(cps)
}

var englishMorphology = newLiteralTables(
	[]string{
		"anti", "auto", "counter", "de", "dis", "hyper", "inter",
		"micro", "mis", "mono", "multi", "non", "over", "post",
		"pre", "pro", "re", "sub", "super", "trans",
	},
	[]string{
		"able", "ible", "ing", "ings", "ed", "er", "ers", "est",
		"ful", "hood", "less", "lessly", "ly", "ment", "ments", "ness",
		"ous", "tion", "sion", "ward", "wards", "ship", "ships", "y",
	},
)

func lowerLatinChar(cp uint32) byte {
	if !isLatinLetter(cp) {
		return 0
	}
	return byte(toLowerLatin(cp))
}

func isEnglishApproximantChar(c byte) bool {
	return c == 'l' || c == 'r' || c == 'w' || c == 'y'
}

func isEnglishStopChar(c byte) bool {
	switch c {
	case 'p', 'b', 't', 'd', 'k', 'g', 'c', 'q':
		return true
	}
	return false
}

func isEnglishFricativeChar(c byte) bool {
	switch c {
	case 'f', 'v', 's', 'z', 'h', 'x':
		return true
	}
	return false
}

func isEnglishDiphthong(first, second uint32) bool {
	if !isLatinLetter(first) || !isLatinLetter(second) {
		return false
	}
	f := byte(toLowerLatin(first))
	s := byte(toLowerLatin(second))
	switch f {
	case 'a':
		return s == 'i' || s == 'y' || s == 'u'
	case 'e':
		return s == 'a' || s == 'e' || s == 'i' || s == 'o' || s == 'u' || s == 'y'
	case 'i':
		return s == 'e' || s == 'u' || s == 'a'
	case 'o':
		return s == 'a' || s == 'e' || s == 'i' || s == 'o' || s == 'u' || s == 'y'
	case 'u':
		return s == 'i' || s == 'a' || s == 'e'
	}
	return false
}

var englishOnsetDigraphs = [...][2]byte{
	{'c', 'h'}, {'s', 'h'}, {'t', 'h'}, {'p', 'h'}, {'w', 'h'}, {'w', 'r'},
	{'k', 'n'}, {'g', 'n'}, {'p', 's'}, {'p', 't'}, {'p', 'n'}, {'r', 'h'},
}

func isValidEnglishOnsetBigram(firstCp, secondCp uint32) bool {
	first := lowerLatinChar(firstCp)
	second := lowerLatinChar(secondCp)
	if first == 0 || second == 0 {
		return false
	}
	for _, d := range englishOnsetDigraphs {
		if d[0] == first && d[1] == second {
			return true
		}
	}
	if isEnglishStopChar(first) && isEnglishApproximantChar(second) {
		return true
	}
	if isEnglishFricativeChar(first) && isEnglishApproximantChar(second) {
		return true
	}
	if first == 's' {
		switch second {
		case 'p', 't', 'k', 'm', 'n', 'f', 'l', 'w', 'c':
			return true
		}
	}
	if second == 'y' {
		switch first {
		case 'p', 'b', 't', 'd', 'f', 'k', 'g', 'h', 'm', 'n', 'l', 's':
			return true
		}
	}
	return false
}

func isValidEnglishOnsetTrigram(firstCp, secondCp, thirdCp uint32) bool {
	first := lowerLatinChar(firstCp)
	second := lowerLatinChar(secondCp)
	third := lowerLatinChar(thirdCp)
	if first == 0 || second == 0 || third == 0 {
		return false
	}
	if first == 's' {
		switch second {
		case 'p':
			if third == 'l' || third == 'r' || third == 'w' {
				return true
			}
		case 't':
			if third == 'r' || third == 'w' || third == 'y' {
				return true
			}
		case 'k':
			if third == 'l' || third == 'r' || third == 'w' {
				return true
			}
		case 'c':
			if third == 'l' || third == 'r' {
				return true
			}
		case 'f', 'h':
			if third == 'r' {
				return true
			}
		}
	}
	if first == 't' && second == 'h' && third == 'r' {
		return true
	}
	return false
}

// englishClusterIsValidOnset verifies that cps[start:end] could begin an
// English syllable. 'y' is allowed in onsets even though it counts as a
// vowel elsewhere.
func englishClusterIsValidOnset(cps []CodepointInfo, start, end int) bool {
	if start >= end {
		return false
	}
	for i := start; i < end; i++ {
		ch := lowerLatinChar(cps[i].Value)
		if ch == 0 {
			return false
		}
		if !isLatinConsonant(cps[i].Value) && ch != 'y' {
			return false
		}
	}
	switch end - start {
	case 1:
		return true
	case 2:
		return isValidEnglishOnsetBigram(cps[start].Value, cps[start+1].Value)
	case 3:
		return isValidEnglishOnsetTrigram(cps[start].Value, cps[start+1].Value, cps[start+2].Value)
	}
	return false
}

// englishOnsetLength picks the longest legal onset anchored at the right
// edge of the consonant cluster cps[clusterStart:clusterEnd].
func englishOnsetLength(cps []CodepointInfo, clusterStart, clusterEnd int) int {
	clusterLen := clusterEnd - clusterStart
	if clusterLen == 0 {
		return 0
	}
	maxLen := min(3, clusterLen)
	for l := maxLen; l >= 1; l-- {
		if englishClusterIsValidOnset(cps, clusterEnd-l, clusterEnd) {
			return l
		}
	}
	return 1
}

// nextToApostrophe rejects break positions touching an apostrophe, so
// contractions never split at the elision point.
func nextToApostrophe(cps []CodepointInfo, index int) bool {
	if index <= 0 || index >= len(cps) {
		return false
	}
	return cps[index-1].Value == '\'' || cps[index].Value == '\''
}

func englishSegmentHasVowel(cps []CodepointInfo, start, end int) bool {
	end = min(end, len(cps))
	for i := start; i < end; i++ {
		if isLatinVowel(cps[i].Value) {
			return true
		}
	}
	return false
}

func lowercaseLatinWord(cps []CodepointInfo) []rune {
	lower := make([]rune, len(cps))
	for i, info := range cps {
		lower[i] = rune(toLowerLatin(info.Value))
	}
	return lower
}

func englishBreakIndexes(cps []CodepointInfo) []int {
	if len(cps) < MinPrefixCP+MinSuffixCP {
		return nil
	}

	vowelPositions := make([]int, 0, len(cps))
	for i := range cps {
		if isLatinVowel(cps[i].Value) {
			vowelPositions = append(vowelPositions, i)
		}
	}
	if len(vowelPositions) < 2 {
		return nil
	}

	var indexes []int
	for v := 0; v+1 < len(vowelPositions); v++ {
		leftVowel := vowelPositions[v]
		rightVowel := vowelPositions[v+1]

		if rightVowel-leftVowel == 1 {
			// Hiatus: break between adjacent vowels unless they form a diphthong.
			if !isEnglishDiphthong(cps[leftVowel].Value, cps[rightVowel].Value) &&
				rightVowel >= MinPrefixCP && len(cps)-rightVowel >= MinSuffixCP &&
				!nextToApostrophe(cps, rightVowel) {
				indexes = append(indexes, rightVowel)
			}
			continue
		}

		clusterStart := leftVowel + 1
		clusterEnd := rightVowel
		onsetLen := englishOnsetLength(cps, clusterStart, clusterEnd)
		breakIndex := clusterEnd - onsetLen

		if breakIndex < MinPrefixCP || len(cps)-breakIndex < MinSuffixCP {
			continue
		}
		if nextToApostrophe(cps, breakIndex) {
			continue
		}
		indexes = append(indexes, breakIndex)
	}

	indexes = englishMorphology.appendBreaks(lowercaseLatinWord(cps), func(breakIndex int) bool {
		if breakIndex < MinPrefixCP || len(cps)-breakIndex < MinSuffixCP {
			return false
		}
		if !englishSegmentHasVowel(cps, 0, breakIndex) || !englishSegmentHasVowel(cps, breakIndex, len(cps)) {
			return false
		}
		return !nextToApostrophe(cps, breakIndex)
	}, indexes)

	return sortedUnique(indexes)
}
