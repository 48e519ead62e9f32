package hyphenation

// RussianHyphenator produces break candidates for Cyrillic-script words.
// Onset validity follows the sonority sequencing principle (liquids and
// glides rank above nasals, nasals above fricatives, fricatives above
// stops) with allowances for the prefix consonants в/з/с and for
// sibilant+stop clusters. It is stateless.
type RussianHyphenator struct{}

// Script reports the script this hyphenator handles.
func (RussianHyphenator) Script() Script { return Cyrillic }

// BreakIndexes returns sorted, deduplicated codepoint indexes at which the
// word may be hyphenated.
func (RussianHyphenator) BreakIndexes(cps []CodepointInfo) []int {
	return russianBreakIndexes(cps)
}

var russianMorphology = newLiteralTables(
	[]string{
		"без", "раз", "под", "над", "пере", "сверх",
		"меж", "супер", "пред", "само", "обо", "против",
	},
	[]string{
		"ност", "ство", "ение", "ация", "чик", "ник",
		"тель", "ский", "альный", "изм", "ливый", "ость",
	},
)

func isSoftOrHardSign(cp uint32) bool {
	cp = toLowerCyrillic(cp)
	return cp == 0x044C || cp == 0x044A // ь, ъ
}

func isCyrillicShortI(cp uint32) bool {
	return toLowerCyrillic(cp) == 0x0439 // й
}

func isCyrillicYeru(cp uint32) bool {
	return toLowerCyrillic(cp) == 0x044B // ы
}

// isRussianPrefixConsonant reports consonants that commonly end a
// morphological prefix and may open an otherwise invalid cluster.
func isRussianPrefixConsonant(cp uint32) bool {
	cp = toLowerCyrillic(cp)
	return cp == 0x0432 || cp == 0x0437 || cp == 0x0441 // в, з, с
}

func isRussianSibilant(cp uint32) bool {
	switch toLowerCyrillic(cp) {
	case 0x0437, // з
		0x0441, // с
		0x0436, // ж
		0x0448, // ш
		0x0449, // щ
		0x0447, // ч
		0x0446: // ц
		return true
	}
	return false
}

func isRussianStop(cp uint32) bool {
	switch toLowerCyrillic(cp) {
	case 0x0431, // б
		0x0433, // г
		0x0434, // д
		0x043F, // п
		0x0442, // т
		0x043A: // к
		return true
	}
	return false
}

// russianSonority ranks consonants for onset validation: 4 liquids/glides,
// 3 nasals, 2 voiced fricatives, 1 voiceless fricatives, 0 stops.
func russianSonority(cp uint32) int {
	switch toLowerCyrillic(cp) {
	case 0x043B, 0x0440, 0x0439: // л р й
		return 4
	case 0x043C, 0x043D: // м н
		return 3
	case 0x0432, 0x0437, 0x0436: // в з ж
		return 2
	case 0x0444, 0x0441, 0x0448, 0x0449, 0x0447, 0x0446, 0x0445: // ф с ш щ ч ц х
		return 1
	case 0x0431, 0x0433, 0x0434, 0x043F, 0x0442, 0x043A: // б г д п т к
		return 0
	}
	return 1
}

// russianClusterIsValidOnset checks that cps[start:end] obeys sonority
// sequencing, i.e. the ranks never decrease left to right except for the
// two sanctioned exceptions.
func russianClusterIsValidOnset(cps []CodepointInfo, start, end int) bool {
	if start >= end {
		return false
	}
	for i := start; i < end; i++ {
		cp := cps[i].Value
		if !isCyrillicConsonant(cp) || isSoftOrHardSign(cp) {
			return false
		}
	}
	if end-start == 1 {
		return true
	}
	for i := start; i+1 < end; i++ {
		current := cps[i].Value
		next := cps[i+1].Value
		if russianSonority(current) > russianSonority(next) {
			prefixAllowance := i == start && isRussianPrefixConsonant(current)
			sibilantAllowance := isRussianSibilant(current) && isRussianStop(next)
			if !prefixAllowance && !sibilantAllowance {
				return false
			}
		}
	}
	return true
}

// doubleConsonantSplit finds the canonical split inside a doubled
// consonant (кас-са). Returns -1 when the cluster holds no double.
func doubleConsonantSplit(cps []CodepointInfo, clusterStart, clusterEnd int) int {
	for i := clusterStart; i+1 < clusterEnd; i++ {
		left := cps[i].Value
		right := cps[i+1].Value
		if isCyrillicConsonant(left) && toLowerCyrillic(left) == toLowerCyrillic(right) && !isSoftOrHardSign(right) {
			return i + 1
		}
	}
	return -1
}

func exposesLeadingDoubleConsonant(cps []CodepointInfo, index int) bool {
	if index+1 >= len(cps) {
		return false
	}
	first := cps[index].Value
	second := cps[index+1].Value
	if !isCyrillicConsonant(first) || !isCyrillicConsonant(second) {
		return false
	}
	if toLowerCyrillic(first) != toLowerCyrillic(second) {
		return false
	}
	hasLeftVowel := index > 0 && isCyrillicVowel(cps[index-1].Value)
	hasRightVowel := index+2 < len(cps) && isCyrillicVowel(cps[index+2].Value)
	return hasLeftVowel && hasRightVowel
}

func exposesTrailingDoubleConsonant(cps []CodepointInfo, index int) bool {
	if index < 2 {
		return false
	}
	last := cps[index-1].Value
	prev := cps[index-2].Value
	if !isCyrillicConsonant(last) || !isCyrillicConsonant(prev) {
		return false
	}
	if toLowerCyrillic(last) != toLowerCyrillic(prev) {
		return false
	}
	hasLeftVowel := index >= 3 && isCyrillicVowel(cps[index-3].Value)
	hasRightVowel := index < len(cps) && isCyrillicVowel(cps[index].Value)
	return hasLeftVowel && hasRightVowel
}

// violatesDoubleConsonantRule rejects breaks that would strand one half of
// a doubled consonant; splits must land exactly between the pair.
func violatesDoubleConsonantRule(cps []CodepointInfo, index int) bool {
	return exposesLeadingDoubleConsonant(cps, index) || exposesTrailingDoubleConsonant(cps, index)
}

// beginsWithForbiddenSuffix rejects suffixes starting with ь, ъ, й or ы:
// none of these may open a line.
func beginsWithForbiddenSuffix(cps []CodepointInfo, index int) bool {
	if index >= len(cps) {
		return true
	}
	cp := cps[index].Value
	return isSoftOrHardSign(cp) || isCyrillicShortI(cp) || isCyrillicYeru(cp)
}

func russianSegmentHasVowel(cps []CodepointInfo, start, end int) bool {
	end = min(end, len(cps))
	for i := start; i < end; i++ {
		if isCyrillicVowel(cps[i].Value) {
			return true
		}
	}
	return false
}

// russianBreakAllowed validates a candidate break against the window and
// adjacency rules.
func russianBreakAllowed(cps []CodepointInfo, breakIndex int) bool {
	if breakIndex <= 0 || breakIndex >= len(cps) {
		return false
	}
	if breakIndex < MinPrefixCP || len(cps)-breakIndex < MinSuffixCP {
		return false
	}
	if !russianSegmentHasVowel(cps, 0, breakIndex) || !russianSegmentHasVowel(cps, breakIndex, len(cps)) {
		return false
	}
	if beginsWithForbiddenSuffix(cps, breakIndex) {
		return false
	}
	return !violatesDoubleConsonantRule(cps, breakIndex)
}

// russianOnsetLength chooses the longest valid onset anchored at the right
// edge of the inter-vowel cluster.
func russianOnsetLength(cps []CodepointInfo, clusterStart, clusterEnd int) int {
	clusterLen := clusterEnd - clusterStart
	if clusterLen == 0 {
		return 0
	}
	maxLen := min(4, clusterLen)
	for l := maxLen; l >= 1; l-- {
		if russianClusterIsValidOnset(cps, clusterEnd-l, clusterEnd) {
			return l
		}
	}
	return 1
}

func nextToSoftSign(cps []CodepointInfo, index int) bool {
	if index <= 0 || index >= len(cps) {
		return false
	}
	return isSoftOrHardSign(cps[index-1].Value) || isSoftOrHardSign(cps[index].Value)
}

func lowercaseCyrillicWord(cps []CodepointInfo) []rune {
	lower := make([]rune, len(cps))
	for i, info := range cps {
		if isCyrillicLetter(info.Value) {
			lower[i] = rune(toLowerCyrillic(info.Value))
		} else {
			lower[i] = rune(info.Value)
		}
	}
	return lower
}

func russianBreakIndexes(cps []CodepointInfo) []int {
	if len(cps) < MinPrefixCP+MinSuffixCP {
		return nil
	}

	vowelPositions := make([]int, 0, len(cps))
	for i := range cps {
		if isCyrillicVowel(cps[i].Value) {
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
			if !nextToSoftSign(cps, rightVowel) && russianBreakAllowed(cps, rightVowel) {
				indexes = append(indexes, rightVowel)
			}
			continue
		}

		clusterStart := leftVowel + 1
		clusterEnd := rightVowel

		breakIndex := doubleConsonantSplit(cps, clusterStart, clusterEnd)
		if breakIndex < 0 {
			breakIndex = clusterEnd - russianOnsetLength(cps, clusterStart, clusterEnd)
		}

		if nextToSoftSign(cps, breakIndex) {
			continue
		}
		if !russianBreakAllowed(cps, breakIndex) {
			continue
		}
		indexes = append(indexes, breakIndex)
	}

	indexes = russianMorphology.appendBreaks(lowercaseCyrillicWord(cps), func(breakIndex int) bool {
		return russianBreakAllowed(cps, breakIndex)
	}, indexes)

	return sortedUnique(indexes)
}
