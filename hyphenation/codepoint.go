package hyphenation

// CodepointInfo pairs a decoded Unicode codepoint with the byte offset of
// its first byte inside the source word.
type CodepointInfo struct {
	Value      uint32
	ByteOffset int
}

// Script identifies the dominant writing system of a word.
type Script int

const (
	Latin Script = iota
	Cyrillic
	// Mixed covers words with letters from both scripts as well as words
	// without any letters at all; neither is eligible for language rules.
	Mixed
)

// Minimum codepoints that must remain before and after a break, so both
// halves of a hyphenated word stay readable.
const (
	MinPrefixCP = 3
	MinSuffixCP = 2
)

// DecodeCodepoints decodes a UTF-8 word into codepoints with byte offsets.
// Decoding is best effort: an invalid lead byte counts as a single-byte
// codepoint and a truncated sequence consumes only the bytes present.
func DecodeCodepoints(word string) []CodepointInfo {
	cps := make([]CodepointInfo, 0, len(word))
	for i := 0; i < len(word); {
		b := word[i]
		var cp uint32
		var size int
		switch {
		case b < 0x80:
			cp, size = uint32(b), 1
		case b&0xE0 == 0xC0:
			cp, size = uint32(b&0x1F), 2
		case b&0xF0 == 0xE0:
			cp, size = uint32(b&0x0F), 3
		case b&0xF8 == 0xF0:
			cp, size = uint32(b&0x07), 4
		default:
			cp, size = uint32(b), 1
		}
		for k := 1; k < size; k++ {
			if i+k >= len(word) || word[i+k]&0xC0 != 0x80 {
				size = k
				break
			}
			cp = cp<<6 | uint32(word[i+k]&0x3F)
		}
		cps = append(cps, CodepointInfo{Value: cp, ByteOffset: i})
		i += size
	}
	return cps
}

func toLowerLatin(cp uint32) uint32 {
	if cp >= 'A' && cp <= 'Z' {
		return cp - 'A' + 'a'
	}
	return cp
}

func toLowerCyrillic(cp uint32) uint32 {
	if cp >= 0x0410 && cp <= 0x042F {
		return cp + 0x20
	}
	if cp == 0x0401 { // Ё
		return 0x0451
	}
	return cp
}

func isLatinLetter(cp uint32) bool {
	return (cp >= 'A' && cp <= 'Z') || (cp >= 'a' && cp <= 'z')
}

func isLatinVowel(cp uint32) bool {
	switch toLowerLatin(cp) {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

func isLatinConsonant(cp uint32) bool {
	return isLatinLetter(cp) && !isLatinVowel(cp)
}

func isCyrillicLetter(cp uint32) bool {
	return cp >= 0x0400 && cp <= 0x052F
}

func isCyrillicVowel(cp uint32) bool {
	switch toLowerCyrillic(cp) {
	case 0x0430, // а
		0x0435, // е
		0x0451, // ё
		0x0438, // и
		0x043E, // о
		0x0443, // у
		0x044B, // ы
		0x044D, // э
		0x044E, // ю
		0x044F: // я
		return true
	}
	return false
}

func isCyrillicConsonant(cp uint32) bool {
	return isCyrillicLetter(cp) && !isCyrillicVowel(cp)
}

func isAlphabetic(cp uint32) bool {
	return isLatinLetter(cp) || isCyrillicLetter(cp)
}

func isVowel(cp uint32) bool {
	return isLatinVowel(cp) || isCyrillicVowel(cp)
}

func isPunctuation(cp uint32) bool {
	switch cp {
	case '.', ',', '!', '?', ';', ':', '"', '\'', '(', ')',
		'[', ']', '{', '}', '/',
		0x00AB, // «
		0x00BB, // »
		0x2018, // ‘
		0x2019, // ’
		0x201C, // “
		0x201D, // ”
		0x203A, // ›
		0x2026: // …
		return true
	}
	return false
}

// TrimSurroundingPunctuation strips leading and trailing punctuation
// codepoints. Byte offsets of the interior codepoints are untouched, so
// the result still indexes into the original word.
func TrimSurroundingPunctuation(cps []CodepointInfo) []CodepointInfo {
	start, end := 0, len(cps)
	for start < end && isPunctuation(cps[start].Value) {
		start++
	}
	for end > start && isPunctuation(cps[end-1].Value) {
		end--
	}
	return cps[start:end]
}

// DetectScript reports the dominant script of a codepoint sequence. A word
// with letters from both scripts, or with no letters at all, is Mixed.
func DetectScript(cps []CodepointInfo) Script {
	hasLatin := false
	hasCyrillic := false
	for _, info := range cps {
		if isLatinLetter(info.Value) {
			hasLatin = true
		} else if isCyrillicLetter(info.Value) {
			hasCyrillic = true
		}
	}
	if hasLatin && !hasCyrillic {
		return Latin
	}
	if !hasLatin && hasCyrillic {
		return Cyrillic
	}
	return Mixed
}
