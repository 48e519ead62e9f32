package hyphenation

import (
	"sort"

	"github.com/derekparker/trie"
)

// literalTables holds a language's morphological prefixes and suffixes in
// two tries: one keyed by the prefixes themselves, one keyed by reversed
// suffixes so the word can be probed from its tail. Morphology breaks
// recover positions a purely syllabic scan misses ("anti-", "-tion").
type literalTables struct {
	prefixes  *trie.Trie
	suffixes  *trie.Trie // keys are reversed suffixes
	maxPrefix int
	maxSuffix int
}

func newLiteralTables(prefixes, suffixes []string) *literalTables {
	lt := &literalTables{
		prefixes: trie.New(),
		suffixes: trie.New(),
	}
	for _, p := range prefixes {
		n := len([]rune(p))
		lt.prefixes.Add(p, n)
		lt.maxPrefix = max(lt.maxPrefix, n)
	}
	for _, s := range suffixes {
		n := len([]rune(s))
		lt.suffixes.Add(reverseRunes([]rune(s)), n)
		lt.maxSuffix = max(lt.maxSuffix, n)
	}
	return lt
}

// appendBreaks adds a break at every matching prefix or suffix boundary
// that the allowed callback accepts. lower must be the lowercased word as
// runes; returned indexes are codepoint indexes into it.
func (lt *literalTables) appendBreaks(lower []rune, allowed func(breakIndex int) bool, indexes []int) []int {
	length := len(lower)
	if length < MinPrefixCP+MinSuffixCP {
		return indexes
	}
	for l := 1; l <= lt.maxPrefix && l < length; l++ {
		if _, ok := lt.prefixes.Find(string(lower[:l])); !ok {
			continue
		}
		if allowed(l) {
			indexes = append(indexes, l)
		}
	}
	reversed := reverseRunes(lower)
	for l := 1; l <= lt.maxSuffix && l < length; l++ {
		if _, ok := lt.suffixes.Find(string(reversed[:l])); !ok {
			continue
		}
		if allowed(length - l) {
			indexes = append(indexes, length-l)
		}
	}
	return indexes
}

func reverseRunes(rs []rune) string {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[len(rs)-1-i] = r
	}
	return string(out)
}

// sortedUnique sorts candidate indexes and removes duplicates in place.
func sortedUnique(indexes []int) []int {
	if len(indexes) < 2 {
		return indexes
	}
	sort.Ints(indexes)
	out := indexes[:1]
	for _, idx := range indexes[1:] {
		if idx != out[len(out)-1] {
			out = append(out, idx)
		}
	}
	return out
}
