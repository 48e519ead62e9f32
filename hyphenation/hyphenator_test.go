package hyphenation

import (
	"slices"
	"strings"
	"testing"
)

func TestBreakOffsetsShortWord(t *testing.T) {
	for _, word := range []string{"", "a", "cat", "тест"} {
		if got := BreakOffsets(word, false); len(got) != 0 {
			t.Errorf("BreakOffsets(%q) = %v, want empty", word, got)
		}
	}
}

func TestBreakOffsetsLatin(t *testing.T) {
	if got := BreakOffsets("hello", false); !slices.Equal(got, []int{3}) {
		t.Fatalf("BreakOffsets(hello) = %v, want [3]", got)
	}
}

func TestBreakOffsetsCyrillicByteOffsets(t *testing.T) {
	// Break falls at codepoint index 3; Cyrillic letters are two bytes each.
	if got := BreakOffsets("привет", false); !slices.Equal(got, []int{6}) {
		t.Fatalf("BreakOffsets(привет) = %v, want [6]", got)
	}
}

func TestBreakOffsetsIgnoresSurroundingPunctuation(t *testing.T) {
	// Offsets keep indexing the original word, guillemets included.
	if got := BreakOffsets("«привет»", false); !slices.Equal(got, []int{8}) {
		t.Fatalf("BreakOffsets(«привет») = %v, want [8]", got)
	}
}

func TestBreakOffsetsExplicitHyphen(t *testing.T) {
	if got := BreakOffsets("e-book", false); !slices.Equal(got, []int{2}) {
		t.Fatalf("explicit hyphen should be the only candidate, got %v", got)
	}
	// Explicit hyphens suppress algorithmic candidates entirely.
	if got := BreakOffsets("twenty-seven", true); !slices.Equal(got, []int{7}) {
		t.Fatalf("explicit hyphen should win over fallback, got %v", got)
	}
}

func TestBreakOffsetsApostrophe(t *testing.T) {
	// Interior apostrophe means the word is not purely alphabetic.
	if got := BreakOffsets("don't", false); len(got) != 0 {
		t.Fatalf("BreakOffsets(don't) = %v, want empty", got)
	}
}

func TestBreakOffsetsMixedScript(t *testing.T) {
	if got := BreakOffsets("testтест", false); len(got) != 0 {
		t.Fatalf("mixed script should have no language candidates, got %v", got)
	}
	got := BreakOffsets("testтест", true)
	want := []int{3, 4, 6, 8} // every minimum-window position, as byte offsets
	if !slices.Equal(got, want) {
		t.Fatalf("fallback offsets = %v, want %v", got, want)
	}
}

func TestBreakOffsetsFallbackWindow(t *testing.T) {
	if got := BreakOffsets("zzzzzz", false); len(got) != 0 {
		t.Fatalf("no vowels should mean no candidates, got %v", got)
	}
	if got := BreakOffsets("zzzzzz", true); !slices.Equal(got, []int{3, 4}) {
		t.Fatalf("fallback offsets = %v, want [3 4]", got)
	}
}

func TestBreakOffsetsSliceLaw(t *testing.T) {
	// Every returned offset must slice the word into two non-empty valid
	// halves that reassemble exactly.
	for _, word := range []string{"hello", "formation", "привет", "безопасный"} {
		for _, off := range BreakOffsets(word, true) {
			head, tail := word[:off], word[off:]
			if head == "" || tail == "" {
				t.Fatalf("%q: offset %d yields an empty half", word, off)
			}
			if head+tail != word {
				t.Fatalf("%q: halves do not reassemble", word)
			}
			if strings.HasSuffix(head, "\xc2") { // no mid-codepoint slicing
				t.Fatalf("%q: offset %d splits a UTF-8 sequence", word, off)
			}
		}
	}
}
