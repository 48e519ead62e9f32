package hyphenation

import (
	"slices"
	"testing"
)

func englishIndexes(t *testing.T, word string) []int {
	t.Helper()
	return EnglishHyphenator{}.BreakIndexes(DecodeCodepoints(word))
}

func TestEnglishBreakIndexes(t *testing.T) {
	tests := []struct {
		word string
		want []int
	}{
		{"hello", []int{3}},       // hel-lo: single consonant moves to the onset
		{"cat", nil},              // below the 3+2 window
		{"rhythm", nil},           // one vowel, no syllable boundary
		{"create", []int{4}},      // "ea" is a diphthong, break only at crea-te
		{"antidote", []int{4, 6}}, // syllabic breaks, anti- confirmed by morphology
	}
	for _, tt := range tests {
		if got := englishIndexes(t, tt.word); !slices.Equal(got, tt.want) {
			t.Errorf("BreakIndexes(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestEnglishOnsetClusters(t *testing.T) {
	// "thr" is a legal 3-consonant onset, so the whole cluster moves to
	// the second syllable: over-throw.
	got := englishIndexes(t, "overthrow")
	if !slices.Contains(got, 4) {
		t.Fatalf("expected break before onset thr in %q, got %v", "overthrow", got)
	}
}

func TestEnglishMorphologySuffix(t *testing.T) {
	// -ly recovers a boundary the syllabic scan misses.
	got := englishIndexes(t, "friendly")
	if !slices.Contains(got, 6) {
		t.Fatalf("expected morphology break at friend|ly, got %v", got)
	}
}

func TestEnglishApostropheAdjacency(t *testing.T) {
	got := englishIndexes(t, "heaven's")
	if !slices.Contains(got, 3) {
		t.Fatalf("expected hea-ven's break, got %v", got)
	}
	for _, idx := range got {
		if idx == 6 || idx == 7 {
			t.Fatalf("break adjacent to apostrophe at %d", idx)
		}
	}
}
