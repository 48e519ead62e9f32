package hyphenation

import (
	"slices"
	"testing"
)

func russianIndexes(t *testing.T, word string) []int {
	t.Helper()
	return RussianHyphenator{}.BreakIndexes(DecodeCodepoints(word))
}

func TestRussianBreakIndexes(t *testing.T) {
	tests := []struct {
		word string
		want []int
	}{
		{"привет", []int{3}}, // при-вет
		{"кот", nil},         // below the window
		{"вздор", nil},       // one vowel
		{"касса", []int{3}},  // кас-са: split between the doubled consonants
	}
	for _, tt := range tests {
		if got := russianIndexes(t, tt.word); !slices.Equal(got, tt.want) {
			t.Errorf("BreakIndexes(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestRussianSoftSignAdjacency(t *testing.T) {
	// The only syllabic candidate in больше touches ь and must be dropped.
	if got := russianIndexes(t, "больше"); len(got) != 0 {
		t.Fatalf("expected no breaks next to the soft sign, got %v", got)
	}
}

func TestRussianForbiddenSuffixStart(t *testing.T) {
	for _, word := range []string{"война", "крыша", "стойка"} {
		for _, idx := range russianIndexes(t, word) {
			cps := DecodeCodepoints(word)
			cp := cps[idx].Value
			if isSoftOrHardSign(cp) || isCyrillicShortI(cp) || isCyrillicYeru(cp) {
				t.Errorf("%q: break %d starts the suffix with U+%04X", word, idx, cp)
			}
		}
	}
}

func TestRussianMorphologyPrefix(t *testing.T) {
	got := russianIndexes(t, "безопасный")
	if !slices.Contains(got, 3) {
		t.Fatalf("expected без- morphology break, got %v", got)
	}
}

func TestRussianSonorityOrder(t *testing.T) {
	if russianSonority(0x043B) <= russianSonority(0x043D) { // л vs н
		t.Error("liquids must outrank nasals")
	}
	if russianSonority(0x043D) <= russianSonority(0x0437) { // н vs з
		t.Error("nasals must outrank voiced fricatives")
	}
	if russianSonority(0x0437) <= russianSonority(0x0441) { // з vs с
		t.Error("voiced fricatives must outrank voiceless ones")
	}
	if russianSonority(0x0441) <= russianSonority(0x0442) { // с vs т
		t.Error("fricatives must outrank stops")
	}
}
