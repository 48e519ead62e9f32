package section

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

var testParams = Params{
	FontID:          3,
	LineCompression: 1.25,
	MarginTop:       10,
	MarginRight:     15,
	MarginBottom:    10,
	MarginLeft:      15,
	Hyphenation:     true,
}

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func TestStoreRoundTrip(t *testing.T) {
	s := testStore(t)
	page := &Page{Blocks: []PlacedBlock{{Y: 12, Block: line("один", "два")}}}
	if err := s.WritePage(0, page); err != nil {
		t.Fatalf("WritePage: %v", err)
	}
	if err := s.WriteMetadata(testParams, 1); err != nil {
		t.Fatalf("WriteMetadata: %v", err)
	}

	count, ok := s.LoadMetadata(testParams)
	if !ok || count != 1 {
		t.Fatalf("LoadMetadata = (%d, %v), want (1, true)", count, ok)
	}
	got, err := s.LoadPage(0)
	if err != nil {
		t.Fatalf("LoadPage: %v", err)
	}
	if !reflect.DeepEqual(got, page) {
		t.Errorf("page round trip mismatch:\n got %+v\nwant %+v", got, page)
	}
}

func TestStoreMissWithoutMetadata(t *testing.T) {
	s := testStore(t)
	if _, ok := s.LoadMetadata(testParams); ok {
		t.Fatal("empty store reported a cache hit")
	}
}

func TestStoreParamChangePurges(t *testing.T) {
	s := testStore(t)
	if err := s.WritePage(0, &Page{Blocks: []PlacedBlock{{Block: line("x")}}}); err != nil {
		t.Fatalf("WritePage: %v", err)
	}
	if err := s.WriteMetadata(testParams, 1); err != nil {
		t.Fatalf("WriteMetadata: %v", err)
	}

	changed := testParams
	changed.Hyphenation = false
	if _, ok := s.LoadMetadata(changed); ok {
		t.Fatal("cache hit despite changed parameters")
	}

	// The stale files must be gone.
	if _, err := os.Stat(filepath.Join(s.Dir(), "page_0.bin")); !os.IsNotExist(err) {
		t.Error("stale page survived the purge")
	}
	if _, ok := s.LoadMetadata(testParams); ok {
		t.Error("purged cache still reports a hit for the old parameters")
	}
}

func TestStoreVersionSkewPurges(t *testing.T) {
	s := testStore(t)
	if err := s.WriteMetadata(testParams, 1); err != nil {
		t.Fatalf("WriteMetadata: %v", err)
	}
	// Flip the version byte at the front of the record.
	path := filepath.Join(s.Dir(), metadataFile)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read metadata: %v", err)
	}
	data[0] = metadataVersion - 1
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("rewrite metadata: %v", err)
	}

	if _, ok := s.LoadMetadata(testParams); ok {
		t.Fatal("cache hit despite version skew")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("skewed metadata survived the purge")
	}
}
