package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	l := NewLoaderWithPath(filepath.Join(t.TempDir(), "config.yaml"))
	got, err := l.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, Default()) {
		t.Errorf("missing file should load defaults, got %+v", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	l := NewLoaderWithPath(filepath.Join(t.TempDir(), "nested", "config.yaml"))
	want := Default()
	want.Font.SizePt = 13.5
	want.Layout.Hyphenation = false
	want.Layout.MarginLeft = 30
	if err := l.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := l.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("font:\n  size_pt: 14\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := NewLoaderWithPath(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Font.SizePt != 14 {
		t.Errorf("Font.SizePt = %v, want 14", got.Font.SizePt)
	}
	if got.Screen.Width != Default().Screen.Width {
		t.Errorf("unset fields should keep defaults, got %+v", got.Screen)
	}
}

func TestLoadRejectsBrokenConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("screen: [not a map]\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := NewLoaderWithPath(path).Load(); err == nil {
		t.Error("expected a parse error")
	}
}

func TestValidate(t *testing.T) {
	bad := Default()
	bad.Layout.MarginLeft = 1000
	if err := bad.Validate(); err == nil {
		t.Error("expected oversized margins to fail validation")
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}
