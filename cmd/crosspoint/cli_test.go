package main

import (
	"bytes"
	"testing"
)

func TestRootCommandWiring(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"layout", "inspect", "hyphenate", "config"} {
		if !names[want] {
			t.Errorf("missing %q subcommand", want)
		}
	}
}

func TestHyphenateCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"hyphenate", "hello"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got := out.String(); got != "hel-lo\n" {
		t.Errorf("output = %q, want %q", got, "hel-lo\n")
	}
}

func TestSplitParagraphs(t *testing.T) {
	text := "first line\ncontinues here\r\n\n\nsecond paragraph\n"
	got := splitParagraphs(text)
	want := []string{"first line continues here", "second paragraph"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("splitParagraphs = %q, want %q", got, want)
	}
}
