package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osteotek/crosspoint-reader/hyphenation"
)

var hyphenateFallback bool

var hyphenateCmd = &cobra.Command{
	Use:   "hyphenate <word>...",
	Short: "Show the hyphenation points of words",
	Long: `Prints each word with a hyphen at every legal break position.

Words that are too short, mix scripts, or contain digits print
unchanged. With --fallback, forced break positions are added the way
the layout engine does for words wider than the page.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runHyphenate,
}

func init() {
	hyphenateCmd.Flags().BoolVar(&hyphenateFallback, "fallback", false,
		"include forced break positions")
	rootCmd.AddCommand(hyphenateCmd)
}

func runHyphenate(cmd *cobra.Command, args []string) error {
	for _, word := range args {
		offsets := hyphenation.BreakOffsets(word, hyphenateFallback)
		parts := make([]string, 0, len(offsets)+1)
		prev := 0
		for _, off := range offsets {
			parts = append(parts, word[prev:off])
			prev = off
		}
		parts = append(parts, word[prev:])
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, "-"))
	}
	return nil
}
