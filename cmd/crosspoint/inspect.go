package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/osteotek/crosspoint-reader/section"
)

var inspectPage int

var inspectCmd = &cobra.Command{
	Use:   "inspect <cachedir>",
	Short: "Print the contents of a page cache",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().IntVar(&inspectPage, "page", -1, "dump the lines of one page")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	if info, err := os.Stat(args[0]); err != nil || !info.IsDir() {
		return fmt.Errorf("%s is not a page cache directory", args[0])
	}
	store, err := section.NewStore(args[0])
	if err != nil {
		return err
	}
	params, pageCount, err := store.ReadMetadata()
	if err != nil {
		return fmt.Errorf("read cache metadata: %w", err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "pages\t%d\n", pageCount)
	fmt.Fprintf(w, "font id\t%d\n", params.FontID)
	fmt.Fprintf(w, "line compression\t%.2f\n", params.LineCompression)
	fmt.Fprintf(w, "margins\t%d %d %d %d\n",
		params.MarginTop, params.MarginRight, params.MarginBottom, params.MarginLeft)
	fmt.Fprintf(w, "hyphenation\t%v\n", params.Hyphenation)
	fmt.Fprintf(w, "extra paragraph spacing\t%v\n", params.ExtraParagraphSpacing)
	if err := w.Flush(); err != nil {
		return err
	}

	if inspectPage < 0 {
		return nil
	}
	if inspectPage >= pageCount {
		return fmt.Errorf("page %d out of range, cache has %d pages", inspectPage, pageCount)
	}
	page, err := store.LoadPage(inspectPage)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\npage %d:\n", inspectPage)
	for _, placed := range page.Blocks {
		fmt.Fprintf(cmd.OutOrStdout(), "%4d  %s\n", placed.Y, strings.Join(placed.Block.Words, " "))
	}
	return nil
}
