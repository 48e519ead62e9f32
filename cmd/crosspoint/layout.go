package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osteotek/crosspoint-reader/config"
	"github.com/osteotek/crosspoint-reader/fontmetrics"
	"github.com/osteotek/crosspoint-reader/layout"
	"github.com/osteotek/crosspoint-reader/section"
)

var (
	layoutOutput string
	layoutGreedy bool
	layoutForce  bool
)

var layoutCmd = &cobra.Command{
	Use:   "layout <textfile>",
	Short: "Lay out a plain-text book into a page cache",
	Long: `Reads a UTF-8 text file, breaks it into lines and pages with the
settings from the config file, and writes the pages to a cache
directory. Paragraphs are separated by blank lines.

An existing cache built with the same parameters is left untouched;
use --force to rebuild it anyway.`,
	Args: cobra.ExactArgs(1),
	RunE: runLayout,
}

func init() {
	layoutCmd.Flags().StringVarP(&layoutOutput, "output", "o", "",
		"page cache directory (default <textfile>.pages)")
	layoutCmd.Flags().BoolVar(&layoutGreedy, "greedy", false,
		"use the greedy line breaker instead of the optimal one")
	layoutCmd.Flags().BoolVar(&layoutForce, "force", false,
		"rebuild the cache even when it is up to date")
	rootCmd.AddCommand(layoutCmd)
}

func cacheParams(s config.Settings) section.Params {
	return section.Params{
		FontID:                int32(s.Font.ID),
		LineCompression:       s.Layout.LineCompression,
		MarginTop:             int32(s.Layout.MarginTop),
		MarginRight:           int32(s.Layout.MarginRight),
		MarginBottom:          int32(s.Layout.MarginBottom),
		MarginLeft:            int32(s.Layout.MarginLeft),
		Hyphenation:           s.Layout.Hyphenation,
		ExtraParagraphSpacing: s.Layout.ExtraParagraphSpacing,
	}
}

// splitParagraphs cuts the text at blank lines. Line breaks inside a
// paragraph are soft and turn into word separators.
func splitParagraphs(text string) []string {
	var paragraphs []string
	var current strings.Builder
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			if current.Len() > 0 {
				paragraphs = append(paragraphs, current.String())
				current.Reset()
			}
			continue
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(line)
	}
	if current.Len() > 0 {
		paragraphs = append(paragraphs, current.String())
	}
	return paragraphs
}

func runLayout(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read book: %w", err)
	}

	outDir := layoutOutput
	if outDir == "" {
		outDir = args[0] + ".pages"
	}
	store, err := section.NewStore(outDir)
	if err != nil {
		return err
	}
	params := cacheParams(settings)
	if layoutForce {
		store.Purge()
	} else if count, ok := store.LoadMetadata(params); ok {
		fmt.Fprintf(cmd.OutOrStdout(), "cache up to date: %d pages in %s\n", count, outDir)
		return nil
	}

	measurer := fontmetrics.New(fontmetrics.Options{
		ScreenWidth: settings.Screen.Width,
		DPI:         settings.Screen.DPI,
	})
	if err := measurer.RegisterFont(settings.Font.ID, fontmetrics.FaceSpec{
		Regular:    settings.Font.Regular,
		Bold:       settings.Font.Bold,
		Italic:     settings.Font.Italic,
		BoldItalic: settings.Font.BoldItalic,
		SizePt:     settings.Font.SizePt,
	}); err != nil {
		return err
	}

	lineHeight := int(settings.Font.SizePt / 72 * settings.Screen.DPI * float64(settings.Layout.LineCompression))
	paragraphSpacing := 0
	if settings.Layout.ExtraParagraphSpacing {
		paragraphSpacing = lineHeight / 2
	}
	alignment := layout.AlignLeft
	if settings.Layout.Justify {
		alignment = layout.AlignJustified
	}

	var writeErr error
	pageIndex := 0
	builder := section.NewPageBuilder(section.BuilderOptions{
		PageHeight:       settings.Screen.Height,
		LineHeight:       lineHeight,
		ParagraphSpacing: paragraphSpacing,
		MarginTop:        settings.Layout.MarginTop,
		MarginBottom:     settings.Layout.MarginBottom,
	}, func(p *section.Page) {
		if writeErr == nil {
			writeErr = store.WritePage(pageIndex, p)
		}
		pageIndex++
	})

	for _, paragraph := range splitParagraphs(string(data)) {
		pt := layout.NewParsedText(alignment, settings.Layout.ExtraParagraphSpacing, settings.Layout.Hyphenation)
		if layoutGreedy {
			pt.SetEngine(layout.EngineGreedy)
		}
		for _, word := range strings.Fields(paragraph) {
			pt.AddWord(word, layout.FontRegular)
		}
		pt.Layout(measurer, settings.Font.ID, settings.Layout.MarginLeft, settings.Layout.MarginRight,
			builder.AddLine, true)
		builder.EndParagraph()
	}
	builder.Flush()
	if writeErr != nil {
		return fmt.Errorf("write pages: %w", writeErr)
	}
	if err := store.WriteMetadata(params, builder.PageCount()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d pages written to %s\n", builder.PageCount(), outDir)
	return nil
}
