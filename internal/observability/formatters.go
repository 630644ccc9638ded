// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/stylesense/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 6
)

// Printer handles formatted, boxed output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		for _, piece := range boxLines(line, boxWidth-4) {
			fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, piece)
		}
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCategories outputs the category list, numbered in display order.
func (p *Printer) PrintCategories(categories []types.OutfitCategory) {
	if len(categories) == 0 {
		return
	}

	var sb strings.Builder
	for i, c := range categories {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, c))
	}

	p.printBox("OUTFIT CATEGORIES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintOutfits outputs a category-exact result: the primary record then each variant.
func (p *Printer) PrintOutfits(result types.CategoryOutfits) {
	var sb strings.Builder
	writeRecord(&sb, result.Primary)

	if len(result.Additional) > 0 {
		sb.WriteString(fmt.Sprintf("\nMore %s looks:\n", result.Category))
		for _, rec := range result.Additional {
			sb.WriteString("\n")
			writeRecord(&sb, rec)
		}
	}

	p.printBox(strings.ToUpper(result.Category.String())+" OUTFITS", strings.TrimSuffix(sb.String(), "\n"))
}

func writeRecord(sb *strings.Builder, rec types.OutfitRecord) {
	if rec.Name != "" {
		sb.WriteString(fmt.Sprintf("%s\n", rec.Name))
	}
	sb.WriteString(fmt.Sprintf("%s\n", rec.Description))
	count := min(len(rec.Items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", rec.Items[i]))
	}
	if len(rec.Items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(rec.Items)-maxItemsToShow))
	}
	sb.WriteString(fmt.Sprintf("  Image: %s\n", rec.ImageURL))
}

// PrintSuggestion outputs an attribute-driven recommendation.
func (p *Printer) PrintSuggestion(s types.Suggestion) {
	var sb strings.Builder

	sb.WriteString("Clothing:\n")
	for _, item := range s.ClothingItems {
		sb.WriteString(fmt.Sprintf("  • %s\n", item))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Colors:  %s\n", strings.Join(s.RecommendedColors, ", ")))
	sb.WriteString(fmt.Sprintf("Weather: %s\n", s.WeatherSuitability))
	sb.WriteString("\nTips:\n")
	sb.WriteString(wrap(s.StyleTips, boxWidth-6, "  "))

	p.printBox(strings.ToUpper(s.OutfitName), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReference outputs the skin tone color table and body type guides.
func (p *Printer) PrintReference(palettes []types.SkinTonePalette, guides []types.BodyTypeGuide) {
	if len(palettes) > 0 {
		var sb strings.Builder
		for _, pal := range palettes {
			sb.WriteString(fmt.Sprintf("%s\n", pal.SkinTone))
			sb.WriteString(wrap(strings.Join(pal.Colors, ", "), boxWidth-6, "  "))
		}
		p.printBox("COLORS BY SKIN TONE", strings.TrimSuffix(sb.String(), "\n"))
	}

	if len(guides) > 0 {
		var sb strings.Builder
		for i, g := range guides {
			sb.WriteString(fmt.Sprintf("%s\n", g.BodyType))
			for _, do := range g.Dos {
				sb.WriteString(fmt.Sprintf("  + %s\n", do))
			}
			for _, dont := range g.Donts {
				sb.WriteString(fmt.Sprintf("  - %s\n", dont))
			}
			if i < len(guides)-1 {
				sb.WriteString("\n")
			}
		}
		p.printBox("STYLE GUIDE BY BODY TYPE", strings.TrimSuffix(sb.String(), "\n"))
	}
}

// wrap breaks text into lines no wider than width runes, each with indent.
func wrap(text string, width int, indent string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var sb strings.Builder
	line := indent
	for _, w := range words {
		n := utf8.RuneCountInString(line)
		if n > len(indent) && n+1+utf8.RuneCountInString(w) > width {
			sb.WriteString(line + "\n")
			line = indent
		}
		if len(line) > len(indent) {
			line += " "
		}
		line += w
	}
	sb.WriteString(line + "\n")
	return sb.String()
}

// boxLines splits a line wider than width runes at word boundaries.
// Continuation lines are indented two past the original indent; words
// longer than a line are split between runes.
func boxLines(line string, width int) []string {
	if utf8.RuneCountInString(line) <= width {
		return []string{line}
	}

	body := strings.TrimLeft(line, " ")
	indent := len(line) - len(body)
	cont := []rune(strings.Repeat(" ", min(indent+2, width/2)))

	var lines []string
	cur := []rune(line[:indent])
	start := len(cur)
	flush := func() {
		lines = append(lines, string(cur))
		cur = slices.Clone(cont)
		start = len(cur)
	}

	for _, word := range strings.Fields(body) {
		w := []rune(word)
		if len(cur) > start && len(cur)+1+len(w) > width {
			flush()
		}
		if len(cur) > start {
			cur = append(cur, ' ')
		}
		for len(cur)+len(w) > width {
			n := width - len(cur)
			if n <= 0 {
				flush()
				continue
			}
			cur = append(cur, w[:n]...)
			w = w[n:]
			flush()
		}
		cur = append(cur, w...)
	}
	if len(cur) > start {
		lines = append(lines, string(cur))
	}
	return lines
}
