package summary

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/Harrison-Blair/tabletop-notetaker/internal/transcript"
)

const (
	docxFont     = "Calibri"
	docxFontSize = 11
)

var (
	reDocxHeading = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reDocxBold    = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reDocxBullet  = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
)

// WriteDocx renders the summary through the Markdown form and converts it
// to a styled Word document at outputPath.
func WriteDocx(data Data, t transcript.Transcript, outputPath string) error {
	md := RenderMarkdown(data, t)

	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	for _, line := range strings.Split(md, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if m := reDocxHeading.FindStringSubmatch(trimmed); m != nil {
			p := doc.AddParagraph("")
			run := p.AddText(stripInlineMarkdown(m[2])).Font(docxFont).Size(docxHeadingSize(len(m[1]))).Color("000000")
			run.Bold(true)
			continue
		}

		if m := reDocxBullet.FindStringSubmatch(trimmed); m != nil {
			p := doc.AddParagraph("")
			addSummaryText(p, "• "+m[1])
			continue
		}

		p := doc.AddParagraph("")
		addSummaryText(p, trimmed)
	}

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

func docxHeadingSize(level int) uint64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 14
	default:
		return docxFontSize
	}
}

// addSummaryText writes a paragraph, rendering **bold** spans as bold runs.
func addSummaryText(p *docx.Paragraph, text string) {
	parts := reDocxBold.Split(text, -1)
	matches := reDocxBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			p.AddText(stripInlineMarkdown(part)).Font(docxFont).Size(docxFontSize).Color("000000")
		}
		if i < len(matches) {
			p.AddText(stripInlineMarkdown(matches[i][1])).Font(docxFont).Size(docxFontSize).Color("000000").Bold(true)
		}
	}
}

func stripInlineMarkdown(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
