package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gotypeset/pkg/runner"
	"github.com/yaklabco/gotypeset/pkg/typeset"
)

// FormatLine renders one justified line with a ratio gutter, colored by
// fitness class.
// Example: " +0.33 |lorem ipsum dolor sit|".
func (s *Styles) FormatLine(ln typeset.Line) string {
	gutter := s.Fitness(ln.FitnessClass).Render(fmt.Sprintf("%+6.2f", ln.Ratio))
	text := s.LineText.Render(ln.Text)
	return gutter + " " + s.Margin.Render("|") + text + s.Margin.Render("|")
}

// FormatParagraph renders a typeset paragraph, one line per row.
func (s *Styles) FormatParagraph(res *typeset.Result) string {
	var sb strings.Builder
	for _, ln := range res.Lines {
		sb.WriteString(s.FormatLine(ln))
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "12 paragraphs set into 48 lines (3 hyphenated) in 2 files".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.ParagraphsTotal == 0 {
		return s.Dim.Render(fmt.Sprintf("no paragraphs found (%d files checked)", stats.FilesDiscovered)) + "\n"
	}

	set := stats.ParagraphsTotal - stats.ParagraphsInfeasible
	msg := s.Success.Render(fmt.Sprintf("%d %s set into %d lines",
		set, pluralize(set, "paragraph", "paragraphs"), stats.LinesTotal))

	if stats.LinesHyphenated > 0 {
		msg += s.Dim.Render(fmt.Sprintf(" (%d hyphenated)", stats.LinesHyphenated))
	}

	msg += s.Dim.Render(fmt.Sprintf(" in %d %s",
		stats.FilesProcessed, pluralize(stats.FilesProcessed, "file", "files")))

	if stats.ParagraphsInfeasible > 0 {
		msg += ", " + s.Failure.Render(fmt.Sprintf("%d infeasible", stats.ParagraphsInfeasible))
	}
	if stats.FilesErrored > 0 {
		msg += ", " + s.Failure.Render(fmt.Sprintf("%d files errored", stats.FilesErrored))
	}

	return msg + "\n"
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
