package source

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Markdown extracts the top-level paragraphs of a Markdown document.
// Headings, code fences, lists, tables, and anything nested stay out of
// the result, so reflowing the returned paragraphs cannot disturb
// block structure or indentation.
func Markdown(content []byte) []Paragraph {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	doc := md.Parser().Parse(text.NewReader(content))

	var paragraphs []Paragraph

	for child := doc.FirstChild(); child != nil; child = child.NextSibling() {
		p, ok := child.(*ast.Paragraph)
		if !ok || p.Lines().Len() == 0 {
			continue
		}

		lines := p.Lines()
		start := lines.At(0).Start
		stop := lines.At(lines.Len() - 1).Stop

		paragraphs = append(paragraphs, Paragraph{
			Text:  normalize(content[start:stop]),
			Start: start,
			Stop:  stop,
		})
	}

	return paragraphs
}
