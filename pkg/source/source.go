// Package source extracts justifiable paragraphs from input documents.
//
// A Paragraph carries the whitespace-normalized text of one paragraph
// together with its byte range in the original document, so a caller can
// splice reflowed text back in and leave everything else untouched.
package source

import (
	"bytes"
	"strings"
)

// Paragraph is one justifiable run of text.
type Paragraph struct {
	// Text is the paragraph content with interior whitespace collapsed.
	Text string

	// Start and Stop delimit the paragraph's bytes in the source
	// document, Stop exclusive.
	Start int
	Stop  int
}

// PlainText splits a document into paragraphs on blank lines.
func PlainText(content []byte) []Paragraph {
	var paragraphs []Paragraph

	offset := 0
	start := -1
	end := 0

	flush := func() {
		if start < 0 {
			return
		}
		text := normalize(content[start:end])
		if text != "" {
			paragraphs = append(paragraphs, Paragraph{Text: text, Start: start, Stop: end})
		}
		start = -1
	}

	for offset <= len(content) {
		lineEnd := bytes.IndexByte(content[offset:], '\n')
		var line []byte
		next := len(content) + 1
		if lineEnd >= 0 {
			line = content[offset : offset+lineEnd]
			next = offset + lineEnd + 1
		} else {
			line = content[offset:]
		}

		if len(bytes.TrimSpace(line)) == 0 {
			flush()
		} else {
			if start < 0 {
				start = offset
			}
			end = offset + len(line)
		}

		offset = next
	}
	flush()

	return paragraphs
}

// Splice rebuilds the document with each paragraph's range replaced by
// the corresponding replacement. Paragraphs must be in ascending order
// and non-overlapping, as produced by PlainText and Markdown. A nil
// entry in replacements leaves that paragraph as it was.
func Splice(content []byte, paragraphs []Paragraph, replacements [][]byte) []byte {
	var out bytes.Buffer
	prev := 0

	for i, p := range paragraphs {
		out.Write(content[prev:p.Start])
		if i < len(replacements) && replacements[i] != nil {
			out.Write(replacements[i])
		} else {
			out.Write(content[p.Start:p.Stop])
		}
		prev = p.Stop
	}
	out.Write(content[prev:])

	return out.Bytes()
}

// normalize collapses whitespace runs to single spaces.
func normalize(b []byte) string {
	return strings.Join(strings.Fields(string(b)), " ")
}
