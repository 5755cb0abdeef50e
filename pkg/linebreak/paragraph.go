package linebreak

import "strings"

// WidthFunc measures the rendered width of a string for a fixed font
// configuration. It must be deterministic and return non-negative widths.
type WidthFunc func(string) float64

// HyphenateFunc splits a word into syllables whose concatenation equals
// the word. Returning a single-element slice declines to hyphenate.
type HyphenateFunc func(string) []string

// Inter-word glue uses the classical width:stretch:shrink ratios 1 : 1/2 : 1/3.
const (
	glueStretchDivisor = 2
	glueShrinkDivisor  = 3
)

// DefaultSentenceFactor scales the glue emitted after a sentence-ending
// word. The 1.5x figure follows traditional English spacing.
const DefaultSentenceFactor = 1.5

// ParagraphOptions controls tokenization.
type ParagraphOptions struct {
	// Indent, when positive, prepends an empty box of that width so the
	// paragraph's first legal break follows real content.
	Indent float64

	// Hyphenate enables automatic hyphenation of words that carry no
	// explicit hyphen.
	Hyphenate bool

	// Hyphenator supplies syllable splits when Hyphenate is set. Nil
	// means the identity oracle (no splits).
	Hyphenator HyphenateFunc

	// SentenceFactor scales inter-word glue after ".", "?" or "!".
	// Zero means DefaultSentenceFactor.
	SentenceFactor float64
}

// Paragraph converts text into an item stream using the width oracle.
//
// Words are produced by splitting on runs of whitespace. Explicit hyphens
// become zero-width flagged penalties between their syllable boxes; with
// hyphenation enabled, unhyphenated words are split by the oracle and the
// splits joined by flagged penalties of hyphen width. Consecutive words are
// separated by glue, widened after sentence-ending punctuation. The stream
// always ends with the terminator trio Penalty(+Inf), Glue(0, +Inf, 0),
// Penalty(-Inf).
func Paragraph(text string, measure WidthFunc, opts ParagraphOptions) ([]Item, error) {
	t := &paragraphTokenizer{measure: measure, opts: opts}
	return t.run(text)
}

type paragraphTokenizer struct {
	measure WidthFunc
	opts    ParagraphOptions
	items   []Item
}

func (t *paragraphTokenizer) run(text string) ([]Item, error) {
	if t.opts.Indent > 0 {
		t.items = append(t.items, Box(t.opts.Indent, ""))
	}

	words := strings.Fields(text)
	for i, word := range words {
		if i > 0 {
			t.emitInterWordGlue(words[i-1])
		}
		if err := t.emitWord(word); err != nil {
			return nil, err
		}
	}

	t.items = append(t.items,
		Penalty(0, Infinity, false),
		Glue(0, Infinity, 0),
		Penalty(0, -Infinity, true),
	)

	return t.items, nil
}

// emitInterWordGlue emits the glue separating prev from the next word.
func (t *paragraphTokenizer) emitInterWordGlue(prev string) {
	width := t.measure(" ")

	factor := 1.0
	if endsSentence(prev) {
		factor = t.opts.SentenceFactor
		if factor == 0 {
			factor = DefaultSentenceFactor
		}
	}

	width *= factor
	t.items = append(t.items, Glue(width, width/glueStretchDivisor, width/glueShrinkDivisor))
}

// emitWord emits the boxes and discretionary penalties for a single word.
func (t *paragraphTokenizer) emitWord(word string) error {
	syllables := strings.Split(word, "-")

	// Explicit hyphens: the hyphen stays visible in its box, so breaking
	// there is free. The zero-width flagged penalty marks the spot.
	for _, s := range syllables[:len(syllables)-1] {
		if err := t.emitBox(s + "-"); err != nil {
			return err
		}
		t.items = append(t.items, Penalty(0, 0, true))
	}

	final := syllables[len(syllables)-1]

	// Only words without explicit hyphens are handed to the oracle.
	if t.opts.Hyphenate && len(syllables) == 1 && t.opts.Hyphenator != nil {
		return t.emitHyphenated(final)
	}
	return t.emitBox(final)
}

// emitHyphenated splits word through the hyphenation oracle and joins the
// splits with flagged penalties of hyphen width.
func (t *paragraphTokenizer) emitHyphenated(word string) error {
	parts := t.opts.Hyphenator(word)
	if len(parts) == 0 {
		return &TokenizationError{Text: word, Reason: "hyphenation oracle returned no syllables"}
	}
	if len(parts) == 1 {
		return t.emitBox(word)
	}

	joined := ""
	for _, p := range parts {
		if p == "" {
			return &TokenizationError{Text: word, Reason: "hyphenation oracle returned an empty syllable"}
		}
		joined += p
	}
	if joined != word {
		return &TokenizationError{Text: word, Reason: "hyphenation oracle syllables do not reconstruct the word"}
	}

	hyphenWidth, err := t.widthOf("-")
	if err != nil {
		return err
	}

	for i, p := range parts {
		if i > 0 {
			t.items = append(t.items, Penalty(hyphenWidth, 0, true))
		}
		if err := t.emitBox(p); err != nil {
			return err
		}
	}
	return nil
}

func (t *paragraphTokenizer) emitBox(content string) error {
	width, err := t.widthOf(content)
	if err != nil {
		return err
	}
	t.items = append(t.items, Box(width, content))
	return nil
}

func (t *paragraphTokenizer) widthOf(s string) (float64, error) {
	width := t.measure(s)
	if width < 0 {
		return 0, &TokenizationError{Text: s, Reason: "width oracle returned a negative width"}
	}
	return width, nil
}

// endsSentence reports whether word carries sentence-ending punctuation.
func endsSentence(word string) bool {
	return strings.HasSuffix(word, ".") ||
		strings.HasSuffix(word, "?") ||
		strings.HasSuffix(word, "!")
}
