// Package typeset turns paragraph text into justified lines.
//
// A Typesetter couples a width oracle, an optional hyphenation oracle,
// and the breaking parameters. Setting a paragraph tokenizes it, runs
// the total-fit optimizer, and assembles output lines with the glue
// distributed according to each line's adjustment ratio.
package typeset

import (
	"fmt"
	"os"
	"strings"

	"github.com/yaklabco/gotypeset/pkg/config"
	"github.com/yaklabco/gotypeset/pkg/hyphen"
	"github.com/yaklabco/gotypeset/pkg/linebreak"
	"github.com/yaklabco/gotypeset/pkg/measure"
)

// Typesetter sets paragraphs against a fixed oracle and parameter set.
// Safe for concurrent use: every Set call owns its own optimizer state.
type Typesetter struct {
	oracle     measure.Oracle
	hyphenator linebreak.HyphenateFunc
	cfg        *config.Config

	// columns is true for the monospace oracle, where assembled lines
	// are padded with whole spaces.
	columns bool
}

// Line is one assembled output line.
type Line struct {
	// Text is the rendered line. In column mode inter-word spaces are
	// distributed to justify the line; in font mode words are joined
	// with single spaces and the metrics carry the justification.
	Text string

	// Ratio is the adjustment ratio of the line.
	Ratio float64

	// FitnessClass buckets the ratio (0 tight .. 3 very loose).
	FitnessClass int

	// Hyphenated is true when the line ends at a taken hyphenation
	// point.
	Hyphenated bool
}

// Result is one typeset paragraph.
type Result struct {
	Lines []Line

	// Demerits is the total cost of the chosen break chain.
	Demerits float64
}

// New builds a Typesetter from configuration: the width oracle from the
// font section, the hyphenation oracle from the pattern file and
// exception list.
func New(cfg *config.Config) (*Typesetter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	t := &Typesetter{cfg: cfg, columns: true}

	if cfg.Font.Path != "" {
		data, err := os.ReadFile(cfg.Font.Path)
		if err != nil {
			return nil, fmt.Errorf("read font: %w", err)
		}
		face, err := measure.NewFace(data, cfg.Font.Size, measure.DefaultDPI)
		if err != nil {
			return nil, err
		}
		t.oracle = face
		t.columns = false
	} else {
		t.oracle = measure.Monospace(1)
	}

	if cfg.Hyphenate && (cfg.Patterns != "" || len(cfg.Exceptions) > 0) {
		h, err := loadHyphenator(cfg)
		if err != nil {
			return nil, err
		}
		t.hyphenator = h.Hyphenate
	}

	return t, nil
}

// NewWithOracles builds a Typesetter around explicit oracles, for
// callers that do not go through configuration files.
func NewWithOracles(cfg *config.Config, oracle measure.Oracle, hyphenator linebreak.HyphenateFunc, columns bool) (*Typesetter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Typesetter{cfg: cfg, oracle: oracle, hyphenator: hyphenator, columns: columns}, nil
}

func loadHyphenator(cfg *config.Config) (*hyphen.Hyphenator, error) {
	var patterns []string
	if cfg.Patterns != "" {
		data, err := os.ReadFile(cfg.Patterns)
		if err != nil {
			return nil, fmt.Errorf("read patterns: %w", err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "%") {
				continue
			}
			patterns = append(patterns, line)
		}
	}
	return hyphen.New(patterns, cfg.Exceptions)
}

// Set breaks one paragraph into justified lines.
func (t *Typesetter) Set(text string) (*Result, error) {
	items, err := linebreak.Paragraph(text, t.oracle.Width, linebreak.ParagraphOptions{
		Indent:         t.cfg.Indent,
		Hyphenate:      t.cfg.Hyphenate,
		Hyphenator:     t.hyphenator,
		SentenceFactor: t.cfg.SentenceFactor,
	})
	if err != nil {
		return nil, err
	}

	lines, err := linebreak.Lines(items, linebreak.Options{
		Width:          t.cfg.Width,
		Threshold:      t.cfg.Threshold,
		FlaggedPenalty: t.cfg.FlaggedPenalty,
		FitnessPenalty: t.cfg.FitnessPenalty,
	})
	if err != nil {
		return nil, err
	}

	result := &Result{Lines: make([]Line, 0, len(lines))}
	for _, ln := range lines {
		result.Lines = append(result.Lines, t.assemble(ln))
		result.Demerits = ln.Breakpoint.TotalDemerits
	}

	return result, nil
}

// Width returns the oracle width of s, for callers sizing indents in the
// same unit as the typesetter.
func (t *Typesetter) Width(s string) float64 {
	return t.oracle.Width(s)
}
