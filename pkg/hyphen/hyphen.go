// Package hyphen implements Knuth-Liang pattern hyphenation.
//
// Patterns use the TeX format: letters interleaved with digits, where a
// digit scores the inter-letter position it precedes and "." anchors a
// pattern to a word boundary ("hy3ph", ".in1", "n2at"). Applying a word
// takes the maximum digit every matching pattern assigns to each
// position; odd totals mark break opportunities.
package hyphen

import (
	"fmt"
	"strings"
)

// Default break distance from the word edges.
const (
	DefaultLeftMin  = 2
	DefaultRightMin = 3
)

// Hyphenator splits words into syllables using a pattern set.
// Safe for concurrent use once built; application only reads the tables.
type Hyphenator struct {
	// LeftMin and RightMin are the minimum number of letters that must
	// remain before the first and after the last break.
	LeftMin  int
	RightMin int

	patterns   map[string][]uint8
	exceptions map[string][]int
}

// New builds a Hyphenator from TeX-format patterns and exceptions.
// Exceptions are words with hyphens marking their breaks ("ta-ble") and
// take precedence over pattern scoring.
func New(patterns []string, exceptions []string) (*Hyphenator, error) {
	h := &Hyphenator{
		LeftMin:    DefaultLeftMin,
		RightMin:   DefaultRightMin,
		patterns:   make(map[string][]uint8, len(patterns)),
		exceptions: make(map[string][]int, len(exceptions)),
	}

	for _, p := range patterns {
		key, scores, err := parsePattern(p)
		if err != nil {
			return nil, err
		}
		h.patterns[key] = scores
	}

	for _, e := range exceptions {
		word := strings.ReplaceAll(e, "-", "")
		var breaks []int
		pos := 0
		for _, r := range e {
			if r == '-' {
				breaks = append(breaks, pos)
				continue
			}
			pos++
		}
		h.exceptions[strings.ToLower(word)] = breaks
	}

	return h, nil
}

// parsePattern splits a TeX pattern into its letter key and the score
// each inter-letter position receives. The score slice has one entry per
// gap, including the gaps before the first and after the last letter.
func parsePattern(p string) (string, []uint8, error) {
	if p == "" {
		return "", nil, fmt.Errorf("parse pattern: empty pattern")
	}

	var letters []rune
	var scores []uint8
	pending := uint8(0)

	for _, r := range p {
		if r >= '0' && r <= '9' {
			pending = uint8(r - '0')
			continue
		}
		letters = append(letters, r)
		scores = append(scores, pending)
		pending = 0
	}
	scores = append(scores, pending)

	if len(letters) == 0 {
		return "", nil, fmt.Errorf("parse pattern %q: no letters", p)
	}

	return string(letters), scores, nil
}

// Hyphenate splits word into syllables whose concatenation equals the
// word. A word too short to break, or one with no odd-scored positions,
// comes back whole. The signature satisfies the tokenizer's hyphenation
// oracle contract.
func (h *Hyphenator) Hyphenate(word string) []string {
	runes := []rune(word)
	if len(runes) < h.LeftMin+h.RightMin {
		return []string{word}
	}

	breaks := h.breakPositions(runes)
	if len(breaks) == 0 {
		return []string{word}
	}

	syllables := make([]string, 0, len(breaks)+1)
	prev := 0
	for _, b := range breaks {
		syllables = append(syllables, string(runes[prev:b]))
		prev = b
	}
	syllables = append(syllables, string(runes[prev:]))

	return syllables
}

// breakPositions returns the rune offsets the word may break at, in
// ascending order.
func (h *Hyphenator) breakPositions(runes []rune) []int {
	lower := strings.ToLower(string(runes))

	if breaks, ok := h.exceptions[lower]; ok {
		return breaks
	}

	// Dotted form anchors boundary patterns.
	w := []rune("." + lower + ".")
	scores := make([]uint8, len(w)+1)

	for i := 0; i < len(w); i++ {
		for j := i + 1; j <= len(w); j++ {
			pat, ok := h.patterns[string(w[i:j])]
			if !ok {
				continue
			}
			for d, s := range pat {
				if s > scores[i+d] {
					scores[i+d] = s
				}
			}
		}
	}

	var breaks []int
	for k := 2; k < len(w)-1; k++ {
		if scores[k]%2 == 0 {
			continue
		}
		// Gap k sits after letter k-1 of the bare word.
		pos := k - 1
		if pos < h.LeftMin || len(runes)-pos < h.RightMin {
			continue
		}
		breaks = append(breaks, pos)
	}

	return breaks
}
