// Package linebreak implements Knuth-Plass total-fit paragraph breaking.
//
// A paragraph is modeled as a stream of items: boxes (unbreakable runs of
// glyphs with a fixed width), glue (flexible whitespace with stretch and
// shrink), and penalties (discretionary break points with a cost). The
// optimizer sweeps the stream once, maintains a frontier of candidate
// break nodes, and returns the chain of breakpoints that minimizes the
// total demerits over all lines.
package linebreak

import "math"

// ItemKind discriminates the three item variants.
type ItemKind uint8

const (
	KindBox ItemKind = iota
	KindGlue
	KindPenalty
)

// String returns the lowercase variant name.
func (k ItemKind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindGlue:
		return "glue"
	case KindPenalty:
		return "penalty"
	default:
		return "unknown"
	}
}

// Infinity is the penalty cost that forbids a break. Its negation forces one.
var Infinity = math.Inf(1)

// Item is one element of a paragraph stream. Kind selects which fields are
// meaningful; the zero values of the unused fields are harmless, so a single
// flat struct keeps stream scans branch-cheap.
type Item struct {
	Kind ItemKind

	// Width is the natural width of the item. For a penalty it is the
	// width added to the line when the break is taken (the hyphen).
	Width float64

	// Content is the text carried by a box.
	Content string

	// Stretch and Shrink are the flexibility of glue.
	Stretch float64
	Shrink  float64

	// Cost is the penalty value. +Inf forbids a break, -Inf forces one.
	Cost float64

	// Flagged marks a hyphen-style penalty. Two consecutive flagged
	// breaks incur an extra demerit.
	Flagged bool
}

// Box returns a box item.
func Box(width float64, content string) Item {
	return Item{Kind: KindBox, Width: width, Content: content}
}

// Glue returns a glue item.
func Glue(width, stretch, shrink float64) Item {
	return Item{Kind: KindGlue, Width: width, Stretch: stretch, Shrink: shrink}
}

// Penalty returns a penalty item.
func Penalty(width, cost float64, flagged bool) Item {
	return Item{Kind: KindPenalty, Width: width, Cost: cost, Flagged: flagged}
}

// IsForcedBreak reports whether the item is a penalty with cost -Inf.
func (it Item) IsForcedBreak() bool {
	return it.Kind == KindPenalty && math.IsInf(it.Cost, -1)
}

// ValidateStream checks the stream terminator invariant: every well-formed
// stream ends with Penalty(+Inf), Glue(0, +Inf, 0), Penalty(-Inf, width 0).
// The trio encodes "cannot break here, absorb trailing slack, force the
// final break". Returns an InvariantViolationError when the trio is absent.
func ValidateStream(items []Item) error {
	const trio = 3
	if len(items) < trio {
		return &InvariantViolationError{Reason: "stream shorter than its terminator"}
	}

	p1 := items[len(items)-3]
	g := items[len(items)-2]
	p2 := items[len(items)-1]

	if p1.Kind != KindPenalty || !math.IsInf(p1.Cost, 1) {
		return &InvariantViolationError{Reason: "terminator missing forbidding penalty"}
	}
	if g.Kind != KindGlue || g.Width != 0 || !math.IsInf(g.Stretch, 1) || g.Shrink != 0 {
		return &InvariantViolationError{Reason: "terminator missing infinite-stretch glue"}
	}
	if !p2.IsForcedBreak() || p2.Width != 0 {
		return &InvariantViolationError{Reason: "terminator missing forced break"}
	}

	return nil
}
