package linebreak

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParagraph(t *testing.T, text string, opts ParagraphOptions) []Item {
	t.Helper()
	items, err := Paragraph(text, runeWidth, opts)
	require.NoError(t, err)
	return items
}

func TestOptimumBreakpoints_SingleInteriorBreak(t *testing.T) {
	// Two boxes of width 5 and a target of 5: the glue break after the
	// first box fits exactly, ratio 0, demerits 1; the forced final break
	// adds another 1.
	items := []Item{
		Box(5, "aaaaa"),
		Glue(1, 0.5, 1.0/3),
		Box(5, "bbbbb"),
	}
	items = append(items, terminator()...)

	chain, err := OptimumBreakpoints(items, Options{Width: 5})
	require.NoError(t, err)

	// Sentinel, the interior break, the forced final break.
	require.Len(t, chain, 3)

	assert.Equal(t, -1, chain[0].Position)
	assert.Equal(t, 0, chain[0].Line)

	interior := chain[1]
	assert.Equal(t, 1, interior.Position)
	assert.Equal(t, 1, interior.Line)
	assert.InDelta(t, 0, interior.Ratio, 1e-9)
	assert.InDelta(t, 1, interior.TotalDemerits, 1e-9)
	assert.Equal(t, FitNormal, interior.FitnessClass)

	final := chain[2]
	assert.Equal(t, 2, final.Line)
	// The final line is absorbed by the infinite-stretch glue, ratio 0.
	assert.InDelta(t, 0, final.Ratio, 1e-9)
	assert.InDelta(t, 2, final.TotalDemerits, 1e-9)
	// Forced break position is advanced past the penalty item.
	assert.Equal(t, len(items), final.Position)
}

func TestOptimumBreakpoints_LegalPositions(t *testing.T) {
	text := strings.Repeat("bork bork bork. ", 6) + "bork"
	items := mustParagraph(t, text, ParagraphOptions{})

	chain, err := OptimumBreakpoints(items, Options{Width: 24})
	require.NoError(t, err)
	require.Greater(t, len(chain), 2)

	for _, bp := range chain[1:] {
		pos := bp.Position
		// After post-processing a break position is either a glue
		// preceded by a box, or points just past a finite penalty.
		legalGlue := pos < len(items) &&
			items[pos].Kind == KindGlue && items[pos-1].Kind == KindBox
		legalPenalty := items[pos-1].Kind == KindPenalty && !math.IsInf(items[pos-1].Cost, 1)
		assert.True(t, legalGlue || legalPenalty, "position %d is not a legal break", pos)
	}
}

func TestOptimumBreakpoints_ChainContiguous(t *testing.T) {
	items := mustParagraph(t, strings.Repeat("sphinx of black quartz judge my vow ", 4), ParagraphOptions{})

	chain, err := OptimumBreakpoints(items, Options{Width: 30})
	require.NoError(t, err)

	assert.Equal(t, 0, chain[0].Line)
	assert.Equal(t, -1, chain[0].Position)
	for k := 1; k < len(chain); k++ {
		assert.Equal(t, chain[k-1].Line+1, chain[k].Line)
		assert.Greater(t, chain[k].Position, chain[k-1].Position)
	}
}

func TestOptimumBreakpoints_Idempotent(t *testing.T) {
	items := mustParagraph(t, strings.Repeat("pack my box with five dozen liquor jugs ", 3), ParagraphOptions{})

	first, err := OptimumBreakpoints(items, Options{Width: 26})
	require.NoError(t, err)
	second, err := OptimumBreakpoints(items, Options{Width: 26})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestOptimumBreakpoints_NoFeasibleSolution(t *testing.T) {
	// Words far wider than the line, nothing to shrink: the frontier
	// empties once the sentinel is deactivated.
	items := mustParagraph(t, "incomprehensibilities incomprehensibilities incomprehensibilities", ParagraphOptions{})

	_, err := OptimumBreakpoints(items, Options{Width: 5, Threshold: 1})
	require.Error(t, err)

	var nf *NoFeasibleSolutionError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, 1.0, nf.Threshold)
}

func TestOptimumBreakpoints_RecoversWithRelaxedParameters(t *testing.T) {
	items := mustParagraph(t, "one two three four five six", ParagraphOptions{})

	_, err := OptimumBreakpoints(items, Options{Width: 10, Threshold: 0.1})
	require.Error(t, err)

	chain, err := OptimumBreakpoints(items, Options{Width: 10, Threshold: 10})
	require.NoError(t, err)
	assert.Greater(t, len(chain), 2)
}

func TestOptimumBreakpoints_MalformedStream(t *testing.T) {
	_, err := OptimumBreakpoints([]Item{Box(3, "foo")}, Options{Width: 10})

	var iv *InvariantViolationError
	require.ErrorAs(t, err, &iv)
}

func TestOptimumBreakpoints_HyphenBreakTaken(t *testing.T) {
	// At width 12 the cheapest first line is "in self-", taken at the
	// explicit hyphen's flagged penalty; "defence only" then fits the
	// second line exactly.
	items := mustParagraph(t, "in self-defence only", ParagraphOptions{})

	lines, err := Lines(items, Options{Width: 12, Threshold: 20})
	require.NoError(t, err)
	require.Len(t, lines, 2)

	first := lines[0]
	last := first.Items[len(first.Items)-1]
	assert.Equal(t, KindPenalty, last.Kind)
	assert.True(t, last.Flagged)
	assert.Equal(t, "in", first.Items[0].Content)
	assert.Equal(t, "self-", first.Items[2].Content)

	second := lines[1]
	assert.Equal(t, "defence", second.Items[0].Content)
	assert.InDelta(t, 0, second.Breakpoint.Ratio, 1e-9)
}

func TestFitnessClass(t *testing.T) {
	tests := []struct {
		ratio float64
		want  int
	}{
		{-2, FitTight},
		{-0.51, FitTight},
		{-0.5, FitNormal},
		{0, FitNormal},
		{0.49, FitNormal},
		{0.5, FitLoose},
		{0.99, FitLoose},
		{1, FitVeryLoose},
		{4, FitVeryLoose},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, fitnessClass(tt.ratio), "ratio %g", tt.ratio)
	}
}

func TestDemerits_FitnessJumpBothDirections(t *testing.T) {
	o := &optimizer{
		items: append([]Item{Box(1, "x")}, terminator()...),
		opts:  Options{Width: 10}.withDefaults(),
	}

	// Scoring at the glue index keeps the penalty terms out of the picture.
	tightToVeryLoose := o.demerits(Breakpoint{Position: 0, FitnessClass: FitTight}, 2, 2)
	sameClass := o.demerits(Breakpoint{Position: 0, FitnessClass: FitVeryLoose}, 2, 2)
	assert.InDelta(t, DefaultFitnessPenalty, tightToVeryLoose-sameClass, 1e-9)

	veryLooseToNormal := o.demerits(Breakpoint{Position: 0, FitnessClass: FitVeryLoose}, 2, 0)
	normal := o.demerits(Breakpoint{Position: 0, FitnessClass: FitNormal}, 2, 0)
	assert.InDelta(t, DefaultFitnessPenalty, veryLooseToNormal-normal, 1e-9)
}

func TestDemerits_FlaggedCoupling(t *testing.T) {
	items := []Item{
		Box(3, "foo"),
		Penalty(1, 0, true),
		Box(3, "bar"),
		Penalty(1, 0, true),
	}
	items = append(items, terminator()...)

	o := &optimizer{items: items, opts: Options{Width: 10}.withDefaults()}

	coupled := o.demerits(Breakpoint{Position: 1, FitnessClass: FitNormal}, 3, 0)
	uncoupled := o.demerits(Breakpoint{Position: 0, FitnessClass: FitNormal}, 3, 0)
	assert.InDelta(t, DefaultFlaggedPenalty, coupled-uncoupled, 1e-9)
}

func TestLines_SliceBoundaries(t *testing.T) {
	items := mustParagraph(t, "one two three four five six seven eight", ParagraphOptions{})

	lines, err := Lines(items, Options{Width: 13})
	require.NoError(t, err)
	require.Greater(t, len(lines), 1)

	// No line starts or ends with inter-word glue, and the full set of
	// boxes is preserved in order.
	var got []string
	for _, ln := range lines {
		require.NotEmpty(t, ln.Items)
		assert.NotEqual(t, KindGlue, ln.Items[0].Kind)
		if last := ln.Items[len(ln.Items)-1]; last.Kind == KindGlue {
			assert.True(t, math.IsInf(last.Stretch, 1), "only the terminator glue may end a line")
		}
		for _, it := range ln.Items {
			if it.Kind == KindBox {
				got = append(got, it.Content)
			}
		}
	}
	assert.Equal(t, []string{"one", "two", "three", "four", "five", "six", "seven", "eight"}, got)

	// Line numbering ascends from 1.
	for i, ln := range lines {
		assert.Equal(t, i+1, ln.Breakpoint.Line)
	}
}

// chainScorer recomputes the total demerits of an arbitrary chain of raw
// break positions, independently of the optimizer's bookkeeping.
type chainScorer struct {
	items []Item
	opts  Options
	at    [][3]float64 // running sums before each index
}

func newChainScorer(items []Item, opts Options) *chainScorer {
	at := make([][3]float64, len(items)+1)
	for i, it := range items {
		at[i+1] = at[i]
		switch it.Kind {
		case KindBox:
			at[i+1][0] += it.Width
		case KindGlue:
			at[i+1][0] += it.Width
			at[i+1][1] += it.Stretch
			at[i+1][2] += it.Shrink
		}
	}
	return &chainScorer{items: items, opts: opts.withDefaults(), at: at}
}

func (s *chainScorer) after(p int) (w, y, z float64) {
	if p < 0 {
		return 0, 0, 0
	}
	w, y, z = s.at[p][0], s.at[p][1], s.at[p][2]
	for i := p; i < len(s.items); i++ {
		it := s.items[i]
		switch it.Kind {
		case KindGlue:
			w += it.Width
			y += it.Stretch
			z += it.Shrink
		case KindBox:
			return
		case KindPenalty:
			if it.IsForcedBreak() && i > p {
				return
			}
		}
	}
	return
}

func (s *chainScorer) ratio(prev, pos int) float64 {
	w, y, z := s.after(prev)
	width := s.at[pos][0] - w
	if it := s.items[pos]; it.Kind == KindPenalty {
		width += it.Width
	}
	target := s.opts.Width
	switch {
	case width < target:
		if stretch := s.at[pos][1] - y; stretch > 0 {
			return (target - width) / stretch
		}
		return math.Inf(1)
	case width > target:
		if shrink := s.at[pos][2] - z; shrink > 0 {
			return (target - width) / shrink
		}
		return math.Inf(1)
	default:
		return 0
	}
}

// score returns the total demerits of the chain, or false if any line
// falls outside [-1, threshold].
func (s *chainScorer) score(positions []int) (float64, bool) {
	total := 0.0
	prev := -1
	prevClass := FitNormal
	for _, pos := range positions {
		r := s.ratio(prev, pos)
		if r < -1 || r > s.opts.Threshold {
			return 0, false
		}

		it := s.items[pos]
		badness := 1 + 100*math.Pow(math.Abs(r), 3)
		var d float64
		switch {
		case it.Kind == KindPenalty && it.Cost >= 0:
			d = (badness + it.Cost) * (badness + it.Cost)
		case it.Kind == KindPenalty && !math.IsInf(it.Cost, -1):
			d = badness*badness - it.Cost*it.Cost
		default:
			d = badness * badness
		}
		if it.Kind == KindPenalty && it.Flagged && prev >= 0 {
			if p := s.items[prev]; p.Kind == KindPenalty && p.Flagged {
				d += s.opts.FlaggedPenalty
			}
		}
		if c := fitnessClass(r); absInt(c-prevClass) > 1 {
			d += s.opts.FitnessPenalty
		}

		total += d
		prevClass = fitnessClass(r)
		prev = pos
	}
	return total, true
}

// legalPositions enumerates every legal raw breakpoint of the stream.
func legalPositions(items []Item) []int {
	var legal []int
	for i, it := range items {
		switch it.Kind {
		case KindGlue:
			if i > 0 && items[i-1].Kind == KindBox {
				legal = append(legal, i)
			}
		case KindPenalty:
			if !math.IsInf(it.Cost, 1) {
				legal = append(legal, i)
			}
		}
	}
	return legal
}

// rawPositions recovers pre-post-processing positions from a returned
// chain: a glue break keeps its position, a penalty break was advanced.
func rawPositions(items []Item, chain []Breakpoint) []int {
	raw := make([]int, 0, len(chain)-1)
	for _, bp := range chain[1:] {
		pos := bp.Position
		if pos >= len(items) || items[pos].Kind != KindGlue || items[pos-1].Kind != KindBox {
			pos--
		}
		raw = append(raw, pos)
	}
	return raw
}

func TestOptimumBreakpoints_LocalOptimality(t *testing.T) {
	// Substituting any single interior breakpoint with another legal,
	// feasible position must not reduce the total demerits.
	rng := rand.New(rand.NewSource(42))
	vocab := []string{"a", "on", "fox", "word", "glyph", "letter", "quality", "typeface", "para-graph"}

	for trial := 0; trial < 25; trial++ {
		n := 8 + rng.Intn(18)
		words := make([]string, n)
		for i := range words {
			words[i] = vocab[rng.Intn(len(vocab))]
		}
		text := strings.Join(words, " ")

		items := mustParagraph(t, text, ParagraphOptions{})
		opts := Options{Width: float64(14 + rng.Intn(16))}

		chain, err := OptimumBreakpoints(items, opts)
		if err != nil {
			continue // infeasible paragraph for this width
		}

		scorer := newChainScorer(items, opts)
		raw := rawPositions(items, chain)

		optTotal, ok := scorer.score(raw)
		require.True(t, ok, "optimizer chain must be feasible: %q width %g", text, opts.Width)
		require.InDelta(t, chain[len(chain)-1].TotalDemerits, optTotal, 1e-6,
			"independent scorer disagrees with optimizer: %q width %g", text, opts.Width)

		legal := legalPositions(items)
		for j := 0; j < len(raw)-1; j++ {
			lo := -1
			if j > 0 {
				lo = raw[j-1]
			}
			hi := raw[j+1]
			for _, q := range legal {
				if q <= lo || q >= hi || q == raw[j] {
					continue
				}
				alt := append(append([]int{}, raw[:j]...), q)
				alt = append(alt, raw[j+1:]...)
				if altTotal, feasible := scorer.score(alt); feasible {
					assert.GreaterOrEqual(t, altTotal+1e-9, optTotal,
						"substituting break %d -> %d improved %q at width %g", raw[j], q, text, opts.Width)
				}
			}
		}
	}
}
