package typeset

import (
	"math"
	"strings"

	"github.com/yaklabco/gotypeset/pkg/linebreak"
)

// assemble renders one line of items. In column mode every glue is
// adjusted by the line's ratio and rounded with error diffusion so the
// rendered line hits the target width exactly whenever widths are whole
// columns. A penalty taken at the end of the line contributes its hyphen.
func (t *Typesetter) assemble(ln linebreak.Line) Line {
	out := Line{
		Ratio:        ln.Breakpoint.Ratio,
		FitnessClass: ln.Breakpoint.FitnessClass,
	}

	var sb strings.Builder
	carry := 0.0

	for i, it := range ln.Items {
		last := i == len(ln.Items)-1

		switch it.Kind {
		case linebreak.KindBox:
			sb.WriteString(it.Content)
		case linebreak.KindGlue:
			if last {
				continue // trailing glue never renders
			}
			width := adjustedGlue(it.Width, it.Stretch, it.Shrink, out.Ratio)
			if t.columns {
				carry += width
				n := int(math.Round(carry))
				// Inter-word glue keeps at least one visible space;
				// zero-width glue renders nothing.
				if n < 1 && it.Width > 0 {
					n = 1
				}
				if n < 0 {
					n = 0
				}
				carry -= float64(n)
				sb.WriteString(strings.Repeat(" ", n))
			} else if it.Width > 0 {
				sb.WriteString(" ")
			}
		case linebreak.KindPenalty:
			if !last {
				continue // untaken break, renders nothing
			}
			if it.Width > 0 {
				sb.WriteString("-")
				out.Hyphenated = true
			} else if it.Flagged && !it.IsForcedBreak() {
				out.Hyphenated = true
			}
		}
	}

	out.Text = sb.String()
	return out
}

// adjustedGlue applies the adjustment ratio to one glue item. Infinite
// stretch (the paragraph's trailing glue) stays at natural width, which
// leaves the final line ragged-right.
func adjustedGlue(width, stretch, shrink, ratio float64) float64 {
	switch {
	case ratio > 0 && !math.IsInf(stretch, 1):
		return width + ratio*stretch
	case ratio < 0:
		return width + ratio*shrink
	default:
		return width
	}
}
