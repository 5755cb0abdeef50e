package linebreak

// Line pairs the items of one typeset line with the breakpoint that ends
// it.
type Line struct {
	Items      []Item
	Breakpoint Breakpoint
}

// Lines is a thin wrapper over OptimumBreakpoints that slices the stream
// into per-line item runs. A line ending at a glue break excludes the
// breaking glue; a line ending at a penalty break includes the penalty, so
// a hyphen taken at the break lands on the line it ends.
func Lines(items []Item, opts Options) ([]Line, error) {
	chain, err := optimumChain(items, opts)
	if err != nil {
		return nil, err
	}

	lines := make([]Line, 0, len(chain)-1)
	for k := 1; k < len(chain); k++ {
		bp := chain[k]

		start := chain[k-1].Position + 1
		end := bp.Position
		if items[end].Kind == KindPenalty {
			bp.Position++
			end++
		}

		lines = append(lines, Line{
			Items:      items[start:end:end],
			Breakpoint: bp,
		})
	}

	return lines, nil
}
