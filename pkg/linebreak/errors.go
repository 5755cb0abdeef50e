package linebreak

import "fmt"

// NoFeasibleSolutionError is returned when the active frontier empties
// before the forced final break is reached: no line ending at the failing
// position can be shrunk or stretched within the threshold. Recoverable;
// callers may retry with a larger threshold, a wider line, or hyphenation
// enabled.
type NoFeasibleSolutionError struct {
	// Position is the stream index of the breakpoint being considered
	// when the frontier emptied.
	Position int

	// Threshold is the adjustment-ratio threshold that was in effect.
	Threshold float64
}

func (e *NoFeasibleSolutionError) Error() string {
	return fmt.Sprintf("no feasible breakpoints at item %d (threshold %g); relax the threshold, widen the line, or enable hyphenation",
		e.Position, e.Threshold)
}

// TokenizationError is returned when an injected oracle misbehaves: a
// negative width, an empty syllable, or syllables that do not concatenate
// back to the word.
type TokenizationError struct {
	// Text is the word or fragment being tokenized.
	Text string

	// Reason describes the oracle failure.
	Reason string
}

func (e *TokenizationError) Error() string {
	return fmt.Sprintf("tokenize %q: %s", e.Text, e.Reason)
}

// InvariantViolationError indicates a malformed stream: a missing
// terminator trio or an unknown item variant. It is a caller bug, not a
// recoverable condition.
type InvariantViolationError struct {
	Reason string
}

func (e *InvariantViolationError) Error() string {
	return "invalid item stream: " + e.Reason
}
