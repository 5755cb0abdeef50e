package cli

import "github.com/yaklabco/gotypeset/pkg/runner"

// Exit codes for gotypeset.
const (
	// ExitSuccess indicates every paragraph was set.
	ExitSuccess = 0

	// ExitInfeasible indicates some paragraphs could not be broken
	// within the threshold.
	ExitInfeasible = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code for a run.
func ExitCodeFromResult(result *runner.Result) int {
	if result == nil {
		return ExitSuccess
	}
	if result.Stats.FilesErrored > 0 {
		return ExitIOError
	}
	if result.HasInfeasible() {
		return ExitInfeasible
	}
	return ExitSuccess
}
