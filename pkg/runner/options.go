// Package runner provides multi-file typesetting orchestration.
package runner

import "github.com/yaklabco/gotypeset/pkg/config"

// Options controls a multi-file run.
type Options struct {
	// Paths are the user-specified files or directories to process.
	// Empty defaults to the current working directory.
	Paths []string

	// WorkingDir resolves relative Paths. Empty means the process
	// working directory.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, leading dot)
	// considered input. Defaults to DefaultExtensions().
	Extensions []string

	// Jobs is the maximum number of concurrent workers. Zero or
	// negative means one per CPU.
	Jobs int

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// DefaultExtensions returns the input extensions processed by default.
func DefaultExtensions() []string {
	return []string{".txt", ".md", ".markdown"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
