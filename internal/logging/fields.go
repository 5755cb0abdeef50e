// Package logging provides a structured logging wrapper around
// charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"

	// Typesetting fields.
	FieldWidth      = "width"
	FieldThreshold  = "threshold"
	FieldHyphenate  = "hyphenate"
	FieldFont       = "font"
	FieldJobs       = "jobs"
	FieldParagraphs = "paragraphs"
	FieldLines      = "lines"
	FieldInfeasible = "infeasible"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
