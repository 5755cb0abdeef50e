// Package cli provides the Cobra command structure for gotypeset.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/gotypeset/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root gotypeset command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "gotypeset",
		Short: "A Knuth-Plass paragraph justifier",
		Long: `gotypeset justifies paragraphs with the Knuth-Plass total-fit
line breaking algorithm, the one TeX uses: instead of filling each line
greedily it considers the paragraph as a whole and picks the set of
breakpoints with the least total demerits.

It reads plain text or Markdown, reflows each paragraph to the target
width, and can hyphenate through Liang-style pattern files.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newFmtCommand())
	rootCmd.AddCommand(newItemsCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
