package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/gotypeset/internal/logging"
	"github.com/yaklabco/gotypeset/internal/ui/pretty"
	"github.com/yaklabco/gotypeset/pkg/config"
	"github.com/yaklabco/gotypeset/pkg/fsutil"
	"github.com/yaklabco/gotypeset/pkg/runner"
	"github.com/yaklabco/gotypeset/pkg/typeset"
)

// ErrInfeasibleFound is returned when paragraphs could not be set; it is
// a signal for the exit code, not a loggable failure.
var ErrInfeasibleFound = errors.New("infeasible paragraphs found")

type fmtFlags struct {
	width          float64
	threshold      float64
	indent         float64
	sentenceFactor float64
	hyphenate      bool
	patterns       string
	fontPath       string
	fontSize       float64
	format         string
	jobs           int
	inPlace        bool
}

func newFmtCommand() *cobra.Command {
	flags := &fmtFlags{}

	cmd := &cobra.Command{
		Use:   "fmt [paths...]",
		Short: "Justify paragraphs in text and Markdown files",
		Long:  fmtLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, args, flags)
		},
	}

	addFmtFlags(cmd, flags)

	return cmd
}

const fmtLongDescription = `Justify paragraphs to a target width using total-fit line breaking.

By default, processes all .txt, .md and .markdown files in the current
directory and subdirectories, writing the reflowed documents to stdout.
Markdown block structure (headings, lists, code fences) passes through
untouched.

Examples:
  gotypeset fmt                     # Justify current directory to stdout
  gotypeset fmt README.md           # Justify a single file
  gotypeset fmt --width 60 notes/   # 60-column lines
  gotypeset fmt --in-place docs/    # Rewrite files atomically
  gotypeset fmt --hyphenate --patterns hyph-en.pat
  gotypeset fmt --format json       # Machine-readable run report`

func runFmt(cmd *cobra.Command, args []string, flags *fmtFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	cfg, err := config.Load(configPath, workDir)
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	applyFmtFlags(cmd, cfg, flags)

	if cfg.Width == 0 {
		cfg.Width = detectWidth()
		logger.Debug("detected terminal width", logging.FieldWidth, cfg.Width)
	}

	if err := cfg.Validate(); err != nil {
		return errors.Join(errors.New("invalid configuration"), err)
	}

	logger.Debug("configuration loaded",
		logging.FieldWidth, cfg.Width,
		logging.FieldThreshold, cfg.Threshold,
		logging.FieldHyphenate, cfg.Hyphenate,
		logging.FieldJobs, cfg.Jobs,
	)

	ts, err := typeset.New(cfg)
	if err != nil {
		return errors.Join(errors.New("failed to build typesetter"), err)
	}

	run := runner.New(ts)
	result, err := run.Run(ctx, runner.Options{
		Paths:      args,
		WorkingDir: workDir,
		Jobs:       cfg.Jobs,
		Config:     cfg,
	})
	if err != nil {
		return errors.Join(errors.New("run failed"), err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	if err := writeFmtOutput(cmd, cfg, result, colorMode); err != nil {
		return err
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.ErrOrStderr()))
	fmt.Fprint(cmd.ErrOrStderr(), styles.FormatSummaryOneLine(result.Stats))

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrInfeasibleFound
	}

	return nil
}

func writeFmtOutput(cmd *cobra.Command, cfg *config.Config, result *runner.Result, colorMode string) error {
	switch {
	case cfg.InPlace:
		for _, f := range result.Files {
			if f.Error != nil {
				continue
			}
			if err := fsutil.WriteAtomic(cmd.Context(), f.Path, f.Output, 0); err != nil {
				return fmt.Errorf("rewrite %s: %w", f.Path, err)
			}
		}
		return nil

	case cfg.Format == config.FormatJSON:
		return writeJSONReport(cmd, result)

	default:
		styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))
		out := cmd.OutOrStdout()
		for _, f := range result.Files {
			if f.Error != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), styles.Failure.Render(f.Error.Error()))
				continue
			}
			if len(result.Files) > 1 {
				fmt.Fprintln(out, styles.FilePath.Render(f.Path))
			}
			if _, err := out.Write(f.Output); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}
		return nil
	}
}

// jsonReport is the machine-readable run summary.
type jsonReport struct {
	Files []jsonFile   `json:"files"`
	Stats runner.Stats `json:"stats"`
}

type jsonFile struct {
	Path       string                   `json:"path"`
	Error      string                   `json:"error,omitempty"`
	Paragraphs []runner.ParagraphResult `json:"paragraphs,omitempty"`
	Output     string                   `json:"output,omitempty"`
}

func writeJSONReport(cmd *cobra.Command, result *runner.Result) error {
	report := jsonReport{Stats: result.Stats, Files: make([]jsonFile, 0, len(result.Files))}
	for _, f := range result.Files {
		jf := jsonFile{Path: f.Path, Paragraphs: f.Paragraphs, Output: string(f.Output)}
		if f.Error != nil {
			jf.Error = f.Error.Error()
			jf.Output = ""
		}
		report.Files = append(report.Files, jf)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

// detectWidth falls back to 72 columns when stdout is not a terminal.
func detectWidth() float64 {
	if cols, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && cols > 0 {
		return float64(cols)
	}
	return 72
}

func applyFmtFlags(cmd *cobra.Command, cfg *config.Config, flags *fmtFlags) {
	// Only override values explicitly provided on the command line.
	if cmd.Flags().Changed("width") {
		cfg.Width = flags.width
	}
	if cmd.Flags().Changed("threshold") {
		cfg.Threshold = flags.threshold
	}
	if cmd.Flags().Changed("indent") {
		cfg.Indent = flags.indent
	}
	if cmd.Flags().Changed("sentence-factor") {
		cfg.SentenceFactor = flags.sentenceFactor
	}
	if cmd.Flags().Changed("hyphenate") {
		cfg.Hyphenate = flags.hyphenate
	}
	if cmd.Flags().Changed("patterns") {
		cfg.Patterns = flags.patterns
	}
	if cmd.Flags().Changed("font") {
		cfg.Font.Path = flags.fontPath
	}
	if cmd.Flags().Changed("font-size") {
		cfg.Font.Size = flags.fontSize
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	cfg.Jobs = flags.jobs
	cfg.InPlace = flags.inPlace
}

func addFmtFlags(cmd *cobra.Command, flags *fmtFlags) {
	cmd.Flags().Float64Var(&flags.width, "width", 0, "target line width (0 = detect terminal)")
	cmd.Flags().Float64Var(&flags.threshold, "threshold", 5, "maximum adjustment ratio")
	cmd.Flags().Float64Var(&flags.indent, "indent", 0, "first-line indent width")
	cmd.Flags().Float64Var(&flags.sentenceFactor, "sentence-factor", 1.5, "extra space factor after sentences")
	cmd.Flags().BoolVar(&flags.hyphenate, "hyphenate", false, "enable automatic hyphenation")
	cmd.Flags().StringVar(&flags.patterns, "patterns", "", "TeX-format hyphenation pattern file")
	cmd.Flags().StringVar(&flags.fontPath, "font", "", "OpenType font for proportional measurement")
	cmd.Flags().Float64Var(&flags.fontSize, "font-size", 10, "font size in points")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().BoolVar(&flags.inPlace, "in-place", false, "rewrite input files atomically")
}
