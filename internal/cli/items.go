package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gotypeset/pkg/config"
	"github.com/yaklabco/gotypeset/pkg/linebreak"
	"github.com/yaklabco/gotypeset/pkg/measure"
	"github.com/yaklabco/gotypeset/pkg/source"
)

func newItemsCommand() *cobra.Command {
	var hyphenate bool
	var indent float64

	cmd := &cobra.Command{
		Use:   "items [file]",
		Short: "Tokenize paragraphs into their item streams",
		Long: `Tokenize input into box/glue/penalty item streams and print them as
tagged records, one JSON record per item. Reads stdin when no file is
given. Useful for inspecting what the optimizer will see.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runItems(cmd, args, hyphenate, indent)
		},
	}

	cmd.Flags().BoolVar(&hyphenate, "hyphenate", false, "enable automatic hyphenation")
	cmd.Flags().Float64Var(&indent, "indent", 0, "first-line indent width")

	return cmd
}

func runItems(cmd *cobra.Command, args []string, hyphenate bool, indent float64) error {
	var content []byte
	var err error

	if len(args) == 0 {
		content, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	} else {
		content, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}
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

	oracle := measure.Monospace(1)
	opts := linebreak.ParagraphOptions{
		Indent:         indent,
		Hyphenate:      hyphenate,
		SentenceFactor: cfg.SentenceFactor,
	}

	out := cmd.OutOrStdout()
	for _, p := range source.PlainText(content) {
		items, err := linebreak.Paragraph(p.Text, oracle.Width, opts)
		if err != nil {
			return fmt.Errorf("tokenize: %w", err)
		}
		if err := linebreak.EncodeStream(out, items); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	}

	return nil
}
