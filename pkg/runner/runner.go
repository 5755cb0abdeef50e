package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/yaklabco/gotypeset/pkg/linebreak"
	"github.com/yaklabco/gotypeset/pkg/source"
	"github.com/yaklabco/gotypeset/pkg/typeset"
)

// Runner orchestrates multi-file justification with a shared Typesetter.
// One optimizer invocation runs per paragraph, so files are independent
// and workers never share mutable state.
type Runner struct {
	Typesetter *typeset.Typesetter
}

// New creates a Runner around the given typesetter.
func New(ts *typeset.Typesetter) *Runner {
	return &Runner{Typesetter: ts}
}

// Run discovers files under opts.Paths and justifies them concurrently,
// returning outcomes in deterministic (sorted-path) order.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers complete out of order; rebuild deterministic ordering.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.ProcessFile(path)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// ProcessFile justifies every paragraph of one file. An infeasible
// paragraph is left unchanged and recorded rather than failing the file.
func (r *Runner) ProcessFile(path string) FileOutcome {
	outcome := FileOutcome{Path: path}

	content, err := os.ReadFile(path)
	if err != nil {
		outcome.Error = fmt.Errorf("read %s: %w", path, err)
		return outcome
	}

	paragraphs := extract(path, content)
	replacements := make([][]byte, len(paragraphs))

	for i, p := range paragraphs {
		pr := ParagraphResult{}

		res, err := r.Typesetter.Set(p.Text)
		switch {
		case err == nil:
			texts := make([]string, len(res.Lines))
			for j, ln := range res.Lines {
				texts[j] = ln.Text
				if ln.Hyphenated {
					pr.Hyphenated++
				}
			}
			pr.Lines = len(res.Lines)
			replacements[i] = []byte(strings.Join(texts, "\n"))
		case isInfeasible(err):
			pr.Infeasible = true
		default:
			outcome.Error = fmt.Errorf("set paragraph in %s: %w", path, err)
			return outcome
		}

		outcome.Paragraphs = append(outcome.Paragraphs, pr)
	}

	outcome.Output = source.Splice(content, paragraphs, replacements)
	return outcome
}

// extract picks the paragraph source by extension: Markdown files keep
// their block structure, everything else splits on blank lines.
func extract(path string, content []byte) []source.Paragraph {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return source.Markdown(content)
	default:
		return source.PlainText(content)
	}
}

func isInfeasible(err error) bool {
	var nf *linebreak.NoFeasibleSolutionError
	return errors.As(err, &nf)
}
