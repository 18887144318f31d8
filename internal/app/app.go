// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"dfm-core/gate"
	"dfm-core/seq"
	"dfm/internal/cli"
	"dfm/internal/output"
	"dfm/internal/plotout"
	"dfm/internal/version"
)

// Run executes the scoring CLI. Exit codes: 0 ok, 1 fail-under threshold
// breached, 2 usage or input error, 3 I/O error, 130 cancelled.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// RunContext is Run with cancellation between candidates.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("dfm")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		if err := outw.Flush(); output.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); output.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "dfm version %s\n", version.Version)
		return 0
	}

	engine := gate.New(gate.Config{
		GCWindow:      opts.GCWindow,
		KmerSize:      opts.KmerSize,
		MinPalindrome: opts.MinPalindrome,
	})
	cons := opts.Constraints()

	scored := make([]output.Scored, 0, len(opts.SeqFiles))
	for _, fn := range opts.SeqFiles {
		if parent.Err() != nil {
			return 130
		}
		raw, err := readInput(fn)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
		spec, err := buildSpec(opts, fn, raw)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
		s := seq.Normalize(spec.Sequence)
		if !opts.Quiet && !seq.IsDNA(s) && !seq.IsProtein(s) {
			_, _ = fmt.Fprintf(stderr, "WARN: %s: sequence is neither DNA nor protein; sequence checks will be skipped\n", fn)
		}
		scored = append(scored, output.Scored{
			SourceFile: fn,
			Spec:       spec,
			Result:     engine.Score(spec, cons),
		})
	}

	if opts.GCPlot != "" {
		if err := writeGCPlot(opts, scored); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
	}

	if err := output.Write(opts.Output, outw, scored, opts.Header); err != nil {
		if output.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	if err := outw.Flush(); err != nil {
		if output.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}

	if opts.FailUnder >= 0 {
		for _, s := range scored {
			if s.Result.OverallScore < opts.FailUnder {
				_, _ = fmt.Fprintf(stderr, "%s: overall score %d below threshold %d\n",
					s.SourceFile, s.Result.OverallScore, opts.FailUnder)
				return 1
			}
		}
	}
	return 0
}

func readInput(fn string) (string, error) {
	if fn == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(fn)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// buildSpec assembles the candidate from flags plus the FASTA record, and
// enforces the boundary limits the engine itself does not check.
func buildSpec(opts cli.Options, fn, raw string) (gate.CandidateSpec, error) {
	body, header := seq.Parse(raw)
	if len(body) == 0 {
		return gate.CandidateSpec{}, fmt.Errorf("%s: empty sequence", fn)
	}
	if len(body) > opts.MaxSeqLen {
		return gate.CandidateSpec{}, fmt.Errorf("%s: sequence length %d exceeds limit %d", fn, len(body), opts.MaxSeqLen)
	}
	project := opts.Project
	if project == "" {
		if f := strings.Fields(header); len(f) > 0 {
			project = f[0]
		}
	}
	if project == "" {
		base := filepath.Base(fn)
		project = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return gate.CandidateSpec{
		ProjectName:      project,
		Modality:         gate.Modality(opts.Modality),
		Targets:          opts.Targets,
		ExpressionSystem: gate.ExpressionSystem(opts.System),
		SequenceType:     gate.SequenceType(opts.SeqType),
		Sequence:         raw,
		Notes:            opts.Notes,
	}, nil
}

// writeGCPlot plots the first DNA candidate's GC profile.
func writeGCPlot(opts cli.Options, scored []output.Scored) error {
	for _, s := range scored {
		body := seq.Normalize(s.Spec.Sequence)
		if !seq.IsDNA(body) || len(body) < opts.GCWindow {
			continue
		}
		return plotout.WriteGCProfile(opts.GCPlot, s.Spec.ProjectName, body,
			opts.GCWindow, opts.GCMin, opts.GCMax)
	}
	return fmt.Errorf("gc-plot: no DNA candidate long enough for window %d", opts.GCWindow)
}
