// internal/blueprintapp/app.go
package blueprintapp

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"dfm-core/construct"
	"dfm-core/gate"
	"dfm-core/seq"
	"dfm/internal/jsonutil"
	"dfm/internal/output"
	"dfm/internal/version"
	"dfm/pkg/api"
)

// Options holds the blueprint tool's flags.
type Options struct {
	SeqFiles []string
	Project  string
	Modality string
	System   string
	Output   string
	Version  bool
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: construct blueprint generator

License: MIT
Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

func parseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	var seqFiles stringSlice
	fs.Var(&seqFiles, "sequences", "FASTA candidate file(s) (repeatable or '-') [*]")
	fs.StringVar(&opt.Project, "project", "", "project name (default: FASTA header or file name)")
	fs.StringVar(&opt.Modality, "modality", "", "construct modality: IgG_like_bispecific | VHH_bispecific | Fab_scFv | Fc_fusion [*]")
	fs.StringVar(&opt.System, "expression", string(gate.ExpressionMammalian), "expression system: mammalian | yeast | ecoli | cell_free [mammalian]")
	fs.StringVar(&opt.Output, "output", "json", "output format: json | text [json]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.SeqFiles = append([]string(seqFiles), fs.Args()...)

	if len(opt.SeqFiles) == 0 {
		return opt, errors.New("at least one --sequences file is required")
	}
	if opt.Modality == "" {
		return opt, errors.New("--modality is required")
	}
	// Unknown modalities are allowed through: Generate reports them as a
	// blueprint warning rather than a usage error.
	if opt.Output != "json" && opt.Output != "text" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	if !gate.ValidExpressionSystem(gate.ExpressionSystem(opt.System)) {
		return opt, fmt.Errorf("invalid --expression %q", opt.System)
	}
	return opt, nil
}

// Run executes the blueprint CLI. Exit codes: 0 ok, 2 usage or input error,
// 3 I/O error.
func Run(argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := newFlagSet("dfm-blueprint")
	fs.SetOutput(io.Discard)

	opts, err := parseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "dfm-blueprint version %s\n", version.Version)
		return 0
	}

	blueprints := make([]api.BlueprintV1, 0, len(opts.SeqFiles))
	for _, fn := range opts.SeqFiles {
		raw, err := readInput(fn)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
		body, header := seq.Parse(raw)
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
		bp := construct.Generate(project, gate.Modality(opts.Modality), body,
			gate.ExpressionSystem(opts.System))
		blueprints = append(blueprints, ToAPIBlueprint(project, opts.Modality, bp))
	}

	switch opts.Output {
	case "json":
		err = jsonutil.EncodePretty(outw, blueprints)
	case "text":
		err = writeText(outw, blueprints)
	}
	if err != nil {
		if output.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	if err := outw.Flush(); err != nil && !output.IsBrokenPipe(err) {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}

// ToAPIBlueprint converts a domain blueprint to the stable wire schema (v1).
func ToAPIBlueprint(project, modality string, bp construct.Blueprint) api.BlueprintV1 {
	domains := make([]api.DomainV1, 0, len(bp.Domains))
	for _, d := range bp.Domains {
		domains = append(domains, api.DomainV1{
			Chain: d.Chain, Name: d.Name, Start: d.Start, End: d.End,
		})
	}
	return api.BlueprintV1{
		Project:  project,
		Modality: modality,
		Chains:   append([]string(nil), bp.Chains...),
		Domains:  domains,
		Warnings: append([]string(nil), bp.Warnings...),
	}
}

func writeText(w io.Writer, list []api.BlueprintV1) error {
	for _, bp := range list {
		if _, err := fmt.Fprintf(w, "%s\t%s\tchains=%s\n",
			bp.Project, bp.Modality, strings.Join(bp.Chains, ",")); err != nil {
			return err
		}
		for _, d := range bp.Domains {
			if _, err := fmt.Fprintf(w, "  %s\t%s\n", d.Chain, d.Name); err != nil {
				return err
			}
		}
		for _, warn := range bp.Warnings {
			if _, err := fmt.Fprintf(w, "  ! %s\n", warn); err != nil {
				return err
			}
		}
	}
	return nil
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

type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
