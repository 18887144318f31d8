// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"dfm-core/gate"
	"dfm/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Candidate input
	SeqFiles []string
	Project  string
	Modality string
	System   string
	SeqType  string
	Targets  []string
	Notes    string

	// Manufacturing constraints
	MaxFragment    int
	GCMin          float64
	GCMax          float64
	MaxHomopolymer int
	Forbidden      []string
	Enzymes        []string
	Vendor         string

	// Detector parameters
	GCWindow      int
	KmerSize      int
	MinPalindrome int

	// Limits
	MaxSeqLen int

	// Output
	Output    string
	Header    bool // true unless --no-header
	FailUnder int  // -1 = disabled
	GCPlot    string
	Quiet     bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: biologics manufacturability gate

License: MIT
Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Candidate input
	var seq stringSlice
	fs.Var(&seq, "sequences", "FASTA candidate file(s) (repeatable or '-') [*]")
	fs.StringVar(&opt.Project, "project", "", "project name (default: FASTA header or file name)")
	fs.StringVar(&opt.Modality, "modality", "", "construct modality: IgG_like_bispecific | VHH_bispecific | Fab_scFv | Fc_fusion [*]")
	fs.StringVar(&opt.System, "expression", string(gate.ExpressionMammalian), "expression system: mammalian | yeast | ecoli | cell_free [mammalian]")
	fs.StringVar(&opt.SeqType, "seq-type", string(gate.SequenceTypeDNACDS), "declared sequence type: dna_cds | protein [dna_cds]")
	var targets stringSlice
	fs.Var(&targets, "target", "target antigen (repeatable)")
	fs.StringVar(&opt.Notes, "notes", "", "free-form candidate notes")

	// Manufacturing constraints
	def := gate.DefaultConstraints()
	fs.IntVar(&opt.MaxFragment, "max-fragment", def.MaxFragmentLength, "max synthesis fragment length (nt) [500]")
	fs.Float64Var(&opt.GCMin, "gc-min", def.GCMin, "min acceptable GC fraction [0.3]")
	fs.Float64Var(&opt.GCMax, "gc-max", def.GCMax, "max acceptable GC fraction [0.7]")
	fs.IntVar(&opt.MaxHomopolymer, "max-homopolymer", def.MaxHomopolymer, "max homopolymer run length [6]")
	var forbid, enzymes stringSlice
	fs.Var(&forbid, "forbid", "forbidden motif (repeatable)")
	fs.Var(&enzymes, "enzyme", "restriction enzyme to avoid, e.g. EcoRI (repeatable)")
	fs.StringVar(&opt.Vendor, "vendor", def.VendorProfile, "vendor profile label [generic]")

	// Detector parameters
	fs.IntVar(&opt.GCWindow, "gc-window", 100, "sliding window size for GC checks (nt) [100]")
	fs.IntVar(&opt.KmerSize, "kmer", 6, "k-mer length for repeat detection [6]")
	fs.IntVar(&opt.MinPalindrome, "min-palindrome", 8, "minimum palindrome length [8]")

	// Limits
	fs.IntVar(&opt.MaxSeqLen, "max-seq-len", 5000, "reject sequences longer than this [5000]")

	// Output
	fs.StringVar(&opt.Output, "output", "text", "output format: text | json | jsonl | fasta | markdown [text]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")
	fs.IntVar(&opt.FailUnder, "fail-under", -1, "exit 1 if any overall score is below this (-1 = disabled) [-1]")
	fs.StringVar(&opt.GCPlot, "gc-plot", "", "write a GC profile plot (PNG/SVG by extension) to this path")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress WARN notices on stderr [false]")

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
	opt.SeqFiles = seq
	opt.Targets = targets
	opt.Forbidden = forbid
	opt.Enzymes = enzymes
	opt.Header = !noHeader

	// Positional args are treated as sequence files.
	opt.SeqFiles = append(opt.SeqFiles, fs.Args()...)

	// Validation
	if len(opt.SeqFiles) == 0 {
		return opt, errors.New("at least one --sequences file is required")
	}
	if opt.Modality == "" {
		return opt, errors.New("--modality is required")
	}
	if !gate.ValidModality(gate.Modality(opt.Modality)) {
		return opt, fmt.Errorf("invalid --modality %q", opt.Modality)
	}
	if !gate.ValidExpressionSystem(gate.ExpressionSystem(opt.System)) {
		return opt, fmt.Errorf("invalid --expression %q", opt.System)
	}
	if opt.SeqType != string(gate.SequenceTypeDNACDS) && opt.SeqType != string(gate.SequenceTypeProtein) {
		return opt, fmt.Errorf("invalid --seq-type %q", opt.SeqType)
	}
	switch opt.Output {
	case "text", "json", "jsonl", "fasta", "markdown":
	default:
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	if opt.FailUnder < -1 || opt.FailUnder > 100 {
		return opt, errors.New("--fail-under must be in [0,100] or -1")
	}
	if opt.MaxSeqLen <= 0 {
		return opt, errors.New("--max-seq-len must be > 0")
	}
	if opt.GCWindow <= 0 || opt.KmerSize <= 0 || opt.MinPalindrome <= 0 {
		return opt, errors.New("--gc-window, --kmer, and --min-palindrome must be > 0")
	}
	cons := opt.Constraints()
	if err := cons.Validate(); err != nil {
		return opt, err
	}
	return opt, nil
}

// Constraints assembles the manufacturing constraints from the parsed flags.
func (o Options) Constraints() gate.Constraints {
	return gate.Constraints{
		MaxFragmentLength: o.MaxFragment,
		GCMin:             o.GCMin,
		GCMax:             o.GCMax,
		MaxHomopolymer:    o.MaxHomopolymer,
		ForbiddenMotifs:   o.Forbidden,
		RestrictionSites:  o.Enzymes,
		VendorProfile:     o.Vendor,
	}
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
