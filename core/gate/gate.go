// core/gate/gate.go
package gate

import "dfm-core/seq"

// Sub-score weights. Must sum to 1.0; the weighted overall score is
// truncated toward zero for reproducibility.
const (
	weightSynthesis      = 0.35
	weightAssembly       = 0.25
	weightDevelopability = 0.25
	weightExpression     = 0.15
)

// Config holds detector parameters.
type Config struct {
	GCWindow      int // sliding-window size for GC checks (0 = 100)
	KmerSize      int // repeat k-mer length (0 = 6)
	MinPalindrome int // minimum palindrome length (0 = 8)
}

func (c Config) withDefaults() Config {
	if c.GCWindow <= 0 {
		c.GCWindow = 100
	}
	if c.KmerSize <= 0 {
		c.KmerSize = 6
	}
	if c.MinPalindrome <= 0 {
		c.MinPalindrome = 8
	}
	return c
}

// Engine scores candidates. It holds no mutable state; Score is a pure
// function of its arguments and the fixed config.
type Engine struct {
	cfg Config
}

// New creates an Engine with defaults applied.
func New(c Config) *Engine { return &Engine{cfg: c.withDefaults()} }

// Score runs the manufacturability gate: detectors, checker rules, the four
// sub-scorers, and suggestion derivation. It never fails; malformed input
// degrades to skipped checks and default scores. Flags preserve detector
// invocation order. Callers bound the sequence length before invoking: the
// palindrome scan is cubic in the worst case.
func (e *Engine) Score(spec CandidateSpec, cons Constraints) GateResult {
	s := seq.Normalize(spec.Sequence)
	isDNA := seq.IsDNA(s)
	isProtein := seq.IsProtein(s)

	flags := make([]Flag, 0, 16)

	synth, fs := e.scoreSynthesis(s, isDNA, cons)
	flags = append(flags, fs...)

	assembly, fs := e.scoreAssembly(spec, s)
	flags = append(flags, fs...)

	dev, fs := e.scoreDevelopability(s, isProtein)
	flags = append(flags, fs...)

	expr, fs := e.scoreExpression(spec, s, isProtein)
	flags = append(flags, fs...)

	overall := int(weightSynthesis*float64(synth) +
		weightAssembly*float64(assembly) +
		weightDevelopability*float64(dev) +
		weightExpression*float64(expr))

	return GateResult{
		OverallScore: clampScore(overall),
		SubScores: SubScores{
			SequenceSynth:  synth,
			AssemblyRisk:   assembly,
			Developability: dev,
			ExpressionRisk: expr,
		},
		Flags:       flags,
		Suggestions: suggestions(flags, spec),
		Artifacts: Artifacts{
			NormalizedFasta: seq.RenderFasta(spec.ProjectName, spec.Sequence),
		},
	}
}

// Score runs a default-config engine.
func Score(spec CandidateSpec, cons Constraints) GateResult {
	return New(Config{}).Score(spec, cons)
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
