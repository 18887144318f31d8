// core/gate/suggest.go
package gate

// suggestionRule fires on flag-category counts and candidate metadata only,
// never on sequence content.
type suggestionRule struct {
	applies func(counts map[Category]int, spec CandidateSpec, total int) bool
	text    string
}

// Evaluated in order; every rule that fires contributes its text.
var suggestionRules = []suggestionRule{
	{
		applies: func(c map[Category]int, _ CandidateSpec, _ int) bool {
			return c[CategoryHomopolymer] > 0
		},
		text: "Reduce long homopolymer stretches (consider alternative codons or sequence variants)",
	},
	{
		applies: func(c map[Category]int, _ CandidateSpec, _ int) bool {
			return c[CategoryGCContent] > 2
		},
		text: "Optimize GC content in high-variance windows (target ~50% for synthesis)",
	},
	{
		applies: func(c map[Category]int, _ CandidateSpec, _ int) bool {
			return c[CategoryRepeat] > 0
		},
		text: "Review and reduce repetitive k-mers to improve assembly fidelity",
	},
	{
		applies: func(c map[Category]int, _ CandidateSpec, _ int) bool {
			return c[CategoryPalindrome] > 3
		},
		text: "Minimize palindromic sequences to reduce secondary structure formation",
	},
	{
		applies: func(_ map[Category]int, s CandidateSpec, _ int) bool {
			return s.Modality == ModalityVHHBispecific
		},
		text: "Verify linker length (typical: 15–30 aa) for optimal inter-domain spacing",
	},
	{
		applies: func(_ map[Category]int, s CandidateSpec, total int) bool {
			return s.ExpressionSystem == ExpressionEColi && total > 5
		},
		text: "Consider mammalian or cell-free systems for complex constructs",
	},
	{
		applies: func(c map[Category]int, _ CandidateSpec, _ int) bool {
			return c[CategoryGlycosylation] > 0
		},
		text: "Review N-glycosylation sites; consider mutations if unintended",
	},
}

// defaultSuggestion is emitted when no rule fires.
const defaultSuggestion = "Construct appears well-optimized; proceed with experimental validation"

func suggestions(flags []Flag, spec CandidateSpec) []string {
	counts := make(map[Category]int, len(flags))
	for _, f := range flags {
		counts[f.Category]++
	}

	var out []string
	for _, r := range suggestionRules {
		if r.applies(counts, spec, len(flags)) {
			out = append(out, r.text)
		}
	}
	if len(out) == 0 {
		out = append(out, defaultSuggestion)
	}
	return out
}
