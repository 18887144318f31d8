// internal/output/scored.go
package output

import (
	"dfm-core/gate"
	"dfm-core/seq"

	"dfm/pkg/api"
)

// Scored pairs one candidate with its gate result for rendering.
type Scored struct {
	SourceFile string
	Spec       gate.CandidateSpec
	Result     gate.GateResult
}

// ToAPIFlag converts a domain flag to the stable wire schema (v1).
func ToAPIFlag(f gate.Flag) api.FlagV1 {
	return api.FlagV1{
		Severity: string(f.Severity),
		Category: string(f.Category),
		Message:  f.Message,
		Location: append([]int(nil), f.Location...),
	}
}

// ToAPIResult converts a scored candidate to the stable wire schema (v1),
// composing the JSON summary and markdown report artifacts on the way out.
func ToAPIResult(s Scored) api.GateResultV1 {
	flags := make([]api.FlagV1, 0, len(s.Result.Flags))
	for _, f := range s.Result.Flags {
		flags = append(flags, ToAPIFlag(f))
	}
	return api.GateResultV1{
		Project:      s.Spec.ProjectName,
		SourceFile:   s.SourceFile,
		OverallScore: s.Result.OverallScore,
		SubScores: api.SubScoresV1{
			SequenceSynth:  s.Result.SubScores.SequenceSynth,
			AssemblyRisk:   s.Result.SubScores.AssemblyRisk,
			Developability: s.Result.SubScores.Developability,
			ExpressionRisk: s.Result.SubScores.ExpressionRisk,
		},
		Flags:       flags,
		Suggestions: append([]string(nil), s.Result.Suggestions...),
		Artifacts: api.ArtifactsV1{
			NormalizedFasta: s.Result.Artifacts.NormalizedFasta,
			JSONSummary:     JSONSummary(s),
			MarkdownReport:  MarkdownReport(s),
		},
	}
}

func toAPIResults(list []Scored) []api.GateResultV1 {
	out := make([]api.GateResultV1, 0, len(list))
	for _, s := range list {
		out = append(out, ToAPIResult(s))
	}
	return out
}

// JSONSummary is the compact candidate digest embedded in artifacts.
func JSONSummary(s Scored) map[string]any {
	return map[string]any{
		"project":           s.Spec.ProjectName,
		"modality":          string(s.Spec.Modality),
		"targets":           append([]string(nil), s.Spec.Targets...),
		"expression_system": string(s.Spec.ExpressionSystem),
		"sequence_type":     string(s.Spec.SequenceType),
		"sequence_length":   len(seq.Normalize(s.Spec.Sequence)),
		"overall_score":     s.Result.OverallScore,
		"flag_count":        len(s.Result.Flags),
		"notes":             s.Spec.Notes,
	}
}
