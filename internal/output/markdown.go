// internal/output/markdown.go
package output

import (
	"fmt"
	"io"
	"strings"
)

func init() {
	Register("markdown", func(w io.Writer, list []Scored, _ bool) error {
		return WriteMarkdown(w, list)
	})
}

// WriteMarkdown writes one report per candidate, separated by rules.
func WriteMarkdown(w io.Writer, list []Scored) error {
	for i, s := range list {
		if i > 0 {
			if _, err := fmt.Fprintln(w, "\n---"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, MarkdownReport(s)); err != nil {
			return err
		}
	}
	return nil
}

// MarkdownReport renders a human-readable report for one scored candidate.
// It is deterministic: no timestamps, no environment details.
func MarkdownReport(s Scored) string {
	var b strings.Builder

	name := s.Spec.ProjectName
	if name == "" {
		name = "unnamed"
	}
	fmt.Fprintf(&b, "# Manufacturability Report: %s\n\n", name)
	fmt.Fprintf(&b, "**Overall score:** %d/100\n\n", s.Result.OverallScore)

	fmt.Fprintf(&b, "| Field | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Modality | %s |\n", s.Spec.Modality)
	fmt.Fprintf(&b, "| Expression system | %s |\n", s.Spec.ExpressionSystem)
	fmt.Fprintf(&b, "| Sequence type | %s |\n", s.Spec.SequenceType)
	if len(s.Spec.Targets) > 0 {
		fmt.Fprintf(&b, "| Targets | %s |\n", strings.Join(s.Spec.Targets, ", "))
	}
	b.WriteString("\n## Sub-scores\n\n")
	fmt.Fprintf(&b, "| Component | Score |\n|---|---|\n")
	fmt.Fprintf(&b, "| Sequence synthesis | %d |\n", s.Result.SubScores.SequenceSynth)
	fmt.Fprintf(&b, "| Assembly risk | %d |\n", s.Result.SubScores.AssemblyRisk)
	fmt.Fprintf(&b, "| Developability | %d |\n", s.Result.SubScores.Developability)
	fmt.Fprintf(&b, "| Expression risk | %d |\n", s.Result.SubScores.ExpressionRisk)

	b.WriteString("\n## Flags\n\n")
	if len(s.Result.Flags) == 0 {
		b.WriteString("No flags raised.\n")
	}
	for _, f := range s.Result.Flags {
		fmt.Fprintf(&b, "- **[%s]** %s: %s\n", f.Severity, f.Category, f.Message)
	}

	b.WriteString("\n## Suggestions\n\n")
	for _, sug := range s.Result.Suggestions {
		fmt.Fprintf(&b, "- %s\n", sug)
	}

	if s.Result.Artifacts.NormalizedFasta != "" {
		b.WriteString("\n## Normalized sequence\n\n```\n")
		b.WriteString(s.Result.Artifacts.NormalizedFasta)
		b.WriteString("\n```\n")
	}
	return b.String()
}
