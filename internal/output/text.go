// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"dfm-core/gate"
)

// TSVHeader is the column header for text/TSV output.
const TSVHeader = "source_file\tproject\tmodality\toverall_score\tsequence_synth\tassembly_risk\tdevelopability\texpression_risk\tflags\terrors"

func init() { Register("text", WriteText) }

// WriteText prints one TSV row per scored candidate.
func WriteText(w io.Writer, list []Scored, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, s := range list {
		errs := 0
		for _, f := range s.Result.Flags {
			if f.Severity == gate.SeverityError {
				errs++
			}
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
			s.SourceFile, s.Spec.ProjectName, s.Spec.Modality,
			s.Result.OverallScore,
			s.Result.SubScores.SequenceSynth,
			s.Result.SubScores.AssemblyRisk,
			s.Result.SubScores.Developability,
			s.Result.SubScores.ExpressionRisk,
			len(s.Result.Flags), errs,
		); err != nil {
			return err
		}
	}
	return nil
}
