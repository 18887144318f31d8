// internal/output/fasta.go
package output

import (
	"fmt"
	"io"
)

func init() {
	Register("fasta", func(w io.Writer, list []Scored, _ bool) error {
		return WriteFASTA(w, list)
	})
}

// WriteFASTA writes each candidate's normalized FASTA record.
func WriteFASTA(w io.Writer, list []Scored) error {
	for _, s := range list {
		if s.Result.Artifacts.NormalizedFasta == "" {
			continue
		}
		if _, err := fmt.Fprintln(w, s.Result.Artifacts.NormalizedFasta); err != nil {
			return err
		}
	}
	return nil
}
