// core/seq/motif.go
package seq

import "strings"

// MotifHit is one occurrence of a literal motif.
// Start and End are 0-indexed inclusive.
type MotifHit struct {
	Start int
	End   int
}

// FindMotif returns every occurrence of motif in s, case-insensitively.
// Overlapping occurrences are all reported. An empty motif yields no hits.
func FindMotif(s, motif string) []MotifHit {
	if motif == "" || len(s) < len(motif) {
		return nil
	}
	S := strings.ToUpper(s)
	M := strings.ToUpper(motif)
	var out []MotifHit
	for i := 0; i+len(M) <= len(S); i++ {
		if S[i:i+len(M)] == M {
			out = append(out, MotifHit{Start: i, End: i + len(M) - 1})
		}
	}
	return out
}
