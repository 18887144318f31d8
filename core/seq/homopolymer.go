// core/seq/homopolymer.go
package seq

// Run is a maximal stretch of one repeated character.
// Start and End are 0-indexed inclusive.
type Run struct {
	Start  int
	End    int
	Base   byte
	Length int
}

// FindHomopolymers scans left to right and returns every maximal run of an
// identical character with length >= minLength, including runs that extend
// to the end of the sequence.
func FindHomopolymers(s string, minLength int) []Run {
	if minLength < 1 {
		minLength = 1
	}
	var out []Run
	for i := 0; i < len(s); {
		j := i
		for j < len(s) && s[j] == s[i] {
			j++
		}
		if n := j - i; n >= minLength {
			out = append(out, Run{Start: i, End: j - 1, Base: s[i], Length: n})
		}
		i = j
	}
	return out
}
