// core/seq/normalize.go
package seq

import "strings"

// Parse extracts the sequence body and optional header from raw FASTA-ish
// input. Only the first '>' line is treated as a header; a second '>' line
// stops parsing. This is a deliberate single-record policy, not a full
// multi-record FASTA parser.
func Parse(raw string) (sequence, header string) {
	var b strings.Builder
	sawHeader := false
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			if sawHeader {
				break
			}
			sawHeader = true
			header = strings.TrimSpace(line[1:])
			continue
		}
		for _, field := range strings.Fields(line) {
			b.WriteString(strings.ToUpper(field))
		}
	}
	return b.String(), header
}

// Normalize strips any header line and all whitespace from raw input and
// returns the uppercase sequence body. Empty input yields "".
func Normalize(raw string) string {
	s, _ := Parse(raw)
	return s
}

// IsDNA reports whether every character of s is a DNA base (A/C/G/T plus N).
// The empty sequence is vacuously DNA.
func IsDNA(s string) bool {
	for i := 0; i < len(s); i++ {
		switch upper(s[i]) {
		case 'A', 'C', 'G', 'T', 'N':
		default:
			return false
		}
	}
	return true
}

// IsProtein reports whether every character of s is one of the 20 canonical
// residues, X, or the stop symbol '*'. Short A/C/G/T-only sequences satisfy
// both IsDNA and IsProtein; callers treat IsDNA as authoritative.
func IsProtein(s string) bool {
	for i := 0; i < len(s); i++ {
		switch upper(s[i]) {
		case 'A', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'K', 'L',
			'M', 'N', 'P', 'Q', 'R', 'S', 'T', 'V', 'W', 'Y',
			'X', '*':
		default:
			return false
		}
	}
	return true
}

// GCContent returns the G+C fraction of s in [0,1]. Empty input yields 0.
func GCContent(s string) float64 {
	if len(s) == 0 {
		return 0
	}
	gc := 0
	for i := 0; i < len(s); i++ {
		switch upper(s[i]) {
		case 'G', 'C':
			gc++
		}
	}
	return float64(gc) / float64(len(s))
}

// FastaLineWidth is the column width used by RenderFasta.
const FastaLineWidth = 80

// RenderFasta renders a normalized sequence as a single FASTA record with
// the body wrapped at FastaLineWidth columns.
func RenderFasta(name, sequence string) string {
	s := Normalize(sequence)
	var b strings.Builder
	b.WriteByte('>')
	b.WriteString(name)
	for i := 0; i < len(s); i += FastaLineWidth {
		end := i + FastaLineWidth
		if end > len(s) {
			end = len(s)
		}
		b.WriteByte('\n')
		b.WriteString(s[i:end])
	}
	return b.String()
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
