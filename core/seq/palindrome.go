// core/seq/palindrome.go
package seq

// Palindrome is a substring equal to its own character reversal.
// Start and End are 0-indexed inclusive.
type Palindrome struct {
	Start int
	End   int
	Seq   string
}

// FindPalindromes enumerates every substring of length >= minLength that
// reads the same forwards and backwards. This is a literal mirror-symmetry
// check, not reverse-complement symmetry, so it underestimates true DNA
// hairpin risk. Worst case is O(n^3); callers must bound the input length.
// The full list is returned; any display cap is the caller's policy.
func FindPalindromes(s string, minLength int) []Palindrome {
	if minLength < 1 {
		minLength = 1
	}
	var out []Palindrome
	for i := 0; i+minLength <= len(s); i++ {
		for j := i + minLength; j <= len(s); j++ {
			if isMirror(s[i:j]) {
				out = append(out, Palindrome{Start: i, End: j - 1, Seq: s[i:j]})
			}
		}
	}
	return out
}

func isMirror(s string) bool {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		if s[i] != s[j] {
			return false
		}
	}
	return true
}
