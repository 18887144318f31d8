// core/seq/repeat.go
package seq

// RepeatPair is one pair of start positions sharing the same k-mer.
type RepeatPair struct {
	Pos1 int
	Pos2 int
	Kmer string
}

// FindRepeats maps every k-mer to its start positions and reports every
// pair of positions sharing a k-mer: a k-mer occurring n times contributes
// C(n,2) pairs, so the total count grows combinatorially with copy number.
// Pairs are emitted per k-mer in first-occurrence order, positions
// ascending, which keeps the output deterministic.
func FindRepeats(s string, k int) []RepeatPair {
	if k <= 0 || len(s) < k {
		return nil
	}
	positions := make(map[string][]int)
	var order []string
	for i := 0; i+k <= len(s); i++ {
		kmer := s[i : i+k]
		if _, seen := positions[kmer]; !seen {
			order = append(order, kmer)
		}
		positions[kmer] = append(positions[kmer], i)
	}
	var out []RepeatPair
	for _, kmer := range order {
		pos := positions[kmer]
		for i := 0; i < len(pos); i++ {
			for j := i + 1; j < len(pos); j++ {
				out = append(out, RepeatPair{Pos1: pos[i], Pos2: pos[j], Kmer: kmer})
			}
		}
	}
	return out
}
