// core/gate/checker.go
package gate

import (
	"fmt"
	"strings"

	"dfm-core/seq"
)

// PalindromeFlagCap bounds how many palindrome hits become flags. The
// detector itself is uncapped; this is presentation policy.
const PalindromeFlagCap = 10

// CheckGCWindows flags every sliding window whose GC fraction falls outside
// [gcMin, gcMax]. Severity escalates from warning to error outside the
// expanded band [gcMin*0.5, gcMax*1.5]. DNA sequences only.
func CheckGCWindows(sequence string, gcMin, gcMax float64, window int) []Flag {
	s := seq.Normalize(sequence)
	if !seq.IsDNA(s) {
		return nil
	}
	var flags []Flag
	for _, w := range seq.SlidingWindowGC(s, window) {
		if w.Frac >= gcMin && w.Frac <= gcMax {
			continue
		}
		sev := SeverityWarning
		if w.Frac < gcMin*0.5 || w.Frac > gcMax*1.5 {
			sev = SeverityError
		}
		flags = append(flags, Flag{
			Severity: sev,
			Category: CategoryGCContent,
			Message: fmt.Sprintf("GC content %.2f%% in window [%d–%d] outside range [%.0f%%–%.0f%%]",
				w.Frac*100, w.Start, w.Start+window-1, gcMin*100, gcMax*100),
			Location: span(w.Start, w.Start+window-1),
		})
	}
	return flags
}

// CheckHomopolymers flags runs at or above maxLength; severity escalates to
// error at maxLength+3 or more. DNA sequences only.
func CheckHomopolymers(sequence string, maxLength int) []Flag {
	s := seq.Normalize(sequence)
	if !seq.IsDNA(s) {
		return nil
	}
	var flags []Flag
	for _, r := range seq.FindHomopolymers(s, maxLength) {
		sev := SeverityWarning
		if r.Length >= maxLength+3 {
			sev = SeverityError
		}
		flags = append(flags, Flag{
			Severity: sev,
			Category: CategoryHomopolymer,
			Message: fmt.Sprintf("Homopolymer %s found at position %d–%d, length %d (threshold %d)",
				strings.Repeat(string(r.Base), r.Length), r.Start, r.End, r.Length, maxLength),
			Location: span(r.Start, r.End),
		})
	}
	return flags
}

// CheckRepeats emits a single aggregate warning when any repeated k-mer
// exists. The reported count is the pairwise enumeration from FindRepeats,
// so it grows combinatorially with copy number. DNA sequences only.
func CheckRepeats(sequence string, kmerSize int) []Flag {
	s := seq.Normalize(sequence)
	if !seq.IsDNA(s) {
		return nil
	}
	repeats := seq.FindRepeats(s, kmerSize)
	if len(repeats) == 0 {
		return nil
	}
	return []Flag{{
		Severity: SeverityWarning,
		Category: CategoryRepeat,
		Message: fmt.Sprintf("Found %d repeated %d-mers (may complicate assembly)",
			len(repeats), kmerSize),
	}}
}

// CheckPalindromes emits info flags for the first PalindromeFlagCap
// mirror-symmetric substrings of length >= minLength.
func CheckPalindromes(sequence string, minLength int) []Flag {
	s := seq.Normalize(sequence)
	var flags []Flag
	for _, p := range seq.FindPalindromes(s, minLength) {
		if len(flags) >= PalindromeFlagCap {
			break
		}
		flags = append(flags, Flag{
			Severity: SeverityInfo,
			Category: CategoryPalindrome,
			Message: fmt.Sprintf("Palindromic sequence at %d–%d: %s (may form secondary structure)",
				p.Start, p.End, p.Seq),
			Location: span(p.Start, p.End),
		})
	}
	return flags
}

// CheckForbiddenMotifs emits one error flag per occurrence of each motif.
func CheckForbiddenMotifs(sequence string, motifs []string) []Flag {
	s := seq.Normalize(sequence)
	var flags []Flag
	for _, motif := range motifs {
		for _, hit := range seq.FindMotif(s, motif) {
			flags = append(flags, Flag{
				Severity: SeverityError,
				Category: CategoryForbiddenMotif,
				Message: fmt.Sprintf("Forbidden motif '%s' found at position %d–%d",
					motif, hit.Start, hit.End),
				Location: span(hit.Start, hit.End),
			})
		}
	}
	return flags
}

// CheckRestrictionSites flags occurrences of the named enzymes' recognition
// sequences. Names missing from the fixed table are silently ignored.
func CheckRestrictionSites(sequence string, names []string) []Flag {
	s := seq.Normalize(sequence)
	var flags []Flag
	for _, name := range names {
		site, ok := RecognitionSite(name)
		if !ok {
			continue
		}
		for _, hit := range seq.FindMotif(s, site) {
			flags = append(flags, Flag{
				Severity: SeverityWarning,
				Category: CategoryRestrictionSite,
				Message: fmt.Sprintf("Restriction site %s at position %d–%d",
					name, hit.Start, hit.End),
				Location: span(hit.Start, hit.End),
			})
		}
	}
	return flags
}
