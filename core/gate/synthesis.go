// core/gate/synthesis.go
package gate

import (
	"fmt"
	"math"

	"dfm-core/seq"
)

// nonDNASynthScore is the flat synthesis score for non-DNA input; no
// penalties are applied and no flags are emitted.
const nonDNASynthScore = 85

// synthPalindromeCap bounds how many palindrome flags the synthesis scorer
// keeps (tighter than the checker's own cap).
const synthPalindromeCap = 5

// Per-flag penalty weights by category for the synthesis scorer.
var synthesisPenalty = map[Category]int{
	CategoryGCContent:       5,
	CategoryHomopolymer:     8,
	CategoryRepeat:          6,
	CategoryPalindrome:      3,
	CategoryForbiddenMotif:  15,
	CategoryRestrictionSite: 5,
}

func (e *Engine) scoreSynthesis(s string, isDNA bool, cons Constraints) (int, []Flag) {
	if !isDNA {
		return nonDNASynthScore, nil
	}

	var flags []Flag
	penalty := 0

	// Overall GC deviation, proportional to distance from the band midpoint.
	gc := seq.GCContent(s)
	if gc < cons.GCMin || gc > cons.GCMax {
		mid := (cons.GCMin + cons.GCMax) / 2
		penalty += int(10 * math.Abs(gc-mid))
		flags = append(flags, Flag{
			Severity: SeverityWarning,
			Category: CategoryGCContent,
			Message: fmt.Sprintf("Overall GC content %.1f%% outside range [%.0f%%–%.0f%%]",
				gc*100, cons.GCMin*100, cons.GCMax*100),
		})
	}

	add := func(fs []Flag) {
		for _, f := range fs {
			flags = append(flags, f)
			penalty += synthesisPenalty[f.Category]
		}
	}

	add(CheckGCWindows(s, cons.GCMin, cons.GCMax, e.cfg.GCWindow))
	add(CheckHomopolymers(s, cons.MaxHomopolymer))
	add(CheckRepeats(s, e.cfg.KmerSize))

	pal := CheckPalindromes(s, e.cfg.MinPalindrome)
	if len(pal) > synthPalindromeCap {
		pal = pal[:synthPalindromeCap]
	}
	add(pal)

	add(CheckForbiddenMotifs(s, cons.ForbiddenMotifs))
	add(CheckRestrictionSites(s, cons.RestrictionSites))

	return floorScore(100 - penalty), flags
}

func floorScore(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
