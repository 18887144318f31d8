// core/gate/developability.go
package gate

import (
	"fmt"
	"strings"

	"dfm-core/seq"
)

// nonProteinDevScore is the flat developability score for non-protein input.
const nonProteinDevScore = 80

var (
	deamidationMotifs = []string{"NG", "NS", "NT"}
	cleavageMotifs    = []string{"RR", "RK", "KR"}
)

const (
	glycosylationPenalty  = 3
	deamidationPenalty    = 2
	oxidationFreeMets     = 3 // methionines tolerated before penalties accrue
	oxidationPenaltyPerM  = 2
	cleavagePairThreshold = 2
	cleavagePenalty       = 3
)

func (e *Engine) scoreDevelopability(s string, isProtein bool) (int, []Flag) {
	if !isProtein {
		return nonProteinDevScore, nil
	}

	var flags []Flag
	penalty := 0

	// N-glycosylation sequon N-X-[S/T], X != P. The scanned window (and the
	// reported location) spans four residues.
	for i := 0; i+3 < len(s); i++ {
		if s[i] == 'N' && (s[i+2] == 'S' || s[i+2] == 'T') && s[i+1] != 'P' {
			penalty += glycosylationPenalty
			flags = append(flags, Flag{
				Severity: SeverityWarning,
				Category: CategoryGlycosylation,
				Message: fmt.Sprintf("Potential N-glycosylation motif '%s' at position %d–%d",
					s[i:i+4], i, i+3),
				Location: span(i, i+3),
			})
		}
	}

	for _, motif := range deamidationMotifs {
		for _, hit := range seq.FindMotif(s, motif) {
			penalty += deamidationPenalty
			flags = append(flags, Flag{
				Severity: SeverityInfo,
				Category: CategoryDeamidation,
				Message: fmt.Sprintf("Deamidation hotspot '%s' at position %d–%d",
					motif, hit.Start, hit.End),
				Location: span(hit.Start, hit.End),
			})
		}
	}

	if m := strings.Count(s, "M"); m > oxidationFreeMets {
		penalty += oxidationPenaltyPerM * (m - oxidationFreeMets)
		flags = append(flags, Flag{
			Severity: SeverityInfo,
			Category: CategoryOxidation,
			Message:  fmt.Sprintf("Multiple methionine residues (%d total); oxidation risk", m),
		})
	}

	cleavage := 0
	for _, motif := range cleavageMotifs {
		cleavage += len(seq.FindMotif(s, motif))
	}
	if cleavage > cleavagePairThreshold {
		penalty += cleavagePenalty
		flags = append(flags, Flag{
			Severity: SeverityInfo,
			Category: CategoryProteolyticCleavage,
			Message: fmt.Sprintf("Multiple basic pair motifs (%d total); monitor for proteolytic cleavage",
				cleavage),
		})
	}

	return floorScore(100 - penalty), flags
}
