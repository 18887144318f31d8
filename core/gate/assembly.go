// core/gate/assembly.go
package gate

import (
	"fmt"
	"strings"
)

// Fixed per-modality assembly complexity penalties.
var modalityComplexity = map[Modality]int{
	ModalityIgGBispecific: 20,
	ModalityVHHBispecific: 5,
	ModalityFabScFv:       15,
	ModalityFcFusion:      10,
}

// unknownModalityPenalty applies when the modality is not in the table.
const unknownModalityPenalty = 10

// Common inter-domain linker patterns.
var linkerMotifs = []string{"GGGS", "GGGGGS", "AAAGGG", "EAAK"}

const (
	largeConstructLen     = 400
	largeConstructPenalty = 8
	linkerPenalty         = 3
)

func (e *Engine) scoreAssembly(spec CandidateSpec, s string) (int, []Flag) {
	var flags []Flag

	penalty, ok := modalityComplexity[spec.Modality]
	if !ok {
		penalty = unknownModalityPenalty
	}

	if len(s) > largeConstructLen {
		penalty += largeConstructPenalty
		flags = append(flags, Flag{
			Severity: SeverityInfo,
			Category: CategoryAssemblyComplexity,
			Message: fmt.Sprintf("Construct length %d aa/bp is large; synthesis may be more complex",
				len(s)),
		})
	}

	for _, motif := range linkerMotifs {
		if strings.Contains(s, motif) {
			penalty += linkerPenalty
			flags = append(flags, Flag{
				Severity: SeverityInfo,
				Category: CategoryLinkerLength,
				Message:  "Linker pattern detected; verify length and flexibility are appropriate",
			})
			break
		}
	}

	return floorScore(100 - penalty), flags
}
