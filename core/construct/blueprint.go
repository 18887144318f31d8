// core/construct/blueprint.go
package construct

import (
	"fmt"

	"dfm-core/gate"
	"dfm-core/seq"
)

// Domain is a functional domain within a blueprint. Start/End are optional
// 0-indexed inclusive positions; nil means unplaced.
type Domain struct {
	Chain string
	Name  string
	Start *int
	End   *int
}

// Blueprint is the abstract chain/domain architecture for a modality.
// It is derived purely from modality, sequence length, and expression
// system, and is recomputed on every call.
type Blueprint struct {
	Chains   []string
	Domains  []Domain
	Warnings []string
}

// Generate maps a modality to its fixed chain/domain template and attaches
// size- and system-based warnings. It never provides assembly steps.
func Generate(projectName string, modality gate.Modality, sequence string, system gate.ExpressionSystem) Blueprint {
	n := len(seq.Normalize(sequence))
	switch modality {
	case gate.ModalityIgGBispecific:
		return iggBispecific(n, system)
	case gate.ModalityVHHBispecific:
		return vhhBispecific(n)
	case gate.ModalityFabScFv:
		return fabScFv(n)
	case gate.ModalityFcFusion:
		return fcFusion(n, system)
	default:
		return Blueprint{Warnings: []string{fmt.Sprintf("Unknown modality: %s", modality)}}
	}
}

func dom(chain, name string) Domain { return Domain{Chain: chain, Name: name} }

// IgG-like bispecific: 2x2 chain array.
func iggBispecific(n int, system gate.ExpressionSystem) Blueprint {
	bp := Blueprint{
		Chains: []string{"HC1", "LC1", "HC2", "LC2"},
		Domains: []Domain{
			dom("HC1", "VH1"), dom("HC1", "CH1"),
			dom("LC1", "VL1"), dom("LC1", "CL"),
			dom("HC2", "VH2"), dom("HC2", "CH1"),
			dom("LC2", "VL2"), dom("LC2", "CL"),
		},
	}
	if n > 400 {
		bp.Warnings = append(bp.Warnings,
			"Large IgG construct; consider modularization for manufacturability")
	}
	if system == gate.ExpressionEColi {
		bp.Warnings = append(bp.Warnings,
			"E. coli expression of IgG-like constructs may require special strains or periplasmic expression")
	}
	return bp
}

// VHH bispecific: single chain [VHH1-Linker-VHH2].
func vhhBispecific(n int) Blueprint {
	bp := Blueprint{
		Chains: []string{"ScVHH"},
		Domains: []Domain{
			dom("ScVHH", "VHH1"), dom("ScVHH", "Linker"), dom("ScVHH", "VHH2"),
		},
	}
	if n > 350 {
		bp.Warnings = append(bp.Warnings,
			"Long VHH-VHH fusion; linker length optimization recommended")
	}
	if n < 180 {
		bp.Warnings = append(bp.Warnings,
			"Sequence may be too short for VHH bispecific construct")
	}
	return bp
}

// Fab + scFv hybrid format.
func fabScFv(n int) Blueprint {
	bp := Blueprint{
		Chains: []string{"Fab_HC", "Fab_LC", "scFv"},
		Domains: []Domain{
			dom("Fab_HC", "VH"), dom("Fab_HC", "CH1"),
			dom("Fab_LC", "VL"), dom("Fab_LC", "CL"),
			dom("scFv", "scFv"),
		},
	}
	if n > 500 {
		bp.Warnings = append(bp.Warnings,
			"Very large Fab-scFv fusion; expression yield may be reduced")
	}
	return bp
}

// Fc fusion: [Binder-Linker-Fc].
func fcFusion(n int, system gate.ExpressionSystem) Blueprint {
	bp := Blueprint{
		Chains: []string{"Fusion"},
		Domains: []Domain{
			dom("Fusion", "Binder"), dom("Fusion", "Linker"), dom("Fusion", "Fc"),
		},
	}
	if system == gate.ExpressionEColi {
		bp.Warnings = append(bp.Warnings,
			"Fc domain typically requires mammalian glycosylation; E. coli may not be ideal")
	}
	if n < 200 {
		bp.Warnings = append(bp.Warnings,
			"Binder portion may be very small; verify adequacy for target binding")
	}
	return bp
}
