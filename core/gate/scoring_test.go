// core/gate/scoring_test.go
package gate

import (
	"reflect"
	"strings"
	"testing"
)

func proteinSpec(seq string) CandidateSpec {
	return CandidateSpec{
		ProjectName:      "test",
		Modality:         ModalityFcFusion,
		ExpressionSystem: ExpressionMammalian,
		SequenceType:     SequenceTypeProtein,
		Sequence:         seq,
	}
}

func TestProteinSynthesisShortcut(t *testing.T) {
	// Any sequence that is protein but not DNA scores a flat 85 for
	// synthesis, no penalties applied.
	res := Score(proteinSpec("MVHLTPEEKSLIPQPPWEDE"), DefaultConstraints())
	if res.SubScores.SequenceSynth != 85 {
		t.Fatalf("sequence_synth = %d, want 85", res.SubScores.SequenceSynth)
	}
}

func TestModalityOrdering(t *testing.T) {
	seq := "MVHLTPEEKSLIPQPPWEDE"
	igg := proteinSpec(seq)
	igg.Modality = ModalityIgGBispecific
	vhh := proteinSpec(seq)
	vhh.Modality = ModalityVHHBispecific

	cons := DefaultConstraints()
	a := Score(igg, cons).SubScores.AssemblyRisk
	b := Score(vhh, cons).SubScores.AssemblyRisk
	if a > b {
		t.Fatalf("IgG assembly %d > VHH assembly %d; IgG penalty must dominate", a, b)
	}
}

func TestScoreExactValues(t *testing.T) {
	// DNA candidate with one over-threshold homopolymer and nothing else.
	spec := CandidateSpec{
		ProjectName:      "dna-case",
		Modality:         ModalityVHHBispecific,
		ExpressionSystem: ExpressionEColi,
		SequenceType:     SequenceTypeDNACDS,
		Sequence:         "ATGAAAAAACCC",
	}
	cons := DefaultConstraints()
	cons.MaxHomopolymer = 5

	res := Score(spec, cons)

	// Synthesis: 100 - 8 (one homopolymer warning); GC 4/12 is in band.
	if res.SubScores.SequenceSynth != 92 {
		t.Errorf("sequence_synth = %d, want 92", res.SubScores.SequenceSynth)
	}
	// Assembly: 100 - 5 (VHH), short, no linker.
	if res.SubScores.AssemblyRisk != 95 {
		t.Errorf("assembly_risk = %d, want 95", res.SubScores.AssemblyRisk)
	}
	// Developability: A/T/G/C are all residues too, but nothing matches.
	if res.SubScores.Developability != 100 {
		t.Errorf("developability = %d, want 100", res.SubScores.Developability)
	}
	// Expression: 100 - (12 ecoli + 2 codon-bias + 8 short) = 78.
	if res.SubScores.ExpressionRisk != 78 {
		t.Errorf("expression_risk = %d, want 78", res.SubScores.ExpressionRisk)
	}
	// Overall truncates toward zero: 0.35*92+0.25*95+0.25*100+0.15*78 = 92.65.
	if res.OverallScore != 92 {
		t.Errorf("overall = %d, want 92", res.OverallScore)
	}
	if len(res.Flags) != 2 {
		t.Errorf("flag count = %d, want 2 (homopolymer + small construct): %v",
			len(res.Flags), res.Flags)
	}
}

func TestForbiddenMotifSensitivity(t *testing.T) {
	spec := CandidateSpec{
		ProjectName:      "motif",
		Modality:         ModalityFcFusion,
		ExpressionSystem: ExpressionMammalian,
		SequenceType:     SequenceTypeDNACDS,
		Sequence:         "ATGAAAAAAA",
	}
	cons := DefaultConstraints()
	cons.ForbiddenMotifs = []string{"AAAA"}

	res := Score(spec, cons)
	found := false
	for _, f := range res.Flags {
		if f.Category == CategoryForbiddenMotif && f.Severity == SeverityError {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a forbidden_motif error flag, got %v", res.Flags)
	}
}

func TestDevelopabilityFindings(t *testing.T) {
	// NAS = glycosylation sequon, NG = deamidation hotspot, five Ms,
	// RR/RK/KR all present. The trailing NGA also sits too close to the
	// end for the four-residue sequon scan.
	spec := proteinSpec("MNASMMMMRRKRWNGA")
	res := Score(spec, DefaultConstraints())

	var glyc, deam, oxid, cleav int
	for _, f := range res.Flags {
		switch f.Category {
		case CategoryGlycosylation:
			glyc++
		case CategoryDeamidation:
			deam++
		case CategoryOxidation:
			oxid++
		case CategoryProteolyticCleavage:
			cleav++
		}
	}
	if glyc != 1 {
		t.Errorf("glycosylation flags = %d, want 1", glyc)
	}
	if deam != 1 { // the single NG pair
		t.Errorf("deamidation flags = %d, want 1", deam)
	}
	if oxid != 1 { // five methionines, two over the free allowance
		t.Errorf("oxidation flags = %d, want 1", oxid)
	}
	if cleav != 1 { // RR, RK, KR all present = 3 > 2
		t.Errorf("cleavage flags = %d, want 1", cleav)
	}
}

func TestNonProteinDevelopabilityDefault(t *testing.T) {
	spec := proteinSpec("ATGNNN") // N makes it DNA-only
	res := Score(spec, DefaultConstraints())
	if res.SubScores.Developability != 80 {
		t.Fatalf("developability = %d, want flat 80 for non-protein", res.SubScores.Developability)
	}
}

func TestBoundsProperty(t *testing.T) {
	cases := []string{
		"",
		"ATGC",
		strings.Repeat("GGGGCCCC", 40),
		strings.Repeat("A", 600),
		"MVHLTPEEKS",
		"!!not a sequence!!",
	}
	cons := DefaultConstraints()
	cons.ForbiddenMotifs = []string{"GGGG", "AAAA"}
	cons.RestrictionSites = []string{"EcoRI", "BamHI"}

	for _, s := range cases {
		res := Score(proteinSpec(s), cons)
		for name, v := range map[string]int{
			"overall":        res.OverallScore,
			"sequence_synth": res.SubScores.SequenceSynth,
			"assembly_risk":  res.SubScores.AssemblyRisk,
			"developability": res.SubScores.Developability,
			"expression":     res.SubScores.ExpressionRisk,
		} {
			if v < 0 || v > 100 {
				t.Errorf("seq %q: %s = %d outside [0,100]", s, name, v)
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	spec := CandidateSpec{
		ProjectName:      "det",
		Modality:         ModalityIgGBispecific,
		ExpressionSystem: ExpressionEColi,
		SequenceType:     SequenceTypeDNACDS,
		Sequence:         strings.Repeat("ATGCCGATGCCGAAAAAAAA", 10),
	}
	cons := DefaultConstraints()
	cons.ForbiddenMotifs = []string{"CCGA"}
	cons.RestrictionSites = []string{"EcoRI"}

	first := Score(spec, cons)
	for i := 0; i < 5; i++ {
		if got := Score(spec, cons); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs from first run", i)
		}
	}
}

func TestEmptySequenceStillScores(t *testing.T) {
	res := Score(proteinSpec(""), DefaultConstraints())
	if res.OverallScore < 0 || res.OverallScore > 100 {
		t.Fatalf("overall = %d", res.OverallScore)
	}
	if len(res.Suggestions) == 0 {
		t.Fatal("expected at least the default suggestion")
	}
}

func TestUnclassifiableSequenceDegradesSilently(t *testing.T) {
	// Neither DNA nor protein: detectors skip, shortcut scores apply,
	// no flags are emitted about the alphabet itself.
	res := Score(proteinSpec("123???"), DefaultConstraints())
	if res.SubScores.SequenceSynth != 85 {
		t.Errorf("sequence_synth = %d, want 85", res.SubScores.SequenceSynth)
	}
	if res.SubScores.Developability != 80 {
		t.Errorf("developability = %d, want 80", res.SubScores.Developability)
	}
}
