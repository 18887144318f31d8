// core/gate/types.go
package gate

import "fmt"

// Severity of a flag.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Category groups flags by the finding that produced them.
type Category string

const (
	CategoryGCContent           Category = "gc_content"
	CategoryHomopolymer         Category = "homopolymer"
	CategoryRepeat              Category = "repeat"
	CategoryPalindrome          Category = "palindrome"
	CategoryForbiddenMotif      Category = "forbidden_motif"
	CategoryRestrictionSite     Category = "restriction_site"
	CategoryGlycosylation       Category = "glycosylation"
	CategoryDeamidation         Category = "deamidation"
	CategoryOxidation           Category = "oxidation"
	CategoryProteolyticCleavage Category = "proteolytic_cleavage"
	CategoryCodonBias           Category = "codon_bias"
	CategoryAssemblyComplexity  Category = "assembly_complexity"
	CategoryLinkerLength        Category = "linker_length"
	CategoryGeneral             Category = "general"
)

// Modality is the architectural class of a biologic construct.
type Modality string

const (
	ModalityIgGBispecific Modality = "IgG_like_bispecific"
	ModalityVHHBispecific Modality = "VHH_bispecific"
	ModalityFabScFv       Modality = "Fab_scFv"
	ModalityFcFusion      Modality = "Fc_fusion"
)

// Modalities lists the supported modalities.
var Modalities = []Modality{
	ModalityIgGBispecific, ModalityVHHBispecific, ModalityFabScFv, ModalityFcFusion,
}

// ExpressionSystem is the production system the construct targets.
type ExpressionSystem string

const (
	ExpressionMammalian ExpressionSystem = "mammalian"
	ExpressionYeast     ExpressionSystem = "yeast"
	ExpressionEColi     ExpressionSystem = "ecoli"
	ExpressionCellFree  ExpressionSystem = "cell_free"
)

// ExpressionSystems lists the supported expression systems.
var ExpressionSystems = []ExpressionSystem{
	ExpressionMammalian, ExpressionYeast, ExpressionEColi, ExpressionCellFree,
}

// SequenceType declares what the caller believes the sequence is.
type SequenceType string

const (
	SequenceTypeProtein SequenceType = "protein"
	SequenceTypeDNACDS  SequenceType = "dna_cds"
)

// Flag is one finding. Immutable once created. Location is nil or a
// [start, end] pair, 0-indexed inclusive. Flag order follows detector
// invocation order, not position or severity.
type Flag struct {
	Severity Severity
	Category Category
	Message  string
	Location []int
}

// SubScores are the four component scores, each in [0,100].
type SubScores struct {
	SequenceSynth  int
	AssemblyRisk   int
	Developability int
	ExpressionRisk int
}

// Artifacts carries engine-produced renderable output. Richer renderings
// (JSON summary, markdown report) are composed outside the engine.
type Artifacts struct {
	NormalizedFasta string
}

// GateResult is the outcome of one scoring call. Constructed once,
// never mutated, never persisted by the engine.
type GateResult struct {
	OverallScore int
	SubScores    SubScores
	Flags        []Flag
	Suggestions  []string
	Artifacts    Artifacts
}

// CandidateSpec is the input candidate: raw sequence plus construct
// metadata. The request layer validates it before scoring.
type CandidateSpec struct {
	ProjectName      string
	Modality         Modality
	Targets          []string
	ExpressionSystem ExpressionSystem
	SequenceType     SequenceType
	Sequence         string
	Notes            string
}

// Constraints are the manufacturing thresholds used by the checker and the
// synthesis scorer. The engine does not validate them; callers run
// Validate at the boundary.
type Constraints struct {
	MaxFragmentLength int
	GCMin             float64
	GCMax             float64
	MaxHomopolymer    int
	ForbiddenMotifs   []string
	RestrictionSites  []string
	VendorProfile     string
}

// DefaultConstraints returns the generic vendor profile.
func DefaultConstraints() Constraints {
	return Constraints{
		MaxFragmentLength: 500,
		GCMin:             0.3,
		GCMax:             0.7,
		MaxHomopolymer:    6,
		VendorProfile:     "generic",
	}
}

// Validate checks constraint ranges: fragment length 50–5000, GC bounds in
// [0,1] with GCMin <= GCMax, homopolymer threshold 3–15.
func (c Constraints) Validate() error {
	if c.MaxFragmentLength < 50 || c.MaxFragmentLength > 5000 {
		return fmt.Errorf("max fragment length %d outside [50,5000]", c.MaxFragmentLength)
	}
	if c.GCMin < 0 || c.GCMin > 1 || c.GCMax < 0 || c.GCMax > 1 {
		return fmt.Errorf("gc bounds [%g,%g] outside [0,1]", c.GCMin, c.GCMax)
	}
	if c.GCMin > c.GCMax {
		return fmt.Errorf("gc_min %g exceeds gc_max %g", c.GCMin, c.GCMax)
	}
	if c.MaxHomopolymer < 3 || c.MaxHomopolymer > 15 {
		return fmt.Errorf("max homopolymer %d outside [3,15]", c.MaxHomopolymer)
	}
	return nil
}

// ValidModality reports membership in the closed modality set.
func ValidModality(m Modality) bool {
	for _, v := range Modalities {
		if m == v {
			return true
		}
	}
	return false
}

// ValidExpressionSystem reports membership in the closed system set.
func ValidExpressionSystem(e ExpressionSystem) bool {
	for _, v := range ExpressionSystems {
		if e == v {
			return true
		}
	}
	return false
}

func span(start, end int) []int { return []int{start, end} }
