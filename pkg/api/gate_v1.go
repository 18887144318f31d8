// pkg/api/gate_v1.go
package api

// FlagV1 is the stable JSON schema for one manufacturability finding.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type FlagV1 struct {
	Severity string `json:"severity"` // "info" | "warning" | "error"
	Category string `json:"category"`
	Message  string `json:"message"`
	Location []int  `json:"location,omitempty"` // [start, end], 0-indexed inclusive
}

// SubScoresV1 carries the four component scores, each in [0,100].
type SubScoresV1 struct {
	SequenceSynth  int `json:"sequence_synth"`
	AssemblyRisk   int `json:"assembly_risk"`
	Developability int `json:"developability"`
	ExpressionRisk int `json:"expression_risk"`
}

// ArtifactsV1 bundles renderable outputs attached to a gate result.
type ArtifactsV1 struct {
	NormalizedFasta string         `json:"normalized_fasta"`
	JSONSummary     map[string]any `json:"json_summary,omitempty"`
	MarkdownReport  string         `json:"markdown_report,omitempty"`
}

// GateResultV1 is the stable schema for one scored candidate.
type GateResultV1 struct {
	Project      string      `json:"project,omitempty"`
	SourceFile   string      `json:"source_file,omitempty"`
	OverallScore int         `json:"overall_score"`
	SubScores    SubScoresV1 `json:"sub_scores"`
	Flags        []FlagV1    `json:"flags"`
	Suggestions  []string    `json:"suggestions"`
	Artifacts    ArtifactsV1 `json:"artifacts"`
}

// CandidateSpecV1 is the wire form of a candidate submission.
type CandidateSpecV1 struct {
	ProjectName      string   `json:"project_name"`
	Modality         string   `json:"modality"`
	Targets          []string `json:"targets,omitempty"`
	ExpressionSystem string   `json:"expression_system"`
	SequenceType     string   `json:"sequence_type"`
	Sequence         string   `json:"sequence"`
	Notes            string   `json:"notes,omitempty"`
}

// ConstraintsV1 is the wire form of manufacturing constraints. GC bounds are
// fractions in [0,1].
type ConstraintsV1 struct {
	MaxFragmentLength int      `json:"max_fragment_length"`
	GCMin             float64  `json:"gc_min"`
	GCMax             float64  `json:"gc_max"`
	MaxHomopolymer    int      `json:"max_homopolymer"`
	ForbiddenMotifs   []string `json:"forbidden_motifs,omitempty"`
	RestrictionSites  []string `json:"restriction_sites,omitempty"`
	VendorProfile     string   `json:"vendor_profile,omitempty"`
}

// ScoreRequestV1 is the /score request body. Constraints default when nil.
type ScoreRequestV1 struct {
	CandidateSpec            CandidateSpecV1 `json:"candidate_spec"`
	ManufacturingConstraints *ConstraintsV1  `json:"manufacturing_constraints,omitempty"`
}

// HealthV1 is the /health response body.
type HealthV1 struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
