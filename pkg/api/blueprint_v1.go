// pkg/api/blueprint_v1.go
package api

// DomainV1 is one functional domain in a construct blueprint. Start/End are
// optional 0-indexed inclusive positions; omitted means unplaced.
type DomainV1 struct {
	Chain string `json:"chain"`
	Name  string `json:"name"`
	Start *int   `json:"start,omitempty"`
	End   *int   `json:"end,omitempty"`
}

// BlueprintV1 is the stable schema for a construct blueprint.
type BlueprintV1 struct {
	Project  string     `json:"project,omitempty"`
	Modality string     `json:"modality"`
	Chains   []string   `json:"chains"`
	Domains  []DomainV1 `json:"domains"`
	Warnings []string   `json:"warnings"`
}

// BlueprintRequestV1 is the /blueprint request body.
type BlueprintRequestV1 struct {
	CandidateSpec CandidateSpecV1 `json:"candidate_spec"`
}
