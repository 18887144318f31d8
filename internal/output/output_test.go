// internal/output/output_test.go
package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"dfm-core/gate"
	"dfm/pkg/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() Scored {
	spec := gate.CandidateSpec{
		ProjectName:      "bsAb-007",
		Modality:         gate.ModalityVHHBispecific,
		Targets:          []string{"CD3", "EGFR"},
		ExpressionSystem: gate.ExpressionEColi,
		SequenceType:     gate.SequenceTypeDNACDS,
		Sequence:         ">bsAb-007\nATGAAAAAACCCGGGTTTATGC",
	}
	return Scored{
		SourceFile: "candidates.fasta",
		Spec:       spec,
		Result:     gate.Score(spec, gate.DefaultConstraints()),
	}
}

func TestRegistryKnownFormats(t *testing.T) {
	for _, f := range []string{"text", "json", "jsonl", "fasta", "markdown"} {
		assert.Contains(t, Formats(), f)
	}
	err := Write("xml", &bytes.Buffer{}, nil, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestWriteTextHeaderAndRow(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write("text", &buf, []Scored{sample()}, true))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, TSVHeader, lines[0])

	cols := strings.Split(lines[1], "\t")
	require.Len(t, cols, 10)
	assert.Equal(t, "candidates.fasta", cols[0])
	assert.Equal(t, "bsAb-007", cols[1])
	assert.Equal(t, "VHH_bispecific", cols[2])
}

func TestWriteTextNoHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write("text", &buf, []Scored{sample()}, false))
	assert.False(t, strings.HasPrefix(buf.String(), "source_file"))
}

func TestWriteJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write("json", &buf, []Scored{sample()}, false))

	var got []api.GateResultV1
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "bsAb-007", got[0].Project)
	assert.Equal(t, "candidates.fasta", got[0].SourceFile)
	assert.NotEmpty(t, got[0].Artifacts.NormalizedFasta)
	assert.NotEmpty(t, got[0].Artifacts.MarkdownReport)
	assert.EqualValues(t, 22, got[0].Artifacts.JSONSummary["sequence_length"])
}

func TestWriteJSONLOneLinePerResult(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write("jsonl", &buf, []Scored{sample(), sample()}, false))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	for _, l := range lines {
		var got api.GateResultV1
		require.NoError(t, json.Unmarshal([]byte(l), &got))
	}
}

func TestWriteFASTA(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write("fasta", &buf, []Scored{sample()}, false))
	assert.True(t, strings.HasPrefix(buf.String(), ">bsAb-007\n"))
	assert.Contains(t, buf.String(), "ATGAAAAAACCCGGGTTTATGC")
}

func TestMarkdownReportSections(t *testing.T) {
	md := MarkdownReport(sample())
	for _, want := range []string{
		"# Manufacturability Report: bsAb-007",
		"## Sub-scores",
		"## Flags",
		"## Suggestions",
		"## Normalized sequence",
	} {
		assert.Contains(t, md, want)
	}
}

func TestMarkdownReportDeterministic(t *testing.T) {
	s := sample()
	assert.Equal(t, MarkdownReport(s), MarkdownReport(s))
}

func TestJSONSummaryFields(t *testing.T) {
	sum := JSONSummary(sample())
	assert.Equal(t, "bsAb-007", sum["project"])
	assert.Equal(t, "ecoli", sum["expression_system"])
	assert.Equal(t, 22, sum["sequence_length"])
	assert.Equal(t, []string{"CD3", "EGFR"}, sum["targets"])
}
