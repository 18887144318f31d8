// internal/blueprintapp/app_test.go
package blueprintapp

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dfm/pkg/api"
)

func write(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func TestRunJSON(t *testing.T) {
	fa := write(t, "cand.fa", ">p1\n"+strings.Repeat("MVHLTPEEKS", 20)+"\n")

	var out, errBuf bytes.Buffer
	code := Run([]string{
		"--sequences", fa,
		"--modality", "VHH_bispecific",
	}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d err %s", code, errBuf.String())
	}

	var got []api.BlueprintV1
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 1 || got[0].Project != "p1" {
		t.Fatalf("bad payload %+v", got)
	}
	if len(got[0].Chains) != 1 || got[0].Chains[0] != "ScVHH" {
		t.Fatalf("chains = %v", got[0].Chains)
	}
}

func TestRunTextUnknownModality(t *testing.T) {
	fa := write(t, "cand.fa", ">p1\nMVHL\n")

	var out, errBuf bytes.Buffer
	code := Run([]string{
		"--sequences", fa,
		"--modality", "diabody",
		"--output", "text",
	}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d err %s", code, errBuf.String())
	}
	if !strings.Contains(out.String(), "Unknown modality") {
		t.Fatalf("out = %q", out.String())
	}
}

func TestRunUsageError(t *testing.T) {
	var out, errBuf bytes.Buffer
	if code := Run([]string{"--modality", "Fc_fusion"}, &out, &errBuf); code != 2 {
		t.Fatalf("want exit 2 with no sequences, got %d", code)
	}
}
