// internal/integration/cancel_integration_test.go
package integration

import (
	"bytes"
	"context"
	"testing"

	"dfm/internal/app"
)

func TestCancelledContextExit130(t *testing.T) {
	fa := write(t, "cand.fa", ">p1\nATGCCCGGG\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out, errBuf bytes.Buffer
	code := app.RunContext(ctx, []string{
		"--sequences", fa,
		"--modality", "Fc_fusion",
	}, &out, &errBuf)
	if code != 130 {
		t.Fatalf("expected exit 130 on cancel, got %d", code)
	}
}
