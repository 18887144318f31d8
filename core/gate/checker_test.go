// core/gate/checker_test.go
package gate

import (
	"strings"
	"testing"
)

func TestCheckGCWindowsSeverity(t *testing.T) {
	// 20bp windows over a GC-free stretch: 0.0 < gcMin*0.5 escalates to error.
	seq := strings.Repeat("AT", 20)
	flags := CheckGCWindows(seq, 0.3, 0.7, 20)
	if len(flags) == 0 {
		t.Fatal("expected GC window flags")
	}
	for _, f := range flags {
		if f.Category != CategoryGCContent {
			t.Errorf("category = %s", f.Category)
		}
		if f.Severity != SeverityError {
			t.Errorf("severity = %s, want error for GC far outside band", f.Severity)
		}
	}

	// Mildly low GC stays a warning: 0.25 is below 0.3 but above 0.15.
	seq = strings.Repeat("ATAG", 10) // GC 0.25 in every 20bp window
	flags = CheckGCWindows(seq, 0.3, 0.7, 20)
	if len(flags) == 0 {
		t.Fatal("expected warning flags")
	}
	if flags[0].Severity != SeverityWarning {
		t.Errorf("severity = %s, want warning", flags[0].Severity)
	}
}

func TestCheckGCWindowsSkipsNonDNA(t *testing.T) {
	if flags := CheckGCWindows("MVHLTPEEKSLIPQPPWEDE", 0.3, 0.7, 10); flags != nil {
		t.Fatalf("expected no flags for protein input, got %v", flags)
	}
}

func TestCheckGCWindowsShortSequence(t *testing.T) {
	if flags := CheckGCWindows("ATGC", 0.3, 0.7, 100); flags != nil {
		t.Fatalf("expected no flags for sequence shorter than window, got %v", flags)
	}
}

func TestCheckHomopolymers(t *testing.T) {
	// Spec probe: the A-run sits at positions 3–8.
	flags := CheckHomopolymers("ATGAAAAAACCC", 5)
	if len(flags) == 0 {
		t.Fatal("expected a homopolymer flag")
	}
	f := flags[0]
	if f.Severity != SeverityWarning {
		t.Errorf("severity = %s, want warning (len 6 < threshold+3)", f.Severity)
	}
	if f.Location == nil || f.Location[0] < 3 || f.Location[1] > 9 {
		t.Errorf("location = %v, want within [3,9]", f.Location)
	}
}

func TestCheckHomopolymersEscalation(t *testing.T) {
	// Run of 8 with threshold 5 reaches threshold+3: error.
	flags := CheckHomopolymers("ATGAAAAAAAACCC", 5)
	if len(flags) != 1 || flags[0].Severity != SeverityError {
		t.Fatalf("flags = %v, want one error", flags)
	}
}

func TestCheckRepeatsAggregate(t *testing.T) {
	flags := CheckRepeats("ATGCCGATGCCG", 6)
	if len(flags) != 1 {
		t.Fatalf("want a single aggregate flag, got %v", flags)
	}
	if flags[0].Severity != SeverityWarning || flags[0].Category != CategoryRepeat {
		t.Errorf("flag = %+v", flags[0])
	}
	if flags[0].Location != nil {
		t.Errorf("aggregate repeat flag should carry no location, got %v", flags[0].Location)
	}
	if flags := CheckRepeats("ATGCATTCAG", 6); flags != nil {
		t.Fatalf("expected no repeat flags, got %v", flags)
	}
}

func TestCheckPalindromesCap(t *testing.T) {
	// A long homogeneous stretch is mirror-symmetric everywhere; the flag
	// list is capped even though the detector is not.
	flags := CheckPalindromes(strings.Repeat("A", 30), 8)
	if len(flags) != PalindromeFlagCap {
		t.Fatalf("got %d flags, want cap %d", len(flags), PalindromeFlagCap)
	}
	for _, f := range flags {
		if f.Severity != SeverityInfo {
			t.Errorf("severity = %s, want info", f.Severity)
		}
	}
}

func TestCheckForbiddenMotifs(t *testing.T) {
	flags := CheckForbiddenMotifs("ATGAAAAAAA", []string{"AAAA"})
	if len(flags) == 0 {
		t.Fatal("expected forbidden motif flags")
	}
	for _, f := range flags {
		if f.Severity != SeverityError || f.Category != CategoryForbiddenMotif {
			t.Errorf("flag = %+v", f)
		}
	}
}

func TestCheckRestrictionSites(t *testing.T) {
	seq := "AAGAATTCAA" // EcoRI site at 3–8
	flags := CheckRestrictionSites(seq, []string{"EcoRI"})
	if len(flags) != 1 {
		t.Fatalf("flags = %v", flags)
	}
	if got := flags[0].Location; got[0] != 3 || got[1] != 8 {
		t.Errorf("location = %v, want [3 8]", got)
	}

	// Unknown enzyme names are silently ignored.
	if flags := CheckRestrictionSites(seq, []string{"NotAnEnzyme"}); flags != nil {
		t.Fatalf("unknown enzyme should be ignored, got %v", flags)
	}
}

func TestRecognitionSiteTable(t *testing.T) {
	for name, want := range map[string]string{
		"EcoRI": "GAATTC", "BamHI": "GGATCC", "HindIII": "AAGCTT", "XbaI": "TCTAGA",
	} {
		got, ok := RecognitionSite(name)
		if !ok || got != want {
			t.Errorf("RecognitionSite(%s) = %q,%v", name, got, ok)
		}
	}
	if _, ok := RecognitionSite("NotI"); ok {
		t.Error("NotI should be absent from the placeholder table")
	}
}
