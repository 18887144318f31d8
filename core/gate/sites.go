// core/gate/sites.go
package gate

// Minimal fixed table of common recognition sequences. Deliberately not a
// real enzyme database; unknown names are ignored by the checker.
var restrictionSites = map[string]string{
	"EcoRI":   "GAATTC",
	"BamHI":   "GGATCC",
	"HindIII": "AAGCTT",
	"XbaI":    "TCTAGA",
}

// RecognitionSite returns the recognition sequence for a known enzyme name.
func RecognitionSite(name string) (string, bool) {
	site, ok := restrictionSites[name]
	return site, ok
}
