// core/seq/gc.go
package seq

// GCWindow is the GC fraction of one fixed-size window.
type GCWindow struct {
	Start int
	Frac  float64
}

// SlidingWindowGC computes the GC fraction for every window start in
// [0, len(s)-window]. A sequence shorter than the window yields no windows.
func SlidingWindowGC(s string, window int) []GCWindow {
	if window <= 0 || len(s) < window {
		return nil
	}
	out := make([]GCWindow, 0, len(s)-window+1)
	for i := 0; i+window <= len(s); i++ {
		gc := 0
		for j := i; j < i+window; j++ {
			switch upper(s[j]) {
			case 'G', 'C':
				gc++
			}
		}
		out = append(out, GCWindow{Start: i, Frac: float64(gc) / float64(window)})
	}
	return out
}
