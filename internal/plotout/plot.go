// internal/plotout/plot.go
package plotout

import (
	"fmt"

	"dfm-core/seq"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// WriteGCProfile renders the sliding-window GC profile of a DNA sequence
// with dashed lines at the acceptable GC bounds. The output format follows
// the path extension (.png, .svg, .pdf).
func WriteGCProfile(path, title, sequence string, window int, gcMin, gcMax float64) error {
	s := seq.Normalize(sequence)
	wins := seq.SlidingWindowGC(s, window)
	if len(wins) == 0 {
		return fmt.Errorf("sequence too short for GC window %d", window)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "window start (nt)"
	p.Y.Label.Text = "GC fraction"
	p.Y.Min, p.Y.Max = 0, 1

	pts := make(plotter.XYs, len(wins))
	for i, w := range wins {
		pts[i].X = float64(w.Start)
		pts[i].Y = w.Frac
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)

	maxX := float64(wins[len(wins)-1].Start)
	for _, y := range []float64{gcMin, gcMax} {
		thr, err := plotter.NewLine(plotter.XYs{{X: 0, Y: y}, {X: maxX, Y: y}})
		if err != nil {
			return err
		}
		thr.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
		thr.LineStyle.Width = vg.Points(0.5)
		p.Add(thr)
	}
	p.Add(plotter.NewGrid())

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
