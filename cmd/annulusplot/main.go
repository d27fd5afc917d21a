// Command annulusplot draws the tangent chain of an annulus to an image file.
//
// Usage:
//
//	annulusplot [-outer R] [-inner r] [-steps n] [-edges n [-star]] [-tolerance t] [-o file]
//
// With -edges, the inner radius is derived from the outer radius so that the
// chain closes after the given number of edges, and -inner and -steps are
// ignored. Edge counts that admit no polygon are rejected. The output format
// is chosen by the file extension of -o; png, svg, pdf and eps are supported.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"

	"honnef.co/go/annulus"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("annulusplot: ")
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("annulusplot", flag.ExitOnError)
	outer := fs.Float64("outer", 10, "outer radius")
	inner := fs.Float64("inner", 1, "inner radius")
	steps := fs.Int("steps", 1, "number of chain steps")
	edges := fs.Int("edges", 0, "solve for the ratio that closes the chain after this many edges")
	star := fs.Bool("star", false, "with -edges, solve for a star polygon")
	out := fs.String("o", "annulus.png", "output file")
	size := fs.Float64("size", 6, "image width and height in inches")
	samples := fs.Int("samples", annulus.DefaultCircleSamples, "number of points per circle")
	tolerance := fs.Float64("tolerance", annulus.DefaultTolerance, "closure tolerance")
	if err := fs.Parse(args); err != nil {
		return err
	}
	solve := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "edges" {
			solve = true
		}
	})

	limits := annulus.DefaultLimits.WithCircleSamples(*samples).WithTolerance(*tolerance)
	ctrl, err := annulus.NewController(limits)
	if err != nil {
		return err
	}
	if _, _, err := ctrl.SetRadii(*outer, *inner); err != nil {
		return err
	}
	if solve {
		if _, _, err := ctrl.ApplyRatio(*edges, *star); err != nil {
			return err
		}
	} else if _, err := ctrl.SetSteps(*steps); err != nil {
		return err
	}

	r := ctrl.Report()
	printReport(stdout, r)

	p, err := newPlot(r)
	if err != nil {
		return err
	}
	if err := p.Save(vg.Length(*size)*vg.Inch, vg.Length(*size)*vg.Inch, *out); err != nil {
		return fmt.Errorf("saving %s: %w", *out, err)
	}
	return nil
}

func printReport(w io.Writer, r annulus.Report) {
	fmt.Fprintf(w, "outer radius:       %g (range %g–%g)\n", r.Outer, r.Ranges.OuterMin, r.Ranges.OuterMax)
	fmt.Fprintf(w, "inner radius:       %g (range %g–%g)\n", r.Inner, r.Ranges.InnerMin, r.Ranges.InnerMax)
	fmt.Fprintf(w, "ratio:              %s\n", r.Ratio)
	if r.SolvedRatio != "" {
		kind := "polygon"
		if r.Solver.Star {
			kind = "star polygon"
		}
		fmt.Fprintf(w, "solved ratio:       %s (%d-edge %s)\n", r.SolvedRatio, r.Solver.Edges, kind)
	}
	fmt.Fprintf(w, "steps:              %d\n", r.Steps)
	fmt.Fprintf(w, "complete:           %t\n", r.Complete)
	fmt.Fprintf(w, "tangent angle:      %.4f°\n", r.TangentAngle)
	fmt.Fprintf(w, "starting point:     %s\n", r.StartingPoint)
	fmt.Fprintf(w, "tangent point:      %s\n", r.TangentPoint)
	fmt.Fprintf(w, "intersection point: %s\n", r.IntersectionPoint)
	fmt.Fprintf(w, "chain length:       %.4f\n", r.Length)
	fmt.Fprintf(w, "path:               %s\n", r.Path)
}

// xys converts points to plotter data. If closed is set, the first point is
// repeated at the end.
func xys(pts []annulus.Point, closed bool) plotter.XYs {
	out := make(plotter.XYs, 0, len(pts)+1)
	for _, pt := range pts {
		out = append(out, plotter.XY{X: pt.X, Y: pt.Y})
	}
	if closed && len(pts) > 0 {
		out = append(out, plotter.XY{X: pts[0].X, Y: pts[0].Y})
	}
	return out
}

func newPlot(r annulus.Report) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("R = %g, r = %g, %d steps", r.Outer, r.Inner, r.Steps)
	if r.Complete {
		p.Title.Text += " (complete)"
	}
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	b := r.Bounds.Inflate(0.1*r.Outer, 0.1*r.Outer)
	p.X.Min, p.X.Max = b.X0, b.X1
	p.Y.Min, p.Y.Max = b.Y0, b.Y1

	lines := []struct {
		name   string
		pts    []annulus.Point
		closed bool
		width  vg.Length
	}{
		{"inner circle", r.InnerCircle, true, vg.Points(2)},
		{"outer circle", r.OuterCircle, true, vg.Points(2)},
		{"chain", r.Vertices, false, vg.Points(1)},
	}
	for i, l := range lines {
		pl, err := plotter.NewLine(xys(l.pts, l.closed))
		if err != nil {
			return nil, fmt.Errorf("plotting %s: %w", l.name, err)
		}
		pl.LineStyle.Color = plotutil.Color(i)
		pl.LineStyle.Width = l.width
		p.Add(pl)
		p.Legend.Add(l.name, pl)
	}

	anchor, err := plotter.NewScatter(xys(r.Vertices[:1], false))
	if err != nil {
		return nil, fmt.Errorf("plotting anchor: %w", err)
	}
	anchor.GlyphStyle.Color = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	anchor.GlyphStyle.Radius = vg.Points(4)
	p.Add(anchor)
	p.Legend.Add("anchor", anchor)

	return p, nil
}
