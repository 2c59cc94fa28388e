package main

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	bench "github.com/fjl/fpsbench"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// limits are optional y axis bounds.
type limits struct {
	min, max       float64
	hasMin, hasMax bool
}

func between(min, max float64) limits {
	return limits{min: min, max: max, hasMin: true, hasMax: true}
}

func (l limits) apply(ax *plot.Axis) {
	if l.hasMin {
		ax.Min = l.min
	}
	if l.hasMax {
		ax.Max = l.max
	}
}

// chart holds the settings of one chart.
type chart struct {
	kind   string // bar, line or fit
	title  string
	scale  float64 // applied to bar chart means
	ylim   limits
	labels []string
}

// fitColors are used for the dashed best-fit lines.
var fitColors = []color.Color{
	color.RGBA{R: 220, A: 255},
	color.RGBA{G: 160, A: 255},
	color.RGBA{B: 200, A: 255},
}

var errNothingToPlot = errors.New("nothing to plot")

func (c chart) label(i int, t bench.Table) string {
	if i < len(c.labels) && c.labels[i] != "" {
		return c.labels[i]
	}
	return t.Name
}

// render creates the plot for the given tables. Tables that can't be plotted
// are skipped with a warning.
func (c chart) render(tables []bench.Table) (*plot.Plot, error) {
	plt := plot.New()
	plt.Title.Text = c.title
	if len(tables) > 0 {
		plt.X.Label.Text = tables[0].XName
		plt.Y.Label.Text = tables[0].YName
	}
	var err error
	switch c.kind {
	case "bar":
		err = c.addBars(plt, tables)
	case "line":
		err = c.addLines(plt, tables, false)
	case "fit":
		err = c.addLines(plt, tables, true)
	default:
		err = fmt.Errorf("unknown plot type %q", c.kind)
	}
	if err != nil {
		return nil, err
	}
	c.ylim.apply(&plt.Y)
	return plt, nil
}

// addBars adds one bar per table showing its scaled mean, labelled with the value.
func (c chart) addBars(plt *plot.Plot, tables []bench.Table) error {
	var (
		names  []string
		points plotter.XYs
		values []string
	)
	for i, t := range tables {
		sum, err := bench.Summarize(t, c.scale)
		if err != nil {
			log.Printf("Warning: skipping bar: %v", err)
			continue
		}
		x := float64(len(names))
		bar, err := plotter.NewBarChart(plotter.Values{sum.Mean}, vg.Points(60))
		if err != nil {
			return err
		}
		bar.XMin = x
		bar.Color = plotutil.Color(i)
		bar.LineStyle.Width = 0
		plt.Add(bar)

		names = append(names, c.label(i, t))
		points = append(points, plotter.XY{X: x, Y: sum.Mean})
		values = append(values, fmt.Sprintf("%.2f", sum.Mean))
	}
	if len(names) == 0 {
		return errNothingToPlot
	}
	lbl, err := plotter.NewLabels(plotter.XYLabels{XYs: points, Labels: values})
	if err != nil {
		return err
	}
	for i := range lbl.TextStyle {
		lbl.TextStyle[i].XAlign = text.XCenter
	}
	lbl.Offset = vg.Point{Y: vg.Points(4)}
	plt.Add(lbl)
	plt.NominalX(names...)
	plt.X.Label.Text = ""
	return nil
}

// addLines adds the raw series of all tables. If withFit is set, a dashed
// least-squares line is drawn over each series.
func (c chart) addLines(plt *plot.Plot, tables []bench.Table, withFit bool) error {
	plt.Legend.Top = true
	added := 0
	for i, t := range tables {
		if t.Len() == 0 {
			log.Printf("Warning: table %s has 0 samples", t.Name)
			continue
		}
		l, err := plotter.NewLine(t)
		if err != nil {
			log.Printf("Warning: skipping %s: %v", t.Name, err)
			continue
		}
		l.Color = plotutil.Color(i)
		plt.Add(l)
		plt.Legend.Add(c.label(i, t), l)
		added++

		if !withFit {
			continue
		}
		fit, err := bench.FitTable(t)
		if err != nil {
			log.Printf("Warning: no best fit line: %v", err)
			continue
		}
		fl, err := plotter.NewLine(fitLine(fit))
		if err != nil {
			return err
		}
		fl.Color = fitColors[i%len(fitColors)]
		fl.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
		plt.Add(fl)
	}
	if added == 0 {
		return errNothingToPlot
	}
	return nil
}

// fitLine plots the fitted values against the sorted x values.
type fitLine bench.TableFit

func (f fitLine) Len() int {
	return len(f.Xs)
}

func (f fitLine) XY(i int) (float64, float64) {
	return f.Xs[i], f.Fitted[i]
}
