// Command fps-plot renders comparison charts of benchmark tables.
//
// Three kinds of chart are supported: "bar" shows the mean of each table,
// "line" shows the raw series and "fit" adds a dashed least-squares line for
// each series.
package main

import (
	"flag"
	"log"
	"strings"

	bench "github.com/fjl/fpsbench"
	"gonum.org/v1/plot/vg"
)

func main() {
	var (
		width    = flag.Int("width", 20, "width of plot in cm")
		height   = flag.Int("height", 12, "height of plot in cm")
		plotType = flag.String("plot", "bar", "type of plot (bar, line, fit)")
		preset   = flag.String("preset", "fps", "chart settings preset (fps, particle)")
		title    = flag.String("title", "", "chart title")
		scale    = flag.String("scale", "", "factor applied to bar chart averages (number or s, ms, us, ns)")
		ymin     = flag.Float64("ymin", 0, "lower y axis limit")
		ymax     = flag.Float64("ymax", 0, "upper y axis limit")
		labels   = flag.String("labels", "", "comma-separated series labels, defaults to table names")
		db       = flag.String("db", "", "read tables from this archive instead of CSV files")
		out      = flag.String("out", "", "output filename")
	)
	flag.Parse()
	if *out == "" {
		log.Fatal("-out is required")
	}
	if flag.NArg() == 0 {
		log.Fatal("no input tables")
	}

	cfg, ok := presets[*preset][*plotType]
	if !ok {
		log.Fatalf("unknown plot type %q for preset %q", *plotType, *preset)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			cfg.title = *title
		case "ymin":
			cfg.ylim.min, cfg.ylim.hasMin = *ymin, true
		case "ymax":
			cfg.ylim.max, cfg.ylim.hasMax = *ymax, true
		}
	})
	if *scale != "" {
		s, err := bench.ParseScale(*scale)
		if err != nil {
			log.Fatal("-scale: ", err)
		}
		cfg.scale = s
	}

	var src bench.Source = bench.FileSource{}
	if *db != "" {
		a, err := bench.OpenArchive(*db)
		if err != nil {
			log.Fatal(err)
		}
		defer a.Close()
		src = a
	}
	tables := bench.MustLoadTables(src, flag.Args())
	if *labels != "" {
		cfg.labels = strings.Split(*labels, ",")
	}

	plt, err := cfg.render(tables)
	if err != nil {
		log.Fatal(err)
	}
	if err := plt.Save(vg.Length(*width)*vg.Centimeter, vg.Length(*height)*vg.Centimeter, *out); err != nil {
		log.Fatal(err)
	}
}

// presets holds the chart settings of the FPS and particle benchmarks.
var presets = map[string]map[string]chart{
	"fps": {
		"bar":  {kind: "bar", title: "Average FPS", scale: 1, ylim: between(0, 1000)},
		"line": {kind: "line", title: "FPS Single vs FPS Multi", scale: 1, ylim: between(700, 900)},
		"fit":  {kind: "fit", title: "FPS Single vs FPS Multi", scale: 1, ylim: between(700, 900)},
	},
	"particle": {
		"bar":  {kind: "bar", title: "Particle Average Frame Time", scale: 1000},
		"line": {kind: "line", title: "Particle FPS Single vs Multi", scale: 1, ylim: between(-0.01, 0.09)},
		"fit":  {kind: "fit", title: "Particle FPS Single vs Multi", scale: 1},
	},
}
