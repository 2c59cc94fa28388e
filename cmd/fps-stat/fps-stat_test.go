package main

import (
	"bytes"
	"io"
	"log"
	"math"
	"os"
	"testing"

	bench "github.com/fjl/fpsbench"
)

func TestPrintStats(t *testing.T) {
	log.SetOutput(io.Discard)
	defer log.SetOutput(os.Stderr)

	tables := []bench.Table{
		{
			Name: "fps_single", XName: "Frame", YName: "FPS",
			Samples: []bench.Sample{{X: 1, Y: 700}, {X: 2, Y: 750}, {X: 3, Y: 800}, {X: 4, Y: 850}},
		},
		{Name: "empty", XName: "Frame", YName: "FPS"},
		{
			Name: "flat", XName: "Frame", YName: "FPS",
			Samples: []bench.Sample{{X: 1, Y: 1}, {X: 1, Y: 2}},
		},
		{
			Name: "nan", XName: "Frame", YName: "FPS",
			Samples: []bench.Sample{{X: 1, Y: math.NaN()}},
		},
	}
	var buf bytes.Buffer
	failed := printStats(&buf, tables, 1, true)
	if failed != 3 {
		t.Errorf("got %d failures, want 3", failed)
	}
	want := "-- fps_single (4 samples)\n" +
		"  mean FPS: 775.0000\n" +
		"  fit: FPS = 50 * Frame + 650\n" +
		"-- flat (2 samples)\n" +
		"  mean FPS: 1.5000\n"
	if buf.String() != want {
		t.Errorf("wrong output:\n got: %q\nwant: %q", buf.String(), want)
	}
}
