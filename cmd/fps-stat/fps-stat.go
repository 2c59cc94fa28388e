// Command fps-stat prints the mean of each benchmark table and, optionally, the
// least-squares line through its samples.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	bench "github.com/fjl/fpsbench"
)

func main() {
	var (
		scaleflag = flag.String("scale", "1", "factor applied to means (number or s, ms, us, ns)")
		fitflag   = flag.Bool("fit", false, "also print the linear fit of each table")
		dbflag    = flag.String("db", "", "read tables from this archive instead of CSV files")
	)
	flag.Parse()
	if flag.NArg() == 0 {
		log.Fatal("no input tables")
	}
	scale, err := bench.ParseScale(*scaleflag)
	if err != nil {
		log.Fatal("-scale: ", err)
	}

	var src bench.Source = bench.FileSource{}
	if *dbflag != "" {
		a, err := bench.OpenArchive(*dbflag)
		if err != nil {
			log.Fatal(err)
		}
		defer a.Close()
		src = a
	}
	tables := bench.MustLoadTables(src, flag.Args())
	if failed := printStats(os.Stdout, tables, scale, *fitflag); failed > 0 {
		log.Printf("%d of %d tables failed", failed, len(tables))
		os.Exit(1)
	}
}

// printStats writes statistics for all tables to w. Tables whose statistics
// can't be computed are reported and skipped. It returns the number of failures.
func printStats(w io.Writer, tables []bench.Table, scale float64, fit bool) (failed int) {
	for _, t := range tables {
		sum, err := bench.Summarize(t, scale)
		if err != nil {
			log.Printf("Warning: %v", err)
			failed++
			continue
		}
		fmt.Fprintf(w, "-- %s (%d samples)\n", t.Name, t.Len())
		fmt.Fprintf(w, "  mean %s: %.4f\n", sum.Label, sum.Mean)
		if !fit {
			continue
		}
		tf, err := bench.FitTable(t)
		if err != nil {
			log.Printf("Warning: %v", err)
			failed++
			continue
		}
		fmt.Fprintf(w, "  fit: %s = %.6g * %s + %.6g\n", t.YName, tf.Line.Slope, t.XName, tf.Line.Intercept)
	}
	return failed
}
