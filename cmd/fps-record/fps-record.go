// Command fps-record runs the particle workload and records per-frame timings
// as benchmark tables.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	bench "github.com/fjl/fpsbench"
	"github.com/fjl/fpsbench/particle"
)

func main() {
	var (
		runflag       = flag.String("run", "single,multi", "runs to perform ("+strings.Join(runnames(), ", ")+")")
		unitflag      = flag.String("unit", "frametime", "recorded value (frametime, fps)")
		durationflag  = flag.Duration("duration", 20*time.Second, "length of each run")
		framesflag    = flag.Int("frames", 0, "stop each run after this many frames")
		particlesflag = flag.Int("particles", particle.DefaultConfig.Count, "number of particles")
		prefixflag    = flag.String("prefix", "particle_", "prefix of table names")
		logdirflag    = flag.String("logdir", ".", "CSV output directory")
		dbflag        = flag.String("db", "", "store tables in this archive instead of CSV files")

		run []string
		cfg bench.RecordConfig
		err error
	)
	flag.Parse()

	for _, r := range strings.Split(*runflag, ",") {
		r = strings.TrimSpace(r)
		if _, ok := runs[r]; !ok {
			log.Fatalf("unknown run %q", r)
		}
		run = append(run, r)
	}
	if cfg.Unit, err = bench.ParseUnit(*unitflag); err != nil {
		log.Fatal("-unit: ", err)
	}
	cfg.Duration = *durationflag
	cfg.LogPercent = true

	var store func(bench.Table) error
	if *dbflag != "" {
		a, err := bench.OpenArchive(*dbflag)
		if err != nil {
			log.Fatal(err)
		}
		defer a.Close()
		store = a.Put
	} else {
		if err := os.MkdirAll(*logdirflag, 0755); err != nil {
			log.Fatalf("can't create log dir: %v", err)
		}
		store = func(t bench.Table) error { return writeCSV(*logdirflag, t) }
	}

	sys := particle.DefaultConfig
	sys.Count = *particlesflag
	anyErr := false
	for _, name := range run {
		rc := runs[name]
		rc.Duration = *durationflag
		rc.Frames = *framesflag
		cfg.Name = *prefixflag + name
		t, err := record(context.Background(), sys, rc, cfg)
		if err == nil {
			err = store(t)
		}
		if err != nil {
			log.Printf("run %q failed: %v", name, err)
			anyErr = true
		}
	}
	if anyErr {
		os.Exit(1)
	}
}

// record performs one run and returns the recorded table.
func record(ctx context.Context, sys particle.Config, rc particle.RunConfig, cfg bench.RecordConfig) (bench.Table, error) {
	log.Printf("== running %q (%d particles, %s)", cfg.Name, sys.Count, rc.Mode)
	rec := bench.NewRecorder(cfg)
	rec.Start()
	if err := particle.Run(ctx, particle.New(sys), rc, rec); err != nil {
		return bench.Table{}, err
	}
	return rec.Table(), nil
}

func writeCSV(dir string, t bench.Table) error {
	f, err := os.Create(filepath.Join(dir, t.Name+".csv"))
	if err != nil {
		return err
	}
	if err := bench.WriteTable(f, t); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

var runs = map[string]particle.RunConfig{
	"single":  {Mode: particle.Single, Step: 0.016},
	"multi":   {Mode: particle.Multi, Step: 0.016},
	"multi-2": {Mode: particle.Multi, Step: 0.016, Workers: 2},
	"multi-4": {Mode: particle.Multi, Step: 0.016, Workers: 4},
	"multi-8": {Mode: particle.Multi, Step: 0.016, Workers: 8},
}

func runnames() (n []string) {
	for name := range runs {
		n = append(n, name)
	}
	sort.Strings(n)
	return n
}
