// Command fps-import stores CSV benchmark tables in an archive database.
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
		dbflag   = flag.String("db", "", "archive directory")
		listflag = flag.Bool("list", false, "list stored tables and exit")
		delflag  = flag.Bool("delete", false, "delete the named tables instead of importing files")
	)
	flag.Parse()
	if *dbflag == "" {
		fmt.Fprintln(os.Stderr, "Usage:", os.Args[0], "-db <dir> [-list | -delete name... | file.csv...]")
		os.Exit(1)
	}
	a, err := bench.OpenArchive(*dbflag)
	if err != nil {
		log.Fatal(err)
	}
	defer a.Close()

	switch {
	case *listflag:
		err = list(os.Stdout, a)
	case *delflag:
		for _, name := range flag.Args() {
			if err = a.Delete(name); err != nil {
				break
			}
		}
	default:
		tables := bench.MustLoadTables(bench.FileSource{}, flag.Args())
		err = importTables(a, tables)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func importTables(a *bench.Archive, tables []bench.Table) error {
	for _, t := range tables {
		if err := a.Put(t); err != nil {
			return fmt.Errorf("can't store %s: %v", t.Name, err)
		}
		log.Printf("stored %s (%d samples)", t.Name, t.Len())
	}
	return nil
}

func list(w io.Writer, a *bench.Archive) error {
	names, err := a.Names()
	if err != nil {
		return err
	}
	for _, name := range names {
		t, err := a.Get(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%d samples\t%s / %s\n", name, t.Len(), t.XName, t.YName)
	}
	return nil
}
