package bench

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"
)

// Source provides tables by name.
type Source interface {
	Tables(name string) ([]Table, error)
}

// FileSource reads tables from CSV files. Names are file paths.
type FileSource struct{}

func (FileSource) Tables(file string) ([]Table, error) {
	return ReadTables(file)
}

// LoadTables loads all named inputs from src concurrently. The result keeps the
// order of names; an input holding several tables contributes all of them.
func LoadTables(ctx context.Context, src Source, names []string) ([]Table, error) {
	results := make([][]Table, len(names))
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, err := src.Tables(name)
			if err != nil {
				return err
			}
			results[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var tables []Table
	for _, r := range results {
		tables = append(tables, r...)
	}
	return tables, nil
}

// MustLoadTables is like LoadTables but exits the program on error.
func MustLoadTables(src Source, names []string) []Table {
	tables, err := LoadTables(context.Background(), src, names)
	if err != nil {
		log.Fatal(err)
	}
	return tables
}
