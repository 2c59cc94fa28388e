package bench

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

var tablePrefix = []byte("table/")

// Archive stores tables in a LevelDB database.
type Archive struct {
	db *leveldb.DB
}

// OpenArchive opens or creates the archive database in dir.
func OpenArchive(dir string) (*Archive, error) {
	db, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return nil, fmt.Errorf("can't open archive: %v", err)
	}
	return NewArchive(db), nil
}

// NewArchive wraps an open database.
func NewArchive(db *leveldb.DB) *Archive {
	return &Archive{db: db}
}

func tableKey(name string) []byte {
	return append(append([]byte(nil), tablePrefix...), name...)
}

// Put stores t under t.Name, replacing any previous table of that name.
func (a *Archive) Put(t Table) error {
	if t.Name == "" {
		return errors.New("table has no name")
	}
	enc, err := json.Marshal(&t)
	if err != nil {
		return err
	}
	return a.db.Put(tableKey(t.Name), enc, nil)
}

// Get loads the named table.
func (a *Archive) Get(name string) (Table, error) {
	enc, err := a.db.Get(tableKey(name), nil)
	if err == leveldb.ErrNotFound {
		return Table{}, fmt.Errorf("%w %q", ErrNoTable, name)
	} else if err != nil {
		return Table{}, err
	}
	var t Table
	if err := json.Unmarshal(enc, &t); err != nil {
		return Table{}, fmt.Errorf("table %q: %v", name, err)
	}
	return t, nil
}

// Tables implements Source.
func (a *Archive) Tables(name string) ([]Table, error) {
	t, err := a.Get(name)
	if err != nil {
		return nil, err
	}
	return []Table{t}, nil
}

// Delete removes the named table. Deleting a missing table is not an error.
func (a *Archive) Delete(name string) error {
	return a.db.Delete(tableKey(name), nil)
}

// Names returns the names of all stored tables in ascending order.
func (a *Archive) Names() ([]string, error) {
	it := a.db.NewIterator(util.BytesPrefix(tablePrefix), nil)
	defer it.Release()
	var names []string
	for it.Next() {
		names = append(names, string(it.Key()[len(tablePrefix):]))
	}
	return names, it.Error()
}

func (a *Archive) Close() error {
	return a.db.Close()
}
