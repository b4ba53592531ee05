/*
Package sqlite3adapter provides an implementation of the Adapter
interface in the sqldataset package that works over an SQLite3
database file.
*/
package sqlite3adapter

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/iRapha/decision-trees/dataset/sqldataset"

	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
)

type adapter struct {
	db *sql.DB
}

/*
New takes a path to an SQLite3 database file and a maximum number of
open connections (0 meaning no limit) and returns an Adapter that
works on the file's database or an error if it fails to open as an
sqlite3 database.
*/
func New(path string, maxConns int) (sqldataset.Adapter, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if maxConns > 0 {
		db.SetMaxOpenConns(maxConns)
	}
	return &adapter{db}, nil
}

func (a *adapter) DB() *sql.DB {
	return a.db
}

func (a *adapter) QuoteIdentifier(name string) (string, error) {
	if strings.ContainsAny(name, `"`) {
		return "", fmt.Errorf(`identifier '%s' contains invalid character '"'`, name)
	}
	return fmt.Sprintf(`"%s"`, name), nil
}

func (a *adapter) Close() error {
	return a.db.Close()
}
