/*
Package pgadapter provides an implementation of the Adapter interface
in the sqldataset package that works over a PostgreSQL database.
*/
package pgadapter

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/iRapha/decision-trees/dataset/sqldataset"

	// Import of PostgreSQL driver
	_ "github.com/lib/pq"
)

type adapter struct {
	db *sql.DB
}

/*
New takes a PostgreSQL database connection URL and returns an Adapter
that works on the database or an error if it fails to connect to it.
*/
func New(url string) (sqldataset.Adapter, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
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
