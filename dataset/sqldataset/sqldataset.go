/*
Package sqldataset provides methods to read labeled training pairs
from a table in a SQL database.

The table is expected to have one column per attribute, named after
it, plus the label column. Engine-specific connection handling lives
in the adapter subpackages.
*/
package sqldataset

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/iRapha/decision-trees/attribute"
	"github.com/iRapha/decision-trees/dataset"
)

/*
Adapter is an interface for objects that give access to a SQL
database holding training pairs.

Its DB method returns the open database handle.

Its QuoteIdentifier method takes a table or column name and returns
it quoted for the engine, or an error if the name cannot be used as
an identifier.

Its Close method closes the underlying database handle.
*/
type Adapter interface {
	DB() *sql.DB
	QuoteIdentifier(name string) (string, error)
	Close() error
}

/*
ReadPairs takes a context, an adapter, a table name, a slice of
attributes and the name of the label column and returns the labeled
pairs read from the table or an error.

Values are coerced to the attribute's expected type: integer and
float columns to float64 for numeric attributes, boolean or 0/1
columns to bool for bool attributes and text columns to strings for
categorical ones. Labels are read as strings.
*/
func ReadPairs(ctx context.Context, a Adapter, table string, attributes []attribute.Attribute, labelColumn string) ([]dataset.Pair, error) {
	query, err := selectStatement(a, table, attributes, labelColumn)
	if err != nil {
		return nil, err
	}
	rows, err := a.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %v", table, err)
	}
	defer rows.Close()
	pairs := []dataset.Pair{}
	cells := make([]interface{}, len(attributes)+1)
	cellPtrs := make([]interface{}, len(cells))
	for i := range cells {
		cellPtrs[i] = &cells[i]
	}
	for rows.Next() {
		if err = rows.Scan(cellPtrs...); err != nil {
			return nil, fmt.Errorf("scanning %s row: %v", table, err)
		}
		values := make(map[string]interface{})
		for i, attr := range attributes {
			v, err := coerceValue(cells[i], attr)
			if err != nil {
				return nil, fmt.Errorf("reading %s row %d: %v", table, len(pairs)+1, err)
			}
			if v != nil {
				values[attr.Name()] = v
			}
		}
		label, err := coerceString(cells[len(attributes)])
		if err != nil {
			return nil, fmt.Errorf("reading %s row %d label: %v", table, len(pairs)+1, err)
		}
		pairs = append(pairs, dataset.Pair{Example: dataset.NewExample(values), Label: label})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %v", table, err)
	}
	return pairs, nil
}

func selectStatement(a Adapter, table string, attributes []attribute.Attribute, labelColumn string) (string, error) {
	columns := make([]string, 0, len(attributes)+1)
	for _, attr := range attributes {
		column, err := a.QuoteIdentifier(attr.Name())
		if err != nil {
			return "", err
		}
		columns = append(columns, column)
	}
	labelCol, err := a.QuoteIdentifier(labelColumn)
	if err != nil {
		return "", err
	}
	columns = append(columns, labelCol)
	quotedTable, err := a.QuoteIdentifier(table)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("SELECT %s FROM %s", strings.Join(columns, ", "), quotedTable), nil
}

func coerceValue(cell interface{}, a attribute.Attribute) (interface{}, error) {
	if cell == nil {
		return nil, nil
	}
	switch a.(type) {
	case *attribute.Bool:
		switch v := cell.(type) {
		case bool:
			return v, nil
		case int64:
			return v != 0, nil
		}
		return nil, fmt.Errorf("bool attribute %s got %T column value", a.Name(), cell)
	case *attribute.Numeric:
		switch v := cell.(type) {
		case float64:
			return v, nil
		case int64:
			return float64(v), nil
		}
		return nil, fmt.Errorf("numeric attribute %s got %T column value", a.Name(), cell)
	}
	v, err := coerceString(cell)
	if err != nil {
		return nil, fmt.Errorf("categorical attribute %s: %v", a.Name(), err)
	}
	ok, err := a.Valid(v)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("invalid %s value %q", a.Name(), v)
	}
	return v, nil
}

func coerceString(cell interface{}) (string, error) {
	switch v := cell.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	}
	return "", fmt.Errorf("expected a text column value, got %T", cell)
}
