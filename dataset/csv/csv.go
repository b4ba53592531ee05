/*
Package csv provides methods to read labeled training pairs and
unlabeled examples from CSV streams.
*/
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/iRapha/decision-trees/attribute"
	"github.com/iRapha/decision-trees/dataset"
)

/*
ReadPairs takes an io.Reader for a CSV stream, a slice of attributes
and the name of the label column and returns the labeled pairs parsed
from the reader or an error.

The header or first row of the CSV content is expected to contain the
label column and the name of every attribute in the given slice. The
rest of the rows should consist of valid values for all attributes:
true/false for bool attributes, decimal numbers for numeric ones and
declared categories for categorical ones. Labels are read as strings.
*/
func ReadPairs(reader io.Reader, attributes []attribute.Attribute, labelColumn string) ([]dataset.Pair, error) {
	pairs := []dataset.Pair{}
	err := ReadPairsByRow(reader, attributes, labelColumn, func(_ int, p dataset.Pair) (bool, error) {
		pairs = append(pairs, p)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return pairs, nil
}

/*
ReadPairsByRow takes an io.Reader for a CSV stream, a slice of
attributes, the name of the label column and a lambda function on an
integer and a dataset.Pair that returns a boolean value. It parses
the pairs from the reader and for each it calls the lambda function
with the pair and its index as parameters. If the lambda function
returns true, it will continue processing the next pair, otherwise it
will stop. An error is returned if something goes wrong when reading
the stream or parsing a pair.
*/
func ReadPairsByRow(reader io.Reader, attributes []attribute.Attribute, labelColumn string, lambda func(int, dataset.Pair) (bool, error)) error {
	attributesByName := attributeSliceToMap(attributes)
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("reading header: %v", err)
	}
	labelIndex := -1
	columns := make([]attribute.Attribute, len(header))
	for i, name := range header {
		if name == labelColumn {
			labelIndex = i
			continue
		}
		a, ok := attributesByName[name]
		if !ok {
			return fmt.Errorf("reading header: unknown column %s", name)
		}
		columns[i] = a
	}
	if labelIndex < 0 {
		return fmt.Errorf("reading header: no %s label column", labelColumn)
	}
	for l := 2; ; l++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading body: %v", err)
		}
		p, err := parsePairFromRow(row, columns, labelIndex)
		if err != nil {
			return fmt.Errorf("parsing line %d: %v", l, err)
		}
		ok, err := lambda(l-2, p)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	return nil
}

/*
ReadPairsFromFilePath takes a filepath string, a slice of attributes
and the name of the label column, opens the file the filepath points
to (os.Stdin when the filepath is "") and uses ReadPairs to return
the labeled pairs read from it or an error.
*/
func ReadPairsFromFilePath(filepath string, attributes []attribute.Attribute, labelColumn string) ([]dataset.Pair, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("reading training pairs: %v", err)
		}
		defer f.Close()
	}
	pairs, err := ReadPairs(f, attributes, labelColumn)
	if err != nil {
		err = fmt.Errorf("parsing CSV file %s: %v", filepath, err)
	}
	return pairs, err
}

/*
ReadExamples takes an io.Reader for a CSV stream and a slice of
attributes and returns the unlabeled examples parsed from the reader
or an error. The expected content is the same as for ReadPairs
without the label column.
*/
func ReadExamples(reader io.Reader, attributes []attribute.Attribute) ([]attribute.Example, error) {
	examples := []attribute.Example{}
	attributesByName := attributeSliceToMap(attributes)
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %v", err)
	}
	columns := make([]attribute.Attribute, len(header))
	for i, name := range header {
		a, ok := attributesByName[name]
		if !ok {
			return nil, fmt.Errorf("reading header: unknown column %s", name)
		}
		columns[i] = a
	}
	for l := 2; ; l++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading body: %v", err)
		}
		e, err := parseExampleFromRow(row, columns)
		if err != nil {
			return nil, fmt.Errorf("parsing line %d: %v", l, err)
		}
		examples = append(examples, e)
	}
	return examples, nil
}

/*
ReadExamplesFromFilePath takes a filepath string and a slice of
attributes, opens the file the filepath points to (os.Stdin when the
filepath is "") and uses ReadExamples to return the unlabeled
examples read from it or an error.
*/
func ReadExamplesFromFilePath(filepath string, attributes []attribute.Attribute) ([]attribute.Example, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("reading examples: %v", err)
		}
		defer f.Close()
	}
	examples, err := ReadExamples(f, attributes)
	if err != nil {
		err = fmt.Errorf("parsing CSV file %s: %v", filepath, err)
	}
	return examples, err
}

func parsePairFromRow(row []string, columns []attribute.Attribute, labelIndex int) (dataset.Pair, error) {
	values := make(map[string]interface{})
	var label string
	for i, cell := range row {
		if i == labelIndex {
			label = cell
			continue
		}
		a := columns[i]
		if a == nil {
			continue
		}
		v, err := parseValue(cell, a)
		if err != nil {
			return dataset.Pair{}, err
		}
		values[a.Name()] = v
	}
	return dataset.Pair{Example: dataset.NewExample(values), Label: label}, nil
}

func parseExampleFromRow(row []string, columns []attribute.Attribute) (attribute.Example, error) {
	values := make(map[string]interface{})
	for i, cell := range row {
		a := columns[i]
		if a == nil {
			continue
		}
		v, err := parseValue(cell, a)
		if err != nil {
			return nil, err
		}
		values[a.Name()] = v
	}
	return dataset.NewExample(values), nil
}

func parseValue(cell string, a attribute.Attribute) (interface{}, error) {
	var v interface{}
	switch a.(type) {
	case *attribute.Bool:
		b, err := strconv.ParseBool(cell)
		if err != nil {
			return nil, fmt.Errorf("parsing %s value %q: %v", a.Name(), cell, err)
		}
		v = b
	case *attribute.Numeric:
		f, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing %s value %q: %v", a.Name(), cell, err)
		}
		v = f
	default:
		v = cell
	}
	ok, err := a.Valid(v)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("invalid %s value %q", a.Name(), cell)
	}
	return v, nil
}

func attributeSliceToMap(attributes []attribute.Attribute) map[string]attribute.Attribute {
	result := make(map[string]attribute.Attribute)
	for _, a := range attributes {
		result[a.Name()] = a
	}
	return result
}
