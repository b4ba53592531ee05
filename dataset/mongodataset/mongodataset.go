/*
Package mongodataset provides methods to read labeled training pairs
from a MongoDB collection.

Each document is expected to have one field per attribute, named
after it, plus the label field.
*/
package mongodataset

import (
	"context"
	"fmt"

	"github.com/iRapha/decision-trees/attribute"
	"github.com/iRapha/decision-trees/dataset"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

const (
	// DefaultCollectionName is the collection pairs are read from
	// when no collection name is given.
	DefaultCollectionName = "samples"
)

/*
ReadPairs takes a context, a MongoDB session, a collection name (""
meaning DefaultCollectionName), a slice of attributes and the name of
the label field and returns the labeled pairs read from the default
database for the session or an error.

Values are coerced to the attribute's expected type; a document
missing a field yields an example with an undefined value for that
attribute. Labels are read as strings.
*/
func ReadPairs(ctx context.Context, session *mgo.Session, collection string, attributes []attribute.Attribute, labelField string) ([]dataset.Pair, error) {
	if collection == "" {
		collection = DefaultCollectionName
	}
	pairs := []dataset.Pair{}
	iter := session.DB("").C(collection).Find(nil).Iter()
	var doc bson.M
	for iter.Next(&doc) {
		if err := ctx.Err(); err != nil {
			iter.Close()
			return nil, err
		}
		values := make(map[string]interface{})
		for _, a := range attributes {
			v, err := coerceValue(doc[a.Name()], a)
			if err != nil {
				return nil, fmt.Errorf("reading %s document %d: %v", collection, len(pairs)+1, err)
			}
			if v != nil {
				values[a.Name()] = v
			}
		}
		label, ok := doc[labelField].(string)
		if !ok {
			return nil, fmt.Errorf("reading %s document %d: expected a string %s field, got %T", collection, len(pairs)+1, labelField, doc[labelField])
		}
		pairs = append(pairs, dataset.Pair{Example: dataset.NewExample(values), Label: label})
		doc = nil
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("reading %s collection: %v", collection, err)
	}
	return pairs, nil
}

func coerceValue(field interface{}, a attribute.Attribute) (interface{}, error) {
	if field == nil {
		return nil, nil
	}
	switch a.(type) {
	case *attribute.Bool:
		v, ok := field.(bool)
		if !ok {
			return nil, fmt.Errorf("bool attribute %s got %T field value", a.Name(), field)
		}
		return v, nil
	case *attribute.Numeric:
		switch v := field.(type) {
		case float64:
			return v, nil
		case int:
			return float64(v), nil
		case int64:
			return float64(v), nil
		}
		return nil, fmt.Errorf("numeric attribute %s got %T field value", a.Name(), field)
	}
	v, ok := field.(string)
	if !ok {
		return nil, fmt.Errorf("categorical attribute %s got %T field value", a.Name(), field)
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
