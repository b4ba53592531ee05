package dataset

import (
	"context"
	"fmt"

	"github.com/iRapha/decision-trees/attribute"
)

/*
Pair represents a labeled example: an item to learn from, together
with the label observed for it. Labels are opaque comparable values;
the grower only ever compares them against the truth label.
*/
type Pair struct {
	Example attribute.Example
	Label   interface{}
}

type example struct {
	attributeValues map[string]interface{}
}

/*
NewExample takes a map of attribute string names to values and
returns an example.
*/
func NewExample(attributeValues map[string]interface{}) attribute.Example {
	return &example{attributeValues}
}

func (e *example) ValueFor(ctx context.Context, a attribute.Attribute) (interface{}, error) {
	return e.attributeValues[a.Name()], nil
}

func (e *example) String() string {
	return fmt.Sprintf("[%v]", e.attributeValues)
}
