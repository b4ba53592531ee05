package attribute

import (
	"context"
	"fmt"
)

/*
Test represents a binary question on an attribute.

Its Passes method takes an example and returns a boolean indicating
whether the example falls on the true side of the split.

Its Attribute method returns the attribute the test asks about.
*/
type Test interface {
	Attribute() Attribute
	Passes(ctx context.Context, e Example) (bool, error)
}

/*
Generator is an interface wrapping the TestFor method, which turns a
raw attribute into the binary test a tree will split on. Growers do
not know how tests are generated: a numeric attribute may be tested
against any threshold, a categorical one against any pivot category.
*/
type Generator interface {
	TestFor(a Attribute) (Test, error)
}

/*
GeneratorFunc wraps a function with the TestFor method signature to
implement the Generator interface
*/
type GeneratorFunc func(a Attribute) (Test, error)

/*
TestFor takes an attribute and invokes the GeneratorFunc with it to
return its test or error result.
*/
func (gf GeneratorFunc) TestFor(a Attribute) (Test, error) {
	return gf(a)
}

type boolTest struct {
	attribute *Bool
}

type thresholdTest struct {
	attribute *Numeric
	threshold float64
}

type pivotTest struct {
	attribute *Categorical
	pivot     string
}

/*
NewBoolTest takes a Bool attribute and returns a Test that passes
when the example's value for the attribute is true.
*/
func NewBoolTest(a *Bool) Test {
	return &boolTest{a}
}

/*
NewThresholdTest takes a Numeric attribute and a threshold float64
and returns a Test that passes when the example's value for the
attribute is greater than or equal to the threshold.
*/
func NewThresholdTest(a *Numeric, threshold float64) Test {
	return &thresholdTest{a, threshold}
}

/*
NewPivotTest takes a Categorical attribute and a pivot string and
returns a Test that passes when the example's value for the
attribute equals the pivot.
*/
func NewPivotTest(a *Categorical, pivot string) Test {
	return &pivotTest{a, pivot}
}

/*
NewGenerator takes a map of numeric attribute names to thresholds
and a map of categorical attribute names to pivot categories and
returns a Generator that builds the standard test for each attribute
type: NewBoolTest for Bool attributes, NewThresholdTest for Numeric
ones and NewPivotTest for Categorical ones. Its TestFor method
returns an error for a numeric attribute without a threshold, a
categorical attribute without a pivot or an unknown attribute type.
*/
func NewGenerator(thresholds map[string]float64, pivots map[string]string) Generator {
	return GeneratorFunc(func(a Attribute) (Test, error) {
		switch a := a.(type) {
		case *Bool:
			return NewBoolTest(a), nil
		case *Numeric:
			threshold, ok := thresholds[a.Name()]
			if !ok {
				return nil, fmt.Errorf("no threshold defined for numeric attribute %s", a.Name())
			}
			return NewThresholdTest(a, threshold), nil
		case *Categorical:
			pivot, ok := pivots[a.Name()]
			if !ok {
				return nil, fmt.Errorf("no pivot defined for categorical attribute %s", a.Name())
			}
			return NewPivotTest(a, pivot), nil
		}
		return nil, fmt.Errorf("unknown attribute type %T for attribute %v", a, a.Name())
	})
}

/*
Attribute returns the attribute the test asks about.
*/
func (bt *boolTest) Attribute() Attribute {
	return bt.attribute
}

/*
Passes receives an example as parameter and returns a boolean
indicating whether the example passes the test. Specifically, it
returns true if the example's value for the attribute is the boolean
true, and false if the value is false, undefined or not a boolean.
*/
func (bt *boolTest) Passes(ctx context.Context, e Example) (bool, error) {
	val, err := e.ValueFor(ctx, bt.attribute)
	if err != nil {
		return false, err
	}
	boolVal, ok := val.(bool)
	if !ok {
		return false, nil
	}
	return boolVal, nil
}

func (bt *boolTest) String() string {
	return fmt.Sprintf("%s?", bt.attribute.Name())
}

/*
Attribute returns the attribute the test asks about.
*/
func (tt *thresholdTest) Attribute() Attribute {
	return tt.attribute
}

/*
Passes receives an example as parameter and returns a boolean
indicating whether the example passes the test. Specifically, it
returns true if the example's value for the attribute, being a
float64, is greater than or equal to the test threshold; and false
otherwise.
*/
func (tt *thresholdTest) Passes(ctx context.Context, e Example) (bool, error) {
	val, err := e.ValueFor(ctx, tt.attribute)
	if err != nil {
		return false, err
	}
	floatVal, ok := val.(float64)
	if !ok {
		return false, nil
	}
	return floatVal >= tt.threshold, nil
}

func (tt *thresholdTest) String() string {
	return fmt.Sprintf("%s >= %f", tt.attribute.Name(), tt.threshold)
}

/*
Attribute returns the attribute the test asks about.
*/
func (pt *pivotTest) Attribute() Attribute {
	return pt.attribute
}

/*
Passes receives an example as parameter and returns a boolean
indicating whether the example passes the test. Specifically, it
returns true if the example's value for the attribute, being a
string, equals the test pivot; and false otherwise.
*/
func (pt *pivotTest) Passes(ctx context.Context, e Example) (bool, error) {
	val, err := e.ValueFor(ctx, pt.attribute)
	if err != nil {
		return false, err
	}
	stringVal, ok := val.(string)
	if !ok {
		return false, nil
	}
	return stringVal == pt.pivot, nil
}

func (pt *pivotTest) String() string {
	return fmt.Sprintf("%s is %s", pt.attribute.Name(), pt.pivot)
}
