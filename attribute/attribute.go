package attribute

import (
	"context"
	"fmt"
)

/*
Attribute represents a property of an example that a decision
tree can ask about.
*/
type Attribute interface {
	Name() string
	Valid(interface{}) (bool, error)
}

/*
Bool represents a property whose observed value is already a
boolean.
*/
type Bool struct {
	name string
}

/*
Numeric represents a property whose observed value is a float64
number. Its binary test compares the value against a threshold.
*/
type Numeric struct {
	name string
}

/*
Categorical represents a property whose observed value is a string
among a finite set of categories. Its binary test compares the
value against a pivot category.
*/
type Categorical struct {
	name       string
	categories []string
}

/*
Example represents an item to classify or to learn from.

Its ValueFor method returns the value of the example for the
attribute passed as parameter, or nil if the example does not
define one.
*/
type Example interface {
	ValueFor(ctx context.Context, a Attribute) (interface{}, error)
}

/*
NewBool takes a name string and returns a boolean attribute with
the given name.
*/
func NewBool(name string) *Bool {
	return &Bool{name}
}

/*
NewNumeric takes a name string and returns a numeric attribute with
the given name.
*/
func NewNumeric(name string) *Numeric {
	return &Numeric{name}
}

/*
NewCategorical takes a name string and a slice of category strings
and returns a categorical attribute with the given name and
categories.
*/
func NewCategorical(name string, categories []string) *Categorical {
	return &Categorical{name, categories}
}

/*
Name returns a string with the name of the attribute
*/
func (b *Bool) Name() string {
	return b.name
}

/*
Valid receives an interface value and returns a boolean and an error.
When the value is nil or a bool the method returns true and nil,
otherwise it returns false and an error describing the reason.
*/
func (b *Bool) Valid(value interface{}) (bool, error) {
	if value == nil {
		return true, nil
	}
	if _, ok := value.(bool); !ok {
		return false, fmt.Errorf("bool attribute %s expects bool value, got %T value", b.Name(), value)
	}
	return true, nil
}

func (b *Bool) String() string {
	return b.name
}

/*
Name returns a string with the name of the attribute
*/
func (n *Numeric) Name() string {
	return n.name
}

/*
Valid receives an interface value and returns a boolean and an error.
When the value is nil or a float64 the method returns true and nil,
otherwise it returns false and an error describing the reason.
*/
func (n *Numeric) Valid(value interface{}) (bool, error) {
	if value == nil {
		return true, nil
	}
	if _, ok := value.(float64); !ok {
		return false, fmt.Errorf("numeric attribute %s expects float64 value, got %T value", n.Name(), value)
	}
	return true, nil
}

func (n *Numeric) String() string {
	return n.name
}

/*
Name returns a string with the name of the attribute
*/
func (c *Categorical) Name() string {
	return c.name
}

/*
Valid receives an interface value and returns a boolean and an error.
When the value is nil or a string included in the categories of the
attribute, the method returns true and nil. Otherwise it returns
false and an error describing the reason.
*/
func (c *Categorical) Valid(value interface{}) (bool, error) {
	if value == nil {
		return true, nil
	}
	vs, ok := value.(string)
	if !ok {
		return false, fmt.Errorf("categorical attribute %s expects string value, got %T value", c.Name(), value)
	}
	for _, category := range c.categories {
		if category == vs {
			return true, nil
		}
	}
	return false, fmt.Errorf("categorical attribute %s got unknown value %s", c.Name(), vs)
}

/*
Categories returns a string slice with the categories available for
the attribute
*/
func (c *Categorical) Categories() []string {
	return c.categories
}

func (c *Categorical) String() string {
	return c.name
}
