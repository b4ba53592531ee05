package tree

import (
	"context"
	"fmt"
	"strings"

	"github.com/iRapha/decision-trees/attribute"
)

/*
Child is a slot under a Node: either a Leaf with a final boolean
verdict, or another *Node to keep asking questions. A node owns both
its children exclusively; the tree is a strict binary tree with no
sharing and no cycles.
*/
type Child interface {
	decide(ctx context.Context, e attribute.Example) (bool, error)
}

/*
Leaf is a terminal boolean verdict. It is assigned when the training
pairs reaching it were pure with respect to the truth label, so the
verdict is exact for the training data.
*/
type Leaf bool

/*
Node is a node of the tree. It asks one binary question, given by
Test, and delegates to TrueChild or FalseChild depending on the
answer. Attribute identifies the attribute the test asks about, for
introspection only; prediction never consults it.
*/
type Node struct {
	Attribute  attribute.Attribute
	Test       attribute.Test
	TrueChild  Child
	FalseChild Child
}

// ClassificationError represents an error related with classifying
// examples against a tree.
type ClassificationError string

/*
ErrMissingChild is the error returned by the Predict method of a node
when the walk reaches a child slot that was never assigned. Trees
built by a Grower always assign both children; this can only be
observed on hand-assembled nodes.
*/
const ErrMissingChild = ClassificationError("node is missing a child verdict")

func (ce ClassificationError) Error() string {
	return string(ce)
}

/*
Predict takes an example and walks the tree from this node evaluating
each node's test against it, until a Leaf is reached, whose verdict
is returned. It returns an error if a test cannot be evaluated on
the example or the walk falls into an unassigned child slot.

The walk is read-only: a grown tree is never mutated, so Predict on
the same tree and example always returns the same verdict.
*/
func (n *Node) Predict(ctx context.Context, e attribute.Example) (bool, error) {
	if n == nil {
		return false, fmt.Errorf("nil tree cannot classify examples")
	}
	return n.decide(ctx, e)
}

func (l Leaf) decide(ctx context.Context, e attribute.Example) (bool, error) {
	return bool(l), nil
}

func (n *Node) decide(ctx context.Context, e attribute.Example) (bool, error) {
	ok, err := n.Test.Passes(ctx, e)
	if err != nil {
		return false, fmt.Errorf("classifying example: evaluating %v: %v", n.Test, err)
	}
	child := n.FalseChild
	if ok {
		child = n.TrueChild
	}
	if child == nil {
		return false, ErrMissingChild
	}
	return child.decide(ctx, e)
}

func (l Leaf) String() string {
	return fmt.Sprintf("{ %t }", bool(l))
}

func (n *Node) String() string {
	result := fmt.Sprintf("[%v]\n|\n", n.Test)
	result = fmt.Sprintf("%s%s", result, childString("yes", n.TrueChild, false))
	return fmt.Sprintf("%s%s", result, childString("no", n.FalseChild, true))
}

func childString(answer string, c Child, last bool) string {
	body := "{ ? }"
	if c != nil {
		body = fmt.Sprintf("%v", c)
	}
	result := ""
	for i, line := range strings.Split(fmt.Sprintf("%s: %s", answer, body), "\n") {
		if len(line) == 0 {
			continue
		}
		if i == 0 {
			result = fmt.Sprintf("%s|__%s\n", result, line)
		} else if last {
			result = fmt.Sprintf("%s   %s\n", result, line)
		} else {
			result = fmt.Sprintf("%s|  %s\n", result, line)
		}
	}
	return result
}
