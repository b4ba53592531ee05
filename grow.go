/*
Package decisiontrees grows binary decision trees from labeled
examples with ID3-style greedy induction, and classifies new examples
with the grown trees.

At every node the grower asks the caller-supplied test generator for
a binary test per candidate attribute, keeps the test with the
highest information gain, partitions the training pairs with it and
recurses on each side until the pairs reaching a branch all agree on
their relationship to the truth label, at which point the branch is
materialized as a boolean leaf verdict.
*/
package decisiontrees

import (
	"context"

	"github.com/iRapha/decision-trees/attribute"
	"github.com/iRapha/decision-trees/dataset"
	"github.com/iRapha/decision-trees/tree"
)

/*
DefaultMaxDepth is the maximum recursion depth a Grower accepts when
none is configured. Candidate attributes are never consumed while
descending, so depth is the only bound on induction: without it a
dataset that no test can purify would recurse forever.
*/
const DefaultMaxDepth = 64

/*
Grower holds everything needed to grow a tree except the training
data itself: the candidate attributes, the generator producing the
binary test asked at each node, the truth label designating the
positive class, and the depth guard.

The candidate slice order matters: it is the tie-breaking order of
attribute selection. The same full slice is offered at every depth;
an attribute already split on by an ancestor may be selected again,
which is meaningful when its generated test encodes a threshold.
*/
type Grower struct {
	// Candidate attributes, in tie-breaking order.
	Attributes []attribute.Attribute
	// Generator for the binary test of each candidate.
	Generator attribute.Generator
	// The label value treated as the positive class. Any pair
	// labeled with anything else counts as negative, which is only
	// a faithful model of two-class data.
	TruthLabel interface{}
	// MaxDepth bounds the recursion; Grow reports ErrNotConverged
	// when it is reached. The zero value selects DefaultMaxDepth.
	MaxDepth int
}

/*
New takes a slice of candidate attributes, a test generator and a
truth label and returns a Grower with the default maximum depth.
*/
func New(attributes []attribute.Attribute, g attribute.Generator, truthLabel interface{}) *Grower {
	return &Grower{
		Attributes: attributes,
		Generator:  g,
		TruthLabel: truthLabel,
		MaxDepth:   DefaultMaxDepth,
	}
}

/*
Grow takes a context and a dataset of labeled pairs and returns the
root node of a tree fitting them, or an error.

It returns ErrEmptyDataset on a dataset with no pairs,
ErrNoAttributes when the grower has no candidate attributes,
ErrNotConverged when the depth guard trips before every branch is
pure, the context's error if it expires, and any error surfaced by
the dataset or the test generator.
*/
func (g *Grower) Grow(ctx context.Context, ds dataset.Dataset) (*tree.Node, error) {
	count, err := ds.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrEmptyDataset
	}
	if len(g.Attributes) == 0 {
		return nil, ErrNoAttributes
	}
	maxDepth := g.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return g.grow(ctx, ds, maxDepth)
}

func (g *Grower) grow(ctx context.Context, ds dataset.Dataset, depthLeft int) (*tree.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if depthLeft == 0 {
		return nil, ErrNotConverged
	}
	a, t, err := PickBest(ctx, ds, g.Attributes, g.Generator, g.TruthLabel)
	if err != nil {
		return nil, err
	}
	n := &tree.Node{Attribute: a, Test: t}
	trueSubset, falseSubset, err := ds.Partition(ctx, t)
	if err != nil {
		return nil, err
	}
	n.TrueChild, err = g.child(ctx, ds, trueSubset, depthLeft)
	if err != nil {
		return nil, err
	}
	n.FalseChild, err = g.child(ctx, ds, falseSubset, depthLeft)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// child materializes one side of a split: a leaf verdict when the
// subset is pure, a grown subtree when it is not. A subset of one
// pair is always pure, so it short-circuits to a leaf here without
// another attribute selection.
func (g *Grower) child(ctx context.Context, parent, subset dataset.Dataset, depthLeft int) (tree.Child, error) {
	positive, negative, err := subset.CountByLabel(ctx, g.TruthLabel)
	if err != nil {
		return nil, err
	}
	if positive+negative == 0 {
		// The split sent every pair to the other side; fall back to
		// the parent's majority verdict.
		return g.majorityLeaf(ctx, parent)
	}
	if Info(positive, negative) == 0 {
		return tree.Leaf(positive > 0), nil
	}
	return g.grow(ctx, subset, depthLeft-1)
}

func (g *Grower) majorityLeaf(ctx context.Context, ds dataset.Dataset) (tree.Child, error) {
	positive, negative, err := ds.CountByLabel(ctx, g.TruthLabel)
	if err != nil {
		return nil, err
	}
	return tree.Leaf(positive > negative), nil
}
