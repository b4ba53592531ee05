package decisiontrees

import (
	"context"
	"fmt"
	"math"

	"github.com/iRapha/decision-trees/attribute"
	"github.com/iRapha/decision-trees/dataset"
)

// GrowthError represents an error related with growing a tree.
type GrowthError string

const (
	/*
	   ErrEmptyDataset is the error returned when a metric or growing
	   operation is invoked on a dataset with no pairs. The label ratios
	   behind entropy are undefined on an empty dataset, so the
	   precondition is rejected instead of dividing by zero.
	*/
	ErrEmptyDataset = GrowthError("cannot work on an empty dataset")
	/*
	   ErrNoAttributes is the error returned when an attribute must be
	   selected out of an empty candidate slice.
	*/
	ErrNoAttributes = GrowthError("no candidate attributes to select from")
	/*
	   ErrNotConverged is the error returned when recursive induction
	   reaches the grower's maximum depth without every branch becoming
	   pure. This happens on datasets that no available test can ever
	   separate, such as duplicate examples carrying conflicting labels.
	*/
	ErrNotConverged = GrowthError("tree did not converge")
)

func (ge GrowthError) Error() string {
	return string(ge)
}

/*
Info takes the counts of a two-class distribution and returns its
Shannon entropy in bits: the amount of information still packed in a
sample with that many positively and negatively labeled pairs.

A distribution with either count at zero is pure and carries no
information, so 0 is returned without evaluating any logarithm. Info
is symmetric: which class is called positive does not change the
result.
*/
func Info(positive, negative int) float64 {
	if positive == 0 || negative == 0 {
		return 0.0
	}
	total := float64(positive + negative)
	pRatio := float64(positive) / total
	nRatio := float64(negative) / total
	return -pRatio*math.Log2(pRatio) - nRatio*math.Log2(nRatio)
}

/*
Entropy takes a context, a dataset, an attribute test and a truth
label and returns the entropy remaining after splitting the dataset
with the test: the size-weighted average of the Info of each side of
the split. It returns ErrEmptyDataset when the dataset has no pairs,
and an error if the dataset cannot be partitioned or counted.
*/
func Entropy(ctx context.Context, ds dataset.Dataset, t attribute.Test, truthLabel interface{}) (float64, error) {
	count, err := ds.Count(ctx)
	if err != nil {
		return 0.0, err
	}
	if count == 0 {
		return 0.0, ErrEmptyDataset
	}
	trueSubset, falseSubset, err := ds.Partition(ctx, t)
	if err != nil {
		return 0.0, err
	}
	pt, nt, err := trueSubset.CountByLabel(ctx, truthLabel)
	if err != nil {
		return 0.0, err
	}
	pf, nf, err := falseSubset.CountByLabel(ctx, truthLabel)
	if err != nil {
		return 0.0, err
	}
	total := float64(count)
	tRatio := float64(pt+nt) / total
	fRatio := float64(pf+nf) / total
	return tRatio*Info(pt, nt) + fRatio*Info(pf, nf), nil
}

/*
Gain takes a context, a dataset, an attribute test and a truth label
and returns the information gain of splitting the dataset with the
test: the dataset's own Info minus the Entropy left after the split.
A non-informative split gains exactly 0. It returns ErrEmptyDataset
when the dataset has no pairs.
*/
func Gain(ctx context.Context, ds dataset.Dataset, t attribute.Test, truthLabel interface{}) (float64, error) {
	positive, negative, err := ds.CountByLabel(ctx, truthLabel)
	if err != nil {
		return 0.0, err
	}
	if positive+negative == 0 {
		return 0.0, ErrEmptyDataset
	}
	entropy, err := Entropy(ctx, ds, t, truthLabel)
	if err != nil {
		return 0.0, err
	}
	return Info(positive, negative) - entropy, nil
}

/*
PickBest takes a context, a dataset, a slice of candidate attributes,
a test generator and a truth label, generates the test for every
candidate and returns the attribute whose test yields the highest
information gain, along with that test.

Ties are broken by position: of several attributes reaching the
maximal gain, the one appearing first in the candidate slice wins.
Callers wanting reproducible trees must supply the candidates in a
stable order.

It returns ErrNoAttributes on an empty candidate slice, and an error
if a test cannot be generated or a gain cannot be computed.
*/
func PickBest(ctx context.Context, ds dataset.Dataset, attributes []attribute.Attribute, g attribute.Generator, truthLabel interface{}) (attribute.Attribute, attribute.Test, error) {
	if len(attributes) == 0 {
		return nil, nil, ErrNoAttributes
	}
	var best attribute.Attribute
	var bestTest attribute.Test
	bestGain := math.Inf(-1)
	for _, a := range attributes {
		t, err := g.TestFor(a)
		if err != nil {
			return nil, nil, fmt.Errorf("generating test for attribute %s: %v", a.Name(), err)
		}
		gain, err := Gain(ctx, ds, t, truthLabel)
		if err != nil {
			return nil, nil, fmt.Errorf("computing gain for attribute %s: %v", a.Name(), err)
		}
		if gain > bestGain {
			best = a
			bestTest = t
			bestGain = gain
		}
	}
	return best, bestTest, nil
}
