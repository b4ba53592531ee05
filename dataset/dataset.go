package dataset

import (
	"context"

	"github.com/iRapha/decision-trees/attribute"
)

const (
	pairCountThresholdForDatasetImplementation = 1000
)

/*
Dataset represents an ordered collection of labeled pairs: an example
together with the label observed for it.

Its Count method returns the number of pairs belonging to it.

Its CountByLabel method takes a truth label and returns the number of
pairs labeled with it and the number of pairs labeled with anything
else. A dataset is pure with respect to a truth label when either
count is zero.

Its Partition method takes an attribute.Test and returns two
subsets: one with the pairs whose example passes the test and one
with the pairs whose example does not. The partition is stable: it
preserves the relative order of pairs within each subset, and every
pair lands in exactly one subset.

Its Pairs method returns the pairs it contains.
*/
type Dataset interface {
	Count(context.Context) (int, error)
	CountByLabel(ctx context.Context, truthLabel interface{}) (positive, negative int, err error)
	Partition(ctx context.Context, t attribute.Test) (trueSubset, falseSubset Dataset, err error)
	Pairs(context.Context) ([]Pair, error)
}

type memoryIntensivePartitioningDataset struct {
	pairs []Pair
}

type cpuIntensivePartitioningDataset struct {
	count       *int
	pairs       []Pair
	constraints []constraint
}

// constraint records on which side of a test the pairs
// of a cpu-intensive subset fall.
type constraint struct {
	test attribute.Test
	want bool
}

/*
New takes a slice of pairs and returns a dataset built with them.
The dataset will be a CPU intensive one when the number of pairs is
over pairCountThresholdForDatasetImplementation
*/
func New(pairs []Pair) Dataset {
	if len(pairs) > pairCountThresholdForDatasetImplementation {
		return &cpuIntensivePartitioningDataset{nil, pairs, nil}
	}
	return &memoryIntensivePartitioningDataset{pairs}
}

/*
NewMemoryIntensive takes a slice of pairs and returns a Dataset built
with them. A memory-intensive dataset is an implementation that
replicates the slice of pairs when partitioning to reduce
calculations at the cost of increased memory.
*/
func NewMemoryIntensive(pairs []Pair) Dataset {
	return &memoryIntensivePartitioningDataset{pairs}
}

/*
NewCPUIntensive takes a slice of pairs and returns a Dataset built
with them. A cpu-intensive dataset is an implementation that instead
of replicating the pairs when partitioning, stores the applying test
constraints to define the subset and keeps the same pair slice. This
can achieve a drastic reduction in memory use that comes at the cost
of CPU time: every calculation that goes over the pairs of the
dataset will apply the test constraints of the dataset on all
original pairs (the ones provided to this method).
*/
func NewCPUIntensive(pairs []Pair) Dataset {
	return &cpuIntensivePartitioningDataset{nil, pairs, nil}
}

func (ds *memoryIntensivePartitioningDataset) Count(ctx context.Context) (int, error) {
	return len(ds.pairs), nil
}

func (ds *cpuIntensivePartitioningDataset) Count(ctx context.Context) (int, error) {
	if ds.count != nil {
		return *ds.count, nil
	}
	var length int
	err := ds.iterateOnDataset(ctx, func(_ Pair) (bool, error) {
		length++
		return true, nil
	})
	if err != nil {
		return 0, err
	}
	ds.count = &length
	return length, nil
}

func (ds *memoryIntensivePartitioningDataset) CountByLabel(ctx context.Context, truthLabel interface{}) (int, int, error) {
	var positive int
	for _, p := range ds.pairs {
		if p.Label == truthLabel {
			positive++
		}
	}
	return positive, len(ds.pairs) - positive, nil
}

func (ds *cpuIntensivePartitioningDataset) CountByLabel(ctx context.Context, truthLabel interface{}) (int, int, error) {
	var positive, total int
	err := ds.iterateOnDataset(ctx, func(p Pair) (bool, error) {
		total++
		if p.Label == truthLabel {
			positive++
		}
		return true, nil
	})
	if err != nil {
		return 0, 0, err
	}
	return positive, total - positive, nil
}

func (ds *memoryIntensivePartitioningDataset) Partition(ctx context.Context, t attribute.Test) (Dataset, Dataset, error) {
	var truePairs, falsePairs []Pair
	for _, p := range ds.pairs {
		ok, err := t.Passes(ctx, p.Example)
		if err != nil {
			return nil, nil, err
		}
		if ok {
			truePairs = append(truePairs, p)
		} else {
			falsePairs = append(falsePairs, p)
		}
	}
	return &memoryIntensivePartitioningDataset{truePairs}, &memoryIntensivePartitioningDataset{falsePairs}, nil
}

func (ds *cpuIntensivePartitioningDataset) Partition(ctx context.Context, t attribute.Test) (Dataset, Dataset, error) {
	trueConstraints := append([]constraint{{t, true}}, ds.constraints...)
	falseConstraints := append([]constraint{{t, false}}, ds.constraints...)
	trueSubset := &cpuIntensivePartitioningDataset{nil, ds.pairs, trueConstraints}
	falseSubset := &cpuIntensivePartitioningDataset{nil, ds.pairs, falseConstraints}
	return trueSubset, falseSubset, nil
}

func (ds *memoryIntensivePartitioningDataset) Pairs(ctx context.Context) ([]Pair, error) {
	return ds.pairs, nil
}

func (ds *cpuIntensivePartitioningDataset) Pairs(ctx context.Context) ([]Pair, error) {
	var pairs []Pair
	err := ds.iterateOnDataset(ctx, func(p Pair) (bool, error) {
		pairs = append(pairs, p)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return pairs, nil
}

func (ds *cpuIntensivePartitioningDataset) iterateOnDataset(ctx context.Context, lambda func(Pair) (bool, error)) error {
	for _, p := range ds.pairs {
		skip := false
		for _, c := range ds.constraints {
			ok, err := c.test.Passes(ctx, p.Example)
			if err != nil {
				return err
			}
			if ok != c.want {
				skip = true
				break
			}
		}
		if !skip {
			ok, err := lambda(p)
			if err != nil {
				return err
			}
			if !ok {
				break
			}
		}
	}
	return nil
}
