package decisiontrees

import (
	"context"
	"testing"

	"github.com/iRapha/decision-trees/attribute"
	"github.com/iRapha/decision-trees/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfoIsZeroOnPureDistributions(t *testing.T) {
	for _, counts := range [][2]int{{0, 0}, {0, 1}, {1, 0}, {0, 42}, {42, 0}} {
		assert.Zero(t, Info(counts[0], counts[1]), "Info(%d, %d)", counts[0], counts[1])
	}
}

func TestInfoIsSymmetric(t *testing.T) {
	for _, counts := range [][2]int{{1, 1}, {1, 3}, {2, 5}, {7, 13}, {100, 1}} {
		assert.Equal(t, Info(counts[0], counts[1]), Info(counts[1], counts[0]), "Info(%d, %d)", counts[0], counts[1])
	}
}

func TestInfoOfBalancedDistributionIsOneBit(t *testing.T) {
	assert.InDelta(t, 1.0, Info(2, 2), 1e-12)
	assert.InDelta(t, 1.0, Info(50, 50), 1e-12)
}

// The four-pair scenario: attribute a separates the labels perfectly,
// attribute b not at all.
func abDataset() dataset.Dataset {
	return dataset.New([]dataset.Pair{
		{Example: dataset.NewExample(map[string]interface{}{"a": true, "b": true}), Label: 1},
		{Example: dataset.NewExample(map[string]interface{}{"a": true, "b": false}), Label: 1},
		{Example: dataset.NewExample(map[string]interface{}{"a": false, "b": true}), Label: 0},
		{Example: dataset.NewExample(map[string]interface{}{"a": false, "b": false}), Label: 0},
	})
}

func abAttributes() ([]attribute.Attribute, attribute.Generator) {
	attributes := []attribute.Attribute{attribute.NewBool("a"), attribute.NewBool("b")}
	return attributes, attribute.NewGenerator(nil, nil)
}

func TestEntropyOfPerfectSplitIsZero(t *testing.T) {
	ctx := context.Background()
	e, err := Entropy(ctx, abDataset(), attribute.NewBoolTest(attribute.NewBool("a")), 1)
	require.NoError(t, err)
	assert.Zero(t, e)
}

func TestEntropyOfUninformativeSplitIsOneBit(t *testing.T) {
	ctx := context.Background()
	e, err := Entropy(ctx, abDataset(), attribute.NewBoolTest(attribute.NewBool("b")), 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, e, 1e-12)
}

func TestEntropyRejectsEmptyDataset(t *testing.T) {
	ctx := context.Background()
	_, err := Entropy(ctx, dataset.New(nil), attribute.NewBoolTest(attribute.NewBool("a")), 1)
	assert.Equal(t, ErrEmptyDataset, err)
}

func TestGain(t *testing.T) {
	ctx := context.Background()
	ds := abDataset()

	g, err := Gain(ctx, ds, attribute.NewBoolTest(attribute.NewBool("a")), 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, g, 1e-12)

	g, err = Gain(ctx, ds, attribute.NewBoolTest(attribute.NewBool("b")), 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, g, 1e-12)
}

func TestGainIsNeverMeaningfullyNegative(t *testing.T) {
	ctx := context.Background()
	ds := dataset.New([]dataset.Pair{
		{Example: dataset.NewExample(map[string]interface{}{"a": true}), Label: "yes"},
		{Example: dataset.NewExample(map[string]interface{}{"a": true}), Label: "no"},
		{Example: dataset.NewExample(map[string]interface{}{"a": false}), Label: "yes"},
		{Example: dataset.NewExample(map[string]interface{}{"a": false}), Label: "no"},
		{Example: dataset.NewExample(map[string]interface{}{"a": false}), Label: "yes"},
	})
	g, err := Gain(ctx, ds, attribute.NewBoolTest(attribute.NewBool("a")), "yes")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, g, -1e-12)
}

func TestGainRejectsEmptyDataset(t *testing.T) {
	ctx := context.Background()
	_, err := Gain(ctx, dataset.New(nil), attribute.NewBoolTest(attribute.NewBool("a")), 1)
	assert.Equal(t, ErrEmptyDataset, err)
}

func TestPickBestSelectsMaximalGainAttribute(t *testing.T) {
	ctx := context.Background()
	attributes, generator := abAttributes()
	best, test, err := PickBest(ctx, abDataset(), attributes, generator, 1)
	require.NoError(t, err)
	assert.Equal(t, "a", best.Name())
	require.NotNil(t, test)
	assert.Equal(t, "a", test.Attribute().Name())
}

func TestPickBestBreaksTiesByPosition(t *testing.T) {
	ctx := context.Background()
	// Both attributes carry the same value for every example, so both
	// splits gain exactly 0; the first candidate must win.
	ds := dataset.New([]dataset.Pair{
		{Example: dataset.NewExample(map[string]interface{}{"a": true, "b": true}), Label: 1},
		{Example: dataset.NewExample(map[string]interface{}{"a": true, "b": true}), Label: 0},
	})
	generator := attribute.NewGenerator(nil, nil)

	best, _, err := PickBest(ctx, ds, []attribute.Attribute{attribute.NewBool("a"), attribute.NewBool("b")}, generator, 1)
	require.NoError(t, err)
	assert.Equal(t, "a", best.Name())

	best, _, err = PickBest(ctx, ds, []attribute.Attribute{attribute.NewBool("b"), attribute.NewBool("a")}, generator, 1)
	require.NoError(t, err)
	assert.Equal(t, "b", best.Name())
}

func TestPickBestRejectsEmptyCandidates(t *testing.T) {
	ctx := context.Background()
	_, _, err := PickBest(ctx, abDataset(), nil, attribute.NewGenerator(nil, nil), 1)
	assert.Equal(t, ErrNoAttributes, err)
}
