package tree

import (
	"context"
	"testing"

	"github.com/iRapha/decision-trees/attribute"
	"github.com/iRapha/decision-trees/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoTree() *Node {
	a := attribute.NewBool("a")
	b := attribute.NewBool("b")
	return &Node{
		Attribute: a,
		Test:      attribute.NewBoolTest(a),
		TrueChild: Leaf(true),
		FalseChild: &Node{
			Attribute:  b,
			Test:       attribute.NewBoolTest(b),
			TrueChild:  Leaf(false),
			FalseChild: Leaf(true),
		},
	}
}

func TestPredictWalksToTheRightLeaf(t *testing.T) {
	ctx := context.Background()
	root := demoTree()

	cases := []struct {
		a, b    bool
		verdict bool
	}{
		{true, true, true},
		{true, false, true},
		{false, true, false},
		{false, false, true},
	}
	for _, c := range cases {
		e := dataset.NewExample(map[string]interface{}{"a": c.a, "b": c.b})
		verdict, err := root.Predict(ctx, e)
		require.NoError(t, err)
		assert.Equal(t, c.verdict, verdict, "a=%t b=%t", c.a, c.b)
	}
}

func TestPredictIsIdempotent(t *testing.T) {
	ctx := context.Background()
	root := demoTree()
	e := dataset.NewExample(map[string]interface{}{"a": false, "b": true})

	first, err := root.Predict(ctx, e)
	require.NoError(t, err)
	second, err := root.Predict(ctx, e)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPredictOnNilTreeFails(t *testing.T) {
	ctx := context.Background()
	var root *Node
	_, err := root.Predict(ctx, dataset.NewExample(nil))
	assert.Error(t, err)
}

func TestPredictOnMissingChildFails(t *testing.T) {
	ctx := context.Background()
	a := attribute.NewBool("a")
	root := &Node{Attribute: a, Test: attribute.NewBoolTest(a), TrueChild: Leaf(true)}

	_, err := root.Predict(ctx, dataset.NewExample(map[string]interface{}{"a": false}))
	assert.Equal(t, ErrMissingChild, err)
}

func TestStringSketchesTheTree(t *testing.T) {
	sketch := demoTree().String()
	assert.Contains(t, sketch, "[a?]")
	assert.Contains(t, sketch, "b?")
	assert.Contains(t, sketch, "{ true }")
	assert.Contains(t, sketch, "{ false }")
}
