package attribute

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapExample map[string]interface{}

func (me mapExample) ValueFor(ctx context.Context, a Attribute) (interface{}, error) {
	return me[a.Name()], nil
}

func TestBoolTest(t *testing.T) {
	ctx := context.Background()
	test := NewBoolTest(NewBool("windy"))

	ok, err := test.Passes(ctx, mapExample{"windy": true})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = test.Passes(ctx, mapExample{"windy": false})
	require.NoError(t, err)
	assert.False(t, ok)

	// Undefined values fall on the false side.
	ok, err = test.Passes(ctx, mapExample{})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestThresholdTest(t *testing.T) {
	ctx := context.Background()
	test := NewThresholdTest(NewNumeric("humidity"), 75)

	ok, err := test.Passes(ctx, mapExample{"humidity": 80.0})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = test.Passes(ctx, mapExample{"humidity": 75.0})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = test.Passes(ctx, mapExample{"humidity": 60.0})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPivotTest(t *testing.T) {
	ctx := context.Background()
	test := NewPivotTest(NewCategorical("outlook", []string{"sunny", "rain"}), "sunny")

	ok, err := test.Passes(ctx, mapExample{"outlook": "sunny"})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = test.Passes(ctx, mapExample{"outlook": "rain"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewGeneratorBuildsTheStandardTests(t *testing.T) {
	g := NewGenerator(map[string]float64{"humidity": 75}, map[string]string{"outlook": "sunny"})

	test, err := g.TestFor(NewBool("windy"))
	require.NoError(t, err)
	assert.Equal(t, "windy", test.Attribute().Name())

	test, err = g.TestFor(NewNumeric("humidity"))
	require.NoError(t, err)
	assert.Equal(t, "humidity >= 75.000000", test.(interface{ String() string }).String())

	test, err = g.TestFor(NewCategorical("outlook", []string{"sunny", "rain"}))
	require.NoError(t, err)
	assert.Equal(t, "outlook is sunny", test.(interface{ String() string }).String())
}

func TestNewGeneratorRejectsUnparameterizedAttributes(t *testing.T) {
	g := NewGenerator(nil, nil)

	_, err := g.TestFor(NewNumeric("humidity"))
	assert.Error(t, err)

	_, err = g.TestFor(NewCategorical("outlook", []string{"sunny"}))
	assert.Error(t, err)
}

func TestValid(t *testing.T) {
	valid, err := NewBool("windy").Valid(true)
	require.NoError(t, err)
	assert.True(t, valid)

	_, err = NewBool("windy").Valid("yes")
	assert.Error(t, err)

	valid, err = NewNumeric("humidity").Valid(80.0)
	require.NoError(t, err)
	assert.True(t, valid)

	_, err = NewNumeric("humidity").Valid(80)
	assert.Error(t, err)

	valid, err = NewCategorical("outlook", []string{"sunny"}).Valid("sunny")
	require.NoError(t, err)
	assert.True(t, valid)

	_, err = NewCategorical("outlook", []string{"sunny"}).Valid("hail")
	assert.Error(t, err)
}
