package csv

import (
	"context"
	"strings"
	"testing"

	"github.com/iRapha/decision-trees/attribute"
	"github.com/iRapha/decision-trees/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weatherAttributes() []attribute.Attribute {
	return []attribute.Attribute{
		attribute.NewCategorical("outlook", []string{"sunny", "overcast", "rain"}),
		attribute.NewNumeric("humidity"),
		attribute.NewBool("windy"),
	}
}

const weatherCSV = `outlook,humidity,windy,play
sunny,80,false,no
sunny,60,false,yes
rain,70,true,no
`

func TestReadPairs(t *testing.T) {
	pairs, err := ReadPairs(strings.NewReader(weatherCSV), weatherAttributes(), "play")
	require.NoError(t, err)
	require.Len(t, pairs, 3)

	assert.Equal(t, "no", pairs[0].Label)
	assert.Equal(t, "yes", pairs[1].Label)

	v, err := pairs[0].Example.ValueFor(context.Background(), attribute.NewCategorical("outlook", nil))
	require.NoError(t, err)
	assert.Equal(t, "sunny", v)

	v, err = pairs[2].Example.ValueFor(context.Background(), attribute.NewNumeric("humidity"))
	require.NoError(t, err)
	assert.Equal(t, 70.0, v)

	v, err = pairs[2].Example.ValueFor(context.Background(), attribute.NewBool("windy"))
	require.NoError(t, err)
	assert.Equal(t, true, v)
}

func TestReadPairsByRowStopsWhenTold(t *testing.T) {
	var seen int
	err := ReadPairsByRow(strings.NewReader(weatherCSV), weatherAttributes(), "play", func(_ int, _ dataset.Pair) (bool, error) {
		seen++
		return false, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, seen)
}

func TestReadPairsRejectsUnknownColumns(t *testing.T) {
	_, err := ReadPairs(strings.NewReader("outlook,pressure,play\nsunny,low,yes\n"), weatherAttributes(), "play")
	assert.Error(t, err)
}

func TestReadPairsRequiresTheLabelColumn(t *testing.T) {
	_, err := ReadPairs(strings.NewReader("outlook,humidity,windy\nsunny,80,false\n"), weatherAttributes(), "play")
	assert.Error(t, err)
}

func TestReadPairsRejectsInvalidValues(t *testing.T) {
	_, err := ReadPairs(strings.NewReader("outlook,humidity,windy,play\nhail,80,false,no\n"), weatherAttributes(), "play")
	assert.Error(t, err)

	_, err = ReadPairs(strings.NewReader("outlook,humidity,windy,play\nsunny,dry,false,no\n"), weatherAttributes(), "play")
	assert.Error(t, err)

	_, err = ReadPairs(strings.NewReader("outlook,humidity,windy,play\nsunny,80,maybe,no\n"), weatherAttributes(), "play")
	assert.Error(t, err)
}

func TestReadExamples(t *testing.T) {
	examples, err := ReadExamples(strings.NewReader("outlook,humidity,windy\novercast,65,true\n"), weatherAttributes())
	require.NoError(t, err)
	require.Len(t, examples, 1)

	v, err := examples[0].ValueFor(context.Background(), attribute.NewNumeric("humidity"))
	require.NoError(t, err)
	assert.Equal(t, 65.0, v)
}
