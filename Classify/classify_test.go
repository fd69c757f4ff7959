package Classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntropy(t *testing.T) {
	y := []string{"a", "a", "b", "b", "c"}
	assert.InDelta(t, 1.0, Entropy(y, []int{0, 1, 2, 3}), 1e-9)
	assert.InDelta(t, 0.0, Entropy(y, []int{0, 1}), 1e-9)
	assert.InDelta(t, 0.0, Entropy(y, nil), 1e-9)
}

func TestGainRatio(t *testing.T) {
	y := []string{"a", "a", "b", "b"}
	all := []int{0, 1, 2, 3}
	tcs := []struct {
		name        string
		left, right []int
		gain, ratio float64
	}{
		{"pure", []int{0, 1}, []int{2, 3}, 1, 1},
		{"mixed", []int{0, 2}, []int{1, 3}, 0, 0},
		{"empty side", all, nil, 0, 0},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.gain, InfoGain(y, all, tc.left, tc.right), 1e-9)
			assert.InDelta(t, tc.ratio, GainRatio(y, all, tc.left, tc.right), 1e-9)
		})
	}
}

func TestMode(t *testing.T) {
	assert.Equal(t, "b", mode([]string{"a", "b", "b"}, []int{0, 1, 2}))
	assert.Equal(t, "9", mode([]string{"10", "9"}, []int{0, 1}))
	assert.Equal(t, "x", mode([]string{"y", "x"}, []int{0, 1}))
}

func TestThresholds(t *testing.T) {
	x := [][]float64{{3}, {1}, {3}, {2}}
	assert.Equal(t, []float64{1, 2, 3}, thresholds(x, []int{0, 1, 2, 3}, 0))
	assert.Empty(t, thresholds(x, nil, 0))
}

func TestDecisionTree(t *testing.T) {
	x := [][]float64{{1, 9}, {2, 9}, {3, 0}, {4, 0}}
	y := []string{"a", "a", "b", "b"}
	dt := NewDecisionTree(0, 0)
	assert.Equal(t, DefaultMaxDepth, dt.MaxDepth)
	require.NoError(t, dt.Fit(x, y))
	assert.Equal(t, 1, dt.Depth())
	assert.False(t, dt.Root.Leaf)
	assert.Equal(t, 0, dt.Root.Feature)
	assert.Equal(t, 2.0, dt.Root.Threshold)
	assert.InDelta(t, 1.0, dt.Root.GainRatio, 1e-9)

	tcs := []struct {
		x    []float64
		want string
	}{
		{[]float64{0, 0}, "a"},
		{[]float64{2, 0}, "a"},
		{[]float64{2.5, 9}, "b"},
		{[]float64{100, 100}, "b"},
	}
	for _, tc := range tcs {
		got, err := dt.Predict(tc.x)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%v", tc.x)
	}
	_, err := dt.Predict([]float64{1})
	assert.Error(t, err)
}

func TestDecisionTree_Limits(t *testing.T) {
	x := [][]float64{{1}, {2}, {3}, {4}}
	y := []string{"a", "b", "a", "b"}

	dt := NewDecisionTree(1, 2)
	require.NoError(t, dt.Fit(x, y))
	assert.LessOrEqual(t, dt.Depth(), 1)

	// no split leaves two samples on each side
	dt = NewDecisionTree(5, 3)
	require.NoError(t, dt.Fit(x, y))
	assert.True(t, dt.Root.Leaf)
	assert.Equal(t, "a", dt.Root.Label)

	pure := NewDecisionTree(5, 2)
	require.NoError(t, pure.Fit(x, []string{"c", "c", "c", "c"}))
	assert.True(t, pure.Root.Leaf)
	assert.Equal(t, "c", pure.Root.Label)
}

func TestDecisionTree_Errors(t *testing.T) {
	dt := NewDecisionTree(5, 2)
	_, err := dt.Predict([]float64{1})
	assert.ErrorIs(t, err, ErrNotFitted)
	assert.ErrorIs(t, dt.Fit(nil, nil), ErrEmptyTable)
	assert.Error(t, dt.Fit([][]float64{{1}}, []string{"a", "b"}))
	assert.Error(t, dt.Fit([][]float64{{1}, {1, 2}}, []string{"a", "b"}))
}

func TestTable(t *testing.T) {
	in := "x\ty\tlabel\n1\t9\ta\n2\t9\ta\n3\t0\tb\n4.0\t0\tb\n"
	tb, err := ReadTable(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "label"}, tb.Header)
	assert.Equal(t, []string{"a", "a", "b", "b"}, tb.Labels())

	dt := NewDecisionTree(5, 2)
	require.NoError(t, dt.FitTable(tb))
	assert.Equal(t, 2, dt.Features())
	preds, err := dt.PredictTable(tb)
	require.NoError(t, err)
	assert.Equal(t, tb.Labels(), preds)

	var sb strings.Builder
	require.NoError(t, WritePredictions(&sb, tb, preds))
	assert.Equal(t, "x\ty\tlabel\tpredicted\n1\t9\ta\ta\n2\t9\ta\ta\n3\t0\tb\tb\n4.0\t0\tb\tb\n", sb.String())

	assert.Error(t, WritePredictions(&sb, tb, preds[:1]))
}

func TestTable_Errors(t *testing.T) {
	_, err := ReadTable(strings.NewReader(""))
	assert.Error(t, err)

	_, err = ReadTable(strings.NewReader("x\tlabel\n1\n"))
	assert.Error(t, err)

	tb, err := ReadTable(strings.NewReader("x\tlabel\nfoo\ta\n"))
	require.NoError(t, err)
	_, err = tb.Features(1)
	assert.ErrorContains(t, err, `column "x"`)

	tb, err = ReadTable(strings.NewReader("label\na\n"))
	require.NoError(t, err)
	assert.Error(t, NewDecisionTree(5, 2).FitTable(tb))
}
