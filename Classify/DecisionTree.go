package Classify

import (
	"errors"
	"fmt"

	"github.com/petar/GoLLRB/llrb"
)

const (
	DefaultMaxDepth        = 5
	DefaultMinSamplesSplit = 2
)

var ErrNotFitted = errors.New("decision tree is not fitted")

// Node of a DecisionTree. A leaf has Leaf set and only Label is meaningful;
// an inner node sends samples with x[Feature] <= Threshold to Left and the
// rest to Right.
type Node struct {
	Feature     int
	Threshold   float64
	GainRatio   float64
	Left, Right *Node
	Label       string
	Leaf        bool
}

// DecisionTree is a binary C4.5 style classifier on numeric features. Splits
// are chosen by gain ratio among every distinct value of every feature.
type DecisionTree struct {
	MaxDepth        int
	MinSamplesSplit int
	Root            *Node
	features        int
}

func NewDecisionTree(maxDepth, minSamplesSplit int) *DecisionTree {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if minSamplesSplit <= 0 {
		minSamplesSplit = DefaultMinSamplesSplit
	}
	return &DecisionTree{MaxDepth: maxDepth, MinSamplesSplit: minSamplesSplit}
}

// threshold is a candidate split value kept in an llrb tree to obtain the
// distinct values of a feature in ascending order.
type threshold float64

func (a threshold) Less(b llrb.Item) bool {
	return a < b.(threshold)
}

func thresholds(x [][]float64, idx []int, f int) []float64 {
	t := llrb.New()
	for _, i := range idx {
		t.ReplaceOrInsert(threshold(x[i][f]))
	}
	r := make([]float64, 0, t.Len())
	if t.Len() > 0 {
		t.AscendGreaterOrEqual(t.Min(), func(it llrb.Item) bool {
			r = append(r, float64(it.(threshold)))
			return true
		})
	}
	return r
}

func partition(x [][]float64, idx []int, f int, th float64) (l, r []int) {
	for _, i := range idx {
		if x[i][f] <= th {
			l = append(l, i)
		} else {
			r = append(r, i)
		}
	}
	return
}

// build the subtree for the samples idx. Recursive.
func (u *DecisionTree) build(x [][]float64, y []string, idx []int, depth int) *Node {
	if len(idx) < u.MinSamplesSplit || depth >= u.MaxDepth {
		return &Node{Label: mode(y, idx), Leaf: true}
	}
	best := Node{Feature: -1}
	var bestL, bestR []int
	for f := range u.features {
		for _, th := range thresholds(x, idx, f) {
			l, r := partition(x, idx, f, th)
			if len(l) < u.MinSamplesSplit || len(r) < u.MinSamplesSplit {
				continue
			}
			if gr := GainRatio(y, idx, l, r); gr > best.GainRatio {
				best.Feature, best.Threshold, best.GainRatio = f, th, gr
				bestL, bestR = l, r
			}
		}
	}
	if best.Feature < 0 {
		return &Node{Label: mode(y, idx), Leaf: true}
	}
	best.Left = u.build(x, y, bestL, depth+1)
	best.Right = u.build(x, y, bestR, depth+1)
	return &best
}

// Fit the tree to the samples x with labels y.
func (u *DecisionTree) Fit(x [][]float64, y []string) error {
	if len(x) == 0 {
		return ErrEmptyTable
	}
	if len(x) != len(y) {
		return fmt.Errorf("%d samples but %d labels", len(x), len(y))
	}
	u.features = len(x[0])
	idx := make([]int, len(x))
	for i := range idx {
		if len(x[i]) != u.features {
			return fmt.Errorf("sample %d has %d features, want %d", i, len(x[i]), u.features)
		}
		idx[i] = i
	}
	u.Root = u.build(x, y, idx, 0)
	return nil
}

// FitTable fits the tree to t, using the last column as the label and every
// other column as a numeric feature.
func (u *DecisionTree) FitTable(t *Table) error {
	if len(t.Header) < 2 {
		return fmt.Errorf("table needs at least one feature and a label, has %d columns", len(t.Header))
	}
	x, err := t.Features(len(t.Header) - 1)
	if err != nil {
		return err
	}
	return u.Fit(x, t.Labels())
}

// Features the tree was fitted with.
func (u *DecisionTree) Features() int {
	return u.features
}

// Predict the label of one sample.
func (u *DecisionTree) Predict(x []float64) (string, error) {
	if u.Root == nil {
		return "", ErrNotFitted
	}
	if len(x) < u.features {
		return "", fmt.Errorf("sample has %d features, want %d", len(x), u.features)
	}
	n := u.Root
	for !n.Leaf {
		if x[n.Feature] <= n.Threshold {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return n.Label, nil
}

// PredictTable predicts a label for every row of t from its first Features()
// columns.
func (u *DecisionTree) PredictTable(t *Table) ([]string, error) {
	if u.Root == nil {
		return nil, ErrNotFitted
	}
	x, err := t.Features(u.features)
	if err != nil {
		return nil, err
	}
	preds := make([]string, len(x))
	for i := range x {
		if preds[i], err = u.Predict(x[i]); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	return preds, nil
}

// Depth of the fitted tree counted in edges; a single leaf has depth 0.
func (u *DecisionTree) Depth() int {
	var depth func(*Node) int
	depth = func(n *Node) int {
		if n == nil || n.Leaf {
			return 0
		}
		return 1 + max(depth(n.Left), depth(n.Right))
	}
	return depth(u.Root)
}
