package Trees

import (
	"errors"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/google/btree"
)

var rg = *rand.New(rand.NewSource(0))

const (
	tAddN        = 4000
	tAddValRange = 8000
)

func randKeys(n, valRange int) []int {
	a := make([]int, n)
	for i := range a {
		a[i] = rg.Intn(valRange)
	}
	return a
}

// checkAgainst compares the content and ordering of tree with the oracle.
func checkAgainst(t *testing.T, tree *BSTree[int], oracle *btree.BTreeG[int]) {
	t.Helper()
	if tree.Corrupt() {
		t.Fatalf("tree is corrupt")
	}
	if int(tree.Size()) != oracle.Len() {
		t.Errorf("tree size is %d, want %d", tree.Size(), oracle.Len())
	}
	want := make([]int, 0, oracle.Len())
	oracle.Ascend(func(v int) bool {
		want = append(want, v)
		return true
	})
	if got := Keys[int](tree, InOrder); !slices.Equal(got, want) {
		t.Errorf("in-order is %v, want %v", got, want)
	}
	if mn, ok := tree.Minimum(); ok != (oracle.Len() > 0) || ok && mn != want[0] {
		t.Errorf("minimum is (%v, %v), want first of %v", mn, ok, want)
	}
	if mx, ok := tree.Maximum(); ok != (oracle.Len() > 0) || ok && mx != want[len(want)-1] {
		t.Errorf("maximum is (%v, %v), want last of %v", mx, ok, want)
	}
}

func TestBSTree_Insert(t *testing.T) {
	tree := New[int]()
	oracle := btree.NewOrderedG[int](8)
	for _, b := range randKeys(tAddN, tAddValRange) {
		_, in := oracle.ReplaceOrInsert(b)
		if got := tree.Insert(b); got == in {
			t.Errorf("insert %v returned %v, want %v", b, got, !in)
		}
	}
	checkAgainst(t, tree, oracle)
	oracle.Ascend(func(k int) bool {
		if !tree.Has(k) {
			t.Errorf("tree does not have key %v", k)
		}
		return true
	})
}

func TestBSTree_InsertIdempotent(t *testing.T) {
	tree := New[int]()
	for _, k := range []int{5, 3, 8, 1, 4} {
		tree.Insert(k)
	}
	before := Keys[int](tree, InOrder)
	pre := Keys[int](tree, PreOrder)
	for _, k := range before {
		if tree.Insert(k) {
			t.Errorf("second insert of %v succeeded", k)
		}
	}
	if got := Keys[int](tree, InOrder); !slices.Equal(got, before) {
		t.Errorf("in-order changed to %v, want %v", got, before)
	}
	if got := Keys[int](tree, PreOrder); !slices.Equal(got, pre) {
		t.Errorf("shape changed: pre-order %v, want %v", got, pre)
	}
}

func TestBSTree_InsertOrderIndependent(t *testing.T) {
	keys := rg.Perm(500)
	want := slices.Clone(keys)
	slices.Sort(want)
	for range 10 {
		rg.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
		tree := New[int]()
		for _, k := range keys {
			tree.Insert(k)
		}
		if got := Keys[int](tree, InOrder); !slices.Equal(got, want) {
			t.Fatalf("in-order is not the sorted input")
		}
	}
}

func TestBSTree_Delete(t *testing.T) {
	tree := New[int]()
	oracle := btree.NewOrderedG[int](8)
	if tree.Delete(0) {
		t.Errorf("empty tree deleted non existent key %v", 0)
	}
	a := randKeys(tAddN, tAddValRange)
	for _, b := range a {
		tree.Insert(b)
		oracle.ReplaceOrInsert(b)
	}
	for i := range rg.Intn(len(a)) {
		_, in := oracle.Delete(a[i])
		if got := tree.Delete(a[i]); got != in {
			t.Errorf("delete %v returned %v, want %v", a[i], got, in)
		}
		if tree.Delete(a[i]) {
			t.Errorf("can delete a second time key %v", a[i])
		}
		if _, ok := tree.Search(a[i]); ok {
			t.Errorf("deleted key %v is still found", a[i])
		}
		if tree.Corrupt() {
			t.Fatalf("tree is corrupt after deleting %v", a[i])
		}
	}
	checkAgainst(t, tree, oracle)
}

func TestBSTree_DeleteMissing(t *testing.T) {
	tree, err := Build([]int{1, 2, 3, 4, 5, 6, 7}, true)
	if err != nil {
		t.Fatal(err)
	}
	pre := Keys[int](tree, PreOrder)
	if tree.Delete(100) {
		t.Errorf("deleted non existent key")
	}
	if got := Keys[int](tree, PreOrder); !slices.Equal(got, pre) {
		t.Errorf("pre-order is %v, want %v", got, pre)
	}
	if tree.Size() != 7 {
		t.Errorf("size is %d, want 7", tree.Size())
	}
}

func TestBSTree_DeleteCases(t *testing.T) {
	tcs := []struct {
		name   string
		insert []int
		del    int
		in     []int
		pre    []int
	}{
		{"two children promotes successor", []int{5, 3, 8, 1, 4}, 3, []int{1, 4, 5, 8}, []int{5, 4, 1, 8}},
		{"leaf", []int{5, 3, 8}, 8, []int{3, 5}, []int{5, 3}},
		{"only right child", []int{5, 3, 4}, 3, []int{4, 5}, []int{5, 4}},
		{"only left child", []int{5, 3, 1}, 3, []int{1, 5}, []int{5, 1}},
		{"root with two children", []int{5, 3, 8, 7, 9}, 5, []int{3, 7, 8, 9}, []int{7, 3, 8, 9}},
		{"successor has right child", []int{5, 3, 9, 7, 8}, 5, []int{3, 7, 8, 9}, []int{7, 3, 9, 8}},
		{"single node", []int{5}, 5, []int{}, []int{}},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			tree := New[int]()
			for _, k := range tc.insert {
				tree.Insert(k)
			}
			if !tree.Delete(tc.del) {
				t.Fatalf("failed to delete %v", tc.del)
			}
			if got := Keys[int](tree, InOrder); !slices.Equal(got, tc.in) {
				t.Errorf("in-order is %v, want %v", got, tc.in)
			}
			if got := Keys[int](tree, PreOrder); !slices.Equal(got, tc.pre) {
				t.Errorf("pre-order is %v, want %v", got, tc.pre)
			}
		})
	}
}

func TestBSTree_AddDel(t *testing.T) {
	tree := New[int]()
	oracle := btree.NewOrderedG[int](8)
	for range 20 {
		for _, b := range randKeys(rg.Intn(tAddN), tAddValRange) {
			if rg.Intn(3) == 0 {
				oracle.Delete(b)
				tree.Delete(b)
			} else {
				oracle.ReplaceOrInsert(b)
				tree.Insert(b)
			}
		}
		ks := Keys[int](tree, InOrder)
		for i := 1; i < len(ks); i++ {
			if ks[i-1] >= ks[i] {
				t.Fatalf("in-order is not strictly ascending at %d", i)
			}
		}
	}
	checkAgainst(t, tree, oracle)
}

func TestBuild(t *testing.T) {
	tree, err := Build([]int{1, 2, 3, 4, 5, 6, 7}, false)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := Keys[int](tree, InOrder), []int{1, 2, 3, 4, 5, 6, 7}; !slices.Equal(got, want) {
		t.Errorf("in-order is %v, want %v", got, want)
	}
	if got, want := Keys[int](tree, PreOrder), []int{4, 2, 1, 3, 6, 5, 7}; !slices.Equal(got, want) {
		t.Errorf("pre-order is %v, want %v", got, want)
	}
	if got, want := Keys[int](tree, PostOrder), []int{1, 3, 2, 5, 7, 6, 4}; !slices.Equal(got, want) {
		t.Errorf("post-order is %v, want %v", got, want)
	}
}

func TestBuild_RoundTrip(t *testing.T) {
	for n := 0; n < 300; n++ {
		sli := make([]int, n)
		for i := range sli {
			sli[i] = 3*i - n
		}
		tree, err := Build(sli, true)
		if err != nil {
			t.Fatal(err)
		}
		if got := Keys[int](tree, InOrder); !slices.Equal(got, sli) {
			t.Fatalf("n=%d: in-order is %v, want %v", n, got, sli)
		}
		// minimal height: ceil(log2(n+1))
		want := uint(0)
		for 1<<want < n+1 {
			want++
		}
		if tree.Height() != want {
			t.Errorf("n=%d: height is %d, want %d", n, tree.Height(), want)
		}
		if tree.Size() != uint(n) {
			t.Errorf("n=%d: size is %d", n, tree.Size())
		}
	}
}

func TestBuild_Unsorted(t *testing.T) {
	sli := []int{3, 1, 2}
	var ise InvalidSliceError[int]
	if _, err := Build(sli, true); !errors.As(err, &ise) {
		t.Fatalf("checked build of %v returned %v", sli, err)
	} else if ise.At != 1 || ise.Prev != 3 || ise.Next != 1 {
		t.Errorf("unexpected error %+v", ise)
	}
	if _, err := Build([]int{1, 2, 2}, true); err == nil {
		t.Errorf("duplicates were accepted")
	}
	tree, err := Build(sli, false)
	if err != nil {
		t.Fatal(err)
	}
	if !tree.Corrupt() {
		t.Errorf("unchecked build of unsorted slice is not corrupt")
	}
}

func TestBSTree_Empty(t *testing.T) {
	var tree BSTree[string]
	if _, ok := tree.Search("a"); ok {
		t.Errorf("empty tree found a key")
	}
	if _, ok := tree.Minimum(); ok {
		t.Errorf("empty tree has a minimum")
	}
	if _, ok := tree.Maximum(); ok {
		t.Errorf("empty tree has a maximum")
	}
	if tree.Height() != 0 || tree.Size() != 0 || !tree.Empty() {
		t.Errorf("empty tree reports height %d size %d", tree.Height(), tree.Size())
	}
	tree.InOrder(func(string) bool {
		t.Errorf("visited a key of an empty tree")
		return true
	})
	tree.Insert("b")
	tree.Clear()
	if !tree.Empty() {
		t.Errorf("tree is not empty after Clear")
	}
}

func TestBSTree_TraversalStops(t *testing.T) {
	tree, _ := Build([]int{1, 2, 3, 4, 5, 6, 7}, false)
	for _, o := range []Order{PreOrder, InOrder, PostOrder} {
		var s []int
		visit := func(v int) bool {
			s = append(s, v)
			return len(s) < 3
		}
		switch o {
		case PreOrder:
			tree.PreOrder(visit)
		case InOrder:
			tree.InOrder(visit)
		case PostOrder:
			tree.PostOrder(visit)
		}
		if len(s) != 3 {
			t.Errorf("%v visited %v after stopping", o, s)
		}
	}
}

func TestBSTree_Degenerate(t *testing.T) {
	tree := New[int]()
	for i := range 200 {
		tree.Insert(i)
	}
	if tree.Height() != 200 {
		t.Errorf("sorted insertion gave height %d, want 200", tree.Height())
	}
}

func TestRender(t *testing.T) {
	tree, _ := Build([]int{1, 2, 3, 4, 5, 6, 7}, false)
	var sb strings.Builder
	if err := Render(&sb, tree); err != nil {
		t.Fatal(err)
	}
	want := "      4\n\n  2      6\n\n1  3  5  7\n\n"
	if sb.String() != want {
		t.Errorf("rendered %q, want %q", sb.String(), want)
	}

	sb.Reset()
	tree = New[int]()
	tree.Insert(2)
	tree.Insert(3)
	if err := Render(&sb, tree); err != nil {
		t.Fatal(err)
	}
	if want := "  2\n\n   3\n\n"; sb.String() != want {
		t.Errorf("rendered %q, want %q", sb.String(), want)
	}

	sb.Reset()
	if err := Render(&sb, New[int]()); err != nil || sb.Len() != 0 {
		t.Errorf("empty tree rendered %q, %v", sb.String(), err)
	}
}
