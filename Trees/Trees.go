package Trees

// Tree represents A tree like structure implemented using nodes.
// Receivers that has A bool as A second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case the value of x is the zero value of T and shouldn't be used.
// Methods implemented recursively are noted, otherwise functions are
// implemented iteratively.
type Tree[T any] interface {
	//Insert v to the Tree. Returning true if successful, false if v is already present.
	Insert(v T) bool
	//Delete v from the Tree. Returning true if successful, false if v is absent.
	Delete(v T) bool
	//Search for v. The returned value is the stored key equal to v.
	Search(v T) (T, bool)
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Has element v.
	Has(v T) bool
	//Size of the tree.
	Size() uint
	//Height of the tree, counted in nodes. An empty tree has height 0.
	Height() uint
	//PreOrder calls visit on every key in pre-order until visit returns false.
	PreOrder(visit func(T) bool)
	//InOrder calls visit on every key in in-order until visit returns false.
	//The keys are given in ascending order.
	InOrder(visit func(T) bool)
	//PostOrder calls visit on every key in post-order until visit returns false.
	PostOrder(visit func(T) bool)
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the ordering of a binary search tree.
	//This is to be distinguished from whether the tree is balanced or not.
	Corrupt() bool
}

// Order of a depth first traversal.
type Order byte

const (
	PreOrder Order = iota
	InOrder
	PostOrder
)

func (o Order) String() string {
	switch o {
	case PreOrder:
		return "pre-order"
	case InOrder:
		return "in-order"
	case PostOrder:
		return "post-order"
	}
	return "unknown"
}

// Keys collects the keys of t in the given order.
func Keys[T any](t Tree[T], o Order) []T {
	ks := make([]T, 0, t.Size())
	collect := func(v T) bool {
		ks = append(ks, v)
		return true
	}
	switch o {
	case PreOrder:
		t.PreOrder(collect)
	case InOrder:
		t.InOrder(collect)
	case PostOrder:
		t.PostOrder(collect)
	}
	return ks
}
