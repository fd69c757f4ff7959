package Sets

type Set[E any] interface {
	Put(E) bool
	Has(E) bool
	Remove(E) bool
	Size() uint
	Range(func(E) bool)
}

type ExtendedSet[E any, S any] interface {
	Set[E]
	IsSubsetOf(S) bool
	Union(S) S
	Difference(S) S
	Equal(S) bool
}
