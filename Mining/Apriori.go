package Mining

import (
	"errors"
	"fmt"
	"slices"

	"github.com/XxHardcoreGamerxX/University/Sets"
	"github.com/cespare/xxhash"
	"github.com/cornelk/hashmap"
	"github.com/google/btree"
)

// Itemset is a set of items; a Transaction is the itemset of one basket.
type (
	Itemset     = Sets.SortedSet[string]
	Transaction = Itemset
)

var ErrNoTransactions = errors.New("no transactions")

// Frequent is an itemset together with the number of transactions containing it.
type Frequent struct {
	Set   Itemset
	Count int
}

// Support of f as a fraction of n transactions.
func (f Frequent) Support(n int) float64 {
	return float64(f.Count) / float64(n)
}

// table deduplicates itemsets of one level. Itemsets are indexed by the
// xxhash of their canonical key; colliding itemsets share a bucket. The
// insertion order is kept so results don't depend on map iteration.
type table struct {
	idx   *hashmap.Map[uint64, []*Frequent]
	order []*Frequent
}

func newTable() *table {
	return &table{idx: hashmap.New[uint64, []*Frequent]()}
}

func fingerprint(s *Itemset) uint64 {
	return xxhash.Sum64String(s.Key())
}

// get the entry holding s.
func (u *table) get(s *Itemset) (*Frequent, bool) {
	bkt, _ := u.idx.Get(fingerprint(s))
	for _, f := range bkt {
		if f.Set.Equal(*s) {
			return f, true
		}
	}
	return nil, false
}

// add s with count c unless an equal itemset is already present. Returns
// false if it was.
func (u *table) add(s Itemset, c int) bool {
	if _, ok := u.get(&s); ok {
		return false
	}
	fp := fingerprint(&s)
	bkt, _ := u.idx.Get(fp)
	f := &Frequent{s, c}
	u.idx.Set(fp, append(bkt, f))
	u.order = append(u.order, f)
	return true
}

func (u *table) len() int {
	return len(u.order)
}

// Support returns the fraction of txs containing every item of s.
func Support(s Itemset, txs []Transaction) float64 {
	if len(txs) == 0 {
		return 0
	}
	return float64(count(&s, txs)) / float64(len(txs))
}

func count(s *Itemset, txs []Transaction) int {
	c := 0
	for _, tx := range txs {
		if s.IsSubsetOf(tx) {
			c++
		}
	}
	return c
}

// items collects the distinct items of all transactions in ascending order.
func items(txs []Transaction) []string {
	bt := btree.NewOrderedG[string](16)
	for i := range txs {
		txs[i].Range(func(it string) bool {
			bt.ReplaceOrInsert(it)
			return true
		})
	}
	r := make([]string, 0, bt.Len())
	bt.Ascend(func(it string) bool {
		r = append(r, it)
		return true
	})
	return r
}

// candidates of size k from the frequent itemsets of size k-1: every union of
// two of them that has exactly k items, unless one of its (k-1)-subsets isn't
// frequent.
func candidates(k int, prev *table) *table {
	c := newTable()
	for i, a := range prev.order {
		for _, b := range prev.order[i+1:] {
			if u := a.Set.Union(b.Set); int(u.Size()) == k && !pruned(&u, prev) {
				c.add(u, 0)
			}
		}
	}
	return c
}

// pruned reports whether some subset of s with one item less isn't in prev.
func pruned(s *Itemset, prev *table) bool {
	its := s.Items()
	for i := range its {
		sub := Sets.NewSortedSet(slices.Delete(slices.Clone(its), i, i+1)...)
		if _, ok := prev.get(&sub); !ok {
			return true
		}
	}
	return false
}

// filter counts every candidate and keeps those contained in at least
// minCount transactions.
func filter(c *table, txs []Transaction, minCount float64) *table {
	r := newTable()
	for _, f := range c.order {
		if n := count(&f.Set, txs); float64(n) >= minCount {
			r.add(f.Set, n)
		}
	}
	return r
}

// Apriori finds every itemset contained in at least minSupport percent of txs.
// Level k+1 candidates are generated from the frequent itemsets of level k by
// joining and pruning; the search stops at the first level without frequent
// itemsets.
// The result is ordered by itemset size, then by the items.
func Apriori(txs []Transaction, minSupport float64) ([]Frequent, error) {
	if len(txs) == 0 {
		return nil, ErrNoTransactions
	}
	minCount := minSupport * float64(len(txs)) / 100

	level := newTable()
	for _, it := range items(txs) {
		level.add(Sets.NewSortedSet(it), 0)
	}
	level = filter(level, txs, minCount)

	var all []Frequent
	for k := 2; level.len() > 0; k++ {
		all = appendSorted(all, level)
		level = filter(candidates(k, level), txs, minCount)
	}
	return all, nil
}

func appendSorted(all []Frequent, t *table) []Frequent {
	start := len(all)
	for _, f := range t.order {
		all = append(all, *f)
	}
	slices.SortFunc(all[start:], func(a, b Frequent) int {
		return slices.Compare(a.Set.Items(), b.Set.Items())
	})
	return all
}

// String formats f as its itemset followed by the count.
func (f Frequent) String() string {
	return fmt.Sprintf("%v:%d", f.Set, f.Count)
}
