package Mining

import (
	"math/bits"

	"github.com/XxHardcoreGamerxX/University/Sets"
)

// Rule is an association rule Antecedent => Consequent. Support and
// Confidence are percentages.
type Rule struct {
	Antecedent, Consequent Itemset
	Support, Confidence    float64
}

// subsets of s that are neither empty nor s itself, one per bit mask.
// s is expected to be small, masks are 64 bits.
func subsets(s *Itemset) []Itemset {
	its := s.Items()
	n := len(its)
	if n < 2 || n >= bits.UintSize {
		return nil
	}
	r := make([]Itemset, 0, 1<<n-2)
	for m := uint(1); m < 1<<n-1; m++ {
		sub := make([]string, 0, bits.OnesCount(m))
		for j := range its {
			if m>>j&1 == 1 {
				sub = append(sub, its[j])
			}
		}
		r = append(r, Sets.NewSortedSet(sub...))
	}
	return r
}

// Rules derives every rule A => I-A from the frequent itemsets I, for every
// non-empty proper subset A of I, whose confidence sup(I)/sup(A) is at least
// minConfidence percent. Supports of subsets come from frequent itemsets, which
// always contains them; txs is only consulted as a fallback.
func Rules(frequent []Frequent, txs []Transaction, minConfidence float64) []Rule {
	known := newTable()
	for _, f := range frequent {
		known.add(f.Set, f.Count)
	}
	n := len(txs)
	var rules []Rule
	for _, f := range frequent {
		for _, a := range subsets(&f.Set) {
			ac := 0
			if k, ok := known.get(&a); ok {
				ac = k.Count
			} else {
				ac = count(&a, txs)
			}
			if ac == 0 {
				continue
			}
			if conf := float64(f.Count) / float64(ac); conf >= minConfidence/100 {
				rules = append(rules, Rule{
					Antecedent: a,
					Consequent: f.Set.Difference(a),
					Support:    f.Support(n) * 100,
					Confidence: conf * 100,
				})
			}
		}
	}
	return rules
}
