package Classify

import (
	"math"
	"strconv"

	"github.com/alphadose/haxmap"
)

// counts of every label among y[idx].
func counts(y []string, idx []int) *haxmap.Map[string, int] {
	m := haxmap.New[string, int]()
	for _, i := range idx {
		c, _ := m.Get(y[i])
		m.Set(y[i], c+1)
	}
	return m
}

// Entropy of the labels y[idx] in bits.
func Entropy(y []string, idx []int) float64 {
	if len(idx) == 0 {
		return 0
	}
	n := float64(len(idx))
	e := 0.0
	counts(y, idx).ForEach(func(_ string, c int) bool {
		p := float64(c) / n
		e -= p * math.Log2(p)
		return true
	})
	return e
}

// InfoGain of splitting parent into left and right.
func InfoGain(y []string, parent, left, right []int) float64 {
	n := float64(len(parent))
	infoA := float64(len(left))/n*Entropy(y, left) + float64(len(right))/n*Entropy(y, right)
	return Entropy(y, parent) - infoA
}

// SplitInfo is the entropy of the partition sizes themselves.
func SplitInfo(total int, parts ...[]int) float64 {
	s := 0.0
	for _, p := range parts {
		if len(p) == 0 {
			continue
		}
		q := float64(len(p)) / float64(total)
		s -= q * math.Log2(q)
	}
	return s
}

// GainRatio is InfoGain normalized by SplitInfo, 0 when SplitInfo is 0.
func GainRatio(y []string, parent, left, right []int) float64 {
	si := SplitInfo(len(parent), left, right)
	if si == 0 {
		return 0
	}
	return InfoGain(y, parent, left, right) / si
}

// lessLabel orders labels numerically when both are numbers, as text otherwise.
func lessLabel(a, b string) bool {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil && fa != fb {
		return fa < fb
	}
	return a < b
}

// mode is the most common label of y[idx]; ties go to the smallest label.
func mode(y []string, idx []int) string {
	best, bestC := "", 0
	counts(y, idx).ForEach(func(l string, c int) bool {
		if c > bestC || c == bestC && lessLabel(l, best) {
			best, bestC = l, c
		}
		return true
	})
	return best
}
