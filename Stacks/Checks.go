package Stacks

import "strings"

// IsPalindrome reports whether s reads the same both ways, ignoring case.
// The first half of the runes is pushed, then popped against the second
// half; the middle rune of an odd length string is skipped.
// Time: O(n)
func IsPalindrome(s string) bool {
	rs := []rune(strings.ToLower(s))
	st := New[rune]()
	half := len(rs) / 2
	for _, r := range rs[:half] {
		st.Push(r)
	}
	for _, r := range rs[half+len(rs)%2:] {
		if top, err := st.Pop(); err != nil || top != r {
			return false
		}
	}
	return true
}

var openerOf = map[rune]rune{')': '(', ']': '[', '}': '{'}

// IsBalanced reports whether every bracket of ([{ in s is closed by its
// matching bracket in the right order. Other characters are ignored.
// Time: O(n)
func IsBalanced(s string) bool {
	st := New[rune]()
	for _, r := range s {
		switch r {
		case '(', '[', '{':
			st.Push(r)
		case ')', ']', '}':
			if top, err := st.Pop(); err != nil || top != openerOf[r] {
				return false
			}
		}
	}
	return st.Empty()
}
