package Trees

import (
	"fmt"
	"io"
	"strings"

	"github.com/XxHardcoreGamerxX/University/Queues"
	"golang.org/x/exp/constraints"
)

// Render writes the tree level by level as if it were a perfect binary tree
// of the same height, so that every key sits roughly above the middle of its
// subtree. With N=2^height-1, the first slot of level c is indented by N>>(c+1)
// double spaces, every following slot by N>>c. A missing slot is drawn as a
// single space. Every level is followed by an empty line.
// Nothing is written for an empty tree.
func Render[T constraints.Ordered](w io.Writer, u *BSTree[T]) error {
	if u.root == nil {
		return nil
	}
	h := u.Height()
	n := uint(1)<<h - 1
	var sb strings.Builder
	q := Queues.NewArrayQueue[*node[T]](n + 1)
	q.Push(u.root)
	for c := uint(0); c < h; c++ {
		for i, width := uint(0), uint(1)<<c; i < width; i++ {
			cur, err := q.Pop()
			if err != nil {
				return fmt.Errorf("render level %d: %w", c, err)
			}
			indent := n >> c
			if i == 0 {
				indent = n >> (c + 1)
			}
			sb.WriteString(strings.Repeat("  ", int(indent)))
			if cur == nil {
				sb.WriteByte(' ')
				q.Push(nil)
				q.Push(nil)
			} else {
				fmt.Fprint(&sb, cur.v)
				q.Push(cur.l)
				q.Push(cur.r)
			}
		}
		sb.WriteString("\n\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
