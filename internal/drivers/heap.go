package drivers

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/XxHardcoreGamerxX/University/Heaps"
	"github.com/XxHardcoreGamerxX/University/internal/command"
)

func writeHeap(w io.Writer, h *Heaps.MaxHeap[int]) error {
	el := h.Elements()
	strs := make([]string, len(el))
	for i, v := range el {
		strs[i] = strconv.Itoa(v)
	}
	_, err := fmt.Fprintln(w, strings.Join(strs, " "))
	return err
}

// Heap commands over h: I inserts, D deletes the maximum, M reads it.
func Heap(h *Heaps.MaxHeap[int]) []command.Op {
	return []command.Op{
		{Code: "I", Name: "INSERT", Arity: 1, Run: func(args []string, w io.Writer) error {
			k, err := command.Int(args[0])
			if err != nil {
				return err
			}
			h.Insert(k)
			return writeHeap(w, h)
		}},
		{Code: "D", Name: "DELETE", Arity: 0, Run: func(_ []string, w io.Writer) error {
			if _, err := h.DeleteMaximum(); err != nil {
				return err
			}
			return writeHeap(w, h)
		}},
		{Code: "M", Name: "MAXIMUM", Arity: 0, Run: func(_ []string, w io.Writer) error {
			v, ok := h.Maximum()
			if !ok {
				return command.ErrEmpty
			}
			_, err := fmt.Fprintf(w, "%d\n", v)
			return err
		}},
	}
}
