package drivers

import (
	"fmt"
	"io"

	"github.com/XxHardcoreGamerxX/University/Lists"
	"github.com/XxHardcoreGamerxX/University/internal/command"
)

func writeCourse(w io.Writer, c *Lists.Course) (err error) {
	c.Each(func(id int, name string) bool {
		_, err = fmt.Fprintf(w, "%d %s\n", id, name)
		return err == nil
	})
	return
}

// Roster commands over c. A failed addition, deletion or search is reported
// in the output and doesn't stop the run.
func Roster(c *Lists.Course) []command.Op {
	return []command.Op{
		{Code: "A", Name: "ADD", Arity: 2, Run: func(args []string, w io.Writer) error {
			id, err := command.Int(args[0])
			if err != nil {
				return err
			}
			if !c.Add(id, args[1]) {
				_, err = io.WriteString(w, "Addition failed\n")
				return err
			}
			return writeCourse(w, c)
		}},
		{Code: "D", Name: "DELETE", Arity: 1, Run: func(args []string, w io.Writer) error {
			id, err := command.Int(args[0])
			if err != nil {
				return err
			}
			if !c.Delete(id) {
				_, err = io.WriteString(w, "Deletion failed\n")
				return err
			}
			return writeCourse(w, c)
		}},
		{Code: "F", Name: "FIND", Arity: 1, Run: func(args []string, w io.Writer) error {
			id, err := command.Int(args[0])
			if err != nil {
				return err
			}
			name, ok := c.Find(id)
			if !ok {
				_, err = io.WriteString(w, "Search failed\n")
				return err
			}
			_, err = fmt.Fprintf(w, "%d %s\n", id, name)
			return err
		}},
	}
}
