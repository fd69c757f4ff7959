package drivers

import (
	"fmt"
	"io"

	"github.com/XxHardcoreGamerxX/University/Trees"
	"github.com/XxHardcoreGamerxX/University/internal/command"
	"github.com/rs/zerolog"
)

// BST commands over tree. B replaces the whole tree; strict rejects a build
// array that isn't strictly ascending instead of building a corrupt tree.
func BST(tree *Trees.BSTree[int], strict bool, logger zerolog.Logger) []command.Op {
	return []command.Op{
		{Code: "B", Name: "BUILD", Arity: command.Variadic, Run: func(args []string, w io.Writer) error {
			keys, err := command.Ints(args)
			if err != nil {
				return err
			}
			if len(keys) == 0 {
				return command.ErrInvalidInput
			}
			t, err := Trees.Build(keys, strict)
			if err != nil {
				return fmt.Errorf("%w: %w", command.ErrInvalidInput, err)
			}
			*tree = *t
			logger.Debug().Uint("size", tree.Size()).Uint("height", tree.Height()).Msg("built")
			if _, err = io.WriteString(w, "B\n"); err != nil {
				return err
			}
			return Trees.Render(w, tree)
		}},
		{Code: "m", Name: "FINDMIN", Arity: 0, Run: func(_ []string, w io.Writer) error {
			k, ok := tree.Minimum()
			if !ok {
				return command.ErrEmpty
			}
			_, err := fmt.Fprintf(w, "%d\n", k)
			return err
		}},
		{Code: "M", Name: "FINDMAX", Arity: 0, Run: func(_ []string, w io.Writer) error {
			k, ok := tree.Maximum()
			if !ok {
				return command.ErrEmpty
			}
			_, err := fmt.Fprintf(w, "%d\n", k)
			return err
		}},
		{Code: "S", Name: "SEARCH", Arity: 1, Run: func(args []string, w io.Writer) error {
			k, err := command.Int(args[0])
			if err != nil {
				return err
			}
			found, ok := tree.Search(k)
			if !ok {
				return fmt.Errorf("%w: %d", command.ErrNotFound, k)
			}
			_, err = fmt.Fprintf(w, "%d\n", found)
			return err
		}},
		{Code: "I", Name: "INSERT", Arity: 1, Run: func(args []string, w io.Writer) error {
			k, err := command.Int(args[0])
			if err != nil {
				return err
			}
			if !tree.Insert(k) {
				logger.Debug().Int("key", k).Msg("already present")
			}
			_, err = fmt.Fprintf(w, "I%d\n", k)
			return err
		}},
		{Code: "D", Name: "DELETE", Arity: 1, Run: func(args []string, w io.Writer) error {
			k, err := command.Int(args[0])
			if err != nil {
				return err
			}
			if !tree.Delete(k) {
				logger.Debug().Int("key", k).Msg("absent")
			}
			_, err = fmt.Fprintf(w, "D%d\n", k)
			return err
		}},
		traversal("N", "INORDER", tree.InOrder),
		traversal("R", "PREORDER", tree.PreOrder),
		traversal("O", "POSTORDER", tree.PostOrder),
	}
}

// traversal writes every key followed by a space, then a newline.
func traversal(code, name string, walk func(func(int) bool)) command.Op {
	return command.Op{Code: code, Name: name, Arity: 0, Run: func(_ []string, w io.Writer) error {
		var err error
		walk(func(k int) bool {
			_, err = fmt.Fprintf(w, "%d ", k)
			return err == nil
		})
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, "\n")
		return err
	}}
}
