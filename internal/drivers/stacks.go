package drivers

import (
	"io"

	"github.com/XxHardcoreGamerxX/University/Stacks"
	"github.com/XxHardcoreGamerxX/University/internal/command"
)

func check(code, name string, pred func(string) bool) command.Op {
	return command.Op{Code: code, Name: name, Arity: 1, Run: func(args []string, w io.Writer) error {
		ret := "F\n"
		if pred(args[0]) {
			ret = "T\n"
		}
		_, err := io.WriteString(w, ret)
		return err
	}}
}

// Checks commands: P checks a palindrome, B balanced brackets.
func Checks() []command.Op {
	return []command.Op{
		check("P", "PALINDROME", Stacks.IsPalindrome),
		check("B", "BALANCE", Stacks.IsBalanced),
	}
}
