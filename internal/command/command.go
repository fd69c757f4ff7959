package command

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/XxHardcoreGamerxX/University/internal/applog"
	"github.com/rs/zerolog"
)

// Variadic marks an Op that accepts any number of arguments.
const Variadic = -1

// maxLine bounds a single command line, B lines can carry a whole array.
const maxLine = 16 << 20

var (
	ErrMalformed    = errors.New("malformed command")
	ErrUnknownOp    = errors.New("undefined operator")
	ErrNotFound     = errors.New("not found")
	ErrEmpty        = errors.New("empty")
	ErrInvalidInput = errors.New("invalid input")
)

// Op is one command code of a driver. Run gets the tokens after the code and
// writes the command's output to w; any error aborts the run.
type Op struct {
	Code  string
	Name  string
	Arity int
	Run   func(args []string, w io.Writer) error
}

// LineError is the fatal error of a run, located at a 1-based input line.
type LineError struct {
	Line int
	Name string
	Err  error
}

func (e *LineError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Name, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Dispatcher runs a command log against a table of Ops, strictly in order.
type Dispatcher struct {
	ops    map[string]Op
	logger zerolog.Logger
}

// New Dispatcher over ops. A later Op replaces an earlier one with the same
// Code.
func New(logger zerolog.Logger, ops ...Op) *Dispatcher {
	d := &Dispatcher{ops: make(map[string]Op, len(ops)), logger: logger}
	for _, op := range ops {
		d.ops[op.Code] = op
	}
	return d
}

// Run reads one command per line from r and writes the output of each
// command to w once it completes. Blank lines are skipped. The first failing
// line stops the run with a *LineError; output of earlier lines stays written.
func (d *Dispatcher) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	var out bytes.Buffer
	line := 0
	for sc.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return err
		}
		words := strings.Fields(sc.Text())
		if len(words) == 0 {
			continue
		}
		op, ok := d.ops[words[0]]
		if !ok {
			return &LineError{Line: line, Err: fmt.Errorf("%w %q", ErrUnknownOp, words[0])}
		}
		args := words[1:]
		if op.Arity != Variadic && len(args) != op.Arity {
			return &LineError{line, op.Name, fmt.Errorf("%w: %d arguments, want %d", ErrMalformed, len(args), op.Arity)}
		}
		applog.AtLine(d.logger.Debug(), line).Str("op", op.Code).Int("args", len(args)).Msg(op.Name)

		out.Reset()
		if err := op.Run(args, &out); err != nil {
			return &LineError{line, op.Name, err}
		}
		if _, err := out.WriteTo(w); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}
	return nil
}

// Int parses one integer argument.
func Int(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrMalformed, s)
	}
	return v, nil
}

// Ints parses every argument as an integer.
func Ints(args []string) ([]int, error) {
	r := make([]int, len(args))
	for i, a := range args {
		v, err := Int(a)
		if err != nil {
			return nil, err
		}
		r[i] = v
	}
	return r, nil
}
