package cliapp

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/XxHardcoreGamerxX/University/Classify"
	"github.com/XxHardcoreGamerxX/University/Heaps"
	"github.com/XxHardcoreGamerxX/University/Lists"
	"github.com/XxHardcoreGamerxX/University/Trees"
	"github.com/XxHardcoreGamerxX/University/internal/config"
	"github.com/XxHardcoreGamerxX/University/internal/drivers"
	"github.com/urfave/cli/v3"
)

var filesArgs = []string{"input", "output"}

func BST() *cli.Command {
	return newCommand("bst", "Run a binary search tree command log", filesArgs,
		[]cli.Flag{
			&cli.BoolFlag{
				Name: "strict",
				Usage: `
				Reject a B array that is not strictly ascending`,
				OnlyOnce: true,
			},
		},
		func(ctx context.Context, cmd *cli.Command, env *Env) error {
			if cmd.IsSet("strict") {
				env.Config.Tree.Strict = cmd.Bool("strict")
			}
			tree := Trees.New[int]()
			return dispatch(ctx, env, drivers.BST(tree, env.Config.Tree.Strict, env.Logger))
		})
}

func MaxHeap() *cli.Command {
	return newCommand("maxheap", "Run a max heap command log", filesArgs,
		[]cli.Flag{
			&cli.IntFlag{
				Name: "capacity",
				Usage: `
				Initial capacity of the heap array`,
				Value:     Heaps.DefaultCapacity,
				OnlyOnce:  true,
				Validator: config.ValidatePositive,
			},
		},
		func(ctx context.Context, cmd *cli.Command, env *Env) error {
			if cmd.IsSet("capacity") {
				env.Config.Heap.Capacity = cmd.Int("capacity")
			}
			return dispatch(ctx, env, drivers.Heap(Heaps.NewMaxHeap[int](env.Config.Heap.Capacity)))
		})
}

func Roster() *cli.Command {
	return newCommand("roster", "Run a course roster command log", filesArgs, nil,
		func(ctx context.Context, _ *cli.Command, env *Env) error {
			return dispatch(ctx, env, drivers.Roster(&Lists.Course{}))
		})
}

func Stacks() *cli.Command {
	return newCommand("stacks", "Check palindromes and balanced brackets", filesArgs, nil,
		func(ctx context.Context, _ *cli.Command, env *Env) error {
			return dispatch(ctx, env, drivers.Checks())
		})
}

func Apriori() *cli.Command {
	return newCommand("apriori", "Mine association rules from tab separated transactions",
		[]string{"min_support", "input", "output"},
		[]cli.Flag{
			&cli.FloatFlag{
				Name: "min-confidence",
				Usage: `
				Minimum confidence of a rule in percent (default: min_support)`,
				OnlyOnce:  true,
				Validator: config.ValidatePercent,
			},
		},
		func(ctx context.Context, cmd *cli.Command, env *Env) error {
			minSupport, err := strconv.ParseFloat(env.Args[0], 64)
			if err != nil {
				return fmt.Errorf("min_support: %w", err)
			}
			if err = config.ValidatePercent(minSupport); err != nil {
				return fmt.Errorf("min_support: %w", err)
			}
			p := drivers.AprioriParams{MinSupport: minSupport, MinConfidence: minSupport}
			if cmd.IsSet("min-confidence") {
				p.MinConfidence = cmd.Float("min-confidence")
			} else if c := env.Config.Apriori.MinConfidence; c != nil {
				p.MinConfidence = *c
			}
			return withFiles(env.Args[1:], func(in []io.Reader, out io.Writer) error {
				return drivers.AssociationRules(ctx, in[0], out, p, env.Logger)
			})
		})
}

func DecisionTree() *cli.Command {
	return newCommand("dtree", "Train a decision tree and label a test table",
		[]string{"train", "test", "output"},
		[]cli.Flag{
			&cli.IntFlag{
				Name: "max-depth",
				Usage: `
				Maximum depth of the tree`,
				Value:     Classify.DefaultMaxDepth,
				OnlyOnce:  true,
				Validator: config.ValidatePositive,
			},
			&cli.IntFlag{
				Name: "min-samples-split",
				Usage: `
				Minimum number of samples on each side of a split`,
				Value:     Classify.DefaultMinSamplesSplit,
				OnlyOnce:  true,
				Validator: config.ValidatePositive,
			},
		},
		func(ctx context.Context, cmd *cli.Command, env *Env) error {
			c := &env.Config.DecisionTree
			if cmd.IsSet("max-depth") {
				c.MaxDepth = cmd.Int("max-depth")
			}
			if cmd.IsSet("min-samples-split") {
				c.MinSamplesSplit = cmd.Int("min-samples-split")
			}
			dt := Classify.NewDecisionTree(c.MaxDepth, c.MinSamplesSplit)
			return withFiles(env.Args, func(in []io.Reader, out io.Writer) error {
				return drivers.Classification(ctx, in[0], in[1], out, dt, env.Logger)
			})
		})
}
