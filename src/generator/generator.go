// Package generator produces random RPN expression trees, mostly used to
// exercise the parser with inputs nobody would bother writing by hand.
package generator

import (
	"fmt"
	"math/rand"

	"github.com/eriklarko/rpn-calc/src/rpntree"
)

// DefaultMaxDepth is the default nesting depth of generated trees.
const DefaultMaxDepth = 4

// DefaultMaxValue is the default exclusive upper bound for leaf values.
const DefaultMaxValue = 100

// Generator generates random expression trees.
type Generator struct {
	// MaxDepth bounds how deeply operators may nest.
	MaxDepth int

	// MaxValue is the exclusive upper bound for leaf values, which are drawn
	// from [0, MaxValue).
	MaxValue int

	// Operators restricts which operator symbols may appear. Evaluating a
	// generated tree can fail with a division by zero unless / is left out.
	Operators []string

	rng *rand.Rand

	// MakeBranch lives on Tree, so keep one around to build with
	builder *rpntree.Tree
}

// New creates a generator seeded with the given seed. The same seed yields
// the same sequence of trees.
func New(seed int64) *Generator {
	return &Generator{
		MaxDepth:  DefaultMaxDepth,
		MaxValue:  DefaultMaxValue,
		Operators: []string{"+", "-", "*", "/"},
		rng:       rand.New(rand.NewSource(seed)),
		builder:   rpntree.New(),
	}
}

// Tree generates a random tree. The root is always an operator node, so the
// result always evaluates and serializes as a tree.
func (g *Generator) Tree() (*rpntree.Tree, error) {
	root, err := g.branch(g.MaxDepth)
	if err != nil {
		return nil, err
	}

	tree := rpntree.New()
	tree.Root = root
	return tree, nil
}

func (g *Generator) branch(depth int) (rpntree.Node, error) {
	if len(g.Operators) == 0 {
		return nil, fmt.Errorf("cannot generate a branch without operators")
	}
	opName := g.Operators[g.rng.Intn(len(g.Operators))]

	left, err := g.operand(depth - 1)
	if err != nil {
		return nil, err
	}
	right, err := g.operand(depth - 1)
	if err != nil {
		return nil, err
	}

	return g.builder.MakeBranch(opName, left, right)
}

// operand yields a leaf or a nested branch, with leaves getting likelier as
// the depth budget runs out.
func (g *Generator) operand(depth int) (rpntree.Node, error) {
	if depth <= 0 || g.rng.Intn(depth+1) == 0 {
		return g.leaf(), nil
	}
	return g.branch(depth)
}

func (g *Generator) leaf() rpntree.Node {
	return rpntree.NewValueNode(rpntree.NewValueFromInt(g.rng.Intn(g.MaxValue)))
}
