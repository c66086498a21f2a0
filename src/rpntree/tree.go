package rpntree

import (
	"fmt"
	"strings"
)

// Tree is an arithmetic expression tree whose internal nodes are operators
// and whose leaves are integer values.
//
// Example usage:
//
//	tree := rpntree.New()
//	if err := tree.Parse("2 3 + 4 5 + *"); err != nil {
//		log.Fatalf("failed to parse expression: %v", err)
//	}
//	result, err := tree.Evaluate()
//	fmt.Println(tree, "=", result) // Output: 2 3 + 4 5 + * = 45
type Tree struct {
	Root Node
}

// New creates an empty tree. The root is filled in by Parse or by assigning
// a branch built with MakeBranch.
func New() *Tree {
	return &Tree{}
}

// MakeBranch builds an operator node over the two operands. Each operand is
// either an existing Node, used as-is so sub-trees can be nested, or a raw
// int or string that is wrapped as a fresh value leaf. The new branch is
// returned for the caller to assign; the tree's root is not touched.
func (t *Tree) MakeBranch(opName string, left, right any) (*OperatorNode, error) {
	op, err := NewOperator(opName)
	if err != nil {
		return nil, err
	}

	leftNode, err := coerceNode(left)
	if err != nil {
		return nil, fmt.Errorf("bad left operand: %w", err)
	}
	rightNode, err := coerceNode(right)
	if err != nil {
		return nil, fmt.Errorf("bad right operand: %w", err)
	}

	node := NewOperatorNode(op)
	node.Left = leftNode
	node.Right = rightNode
	return node, nil
}

func coerceNode(operand any) (Node, error) {
	switch operand := operand.(type) {
	case Node:
		return operand, nil
	case int:
		return NewValueNode(NewValueFromInt(operand)), nil
	case string:
		val, err := NewValue(operand)
		if err != nil {
			return nil, err
		}
		return NewValueNode(val), nil
	default:
		return nil, fmt.Errorf("cannot use %T as a tree operand", operand)
	}
}

// Evaluate recursively evaluates the tree from the root, left subtree before
// right. A nil or value-only root fails with a NotOperatorError; dividing by
// zero fails with a DivisionByZeroError.
func (t *Tree) Evaluate() (int, error) {
	return evalNode(t.Root)
}

func evalNode(node Node) (int, error) {
	opNode, ok := node.(*OperatorNode)
	if !ok {
		return 0, NewNotOperatorError(node)
	}
	if opNode.Left == nil || opNode.Right == nil {
		return 0, NewMalformedExpressionError("operator node is missing a child")
	}

	left, err := operandValue(opNode.Left)
	if err != nil {
		return 0, fmt.Errorf("failed to evaluate left subtree: %w", err)
	}
	right, err := operandValue(opNode.Right)
	if err != nil {
		return 0, fmt.Errorf("failed to evaluate right subtree: %w", err)
	}

	return opNode.Op.Apply(left, right)
}

func operandValue(node Node) (int, error) {
	if child, ok := node.(*OperatorNode); ok {
		return evalNode(child)
	}
	return node.Int()
}

// renderFunc joins one rendered operator application into a string.
type renderFunc func(left, right, op string) string

// RPNString serializes the tree back to its postfix form, tokens joined by
// single spaces.
func (t *Tree) RPNString() (string, error) {
	return renderNode(t.Root, func(left, right, op string) string {
		return left + " " + right + " " + op
	})
}

// InfixString serializes the tree in infix form, fully parenthesized at
// every operator node.
func (t *Tree) InfixString() (string, error) {
	return renderNode(t.Root, func(left, right, op string) string {
		return "(" + left + " " + op + " " + right + ")"
	})
}

func renderNode(node Node, render renderFunc) (string, error) {
	opNode, ok := node.(*OperatorNode)
	if !ok {
		return "", NewNotOperatorError(node)
	}
	if opNode.Left == nil || opNode.Right == nil {
		return "", NewMalformedExpressionError("operator node is missing a child")
	}

	left, err := renderOperand(opNode.Left, render)
	if err != nil {
		return "", err
	}
	right, err := renderOperand(opNode.Right, render)
	if err != nil {
		return "", err
	}

	return render(left, right, opNode.Op.String()), nil
}

func renderOperand(node Node, render renderFunc) (string, error) {
	if child, ok := node.(*OperatorNode); ok {
		return renderNode(child, render)
	}
	return node.String(), nil
}

// String is the canonical string form of a tree, its RPN form. An empty or
// unfinished tree renders as the empty string.
func (t *Tree) String() string {
	s, err := t.RPNString()
	if err != nil {
		return ""
	}
	return s
}

// Parse parses a whitespace-separated RPN expression and replaces the
// tree's root with the result. Input without any tokens fails with
// ErrEmptyExpression.
func (t *Tree) Parse(input string) error {
	if len(strings.Fields(input)) == 0 {
		return ErrEmptyExpression
	}

	parser := NewParser()
	if err := parser.Parse(input); err != nil {
		return fmt.Errorf("failed to parse expression %q: %w", input, err)
	}

	t.Root = parser.stack[0]
	return nil
}
