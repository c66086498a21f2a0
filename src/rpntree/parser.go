package rpntree

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	opPattern  = regexp.MustCompile(`^[+\-*/]$`)
	numPattern = regexp.MustCompile(`^\d+$`)
)

// Parser turns a whitespace-separated RPN expression into a single rooted
// tree. Its stack and remaining input are working state for one parse; make
// a fresh parser per expression.
type Parser struct {
	stack []Node
	input []string
}

// NewParser creates a parser with an empty stack and no input.
func NewParser() *Parser {
	return &Parser{}
}

// SplitInput splits the raw expression on runs of whitespace and queues the
// tokens, preserving their order. The stack is untouched.
func (p *Parser) SplitInput(input string) {
	p.input = strings.Fields(input)
}

// TokenizeNext consumes the front token of the remaining input and pushes it
// onto the stack as an operator or value node, reporting which kind was
// found. Tokens matching neither pattern fail with an UnrecognizedTokenError,
// and exhausted input fails with ErrEmptyInput.
func (p *Parser) TokenizeNext() (Kind, error) {
	if len(p.input) == 0 {
		return KindInvalid, ErrEmptyInput
	}

	token := p.input[0]
	p.input = p.input[1:]

	switch {
	case opPattern.MatchString(token):
		op, err := NewOperator(token)
		if err != nil {
			return KindInvalid, err
		}
		p.push(NewOperatorNode(op))
		return KindOperator, nil

	case numPattern.MatchString(token):
		val, err := NewValue(token)
		if err != nil {
			return KindInvalid, err
		}
		p.push(NewValueNode(val))
		return KindValue, nil

	default:
		return KindInvalid, NewUnrecognizedTokenError(token)
	}
}

// TokenizeAll consumes the remaining input token by token. Afterwards the
// stack holds every token of the expression in its original left-to-right
// order, each wrapped as a node but not yet linked to any other.
func (p *Parser) TokenizeAll() error {
	for len(p.input) > 0 {
		if _, err := p.TokenizeNext(); err != nil {
			return err
		}
	}
	return nil
}

// Interpret reduces the tokenized stack into a single tree, working from the
// back. The top of the stack must be an operator node; it is popped and its
// right and left operands are popped after it, in that order. An operand
// that is itself an operator node is first reduced by a recursive Interpret
// call, but only while more than one element remains below it. With one
// element remaining, an operator found there is a sub-tree that was already
// linked by an earlier frame and is taken as-is. The linked operator node is
// pushed back, so a well-formed expression leaves exactly one node on the
// stack, the root of the tree.
func (p *Parser) Interpret() error {
	if len(p.stack) == 0 {
		return ErrEmptyExpression
	}

	top := p.stack[len(p.stack)-1]
	opNode, ok := top.(*OperatorNode)
	if !ok {
		return NewNotOperatorError(top)
	}
	p.stack = p.stack[:len(p.stack)-1]

	right, err := p.reduceOperand()
	if err != nil {
		return err
	}
	opNode.Right = right

	left, err := p.reduceOperand()
	if err != nil {
		return err
	}
	opNode.Left = left

	p.push(opNode)
	return nil
}

func (p *Parser) reduceOperand() (Node, error) {
	node, err := p.pop()
	if err != nil {
		return nil, err
	}

	if node.Kind() == KindOperator && len(p.stack) > 1 {
		p.push(node)
		if err := p.Interpret(); err != nil {
			return nil, err
		}
		return p.pop()
	}

	return node, nil
}

func (p *Parser) push(node Node) {
	p.stack = append(p.stack, node)
}

func (p *Parser) pop() (Node, error) {
	if len(p.stack) == 0 {
		return nil, NewMalformedExpressionError("an operator is missing an operand")
	}
	node := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	return node, nil
}

// Parse runs the full pipeline: split, tokenize everything, interpret. On
// success the stack holds exactly one element, the root of the parsed tree.
func (p *Parser) Parse(input string) error {
	p.SplitInput(input)

	if err := p.TokenizeAll(); err != nil {
		return err
	}
	if err := p.Interpret(); err != nil {
		return err
	}

	if len(p.stack) != 1 {
		return NewMalformedExpressionError(
			fmt.Sprintf("%d operands left over after interpreting", len(p.stack)-1))
	}
	return nil
}
