package rpntree

import "fmt"

// Kind discriminates the two node variants.
type Kind int

const (
	KindInvalid Kind = iota
	KindOperator
	KindValue
)

func (k Kind) String() string {
	switch k {
	case KindOperator:
		return "operator"
	case KindValue:
		return "value"
	default:
		return "invalid"
	}
}

// Node is one node of an expression tree, either an operator with two
// children or a value leaf. Each node exclusively owns its children; trees
// never share nodes.
type Node interface {
	fmt.Stringer

	Kind() Kind

	// Int returns the wrapped integer for value nodes and fails with a
	// NotNumberError for operator nodes.
	Int() (int, error)
}

// OperatorNode applies its operator to the results of its left and right
// subtrees. A node with a nil child is an intermediate parser state; a
// finished tree always has both children populated.
type OperatorNode struct {
	Op    Operator
	Left  Node
	Right Node
}

// NewOperatorNode creates an operator node with no children yet.
func NewOperatorNode(op Operator) *OperatorNode {
	return &OperatorNode{Op: op}
}

func (n *OperatorNode) Kind() Kind {
	return KindOperator
}

func (n *OperatorNode) Int() (int, error) {
	return 0, NewNotNumberError(n.Op.String())
}

func (n *OperatorNode) String() string {
	return n.Op.String()
}

// ValueNode is a leaf holding a single integer. It structurally has no
// children.
type ValueNode struct {
	Val Value
}

// NewValueNode creates a leaf node wrapping the given value.
func NewValueNode(v Value) *ValueNode {
	return &ValueNode{Val: v}
}

func (n *ValueNode) Kind() Kind {
	return KindValue
}

func (n *ValueNode) Int() (int, error) {
	return n.Val.Int(), nil
}

func (n *ValueNode) String() string {
	return n.Val.String()
}
