package rpntree

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when a token is requested but the input has
	// already been consumed.
	ErrEmptyInput = errors.New("no tokens left in the input")

	// ErrEmptyExpression is returned when a parse is attempted on input that
	// contains no tokens at all.
	ErrEmptyExpression = errors.New("expression contains no tokens")
)

// OperatorNameError is returned when an operator is constructed from a symbol
// other than + - * /.
type OperatorNameError struct {
	Name string
}

// NewOperatorNameError creates a new OperatorNameError for the given symbol.
func NewOperatorNameError(name string) error {
	return &OperatorNameError{Name: name}
}

func (e *OperatorNameError) Error() string {
	return fmt.Sprintf("%q is not an operator name", e.Name)
}

// NumValueError is returned when a value is constructed from a token that is
// not a valid base-10 integer.
type NumValueError struct {
	Token string
}

// NewNumValueError creates a new NumValueError for the given token.
func NewNumValueError(token string) error {
	return &NumValueError{Token: token}
}

func (e *NumValueError) Error() string {
	return fmt.Sprintf("%q is not a valid number", e.Token)
}

// NotNumberError is returned when a numeric value is requested from an
// operator node.
type NotNumberError struct {
	Node string
}

// NewNotNumberError creates a new NotNumberError for the given node.
func NewNotNumberError(node string) error {
	return &NotNumberError{Node: node}
}

func (e *NotNumberError) Error() string {
	return fmt.Sprintf("node %s is not a number", e.Node)
}

// NotOperatorError is returned when an operator-only operation, such as
// evaluating or serializing a tree, is invoked on something that is not an
// operator node.
type NotOperatorError struct {
	Node Node
}

// NewNotOperatorError creates a new NotOperatorError for the given node.
func NewNotOperatorError(node Node) error {
	return &NotOperatorError{Node: node}
}

func (e *NotOperatorError) Error() string {
	return fmt.Sprintf("node %v is not an operator", e.Node)
}

// UnrecognizedTokenError is returned when a token matches neither the
// operator pattern nor the number pattern.
type UnrecognizedTokenError struct {
	Token string
}

// NewUnrecognizedTokenError creates a new UnrecognizedTokenError for the
// given token.
func NewUnrecognizedTokenError(token string) error {
	return &UnrecognizedTokenError{Token: token}
}

func (e *UnrecognizedTokenError) Error() string {
	return fmt.Sprintf("unrecognized token %q", e.Token)
}

// DivisionByZeroError is returned when / is applied with a zero right
// operand.
type DivisionByZeroError struct {
	Dividend int
}

// NewDivisionByZeroError creates a new DivisionByZeroError for the given
// dividend.
func NewDivisionByZeroError(dividend int) error {
	return &DivisionByZeroError{Dividend: dividend}
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("cannot divide %d by zero", e.Dividend)
}

// MalformedExpressionError is returned when an expression does not reduce to
// a single tree, for example when an operator has too few operands or when
// operands are left over after interpreting.
type MalformedExpressionError struct {
	Detail string
}

// NewMalformedExpressionError creates a new MalformedExpressionError with the
// given detail.
func NewMalformedExpressionError(detail string) error {
	return &MalformedExpressionError{Detail: detail}
}

func (e *MalformedExpressionError) Error() string {
	return "malformed expression: " + e.Detail
}
