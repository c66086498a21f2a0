package rpntree

// Operator is one of the four binary arithmetic operators. It is immutable
// after construction.
type Operator struct {
	name string
}

// NewOperator creates the operator named by the given symbol, one of
// + - * /. Any other symbol fails with an OperatorNameError.
func NewOperator(name string) (Operator, error) {
	switch name {
	case "+", "-", "*", "/":
		return Operator{name: name}, nil
	default:
		return Operator{}, NewOperatorNameError(name)
	}
}

// Apply applies the operator to the two operands, left operand first.
// Division is Go integer division, truncating toward zero, so -7 / 2 is -3.
// Dividing by zero fails with a DivisionByZeroError.
func (o Operator) Apply(a, b int) (int, error) {
	switch o.name {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*":
		return a * b, nil
	case "/":
		if b == 0 {
			return 0, NewDivisionByZeroError(a)
		}
		return a / b, nil
	default:
		return 0, NewOperatorNameError(o.name)
	}
}

func (o Operator) String() string {
	return o.name
}
