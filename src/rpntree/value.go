package rpntree

import "strconv"

// Value wraps a single integer leaf. It is immutable after construction.
type Value struct {
	value int
}

// NewValue parses the given token as a base-10 integer. Tokens that don't
// parse fail with a NumValueError.
func NewValue(token string) (Value, error) {
	v, err := strconv.Atoi(token)
	if err != nil {
		return Value{}, NewNumValueError(token)
	}
	return Value{value: v}, nil
}

// NewValueFromInt wraps an integer directly. It never fails.
func NewValueFromInt(v int) Value {
	return Value{value: v}
}

// Int returns the wrapped integer.
func (v Value) Int() int {
	return v.value
}

func (v Value) String() string {
	return strconv.Itoa(v.value)
}
