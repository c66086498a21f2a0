package rpntree_test

import (
	"testing"

	"github.com/eriklarko/rpn-calc/src/rpntree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	testCases := map[string]struct {
		a, b     int
		expected int
	}{
		"+": {a: 3, b: 5, expected: 8},
		"-": {a: 5, b: 2, expected: 3},
		"*": {a: 5, b: 2, expected: 10},
		"/": {a: 6, b: 2, expected: 3},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			op, err := rpntree.NewOperator(name)
			require.NoError(t, err)

			result, err := op.Apply(tc.a, tc.b)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestDivisionTruncatesTowardZero(t *testing.T) {
	op, err := rpntree.NewOperator("/")
	require.NoError(t, err)

	testCases := map[string]struct {
		a, b     int
		expected int
	}{
		"positive over positive": {a: 7, b: 2, expected: 3},
		"negative over positive": {a: -7, b: 2, expected: -3},
		"positive over negative": {a: 7, b: -2, expected: -3},
		"negative over negative": {a: -7, b: -2, expected: 3},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			result, err := op.Apply(tc.a, tc.b)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestDivisionByZero(t *testing.T) {
	op, err := rpntree.NewOperator("/")
	require.NoError(t, err)

	_, err = op.Apply(6, 0)

	var divErr *rpntree.DivisionByZeroError
	require.ErrorAs(t, err, &divErr)
	assert.Equal(t, 6, divErr.Dividend)
}

func TestBogusOperatorName(t *testing.T) {
	_, err := rpntree.NewOperator("bogus")

	var nameErr *rpntree.OperatorNameError
	require.ErrorAs(t, err, &nameErr)
	assert.Equal(t, "bogus", nameErr.Name)
}

func TestOperatorString(t *testing.T) {
	for _, name := range []string{"+", "-", "*", "/"} {
		t.Run(name, func(t *testing.T) {
			op, err := rpntree.NewOperator(name)
			require.NoError(t, err)

			assert.Equal(t, name, op.String())
		})
	}
}
