package rpntree_test

import (
	"testing"

	"github.com/eriklarko/rpn-calc/src/rpntree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperatorNode(t *testing.T) {
	op, err := rpntree.NewOperator("+")
	require.NoError(t, err)

	node := rpntree.NewOperatorNode(op)

	assert.Equal(t, rpntree.KindOperator, node.Kind())
	assert.Equal(t, "+", node.String())
	assert.Nil(t, node.Left)
	assert.Nil(t, node.Right)
}

func TestOperatorNodeHasNoNumericValue(t *testing.T) {
	op, err := rpntree.NewOperator("*")
	require.NoError(t, err)

	node := rpntree.NewOperatorNode(op)
	_, err = node.Int()

	var numErr *rpntree.NotNumberError
	require.ErrorAs(t, err, &numErr)
	assert.Equal(t, "*", numErr.Node)
}

func TestValueNode(t *testing.T) {
	node := rpntree.NewValueNode(rpntree.NewValueFromInt(3))

	assert.Equal(t, rpntree.KindValue, node.Kind())
	assert.Equal(t, "3", node.String())

	value, err := node.Int()
	require.NoError(t, err)
	assert.Equal(t, 3, value)
}

func TestOperatorNodeChildren(t *testing.T) {
	op, err := rpntree.NewOperator("+")
	require.NoError(t, err)

	node := rpntree.NewOperatorNode(op)
	node.Left = rpntree.NewValueNode(rpntree.NewValueFromInt(3))
	node.Right = rpntree.NewValueNode(rpntree.NewValueFromInt(5))

	left, err := node.Left.Int()
	require.NoError(t, err)
	assert.Equal(t, 3, left)

	right, err := node.Right.Int()
	require.NoError(t, err)
	assert.Equal(t, 5, right)
}
