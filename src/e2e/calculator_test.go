package e2e_test

import (
	"bytes"
	"log/slog"
	"strconv"
	"testing"

	"github.com/eriklarko/rpn-calc/src/catalog"
	"github.com/eriklarko/rpn-calc/src/generator"
	helpers_test "github.com/eriklarko/rpn-calc/src/helpers"
	"github.com/eriklarko/rpn-calc/src/rpntree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogOfGeneratedExpressions(t *testing.T) {
	// Capture log output
	var logOutput bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&logOutput, nil)))

	// generate a handful of expressions and record what they evaluate to
	gen := generator.New(17)
	gen.Operators = []string{"+", "-", "*"} // / could divide by zero

	yamlContent := ""
	names := []string{"first", "second", "third", "fourth", "fifth"}
	for _, name := range names {
		tree, err := gen.Tree()
		require.NoError(t, err)

		result, err := tree.Evaluate()
		require.NoError(t, err)

		yamlContent += name + ":\n"
		yamlContent += "  expression: " + tree.String() + "\n"
		yamlContent += "  expected: " + strconv.Itoa(result) + "\n"
	}

	// write them to a catalog file and run the whole pipeline on it
	path := helpers_test.CreateTempFileWithContents(t, yamlContent)
	c, err := catalog.Load(path)
	require.NoError(t, err)
	require.Len(t, c, len(names))

	report := c.Run()

	assert.False(t, report.HasFailures(), "failed: %v, errors: %v", report.Failed, report.Errors)
	assert.Len(t, report.Passed, len(names))
	assert.Empty(t, logOutput.String())
}

func TestParseEvalPrintFlow(t *testing.T) {
	// the exact flow the CLI runs: parse, display, evaluate
	tree := rpntree.New()
	require.NoError(t, tree.Parse("2 3 + 4 5 + *"))

	assert.Equal(t, "2 3 + 4 5 + *", tree.String())

	infix, err := tree.InfixString()
	require.NoError(t, err)
	assert.Equal(t, "((2 + 3) * (4 + 5))", infix)

	result, err := tree.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, 45, result)
}
