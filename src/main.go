package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/eriklarko/rpn-calc/src/catalog"
	"github.com/eriklarko/rpn-calc/src/environment"
	"github.com/eriklarko/rpn-calc/src/generator"
	"github.com/eriklarko/rpn-calc/src/rpntree"
	"github.com/eriklarko/rpn-calc/src/tui"
	"github.com/spf13/cobra"
)

var noInput bool

var rootCmd = &cobra.Command{
	Use:   "rpn-calc [expression]",
	Short: "Parse and evaluate arithmetic expressions in Reverse Polish Notation",
	Long: `rpn-calc parses a whitespace-separated RPN expression into a binary
expression tree and evaluates it. With no expression and a terminal attached
it drops into an interactive prompt instead.

Example:
  rpn-calc "2 3 + 4 5 + *"`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if noInput {
			environment.ForceSetIsInteractive(false)
		}

		if len(args) == 0 {
			if environment.IsInteractive() {
				return tui.New().Repl()
			}
			return fmt.Errorf("no expression given")
		}

		return evalExpression(strings.Join(args, " "), cmd.OutOrStdout())
	},
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Read and evaluate RPN expressions interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.New().Repl()
	},
}

var catalogCmd = &cobra.Command{
	Use:   "catalog <file>",
	Short: "Evaluate every expression in a YAML catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := catalog.Load(args[0])
		if err != nil {
			return err
		}

		report := c.Run()
		printReport(cmd.OutOrStdout(), report)

		if report.HasFailures() {
			return fmt.Errorf("%d of %d catalog entries failed",
				report.Len()-len(report.Passed), report.Len())
		}
		return nil
	},
}

var (
	generateDepth    int
	generateMaxValue int
	generateSeed     int64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a random RPN expression",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		seed := generateSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		gen := generator.New(seed)
		gen.MaxDepth = generateDepth
		gen.MaxValue = generateMaxValue

		tree, err := gen.Tree()
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), tree)
		return nil
	},
}

func evalExpression(expression string, out io.Writer) error {
	tree := rpntree.New()
	if err := tree.Parse(expression); err != nil {
		return err
	}

	result, err := tree.Evaluate()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, tree)
	fmt.Fprintf(out, "= %d\n", result)
	return nil
}

func printReport(out io.Writer, report *catalog.Report) {
	for _, name := range sortedKeys(report.Passed) {
		fmt.Fprintf(out, "ok   %s = %d\n", name, report.Passed[name])
	}
	for _, name := range sortedKeys(report.Failed) {
		mismatch := report.Failed[name]
		fmt.Fprintf(out, "FAIL %s: expected %d, got %d\n", name, mismatch.Expected, mismatch.Actual)
	}
	for _, name := range sortedKeys(report.Errors) {
		fmt.Fprintf(out, "ERR  %s: %v\n", name, report.Errors[name])
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noInput, "no-input", false,
		"never prompt, even when a terminal is attached")

	generateCmd.Flags().IntVar(&generateDepth, "depth", generator.DefaultMaxDepth,
		"maximum nesting depth of the generated expression")
	generateCmd.Flags().IntVar(&generateMaxValue, "max-value", generator.DefaultMaxValue,
		"exclusive upper bound for generated leaf values")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 0,
		"random seed, 0 means time-based")

	rootCmd.AddCommand(replCmd, catalogCmd, generateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
