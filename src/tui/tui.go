// Package tui is the interactive surface of the calculator, a plain
// read-eval-print loop over RPN expressions.
package tui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/eriklarko/rpn-calc/src/rpntree"
)

type TUI struct {
	input  io.Reader
	output io.Writer
}

func New() *TUI {
	return &TUI{
		input:  os.Stdin,
		output: os.Stdout,
	}
}

func (t *TUI) SetInput(input io.Reader) {
	t.input = input
}

func (t *TUI) SetOutput(output io.Writer) {
	t.output = output
}

// Repl reads one RPN expression per line and prints its canonical form
// followed by its result. Failures are printed and the loop keeps going.
// The loop ends on EOF or when the user types exit or quit.
func (t *TUI) Repl() error {
	scanner := bufio.NewScanner(t.input)
	for {
		fmt.Fprint(t.output, "rpn> ")

		if !scanner.Scan() {
			fmt.Fprintln(t.output)
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}

		t.evalLine(line)
	}
	return scanner.Err()
}

func (t *TUI) evalLine(line string) {
	tree := rpntree.New()
	if err := tree.Parse(line); err != nil {
		fmt.Fprintf(t.output, "error: %v\n", err)
		return
	}

	result, err := tree.Evaluate()
	if err != nil {
		fmt.Fprintf(t.output, "error: %v\n", err)
		return
	}

	fmt.Fprintf(t.output, "%s\n= %d\n", tree, result)
}
