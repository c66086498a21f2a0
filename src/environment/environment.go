package environment

import (
	"os"

	"github.com/mattn/go-isatty"
)

var interactiveOverride *bool

// ForceSetIsInteractive overrides the terminal detection. Used by tests and
// the --no-input flag.
func ForceSetIsInteractive(value bool) {
	interactiveOverride = &value
}

// IsInteractive returns true if the calculator is driven by a user at a real
// terminal, meaning the read-eval-print loop can prompt for expressions.
func IsInteractive() bool {
	if interactiveOverride != nil {
		return *interactiveOverride
	}
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
