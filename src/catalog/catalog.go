// Package catalog runs named suites of RPN expressions kept in YAML files.
package catalog

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/eriklarko/rpn-calc/src/rpntree"
	"gopkg.in/yaml.v3"
)

// Catalog maps a name to an expression entry.
// Example file:
//
//	sum-of-sums:
//	  expression: 2 3 + 4 5 + *
//	  expected: 45
//	  description: multiplies two small sums
//	simple:
//	  expression: 2 3 +
//	  expected: 5
type Catalog map[string]Entry

// Entry is one named expression with the result it is expected to evaluate
// to.
type Entry struct {
	Expression  string `yaml:"expression"`
	Expected    int    `yaml:"expected"`
	Description string `yaml:"description,omitempty"`
}

// Load reads a catalog from the YAML file at the given path.
func Load(path string) (Catalog, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	var c Catalog
	if err := yaml.Unmarshal(content, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}

	return c, nil
}

// Run parses and evaluates every entry, recording the outcome per name.
func (c Catalog) Run() *Report {
	report := &Report{}

	for name, entry := range c {
		tree := rpntree.New()
		if err := tree.Parse(entry.Expression); err != nil {
			slog.Warn("catalog entry does not parse",
				"name", name,
				"expression", entry.Expression,
				"error", err,
			)
			report.RecordError(name, err)
			continue
		}

		result, err := tree.Evaluate()
		if err != nil {
			slog.Warn("catalog entry does not evaluate",
				"name", name,
				"expression", entry.Expression,
				"error", err,
			)
			report.RecordError(name, err)
			continue
		}

		report.RecordResult(name, entry.Expected, result)
	}

	return report
}
