package output

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/reglet-dev/roster/internal/domain/entities"
)

// HighlightEnv is the environment visible to highlight expressions.
type HighlightEnv struct {
	Name  string  `expr:"name"`
	Grade float64 `expr:"grade"`
}

// Highlighter marks records matching a boolean expression such as
// "grade < 3.0" or "name startsWith 'A'". A nil Highlighter matches nothing.
type Highlighter struct {
	program    *vm.Program
	expression string
}

// NewHighlighter compiles expression once. An empty expression returns nil.
func NewHighlighter(expression string) (*Highlighter, error) {
	if expression == "" {
		return nil, nil
	}

	program, err := expr.Compile(expression, expr.Env(HighlightEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid highlight expression: %w\nExample: grade < 3.0 || name == 'Ana'", err)
	}

	return &Highlighter{program: program, expression: expression}, nil
}

// Expression returns the source expression.
func (h *Highlighter) Expression() string {
	if h == nil {
		return ""
	}
	return h.expression
}

// Match evaluates the expression for rec. Evaluation errors count as no match.
func (h *Highlighter) Match(rec entities.Record) bool {
	if h == nil {
		return false
	}

	out, err := expr.Run(h.program, HighlightEnv{Name: rec.Name(), Grade: rec.Grade()})
	if err != nil {
		return false
	}

	matched, ok := out.(bool)
	return ok && matched
}
