// Package validate compiles CEL expressions into text entry validators. The
// entered text is bound to the string variable "input", and the expression
// must evaluate to a bool:
//
//	size(input) > 4
//	input.matches('^[a-z]+$')
//	input.lowerAscii() in ['yes', 'no']
package validate

import (
	"errors"
	"fmt"

	"github.com/atomicstack/termpick/internal/logging"
	"github.com/atomicstack/termpick/internal/ui/state"
	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	celext "github.com/google/cel-go/ext"
)

// ErrNotBool is returned for expressions that do not produce a bool.
var ErrNotBool = errors.New("expression must evaluate to a bool")

// presets are shorthands accepted in place of an expression.
var presets = map[string]string{
	"nonempty": "size(input.trim()) > 0",
	"int":      "input.matches('^-?[0-9]+$')",
	"number":   `input.matches('^-?[0-9]+(\\.[0-9]+)?$')`,
	"word":     `input.matches('^\\S+$')`,
}

// Expr is a compiled validator expression.
type Expr struct {
	source string
	prg    cel.Program
}

func newEnv() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable("input", cel.StringType),
		celext.Strings(),
	)
}

// Compile parses and type-checks expr. A preset name is expanded first.
func Compile(expr string) (*Expr, error) {
	source := expr
	if preset, ok := presets[expr]; ok {
		source = preset
	}
	env, err := newEnv()
	if err != nil {
		return nil, fmt.Errorf("create CEL environment: %w", err)
	}
	ast, issues := env.Compile(source)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile %q: %w", expr, issues.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("compile %q: %w, got %s", expr, ErrNotBool, ast.OutputType())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program %q: %w", expr, err)
	}
	return &Expr{source: source, prg: prg}, nil
}

// String returns the expression source after preset expansion.
func (e *Expr) String() string { return e.source }

// Eval reports whether input satisfies the expression.
func (e *Expr) Eval(input string) (bool, error) {
	out, _, err := e.prg.Eval(map[string]interface{}{"input": input})
	if err != nil {
		return false, fmt.Errorf("eval %q: %w", e.source, err)
	}
	b, ok := out.(types.Bool)
	if !ok {
		return false, fmt.Errorf("eval %q: %w", e.source, ErrNotBool)
	}
	return bool(b), nil
}

// Validator adapts the expression to the text entry widget. Evaluation
// errors are logged and count as a rejection.
func (e *Expr) Validator() state.Validator {
	return func(input string) bool {
		ok, err := e.Eval(input)
		if err != nil {
			logging.Error(err)
			return false
		}
		return ok
	}
}

// Presets lists the preset names.
func Presets() map[string]string {
	out := make(map[string]string, len(presets))
	for k, v := range presets {
		out[k] = v
	}
	return out
}
