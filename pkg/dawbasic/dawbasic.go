// Package dawbasic is the public, embeddable API for the DAW BASIC engine:
// a host constructs an Engine, feeds it lines one at a time, and evaluates
// expressions or inspects the symbol tables directly, without reaching into
// internal/interp.
package dawbasic

import (
	"github.com/basiclang/dawbasic/internal/interp"
)

// Value is a single DAW BASIC value: Empty, Boolean, Integer, Real, or
// String, per the engine's tagged value model.
type Value = interp.Value

// Kind re-exports the Value tag enum.
type Kind = interp.Kind

const (
	KindEmpty   = interp.KindEmpty
	KindBoolean = interp.KindBoolean
	KindInteger = interp.KindInteger
	KindReal    = interp.KindReal
	KindString  = interp.KindString
)

// Value constructors, re-exported for hosts building Values to pass into
// AddVariable/AddConstant/AddFunction without reaching into internal/interp.
var (
	Empty = interp.Empty
	Bool  = interp.Bool
	Int   = interp.Int
	Real  = interp.Real
	Str   = interp.Str
)

// Option configures an Engine at construction.
type Option = interp.Option

var (
	WithOutput = interp.WithOutput
	WithBanner = interp.WithBanner
	WithConfig = interp.WithConfig
	WithSeed   = interp.WithSeed
)

// Config is optional YAML-loadable host configuration.
type Config = interp.Config

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	return interp.LoadConfig(path)
}

// Engine wraps an interp.Interpreter, the host-facing entry point for §6's
// External Interfaces contract.
type Engine struct {
	it *interp.Interpreter
}

// New builds a ready-to-use Engine in Immediate mode.
func New(opts ...Option) (*Engine, error) {
	return &Engine{it: interp.NewInterpreter(opts...)}, nil
}

// Banner returns the text a host should print once, before the first
// prompt.
func (e *Engine) Banner() string { return e.it.Banner() }

// ParseLine feeds one line of input to the engine: a numbered-line program
// edit, or an immediate statement. It returns false when the host should
// stop the REPL loop (e.g. QUIT/EXIT was executed).
func (e *Engine) ParseLine(text string, showReady bool) (bool, error) {
	return e.it.ParseLine(text, showReady), nil
}

// Evaluate evaluates a standalone expression against the engine's current
// symbol table, without going through statement dispatch.
func (e *Engine) Evaluate(text string) (Value, error) {
	return e.it.Evaluate(text)
}

// AddVariable assigns a variable, creating it if absent.
func (e *Engine) AddVariable(name string, v Value) error {
	return e.it.Env.AssignVariable(name, v)
}

// AddConstant registers a host-provided constant.
func (e *Engine) AddConstant(name, description string, v Value) error {
	return e.it.Env.AddConstant(name, description, v)
}

// AddFunction registers a host-provided function, extending the builtin
// set.
func (e *Engine) AddFunction(name, description string, fn func(args []Value) (Value, error)) error {
	return e.it.Env.AddFunction(name, description, fn)
}

// GetVariableConstant resolves name as a constant first, then a variable.
func (e *Engine) GetVariableConstant(name string) (Value, error) {
	v, ok := e.it.Env.GetVariableConstant(name)
	if !ok {
		return interp.Empty(), interp.NewSyntaxError("%q is not a variable or constant", name)
	}
	return v, nil
}

func (e *Engine) IsVariable(name string) bool { return e.it.Env.IsVariable(name) }
func (e *Engine) IsConstant(name string) bool { return e.it.Env.IsConstant(name) }
func (e *Engine) IsFunction(name string) bool { return e.it.Env.IsFunction(name) }
func (e *Engine) IsKeyword(name string) bool  { return e.it.Env.IsKeyword(name) }

// ListVariables returns every currently assigned variable name.
func (e *Engine) ListVariables() []string { return e.it.Env.VariableNames() }

// ListConstants returns every registered constant name.
func (e *Engine) ListConstants() []string { return e.it.Env.ConstantNames() }

// ListFunctions returns every registered function name.
func (e *Engine) ListFunctions() []string { return e.it.Env.FunctionNames() }

// ListKeywords returns every registered statement keyword.
func (e *Engine) ListKeywords() []string { return e.it.Env.KeywordNames() }

// AddLine stores or replaces a program line.
func (e *Engine) AddLine(lineNumber int32, text string) {
	e.it.Program.Put(lineNumber, text)
}

// RemoveLine deletes a program line, reporting whether it existed.
func (e *Engine) RemoveLine(lineNumber int32) bool {
	return e.it.Program.Remove(lineNumber)
}

// Run executes the stored program from lineNumber, or from its first line
// when lineNumber is negative.
func (e *Engine) Run(lineNumber int32) bool {
	return e.it.Run(lineNumber)
}
