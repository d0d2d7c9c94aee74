package interp

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var upperCaser = cases.Upper(language.Und)

// canonical upper-cases name the way every symbol table lookup does,
// locale-aware via golang.org/x/text/cases rather than a bare strings.ToUpper.
func canonical(name string) string {
	return upperCaser.String(name)
}

// ConstantEntry pairs a human-readable description with an immutable Value.
type ConstantEntry struct {
	Description string
	Value       Value
}

// FunctionEntry is a registered builtin (or host-registered) function.
type FunctionEntry struct {
	Description string
	Call        func(args []Value) (Value, error)
}

// KeywordEntry is a registered statement keyword handler. Call receives the
// text following the keyword and returns the dispatcher "continue" flag.
type KeywordEntry struct {
	Call func(it *Interpreter, rest string) (bool, error)
}

// BinaryOperatorEntry is a registered two-operand operator.
type BinaryOperatorEntry struct {
	Rank int
	Call func(lhs, rhs Value) (Value, error)
}

// UnaryOperatorEntry is a registered single-operand operator.
type UnaryOperatorEntry struct {
	Rank int
	Call func(v Value) (Value, error)
}

// Environment holds the case-insensitive name tables described in §4.4:
// variables, constants, arrays, builtin/host functions, keywords, and
// operators. Keyword/function/constant namespaces are disjoint from
// variables.
type Environment struct {
	variables map[string]Value
	constants map[string]ConstantEntry
	arrays    map[string]*ArrayEntry
	functions map[string]FunctionEntry
	keywords  map[string]KeywordEntry
	binOps    map[string]BinaryOperatorEntry
	unOps     map[string]UnaryOperatorEntry
}

// NewEnvironment returns an empty Environment with no registered symbols.
func NewEnvironment() *Environment {
	return &Environment{
		variables: make(map[string]Value),
		constants: make(map[string]ConstantEntry),
		arrays:    make(map[string]*ArrayEntry),
		functions: make(map[string]FunctionEntry),
		keywords:  make(map[string]KeywordEntry),
		binOps:    make(map[string]BinaryOperatorEntry),
		unOps:     make(map[string]UnaryOperatorEntry),
	}
}

func (e *Environment) IsVariable(name string) bool {
	_, ok := e.variables[canonical(name)]
	return ok
}

func (e *Environment) IsConstant(name string) bool {
	_, ok := e.constants[canonical(name)]
	return ok
}

func (e *Environment) IsArray(name string) bool {
	_, ok := e.arrays[canonical(name)]
	return ok
}

func (e *Environment) IsFunction(name string) bool {
	_, ok := e.functions[canonical(name)]
	return ok
}

func (e *Environment) IsKeyword(name string) bool {
	_, ok := e.keywords[canonical(name)]
	return ok
}

func (e *Environment) isReserved(key string) bool {
	_, isConst := e.constants[key]
	_, isFunc := e.functions[key]
	_, isKw := e.keywords[key]
	return isConst || isFunc || isKw
}

// AssignVariable implements implicit variable creation: if the name already
// names a variable, its value is overwritten; otherwise the name must not
// collide with a constant, function, or keyword (§4.4 "adding a variable").
func (e *Environment) AssignVariable(name string, v Value) error {
	key := canonical(name)
	if _, exists := e.variables[key]; exists {
		e.variables[key] = v
		return nil
	}
	if e.isReserved(key) {
		return NewSyntaxError("cannot assign %q: name is already a constant, function, or keyword", name)
	}
	e.variables[key] = v
	return nil
}

// GetVariable returns a variable's current value.
func (e *Environment) GetVariable(name string) (Value, bool) {
	v, ok := e.variables[canonical(name)]
	return v, ok
}

// RemoveVariable deletes a variable, reporting whether it existed.
func (e *Environment) RemoveVariable(name string) bool {
	key := canonical(name)
	if _, ok := e.variables[key]; !ok {
		return false
	}
	delete(e.variables, key)
	return true
}

// ClearVariables removes every variable (CLR with no argument).
func (e *Environment) ClearVariables() {
	e.variables = make(map[string]Value)
}

// ClearArrays removes every DIM'd array, so a fresh RUN doesn't see arrays
// left over from a previous one.
func (e *Environment) ClearArrays() {
	e.arrays = make(map[string]*ArrayEntry)
}

// VariableNames returns every variable name, for VARS listings.
func (e *Environment) VariableNames() []string {
	return keysOf(e.variables)
}

// AddConstant registers name as an immutable constant. It fails against a
// function or keyword, and silently removes any existing variable of the
// same name (constants shadow variables, per §4.4).
func (e *Environment) AddConstant(name, description string, v Value) error {
	key := canonical(name)
	if _, isFunc := e.functions[key]; isFunc {
		return NewSyntaxError("cannot add constant %q: name is already a function", name)
	}
	if _, isKw := e.keywords[key]; isKw {
		return NewSyntaxError("cannot add constant %q: name is already a keyword", name)
	}
	delete(e.variables, key)
	e.constants[key] = ConstantEntry{Description: description, Value: v}
	return nil
}

// GetConstant returns a constant's entry.
func (e *Environment) GetConstant(name string) (ConstantEntry, bool) {
	c, ok := e.constants[canonical(name)]
	return c, ok
}

// ConstantNames returns every constant name, for VARS listings.
func (e *Environment) ConstantNames() []string {
	return keysOf(e.constants)
}

// GetVariableConstant resolves name as a constant first, then a variable.
func (e *Environment) GetVariableConstant(name string) (Value, bool) {
	if c, ok := e.GetConstant(name); ok {
		return c.Value, true
	}
	return e.GetVariable(name)
}

// AddFunction registers a builtin or host function. It fails FATAL against a
// keyword, matching §4.4's asymmetric rule (functions/keywords share no name
// even though the failure mode differs from variables/constants).
func (e *Environment) AddFunction(name, description string, fn func(args []Value) (Value, error)) error {
	key := canonical(name)
	if _, isKw := e.keywords[key]; isKw {
		return NewFatalError("cannot add function %q: name is already a keyword", name)
	}
	e.functions[key] = FunctionEntry{Description: description, Call: fn}
	return nil
}

// GetFunction returns a function's entry.
func (e *Environment) GetFunction(name string) (FunctionEntry, bool) {
	f, ok := e.functions[canonical(name)]
	return f, ok
}

// FunctionNames returns every registered function name.
func (e *Environment) FunctionNames() []string {
	return keysOf(e.functions)
}

// AddKeyword registers a statement keyword handler.
func (e *Environment) AddKeyword(name string, fn func(it *Interpreter, rest string) (bool, error)) {
	e.keywords[canonical(name)] = KeywordEntry{Call: fn}
}

// GetKeyword returns a keyword's entry.
func (e *Environment) GetKeyword(name string) (KeywordEntry, bool) {
	k, ok := e.keywords[canonical(name)]
	return k, ok
}

// KeywordNames returns every registered keyword name.
func (e *Environment) KeywordNames() []string {
	return keysOf(e.keywords)
}

// AddBinaryOperator registers a two-operand operator under its symbol.
func (e *Environment) AddBinaryOperator(symbol string, rank int, fn func(lhs, rhs Value) (Value, error)) {
	e.binOps[symbol] = BinaryOperatorEntry{Rank: rank, Call: fn}
}

// GetBinaryOperator returns a binary operator's entry.
func (e *Environment) GetBinaryOperator(symbol string) (BinaryOperatorEntry, bool) {
	op, ok := e.binOps[symbol]
	return op, ok
}

// AddUnaryOperator registers a single-operand operator under its symbol.
func (e *Environment) AddUnaryOperator(symbol string, rank int, fn func(v Value) (Value, error)) {
	e.unOps[symbol] = UnaryOperatorEntry{Rank: rank, Call: fn}
}

// GetUnaryOperator returns a unary operator's entry.
func (e *Environment) GetUnaryOperator(symbol string) (UnaryOperatorEntry, bool) {
	op, ok := e.unOps[symbol]
	return op, ok
}

func keysOf[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	return names
}
