package interp

import (
	"io"
	"math/rand/v2"
	"time"
)

// RunMode distinguishes the two states §4.8 calls Idle and Running: an
// Interpreter in Immediate mode is a prompt waiting for the next line; one
// in Deferred mode is a program executing line by line.
type RunMode int

const (
	Immediate RunMode = iota
	Deferred
)

// Interpreter is one engine instance: a symbol Environment, a stored
// program, an execution cursor, and the GOSUB/FOR bookkeeping stacks. RUN
// hands execution to an owned sub-Interpreter that shares the same Program
// but keeps its own variables and cursor, so immediate-mode assignments
// never leak into a running program and vice versa; CONT resumes that same
// sub-Interpreter after a STOP.
type Interpreter struct {
	Env     *Environment
	Program *ProgramStore

	mode        RunMode
	cursor      int
	currentLine int32

	returnStack ReturnStack
	loopStack   LoopStack

	hasSyntaxError bool
	exiting        bool

	sub *Interpreter

	out    io.Writer
	banner string

	rng          *rand.Rand
	seed1, seed2 uint64
	seeded       bool
}

// NewInterpreter builds a ready-to-use Immediate-mode engine: opts are
// applied again after operators, builtins, and keywords are registered, so
// an Option can still add to or override them (e.g. WithConfig's extra
// constants).
func NewInterpreter(opts ...Option) *Interpreter {
	it := &Interpreter{
		Env:     NewEnvironment(),
		Program: NewProgramStore(),
		mode:    Immediate,
		out:     io.Discard,
		banner:  "DAW BASIC v0.1\nREADY",
	}

	// Options are applied twice: once now so WithSeed can steer the rng
	// before RND is registered, and once more after registration so a
	// WithConfig constant can override a same-named builtin default
	// instead of being silently clobbered by it.
	for _, opt := range opts {
		opt(it)
	}

	if !it.seeded {
		it.seed1, it.seed2 = uint64(time.Now().UnixNano()), 0x9E3779B97F4A7C15
	}
	it.rng = rand.New(rand.NewPCG(it.seed1, it.seed2))

	RegisterOperators(it.Env)
	RegisterBuiltins(it.Env, it.rng)
	RegisterKeywords(it.Env)

	for _, opt := range opts {
		opt(it)
	}

	return it
}

// newSubInterpreter builds the child engine RUN uses to execute the stored
// program, sharing program text with parent but owning independent state.
func newSubInterpreter(parent *Interpreter) *Interpreter {
	sub := &Interpreter{
		Env:     NewEnvironment(),
		Program: parent.Program,
		mode:    Deferred,
		out:     parent.out,
		banner:  parent.banner,
		rng:     parent.rng,
	}
	RegisterOperators(sub.Env)
	RegisterBuiltins(sub.Env, sub.rng)
	RegisterKeywords(sub.Env)
	return sub
}

// Banner returns the text a host REPL should print once at startup.
func (it *Interpreter) Banner() string { return it.banner }

// driveFrom runs lines starting at sorted position startIdx until it passes
// the last stored line, or hits a STOP/END, a SYNTAX error, or a FATAL
// error, implementing the
// §4.8 execution loop shared by RUN and CONT.
func (it *Interpreter) driveFrom(startIdx int) bool {
	it.hasSyntaxError = false
	it.cursor = startIdx

	for {
		line, ok := it.Program.At(it.cursor)
		if !ok || line.Number == sentinelLineNumber {
			break
		}

		it.currentLine = line.Number
		_ = it.Env.AddConstant("CURRENT_LINE", "line number currently executing", Int(line.Number))

		cont := it.ParseLine(line.Text, false)
		if !cont {
			return false
		}
		if it.hasSyntaxError {
			break
		}
		if it.exiting {
			it.exiting = false
			break
		}
		it.cursor++
	}
	return true
}

// Run implements the RUN keyword: sort the program, reset the sub-engine's
// variables and stacks, and execute from lineNumber (or the first stored
// line when lineNumber is negative).
func (it *Interpreter) Run(lineNumber int32) bool {
	if it.sub == nil {
		it.sub = newSubInterpreter(it)
	}
	it.Program.Sort()
	it.sub.Env.ClearVariables()
	it.sub.Env.ClearArrays()
	it.sub.returnStack = ReturnStack{}
	it.sub.loopStack = LoopStack{}

	var startIdx int
	if lineNumber >= 0 {
		idx := it.Program.IndexOf(lineNumber)
		if idx < 0 {
			it.reportError(NewSyntaxError("undefined line number %d", lineNumber))
			return true
		}
		startIdx = idx
	} else {
		startIdx = it.Program.FirstReal()
	}

	return it.sub.driveFrom(startIdx)
}

// Cont implements CONT: resume the paused sub-engine at the line after the
// one it stopped on. It is a SYNTAX error if no program has been run since
// the engine was created or last reset by NEW; after a program that ran to
// its end, CONT resumes past the last line and runs nothing.
func (it *Interpreter) Cont() (bool, error) {
	if it.sub == nil {
		return true, NewSyntaxError("CONT: no program is stopped")
	}
	return it.sub.driveFrom(it.sub.cursor + 1), nil
}
