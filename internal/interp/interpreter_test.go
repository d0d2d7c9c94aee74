package interp

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"
)

func newTestInterpreter(t *testing.T) (*Interpreter, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	it := NewInterpreter(WithOutput(&buf), WithSeed(1, 2))
	return it, &buf
}

func run(t *testing.T, it *Interpreter, lines ...string) {
	t.Helper()
	for _, line := range lines {
		if !it.ParseLine(line, false) {
			return
		}
	}
}

func TestImmediatePrintAndLet(t *testing.T) {
	it, buf := newTestInterpreter(t)
	run(t, it, `LET X = 2 + 3`, `PRINT X`)
	if got := buf.String(); got != "5\n" {
		t.Fatalf("got %q, want %q", got, "5\n")
	}
}

func TestImplicitLet(t *testing.T) {
	it, buf := newTestInterpreter(t)
	run(t, it, `X = 41 + 1`, `PRINT X`)
	if got := buf.String(); got != "42\n" {
		t.Fatalf("got %q, want %q", got, "42\n")
	}
}

func TestProgramRunWithGosub(t *testing.T) {
	it, buf := newTestInterpreter(t)
	run(t,
		it,
		`10 LET X = 0`,
		`20 GOSUB 100`,
		`30 PRINT X`,
		`40 END`,
		`100 LET X = X + 1`,
		`110 RETURN`,
	)
	it.Run(-1)
	if got := buf.String(); got != "1\n" {
		t.Fatalf("got %q, want %q", got, "1\n")
	}
}

func TestForNextLoop(t *testing.T) {
	it, buf := newTestInterpreter(t)
	run(t,
		it,
		`10 FOR I = 1 TO 3`,
		`20 PRINT I`,
		`30 NEXT I`,
	)
	it.Run(-1)
	want := "1\n2\n3\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestForNextWithStep(t *testing.T) {
	it, buf := newTestInterpreter(t)
	run(t,
		it,
		`10 FOR I = 10 TO 0 STEP -5`,
		`20 PRINT I`,
		`30 NEXT I`,
	)
	it.Run(-1)
	want := "10\n5\n0\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestIfThenGoto(t *testing.T) {
	it, buf := newTestInterpreter(t)
	run(t,
		it,
		`10 LET X = 1`,
		`20 IF X = 1 THEN GOTO 40`,
		`30 PRINT "SKIPPED"`,
		`40 PRINT "REACHED"`,
	)
	it.Run(-1)
	if got := buf.String(); got != "REACHED\n" {
		t.Fatalf("got %q, want %q", got, "REACHED\n")
	}
}

func TestIfThenInlineStatement(t *testing.T) {
	it, buf := newTestInterpreter(t)
	run(t, it, `10 IF 1 = 1 THEN PRINT "YES"`)
	it.Run(-1)
	if got := buf.String(); got != "YES\n" {
		t.Fatalf("got %q, want %q", got, "YES\n")
	}
}

func TestStopAndCont(t *testing.T) {
	it, buf := newTestInterpreter(t)
	run(t,
		it,
		`10 PRINT "A"`,
		`20 STOP`,
		`30 PRINT "B"`,
	)
	it.Run(-1)
	if _, err := it.Cont(); err != nil {
		t.Fatalf("CONT failed: %v", err)
	}
	want := "A\nBREAK IN 20\nB\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSyntaxErrorIsRecoverable(t *testing.T) {
	it, buf := newTestInterpreter(t)
	cont := it.ParseLine(`PRINT 1 +`, true)
	if !cont {
		t.Fatalf("SYNTAX error should not stop the REPL")
	}
	if !strings.Contains(buf.String(), "SYNTAX ERROR") {
		t.Fatalf("expected a SYNTAX ERROR message, got %q", buf.String())
	}
}

func TestQuitStopsTheRepl(t *testing.T) {
	it, _ := newTestInterpreter(t)
	if it.ParseLine(`QUIT`, false) {
		t.Fatalf("QUIT should stop the REPL")
	}
}

func TestDimAndArrayAssignment(t *testing.T) {
	it, buf := newTestInterpreter(t)
	run(t,
		it,
		`DIM A(3)`,
		`LET A(2) = 99`,
		`PRINT A(2)`,
	)
	if got := buf.String(); got != "99\n" {
		t.Fatalf("got %q, want %q", got, "99\n")
	}
}

func TestArrayOutOfRangeIsSyntaxError(t *testing.T) {
	it, buf := newTestInterpreter(t)
	run(t, it, `DIM A(3)`)
	cont := it.ParseLine(`PRINT A(9)`, false)
	if !cont {
		t.Fatalf("out-of-range array access should be a recoverable SYNTAX error")
	}
	if !strings.Contains(buf.String(), "subscript out of range") {
		t.Fatalf("expected a subscript message, got %q", buf.String())
	}
}

func TestNewClearsProgramAndVariables(t *testing.T) {
	it, buf := newTestInterpreter(t)
	run(t, it, `10 PRINT "HI"`, `X = 1`, `NEW`)
	if it.Env.IsVariable("X") {
		t.Fatalf("NEW should clear variables")
	}
	if it.Program.FirstReal() != it.Program.Len() {
		t.Fatalf("NEW should clear the stored program")
	}
	_ = buf
}

func TestRndProducesDeterministicSequenceGivenSeed(t *testing.T) {
	it := NewInterpreter(WithSeed(7, 9))
	fn, ok := it.Env.GetFunction("RND")
	if !ok {
		t.Fatalf("RND is not registered")
	}
	v, err := fn.Call(nil)
	if err != nil {
		t.Fatalf("RND() failed: %v", err)
	}
	if v.Kind() != KindReal {
		t.Fatalf("RND() should return REAL, got %s", v.Kind())
	}

	other := rand.New(rand.NewPCG(7, 9))
	want := other.Float64()
	if v.AsReal() != want {
		t.Fatalf("RND() = %v, want %v (same seed must reproduce)", v.AsReal(), want)
	}
}
