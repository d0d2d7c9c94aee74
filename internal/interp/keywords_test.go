package interp

import (
	"strings"
	"testing"
)

func TestClrRemovesOneVariable(t *testing.T) {
	it, _ := newTestInterpreter(t)
	run(t, it, `X = 1`, `Y = 2`, `CLR X`)
	if it.Env.IsVariable("X") {
		t.Fatalf("CLR X should remove X")
	}
	if !it.Env.IsVariable("Y") {
		t.Fatalf("CLR X should not touch Y")
	}
}

func TestClrUnknownVariableIsSyntaxError(t *testing.T) {
	it, buf := newTestInterpreter(t)
	it.ParseLine(`CLR NOPE`, false)
	if !it.hasSyntaxError {
		t.Fatalf("CLR of an unknown variable should be a SYNTAX error")
	}
	_ = buf
}

func TestDeleteLine(t *testing.T) {
	it, _ := newTestInterpreter(t)
	run(t, it, `10 PRINT "A"`, `20 PRINT "B"`, `DELETE 10`)
	if it.Program.IndexOf(10) >= 0 {
		t.Fatalf("DELETE 10 should remove line 10")
	}
	if it.Program.IndexOf(20) < 0 {
		t.Fatalf("DELETE 10 should not remove line 20")
	}
}

func TestListRange(t *testing.T) {
	it, buf := newTestInterpreter(t)
	run(t,
		it,
		`10 PRINT "A"`,
		`20 PRINT "B"`,
		`30 PRINT "C"`,
	)
	buf.Reset()
	it.ParseLine(`LIST 10-20`, false)
	got := buf.String()
	if !strings.Contains(got, "10 ") || !strings.Contains(got, "20 ") || strings.Contains(got, "30 ") {
		t.Fatalf("LIST 10-20 = %q", got)
	}
}

func TestVarsListing(t *testing.T) {
	it, buf := newTestInterpreter(t)
	run(t, it, `X = 5`)
	buf.Reset()
	it.ParseLine(`VARS`, false)
	if got := buf.String(); !strings.Contains(got, "X = 5") {
		t.Fatalf("VARS = %q", got)
	}
}

func TestKeywordsListingIncludesGoto(t *testing.T) {
	it, buf := newTestInterpreter(t)
	it.ParseLine(`KEYWORDS`, false)
	if got := buf.String(); !strings.Contains(got, "GOTO") {
		t.Fatalf("KEYWORDS = %q, want it to include GOTO", got)
	}
}

func TestGotoOutsideProgramIsSyntaxError(t *testing.T) {
	it, _ := newTestInterpreter(t)
	it.ParseLine(`GOTO 10`, false)
	if !it.hasSyntaxError {
		t.Fatalf("GOTO in Immediate mode should be a SYNTAX error")
	}
}

func TestNestedForLoops(t *testing.T) {
	it, buf := newTestInterpreter(t)
	run(t,
		it,
		`10 FOR I = 1 TO 2`,
		`20 FOR J = 1 TO 2`,
		`30 PRINT I * 10 + J`,
		`40 NEXT J`,
		`50 NEXT I`,
	)
	it.Run(-1)
	want := "11\n12\n21\n22\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestNextWithoutForIsSyntaxError(t *testing.T) {
	it, _ := newTestInterpreter(t)
	run(t, it, `10 NEXT I`)
	it.Run(-1)
	if !it.sub.hasSyntaxError {
		t.Fatalf("NEXT without FOR should be a SYNTAX error")
	}
}

func TestReturnWithoutGosubIsSyntaxError(t *testing.T) {
	it, _ := newTestInterpreter(t)
	run(t, it, `10 RETURN`)
	it.Run(-1)
	if !it.sub.hasSyntaxError {
		t.Fatalf("RETURN without GOSUB should be a SYNTAX error")
	}
}
