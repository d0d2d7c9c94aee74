package interp

import (
	"bytes"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestMain lets go-snaps prune any snapshot left behind by a renamed or
// removed fixture once every fixture test has run.
func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	_ = v
}

// fixture is one REPL transcript: a sequence of lines fed to ParseLine in
// order, with the combined output matched against a stored snapshot.
type fixture struct {
	name  string
	lines []string
}

var fixtures = []fixture{
	{
		name: "hello_world",
		lines: []string{
			`PRINT "HELLO, WORLD!"`,
		},
	},
	{
		name: "arithmetic_precedence",
		lines: []string{
			`PRINT 2 + 3 * 4`,
			`PRINT (2 + 3) * 4`,
			`PRINT 2 ^ 3 ^ 2`,
		},
	},
	{
		name: "fizzbuzz_small",
		lines: []string{
			`10 FOR I = 1 TO 5`,
			`20 IF I % 3 = 0 THEN PRINT "FIZZ"`,
			`30 IF NOT(I % 3 = 0) THEN PRINT I`,
			`40 NEXT I`,
			`RUN`,
		},
	},
	{
		name: "gosub_return",
		lines: []string{
			`10 LET TOTAL = 0`,
			`20 GOSUB 100`,
			`30 GOSUB 100`,
			`40 PRINT TOTAL`,
			`50 END`,
			`100 LET TOTAL = TOTAL + 1`,
			`110 RETURN`,
			`RUN`,
		},
	},
	{
		name: "array_round_trip",
		lines: []string{
			`DIM A(3)`,
			`LET A(0) = 10`,
			`LET A(1) = 7`,
			`PRINT A(0) + A(1)`,
		},
	},
	{
		name: "undefined_variable_syntax_error",
		lines: []string{
			`PRINT UNDEFINED_NAME`,
		},
	},
}

func TestReplFixtures(t *testing.T) {
	for _, fx := range fixtures {
		t.Run(fx.name, func(t *testing.T) {
			var buf bytes.Buffer
			it := NewInterpreter(WithOutput(&buf), WithSeed(1, 2))
			for _, line := range fx.lines {
				if !it.ParseLine(line, false) {
					break
				}
			}
			snaps.MatchSnapshot(t, buf.String())
		})
	}
}
