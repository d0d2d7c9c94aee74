package interp

import "testing"

func TestFindEndOfString(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int
		wantErr bool
	}{
		{name: "simple", in: `"hello"`, want: 6},
		{name: "escaped quote", in: `"he said \"hi\""`, want: 15},
		{name: "unterminated", in: `"oops`, wantErr: true},
		{name: "not a string", in: `oops"`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindEndOfString(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFindEndOfBracket(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int
		wantErr bool
	}{
		{name: "already closed", in: ")rest", want: 0},
		{name: "simple", in: "(1+2)", want: 4},
		{name: "nested", in: "(1+(2*3))end", want: 8},
		{name: "quoted paren ignored", in: `("(")end`, want: 4},
		{name: "unmatched", in: "(1+2", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindEndOfBracket(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFindEndOfOperand(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int
		wantErr bool
	}{
		{name: "bare number", in: "123", want: 2},
		{name: "number then op", in: "123+456", want: 2},
		{name: "function call", in: "LEN(X)+1", want: 5},
		{name: "array index", in: "A(1,2)+1", want: 5},
		{name: "quote at depth zero", in: `"x"`, wantErr: true},
		{name: "close at depth zero", in: ")x", wantErr: true},
		{name: "reopen after close", in: "A(1)(2)", wantErr: true},
		{name: "unmatched bracket", in: "A(1", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindEndOfOperand(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got none (result %d)", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSplitInTwoOnChar(t *testing.T) {
	tests := []struct {
		name string
		in   string
		sep  byte
		want []string
	}{
		{name: "two parts", in: "PRINT X", sep: ' ', want: []string{"PRINT", "X"}},
		{name: "one part", in: "  REM  ", sep: ' ', want: []string{"REM"}},
		{name: "empty", in: "   ", sep: ' ', want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitInTwoOnChar(tt.in, tt.sep)
			if !equalStrs(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSplitStatements(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "single", in: "PRINT 1", want: []string{"PRINT 1"}},
		{name: "two", in: "LET X=1:PRINT X", want: []string{"LET X=1", "PRINT X"}},
		{name: "colon in string ignored", in: `PRINT "A:B":PRINT 1`, want: []string{`PRINT "A:B"`, "PRINT 1"}},
		{name: "colon in index ignored", in: "PRINT A(1:2)", want: []string{"PRINT A(1:2)"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitStatements(tt.in)
			if !equalStrs(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSplitParams(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: nil},
		{name: "single", in: "1", want: []string{"1"}},
		{name: "two", in: "1,2", want: []string{"1", "2"}},
		{name: "nested", in: "A(1,2),3", want: []string{"A(1,2)", "3"}},
		{name: "comma in string", in: `"a,b",1`, want: []string{`"a,b"`, "1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitParams(tt.in)
			if !equalStrs(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func equalStrs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
