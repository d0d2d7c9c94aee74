package interp

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// normalize applies Unicode NFC normalization, matching the teacher's own
// use of golang.org/x/text/unicode/norm in its string builtins, so that
// composed and decomposed forms of the same text behave identically in LEN,
// LEFT$, RIGHT$, MID$, and ASC. String comparison operators compare the text
// as given, without normalizing it.
func normalize(s string) string {
	return norm.NFC.String(s)
}

// registerStringFunctions registers LEN, LEFT$, RIGHT$, MID$, STR$, VAL,
// ASC, CHR$ per §4.7.
func registerStringFunctions(env *Environment) {
	_ = env.AddFunction("LEN", "length of a string", func(args []Value) (Value, error) {
		s, err := requireStringArg("LEN", args, 1)
		if err != nil {
			return Empty(), err
		}
		return Int(int32(len([]rune(normalize(s[0]))))), nil
	})

	_ = env.AddFunction("LEFT$", "leftmost n characters", func(args []Value) (Value, error) {
		if len(args) != 2 {
			return Empty(), NewSyntaxError("LEFT$() expects 2 arguments, got %d", len(args))
		}
		s, n, err := requireStringAndLength("LEFT$", args)
		if err != nil {
			return Empty(), err
		}
		runes := []rune(normalize(s))
		if n > len(runes) {
			n = len(runes)
		}
		return Str(string(runes[:n])), nil
	})

	_ = env.AddFunction("RIGHT$", "rightmost n characters", func(args []Value) (Value, error) {
		if len(args) != 2 {
			return Empty(), NewSyntaxError("RIGHT$() expects 2 arguments, got %d", len(args))
		}
		s, n, err := requireStringAndLength("RIGHT$", args)
		if err != nil {
			return Empty(), err
		}
		runes := []rune(normalize(s))
		if n > len(runes) {
			n = len(runes)
		}
		return Str(string(runes[len(runes)-n:])), nil
	})

	_ = env.AddFunction("MID$", "substring starting at a 1-based position", func(args []Value) (Value, error) {
		if len(args) != 3 {
			return Empty(), NewSyntaxError("MID$() expects 3 arguments, got %d", len(args))
		}
		if args[0].Kind() != KindString {
			return Empty(), NewSyntaxError("MID$() argument 1 must be a string, got %s", args[0].Kind())
		}
		start, err := requireNonNegativeInt("MID$", args[1], 2)
		if err != nil {
			return Empty(), err
		}
		if start < 1 {
			return Empty(), NewSyntaxError("MID$() start must be >= 1, got %d", start)
		}
		length, err := requireNonNegativeInt("MID$", args[2], 3)
		if err != nil {
			return Empty(), err
		}

		runes := []rune(normalize(args[0].AsString()))
		from := start - 1
		if from > len(runes) {
			return Str(""), nil
		}
		to := from + length
		if to > len(runes) {
			to = len(runes)
		}
		return Str(string(runes[from:to])), nil
	})

	_ = env.AddFunction("STR$", "string representation of a value", func(args []Value) (Value, error) {
		if len(args) != 1 {
			return Empty(), NewSyntaxError("STR$() expects 1 argument, got %d", len(args))
		}
		return Str(args[0].ToString()), nil
	})

	_ = env.AddFunction("VAL", "numeric value of a string holding a numeric literal, else 0", func(args []Value) (Value, error) {
		s, err := requireStringArg("VAL", args, 1)
		if err != nil {
			return Empty(), err
		}
		trimmed := strings.TrimSpace(s[0])
		switch ClassifyLiteral(trimmed) {
		case KindInteger, KindReal:
			return ParseLiteral(trimmed), nil
		default:
			return Int(0), nil
		}
	})

	_ = env.AddFunction("ASC", "Unicode code point of the first character", func(args []Value) (Value, error) {
		s, err := requireStringArg("ASC", args, 1)
		if err != nil {
			return Empty(), err
		}
		runes := []rune(normalize(s[0]))
		if len(runes) == 0 {
			return Empty(), NewSyntaxError("ASC() argument must be a non-empty string")
		}
		return Int(int32(runes[0])), nil
	})

	_ = env.AddFunction("CHR$", "single-character string for a code point", func(args []Value) (Value, error) {
		if len(args) != 1 {
			return Empty(), NewSyntaxError("CHR$() expects 1 argument, got %d", len(args))
		}
		if args[0].Kind() != KindInteger {
			return Empty(), NewSyntaxError("CHR$() argument must be an integer, got %s", args[0].Kind())
		}
		return Str(string(rune(args[0].AsInt()))), nil
	})
}

func requireStringArg(name string, args []Value, arity int) ([]string, error) {
	if len(args) != arity {
		return nil, NewSyntaxError("%s() expects %d argument(s), got %d", name, arity, len(args))
	}
	out := make([]string, len(args))
	for i, a := range args {
		if a.Kind() != KindString {
			return nil, NewSyntaxError("%s() argument %d must be a string, got %s", name, i+1, a.Kind())
		}
		out[i] = a.AsString()
	}
	return out, nil
}

func requireNonNegativeInt(name string, v Value, argPos int) (int, error) {
	if v.Kind() != KindInteger {
		return 0, NewSyntaxError("%s() argument %d must be an integer, got %s", name, argPos, v.Kind())
	}
	n := int(v.AsInt())
	if n < 0 {
		return 0, NewSyntaxError("%s() argument %d must be non-negative, got %d", name, argPos, n)
	}
	return n, nil
}

func requireStringAndLength(name string, args []Value) (string, int, error) {
	if args[0].Kind() != KindString {
		return "", 0, NewSyntaxError("%s() argument 1 must be a string, got %s", name, args[0].Kind())
	}
	n, err := requireNonNegativeInt(name, args[1], 2)
	if err != nil {
		return "", 0, err
	}
	return args[0].AsString(), n, nil
}
