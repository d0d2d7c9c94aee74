package interp

import "math"

// registerMathFunctions registers the numeric builtins required by §4.7:
// COS, SIN, TAN, ATN, EXP, LOG, SQR, SQUARE, ABS, SGN, INT, POW, NEG.
func registerMathFunctions(env *Environment) {
	unary := map[string]struct {
		desc string
		fn   func(float64) float64
	}{
		"COS": {"cosine, argument in radians", math.Cos},
		"SIN": {"sine, argument in radians", math.Sin},
		"TAN": {"tangent, argument in radians", math.Tan},
		"ATN": {"arctangent, result in radians", math.Atan},
		"EXP": {"e raised to the argument", math.Exp},
		"LOG": {"natural logarithm", math.Log},
		"SQR": {"square root", math.Sqrt},
	}
	for name, def := range unary {
		name, def := name, def
		_ = env.AddFunction(name, def.desc, func(args []Value) (Value, error) {
			n, err := requireNumericArg(name, args, 1)
			if err != nil {
				return Empty(), err
			}
			return Real(def.fn(n[0])), nil
		})
	}

	_ = env.AddFunction("SQUARE", "x squared", func(args []Value) (Value, error) {
		n, err := requireNumericArg("SQUARE", args, 1)
		if err != nil {
			return Empty(), err
		}
		if args[0].Kind() == KindInteger {
			return Int(args[0].AsInt() * args[0].AsInt()), nil
		}
		return Real(n[0] * n[0]), nil
	})

	_ = env.AddFunction("ABS", "absolute value", func(args []Value) (Value, error) {
		n, err := requireNumericArg("ABS", args, 1)
		if err != nil {
			return Empty(), err
		}
		if args[0].Kind() == KindInteger {
			v := args[0].AsInt()
			if v < 0 {
				v = -v
			}
			return Int(v), nil
		}
		return Real(math.Abs(n[0])), nil
	})

	_ = env.AddFunction("SGN", "sign: -1, 0, or 1", func(args []Value) (Value, error) {
		n, err := requireNumericArg("SGN", args, 1)
		if err != nil {
			return Empty(), err
		}
		switch {
		case n[0] < 0:
			return Int(-1), nil
		case n[0] > 0:
			return Int(1), nil
		default:
			return Int(0), nil
		}
	})

	_ = env.AddFunction("INT", "truncate toward negative infinity", func(args []Value) (Value, error) {
		n, err := requireNumericArg("INT", args, 1)
		if err != nil {
			return Empty(), err
		}
		return Int(int32(math.Floor(n[0]))), nil
	})

	_ = env.AddFunction("POW", "b raised to the power e", func(args []Value) (Value, error) {
		n, err := requireNumericArg("POW", args, 2)
		if err != nil {
			return Empty(), err
		}
		return Real(math.Pow(n[0], n[1])), nil
	})

	_ = env.AddFunction("NEG", "unary negation", func(args []Value) (Value, error) {
		if len(args) != 1 {
			return Empty(), NewSyntaxError("NEG() expects 1 argument, got %d", len(args))
		}
		return opNeg(args[0])
	})

	_ = env.AddFunction("NOT", "logical negation", func(args []Value) (Value, error) {
		if len(args) != 1 {
			return Empty(), NewSyntaxError("NOT() expects 1 argument, got %d", len(args))
		}
		if args[0].Kind() != KindBoolean {
			return Empty(), NewSyntaxError("NOT() requires a boolean argument, got %s", args[0].Kind())
		}
		return Bool(!args[0].AsBool()), nil
	})
}

// requireNumericArg validates arity and that every argument is numeric,
// returning the arguments' float64 values.
func requireNumericArg(name string, args []Value, arity int) ([]float64, error) {
	if len(args) != arity {
		return nil, NewSyntaxError("%s() expects %d argument(s), got %d", name, arity, len(args))
	}
	out := make([]float64, len(args))
	for i, a := range args {
		n, err := a.ToNumeric()
		if err != nil {
			return nil, NewSyntaxError("%s() argument %d must be numeric, got %s", name, i+1, a.Kind())
		}
		out[i] = n
	}
	return out, nil
}
