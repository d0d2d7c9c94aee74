package interp

import "math"

// Operator precedence ranks, smaller binds tighter (§4.3). NEG is unary;
// everything else here is binary.
const (
	rankNeg        = 1
	rankPow        = 2
	rankMulDiv     = 3
	rankAddSubMod  = 4
	rankShift      = 5 // reserved, no operators registered at this rank
	rankComparison = 6
	rankEquality   = 7
	rankAnd        = 8
	rankOr         = 9
)

// RegisterOperators populates env with every binary and unary operator
// required by §4.3/§4.6.
func RegisterOperators(env *Environment) {
	env.AddBinaryOperator("^", rankPow, opPow)
	env.AddBinaryOperator("*", rankMulDiv, opMul)
	env.AddBinaryOperator("/", rankMulDiv, opDiv)
	env.AddBinaryOperator("+", rankAddSubMod, opAdd)
	env.AddBinaryOperator("-", rankAddSubMod, opSub)
	env.AddBinaryOperator("%", rankAddSubMod, opMod)
	env.AddBinaryOperator("<", rankComparison, opLess)
	env.AddBinaryOperator("<=", rankComparison, opLessEq)
	env.AddBinaryOperator(">", rankComparison, opGreater)
	env.AddBinaryOperator(">=", rankComparison, opGreaterEq)
	env.AddBinaryOperator("=", rankEquality, opEqual)
	env.AddBinaryOperator("AND", rankAnd, opAnd)
	env.AddBinaryOperator("OR", rankOr, opOr)

	env.AddUnaryOperator("NEG", rankNeg, opNeg)
}

// isRightAssociative decides §9's open question on ^ associativity: '^'
// is right-associative (2^3^2 == 512), every other operator is left-
// associative, matching traditional shunting-yard without special casing.
func isRightAssociative(symbol string) bool {
	return symbol == "^"
}

func numericPair(lhs, rhs Value) (float64, float64, Kind, error) {
	rt := determineResultType(lhs.Kind(), rhs.Kind())
	if rt != KindInteger && rt != KindReal {
		return 0, 0, rt, NewSyntaxError("type mismatch: cannot apply numeric operator to %s and %s", lhs.Kind(), rhs.Kind())
	}
	lv, err := lhs.ToNumeric()
	if err != nil {
		return 0, 0, rt, NewSyntaxError("type mismatch: %s is not numeric", lhs.Kind())
	}
	rv, err := rhs.ToNumeric()
	if err != nil {
		return 0, 0, rt, NewSyntaxError("type mismatch: %s is not numeric", rhs.Kind())
	}
	return lv, rv, rt, nil
}

func opAdd(lhs, rhs Value) (Value, error) {
	rt := determineResultType(lhs.Kind(), rhs.Kind())
	switch rt {
	case KindString:
		return Str(lhs.ToString() + rhs.ToString()), nil
	case KindInteger:
		return Int(lhs.AsInt() + rhs.AsInt()), nil
	case KindReal:
		lv, rv, _, err := numericPair(lhs, rhs)
		if err != nil {
			return Empty(), err
		}
		return Real(lv + rv), nil
	case KindEmpty:
		if lhs.IsEmpty() && rhs.IsEmpty() {
			return Empty(), nil
		}
		return Empty(), NewSyntaxError("type mismatch: cannot add %s and %s", lhs.Kind(), rhs.Kind())
	default:
		return Empty(), NewSyntaxError("type mismatch: cannot add %s and %s", lhs.Kind(), rhs.Kind())
	}
}

func opSub(lhs, rhs Value) (Value, error) {
	if lhs.Kind() == KindInteger && rhs.Kind() == KindInteger {
		return Int(lhs.AsInt() - rhs.AsInt()), nil
	}
	lv, rv, rt, err := numericPair(lhs, rhs)
	if err != nil {
		return Empty(), err
	}
	if rt == KindInteger {
		return Int(int32(lv) - int32(rv)), nil
	}
	return Real(lv - rv), nil
}

func opMul(lhs, rhs Value) (Value, error) {
	if lhs.Kind() == KindInteger && rhs.Kind() == KindInteger {
		return Int(lhs.AsInt() * rhs.AsInt()), nil
	}
	lv, rv, rt, err := numericPair(lhs, rhs)
	if err != nil {
		return Empty(), err
	}
	if rt == KindInteger {
		return Int(int32(lv) * int32(rv)), nil
	}
	return Real(lv * rv), nil
}

func opDiv(lhs, rhs Value) (Value, error) {
	lv, rv, _, err := numericPair(lhs, rhs)
	if err != nil {
		return Empty(), err
	}
	if rv == 0 {
		return Empty(), NewSyntaxError("division by zero")
	}
	return Real(lv / rv), nil
}

func opMod(lhs, rhs Value) (Value, error) {
	if lhs.Kind() != KindInteger || rhs.Kind() != KindInteger {
		return Empty(), NewSyntaxError("type mismatch: %% requires two integers, got %s and %s", lhs.Kind(), rhs.Kind())
	}
	if rhs.AsInt() == 0 {
		return Empty(), NewSyntaxError("division by zero")
	}
	return Int(lhs.AsInt() % rhs.AsInt()), nil
}

func opPow(lhs, rhs Value) (Value, error) {
	lv, rv, _, err := numericPair(lhs, rhs)
	if err != nil {
		return Empty(), err
	}
	return Real(math.Pow(lv, rv)), nil
}

func opNeg(v Value) (Value, error) {
	switch v.Kind() {
	case KindInteger:
		return Int(-v.AsInt()), nil
	case KindReal:
		return Real(-v.AsReal()), nil
	case KindEmpty:
		return Empty(), nil
	default:
		return Empty(), NewSyntaxError("type mismatch: cannot negate %s", v.Kind())
	}
}

// compare implements the ordering semantics shared by <, <=, >, >=, =,
// including the Empty-vs-Empty rules pinned in §9: Empty compares equal to
// Empty (so = and <= are true, < is false); Empty compared to any other
// kind is SYNTAX.
func compare(lhs, rhs Value) (int, error) {
	if lhs.IsEmpty() || rhs.IsEmpty() {
		if lhs.IsEmpty() && rhs.IsEmpty() {
			return 0, nil
		}
		return 0, NewSyntaxError("type mismatch: cannot compare EMPTY to %s", oneOf(lhs, rhs))
	}

	rt := determineResultType(lhs.Kind(), rhs.Kind())
	switch rt {
	case KindString:
		a, b := lhs.ToString(), rhs.ToString()
		switch {
		case a < b:
			return -1, nil
		case a > b:
			return 1, nil
		default:
			return 0, nil
		}
	case KindInteger, KindReal:
		a, b, _, err := numericPair(lhs, rhs)
		if err != nil {
			return 0, err
		}
		switch {
		case a < b:
			return -1, nil
		case a > b:
			return 1, nil
		default:
			return 0, nil
		}
	case KindBoolean:
		a, b := lhs.AsBool(), rhs.AsBool()
		switch {
		case a == b:
			return 0, nil
		case !a && b:
			return -1, nil
		default:
			return 1, nil
		}
	default:
		return 0, NewSyntaxError("type mismatch: cannot compare %s to %s", lhs.Kind(), rhs.Kind())
	}
}

func oneOf(lhs, rhs Value) Kind {
	if lhs.IsEmpty() {
		return rhs.Kind()
	}
	return lhs.Kind()
}

func opLess(lhs, rhs Value) (Value, error) {
	c, err := compare(lhs, rhs)
	if err != nil {
		return Empty(), err
	}
	return Bool(c < 0), nil
}

func opLessEq(lhs, rhs Value) (Value, error) {
	if lhs.IsEmpty() && rhs.IsEmpty() {
		return Bool(true), nil
	}
	c, err := compare(lhs, rhs)
	if err != nil {
		return Empty(), err
	}
	return Bool(c <= 0), nil
}

func opGreater(lhs, rhs Value) (Value, error) {
	c, err := compare(lhs, rhs)
	if err != nil {
		return Empty(), err
	}
	return Bool(c > 0), nil
}

func opGreaterEq(lhs, rhs Value) (Value, error) {
	if lhs.IsEmpty() && rhs.IsEmpty() {
		return Bool(true), nil
	}
	c, err := compare(lhs, rhs)
	if err != nil {
		return Empty(), err
	}
	return Bool(c >= 0), nil
}

func opEqual(lhs, rhs Value) (Value, error) {
	if lhs.IsEmpty() && rhs.IsEmpty() {
		return Bool(true), nil
	}
	c, err := compare(lhs, rhs)
	if err != nil {
		return Empty(), err
	}
	return Bool(c == 0), nil
}

func opAnd(lhs, rhs Value) (Value, error) {
	if lhs.Kind() != KindBoolean || rhs.Kind() != KindBoolean {
		return Empty(), NewSyntaxError("type mismatch: AND requires two booleans, got %s and %s", lhs.Kind(), rhs.Kind())
	}
	return Bool(lhs.AsBool() && rhs.AsBool()), nil
}

func opOr(lhs, rhs Value) (Value, error) {
	if lhs.Kind() != KindBoolean || rhs.Kind() != KindBoolean {
		return Empty(), NewSyntaxError("type mismatch: OR requires two booleans, got %s and %s", lhs.Kind(), rhs.Kind())
	}
	return Bool(lhs.AsBool() || rhs.AsBool()), nil
}
