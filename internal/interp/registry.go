package interp

import "math/rand/v2"

// RegisterBuiltins populates env with the §4.7 builtin functions and the
// §2.7 / §9 seed constants (PI, TRUE, FALSE). rng backs RND, a supplement
// to the open question in §9: RND produces real pseudo-random values from a
// generator owned by the engine rather than failing "Not implemented".
func RegisterBuiltins(env *Environment, rng *rand.Rand) {
	registerConstants(env)
	registerMathFunctions(env)
	registerStringFunctions(env)
	registerRandFunction(env, rng)
}

func registerConstants(env *Environment) {
	_ = env.AddConstant("PI", "ratio of a circle's circumference to its diameter", Real(3.14159265358979323846))
	_ = env.AddConstant("TRUE", "boolean true", Bool(true))
	_ = env.AddConstant("FALSE", "boolean false", Bool(false))
}

func registerRandFunction(env *Environment, rng *rand.Rand) {
	_ = env.AddFunction("RND", "pseudo-random REAL in [0,1), or INTEGER in [1,n] given an argument", func(args []Value) (Value, error) {
		switch len(args) {
		case 0:
			return Real(rng.Float64()), nil
		case 1:
			if args[0].Kind() != KindInteger {
				return Empty(), NewSyntaxError("RND() argument must be an integer, got %s", args[0].Kind())
			}
			n := args[0].AsInt()
			if n < 1 {
				return Empty(), NewSyntaxError("RND() argument must be >= 1, got %d", n)
			}
			return Int(int32(rng.IntN(int(n))) + 1), nil
		default:
			return Empty(), NewSyntaxError("RND() expects 0 or 1 argument(s), got %d", len(args))
		}
	})
}
