// Package interp implements the DAW BASIC language engine: a tagged value
// model, lexical scanners, a shunting-yard expression evaluator, a
// case-insensitive symbol environment, a statement dispatcher, and a
// program-execution driver with immediate and deferred run modes.
package interp
