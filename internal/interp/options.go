package interp

import "io"

// Option configures an Interpreter at construction, mirroring the teacher's
// functional-option pattern (VMOption/LexerOption).
type Option func(*Interpreter)

// WithOutput redirects PRINT output; the default is io.Discard.
func WithOutput(w io.Writer) Option {
	return func(it *Interpreter) { it.out = w }
}

// WithBanner overrides the startup banner text printed once by the host
// REPL loop before the first prompt.
func WithBanner(banner string) Option {
	return func(it *Interpreter) { it.banner = banner }
}

// WithConfig applies a loaded Config: its banner (if set) and any extra
// seed constants.
func WithConfig(cfg Config) Option {
	return func(it *Interpreter) {
		if cfg.Banner != "" {
			it.banner = cfg.Banner
		}
		for name, v := range cfg.Constants {
			_ = it.Env.AddConstant(name, "configured constant", Real(v))
		}
	}
}

// WithSeed fixes RND's generator seed, for reproducible tests.
func WithSeed(seed1, seed2 uint64) Option {
	return func(it *Interpreter) { it.seed1, it.seed2, it.seeded = seed1, seed2, true }
}
