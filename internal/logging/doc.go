// Package logging provides a structured logging facade for the bignum
// calculator. Components depend on the Logger interface rather than a
// concrete backend; the default backend is zerolog, with a standard
// library adapter available for environments without structured output.
package logging
