// Package registry holds the compiled-in configuration tables that drive the
// generators: one table of standalone examples, one of example categories, and
// one of documentation topics. The tables are literal data baked into the
// binary; they are never loaded from disk or mutated at runtime. Key order is
// the literal declaration order and is stable across runs.
package registry
