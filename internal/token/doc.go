// Package token defines the token vocabulary for the Swift declaration
// surface that locksmith reads.
//
// The lexer does not understand full Swift: it produces just enough structure
// to locate attributed variable declarations and to slice their type
// annotations and initializer expressions with balanced delimiters. Everything
// the expander does not care about is still tokenized (so spans stay exact),
// but collapses into a handful of generic kinds.
package token
