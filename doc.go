// Package sjp implements a scanner and parser for a simplified JSON
// grammar: objects, arrays, strings, unsigned integers, and the constants
// true, false, and null.  Strings are stored verbatim (escape sequences are
// not decoded) and numbers carry no sign, fraction, or exponent syntax.
//
// Both phases are resilient by design.  Instead of stopping at the first
// problem, the scanner and parser accumulate Diagnostics, run to the end of
// their input, and hand back whatever tokens or structure they could
// recover.  Callers decide whether to trust the result by checking the
// diagnostics.
//
// # Scanning
//
// The Scanner type implements the lexical scanner. Construct a scanner from
// an in-memory buffer and call its Next method to iterate over the tokens:
//
//	s := sjp.NewScanner(input)
//	for s.Next() {
//	   log.Printf("Next token: %v", s.Token().Kind)
//	}
//	if !s.Diagnostics().OK() {
//	   log.Printf("Input had problems: %v", s.Diagnostics().Err())
//	}
//
// The one-shot form returns the whole token sequence, terminated by exactly
// one EOF token:
//
//	toks, diags := sjp.Scan(input)
//
// # Parsing
//
// The Parser type implements an event-driven parser over a token sequence.
// The parser works by calling methods on a Handler value to report the
// structure of the input:
//
//	p := sjp.NewParser(toks)
//	diags, err := p.Parse(handler)
//	if err != nil {
//	   log.Fatalf("Handler failed: %v", err)
//	}
//
// Syntax problems never abort the parse; they are returned as diagnostics,
// and the event stream stays balanced.  The error result is reserved for
// errors reported by the handler itself.
//
// # Handlers
//
// The methods of a handler correspond to the syntax of the grammar:
//
//	Input type | Methods                   | Description
//	---------- | ------------------------- | ---------------------------------
//	object     | BeginObject, EndObject    | { ... }
//	array      | BeginArray, EndArray      | [ ... ]
//	member     | BeginMember, EndMember    | "key": value
//	value      | Value                     | true, false, null, number, string
//	--         | EndOfInput                | end of input
//
// To build a value tree instead of handling events directly, use the ast
// package, which implements a Handler that constructs Value trees.
package sjp
