package sjp

import (
	"errors"
	"fmt"
)

// DiagKind classifies the diagnostics reported by the scanner and parser.
type DiagKind byte

// Constants defining the valid DiagKind values.
const (
	// Lexical diagnostics.
	BadInput           DiagKind = iota // unexpected character
	UnterminatedString                 // string literal with no closing quote
	UnknownConstant                    // a name other than true, false, or null
	BadNumber                          // digit run out of integer range

	// Syntactic diagnostics.
	BadValue      // unrecognized token at a value position
	TrailingComma // comma immediately before a closing bracket
	UnclosedObject
	UnclosedArray
	ExtraInput // input remaining after the document root
)

var diagStr = [...]string{
	BadInput:           "unexpected character",
	UnterminatedString: "unterminated string",
	UnknownConstant:    "unknown constant",
	BadNumber:          "number out of range",
	BadValue:           "unrecognized value",
	TrailingComma:      "unexpected comma",
	UnclosedObject:     "unclosed curly brackets",
	UnclosedArray:      "unclosed square brackets",
	ExtraInput:         "extra input",
}

func (k DiagKind) String() string {
	if int(k) >= len(diagStr) {
		return "invalid diagnostic"
	}
	return diagStr[k]
}

// A Diagnostic records a single problem found in the input, with the source
// location where it was detected. Diagnostics do not stop the scanner or the
// parser; both run to the end of their input and report everything they saw.
type Diagnostic struct {
	Kind     DiagKind
	Message  string
	Location Location
}

// Error satisfies the error interface.
func (d Diagnostic) Error() string {
	return fmt.Sprintf("at %s: %s", d.Location.First, d.Message)
}

// Diagnostics is an ordered list of the problems found in one pass over an
// input. An empty list means the input was well-formed.
type Diagnostics []Diagnostic

// OK reports whether no diagnostics were recorded.
func (ds Diagnostics) OK() bool { return len(ds) == 0 }

// Err returns nil if ds is empty, otherwise an error joining all the
// recorded diagnostics.
func (ds Diagnostics) Err() error {
	if len(ds) == 0 {
		return nil
	}
	errs := make([]error, len(ds))
	for i, d := range ds {
		errs[i] = d
	}
	return errors.Join(errs...)
}
