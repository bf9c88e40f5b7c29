// Package ast defines a syntax tree for parsed values, and a parser that
// constructs syntax trees from token sequences or source text.
package ast

import (
	"strconv"
	"strings"
)

// A Value is a single parsed value: an object, array, string, number,
// boolean, or null.  Values are immutable once built; JSON renders a value
// back as compact source text.
type Value interface {
	JSON() string
}

// An Object is an ordered collection of key-value members.  Member order
// reflects source order, and duplicate keys are preserved as separate
// members; the caller chooses a duplicate-key policy via Find and FindAll.
type Object []*Member

// Find returns the first member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	for _, m := range o {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// FindAll returns all the members of o with the given key, in source order.
func (o Object) FindAll(key string) []*Member {
	var out []*Member
	for _, m := range o {
		if m.Key == key {
			out = append(out, m)
		}
	}
	return out
}

// Len returns the number of members of o.
func (o Object) Len() int { return len(o) }

// JSON satisfies the Value interface.
func (o Object) JSON() string {
	if len(o) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(m.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// JSON renders the member as `"key":value`.
func (m *Member) JSON() string { return `"` + m.Key + `":` + m.Value.JSON() }

// An Array is an ordered sequence of values.
type Array []Value

// Len returns the number of elements of a.
func (a Array) Len() int { return len(a) }

// JSON satisfies the Value interface.
func (a Array) JSON() string {
	if len(a) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

// A String is a string value.  The text is exactly as it appeared between
// the quotes in the source; escape sequences are not decoded, and JSON
// emits the text back verbatim.
type String string

// Len returns the length of the string in bytes.
func (s String) Len() int { return len(s) }

// JSON satisfies the Value interface.
func (s String) JSON() string { return `"` + string(s) + `"` }

// A Number is an integer value.
type Number int64

// Int returns the value of n as an int64.
func (n Number) Int() int64 { return int64(n) }

// JSON satisfies the Value interface.
func (n Number) JSON() string { return strconv.FormatInt(int64(n), 10) }

// A Bool is a Boolean constant, true or false.
type Bool bool

// JSON satisfies the Value interface.
func (b Bool) JSON() string {
	if b {
		return "true"
	}
	return "false"
}

// Null represents the null constant.  It is also the placeholder the parser
// substitutes where a valid value could not be constructed.
type Null struct{}

// Len returns zero.
func (Null) Len() int { return 0 }

// JSON satisfies the Value interface.
func (Null) JSON() string { return "null" }
