// Package query implements structural traversal queries over parsed values.
//
// A query describes a substructure of a value tree, such as an object
// member, array element, or a path through the tree. Evaluating a query
// against a concrete value traverses the structure described by the query
// and returns the resulting value.
//
// The simplest query is for a "path", a sequence of object keys and/or
// array indices that describes a path from the root of a value. For
// example, given the value:
//
//	[{"a": 1, "b": 2}, {"c": {"d": true}, "e": false}]
//
// the query
//
//	query.Path(1, "c", "d")
//
// yields the value "true".
package query

import (
	"errors"
	"fmt"

	"github.com/theojl6/simple-json-parser/ast"
)

// Eval evaluates the given query beginning from root, returning the
// resulting value or an error.
func Eval(root ast.Value, q Query) (ast.Value, error) {
	return q.eval(root)
}

// A Query describes a traversal of a value. The behavior of a query is
// defined in terms of how it maps its input to an output; both the input
// and the output are value trees.
type Query interface {
	eval(ast.Value) (ast.Value, error)
}

// Path traverses a sequence of nested object keys or array indices from the
// input value. If no keys are specified, the input is returned. Each key
// must be a string (an object key), an int (an array offset), or a nested
// Query. Path panics if any key has another type.
func Path(keys ...any) Query {
	if len(keys) == 1 {
		return pathElem(keys[0])
	}
	pq := make(Seq, 0, len(keys))
	for _, key := range keys {
		q := pathElem(key)
		if sq, ok := q.(Seq); ok {
			pq = append(pq, sq...)
		} else {
			pq = append(pq, q)
		}
	}
	return pq
}

// Seq is a sequential composition of queries. An empty sequence selects the
// input value; otherwise, each query is applied to the result produced by
// the previous query in the sequence.
type Seq []Query

func (q Seq) eval(v ast.Value) (ast.Value, error) {
	cur := v
	for _, sq := range q {
		next, err := sq.eval(cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// Len returns an integer representing the length of the root.
//
// For an object, the length is the number of members.
// For an array, the length is the number of elements.
// For a string, the length is the length of the string.
// For null, the length is zero.
func Len() Query { return lenQuery{} }

// Selection constructs an array of the elements of its input array for
// which the specified function returns true.
type Selection func(ast.Value) bool

func (q Selection) eval(v ast.Value) (ast.Value, error) {
	return with[ast.Array](v, func(a ast.Array) (ast.Value, error) {
		var out ast.Array
		for _, elt := range a {
			if q(elt) {
				out = append(out, elt)
			}
		}
		return out, nil
	})
}

// Keys returns an array of the keys of an object, in source order.
// Duplicate keys appear once per member.
func Keys() Query { return keysQuery{} }

func pathElem(key any) Query {
	switch t := key.(type) {
	case string:
		return objKey(t)
	case int:
		return nthQuery(t)
	case Query:
		return t
	default:
		panic(fmt.Sprintf("invalid path element %T", key))
	}
}

type objKey string

func (o objKey) eval(v ast.Value) (ast.Value, error) {
	return with[ast.Object](v, func(obj ast.Object) (ast.Value, error) {
		mem := obj.Find(string(o))
		if mem == nil {
			return nil, fmt.Errorf("key %q not found", o)
		}
		return mem.Value, nil
	})
}

type nthQuery int

func (nq nthQuery) eval(v ast.Value) (ast.Value, error) {
	return with[ast.Array](v, func(a ast.Array) (ast.Value, error) {
		idx := int(nq)
		if idx < 0 {
			idx += len(a)
		}
		if idx < 0 || idx >= len(a) {
			return nil, fmt.Errorf("index %d out of range (0..%d)", nq, len(a))
		}
		return a[idx], nil
	})
}

type lenQuery struct{}

func (lenQuery) eval(v ast.Value) (ast.Value, error) {
	if t, ok := v.(interface{ Len() int }); ok {
		return ast.Number(t.Len()), nil
	}
	return nil, fmt.Errorf("cannot take length of %T", v)
}

type keysQuery struct{}

func (keysQuery) eval(v ast.Value) (ast.Value, error) {
	switch t := v.(type) {
	case ast.Object:
		var out ast.Array
		for _, m := range t {
			out = append(out, ast.String(m.Key))
		}
		return out, nil
	case ast.Null:
		return ast.Array(nil), nil
	}
	return nil, fmt.Errorf("cannot list keys of %T", v)
}

func with[T ast.Value](v ast.Value, f func(T) (ast.Value, error)) (ast.Value, error) {
	if v, ok := v.(T); ok {
		return f(v)
	}
	var zero T
	return nil, fmt.Errorf("got %T, want %T", v, zero)
}

var errNoMatches = errors.New("no matches")

// Glob returns an array of all the values of an object or array.
func Glob() Query { return globQuery{} }

type globQuery struct{}

func (globQuery) eval(v ast.Value) (ast.Value, error) {
	switch t := v.(type) {
	case ast.Object:
		out := make(ast.Array, len(t))
		for i, m := range t {
			out[i] = m.Value
		}
		return out, nil
	case ast.Array:
		return t, nil
	default:
		return nil, errNoMatches
	}
}
