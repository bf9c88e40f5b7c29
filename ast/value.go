package ast

import (
	"fmt"
	"slices"
)

// ToValue converts a plain Go value into an ast.Value. It panics if v does
// not have one of the supported types:
//
//	nil            Null
//	bool           Bool
//	string         String (stored verbatim; the caller is responsible for
//	               any escaping the text may need)
//	int, int64     Number
//	[]any          Array
//	map[string]any Object, members ordered by key
//	ast.Value      unchanged
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case int:
		return Number(t)
	case int64:
		return Number(t)
	case []any:
		out := make(Array, len(t))
		for i, elt := range t {
			out[i] = ToValue(elt)
		}
		return out
	case map[string]any:
		out := make(Object, 0, len(t))
		keys := make([]string, 0, len(t))
		for key := range t {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		for _, key := range keys {
			out = append(out, &Member{Key: key, Value: ToValue(t[key])})
		}
		return out
	default:
		panic(fmt.Sprintf("invalid value %T", v))
	}
}

// ToGo converts v into a plain Go value: objects become map[string]any,
// arrays []any, strings string, numbers int64, booleans bool, and null nil.
//
// An object with duplicate keys maps each key to its last value; use the
// Object type directly when the keep-all policy is required.
func ToGo(v Value) any {
	switch t := v.(type) {
	case Object:
		out := make(map[string]any, len(t))
		for _, m := range t {
			out[m.Key] = ToGo(m.Value)
		}
		return out
	case Array:
		out := make([]any, len(t))
		for i, elt := range t {
			out[i] = ToGo(elt)
		}
		return out
	case String:
		return string(t)
	case Number:
		return int64(t)
	case Bool:
		return bool(t)
	case Null:
		return nil
	default:
		panic(fmt.Sprintf("invalid value %T", v))
	}
}
