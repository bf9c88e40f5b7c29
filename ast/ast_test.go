package ast_test

import (
	"testing"

	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
	"github.com/theojl6/simple-json-parser/ast"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		value ast.Value
		want  string
	}{
		{ast.Null{}, "null"},
		{ast.Bool(true), "true"},
		{ast.Bool(false), "false"},
		{ast.Number(0), "0"},
		{ast.Number(101), "101"},
		{ast.String(""), `""`},
		{ast.String("a b c"), `"a b c"`},
		{ast.String(`tab\there`), `"tab\there"`}, // text renders verbatim
		{ast.Array{}, "[]"},
		{ast.Array{ast.Number(1), ast.Bool(false)}, `[1,false]`},
		{ast.Object{}, "{}"},
		{ast.Object{
			{Key: "a", Value: ast.Number(1)},
			{Key: "b", Value: ast.Array{ast.Null{}}},
		}, `{"a":1,"b":[null]}`},
	}
	for _, test := range tests {
		if got := test.value.JSON(); got != test.want {
			t.Errorf("JSON(%+v): got %s, want %s", test.value, got, test.want)
		}
	}
}

func TestObjectFind(t *testing.T) {
	obj := ast.Object{
		{Key: "x", Value: ast.Number(1)},
		{Key: "y", Value: ast.Number(2)},
		{Key: "x", Value: ast.Number(3)},
	}

	if m := obj.Find("y"); m == nil || m.Value != ast.Value(ast.Number(2)) {
		t.Errorf("Find(y): got %+v, want member with value 2", m)
	}
	if m := obj.Find("z"); m != nil {
		t.Errorf("Find(z): got %+v, want nil", m)
	}
	if all := obj.FindAll("x"); len(all) != 2 {
		t.Errorf("FindAll(x): got %d members, want 2", len(all))
	} else if all[0].Value != ast.Value(ast.Number(1)) || all[1].Value != ast.Value(ast.Number(3)) {
		t.Errorf("FindAll(x): got values %v, %v; want 1, 3", all[0].Value, all[1].Value)
	}
	if all := obj.FindAll("z"); all != nil {
		t.Errorf("FindAll(z): got %+v, want nil", all)
	}
}

func TestToValue(t *testing.T) {
	t.Run("Values", func(t *testing.T) {
		got := ast.ToValue(map[string]any{
			"b": []any{int64(1), "two", nil},
			"a": true,
		})
		// Map keys are ordered for determinism.
		want := ast.Object{
			{Key: "a", Value: ast.Bool(true)},
			{Key: "b", Value: ast.Array{ast.Number(1), ast.String("two"), ast.Null{}}},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("ToValue: (-want, +got)\n%s", diff)
		}
	})
	t.Run("Passthrough", func(t *testing.T) {
		v := ast.Array{ast.Number(5)}
		if got := ast.ToValue(v); !cmp.Equal(v, got) {
			t.Errorf("ToValue: got %+v, want %+v", got, v)
		}
	})
	t.Run("Invalid", func(t *testing.T) {
		mtest.MustPanic(t, func() { ast.ToValue([]bool{true}) })
		mtest.MustPanic(t, func() { ast.ToValue(3.5) })
		mtest.MustPanic(t, func() { ast.ToValue(make(chan struct{})) })
	})
}

func TestToGo(t *testing.T) {
	v := ast.Object{
		{Key: "a", Value: ast.Number(1)},
		{Key: "b", Value: ast.Array{ast.String("x"), ast.Bool(false), ast.Null{}}},
		{Key: "a", Value: ast.Number(3)},
	}
	got := ast.ToGo(v)
	// Duplicate keys collapse last-wins in the map form.
	want := map[string]any{
		"a": int64(3),
		"b": []any{"x", false, nil},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToGo: (-want, +got)\n%s", diff)
	}
}
