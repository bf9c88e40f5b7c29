package ast

import (
	sjp "github.com/theojl6/simple-json-parser"
)

// ParseString scans and parses text, returning the root value and the
// combined lexical and syntactic diagnostics.  A value is always returned;
// where the input was malformed it holds whatever structure could be
// recovered, with null placeholders at the failure points.  The input is
// well-formed exactly when the diagnostics are empty.
func ParseString(text string) (Value, sjp.Diagnostics) {
	toks, diags := sjp.Scan(text)
	root, pdiags := Parse(toks)
	return root, append(diags, pdiags...)
}

// Parse parses a token sequence, normally the output of sjp.Scan, and
// returns the root value together with the parser's diagnostics.
func Parse(toks []sjp.Token) (Value, sjp.Diagnostics) {
	h := new(parseHandler)
	diags, _ := sjp.NewParser(toks).Parse(h) // the tree handler never fails
	if len(h.stk) == 0 {
		return Null{}, diags
	}
	return h.stk[0], diags
}

// A parseHandler implements the sjp.Handler interface to construct syntax
// trees.  Containers under construction are kept on an explicit stack;
// completed values are resolved into the container below them.
type parseHandler struct {
	stk []Value
}

// resolve attaches a completed value to the container atop the stack, or
// records it as the root when the stack is empty.
func (h *parseHandler) resolve(v Value) {
	if len(h.stk) == 0 {
		h.stk = append(h.stk, v)
		return
	}
	switch prev := h.top().(type) {
	case *Member:
		prev.Value = v
	case *Object:
		// members are linked into the object as they begin
	case *Array:
		*prev = append(*prev, v)
	}
}

func (h *parseHandler) top() Value { return h.stk[len(h.stk)-1] }

func (h *parseHandler) pop() Value {
	last := h.top()
	h.stk = h.stk[:len(h.stk)-1]
	return last
}

func (h *parseHandler) push(v Value) { h.stk = append(h.stk, v) }

func (h *parseHandler) BeginObject(tok sjp.Token) error {
	h.push(new(Object))
	return nil
}

func (h *parseHandler) EndObject(tok sjp.Token) error {
	obj := h.pop().(*Object)
	h.resolve(*obj)
	return nil
}

func (h *parseHandler) BeginArray(tok sjp.Token) error {
	h.push(new(Array))
	return nil
}

func (h *parseHandler) EndArray(tok sjp.Token) error {
	arr := h.pop().(*Array)
	h.resolve(*arr)
	return nil
}

func (h *parseHandler) BeginMember(tok sjp.Token) error {
	// The object this member belongs to is atop the stack.  Link the new
	// member into its collection eagerly, so duplicate keys and source order
	// are preserved without a second pass.
	mem := &Member{Key: tok.Literal, Value: Null{}}
	obj := h.top().(*Object)
	*obj = append(*obj, mem)
	h.push(mem)
	return nil
}

func (h *parseHandler) EndMember(tok sjp.Token) error {
	h.pop()
	return nil
}

func (h *parseHandler) Value(tok sjp.Token) error {
	switch tok.Kind {
	case sjp.String:
		h.resolve(String(tok.Literal))
	case sjp.Number:
		h.resolve(Number(tok.Num))
	case sjp.True, sjp.False:
		h.resolve(Bool(tok.Kind == sjp.True))
	default:
		h.resolve(Null{})
	}
	return nil
}

func (h *parseHandler) EndOfInput(tok sjp.Token) {}
