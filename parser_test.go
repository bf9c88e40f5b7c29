package sjp_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	sjp "github.com/theojl6/simple-json-parser"
)

func parseEvents(t *testing.T, input string) (*testHandler, sjp.Diagnostics) {
	t.Helper()
	toks, sdiags := sjp.Scan(input)
	if !sdiags.OK() {
		t.Fatalf("Scan failed: %v", sdiags.Err())
	}
	th := new(testHandler)
	diags, err := sjp.NewParser(toks).Parse(th)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return th, diags
}

func TestParser(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", `
Value null <>
.`}, // empty input yields a placeholder (and a diagnostic, tested below)

		{`true`, "Value true <true>\n."},
		{`null`, "Value null <null>\n."},
		{`15`, "Value number <15>\n."},
		{`"ok"`, `Value string <"ok">` + "\n."},

		{`{}`, "BeginObject\nEndObject\n."},
		{`[]`, "BeginArray\nEndArray\n."},

		{`{"a":15}`, `
BeginObject
BeginMember <"a">
Value number <15>
EndMember "}"
EndObject
.`},

		{`{"x":null, "y":[true]}`, `
BeginObject
BeginMember <"x">
Value null <null>
EndMember ","
BeginMember <"y">
BeginArray
Value true <true>
EndArray
EndMember "}"
EndObject
.`},

		{`[1, "two", {"three": 3}]`, `
BeginArray
Value number <1>
Value string <"two">
BeginObject
BeginMember <"three">
Value number <3>
EndMember "}"
EndObject
EndArray
.`},
	}

	for _, test := range tests {
		th, _ := parseEvents(t, test.input)
		if diff := diffStrings(test.want, th.output()); diff != "" {
			t.Errorf("Input: %#q\nOutput: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestParserRecovery(t *testing.T) {
	tests := []struct {
		input    string
		want     string
		wantDiag []sjp.DiagKind
	}{
		// Unbalanced object bits. The event stream stays balanced even when
		// the input is not.
		{`{`, "BeginObject\nEndObject\n.",
			[]sjp.DiagKind{sjp.UnclosedObject}},
		{`{"a":1`, `
BeginObject
BeginMember <"a">
Value number <1>
EndMember end of input
EndObject
.`, []sjp.DiagKind{sjp.UnclosedObject}},
		{`{"a":1,}`, `
BeginObject
BeginMember <"a">
Value number <1>
EndMember ","
EndObject
.`, []sjp.DiagKind{sjp.TrailingComma}},
		{`{"true":}`, `
BeginObject
BeginMember <"true">
Value null <>
EndMember end of input
EndObject
.`, []sjp.DiagKind{sjp.BadValue, sjp.UnclosedObject}},
		{`{"a" 1}`, "BeginObject\nEndObject\n.",
			[]sjp.DiagKind{sjp.UnclosedObject, sjp.ExtraInput}},

		// Unbalanced array bits.
		{`[`, "BeginArray\nEndArray\n.",
			[]sjp.DiagKind{sjp.UnclosedArray}},
		{`[15,]`, "BeginArray\nValue number <15>\nEndArray\n.",
			[]sjp.DiagKind{sjp.TrailingComma}},
		{`[15`, "BeginArray\nValue number <15>\nEndArray\n.",
			[]sjp.DiagKind{sjp.UnclosedArray}},
		{`[,1]`, "BeginArray\nValue null <>\nValue number <1>\nEndArray\n.",
			[]sjp.DiagKind{sjp.BadValue}},

		// Unrecognized values at the root.
		{`}`, "Value null <>\n.", []sjp.DiagKind{sjp.BadValue}},
		{`:`, "Value null <>\n.", []sjp.DiagKind{sjp.BadValue}},

		// Input remaining after the document root.
		{`{} true`, "BeginObject\nEndObject\n.", []sjp.DiagKind{sjp.ExtraInput}},
	}

	for _, test := range tests {
		th, diags := parseEvents(t, test.input)
		if diff := diffStrings(test.want, th.output()); diff != "" {
			t.Errorf("Input: %#q\nOutput: (-want, +got)\n%s", test.input, diff)
		}
		var gotDiag []sjp.DiagKind
		for _, d := range diags {
			gotDiag = append(gotDiag, d.Kind)
		}
		if diff := cmp.Diff(test.wantDiag, gotDiag); diff != "" {
			t.Errorf("Input: %#q\nDiagnostics: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestHandlerError(t *testing.T) {
	errBroken := errors.New("broken handler")
	toks, _ := sjp.Scan(`{"a": 1}`)
	_, err := sjp.NewParser(toks).Parse(&errHandler{err: errBroken})
	if !errors.Is(err, errBroken) {
		t.Errorf("Parse: got %v, want %v", err, errBroken)
	}
}

func TestParserEmptyTokens(t *testing.T) {
	// A hand-built sequence without the EOF terminator is extended with one.
	th := new(testHandler)
	diags, err := sjp.NewParser(nil).Parse(th)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if diags.OK() {
		t.Error("Parse did not report a diagnostic for empty input")
	}
}

func diffStrings(want, got string) string {
	return cmp.Diff(strings.Split(strings.TrimSpace(want), "\n"),
		strings.Split(strings.TrimSpace(got), "\n"))
}

type testHandler struct {
	buf bytes.Buffer
}

func (t *testHandler) pr(msg string, args ...any) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	fmt.Fprintf(&t.buf, msg, args...)
}

func (t *testHandler) output() string { return t.buf.String() }

func (t *testHandler) BeginObject(tok sjp.Token) error { t.pr("BeginObject"); return nil }
func (t *testHandler) EndObject(tok sjp.Token) error   { t.pr("EndObject"); return nil }
func (t *testHandler) BeginArray(tok sjp.Token) error  { t.pr("BeginArray"); return nil }
func (t *testHandler) EndArray(tok sjp.Token) error    { t.pr("EndArray"); return nil }
func (t *testHandler) EndOfInput(tok sjp.Token)        { t.pr(".") }

func (t *testHandler) BeginMember(tok sjp.Token) error {
	t.pr("BeginMember <%s>", tok.Lexeme)
	return nil
}

func (t *testHandler) EndMember(tok sjp.Token) error {
	t.pr("EndMember %v", tok.Kind)
	return nil
}

func (t *testHandler) Value(tok sjp.Token) error {
	t.pr("Value %v <%s>", tok.Kind, tok.Lexeme)
	return nil
}

type errHandler struct {
	testHandler
	err error
}

func (e *errHandler) Value(tok sjp.Token) error { return e.err }
