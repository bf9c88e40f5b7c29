package sjp

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"go4.org/mem"
)

// A Scanner reads lexical tokens from an in-memory input buffer.  Each call
// to Next advances the scanner to the next token of the input.  Problems in
// the input are accumulated as diagnostics; the scanner always consumes its
// whole input and reports whatever tokens it could recover.
type Scanner struct {
	src   string
	start int // start offset of the current token
	cur   int // scan cursor
	tok   Token
	diags Diagnostics

	// Apparent line and column offsets (line 1-based, column 0-based).
	line, col   int
	sline, scol int // line and column at the start of the current token
}

// NewScanner constructs a new lexical scanner that consumes text.  The full
// input must be in memory before scanning starts; the scanner makes a single
// left-to-right pass and never backtracks over characters.
func NewScanner(text string) *Scanner {
	return &Scanner{src: text, line: 1, sline: 1}
}

// Next advances s to the next token of the input and reports whether one was
// found.  Once Next returns false the input is exhausted; check Diagnostics
// for anything the scanner could not turn into a token.
func (s *Scanner) Next() bool {
	for s.cur < len(s.src) {
		s.mark()
		ch := s.rune()

		// Discard whitespace.
		if ch == ' ' || ch == '\r' || ch == '\t' {
			continue
		} else if ch == '\n' {
			s.line++
			s.col = 0
			continue
		}

		// Handle punctuation.
		if k, ok := selfDelim(ch); ok {
			s.emit(k)
			return true
		}

		// Handle string values.
		if ch == '"' {
			if s.scanString() {
				return true
			}
			continue
		}

		// Handle numbers.
		if isDigit(ch) {
			if s.scanNumber() {
				return true
			}
			continue
		}

		// Handle constants: true, false, null.
		if isLetter(ch) {
			if s.scanName(ch) {
				return true
			}
			continue
		}

		s.report(BadInput, "unexpected character %q", ch)
	}
	return false
}

// Token returns the current token. It is valid until the next call of Next.
func (s *Scanner) Token() Token { return s.tok }

// Text returns the lexeme of the current token.
func (s *Scanner) Text() string { return s.tok.Lexeme }

// Span returns the location span of the current token.
func (s *Scanner) Span() Span { return Span{Pos: s.start, End: s.cur} }

// Location returns the complete location of the current token.
func (s *Scanner) Location() Location {
	return Location{
		Span:  s.Span(),
		First: LineCol{Line: s.sline, Column: s.scol},
		Last:  LineCol{Line: s.line, Column: s.col},
	}
}

// Diagnostics returns the diagnostics recorded so far.
func (s *Scanner) Diagnostics() Diagnostics { return s.diags }

// Scan tokenizes text in a single pass, returning the complete token
// sequence and the diagnostics recorded along the way.  The returned
// sequence always ends with exactly one EOF token, whatever the state of the
// input.
func Scan(text string) ([]Token, Diagnostics) {
	s := NewScanner(text)
	var toks []Token
	for s.Next() {
		toks = append(toks, s.Token())
	}
	s.mark()
	toks = append(toks, Token{Kind: EOF, Loc: s.Location()})
	return toks, s.Diagnostics()
}

// scanString consumes the remainder of a string whose opening quote has
// already been read.  The token literal is the text strictly between the
// quotes; escape sequences are not decoded, but a backslash keeps the
// following character from terminating the string.
func (s *Scanner) scanString() bool {
	var esc bool
	for s.cur < len(s.src) {
		ch := s.rune()
		if ch == '\n' {
			s.line++
			s.col = 0
		}
		if esc {
			esc = false
			continue
		}
		if ch == '\\' {
			esc = true
		} else if ch == '"' {
			s.emit(String)
			s.tok.Literal = s.src[s.start+1 : s.cur-1]
			return true
		}
	}
	s.report(UnterminatedString, "unterminated string")
	return false
}

// scanNumber consumes a maximal run of ASCII digits.  The grammar has no
// sign, fraction, or exponent syntax; a "-", ".", or "e" after the digits is
// left for the next token rule.
func (s *Scanner) scanNumber() bool {
	for isDigit(s.peek()) {
		s.rune()
	}
	text := s.src[s.start:s.cur]
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		s.report(BadNumber, "number %q out of range", text)
		return false
	}
	s.emit(Number)
	s.tok.Num = v
	return true
}

// scanName consumes a maximal run of letters and digits and matches it
// against the three recognized constants.
func (s *Scanner) scanName(first rune) bool {
	var kind Kind
	var want mem.RO
	switch first {
	case 't':
		kind, want = True, mem.S("true")
	case 'f':
		kind, want = False, mem.S("false")
	case 'n':
		kind, want = Null, mem.S("null")
	}
	for isNameRune(s.peek()) {
		s.rune()
	}
	got := mem.S(s.src[s.start:s.cur])
	if want.Len() == 0 || !got.Equal(want) {
		s.report(UnknownConstant, "unknown constant %q", got.StringCopy())
		return false
	}
	s.emit(kind)
	return true
}

// mark records the current position as the start of the next token.
func (s *Scanner) mark() { s.start, s.sline, s.scol = s.cur, s.line, s.col }

func (s *Scanner) emit(k Kind) {
	s.tok = Token{Kind: k, Lexeme: s.src[s.start:s.cur], Loc: s.Location()}
}

func (s *Scanner) rune() rune {
	ch, nb := utf8.DecodeRuneInString(s.src[s.cur:])
	s.cur += nb
	s.col += nb
	return ch
}

func (s *Scanner) peek() rune {
	if s.cur >= len(s.src) {
		return 0
	}
	ch, _ := utf8.DecodeRuneInString(s.src[s.cur:])
	return ch
}

func (s *Scanner) report(kind DiagKind, msg string, args ...any) {
	s.diags = append(s.diags, Diagnostic{
		Kind:     kind,
		Message:  fmt.Sprintf(msg, args...),
		Location: s.Location(),
	})
}

func isDigit(ch rune) bool    { return '0' <= ch && ch <= '9' }
func isLetter(ch rune) bool   { return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') }
func isNameRune(ch rune) bool { return isLetter(ch) || isDigit(ch) }

var self = [...]Kind{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch rune) (Kind, bool) {
	i := strings.IndexRune("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
