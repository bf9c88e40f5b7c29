package sjp

import "fmt"

// A Handler handles events from parsing a token sequence.  If a method
// reports an error, parsing stops and that error is returned to the caller.
// The parser ensures objects and arrays are correctly balanced: every
// BeginObject/BeginArray is matched by an EndObject/EndArray even when the
// input is malformed, so a handler can build structure without checking.
type Handler interface {
	// Begin a new object, whose open brace is tok.
	BeginObject(tok Token) error

	// End the most-recently-opened object. On well-formed input tok is the
	// close brace; on malformed input it is the token that ended the object.
	EndObject(tok Token) error

	// Begin a new array, whose open bracket is tok.
	BeginArray(tok Token) error

	// End the most-recently-opened array.
	EndArray(tok Token) error

	// Begin a new object member, whose key is tok.
	BeginMember(tok Token) error

	// End the current object member, giving the token that terminated the
	// member (usually Comma or RBrace).
	EndMember(tok Token) error

	// Report a data value. The type of the value can be recovered from the
	// token kind; String and Number tokens carry their decoded payloads.
	Value(tok Token) error

	// EndOfInput reports the end of the token sequence.
	EndOfInput(tok Token)
}

// A Parser consumes a token sequence by recursive descent and delivers
// events to a Handler corresponding with the structure of the input.
//
// The parser never aborts on malformed input.  Syntax problems are recorded
// as diagnostics, a null placeholder value is reported where a value could
// not be constructed, and the parse runs to structural completion.  Callers
// must check the returned diagnostics before trusting the result.
type Parser struct {
	toks  []Token
	cur   int
	diags Diagnostics
}

// NewParser constructs a parser for toks, normally the output of Scan.  A
// sequence that does not end with an EOF token is extended with one.
func NewParser(toks []Token) *Parser {
	if n := len(toks); n == 0 || toks[n-1].Kind != EOF {
		toks = append(toks[:n:n], Token{Kind: EOF})
	}
	return &Parser{toks: toks}
}

// Parse parses the token sequence and delivers events to h, returning the
// syntax diagnostics accumulated along the way.  The error is non-nil only
// if a handler method failed; diagnostics alone never produce an error here.
func (p *Parser) Parse(h Handler) (diags Diagnostics, err error) {
	defer func() {
		diags = p.diags
		if v := recover(); v != nil {
			he, ok := v.(handlerError)
			if !ok {
				panic(v)
			}
			err = he.error
		}
	}()

	p.parseExpression(h)
	if tok := p.peek(); tok.Kind != EOF {
		p.report(ExtraInput, tok, "unexpected %v after document", tok.Kind)
	}
	h.EndOfInput(p.toks[len(p.toks)-1])
	return p.diags, nil
}

// parseExpression consumes a single document expression: an object if the
// next token is an open brace, otherwise a value.
func (p *Parser) parseExpression(h Handler) {
	if p.peek().Kind == LBrace {
		p.parseObject(h)
	} else {
		p.parseValue(h)
	}
}

// parseValue consumes a single value.  An unrecognized token at a value
// position is consumed (so enclosing loops make progress) and replaced by a
// null placeholder; the enclosing closing-bracket check governs recovery.
func (p *Parser) parseValue(h Handler) {
	switch tok := p.peek(); tok.Kind {
	case String, Number, True, False, Null:
		p.advance()
		p.checkError(h.Value(tok))
	case LSquare:
		p.parseArray(h)
	case LBrace:
		p.parseObject(h)
	default:
		p.report(BadValue, tok, "unrecognized value %v", tok.Kind)
		if tok.Kind != EOF {
			p.advance()
		}
		p.checkError(h.Value(Token{Kind: Null, Loc: tok.Loc}))
	}
}

// parseObject consumes an object.
// Precondition: the next token is LBrace.
func (p *Parser) parseObject(h Handler) {
	open := p.advance()
	p.checkError(h.BeginObject(open))

	// Consume members while a "key": prefix is in view. The loop ends as
	// soon as the string-then-colon pattern fails to match.
	for p.peek().Kind == String && p.at(p.cur+1).Kind == Colon {
		key := p.advance()
		p.checkError(h.BeginMember(key))
		p.advance() // the colon
		p.parseExpression(h)

		end := p.peek()
		if end.Kind == Comma {
			p.advance()
		}
		p.checkError(h.EndMember(end))
	}

	if prev := p.at(p.cur - 1); prev.Kind == Comma {
		p.report(TrailingComma, prev, "unexpected comma")
	}
	tok := p.peek()
	if tok.Kind == RBrace {
		p.advance()
	} else {
		p.report(UnclosedObject, tok, "unclosed curly brackets")
	}
	p.checkError(h.EndObject(tok))
}

// parseArray consumes an array.
// Precondition: the next token is LSquare.
func (p *Parser) parseArray(h Handler) {
	open := p.advance()
	p.checkError(h.BeginArray(open))

	for p.peek().Kind != RSquare && p.peek().Kind != EOF {
		p.parseExpression(h)
		if p.peek().Kind == Comma {
			p.advance()
		}
	}

	if prev := p.at(p.cur - 1); prev.Kind == Comma {
		p.report(TrailingComma, prev, "unexpected comma")
	}
	tok := p.peek()
	if tok.Kind == RSquare {
		p.advance()
	} else {
		p.report(UnclosedArray, tok, "unclosed square brackets")
	}
	p.checkError(h.EndArray(tok))
}

// peek returns the next unconsumed token without consuming it.
func (p *Parser) peek() Token { return p.at(p.cur) }

// at returns the token at index i, clamped to the terminating EOF token.
func (p *Parser) at(i int) Token {
	if i < 0 || i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[i]
}

// advance consumes and returns the next token. The terminating EOF token is
// never consumed.
func (p *Parser) advance() Token {
	tok := p.peek()
	if tok.Kind != EOF {
		p.cur++
	}
	return tok
}

func (p *Parser) report(kind DiagKind, tok Token, msg string, args ...any) {
	p.diags = append(p.diags, Diagnostic{
		Kind:     kind,
		Message:  fmt.Sprintf(msg, args...),
		Location: tok.Loc,
	})
}

func (p *Parser) checkError(err error) {
	if err != nil {
		panic(handlerError{err})
	}
}

type handlerError struct{ error }

func (h handlerError) Unwrap() error { return h.error }
