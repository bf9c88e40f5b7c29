package sjp

// Kind is the type of a lexical token in the grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // invalid token
	LBrace              // left brace "{"
	RBrace              // right brace "}"
	LSquare             // left square bracket "["
	RSquare             // right square bracket "]"
	Comma               // comma ","
	Colon               // colon ":"
	Number              // number: a run of ASCII digits
	String              // quoted string
	True                // constant: true
	False               // constant: false
	Null                // constant: null
	EOF                 // end of input
)

var kindStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Comma:   `","`,
	Colon:   `":"`,
	Number:  "number",
	String:  "string",
	True:    "true",
	False:   "false",
	Null:    "null",
	EOF:     "end of input",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// A Token is a single classified span of source text. Tokens are created by
// the scanner and thereafter never modified.
//
// Lexeme is the exact source substring the token was scanned from.  Literal
// is populated only for String tokens and holds the text strictly between
// the quotes, without any escape processing. Num is populated only for
// Number tokens and holds the decoded integer value.
type Token struct {
	Kind    Kind
	Lexeme  string
	Literal string
	Num     int64
	Loc     Location
}

func (t Token) String() string {
	if t.Lexeme == "" {
		return t.Kind.String()
	}
	return t.Lexeme
}
