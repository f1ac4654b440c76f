package lexer

// TokenType represents the type of token scanned from the input.
type TokenType uint8

const (
	EOF TokenType = iota

	IDENT  // Just, x', _tmp
	SYMBOL // runs of operator characters: ->, ==, :|
	PUNCT  // one of ,;()[]{}`
	NUMBER // 42, 0x1F, 3.14e-2
	CHAR   // 'x', '\SOH'
	STRING // "quoted string"
)

var tokenNames = map[TokenType]string{
	EOF:    "EOF",
	IDENT:  "IDENT",
	SYMBOL: "SYMBOL",
	PUNCT:  "PUNCT",
	NUMBER: "NUMBER",
	CHAR:   "CHAR",
	STRING: "STRING",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token is one lexical unit.
//
// For identifiers, symbols, punctuation and numbers Text is a view into the
// source buffer. Character and string literals carry their re-rendered text,
// so '\x41' yields the text 'A' and "a\&b" yields "ab".
type Token struct {
	Type   TokenType
	Text   []byte
	Start  int // Byte offset into source buffer
	End    int // End offset (exclusive)
	Line   int // Line number (1-indexed), set by Lexer.ScanAll
	Column int // Column number (1-indexed), set by Lexer.ScanAll
}

// String materializes the token text.
func (t Token) String() string {
	return string(t.Text)
}

// Len returns the length of the token in source bytes.
func (t Token) Len() int {
	return t.End - t.Start
}
