package lexer

import (
	"testing"
)

func FuzzLexer(f *testing.F) {
	seeds := []string{
		// Identifiers and constructors
		"Just", "Nothing", "x'", "_", "Left (Right 1)",

		// Numbers
		"0", "123", "3.14", "1e10", "1E-5", "0x1F", "0o17", "0x", "1.", "1e",

		// Literals
		`'a'`, `'\n'`, `'\SOH'`, `'\^A'`, `''`, `"hello"`, `"\SO\&H"`, `"gap\  \x"`, `"open`,

		// Punctuation and symbols
		"(,)", "[]", "{x = 1}", "`", "->", "\\",

		// Whitespace
		"", " ", "\t", "\r\n",
	}

	for _, seed := range seeds {
		f.Add([]byte(seed))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		// The lexer must never panic on any input
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("Lexer panicked on input %q: %v", data, r)
			}
		}()

		tokens, err := NewLexer(data, "fuzz-test").ScanAll()
		if err != nil {
			return
		}

		if len(tokens) == 0 || tokens[len(tokens)-1].Type != EOF {
			t.Fatalf("missing EOF token for %q", data)
		}

		prevEnd := 0
		for _, tok := range tokens {
			if tok.Start < prevEnd || tok.End < tok.Start || tok.End > len(data) {
				t.Fatalf("token %v has invalid bounds [%d, %d) for %q", tok.Type, tok.Start, tok.End, data)
			}
			prevEnd = tok.End
		}
	})
}
