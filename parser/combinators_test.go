package parser

import (
	"testing"
	"unicode"

	"github.com/alecthomas/assert/v2"
)

func char(c rune) Parser[rune] {
	return Satisfy(func(r rune) bool { return r == c }, string(c))
}

func TestOrElseRetriesAfterSoftFailure(t *testing.T) {
	p := OrElse(char('a'), char('b'))

	r := p.RunString("b!")
	assert.False(t, r.Failed())
	assert.Equal(t, 'b', r.Value)
	assert.Equal(t, "!", r.Rest.String())
}

func TestOrElseStopsAtHardFailure(t *testing.T) {
	committed := Then(char('a'), Commit(char('x')))
	p := OrElse(committed, Then(char('a'), char('b')))

	r := p.RunString("ab")
	assert.True(t, r.Failed())
	assert.True(t, r.Err.IsHard())
	assert.Equal(t, `expected x, got 'b'`, r.Err.Message)
	assert.Equal(t, 1, r.Err.At.Offset())
}

func TestCommitPromotesSoftFailures(t *testing.T) {
	r := Commit(char('a')).RunString("b")
	assert.Equal(t, Hard, r.Err.Severity)

	r = char('a').RunString("b")
	assert.Equal(t, Soft, r.Err.Severity)
}

func TestDecorate(t *testing.T) {
	r := Decorate(char('a'), Prefix("outer:\n\t")).RunString("b")
	assert.Equal(t, "outer:\n\texpected a, got 'b'", r.Err.Message)

	soft := DecorateHard(char('a'), Prefix("outer: ")).RunString("b")
	assert.Equal(t, "expected a, got 'b'", soft.Err.Message)

	hard := DecorateHard(Commit(char('a')), Prefix("outer: ")).RunString("b")
	assert.Equal(t, "outer: expected a, got 'b'", hard.Err.Message)

	r = Decorate(char('a'), Suffix("!")).RunString("b")
	assert.Equal(t, "expected a, got 'b'!", r.Err.Message)
}

func TestFirstOf(t *testing.T) {
	p := FirstOf(
		Alt[rune]{Label: "letter a", Parser: char('a')},
		Alt[rune]{Label: "letter b", Parser: char('b')},
	)

	r := p.RunString("b")
	assert.False(t, r.Failed())
	assert.Equal(t, 'b', r.Value)

	r = p.RunString("c")
	assert.True(t, r.Failed())
	assert.Equal(t, Soft, r.Err.Severity)
	assert.Contains(t, r.Err.Message, "letter a")
	assert.Contains(t, r.Err.Message, "letter b")
	assert.Contains(t, r.Err.Message, "expected b, got 'c'")
}

func TestSatisfyRuns(t *testing.T) {
	r := ManySatisfy(unicode.IsDigit).RunString("abc")
	assert.False(t, r.Failed())
	assert.Equal(t, 0, len(r.Value))

	r = Many1Satisfy(unicode.IsDigit, "digits").RunString("123abc")
	assert.Equal(t, "123", string(r.Value))
	assert.Equal(t, "abc", r.Rest.String())

	r = Many1Satisfy(unicode.IsDigit, "digits").RunString("abc")
	assert.Equal(t, "expected one or more digits", r.Err.Message)
	assert.Equal(t, 0, r.Err.At.Offset())
}

func TestNextChar(t *testing.T) {
	r := NextChar().RunString("λx")
	assert.Equal(t, 'λ', r.Value)
	assert.Equal(t, "x", r.Rest.String())

	r = NextChar().RunString("")
	assert.Equal(t, "unexpected end of input", r.Err.Message)
}

func TestMany(t *testing.T) {
	r := Many(char('a')).RunString("aaab")
	assert.Equal(t, []rune{'a', 'a', 'a'}, r.Value)
	assert.Equal(t, "b", r.Rest.String())

	r = Many(Then(char('a'), Commit(char('b')))).RunString("abac")
	assert.True(t, r.Err.IsHard())
}

func TestBracket(t *testing.T) {
	p := Bracket(char('('), char(')'), char('x'))

	r := p.RunString("(x)")
	assert.False(t, r.Failed())
	assert.Equal(t, 'x', r.Value)

	r = p.RunString("x)")
	assert.Equal(t, Soft, r.Err.Severity)
	assert.Equal(t, "missing opening bracket:\n\texpected (, got 'x'", r.Err.Message)

	r = p.RunString("(x]")
	assert.Equal(t, Hard, r.Err.Severity)
	assert.Equal(t, "when looking for closing bracket:\n\texpected ), got ']'", r.Err.Message)
}

func TestBracketSep(t *testing.T) {
	p := BracketSep(char('['), char(','), char(']'), Satisfy(unicode.IsDigit, "digit"))

	tests := []struct {
		name  string
		input string
		want  []rune
		rest  string
	}{
		{name: "empty", input: "[]", want: []rune{}},
		{name: "single", input: "[1]", want: []rune{'1'}},
		{name: "several", input: "[1,2,3] tail", want: []rune{'1', '2', '3'}, rest: " tail"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := p.RunString(tt.input)
			assert.False(t, r.Failed())
			assert.Equal(t, tt.want, r.Value)
			assert.Equal(t, tt.rest, r.Rest.String())
		})
	}

	t.Run("missing element after separator", func(t *testing.T) {
		r := p.RunString("[1,]")
		assert.True(t, r.Err.IsHard())
		assert.Contains(t, r.Err.Message, "after separator in a group")
	})

	t.Run("unclosed", func(t *testing.T) {
		r := p.RunString("[1,2")
		assert.True(t, r.Err.IsHard())
		assert.Contains(t, r.Err.Message, "when looking for closing bracket")
	})

	t.Run("not a group", func(t *testing.T) {
		r := p.RunString("1,2]")
		assert.Equal(t, Soft, r.Err.Severity)
		assert.Contains(t, r.Err.Message, "missing opening bracket")
	})
}

func TestEnd(t *testing.T) {
	assert.False(t, End().RunString("").Failed())

	r := End().RunString("xyz")
	assert.Equal(t, `unexpected trailing input "xyz"`, r.Err.Message)
}

func TestNewParseError(t *testing.T) {
	r := Then(char('a'), Commit(char('b'))).RunString("a\nc")
	assert.True(t, r.Failed())

	err := NewParseError("value.txt", r.Err)
	assert.Equal(t, "value.txt", err.Pos.Filename)
	assert.Equal(t, 1, err.Pos.Line)
	assert.Equal(t, 2, err.Pos.Column)
	assert.True(t, err.Hard())
	assert.Equal(t, "a\nc", string(err.Source))
	assert.Equal(t, `value.txt:1:2: expected b, got '\n'`, err.Error())
}

func TestMemoRunsOncePerOffset(t *testing.T) {
	calls := 0
	counted := Memo(func(in Input) Result[rune] {
		calls++
		return char('a')(in)
	})
	p := OrElse(Then(counted, char('x')), Then(counted, char('b')))

	r := p.RunString("ab")
	assert.False(t, r.Failed())
	assert.Equal(t, 'b', r.Value)
	assert.Equal(t, 1, calls)

	r = p.RunString("ab")
	assert.False(t, r.Failed())
	assert.Equal(t, 2, calls)
}

func TestMemoWithoutCache(t *testing.T) {
	calls := 0
	counted := Memo(func(in Input) Result[rune] {
		calls++
		return NextChar()(in)
	})

	var bare Input
	r := OrElse(Then(counted, char('z')), counted)(bare)
	assert.True(t, r.Failed())
	assert.Equal(t, 2, calls)
}

func TestLazyRecursion(t *testing.T) {
	var nested Parser[int]
	nested = OrElse(
		Map(Bracket(char('('), char(')'), Lazy(func() Parser[int] { return nested })), func(n int) int { return n + 1 }),
		Map(char('x'), func(rune) int { return 0 }),
	)

	r := nested.RunString("(((x)))")
	assert.False(t, r.Failed())
	assert.Equal(t, 3, r.Value)
}
