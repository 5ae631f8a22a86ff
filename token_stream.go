package template

import (
	"io"
	"strings"
)

var (
	tag_variable = [...]string{`{{`, `}}`}
)

// Tokenize scans code into a flat stream of text and delimiter tokens.
// It performs no balance checking; that is left to Parse.
func Tokenize(code string) *TokenStream {
	return tokenize(newSourceCode(code))
}

func tokenize(source *sourceCode) *TokenStream {
	var (
		code   = source.code
		stream = &TokenStream{Source: source, current: -1}
		cursor = 0
		line   = 1
	)

	for cursor < len(code) {
		switch {
		case strings.HasPrefix(code[cursor:], tag_variable[0]):
			stream.tokens = append(stream.tokens, newToken(TYPE_VAR_START, tag_variable[0], line))
			cursor += len(tag_variable[0])

		case strings.HasPrefix(code[cursor:], tag_variable[1]):
			stream.tokens = append(stream.tokens, newToken(TYPE_VAR_END, tag_variable[1], line))
			cursor += len(tag_variable[1])

		default:
			end := textEnd(code, cursor)
			text := code[cursor:end]
			stream.tokens = append(stream.tokens, newToken(TYPE_TEXT, text, line))
			line += strings.Count(text, "\n")
			cursor = end
		}
	}

	return stream
}

// textEnd returns the offset of the first delimiter after start, or len(code).
func textEnd(code string, start int) int {
	i := start + 1
	for ; i < len(code)-1; i++ {
		if isDelimiterAt(code, i) {
			return i
		}
	}

	return len(code)
}

func isDelimiterAt(code string, i int) bool {
	pair := code[i : i+2]

	return pair == tag_variable[0] || pair == tag_variable[1]
}

func newToken(typ int, value string, line int) *Token {
	return &Token{typ: typ, value: value, line: line}
}

type TokenStream struct {
	Source  *sourceCode
	tokens  []*Token
	current int
}

func (ts *TokenStream) Size() int {
	return len(ts.tokens)
}

func (ts *TokenStream) Tokens() []*Token {
	return ts.tokens
}

// String joins the token values back together; the result equals the
// tokenized code.
func (ts *TokenStream) String() string {
	sb := &strings.Builder{}
	for _, t := range ts.tokens {
		sb.WriteString(t.value)
	}

	return sb.String()
}

func (ts *TokenStream) IsEOF() bool {
	return ts.current >= len(ts.tokens)-1
}

// Next advances to the following token. It returns io.EOF once every
// token has been consumed.
func (ts *TokenStream) Next() (*Token, error) {
	if ts.IsEOF() {
		return nil, io.EOF
	}
	ts.current++

	return ts.tokens[ts.current], nil
}

// Reset rewinds the stream so it can be walked again.
func (ts *TokenStream) Reset() {
	ts.current = -1
}
