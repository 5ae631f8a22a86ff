package template

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tokenCase struct {
	typ   int
	value string
}

func collect(stream *TokenStream) []tokenCase {
	var got []tokenCase
	for _, t := range stream.Tokens() {
		got = append(got, tokenCase{typ: t.Type(), value: t.Value()})
	}

	return got
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		code string
		want []tokenCase
	}{
		{name: "empty", code: "", want: nil},
		{name: "text only", code: "Hello world", want: []tokenCase{{TYPE_TEXT, "Hello world"}}},
		{
			name: "variable",
			code: "Hello {{ name }}!",
			want: []tokenCase{
				{TYPE_TEXT, "Hello "},
				{TYPE_VAR_START, "{{"},
				{TYPE_TEXT, " name "},
				{TYPE_VAR_END, "}}"},
				{TYPE_TEXT, "!"},
			},
		},
		{
			name: "empty placeholder",
			code: "{{}}",
			want: []tokenCase{{TYPE_VAR_START, "{{"}, {TYPE_VAR_END, "}}"}},
		},
		{
			name: "unmatched open",
			code: "a {{ b c",
			want: []tokenCase{{TYPE_TEXT, "a "}, {TYPE_VAR_START, "{{"}, {TYPE_TEXT, " b c"}},
		},
		{
			name: "stray close",
			code: "a }} b",
			want: []tokenCase{{TYPE_TEXT, "a "}, {TYPE_VAR_END, "}}"}, {TYPE_TEXT, " b"}},
		},
		{
			name: "triple brace",
			code: "{{{x}}}",
			want: []tokenCase{
				{TYPE_VAR_START, "{{"},
				{TYPE_TEXT, "{x"},
				{TYPE_VAR_END, "}}"},
				{TYPE_TEXT, "}"},
			},
		},
		{name: "single braces", code: "{a}", want: []tokenCase{{TYPE_TEXT, "{a}"}}},
		{name: "trailing brace", code: "a{", want: []tokenCase{{TYPE_TEXT, "a{"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream := Tokenize(tt.code)
			assert.Equal(t, tt.want, collect(stream))
			assert.Equal(t, tt.code, stream.String())
		})
	}
}

func TestTokenizeLines(t *testing.T) {
	stream := Tokenize("line one\nline two {{ a }}\n\n{{b}}")
	tokens := stream.Tokens()
	require.Len(t, tokens, 8)
	assert.Equal(t, 1, tokens[0].Line())
	assert.Equal(t, 2, tokens[1].Line())
	assert.Equal(t, 2, tokens[3].Line())
	assert.Equal(t, 4, tokens[5].Line())
}

func TestTokenStreamWalk(t *testing.T) {
	stream := Tokenize("a{{b}}")
	assert.Equal(t, 4, stream.Size())

	var values []string
	for !stream.IsEOF() {
		tok, err := stream.Next()
		require.NoError(t, err)
		values = append(values, tok.Value())
	}
	assert.Equal(t, []string{"a", "{{", "b", "}}"}, values)

	_, err := stream.Next()
	assert.ErrorIs(t, err, io.EOF)

	stream.Reset()
	tok, err := stream.Next()
	require.NoError(t, err)
	assert.Equal(t, "a", tok.Value())
}

func TestTokenString(t *testing.T) {
	tokens := Tokenize("x{{y}}").Tokens()
	assert.Equal(t, "TEXT(x)", tokens[0].String())
	assert.Equal(t, "VAR_START", tokens[1].String())
	assert.Equal(t, "VAR_END", tokens[3].String())
}
