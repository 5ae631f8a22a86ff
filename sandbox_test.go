package template

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	doc, err := Parse(Tokenize("Hello {{ name }}! Today is {{day}}."))
	require.NoError(t, err)
	assert.Equal(t, []Node{
		&TextNode{Value: "Hello "},
		&VariableNode{Name: "name"},
		&TextNode{Value: "! Today is "},
		&VariableNode{Name: "day"},
		&TextNode{Value: "."},
	}, doc.Body)
}

func TestParseEmpty(t *testing.T) {
	doc, err := Parse(Tokenize(""))
	require.NoError(t, err)
	assert.Empty(t, doc.Body)
}

func TestParseAdjacentPlaceholders(t *testing.T) {
	doc, err := Parse(Tokenize("{{a}}{{\tb\n}}"))
	require.NoError(t, err)
	assert.Equal(t, []Node{&VariableNode{Name: "a"}, &VariableNode{Name: "b"}}, doc.Body)
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		token  string
		reason string
		line   int
	}{
		{name: "unterminated open", code: "Hello {{", token: "{{", reason: reasonUnclosed, line: 1},
		{name: "unterminated name", code: "Hello\n{{ name", token: "{{", reason: reasonUnclosed, line: 2},
		{name: "empty placeholder", code: "{{}}", token: "{{}}", reason: reasonEmptyName, line: 1},
		{name: "blank placeholder", code: "{{   }}", token: "{{   }}", reason: reasonEmptyName, line: 1},
		{name: "open after open", code: "{{{{a}}", token: "{{", reason: reasonUnexpected, line: 1},
		{name: "open inside placeholder", code: "{{a{{b}}", token: "{{", reason: reasonUnexpected, line: 1},
		{name: "stray close", code: "a }} b", token: "}}", reason: reasonUnexpected, line: 1},
		{name: "double close", code: "{{a}}}}", token: "}}", reason: reasonUnexpected, line: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse(Tokenize(tt.code))
			assert.Nil(t, doc)
			require.Error(t, err)

			var mt *MalformedTemplate
			require.True(t, errors.As(err, &mt))
			assert.Equal(t, tt.token, mt.Token)
			assert.Equal(t, tt.reason, mt.Reason)
			assert.Equal(t, tt.line, mt.Line)
			assert.ErrorIs(t, err, ErrMalformedTemplate)
			assert.True(t, IsMalformed(err))
		})
	}
}

func TestParseReusesSandbox(t *testing.T) {
	_, err := Parse(Tokenize("{{ broken"))
	require.Error(t, err)

	// a failed parse must not leak state into the next one
	doc, err := Parse(Tokenize("ok"))
	require.NoError(t, err)
	assert.Equal(t, []Node{&TextNode{Value: "ok"}}, doc.Body)
}

func TestMalformedTemplateError(t *testing.T) {
	err := &MalformedTemplate{Line: 3, Token: "{{", Reason: reasonUnclosed}
	assert.EqualError(t, err, `Malformed template: unclosed "{{" in line 3`)
	assert.False(t, IsMalformed(errors.New("other")))
	assert.True(t, IsMalformed(errors.Wrap(err, "wrapped")))
}
