package template

import (
	"strings"
	"sync"
)

type parseState int

const (
	expectContentOrText parseState = iota
	expectName
	expectClose
)

var (
	sandboxPool = sync.Pool{
		New: func() any {
			return &sandbox{}
		},
	}
)

// Parse builds a Document from a token stream. Every {{ must be followed
// by exactly one name and a }}; anything else is a *MalformedTemplate.
func Parse(stream *TokenStream) (*Document, error) {
	doc := newDocument()
	if err := build(doc, stream); err != nil {
		return nil, err
	}

	return doc, nil
}

func build(doc *Document, stream *TokenStream) error {
	sb := getSandbox()
	defer putSandbox(sb)

	return sb.build(doc, stream)
}

func getSandbox() *sandbox {
	return sandboxPool.Get().(*sandbox)
}

func putSandbox(sb *sandbox) {
	sb.reset()
	sandboxPool.Put(sb)
}

type sandbox struct {
	state parseState
	open  *Token // the {{ of the placeholder being read
	name  *Token
}

func (sb *sandbox) build(doc *Document, stream *TokenStream) error {
	stream.Reset()
	for !stream.IsEOF() {
		token, err := stream.Next()
		if err != nil {
			return err
		}
		if err = sb.step(doc, token); err != nil {
			return err
		}
	}

	if sb.state != expectContentOrText {
		return newUnclosedToken(sb.open)
	}

	return nil
}

func (sb *sandbox) step(doc *Document, token *Token) error {
	switch sb.state {
	case expectContentOrText:
		switch token.typ {
		case TYPE_TEXT:
			doc.Append(&TextNode{Value: token.value})
		case TYPE_VAR_START:
			sb.open = token
			sb.state = expectName
		default:
			return newUnexpectedToken(token)
		}

	case expectName:
		if token.isDelimiter() {
			if token.typ == TYPE_VAR_END {
				return newEmptyName(sb.open, "")
			}

			return newUnexpectedToken(token)
		}
		sb.name = token
		sb.state = expectClose

	case expectClose:
		if token.typ != TYPE_VAR_END {
			return newUnexpectedToken(token)
		}
		name := strings.TrimSpace(sb.name.value)
		if name == "" {
			return newEmptyName(sb.open, sb.name.value)
		}
		doc.Append(&VariableNode{Name: name})
		sb.open, sb.name = nil, nil
		sb.state = expectContentOrText
	}

	return nil
}

func (sb *sandbox) reset() {
	sb.state = expectContentOrText
	sb.open = nil
	sb.name = nil
}
