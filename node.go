package template

import (
	"io"
)

// Node is one entry of a Document body. The set of nodes is closed:
// only *TextNode and *VariableNode implement it.
type Node interface {
	directNode()
	execute(w io.StringWriter, p Params) error
}

type (
	// TextNode is literal template text emitted verbatim.
	TextNode struct {
		Value string
	}

	// VariableNode is a {{name}} placeholder; Name is already trimmed.
	VariableNode struct {
		Name string
	}
)

func (*TextNode) directNode()     {}
func (*VariableNode) directNode() {}
