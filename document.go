package template

import (
	"bufio"
	"io"
	"strings"
)

// Document is a parsed template: a flat, ordered list of nodes.
// A Document is never mutated after Parse returns, so one value may be
// executed from many goroutines at once.
type Document struct {
	Body []Node
}

func newDocument() *Document {
	return &Document{}
}

func (doc *Document) Append(x Node) {
	doc.Body = append(doc.Body, x)
}

// Execute renders the document against p. Keys missing from p render as
// the empty string; keys not referenced by the document are ignored.
func (doc *Document) Execute(p Params) string {
	sb := &strings.Builder{}
	for _, x := range doc.Body {
		// strings.Builder never fails to write.
		_ = x.execute(sb, p)
	}

	return sb.String()
}

// ExecuteTo renders the document into w.
func (doc *Document) ExecuteTo(w io.Writer, p Params) error {
	bw := bufio.NewWriter(w)
	for _, x := range doc.Body {
		if err := x.execute(bw, p); err != nil {
			return err
		}
	}

	return bw.Flush()
}
