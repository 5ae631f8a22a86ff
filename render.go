package template

import (
	"io"
)

var (
	defaultEngine = NewEngine()
)

// Render renders tpl with the package level engine.
func Render(tpl string, p Params) (string, error) {
	return defaultEngine.Render(tpl, p)
}

func RenderTo(w io.Writer, tpl string, p Params) error {
	return defaultEngine.RenderTo(w, tpl, p)
}

func RenderFile(name string, w io.Writer, p Params) error {
	return defaultEngine.RenderFile(name, w, p)
}
