package template

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrMalformedTemplate matches every *MalformedTemplate through errors.Is.
var ErrMalformedTemplate = errors.New("malformed template")

const (
	reasonUnclosed   = "unclosed"
	reasonUnexpected = "unexpected"
	reasonEmptyName  = "empty variable name in"
)

func newUnclosedToken(tok *Token) error {
	return &MalformedTemplate{Line: tok.line, Token: tok.value, Reason: reasonUnclosed}
}

func newUnexpectedToken(tok *Token) error {
	return &MalformedTemplate{Line: tok.line, Token: tok.value, Reason: reasonUnexpected}
}

func newEmptyName(open *Token, name string) error {
	return &MalformedTemplate{Line: open.line, Token: tag_variable[0] + name + tag_variable[1], Reason: reasonEmptyName}
}

// MalformedTemplate reports a placeholder whose delimiters do not pair up
// as {{name}}.
type MalformedTemplate struct {
	Line   int
	Token  string
	Reason string
}

func (e *MalformedTemplate) Error() string {
	return fmt.Sprintf("Malformed template: %s \"%s\" in line %d", e.Reason, e.Token, e.Line)
}

func (e *MalformedTemplate) Is(target error) bool {
	return target == ErrMalformedTemplate
}

// IsMalformed reports whether err, or any error it wraps, is a
// *MalformedTemplate.
func IsMalformed(err error) bool {
	var mt *MalformedTemplate

	return errors.As(err, &mt)
}
