package template

const (
	TYPE_TEXT = iota
	TYPE_VAR_START
	TYPE_VAR_END
)

type Token struct {
	value string
	typ   int
	line  int
}

func (t *Token) Type() int {
	return t.typ
}

func (t *Token) Value() string {
	return t.value
}

func (t *Token) Line() int {
	return t.line
}

func (t *Token) isDelimiter() bool {
	return t.typ == TYPE_VAR_START || t.typ == TYPE_VAR_END
}

func (t *Token) String() string {
	switch t.typ {
	case TYPE_TEXT:
		return "TEXT(" + t.value + ")"
	case TYPE_VAR_START:
		return "VAR_START"
	case TYPE_VAR_END:
		return "VAR_END"
	}

	return "UNKNOWN"
}
