package template

import (
	"fmt"
	"io"
	"math"
	"reflect"
	"strconv"
)

func (n *TextNode) execute(w io.StringWriter, _ Params) error {
	_, err := w.WriteString(n.Value)

	return err
}

func (n *VariableNode) execute(w io.StringWriter, p Params) error {
	v, ok := p[n.Name]
	if !ok {
		return nil
	}
	_, err := w.WriteString(strValue(v))

	return err
}

// strValue renders v in its natural textual form. nil and nil pointers
// render as the empty string.
func strValue(v any) string {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() == reflect.Pointer && rv.IsNil()) {
		return ""
	}

	switch x := v.(type) {
	case string:
		return x
	case []byte:
		return string(x)
	case fmt.Stringer:
		return x.String()
	case error:
		return x.Error()
	}

	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return ""
		}
		rv = rv.Elem()
	}

	kind := rv.Kind()
	if isIntLike(kind) {
		return strconv.FormatInt(rv.Int(), 10)
	}
	if isUintLike(kind) {
		return strconv.FormatUint(rv.Uint(), 10)
	}
	switch kind {
	case reflect.Float32:
		return formatFloat(rv.Float(), 32)
	case reflect.Float64:
		return formatFloat(rv.Float(), 64)
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.String:
		return rv.String()
	}

	return fmt.Sprint(rv.Interface())
}

// formatFloat writes plain decimals and switches to exponent form for
// very large or very small magnitudes, the same cut-offs encoding/json uses.
func formatFloat(f float64, bits int) string {
	if abs := math.Abs(f); abs != 0 && !math.IsInf(f, 0) {
		if bits == 32 && (float32(abs) < 1e-6 || float32(abs) >= 1e21) ||
			bits == 64 && (abs < 1e-6 || abs >= 1e21) {
			return strconv.FormatFloat(f, 'e', -1, bits)
		}
	}

	return strconv.FormatFloat(f, 'f', -1, bits)
}

func isIntLike(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}

	return false
}

func isUintLike(kind reflect.Kind) bool {
	switch kind {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}

	return false
}
