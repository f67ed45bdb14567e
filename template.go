package catloggr

import (
	"fmt"
	"reflect"
	"strings"

	json "github.com/goccy/go-json"
)

// Template expansion for the printf-style dialect accepted in a leading
// string argument: %s %d %i %f %j %o %O, with %% as a literal escape. The
// dialect follows util.format rather than fmt, so it is expanded by hand and
// the individual verbs delegate to fmt, the JSON encoder and the inspector.

func isTemplateVerb(c byte) bool {
	switch c {
	case 's', 'd', 'i', 'f', 'j', 'o', 'O':
		return true
	}

	return false
}

// expandTemplate substitutes as many arguments as there are placeholders in
// format and returns the expanded string plus the unconsumed arguments.
// ok is false when format contains no placeholders at all, in which case the
// caller should treat it as an ordinary string argument.
//
// Placeholders beyond the supplied arguments are left literal, matching the
// standard template substitution behavior.
func (l *Loggr) expandTemplate(format string, args []interface{}, m metaState) (string, []interface{}, bool) {
	var b strings.Builder

	found := false
	consumed := 0

	for i := 0; i < len(format); i++ {
		c := format[i]

		if c != '%' || i+1 >= len(format) {
			b.WriteByte(c)
			continue
		}

		verb := format[i+1]

		if verb == '%' {
			b.WriteByte('%')
			i++
			continue
		}

		if !isTemplateVerb(verb) {
			b.WriteByte(c)
			continue
		}

		found = true

		if consumed >= len(args) {
			b.WriteByte(c)
			continue
		}

		b.WriteString(l.renderVerb(verb, args[consumed], m))
		consumed++
		i++
	}

	if !found {
		return "", args, false
	}

	return b.String(), args[consumed:], true
}

func (l *Loggr) renderVerb(verb byte, arg interface{}, m metaState) string {
	switch verb {
	case 's':
		return fmt.Sprint(arg)

	case 'd':
		if !isNumeric(arg) {
			return "NaN"
		}

		return fmt.Sprint(arg)

	case 'i':
		n, ok := toInt64(arg)
		if !ok {
			return "NaN"
		}

		return fmt.Sprintf("%d", n)

	case 'f':
		f, ok := toFloat64(arg)
		if !ok {
			return "NaN"
		}

		return fmt.Sprint(f)

	case 'j':
		b, err := json.Marshal(arg)
		if err != nil {
			return "[Circular]"
		}

		return string(b)

	case 'o', 'O':
		return l.inspector.Inspect(arg, InspectOptions{Depth: m.depth, Colors: m.color})
	}

	return string([]byte{'%', verb})
}

func isNumeric(v interface{}) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}

	return false
}

func toInt64(v interface{}) (int64, bool) {
	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return int64(rv.Float()), true
	}

	return 0, false
}

func toFloat64(v interface{}) (float64, bool) {
	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}

	return 0, false
}
