package catloggr

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/fatih/color"
)

var (
	stringColor = color.New(color.FgWhite)
	numberColor = color.New(color.FgYellow)
	errorColor  = color.New(color.FgRed)
)

// paint styles s with c when coloring is enabled for the current call.
func paint(c *color.Color, enabled bool, s string) string {
	if !enabled || c == nil {
		return s
	}

	return c.Sprint(s)
}

// formatBody converts the call arguments into the assembled message body:
// template expansion on a leading format string, arg hooks, built-in type
// rules, space-joined fragments, optional call stack, error wrap.
func (l *Loggr) formatBody(lvl *Level, m metaState, ts Timestamp, args []interface{}) string {
	if len(args) > 0 {
		if s, ok := args[0].(string); ok {
			if expanded, rest, ok := l.expandTemplate(s, args[1:], m); ok {
				args = append([]interface{}{expanded}, rest...)
			}
		}
	}

	frags := make([]string, 0, len(args))

	for _, arg := range args {
		if out, ok := l.runArgHooks(arg, ts); ok {
			frags = append(frags, out...)
			continue
		}

		frags = append(frags, l.renderArg(arg, m))
	}

	body := strings.Join(frags, " ")

	if lvl.Trace || m.trace {
		body += "\n" + captureStack()
	}

	if lvl.Err {
		body = paint(errorColor, m.color, body)
	}

	return body
}

// renderArg applies the built-in per-type rendering rules to one argument.
func (l *Loggr) renderArg(arg interface{}, m metaState) string {
	switch v := arg.(type) {
	case string:
		if m.quote {
			v = "'" + v + "'"
		}

		return paint(stringColor, m.color, v)

	case error:
		// %+v surfaces the stack of stack-carrying errors; plain errors
		// render as their message.
		return "\n" + paint(errorColor, m.color, fmt.Sprintf("%+v", v))

	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return paint(numberColor, m.color, fmt.Sprint(v))

	case fmt.Stringer:
		return v.String()

	case nil:
		return fmt.Sprint(v)
	}

	if isComposite(arg) {
		return "\n" + l.inspector.Inspect(arg, InspectOptions{Depth: m.depth, Colors: m.color})
	}

	return fmt.Sprint(arg)
}

func isComposite(v interface{}) bool {
	rv := reflect.ValueOf(v)

	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return false
		}

		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		return true
	}

	return false
}

// captureStack formats the current call stack, excluding this package's own
// frames so the trace starts at the call site.
func captureStack() string {
	pcs := make([]uintptr, 32)

	n := runtime.Callers(2, pcs)

	frames := runtime.CallersFrames(pcs[:n])

	var b strings.Builder

	for {
		frame, more := frames.Next()

		if !strings.HasPrefix(frame.Function, loggrPackage) {
			fmt.Fprintf(&b, "    at %s (%s:%d)\n", frame.Function, frame.File, frame.Line)
		}

		if !more {
			break
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
