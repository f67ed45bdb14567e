package catloggr

import (
	"fmt"
	"reflect"

	json "github.com/goccy/go-json"
)

// InspectOptions configure one inspection pass.
type InspectOptions struct {
	// Depth bounds how many levels of nesting are rendered; values nested
	// deeper are summarized.
	Depth int

	// Colors reports whether the caller wants styled output. The built-in
	// inspector emits plain text regardless; custom inspectors may honor it.
	Colors bool
}

// Inspector renders an arbitrary value as human-readable text. The logger
// treats the output as opaque; it only controls where the block is placed.
type Inspector interface {
	Inspect(v interface{}, opts InspectOptions) string
}

// jsonInspector is the built-in Inspector. It prunes the value to the
// requested depth and renders the remainder as indented JSON.
type jsonInspector struct{}

// NewJSONInspector returns the built-in depth-bounded JSON inspector.
func NewJSONInspector() Inspector {
	return jsonInspector{}
}

func (jsonInspector) Inspect(v interface{}, opts InspectOptions) string {
	pruned := pruneDepth(reflect.ValueOf(v), opts.Depth)

	b, err := json.MarshalIndent(pruned, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}

	return string(b)
}

const (
	elidedObject = "[Object]"
	elidedArray  = "[Array]"
)

// pruneDepth walks a value and replaces everything nested deeper than depth
// with a placeholder, so the inspector never renders unbounded structures.
func pruneDepth(v reflect.Value, depth int) interface{} {
	if !v.IsValid() {
		return nil
	}

	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return nil
		}

		return pruneDepth(v.Elem(), depth)

	case reflect.Map:
		if depth < 0 {
			return elidedObject
		}

		m := make(map[string]interface{}, v.Len())

		iter := v.MapRange()
		for iter.Next() {
			m[fmt.Sprint(iter.Key().Interface())] = pruneDepth(iter.Value(), depth-1)
		}

		return m

	case reflect.Struct:
		if depth < 0 {
			return elidedObject
		}

		t := v.Type()
		m := make(map[string]interface{}, t.NumField())

		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}

			m[f.Name] = pruneDepth(v.Field(i), depth-1)
		}

		return m

	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			return nil
		}

		if depth < 0 {
			return elidedArray
		}

		s := make([]interface{}, v.Len())

		for i := 0; i < v.Len(); i++ {
			s[i] = pruneDepth(v.Index(i), depth-1)
		}

		return s

	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return v.Type().String()

	default:
		return v.Interface()
	}
}
