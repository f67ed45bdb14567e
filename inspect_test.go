package catloggr

import (
	"strings"
	"testing"
)

// TestJSONInspectorDepth verifies the depth bound of the built-in inspector.
func TestJSONInspectorDepth(t *testing.T) {
	i := NewJSONInspector()

	nested := map[string]interface{}{
		"outer": map[string]interface{}{
			"inner": map[string]interface{}{
				"leaf": 1,
			},
		},
	}

	t.Run("shallow depth elides nesting", func(t *testing.T) {
		got := i.Inspect(nested, InspectOptions{Depth: 0})

		if !strings.Contains(got, elidedObject) {
			t.Errorf("expected nested maps to be elided at depth 0, got %q", got)
		}
		if strings.Contains(got, "leaf") {
			t.Errorf("expected the leaf to be hidden at depth 0, got %q", got)
		}
	})

	t.Run("deep depth renders everything", func(t *testing.T) {
		got := i.Inspect(nested, InspectOptions{Depth: 5})

		if !strings.Contains(got, "leaf") {
			t.Errorf("expected the leaf at depth 5, got %q", got)
		}
		if strings.Contains(got, elidedObject) {
			t.Errorf("expected nothing to be elided at depth 5, got %q", got)
		}
	})
}

// TestJSONInspectorKinds verifies rendering of the common shapes.
func TestJSONInspectorKinds(t *testing.T) {
	i := NewJSONInspector()

	t.Run("struct exports only public fields", func(t *testing.T) {
		v := struct {
			Public string
			hidden string
		}{Public: "yes", hidden: "no"}

		got := i.Inspect(v, InspectOptions{Depth: 1})

		if !strings.Contains(got, "Public") {
			t.Errorf("expected exported field, got %q", got)
		}
		if strings.Contains(got, "hidden") {
			t.Errorf("unexpected unexported field, got %q", got)
		}
	})

	t.Run("slice of maps", func(t *testing.T) {
		v := []map[string]int{{"a": 1}}

		got := i.Inspect(v, InspectOptions{Depth: 2})

		if !strings.Contains(got, `"a"`) {
			t.Errorf("expected map content inside the slice, got %q", got)
		}
	})

	t.Run("deep slice is elided", func(t *testing.T) {
		v := map[string]interface{}{"rows": []int{1, 2, 3}}

		got := i.Inspect(v, InspectOptions{Depth: 0})

		if !strings.Contains(got, elidedArray) {
			t.Errorf("expected the slice to be elided, got %q", got)
		}
	})

	t.Run("nil pointer", func(t *testing.T) {
		type box struct{ V *int }

		got := i.Inspect(box{}, InspectOptions{Depth: 1})

		if !strings.Contains(got, "null") {
			t.Errorf("expected nil pointer to render as null, got %q", got)
		}
	})
}
