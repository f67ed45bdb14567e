package catloggr

import "strconv"

// InvalidArgumentError reports a malformed value passed to a configuration
// setter. Setters validate their input before mutating any state, so a
// returned InvalidArgumentError means the logger is unchanged.
type InvalidArgumentError struct {
	Op     string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return "catloggr: " + e.Op + ": " + e.Reason
}

// UnknownLevelError reports a level name or alias that does not resolve
// against the current registry.
type UnknownLevelError struct {
	Name string
}

func (e *UnknownLevelError) Error() string {
	return "catloggr: unknown level " + strconv.Quote(e.Name)
}
