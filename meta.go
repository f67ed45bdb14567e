package catloggr

// Meta carries per-call or default formatting options. Nil fields are left at
// their current values when merged, so a Meta literal only has to name the
// options it wants to change. Use the Bool, Int and String helpers to build
// field values inline.
type Meta struct {
	// InspectDepth bounds how deep the object inspector descends into
	// nested values. Negative values are clamped to zero.
	InspectDepth *int

	// ColorEnabled toggles ANSI styling for the whole line.
	ColorEnabled *bool

	// GenerateTrace appends the current call stack to the message, as if
	// the level were trace-flagged.
	GenerateTrace *bool

	// ShardOverride replaces the configured shard identity for one call.
	ShardOverride *string

	// QuoteStrings wraps string arguments in single quotes.
	QuoteStrings *bool
}

// Bool returns a pointer to b, for use in Meta literals.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to i, for use in Meta literals.
func Int(i int) *int { return &i }

// String returns a pointer to s, for use in Meta literals.
func String(s string) *string { return &s }

// metaState is a fully resolved set of formatting options. It is a value
// type: pending meta is a copy of the defaults with overrides applied, so a
// call's overrides can never mutate the stored defaults.
type metaState struct {
	depth    int
	color    bool
	trace    bool
	shard    string
	hasShard bool
	quote    bool
}

func (m *metaState) apply(o Meta) {
	if o.InspectDepth != nil {
		m.depth = *o.InspectDepth
		if m.depth < 0 {
			m.depth = 0
		}
	}

	if o.ColorEnabled != nil {
		m.color = *o.ColorEnabled
	}

	if o.GenerateTrace != nil {
		m.trace = *o.GenerateTrace
	}

	if o.ShardOverride != nil {
		m.shard = *o.ShardOverride
		m.hasShard = true
	}

	if o.QuoteStrings != nil {
		m.quote = *o.QuoteStrings
	}
}

// SetDefaultMeta merges the supplied options over the built-in defaults
// (depth 1, color auto-detected from the output terminal, no trace) and
// stores the result as the process-lifetime defaults. It is idempotent for
// a given input.
func (l *Loggr) SetDefaultMeta(opts Meta) *Loggr {
	m := l.builtin
	m.apply(opts)
	l.defaults = m

	return l
}

// Meta merges the supplied options over the defaults for the next formatted
// call only. The overlay is consumed by the next completed write; calls
// suppressed by the threshold leave it pending.
//
//	logger.Meta(catloggr.Meta{InspectDepth: catloggr.Int(3)}).Info(payload)
func (l *Loggr) Meta(opts Meta) *Loggr {
	m := l.defaults
	m.apply(opts)
	l.pending = &m

	return l
}

func (l *Loggr) resolveMeta() metaState {
	if l.pending != nil {
		return *l.pending
	}

	return l.defaults
}
