package catloggr

// HookArg is the input to an ArgHook: one raw call argument and the
// timestamp of the call it belongs to.
type HookArg struct {
	Arg       interface{}
	Timestamp Timestamp
}

// ArgHook intercepts a single raw argument before built-in stringification.
// Returning ok=true short-circuits the remaining hooks and the built-in type
// rules for that argument; the returned fragments are spliced into the output
// element by element. Returning ok=false passes the argument to the next hook,
// and after the last hook to the built-in formatting.
type ArgHook func(HookArg) (fragments []string, ok bool)

// PostContext is the input to a PostHook: the fully assembled text of one
// call, plus the level, timestamp and effective shard identity it was
// formatted under.
type PostContext struct {
	Level     string
	Err       bool
	Text      string
	Timestamp Timestamp
	Shard     string
}

// PostHook intercepts the assembled text once per completed call, before the
// final write. The first hook returning ok=true replaces the text wholesale
// and stops the chain.
type PostHook func(PostContext) (text string, ok bool)

// AddArgHook appends an argument hook. Hooks run in registration order and
// there is no removal. A nil hook is ignored.
func (l *Loggr) AddArgHook(h ArgHook) *Loggr {
	if h != nil {
		l.argHooks = append(l.argHooks, h)
	}

	return l
}

// AddPostHook appends a post hook. Hooks run in registration order and there
// is no removal. A nil hook is ignored.
func (l *Loggr) AddPostHook(h PostHook) *Loggr {
	if h != nil {
		l.postHooks = append(l.postHooks, h)
	}

	return l
}

func (l *Loggr) runArgHooks(arg interface{}, ts Timestamp) ([]string, bool) {
	for _, h := range l.argHooks {
		if out, ok := h(HookArg{Arg: arg, Timestamp: ts}); ok {
			return out, true
		}
	}

	return nil, false
}

func (l *Loggr) runPostHooks(ctx PostContext) string {
	for _, h := range l.postHooks {
		if out, ok := h(ctx); ok {
			return out
		}
	}

	return ctx.Text
}
