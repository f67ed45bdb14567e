// Package catloggr is a configurable console-logging formatter. It converts
// arbitrary call-site arguments into a styled, human-readable line (level
// badge, timestamp, optional shard tag, colorized content) and writes the
// result to stdout or stderr depending on the level's severity flag.
//
// The pipeline is synchronous and line-oriented: a level-named call runs the
// argument formatter (template expansion, arg hooks, per-type rendering),
// then the writer (post hooks, badges, a single stream write). Levels live in
// a replaceable registry with alias resolution and position-based threshold
// filtering; per-call options overlay the defaults via Meta and are consumed
// by the next completed write.
package catloggr

import (
	"fmt"
	"io"
	"log"
	"os"
	"reflect"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

var (
	std      *Loggr
	stdMutex = &sync.RWMutex{}

	// loggrPackage is the import path of this package, determined at
	// runtime so stack capture can skip its own frames.
	loggrPackage string
)

func init() {
	loggrPackage = reflect.TypeOf(Loggr{}).PkgPath()

	if loggrPackage == "" {
		panic("catloggr: could not determine package path for stack capture")
	}

	std = New()

	setupLevelFromEnv()
}

// setupLevelFromEnv reads the LOGGR_LEVEL environment variable and sets the
// default logger's threshold accordingly.
func setupLevelFromEnv() {
	levelStr := os.Getenv("LOGGR_LEVEL")

	if levelStr == "" {
		return
	}

	if err := std.SetLevel(levelStr); err != nil {
		log.Printf("catloggr: invalid LOGGR_LEVEL value %q, using default level", levelStr)
	}
}

// Loggr is a console logger instance. Instances are fully independent and
// share no state; the pipeline is synchronous, so every call completes its
// write before returning. Loggr is not safe for concurrent use.
type Loggr struct {
	levels   []*Level
	index    map[string]*Level
	active   *Level
	maxWidth int

	builtin  metaState
	defaults metaState
	pending  *metaState

	argHooks  []ArgHook
	postHooks []PostHook

	shard      string
	shardWidth int

	stdout io.Writer
	stderr io.Writer

	inspector Inspector
	clock     Clock

	initLevel  string
	initLevels []LevelSpec
	initMeta   *Meta
}

// Option configures a Loggr during construction.
type Option func(*Loggr)

// WithShard sets the shard identity rendered as a prefix tag on every line.
// Non-string identifiers are rendered with their default textual form.
func WithShard(id interface{}) Option {
	return func(l *Loggr) {
		if id != nil {
			l.shard = fmt.Sprint(id)
		}
	}
}

// WithShardLength sets the display width of the shard tag. The default is 4;
// longer identities widen the tag to fit.
func WithShardLength(n int) Option {
	return func(l *Loggr) {
		if n > 0 {
			l.shardWidth = n
		}
	}
}

// WithLevel sets the initial threshold. It panics during New when the name
// does not resolve against the configured level set.
func WithLevel(name string) Option {
	return func(l *Loggr) {
		l.initLevel = name
	}
}

// WithLevels replaces the default level set. It panics during New when the
// specs are invalid.
func WithLevels(specs []LevelSpec) Option {
	return func(l *Loggr) {
		l.initLevels = specs
	}
}

// WithMeta merges the supplied options over the built-in defaults as the
// logger's default meta.
func WithMeta(m Meta) Option {
	return func(l *Loggr) {
		l.initMeta = &m
	}
}

// WithStdout sets the stream for non-error levels.
func WithStdout(w io.Writer) Option {
	return func(l *Loggr) {
		if w != nil {
			l.stdout = w
		}
	}
}

// WithStderr sets the stream for error-flagged levels.
func WithStderr(w io.Writer) Option {
	return func(l *Loggr) {
		if w != nil {
			l.stderr = w
		}
	}
}

// WithInspector replaces the object-inspection capability.
func WithInspector(i Inspector) Option {
	return func(l *Loggr) {
		if i != nil {
			l.inspector = i
		}
	}
}

// WithClock replaces the time source.
func WithClock(c Clock) Option {
	return func(l *Loggr) {
		if c != nil {
			l.clock = c
		}
	}
}

// New creates a logger with the default level set, an "info" threshold, and
// os.Stdout/os.Stderr as its streams. Color defaults on when stdout is a
// terminal. Invalid WithLevel or WithLevels input panics; everything set
// after construction goes through the error-returning setters instead.
func New(opts ...Option) *Loggr {
	l := &Loggr{
		shardWidth: 4,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		inspector:  NewJSONInspector(),
		clock:      systemClock,
	}

	for _, opt := range opts {
		opt(l)
	}

	l.builtin = metaState{depth: 1, color: detectColor(l.stdout)}
	l.defaults = l.builtin

	specs := l.initLevels
	if specs == nil {
		specs = DefaultLevels()
	}

	if err := l.SetLevels(specs); err != nil {
		panic(err.Error())
	}

	if l.initLevel != "" {
		if err := l.SetLevel(l.initLevel); err != nil {
			panic(err.Error())
		}
	} else {
		// A custom set without an info level keeps the lowest priority
		// level chosen by SetLevels active.
		_ = l.SetLevel("info")
	}

	if l.initMeta != nil {
		l.SetDefaultMeta(*l.initMeta)
	}

	l.initLevel, l.initLevels, l.initMeta = "", nil, nil

	return l
}

// detectColor reports whether w is an interactive terminal.
func detectColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Call dispatches a variadic log call to the level named by nameOrAlias.
// Unknown names and calls below the threshold produce no output. It returns
// the logger for chaining; use CallE to observe dispatch and write errors.
func (l *Loggr) Call(nameOrAlias string, args ...interface{}) *Loggr {
	_ = l.call(nameOrAlias, args...)

	return l
}

// CallE is Call with the error surfaced: an UnknownLevelError for an
// unresolvable name, or the stream's own error when the write fails. A call
// suppressed by the threshold returns nil.
func (l *Loggr) CallE(nameOrAlias string, args ...interface{}) error {
	return l.call(nameOrAlias, args...)
}

func (l *Loggr) call(nameOrAlias string, args ...interface{}) error {
	lvl, ok := l.index[strings.ToLower(nameOrAlias)]
	if !ok {
		return &UnknownLevelError{Name: nameOrAlias}
	}

	// Suppressed calls have no side effects: no hooks, no pending-meta
	// consumption.
	if lvl.Position > l.active.Position {
		return nil
	}

	m := l.resolveMeta()
	ts := l.clock()

	body := l.formatBody(lvl, m, ts, args)

	err := l.write(lvl, body, lvl.Err, ts, m)

	l.pending = nil

	return err
}

// Fatal logs at the fatal level.
func (l *Loggr) Fatal(args ...interface{}) *Loggr { return l.Call("fatal", args...) }

// Error logs at the error level.
func (l *Loggr) Error(args ...interface{}) *Loggr { return l.Call("error", args...) }

// Warn logs at the warn level.
func (l *Loggr) Warn(args ...interface{}) *Loggr { return l.Call("warn", args...) }

// Trace logs at the trace level, appending the call stack.
func (l *Loggr) Trace(args ...interface{}) *Loggr { return l.Call("trace", args...) }

// Init logs at the init level.
func (l *Loggr) Init(args ...interface{}) *Loggr { return l.Call("init", args...) }

// Info logs at the info level.
func (l *Loggr) Info(args ...interface{}) *Loggr { return l.Call("info", args...) }

// Verbose logs at the verbose level.
func (l *Loggr) Verbose(args ...interface{}) *Loggr { return l.Call("verbose", args...) }

// Debug logs at the debug level.
func (l *Loggr) Debug(args ...interface{}) *Loggr { return l.Call("debug", args...) }

// Log logs at the debug level via its log alias.
func (l *Loggr) Log(args ...interface{}) *Loggr { return l.Call("log", args...) }

// Dir logs at the debug level via its dir alias.
func (l *Loggr) Dir(args ...interface{}) *Loggr { return l.Call("dir", args...) }

// SetGlobal replaces the package-level default logger with this instance.
// Every subsequent package-level call routes through it. There is no way to
// restore the previous default short of a restart.
func (l *Loggr) SetGlobal() {
	stdMutex.Lock()
	defer stdMutex.Unlock()

	std = l
}

// Default returns the package-level default logger.
func Default() *Loggr {
	stdMutex.RLock()
	defer stdMutex.RUnlock()

	return std
}

// Fatal logs at the fatal level using the default logger.
func Fatal(args ...interface{}) *Loggr {
	stdMutex.RLock()
	defer stdMutex.RUnlock()

	return std.Fatal(args...)
}

// Error logs at the error level using the default logger.
func Error(args ...interface{}) *Loggr {
	stdMutex.RLock()
	defer stdMutex.RUnlock()

	return std.Error(args...)
}

// Warn logs at the warn level using the default logger.
func Warn(args ...interface{}) *Loggr {
	stdMutex.RLock()
	defer stdMutex.RUnlock()

	return std.Warn(args...)
}

// Trace logs at the trace level using the default logger.
func Trace(args ...interface{}) *Loggr {
	stdMutex.RLock()
	defer stdMutex.RUnlock()

	return std.Trace(args...)
}

// Init logs at the init level using the default logger.
func Init(args ...interface{}) *Loggr {
	stdMutex.RLock()
	defer stdMutex.RUnlock()

	return std.Init(args...)
}

// Info logs at the info level using the default logger.
func Info(args ...interface{}) *Loggr {
	stdMutex.RLock()
	defer stdMutex.RUnlock()

	return std.Info(args...)
}

// Verbose logs at the verbose level using the default logger.
func Verbose(args ...interface{}) *Loggr {
	stdMutex.RLock()
	defer stdMutex.RUnlock()

	return std.Verbose(args...)
}

// Debug logs at the debug level using the default logger.
func Debug(args ...interface{}) *Loggr {
	stdMutex.RLock()
	defer stdMutex.RUnlock()

	return std.Debug(args...)
}

// Log logs at the debug level using the default logger.
func Log(args ...interface{}) *Loggr {
	stdMutex.RLock()
	defer stdMutex.RUnlock()

	return std.Log(args...)
}

// Dir logs at the debug level using the default logger.
func Dir(args ...interface{}) *Loggr {
	stdMutex.RLock()
	defer stdMutex.RUnlock()

	return std.Dir(args...)
}

// Call dispatches to a named level on the default logger.
func Call(nameOrAlias string, args ...interface{}) *Loggr {
	stdMutex.RLock()
	defer stdMutex.RUnlock()

	return std.Call(nameOrAlias, args...)
}

// SetLevel sets the threshold of the default logger.
func SetLevel(name string) error {
	stdMutex.RLock()
	defer stdMutex.RUnlock()

	return std.SetLevel(name)
}
