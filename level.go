package catloggr

import (
	"strings"

	"github.com/fatih/color"
)

// LevelSpec describes a severity level to register. Name is required; Aliases
// resolve to the same level as the primary name. Err routes the level's output
// to stderr and wraps its body in error coloring. Trace appends the current
// call stack to every message logged at the level.
type LevelSpec struct {
	Name    string
	Color   *color.Color
	Err     bool
	Trace   bool
	Aliases []string
}

// Level is a registered severity level. Position is its dense rank in the
// registry: 0 is the highest severity, and calls at a position greater than
// the active threshold's position are suppressed.
type Level struct {
	Name     string
	Color    *color.Color
	Err      bool
	Trace    bool
	Aliases  []string
	Position int
}

// DefaultLevels returns the built-in level set, ordered from highest to
// lowest severity: fatal, error, warn, trace, init, info, verbose and
// debug (aliased as log and dir).
func DefaultLevels() []LevelSpec {
	return []LevelSpec{
		{Name: "fatal", Color: color.New(color.FgRed, color.BgBlack), Err: true},
		{Name: "error", Color: color.New(color.FgBlack, color.BgRed), Err: true},
		{Name: "warn", Color: color.New(color.FgBlack, color.BgYellow), Err: true},
		{Name: "trace", Color: color.New(color.FgGreen, color.BgBlack), Trace: true},
		{Name: "init", Color: color.New(color.FgBlack, color.BgBlue)},
		{Name: "info", Color: color.New(color.FgBlack, color.BgGreen)},
		{Name: "verbose", Color: color.New(color.FgBlack, color.BgCyan)},
		{Name: "debug", Color: color.New(color.FgMagenta, color.BgBlack), Aliases: []string{"log", "dir"}},
	}
}

// SetLevels replaces the registry wholesale. Positions are reassigned from
// registration order and the badge width is recomputed from the longest name.
// Name and alias collisions silently overwrite; the last registration wins.
// If the active threshold no longer resolves against the new set, it falls
// back to the last (lowest priority) level so the logger stays usable.
//
// The previous registry is left intact when an error is returned.
func (l *Loggr) SetLevels(specs []LevelSpec) error {
	if len(specs) == 0 {
		return &InvalidArgumentError{Op: "SetLevels", Reason: "level set must not be empty"}
	}

	levels := make([]*Level, 0, len(specs))
	index := make(map[string]*Level, len(specs))
	longest := 0

	for i, spec := range specs {
		if strings.TrimSpace(spec.Name) == "" {
			return &InvalidArgumentError{Op: "SetLevels", Reason: "level name must not be empty"}
		}

		lvl := &Level{
			Name:     strings.ToLower(spec.Name),
			Color:    spec.Color,
			Err:      spec.Err,
			Trace:    spec.Trace,
			Aliases:  append([]string(nil), spec.Aliases...),
			Position: i,
		}

		levels = append(levels, lvl)
		index[lvl.Name] = lvl

		for _, alias := range spec.Aliases {
			if alias != "" {
				index[strings.ToLower(alias)] = lvl
			}
		}

		if len(lvl.Name) > longest {
			longest = len(lvl.Name)
		}
	}

	l.levels = levels
	l.index = index
	l.maxWidth = longest + 2

	if l.active != nil {
		if replacement, ok := index[l.active.Name]; ok {
			l.active = replacement
		} else {
			l.active = levels[len(levels)-1]
		}
	} else {
		l.active = levels[len(levels)-1]
	}

	return nil
}

// SetLevel sets the active threshold. Calls at levels with a lower priority
// than the threshold produce no output.
func (l *Loggr) SetLevel(name string) error {
	if strings.TrimSpace(name) == "" {
		return &InvalidArgumentError{Op: "SetLevel", Reason: "level name must not be empty"}
	}

	lvl, ok := l.index[strings.ToLower(name)]
	if !ok {
		return &UnknownLevelError{Name: name}
	}

	l.active = lvl

	return nil
}

// Levels returns a copy of the registered levels in priority order.
func (l *Loggr) Levels() []Level {
	out := make([]Level, 0, len(l.levels))

	for _, lvl := range l.levels {
		c := *lvl
		c.Aliases = append([]string(nil), lvl.Aliases...)
		out = append(out, c)
	}

	return out
}

// ActiveLevel returns the name of the current threshold level.
func (l *Loggr) ActiveLevel() string {
	return l.active.Name
}
