package catloggr

import (
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
)

var (
	timestampColor = color.New(color.ReverseVideo)
	shardColor     = color.New(color.FgBlack, color.BgYellow)
)

// Timestamp is the time source's view of one call: the raw time plus the
// pre-formatted badge text.
type Timestamp struct {
	Raw       time.Time
	Formatted string
}

// Clock produces the timestamp for a call. The default clock formats the
// current time as "MM/DD HH:mm:ss".
type Clock func() Timestamp

func systemClock() Timestamp {
	now := time.Now()

	return Timestamp{Raw: now, Formatted: now.Format("01/02 15:04:05")}
}

// write assembles and emits one line: shard tag, inverse-video timestamp
// badge, center-padded level badge, then the body. Err-flagged levels go to
// stderr, everything else to stdout. One synchronous write per call; a
// failing stream's error is returned unchanged, never retried or swallowed.
func (l *Loggr) write(lvl *Level, text string, isErr bool, ts Timestamp, m metaState) error {
	shard := l.shard
	if m.hasShard {
		shard = m.shard
	}

	text = l.runPostHooks(PostContext{
		Level:     lvl.Name,
		Err:       isErr,
		Text:      text,
		Timestamp: ts,
		Shard:     shard,
	})

	var b strings.Builder

	if shard != "" {
		width := l.shardWidth
		if len(shard) > width {
			width = len(shard)
		}

		b.WriteString(paint(shardColor, m.color, centerPad(shard, width)))
	}

	b.WriteString(paint(timestampColor, m.color, ts.Formatted))
	b.WriteString(paint(lvl.Color, m.color, centerPad(lvl.Name, l.maxWidth)))
	b.WriteString(" ")
	b.WriteString(text)
	b.WriteString("\n")

	out := l.stdout
	if isErr {
		out = l.stderr
	}

	_, err := io.WriteString(out, b.String())

	return err
}

// centerPad pads s with spaces to width, biased left on odd remainders.
func centerPad(s string, width int) string {
	if len(s) >= width {
		return s
	}

	total := width - len(s)
	left := total / 2

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", total-left)
}
