package catloggr

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
	"time"
)

var testTime = time.Date(2026, 8, 31, 15, 4, 5, 0, time.UTC)

func testClock() Timestamp {
	return Timestamp{Raw: testTime, Formatted: "08/31 15:04:05"}
}

// newTestLoggr builds a logger with a fixed clock and captured streams so
// output lines are fully deterministic.
func newTestLoggr(stdout, stderr *bytes.Buffer, opts ...Option) *Loggr {
	base := []Option{
		WithStdout(stdout),
		WithStderr(stderr),
		WithClock(testClock),
	}

	return New(append(base, opts...)...)
}

// TestNew verifies that New() creates a logger with correct default values.
func TestNew(t *testing.T) {
	l := New()

	if l.stdout != os.Stdout {
		t.Errorf("expected default stdout to be os.Stdout, got %v", l.stdout)
	}
	if l.stderr != os.Stderr {
		t.Errorf("expected default stderr to be os.Stderr, got %v", l.stderr)
	}
	if got := l.ActiveLevel(); got != "info" {
		t.Errorf("expected default threshold to be info, got %q", got)
	}
	if got := len(l.Levels()); got != 8 {
		t.Errorf("expected 8 default levels, got %d", got)
	}
	if l.shardWidth != 4 {
		t.Errorf("expected default shard length 4, got %d", l.shardWidth)
	}
	if _, ok := l.inspector.(jsonInspector); !ok {
		t.Errorf("expected default inspector to be jsonInspector, got %T", l.inspector)
	}
}

// TestThresholdFiltering verifies that calls below the threshold produce no
// writes and calls at or above it produce exactly one.
func TestThresholdFiltering(t *testing.T) {
	var out, errOut bytes.Buffer

	l := newTestLoggr(&out, &errOut)

	if err := l.SetLevel("warn"); err != nil {
		t.Fatalf("SetLevel(warn) returned an error: %v", err)
	}

	t.Run("info is suppressed below a warn threshold", func(t *testing.T) {
		out.Reset()
		errOut.Reset()

		l.Info("should not appear")

		if out.Len() != 0 || errOut.Len() != 0 {
			t.Errorf("expected zero writes, got stdout=%q stderr=%q", out.String(), errOut.String())
		}
	})

	t.Run("fatal passes a warn threshold", func(t *testing.T) {
		out.Reset()
		errOut.Reset()

		l.Fatal("boom")

		if got := strings.Count(errOut.String(), "\n"); got != 1 {
			t.Errorf("expected exactly one written line, got %d: %q", got, errOut.String())
		}
		if out.Len() != 0 {
			t.Errorf("fatal must not write to stdout, got %q", out.String())
		}
	})

	t.Run("suppressed calls run no hooks", func(t *testing.T) {
		out.Reset()

		called := false

		l.AddArgHook(func(HookArg) ([]string, bool) {
			called = true
			return nil, false
		})

		l.Debug("suppressed")

		if called {
			t.Error("arg hook must not run for a suppressed call")
		}
	})
}

// TestChaining verifies that the fluent surface returns the same instance.
func TestChaining(t *testing.T) {
	var out, errOut bytes.Buffer

	l := newTestLoggr(&out, &errOut)

	if l.Meta(Meta{}) != l {
		t.Error("Meta should return the same logger instance")
	}
	if l.Info("x") != l {
		t.Error("Info should return the same logger instance")
	}
	if l.Call("verbose") != l {
		t.Error("Call should return the same logger instance")
	}
	if l.SetDefaultMeta(Meta{}) != l {
		t.Error("SetDefaultMeta should return the same logger instance")
	}
	if l.AddArgHook(func(HookArg) ([]string, bool) { return nil, false }) != l {
		t.Error("AddArgHook should return the same logger instance")
	}
	if l.AddPostHook(func(PostContext) (string, bool) { return "", false }) != l {
		t.Error("AddPostHook should return the same logger instance")
	}
}

// TestMetaOneShot verifies that per-call meta applies to exactly one written
// call and never leaks into the stored defaults.
func TestMetaOneShot(t *testing.T) {
	var out, errOut bytes.Buffer

	l := newTestLoggr(&out, &errOut)

	t.Run("overrides apply to the next write only", func(t *testing.T) {
		out.Reset()

		l.Meta(Meta{QuoteStrings: Bool(true)}).Info("first")
		l.Info("second")

		lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
		if len(lines) != 2 {
			t.Fatalf("expected two lines, got %d: %q", len(lines), out.String())
		}
		if !strings.Contains(lines[0], "'first'") {
			t.Errorf("first line should quote the string, got %q", lines[0])
		}
		if strings.Contains(lines[1], "'second'") {
			t.Errorf("second line should not be quoted, got %q", lines[1])
		}
	})

	t.Run("defaults are not mutated by a call-site override", func(t *testing.T) {
		before := l.defaults

		l.Meta(Meta{InspectDepth: Int(5), QuoteStrings: Bool(true)}).Info("x")

		if l.defaults != before {
			t.Errorf("defaults changed from %+v to %+v", before, l.defaults)
		}
	})

	t.Run("a suppressed call does not consume pending meta", func(t *testing.T) {
		out.Reset()
		errOut.Reset()

		if err := l.SetLevel("warn"); err != nil {
			t.Fatalf("SetLevel(warn) returned an error: %v", err)
		}

		l.Meta(Meta{QuoteStrings: Bool(true)}).Info("dropped")
		l.Warn("kept")

		if !strings.Contains(errOut.String(), "'kept'") {
			t.Errorf("pending meta should survive a suppressed call, got %q", errOut.String())
		}
	})
}

// TestSetDefaultMetaIdempotent verifies that applying the same default meta
// twice yields the same resolved state as applying it once.
func TestSetDefaultMetaIdempotent(t *testing.T) {
	var out, errOut bytes.Buffer

	l := newTestLoggr(&out, &errOut)

	l.SetDefaultMeta(Meta{})
	once := l.defaults

	l.SetDefaultMeta(Meta{})

	if l.defaults != once {
		t.Errorf("SetDefaultMeta is not idempotent: %+v vs %+v", once, l.defaults)
	}
}

// TestSetGlobal verifies that SetGlobal swaps the package-level default
// logger for subsequent package-level calls.
func TestSetGlobal(t *testing.T) {
	originalStd := std
	defer func() {
		std = originalStd
	}()

	var out, errOut bytes.Buffer

	l := newTestLoggr(&out, &errOut)
	l.SetGlobal()

	Info("routed through the new global")

	if !strings.Contains(out.String(), "routed through the new global") {
		t.Errorf("package-level call did not reach the new global logger, got %q", out.String())
	}
	if Default() != l {
		t.Error("Default() should return the instance passed to SetGlobal")
	}
}

// TestSetupLevelFromEnv verifies that the default logger's threshold is
// configured from the LOGGR_LEVEL environment variable.
func TestSetupLevelFromEnv(t *testing.T) {
	originalStd := std
	defer func() {
		std = originalStd
	}()

	setup := func() {
		std = New()
	}

	t.Run("Variable not set", func(t *testing.T) {
		setup()
		t.Setenv("LOGGR_LEVEL", "")

		setupLevelFromEnv()

		if got := std.ActiveLevel(); got != "info" {
			t.Errorf("expected threshold to remain info, got %q", got)
		}
	})

	t.Run("Valid level set", func(t *testing.T) {
		setup()
		t.Setenv("LOGGR_LEVEL", "debug")

		setupLevelFromEnv()

		if got := std.ActiveLevel(); got != "debug" {
			t.Errorf("expected threshold debug, got %q", got)
		}
	})

	t.Run("Alias works", func(t *testing.T) {
		setup()
		t.Setenv("LOGGR_LEVEL", "log")

		setupLevelFromEnv()

		if got := std.ActiveLevel(); got != "debug" {
			t.Errorf("expected alias to resolve to debug, got %q", got)
		}
	})

	t.Run("Invalid level set", func(t *testing.T) {
		setup()
		t.Setenv("LOGGR_LEVEL", "catnip")

		setupLevelFromEnv()

		if got := std.ActiveLevel(); got != "info" {
			t.Errorf("expected threshold to fall back to info, got %q", got)
		}
	})
}

// TestCallE verifies the error-returning dispatch path.
func TestCallE(t *testing.T) {
	var out, errOut bytes.Buffer

	l := newTestLoggr(&out, &errOut)

	t.Run("unknown level", func(t *testing.T) {
		err := l.CallE("catnip", "x")

		var unknownErr *UnknownLevelError
		if !errors.As(err, &unknownErr) {
			t.Fatalf("expected UnknownLevelError, got %v", err)
		}
		if unknownErr.Name != "catnip" {
			t.Errorf("expected error to carry the name, got %q", unknownErr.Name)
		}
	})

	t.Run("suppressed call returns nil", func(t *testing.T) {
		if err := l.CallE("debug", "x"); err != nil {
			t.Errorf("expected nil for a suppressed call, got %v", err)
		}
	})

	t.Run("write fault propagates", func(t *testing.T) {
		faulty := New(WithStdout(failWriter{}), WithStderr(failWriter{}), WithClock(testClock))

		err := faulty.CallE("info", "x")
		if err == nil || !strings.Contains(err.Error(), "broken pipe") {
			t.Errorf("expected the stream's own error, got %v", err)
		}
	})

	t.Run("Call swallows the write fault but still chains", func(t *testing.T) {
		faulty := New(WithStdout(failWriter{}), WithStderr(failWriter{}), WithClock(testClock))

		if faulty.Info("x") != faulty {
			t.Error("Call should return the logger even when the write fails")
		}
	})
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("broken pipe")
}
