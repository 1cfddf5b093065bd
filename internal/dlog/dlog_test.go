//go:build !release

package dlog

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func withHook(t *testing.T) *test.Hook {
	t.Helper()
	hook := test.NewLocal(logger)
	t.Cleanup(hook.Reset)
	return hook
}

func TestEnabledGatesLogAndWarnOnly(t *testing.T) {
	hook := withHook(t)
	SetEnabled(false)
	defer SetEnabled(true)

	Log("hidden")
	Warn("hidden")
	Error("visible")
	Exception(errors.New("boom"))

	entries := hook.AllEntries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	for _, e := range entries {
		if e.Level != logrus.ErrorLevel {
			t.Fatalf("unexpected level %s", e.Level)
		}
	}
}

func TestLogAndWarnEmitWhenEnabled(t *testing.T) {
	hook := withHook(t)
	SetEnabled(true)

	Log("info line")
	Warn("warn line")

	entries := hook.AllEntries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Level != logrus.InfoLevel || entries[1].Level != logrus.WarnLevel {
		t.Fatalf("unexpected levels: %s, %s", entries[0].Level, entries[1].Level)
	}
}

func TestExceptionNilIsSilent(t *testing.T) {
	hook := withHook(t)
	Exception(nil)
	if len(hook.AllEntries()) != 0 {
		t.Fatal("nil exception should not log")
	}
}

func TestContextAttachesField(t *testing.T) {
	hook := withHook(t)
	Error("with context", "bootstrap")
	e := hook.LastEntry()
	if e == nil {
		t.Fatal("no entry recorded")
	}
	if e.Data["context"] != "bootstrap" {
		t.Fatalf("context field = %v, want bootstrap", e.Data["context"])
	}
}

func TestAssertIsNonFatalAndSilentOnSuccess(t *testing.T) {
	hook := withHook(t)

	Assert(true, "fine")
	AssertNotNil(struct{}{}, "fine")
	if len(hook.AllEntries()) != 0 {
		t.Fatal("assertions must be silent on success")
	}

	Assert(false, "broken invariant")
	AssertNotNil(nil, "missing reference")
	entries := hook.AllEntries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(entries))
	}
	// Reaching this line is the non-fatal guarantee.
}
