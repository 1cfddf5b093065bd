//go:build !release

package dlog

// Log emits an info-level entry. Gated by the enabled flag; absent from
// release builds entirely.
func Log(msg string, ctx ...any) {
	if !enabled {
		return
	}
	entry(ctx).Info(msg)
}

// Warn emits a warning-level entry. Gated like Log.
func Warn(msg string, ctx ...any) {
	if !enabled {
		return
	}
	entry(ctx).Warn(msg)
}

// Assert emits a diagnostic when cond is false and continues; it never
// alters control flow on success.
func Assert(cond bool, msg string, ctx ...any) {
	if cond {
		return
	}
	entry(ctx).Error("assertion failed: " + msg)
}

// AssertNotNil is Assert specialized for reference checks.
func AssertNotNil(v any, msg string, ctx ...any) {
	if v != nil {
		return
	}
	entry(ctx).Error("assertion failed: " + msg)
}
