//go:build release

package dlog

// Release builds compile the debug channel down to nothing. Only Error and
// Exception survive.

func Log(msg string, ctx ...any) {}

func Warn(msg string, ctx ...any) {}

func Assert(cond bool, msg string, ctx ...any) {}

func AssertNotNil(v any, msg string, ctx ...any) {}
