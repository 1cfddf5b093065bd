//go:build release

package dlog

import (
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
)

// In a release build the debug channel is compiled out entirely while the
// error channel stays live, whatever the enabled flag says.
func TestReleaseBuildDebugChannelIsGone(t *testing.T) {
	hook := test.NewLocal(logger)
	defer hook.Reset()

	SetEnabled(true)
	Log("dropped")
	Warn("dropped")
	Assert(false, "dropped")
	AssertNotNil(nil, "dropped")
	if len(hook.AllEntries()) != 0 {
		t.Fatalf("debug channel leaked %d entries into a release build", len(hook.AllEntries()))
	}

	Error("kept")
	if len(hook.AllEntries()) != 1 {
		t.Fatal("error channel must survive release builds")
	}
}
