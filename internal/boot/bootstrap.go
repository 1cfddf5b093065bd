// Package boot wires the game's startup sequence: validate the configuration
// asset, then hand off to the menu scene.
package boot

import (
	"strings"

	"github.com/davevdl/redline/internal/config"
	"github.com/davevdl/redline/internal/dlog"
	"github.com/davevdl/redline/internal/scene"
)

// State of the bootstrapper. Ready and Halted are terminal.
type State string

const (
	StateUninitialized State = "uninitialized"
	StateValidating    State = "validating"
	StateReady         State = "ready"
	StateHalted        State = "halted"
)

// Bootstrapper validates the injected configuration asset once, on its
// initialization hook, and requests the transition into the menu scene. A
// failed validation halts the hand-off but not the process.
type Bootstrapper struct {
	cfg    *config.Asset // may be nil; detected during validation
	loader scene.Loader

	state      State
	transition *scene.Transition
}

func New(cfg *config.Asset, loader scene.Loader) *Bootstrapper {
	return &Bootstrapper{cfg: cfg, loader: loader, state: StateUninitialized}
}

// State reports the current lifecycle state.
func (b *Bootstrapper) State() State { return b.state }

// Transition returns the menu hand-off handle, nil until Ready.
func (b *Bootstrapper) Transition() *scene.Transition { return b.transition }

// Initialize is the single-shot lifecycle hook run by the host. Calling it
// a second time is out of contract; the host guarantees it never does.
func (b *Bootstrapper) Initialize() {
	b.state = StateValidating
	if !b.validateConfig() {
		b.state = StateHalted
		return
	}
	// Completion hook is a deliberate no-op extension point.
	b.transition = b.loader.Request(b.cfg.MenuScene(), false, nil, func() {})
	b.state = StateReady
}

// validateConfig checks the asset reference and the menu scene name. Both
// failures are authoring errors, surfaced on the error channel and otherwise
// non-fatal.
func (b *Bootstrapper) validateConfig() bool {
	if b.cfg == nil {
		dlog.Error("GameConfig is not assigned")
		return false
	}
	if strings.TrimSpace(b.cfg.MenuScene()) == "" {
		dlog.Error("Menu scene name is not configured")
		return false
	}
	return true
}
