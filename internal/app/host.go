// Package app hosts long-lived single-instance components. A Host is built
// explicitly at process start and passed by reference, rather than living as
// ambient global state; the process-wide registry only enforces the
// at-most-one-instance invariant.
package app

import (
	"reflect"
	"sync"

	"github.com/davevdl/redline/internal/dlog"
)

// Initializer is the lifecycle hook contract: Initialize is called exactly
// once per process, by the host, on the engine loop.
type Initializer interface {
	Initialize()
}

var (
	hostsMu sync.Mutex
	hosts   = map[reflect.Type]any{}
)

// Host owns a single instance of T for the process lifetime. The instance
// survives scene transitions; Initialize fires at most once.
type Host[T Initializer] struct {
	once sync.Once
	inst T
}

// NewHost registers inst as the process's sole T. A second host for the same
// type is a wiring bug: the duplicate is discarded and the original returned.
func NewHost[T Initializer](inst T) *Host[T] {
	hostsMu.Lock()
	defer hostsMu.Unlock()
	key := reflect.TypeOf(inst)
	if existing, ok := hosts[key]; ok {
		dlog.Warn("duplicate host discarded", key)
		return existing.(*Host[T])
	}
	h := &Host[T]{inst: inst}
	hosts[key] = h
	return h
}

// Start runs the hosted instance's initialization hook. Only the first call
// has any effect.
func (h *Host[T]) Start() {
	h.once.Do(h.inst.Initialize)
}

// Instance returns the hosted value.
func (h *Host[T]) Instance() T { return h.inst }

// resetHosts clears the registry between tests.
func resetHosts() {
	hostsMu.Lock()
	defer hostsMu.Unlock()
	hosts = map[reflect.Type]any{}
}
