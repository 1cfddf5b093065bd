package scene

import (
	"github.com/pkg/errors"

	"github.com/davevdl/redline/internal/dlog"
)

// ErrQueueFull is recorded on a transition when the request queue has no
// room; the request is dropped rather than blocking the caller.
var ErrQueueFull = errors.New("scene transition queue full")

const defaultQueueDepth = 8

// Director owns the transition queue. Game code calls Request (it is the
// process's Loader); the engine loop drains Requests and applies each
// transition cooperatively.
type Director struct {
	reg      *Registry
	requests chan *Transition
}

// DirectorOption configures a Director.
type DirectorOption func(*directorConfig)

type directorConfig struct {
	queueDepth int
}

// WithQueueDepth overrides the buffered request queue size.
func WithQueueDepth(n int) DirectorOption {
	return func(c *directorConfig) {
		if n > 0 {
			c.queueDepth = n
		}
	}
}

func NewDirector(reg *Registry, opts ...DirectorOption) *Director {
	cfg := directorConfig{queueDepth: defaultQueueDepth}
	for _, o := range opts {
		o(&cfg)
	}
	return &Director{reg: reg, requests: make(chan *Transition, cfg.queueDepth)}
}

// Request enqueues a transition and returns its handle immediately.
func (d *Director) Request(name string, additive bool, onProgress func(float64), onComplete func()) *Transition {
	t := NewTransition(name, additive, onProgress, onComplete)
	select {
	case d.requests <- t:
		dlog.Log("scene transition requested", t.ID)
	default:
		t.Complete(ErrQueueFull)
	}
	return t
}

// Requests is drained by the engine loop.
func (d *Director) Requests() <-chan *Transition { return d.requests }

// Instantiate builds the scene for t, running any preload stage against the
// transition's progress callback. The caller activates the scene and then
// calls t.Complete.
func (d *Director) Instantiate(t *Transition) (Scene, error) {
	s, err := d.reg.New(t.Name)
	if err != nil {
		return nil, err
	}
	if p, ok := s.(Preloader); ok {
		if err := p.Preload(t.Progress); err != nil {
			return nil, errors.Wrapf(err, "preload scene %q", t.Name)
		}
	}
	return s, nil
}
