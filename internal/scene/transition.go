package scene

import (
	"sync"

	"github.com/google/uuid"
)

// Transition is the awaitable handle returned by a transition request. The
// requester may block on Done or ignore the handle entirely; completion is
// always driven by the engine loop, never by the requester.
type Transition struct {
	ID       uuid.UUID
	Name     string
	Additive bool

	onProgress func(float64)
	onComplete func()

	once sync.Once
	done chan struct{}
	err  error
}

// NewTransition builds a pending handle. Loader implementations own calling
// Complete exactly once.
func NewTransition(name string, additive bool, onProgress func(float64), onComplete func()) *Transition {
	return &Transition{
		ID:         uuid.New(),
		Name:       name,
		Additive:   additive,
		onProgress: onProgress,
		onComplete: onComplete,
		done:       make(chan struct{}),
	}
}

// Done is closed once the transition has been applied or has failed.
func (t *Transition) Done() <-chan struct{} { return t.done }

// Err is valid after Done is closed.
func (t *Transition) Err() error { return t.err }

// Progress reports staged load progress to the requester, if asked for.
func (t *Transition) Progress(p float64) {
	if t.onProgress == nil {
		return
	}
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	t.onProgress(p)
}

// Complete finishes the transition exactly once: records err, fires the
// final progress tick and the completion callback, and unblocks Done.
func (t *Transition) Complete(err error) {
	t.once.Do(func() {
		t.err = err
		if err == nil {
			t.Progress(1)
		}
		if t.onComplete != nil {
			t.onComplete()
		}
		close(t.done)
	})
}
