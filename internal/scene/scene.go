// Package scene provides named scene registration and the asynchronous
// transition machinery between scenes.
package scene

import (
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

// Scene is a unit of loadable game content. Scenes follow the bubbletea
// model shape but return Scene so the host can keep a typed stack.
type Scene interface {
	Name() string
	Init() tea.Cmd
	Update(msg tea.Msg) (Scene, tea.Cmd)
	View(width, height int) string
}

// Preloader is optionally implemented by scenes that stage work before
// activation. report takes values in [0,1]; the final 1.0 is issued by the
// director.
type Preloader interface {
	Preload(report func(float64)) error
}

// Loader is the transition surface handed to game code. Request never
// blocks; completion arrives later on the engine loop.
type Loader interface {
	Request(name string, additive bool, onProgress func(float64), onComplete func()) *Transition
}

// Registry maps scene names to constructors.
type Registry struct {
	ctors map[string]func() Scene
}

func NewRegistry() *Registry {
	return &Registry{ctors: map[string]func() Scene{}}
}

// Register binds name to a constructor. Re-registering a name is an
// authoring bug and fails.
func (r *Registry) Register(name string, ctor func() Scene) error {
	if name == "" {
		return errors.New("scene name must not be empty")
	}
	if _, ok := r.ctors[name]; ok {
		return errors.Errorf("scene %q already registered", name)
	}
	r.ctors[name] = ctor
	return nil
}

// New instantiates the scene registered under name.
func (r *Registry) New(name string) (Scene, error) {
	ctor, ok := r.ctors[name]
	if !ok {
		return nil, errors.Errorf("unknown scene %q", name)
	}
	return ctor(), nil
}

// Names lists registered scenes in stable order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.ctors))
	for k := range r.ctors {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
