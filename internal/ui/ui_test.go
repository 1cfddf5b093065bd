package ui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/davevdl/redline/internal/config"
	"github.com/davevdl/redline/internal/scene"
)

type noopStarter struct{}

func (noopStarter) Start() {}

func testAsset() *config.Asset {
	return config.DefaultDraft().Asset()
}

func testModel(t *testing.T) (model, *scene.Director) {
	t.Helper()
	reg := scene.NewRegistry()
	d := scene.NewDirector(reg)
	if err := RegisterScenes(reg, d, testAsset(), "test"); err != nil {
		t.Fatalf("RegisterScenes: %v", err)
	}
	m := initialModel(context.Background(), d, noopStarter{}, "catppuccin", "test")
	return m, d
}

func TestApplyTransitionReplacesStack(t *testing.T) {
	m, d := testModel(t)
	tr := d.Request("Menu", false, nil, nil)
	<-d.Requests()
	next, _ := m.applyTransition(tr)
	m2 := next.(model)
	if len(m2.stack) != 1 || m2.stack[0].Name() != "Menu" {
		t.Fatalf("stack = %v", m2.stack)
	}
	select {
	case <-tr.Done():
	default:
		t.Fatal("transition not completed")
	}
	if tr.Err() != nil {
		t.Fatalf("Err = %v", tr.Err())
	}
}

func TestApplyTransitionAdditiveOverlays(t *testing.T) {
	m, d := testModel(t)
	base := d.Request("Gameplay", false, nil, nil)
	<-d.Requests()
	next, _ := m.applyTransition(base)
	m = next.(model)

	overlay := d.Request(PauseSceneName, true, nil, nil)
	<-d.Requests()
	next, _ = m.applyTransition(overlay)
	m = next.(model)

	if len(m.stack) != 2 {
		t.Fatalf("stack depth = %d, want 2", len(m.stack))
	}
	if m.stack[1].Name() != PauseSceneName {
		t.Fatalf("overlay = %q", m.stack[1].Name())
	}

	// esc pops the overlay only.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(model)
	if len(m.stack) != 1 || m.stack[0].Name() != "Gameplay" {
		t.Fatalf("stack after esc = %d", len(m.stack))
	}
}

func TestApplyTransitionUnknownSceneFails(t *testing.T) {
	m, d := testModel(t)
	tr := d.Request("Nowhere", false, nil, nil)
	<-d.Requests()
	next, _ := m.applyTransition(tr)
	m2 := next.(model)
	if len(m2.stack) != 0 {
		t.Fatal("failed transition must not activate a scene")
	}
	<-tr.Done()
	if tr.Err() == nil {
		t.Fatal("expected recorded error")
	}
	if m2.status == "" {
		t.Fatal("status line should surface the failure")
	}
}

func TestRegisterScenesSkipsNilAsset(t *testing.T) {
	reg := scene.NewRegistry()
	d := scene.NewDirector(reg)
	if err := RegisterScenes(reg, d, nil, "test"); err != nil {
		t.Fatalf("RegisterScenes: %v", err)
	}
	if n := len(reg.Names()); n != 0 {
		t.Fatalf("registered %d scenes for nil asset", n)
	}
}
