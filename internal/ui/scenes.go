package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/davevdl/redline/internal/config"
	"github.com/davevdl/redline/internal/dlog"
	"github.com/davevdl/redline/internal/scene"
	"github.com/davevdl/redline/internal/text"
)

// PauseSceneName is the built-in additive overlay; it is not part of the
// authored asset.
const PauseSceneName = "Pause"

func renderMarkdown(md string) string {
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}

// RegisterScenes binds the built-in scenes under the names the asset
// declares. Blank names are skipped; the bootstrapper decides whether that
// matters.
func RegisterScenes(reg *scene.Registry, loader scene.Loader, cfg *config.Asset, version string) error {
	if cfg == nil {
		return nil
	}
	type binding struct {
		name string
		ctor func() scene.Scene
	}
	bindings := []binding{
		{cfg.BootScene(), func() scene.Scene { return newBootScene(cfg.BootScene(), version) }},
		{cfg.MenuScene(), func() scene.Scene { return newMenuScene(cfg, loader, version) }},
		{cfg.GameplayScene(), func() scene.Scene { return newGameplayScene(cfg, loader) }},
	}
	for _, b := range bindings {
		if b.name == "" {
			continue
		}
		if err := reg.Register(b.name, b.ctor); err != nil {
			return err
		}
	}
	return reg.Register(PauseSceneName, func() scene.Scene { return newPauseScene() })
}

// bootScene -----------------------------------------------------------------

type bootScene struct {
	name     string
	rendered string
}

func newBootScene(name, version string) *bootScene {
	return &bootScene{name: name, rendered: renderMarkdown(text.BootMarkdown(version))}
}

func (s *bootScene) Name() string  { return s.name }
func (s *bootScene) Init() tea.Cmd { return nil }
func (s *bootScene) Update(msg tea.Msg) (scene.Scene, tea.Cmd) {
	return s, nil
}
func (s *bootScene) View(width, height int) string { return s.rendered }

// menuScene -----------------------------------------------------------------

type menuScene struct {
	cfg      *config.Asset
	loader   scene.Loader
	version  string
	rendered string
}

func newMenuScene(cfg *config.Asset, loader scene.Loader, version string) *menuScene {
	return &menuScene{cfg: cfg, loader: loader, version: version}
}

func (s *menuScene) Name() string { return s.cfg.MenuScene() }

// Preload renders the menu prose ahead of activation so the progress
// callback sees staged work.
func (s *menuScene) Preload(report func(float64)) error {
	report(0.5)
	s.rendered = renderMarkdown(text.MenuMarkdown(s.version, s.cfg.GameplayScene()))
	return nil
}

func (s *menuScene) Init() tea.Cmd { return nil }

func (s *menuScene) Update(msg tea.Msg) (scene.Scene, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch key.String() {
	case "1", "enter":
		s.loader.Request(s.cfg.GameplayScene(), false, nil, func() {})
	case "2", "q":
		return s, tea.Quit
	}
	return s, nil
}

func (s *menuScene) View(width, height int) string { return s.rendered }

// gameplayScene ---------------------------------------------------------------

type gameplayScene struct {
	cfg      *config.Asset
	loader   scene.Loader
	rendered string
}

func newGameplayScene(cfg *config.Asset, loader scene.Loader) *gameplayScene {
	return &gameplayScene{cfg: cfg, loader: loader}
}

func (s *gameplayScene) Name() string { return s.cfg.GameplayScene() }

func (s *gameplayScene) Preload(report func(float64)) error {
	report(0.5)
	s.rendered = renderMarkdown(text.GameplayMarkdown(s.cfg))
	return nil
}

func (s *gameplayScene) Init() tea.Cmd {
	dlog.Log("gameplay scene active")
	return nil
}

func (s *gameplayScene) Update(msg tea.Msg) (scene.Scene, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch key.String() {
	case "p":
		s.loader.Request(PauseSceneName, true, nil, func() {})
	case "m":
		s.loader.Request(s.cfg.MenuScene(), false, nil, func() {})
	}
	return s, nil
}

func (s *gameplayScene) View(width, height int) string { return s.rendered }

// pauseScene ------------------------------------------------------------------

type pauseScene struct{}

func newPauseScene() *pauseScene { return &pauseScene{} }

func (s *pauseScene) Name() string  { return PauseSceneName }
func (s *pauseScene) Init() tea.Cmd { return nil }
func (s *pauseScene) Update(msg tea.Msg) (scene.Scene, tea.Cmd) {
	return s, nil
}

func (s *pauseScene) View(width, height int) string {
	box := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 2)
	return box.Render("PAUSED  [esc] resume")
}
