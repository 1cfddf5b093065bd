package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/davevdl/redline/internal/scene"
)

// Run boots the TUI program and blocks until it exits. The program loop is
// the cooperative scheduler that applies scene transitions and fires the
// host's activation event.
func Run(ctx context.Context, director *scene.Director, host Starter, themeName, version string) error {
	m := initialModel(ctx, director, host, themeName, version)
	program := tea.NewProgram(m, tea.WithContext(ctx))
	_, err := program.Run()
	return err
}
