package ui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/davevdl/redline/internal/dlog"
	"github.com/davevdl/redline/internal/scene"
	"github.com/davevdl/redline/internal/text"
)

// Starter is the activation hook the engine loop fires once at startup.
type Starter interface {
	Start()
}

// transitionMsg carries a pending transition from the director's queue into
// the update loop.
type transitionMsg struct {
	t *scene.Transition
}

// hostStartedMsg marks the one-shot activation of the hosted bootstrapper.
type hostStartedMsg struct{}

type model struct {
	ctx      context.Context
	director *scene.Director
	host     Starter

	// stack holds the active scene plus any additive overlays.
	stack []scene.Scene

	pal    palette
	styles struct {
		title  lipgloss.Style
		status lipgloss.Style
	}
	splash string
	status string

	width  int
	height int
}

func initialModel(ctx context.Context, director *scene.Director, host Starter, themeName, version string) model {
	m := model{
		ctx:      ctx,
		director: director,
		host:     host,
		pal:      paletteFor(themeName),
		splash:   renderMarkdown(text.BootMarkdown(version)),
	}
	m.styles.title = lipgloss.NewStyle().Bold(true).Foreground(m.pal.Accent)
	m.styles.status = lipgloss.NewStyle().Foreground(m.pal.Muted)
	return m
}

// startHost activates the singleton host. The construction/activation event
// happens exactly once, on the engine loop.
func startHost(host Starter) tea.Cmd {
	return func() tea.Msg {
		host.Start()
		return hostStartedMsg{}
	}
}

// awaitTransition blocks on the director queue; bubbletea runs it off-loop
// and feeds the result back as a message.
func awaitTransition(d *scene.Director) tea.Cmd {
	return func() tea.Msg {
		return transitionMsg{t: <-d.Requests()}
	}
}

// tea.Model implementation ---------------------------------------------------

func (m model) Init() tea.Cmd {
	return tea.Batch(startHost(m.host), awaitTransition(m.director))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case hostStartedMsg:
		return m, nil
	case transitionMsg:
		return m.applyTransition(msg.t)
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if len(m.stack) > 1 {
				m.stack = m.stack[:len(m.stack)-1]
				return m, nil
			}
		}
	}
	return m.forwardToTop(msg)
}

// applyTransition instantiates and activates the requested scene, then
// completes the handle so any waiter unblocks.
func (m model) applyTransition(t *scene.Transition) (tea.Model, tea.Cmd) {
	next := awaitTransition(m.director)
	s, err := m.director.Instantiate(t)
	if err != nil {
		dlog.Error("scene transition failed: "+err.Error(), t.ID)
		m.status = "transition failed: " + t.Name
		t.Complete(err)
		return m, next
	}
	if t.Additive {
		m.stack = append(m.stack, s)
	} else {
		m.stack = []scene.Scene{s}
	}
	m.status = ""
	t.Complete(nil)
	return m, tea.Batch(s.Init(), next)
}

// forwardToTop hands any other message to the topmost scene.
func (m model) forwardToTop(msg tea.Msg) (tea.Model, tea.Cmd) {
	if len(m.stack) == 0 {
		return m, nil
	}
	top := len(m.stack) - 1
	s, cmd := m.stack[top].Update(msg)
	m.stack[top] = s
	return m, cmd
}

func (m model) View() string {
	top := m.styles.title.Render("REDLINE")
	var body string
	if len(m.stack) == 0 {
		// Splash doubles as the halted view; a failed boot leaves the
		// process alive here with the diagnostics in the log sink.
		body = m.splash
	} else {
		views := make([]string, 0, len(m.stack))
		for _, s := range m.stack {
			views = append(views, s.View(m.width, m.height))
		}
		body = lipgloss.JoinVertical(lipgloss.Left, views...)
	}
	bottom := m.styles.status.Render(m.bottomBar())
	return lipgloss.JoinVertical(lipgloss.Left, top, body, bottom)
}

func (m model) bottomBar() string {
	parts := []string{"[ctrl+c] quit"}
	if len(m.stack) > 1 {
		parts = append(parts, "[esc] close overlay")
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return strings.Join(parts, "  ")
}
