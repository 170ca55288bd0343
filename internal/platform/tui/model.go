// Package tui provides the Bubble Tea front end for blockfall: key
// bindings, screen rendering, local play and the SSH server.
package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/engine"
	"github.com/vovakirdan/blockfall/internal/games/tetris"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// snapshotMsg carries the latest snapshot published by the loop.
type snapshotMsg tetris.Snapshot

// loopDoneMsg is sent once the loop has exited.
type loopDoneMsg struct{}

// waitForSnapshot blocks on the loop's snapshot channel.
func waitForSnapshot(loop *engine.Loop) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-loop.Snapshots()
		if !ok {
			return loopDoneMsg{}
		}
		return snapshotMsg(snap)
	}
}

// Model is the Bubble Tea model for a running game. It never touches the
// game directly: keys become commands on the loop and the view draws the
// last snapshot received.
type Model struct {
	loop     *engine.Loop
	screen   *core.Screen
	snap     tetris.Snapshot
	ready    bool
	keys     KeyMap
	help     help.Model
	width    int
	height   int
	quitting bool
}

// NewModel creates a model for the given loop and terminal size.
func NewModel(loop *engine.Loop, width, height int) Model {
	h := help.New()
	h.Width = width

	return Model{
		loop:   loop,
		screen: core.NewScreen(width, max(0, height-1)),
		keys:   DefaultKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
}

// Init starts listening for snapshots.
func (m Model) Init() tea.Cmd {
	return waitForSnapshot(m.loop)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case snapshotMsg:
		m.snap = tetris.Snapshot(msg)
		m.ready = true
		return m, waitForSnapshot(m.loop)

	case loopDoneMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		//nolint:errcheck // The loop may already be gone
		m.loop.Send(core.ActionQuit)
		return m, tea.Quit
	}

	if err := m.loop.Send(action); errors.Is(err, engine.ErrStopped) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the last snapshot and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Starting..."
	}

	helpView := helpStyle.Render(m.help.View(m.keys))
	m.screen.Resize(m.width, max(0, m.height-lipgloss.Height(helpView)))

	tetris.Render(m.screen, m.snap)
	return RenderScreen(m.screen) + "\n" + helpView
}

// Run plays a local game until the player quits or ctx is cancelled.
func Run(ctx context.Context, opts SessionOptions) error {
	sess := NewSession(opts)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errc := make(chan error, 1)
	go func() { errc <- sess.Run(ctx) }()

	p := tea.NewProgram(
		sess.NewModel(),
		tea.WithAltScreen(),
	)
	_, runErr := p.Run()

	cancel()
	loopErr := <-errc

	if runErr != nil {
		return runErr
	}
	if loopErr != nil && !errors.Is(loopErr, context.Canceled) {
		return loopErr
	}
	return nil
}
