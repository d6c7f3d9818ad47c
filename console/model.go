package console

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type Mode string

const (
	Normal Mode = "normal"
	Insert Mode = "insert"
)

var (
	selectedItemStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))
	defaultItemStyle  = lipgloss.NewStyle()
	errorStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
	statusStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

func boxStyle() lipgloss.Style {
	return lipgloss.
		NewStyle().
		BorderForeground(lipgloss.Color("36")).
		BorderStyle(lipgloss.NormalBorder()).
		Padding(0).
		Margin(0)
}

type model struct {
	width  int
	height int

	mode Mode

	ctx            context.Context
	app            *App
	items          []string
	currentItemIdx int

	history []string
	status  string
	failed  bool

	input    textinput.Model
	viewport *viewport.Model
}

// doneMsg reports that the app context ended, with its cause.
type doneMsg struct{ err error }

func initialModel(ctx context.Context, app *App) model {
	ti := textinput.New()
	ti.Placeholder = "..."
	ti.Prompt = "> "

	vp := viewport.New(60, 20)

	m := model{
		mode:     Normal,
		ctx:      ctx,
		app:      app,
		input:    ti,
		viewport: &vp,
	}
	m.refresh()
	return m
}

// RunTUI shows the list in a full-screen terminal UI until the user quits
// or ctx is done. A cancellation cause other than context.Canceled is
// returned.
func RunTUI(ctx context.Context, app *App) error {
	_, err := tea.NewProgram(initialModel(ctx, app), tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if cause := context.Cause(ctx); cause != nil && !errors.Is(cause, context.Canceled) {
		return cause
	}
	return nil
}

func (m model) Init() tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		<-ctx.Done()
		return doneMsg{context.Cause(ctx)}
	}
}

func (m model) View() string {
	status := statusStyle.Render(m.status)
	if m.failed {
		status = errorStyle.Render(m.status)
	}

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Left,
		lipgloss.Top,

		lipgloss.JoinVertical(
			lipgloss.Left,
			lipgloss.JoinHorizontal(
				lipgloss.Top,
				boxStyle().Render(m.headerView()),
				boxStyle().Width(60).Render(m.input.View()),
			),
			boxStyle().Width(m.viewport.Width).Render(m.viewport.View()),
			status,
		),
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case doneMsg:
		m.setStatus("", msg.err)
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.width = msg.Width
		m.viewport.Width = max(20, msg.Width-4)
		m.viewport.Height = max(5, msg.Height-8)
		m.updateViewport()

	case tea.KeyMsg:
		switch m.mode {
		case Normal:
			switch msg.String() {
			case "i", "f":
				m.mode = Insert
				cmd = m.input.Focus()
			case "k", "up":
				m.LineUp()
			case "j", "down":
				m.LineDown()
			case "x":
				if len(m.items) == 0 {
					return m, nil
				}
				out, err := m.app.RemoveAt(m.currentItemIdx)
				m.setStatus(out, err)
				m.refresh()
			case "ctrl+c", "q":
				return m, tea.Quit
			}

		case Insert:
			switch msg.String() {
			case "enter":
				val := m.input.Value()
				if strings.TrimSpace(val) == "" {
					break
				}
				m.history = append(m.history, val)
				m.input.Reset()

				out, err := m.app.Process(val)
				if isQuit(commandWord(val)) {
					return m, tea.Quit
				}
				m.setStatus(out, err)
				m.refresh()
			case "ctrl+n":
				m.input.SetValue(m.HistoryDown())
			case "ctrl+p":
				m.input.SetValue(m.HistoryUp())
			case "esc":
				m.mode = Normal
				m.input.Reset()
				m.input.Blur()
			default:
				m.input, cmd = m.input.Update(msg)
			}
		}
	}

	return m, cmd
}

func commandWord(val string) string {
	cmd, _, _ := commandParse(val)
	return cmd
}

func (m *model) setStatus(out string, err error) {
	m.failed = err != nil
	if err != nil {
		m.status = err.Error()
		return
	}
	if i := strings.IndexByte(out, '\n'); i >= 0 {
		out = out[:i] + " ..."
	}
	m.status = out
}

// refresh reloads the items from the app and keeps the cursor in range.
func (m *model) refresh() {
	m.items = m.app.Values()
	m.currentItemIdx = min(m.currentItemIdx, len(m.items)-1)
	m.currentItemIdx = max(m.currentItemIdx, 0)
	m.updateViewport()
}

func (m *model) LineDown() {
	if m.currentItemIdx < len(m.items)-1 {
		m.currentItemIdx++
		m.updateViewport()
	}
}

func (m *model) LineUp() {
	if m.currentItemIdx > 0 {
		m.currentItemIdx--
		m.updateViewport()
	}
}

func (m *model) HistoryUp() string {
	size := len(m.history)
	if size == 0 {
		return ""
	}
	item := m.history[size-1]
	m.history = append([]string{item}, m.history[:size-1]...)
	return item
}

func (m *model) HistoryDown() string {
	if len(m.history) == 0 {
		return ""
	}
	item := m.history[0]
	m.history = append(m.history[1:], item)
	return item
}

func (m *model) updateViewport() {
	out := make([]string, 0, len(m.items))
	for i, v := range m.items {
		s := defaultItemStyle
		if i == m.currentItemIdx {
			s = selectedItemStyle
		}
		out = append(out, s.Render(fmt.Sprintf("%4d  %s", i, v)))
	}
	m.viewport.SetContent(strings.Join(out, "\n"))

	// keep the cursor visible
	switch {
	case m.currentItemIdx < m.viewport.YOffset:
		m.viewport.SetYOffset(m.currentItemIdx)
	case m.currentItemIdx >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(m.currentItemIdx - m.viewport.Height + 1)
	}
}

func (m model) headerView() string {
	return fmt.Sprintf("%s %d", m.mode, len(m.items))
}
