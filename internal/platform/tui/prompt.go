package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const maxNameLength = 64

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("3")).
			MarginBottom(1)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			MarginTop(1)
)

// PromptModel asks for the name whose letters become obstacles.
type PromptModel struct {
	input     textinput.Model
	width     int
	height    int
	submitted bool
	results   bool
	quitting  bool
}

// NewPromptModel creates a prompt pre-filled with the given name.
func NewPromptModel(initial string) PromptModel {
	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.CharLimit = maxNameLength
	ti.Width = 32
	ti.SetValue(initial)
	ti.CursorEnd()
	ti.Focus()

	return PromptModel{input: ti}
}

// Init starts the cursor blink.
func (m PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.submitted = true
			return m, nil
		case tea.KeyTab:
			m.results = true
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt, centered when the window size is known.
func (m PromptModel) View() string {
	if m.quitting {
		return ""
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("NAME JUMPER"),
		"Every letter of your name is an obstacle.",
		"",
		m.input.View(),
		hintStyle.Render("enter to start • tab for results • esc to quit"),
	)

	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// Name returns the submitted name with surrounding whitespace removed.
// Inner spaces are kept; the session skips them when spawning glyphs.
func (m PromptModel) Name() string {
	return strings.TrimSpace(m.input.Value())
}

// Submitted reports whether the user pressed enter.
func (m PromptModel) Submitted() bool {
	return m.submitted
}

// WantsResults reports whether the user asked for the results board.
func (m PromptModel) WantsResults() bool {
	return m.results
}

// IsQuitting reports whether the user left the prompt.
func (m PromptModel) IsQuitting() bool {
	return m.quitting
}
