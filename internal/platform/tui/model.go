package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/name-jumper/internal/config"
	"github.com/vovakirdan/name-jumper/internal/core"
	"github.com/vovakirdan/name-jumper/internal/jump"
	"github.com/vovakirdan/name-jumper/internal/storage"
)

// Settings is everything a host model needs besides the player's name.
type Settings struct {
	Game    config.JumpConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // nil disables result persistence
	Logger  *log.Logger    // nil disables logging

	// ScreenshotDir is where ctrl+s writes text screenshots.
	// Empty disables screenshots.
	ScreenshotDir string
}

// DefaultScreenshotDir returns ~/.jumpgame/screenshots.
func DefaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".jumpgame", "screenshots")
}

// GameModel runs one session at a time and restarts it on request.
type GameModel struct {
	settings   Settings
	session    *jump.Session
	screen     *core.Screen
	keys       KeyMap
	help       help.Model
	input      core.InputLatch
	paused     bool
	saved      bool
	quitting   bool
	backToMenu bool
}

// NewGameModel starts a session for name.
func NewGameModel(name string, st Settings) (GameModel, error) {
	m := GameModel{
		settings: st,
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
	m.keys.Screenshot.SetEnabled(st.ScreenshotDir != "")
	m.screen = core.NewScreen(st.Runtime.ScreenW, core.Max(st.Runtime.ScreenH-1, 3))
	m.help.Width = st.Runtime.ScreenW

	if err := m.startSession(name); err != nil {
		return GameModel{}, err
	}
	return m, nil
}

func (m *GameModel) startSession(name string) error {
	session, err := jump.NewSession(name, m.settings.Game, NewCellMetrics(m.settings.Game.Obstacles),
		jump.WithLogger(m.settings.Logger))
	if err != nil {
		return err
	}

	m.session = session
	m.input.Clear()
	m.paused = false
	m.saved = false
	m.keys.setEnded(false)

	if m.settings.Logger != nil {
		m.settings.Logger.Debug("session started", "session", session.ID(), "name", name,
			"obstacles", session.Obstacles().Len())
	}
	return nil
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.settings.Runtime.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// resize only changes the view; world coordinates are independent of the
// terminal so the running session is kept.
func (m *GameModel) resize(w, h int) {
	m.settings.Runtime.ScreenW = w
	m.settings.Runtime.ScreenH = h
	m.screen.Resize(w, core.Max(h-1, 3))
	m.help.Width = w
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if err := m.saveScreenshot(); err != nil && m.settings.Logger != nil {
			m.settings.Logger.Warn("could not save screenshot", "error", err)
		}
		return m, nil
	}

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionJump:
		if !m.paused {
			m.input.Request()
		}
	case core.ActionPause:
		m.paused = !m.paused
	case core.ActionRestart:
		if err := m.startSession(m.session.Name()); err != nil {
			m.quitting = true
			return m, tea.Quit
		}
		// The tick loop stopped when the previous session ended
		return m, tickCmd(m.settings.Runtime.TickRate)
	case core.ActionBack:
		m.backToMenu = true
	}
	return m, nil
}

// handleTick advances the session by one tick. The loop stops once the
// session has ended and is restarted along with a new session.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.session.Outcome().Terminal() {
		return m, nil
	}
	if m.paused {
		return m, tickCmd(m.settings.Runtime.TickRate)
	}

	res := m.session.Step(&m.input)
	if res.Event != jump.EventNone {
		m.keys.setEnded(true)
		m.saveResult()
		return m, nil
	}
	return m, tickCmd(m.settings.Runtime.TickRate)
}

// saveResult records the finished session once.
func (m *GameModel) saveResult() {
	if m.saved {
		return
	}
	m.saved = true

	if m.settings.Store == nil {
		return
	}
	s := m.session
	_, err := m.settings.Store.SaveResult(storage.Result{
		SessionID: s.ID().String(),
		Name:      s.Name(),
		Outcome:   s.Outcome().String(),
		Ticks:     s.Tick(),
		Obstacles: s.Obstacles().Len(),
	})
	if err != nil && m.settings.Logger != nil {
		m.settings.Logger.Warn("could not save result", "session", s.ID(), "error", err)
	}
}

// saveScreenshot writes the current frame as plain text.
func (m *GameModel) saveScreenshot() error {
	m.draw()

	dir := m.settings.ScreenshotDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	filename := fmt.Sprintf("jump_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Errorf("cannot write screenshot: %w", err)
	}

	if m.settings.Logger != nil {
		m.settings.Logger.Info("screenshot saved", "path", path)
	}
	return nil
}

func (m *GameModel) draw() {
	DrawSnapshot(m.screen, m.session.Snapshot(), HUD{Name: m.session.Name(), Paused: m.paused})
}

// View renders the playfield and the help line.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Session returns the running session.
func (m GameModel) Session() *jump.Session {
	return m.session
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user asked to enter a different name.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// AppModel is the top-level model: name prompt -> game -> prompt, with
// the results board reachable from the prompt.
// The local host and every SSH connection each run one.
type AppModel struct {
	settings Settings
	prompt   PromptModel
	game     *GameModel
	results  *ResultsModel
	quitting bool
	err      error
}

// NewAppModel creates the top-level model. When askName is false the game
// starts straight away with name; otherwise the prompt is shown pre-filled
// with it.
func NewAppModel(st Settings, name string, askName bool) (AppModel, error) {
	if err := st.Game.Validate(); err != nil {
		return AppModel{}, err
	}

	m := AppModel{
		settings: st,
		prompt:   NewPromptModel(name),
	}
	if !askName {
		game, err := NewGameModel(name, st)
		if err != nil {
			return AppModel{}, err
		}
		m.game = &game
	}
	return m, nil
}

// Init initializes whichever view is active.
func (m AppModel) Init() tea.Cmd {
	if m.game != nil {
		return m.game.Init()
	}
	return m.prompt.Init()
}

// Update routes messages to the active view.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.settings.Runtime.ScreenW = wsm.Width
		m.settings.Runtime.ScreenH = wsm.Height
		// Keep the inactive prompt sized for when the game hands back
		if m.game != nil || m.results != nil {
			newPrompt, _ := m.prompt.Update(msg)
			if p, ok := newPrompt.(PromptModel); ok {
				m.prompt = p
			}
		}
	}

	if m.game != nil {
		return m.updateGame(msg)
	}
	if m.results != nil {
		return m.updateResults(msg)
	}
	return m.updatePrompt(msg)
}

func (m AppModel) updatePrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	newPrompt, cmd := m.prompt.Update(msg)
	if p, ok := newPrompt.(PromptModel); ok {
		m.prompt = p
	}

	if m.prompt.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.prompt.WantsResults() {
		m.prompt.results = false
		rm := NewResultsModel(m.settings.Store, m.settings.Runtime.ScreenW, m.settings.Runtime.ScreenH)
		m.results = &rm
		return m, rm.Init()
	}

	if m.prompt.Submitted() {
		game, err := NewGameModel(m.prompt.Name(), m.settings)
		if err != nil {
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
		m.game = &game
		return m, m.game.Init()
	}

	return m, cmd
}

func (m AppModel) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.results.Update(msg)
	if rm, ok := newModel.(ResultsModel); ok {
		m.results = &rm
	}

	if m.results.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.results.IsGoingBack() {
		m.results = nil
		return m, m.prompt.Init()
	}

	return m, cmd
}

func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gm, ok := newModel.(GameModel); ok {
		m.game = &gm
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		name := m.game.Session().Name()
		m.game = nil
		m.prompt = NewPromptModel(name)
		// Replay the size so the new prompt can center itself
		sized, _ := m.prompt.Update(tea.WindowSizeMsg{
			Width:  m.settings.Runtime.ScreenW,
			Height: m.settings.Runtime.ScreenH,
		})
		if p, ok := sized.(PromptModel); ok {
			m.prompt = p
		}
		return m, m.prompt.Init()
	}

	return m, cmd
}

// View renders the active view.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}
	if m.game != nil {
		return m.game.View()
	}
	if m.results != nil {
		return m.results.View()
	}
	return m.prompt.View()
}

// Err returns the error that ended the program, if any.
func (m AppModel) Err() error {
	return m.err
}

// Run starts the Bubble Tea program on the local terminal.
func Run(st Settings, name string, askName bool) error {
	model, err := NewAppModel(st, name, askName)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return err
	}
	if app, ok := final.(AppModel); ok && app.Err() != nil {
		return app.Err()
	}
	return nil
}
