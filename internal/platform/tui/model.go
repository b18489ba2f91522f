package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nordvik/icedrift/internal/engine"
	"github.com/nordvik/icedrift/internal/registry"
	"github.com/nordvik/icedrift/internal/storage"
)

// footerRows is the bottom area reserved for the bet readout and help line.
const footerRows = 1

// Model is the Bubble Tea model driving one game session.
type Model struct {
	game      registry.Game
	screen    *engine.Screen
	store     *storage.Store
	config    engine.RuntimeConfig
	keys      KeyMap
	help      help.Model
	gameState engine.GameState
	betDraft  float64
	lastTick  time.Time // Zero until the first tick arrives
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game. A nil store
// disables persistence; practice games never persist regardless.
func NewModel(game registry.Game, store *storage.Store, cfg engine.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:   game,
		screen: engine.NewScreen(cfg.ScreenW, cfg.ScreenH-footerRows),
		store:  store,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.game.Calibrate(m.game.Measure(m.config.ScreenW, m.config.ScreenH))
	// Note: betDraft is seeded on the first tick (value receiver limitation)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.persistBalance()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Raise):
		_, step := m.game.BetLimits()
		m.betDraft = m.clampDraft(m.betDraft + step)
		m.syncPlacedBet()

	case key.Matches(msg, m.keys.Lower):
		_, step := m.game.BetLimits()
		m.betDraft = m.clampDraft(m.betDraft - step)
		m.syncPlacedBet()

	case key.Matches(msg, m.keys.Bet):
		//nolint:errcheck // Rejections surface through the game's own message
		m.game.PlaceBet(m.betDraft)

	case key.Matches(msg, m.keys.Cancel):
		//nolint:errcheck // Rejections surface through the game's own message
		m.game.CancelBet()

	case key.Matches(msg, m.keys.CashOut):
		//nolint:errcheck // Rejections surface through the game's own message
		m.game.CashOut()

	case key.Matches(msg, m.keys.Start):
		//nolint:errcheck // Rejections surface through the game's own message
		m.game.ForceStart()
	}

	return m, nil
}

// clampDraft keeps the draft bet between the minimum bet and the balance.
func (m Model) clampDraft(v float64) float64 {
	min, _ := m.game.BetLimits()
	return engine.ClampF(v, min, m.gameState.Balance)
}

// syncPlacedBet re-places an already joined bet so the adjustment keys take
// effect immediately. A draft that was never placed stays a draft.
func (m *Model) syncPlacedBet() {
	if m.gameState.Phase == engine.PhaseBetting && m.gameState.Joined {
		//nolint:errcheck // Rejections surface through the game's own message
		m.game.PlaceBet(m.betDraft)
	}
}

// handleResize processes window resize events. Geometry is re-measured and
// recalibrated; the running round keeps its current speed until the next
// round starts.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-footerRows)
	m.help.Width = msg.Width

	m.game.Calibrate(m.game.Measure(msg.Width, msg.Height))

	return m, nil
}

// handleTick advances the simulation by the real elapsed time since the
// previous tick. Excess deltas are clamped inside the game itself.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	now := time.Time(msg)
	dt := now.Sub(m.lastTick)
	if m.lastTick.IsZero() {
		dt = time.Second / time.Duration(m.config.TickRate)
		min, _ := m.game.BetLimits()
		m.betDraft = min
	}
	m.lastTick = now

	result := m.game.Step(dt)
	m.gameState = result.State

	if result.Round != nil {
		m.saveRound(result.Round)
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRound persists a settled round and the resulting balance.
func (m *Model) saveRound(round *engine.RoundResult) {
	if m.store == nil || m.game.Practice() {
		return
	}

	//nolint:errcheck // Best-effort save, play continues regardless
	m.store.RecordRound(storage.RoundRecord{
		GameID:     m.game.ID(),
		Outcome:    round.Outcome.String(),
		Stake:      round.Stake,
		Multiplier: round.Multiplier,
		Payout:     round.Payout,
		SafeHits:   round.SafeHits,
		CashedOut:  round.CashedOut,
	})
	m.persistBalance()
}

// persistBalance writes the current wallet balance through to storage.
func (m *Model) persistBalance() {
	if m.store == nil || m.game.Practice() {
		return
	}
	//nolint:errcheck // Best-effort save
	m.store.SaveBalance(m.game.ID(), m.gameState.Balance)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := fmt.Sprintf(" bet %.2f  %s", m.betDraft, m.help.View(m.keys))
	return RenderScreen(m.screen) + "\n" + footer
}

// Run starts the Bubble Tea program with the given model and blocks until
// the session ends.
func Run(game registry.Game, store *storage.Store, cfg engine.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
