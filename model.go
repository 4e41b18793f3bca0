package main

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/KaiqueGovani/blocktris/internal/tetris"
)

// tickMsg carries the sequence number of the tick that produced it so that
// ticks cancelled by a pause or a re-arm are dropped.
type tickMsg struct {
	seq uint64
}

type Model struct {
	session   *tetris.Session
	keys      keyMap
	help      help.Model
	width     int
	height    int
	notice    string
	lastDelta int
}

func NewModel(session *tetris.Session) Model {
	return Model{
		session: session,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
}

// Init starts on the paused menu, so there is no tick to schedule yet.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tickMsg:
		result, ok := m.session.Tick(msg.seq)
		if !ok {
			return m, nil
		}
		m.observe(result)
		if m.session.Running() {
			return m, tickCmd(m.session.Arm())
		}
		return m, nil
	case tea.KeyMsg:
		return m, m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) View() string {
	return viewGame(m)
}

func tickCmd(tick tetris.Tick) tea.Cmd {
	return tea.Tick(tick.Interval, func(time.Time) tea.Msg { return tickMsg{seq: tick.Seq} })
}

func (m *Model) updateKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	case key.Matches(msg, m.keys.Pause):
		m.notice = ""
		tick, running := m.session.TogglePause()
		if !running {
			DebugLogf("paused score=%d", m.session.Score())
			return nil
		}
		return tickCmd(tick)
	case key.Matches(msg, m.keys.Reset):
		m.notice = ""
		m.lastDelta = 0
		m.session.Reset()
		return nil
	case key.Matches(msg, m.keys.Difficulty):
		m.selectDifficulty(m.session.Difficulty().Next())
		return nil
	case key.Matches(msg, m.keys.Level):
		if level, ok := levelForKey(msg.String()); ok {
			m.selectDifficulty(level)
		}
		return nil
	}

	action, ok := m.actionFor(msg)
	if !ok {
		return nil
	}
	m.observe(m.session.Apply(action))
	return nil
}

func (m *Model) actionFor(msg tea.KeyMsg) (tetris.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.MoveLeft):
		return tetris.ActionMoveLeft, true
	case key.Matches(msg, m.keys.MoveRight):
		return tetris.ActionMoveRight, true
	case key.Matches(msg, m.keys.SoftDrop):
		return tetris.ActionSoftDrop, true
	case key.Matches(msg, m.keys.Rotate):
		return tetris.ActionRotate, true
	}
	return 0, false
}

func (m *Model) selectDifficulty(level tetris.Difficulty) {
	err := m.session.SelectDifficulty(level)
	switch {
	case errors.Is(err, tetris.ErrDifficultyLocked):
		m.notice = "Difficulty is locked until game over."
	case err != nil:
		DebugLogf("select difficulty error: %v", err)
		m.notice = err.Error()
	default:
		m.notice = ""
	}
}

func (m *Model) observe(result tetris.StepResult) {
	if result.ScoreDelta > 0 {
		m.lastDelta = result.ScoreDelta
	}
	if result.Exploded {
		DebugLogf("explosive piece detonated")
	}
	if result.GameOver {
		DebugLogf("game over final=%d best=%d", m.session.Snapshot().LastScore, m.session.HighScore())
		m.lastDelta = 0
	}
}
