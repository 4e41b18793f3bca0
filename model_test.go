package main

import (
	"math/rand"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaiqueGovani/blocktris/internal/tetris"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	session, err := tetris.New(10, 20, 2, tetris.NewMemoryStore(tetris.Settings{HighScore: 250}),
		tetris.WithRand(rand.New(rand.NewSource(3))))
	require.NoError(t, err)
	return NewModel(session)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestModelStartsPaused(t *testing.T) {
	m := newTestModel(t)
	assert.Nil(t, m.Init())
	assert.Equal(t, tetris.StateReady, m.session.State())

	view := m.View()
	assert.Contains(t, view, "Menu")
	assert.Contains(t, view, "High Score: 250")
}

func TestModelPauseToggleArmsTick(t *testing.T) {
	m := newTestModel(t)

	m, cmd := send(t, m, runes("p"))
	assert.Equal(t, tetris.StateRunning, m.session.State())
	assert.NotNil(t, cmd)
	assert.False(t, m.session.CanChangeDifficulty())

	m, cmd = send(t, m, runes("p"))
	assert.Equal(t, tetris.StatePaused, m.session.State())
	assert.Nil(t, cmd)
}

func TestModelTicks(t *testing.T) {
	m := newTestModel(t)
	tick := m.session.Resume()
	before := m.session.Piece().Bound(tetris.MinY)

	m, cmd := send(t, m, tickMsg{seq: tick.Seq + 10})
	assert.Nil(t, cmd, "stale tick")
	assert.Equal(t, before, m.session.Piece().Bound(tetris.MinY))

	m, cmd = send(t, m, tickMsg{seq: tick.Seq})
	assert.NotNil(t, cmd, "re-armed")
	assert.Equal(t, before+1, m.session.Piece().Bound(tetris.MinY))

	_, cmd = send(t, m, tickMsg{seq: tick.Seq})
	assert.Nil(t, cmd, "consumed tick")
}

func TestModelMovementKeys(t *testing.T) {
	m := newTestModel(t)
	start := m.session.Piece()

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, start, m.session.Piece(), "ignored while paused")

	m.session.Resume()
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, start.Bound(tetris.MinY)+1, m.session.Piece().Bound(tetris.MinY))

	if start.Bound(tetris.MaxX) < 9 {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
		assert.Equal(t, start.Bound(tetris.MaxX)+1, m.session.Piece().Bound(tetris.MaxX))
	}
	if m.session.Piece().Bound(tetris.MinX) > 0 {
		left := m.session.Piece().Bound(tetris.MinX)
		m, _ = send(t, m, runes("h"))
		assert.Equal(t, left-1, m.session.Piece().Bound(tetris.MinX))
	}
}

func TestModelDifficultySelection(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, runes("3"))
	assert.Equal(t, tetris.Hard, m.session.Difficulty())

	m, _ = send(t, m, runes("d"))
	assert.Equal(t, tetris.Extreme, m.session.Difficulty())
	assert.Contains(t, m.View(), "Extreme")

	m, _ = send(t, m, runes("p"))
	m, _ = send(t, m, runes("p"))
	m, _ = send(t, m, runes("1"))
	assert.Equal(t, tetris.Extreme, m.session.Difficulty())
	assert.NotEmpty(t, m.notice)
	assert.Contains(t, m.View(), "locked")
}

func TestModelResetAndQuit(t *testing.T) {
	m := newTestModel(t)
	m.session.Resume()
	m.lastDelta = 100

	m, _ = send(t, m, runes("r"))
	assert.Equal(t, 0, m.lastDelta)
	assert.Equal(t, 0, m.session.Score())

	_, cmd := send(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModelViewRunning(t *testing.T) {
	m := newTestModel(t)
	m.session.Resume()

	view := m.View()
	assert.Contains(t, view, "Score: 0")
	assert.Contains(t, view, "Speed: 750ms")
	assert.Equal(t, 21+2, strings.Count(renderBoard(m.session.Snapshot()), "\n")+1)
}

func TestModelViewTooSmall(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 10, Height: 5})
	assert.Contains(t, m.View(), "Terminal too small")
}

func TestLevelForKey(t *testing.T) {
	level, ok := levelForKey("4")
	assert.True(t, ok)
	assert.Equal(t, tetris.Extreme, level)
	_, ok = levelForKey("5")
	assert.False(t, ok)
	_, ok = levelForKey("0")
	assert.False(t, ok)
}
