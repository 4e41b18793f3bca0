package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KaiqueGovani/blocktris/internal/tetris"
)

type Theme struct {
	BorderColor lipgloss.Color
	TextColor   lipgloss.Color
	AccentColor lipgloss.Color
	HiddenColor lipgloss.Color
}

var theme = Theme{
	BorderColor: lipgloss.Color("15"),
	TextColor:   lipgloss.Color("250"),
	AccentColor: lipgloss.Color("226"),
	HiddenColor: lipgloss.Color("238"),
}

func viewGame(m Model) string {
	snap := m.session.Snapshot()
	minWidth, minHeight := minGameSize(snap)
	if m.width > 0 && m.height > 0 && (m.width < minWidth || m.height < minHeight) {
		message := fmt.Sprintf("Terminal too small. Need at least %dx%d. Current %dx%d.", minWidth, minHeight, m.width, m.height)
		return center(m.width, m.height, message)
	}

	board := renderBoard(snap)
	var side string
	if snap.Paused() {
		side = renderPauseMenu(snap, m.notice)
	} else {
		side = renderInfo(snap, m.lastDelta)
	}
	side = lipgloss.NewStyle().PaddingLeft(2).Render(side)

	content := lipgloss.JoinHorizontal(lipgloss.Top, board, side)
	content = lipgloss.JoinVertical(lipgloss.Left, content, "", m.help.View(m.keys))
	return center(m.width, m.height, content)
}

// renderBoard draws every row including the hidden spawn row at the top.
func renderBoard(snap tetris.Snapshot) string {
	border := lipgloss.NewStyle().Foreground(theme.BorderColor)
	width := cellWidth(snap.CellSize)
	hidden := lipgloss.NewStyle().Foreground(theme.HiddenColor)
	empty := strings.Repeat(" ", width)
	hiddenText := strings.Repeat(".", width)

	var b strings.Builder
	b.WriteString(border.Render("+" + strings.Repeat("-", snap.Columns*width) + "+"))
	b.WriteString("\n")
	for y := 0; y <= snap.Rows; y++ {
		b.WriteString(border.Render("|"))
		for x := 0; x < snap.Columns; x++ {
			color, full := snap.At(tetris.Position{X: x, Y: y})
			switch {
			case full:
				b.WriteString(cellStyle(color).Render(strings.Repeat("▓", width)))
			case y == 0:
				b.WriteString(hidden.Render(hiddenText))
			default:
				b.WriteString(empty)
			}
		}
		b.WriteString(border.Render("|"))
		b.WriteString("\n")
	}
	b.WriteString(border.Render("+" + strings.Repeat("-", snap.Columns*width) + "+"))
	return b.String()
}

// cellStyle approximates the two-stop gradient: the bright stop as glyph
// color over the dark stop.
func cellStyle(color tetris.ColorPair) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color.Foreground)).
		Background(lipgloss.Color(color.Background))
}

func renderInfo(snap tetris.Snapshot, lastDelta int) string {
	var b strings.Builder
	b.WriteString(titleStyle(theme).Render("BLOCKTRIS"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Score: %d\n", snap.Score))
	b.WriteString(fmt.Sprintf("High Score: %d\n", snap.HighScore))
	b.WriteString(fmt.Sprintf("Difficulty: %s\n", snap.Difficulty.Title()))
	b.WriteString(fmt.Sprintf("Speed: %dms\n", snap.TickInterval.Milliseconds()))
	if lastDelta > 0 {
		b.WriteString("\n")
		b.WriteString(highlightStyle(theme).Render(fmt.Sprintf("+%d", lastDelta)))
		b.WriteString("\n")
	}
	if snap.Piece.Kind == tetris.KindExplosive {
		b.WriteString("\n")
		b.WriteString(warningStyle(theme).Render("EXPLOSIVE"))
		b.WriteString("\n")
	}
	return b.String()
}

func renderPauseMenu(snap tetris.Snapshot, notice string) string {
	title := "Menu"
	score := snap.Score
	if snap.State == tetris.StateGameOver {
		title = "Game Over"
		score = snap.LastScore
	}
	difficulty := "Difficulty: " + snap.Difficulty.Title()
	if !snap.CanChange {
		difficulty += " (locked)"
	}
	items := []string{
		fmt.Sprintf("High Score: %d", snap.HighScore),
		fmt.Sprintf("Your Score: %d", score),
		difficulty,
	}
	footer := "P to play, Q to quit"
	if snap.CanChange {
		footer = "P to play, D or 1-4 for difficulty, Q to quit"
	}
	menu := renderMenu(title, items, footer, theme)
	if notice == "" {
		return menu
	}
	return lipgloss.JoinVertical(lipgloss.Left, menu, "", warningStyle(theme).Render(notice))
}

func minGameSize(snap tetris.Snapshot) (int, int) {
	width := snap.Columns*cellWidth(snap.CellSize) + 2
	height := snap.Rows + 1 + 2
	return width, height
}

func titleStyle(theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.AccentColor).Bold(true)
}

func highlightStyle(theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.AccentColor).Bold(true)
}

func helpStyle(theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.TextColor)
}

func warningStyle(theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
}

func center(width, height int, content string) string {
	if width == 0 || height == 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func cellWidth(cellSize int) int {
	if cellSize < 1 {
		return 1
	}
	if cellSize > 4 {
		return 4
	}
	return cellSize
}

func renderMenu(title string, items []string, footer string, theme Theme) string {
	maxWidth := lipgloss.Width(title)
	for _, item := range items {
		if width := lipgloss.Width(item); width > maxWidth {
			maxWidth = width
		}
	}
	if width := lipgloss.Width(footer); width > maxWidth {
		maxWidth = width
	}
	lineStyle := lipgloss.NewStyle().Width(maxWidth).Align(lipgloss.Center)
	var b strings.Builder
	b.WriteString(lineStyle.Render(titleStyle(theme).Render(title)))
	b.WriteString("\n\n")
	for _, line := range items {
		b.WriteString(lineStyle.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(lineStyle.Render(helpStyle(theme).Render(footer)))
	return b.String()
}
