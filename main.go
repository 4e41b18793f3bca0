package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/KaiqueGovani/blocktris/internal/tetris"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	columns := flag.Int("columns", 10, "board width in cells")
	rows := flag.Int("rows", 20, "visible board height in cells")
	cellSize := flag.Int("cell-size", 2, "cell width in terminal columns (1-4)")
	seed := flag.Int64("seed", 0, "random seed for piece generation, 0 uses the clock")
	settingsFlag := flag.String("settings", "", "settings file path (default: $"+settingsEnv+" or the user config dir)")
	difficulty := flag.String("difficulty", "", "starting difficulty: easy, normal, hard or extreme (default: last used)")
	flag.Parse()

	SetDebugLogPath(debugLogPathFromEnv())
	EnableDebugLogging(*debug)
	DebugLogf("blocktris start debug=%v columns=%d rows=%d", *debug, *columns, *rows)

	os.Exit(run(*columns, *rows, *cellSize, *seed, *settingsFlag, *difficulty))
}

func run(columns, rows, cellSize int, seed int64, settingsFlag, difficulty string) int {
	defer CloseDebugLog()

	var store tetris.SettingsStore
	path, err := resolveSettingsPath(settingsFlag)
	if err != nil {
		DebugLogf("settings path error, scores will not persist: %v", err)
		store = tetris.NewMemoryStore(tetris.Settings{})
	} else {
		DebugLogf("settings path %s", path)
		store = NewFileStore(path)
	}

	opts := []tetris.Option{tetris.WithLogger(DebugLogf)}
	if seed != 0 {
		opts = append(opts, tetris.WithRand(rand.New(rand.NewSource(seed))))
	}
	session, err := tetris.New(columns, rows, cellSize, store, opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if err := applyDifficulty(session, difficulty); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	program := tea.NewProgram(NewModel(session), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		DebugLogf("program error: %v", err)
		return 1
	}
	return 0
}

// applyDifficulty selects the preset named on the command line. An empty name
// keeps the persisted difficulty.
func applyDifficulty(session *tetris.Session, name string) error {
	if name == "" {
		return nil
	}
	level, err := tetris.ParseDifficulty(name)
	if err != nil {
		return err
	}
	return session.SelectDifficulty(level)
}
