package tetris

import (
	"errors"
	"sync"
)

var (
	ErrInvalidDimensions = errors.New("invalid board dimensions")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrDifficultyLocked  = errors.New("difficulty cannot change during a game")
)

// Settings is what survives between sessions.
type Settings struct {
	HighScore  int        `json:"highScore"`
	Difficulty Difficulty `json:"difficulty"`
}

// Normalize replaces invalid values with defaults.
func (s Settings) Normalize() Settings {
	if s.HighScore < 0 {
		s.HighScore = 0
	}
	if !s.Difficulty.Valid() {
		s.Difficulty = Normal
	}
	return s
}

// SettingsStore persists the high score and the selected difficulty.
type SettingsStore interface {
	LoadSettings() (Settings, error)
	SaveHighScore(score int) error
	SaveDifficulty(level Difficulty) error
}

// MemoryStore is a SettingsStore that keeps everything in memory.
type MemoryStore struct {
	mu       sync.Mutex
	settings Settings
}

func NewMemoryStore(initial Settings) *MemoryStore {
	return &MemoryStore{settings: initial}
}

func (m *MemoryStore) LoadSettings() (Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings, nil
}

func (m *MemoryStore) SaveHighScore(score int) error {
	m.mu.Lock()
	m.settings.HighScore = score
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) SaveDifficulty(level Difficulty) error {
	m.mu.Lock()
	m.settings.Difficulty = level
	m.mu.Unlock()
	return nil
}
