package main

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/KaiqueGovani/blocktris/internal/tetris"
)

// FileStore keeps the high score and difficulty in a JSON file.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// LoadSettings returns zero settings when the file does not exist yet.
func (f *FileStore) LoadSettings() (tetris.Settings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.read()
}

func (f *FileStore) SaveHighScore(score int) error {
	return f.update(func(s *tetris.Settings) {
		s.HighScore = score
	})
}

func (f *FileStore) SaveDifficulty(level tetris.Difficulty) error {
	return f.update(func(s *tetris.Settings) {
		s.Difficulty = level
	})
}

func (f *FileStore) read() (tetris.Settings, error) {
	settings := tetris.Settings{}
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return settings, err
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		return tetris.Settings{}, err
	}
	return settings, nil
}

// update rewrites the file with one field changed. A corrupt file is replaced.
func (f *FileStore) update(apply func(*tetris.Settings)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	settings, err := f.read()
	if err != nil {
		DebugLogf("settings read before write failed, rewriting: %v", err)
		settings = tetris.Settings{}
	}
	apply(&settings)
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0o644)
}
