package tetris

import (
	"fmt"
	"math/rand"
	"time"
)

// State is the lifecycle position of a session.
type State int

const (
	// StateReady is the paused menu shown before a game starts.
	StateReady State = iota
	StateRunning
	StatePaused
	// StateGameOver is the paused menu after the stack overflowed. The board
	// is already cleared for the next game.
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game over"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Action is a discrete player input.
type Action int

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionSoftDrop
	ActionRotate
	ActionTogglePause
	ActionReset
)

// StepResult describes one update pass.
type StepResult struct {
	Moved      bool
	Locked     bool
	Exploded   bool
	Cleared    int
	ScoreDelta int
	GameOver   bool
}

// Tick is an armed gravity step. Only the most recently armed tick is live.
type Tick struct {
	Seq      uint64
	Interval time.Duration
}

// Logf matches the adapter's debug logger.
type Logf func(format string, args ...any)

type Option func(*Session)

// WithRand sets the piece generator's random source.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		s.rng = rng
	}
}

func WithLogger(logf Logf) Option {
	return func(s *Session) {
		if logf != nil {
			s.logf = logf
		}
	}
}

// Session owns one board, its active piece and the scoring state. It is not
// safe for concurrent use; the host serializes ticks and input.
type Session struct {
	board    *Board
	piece    Piece
	cellSize int
	store    SettingsStore
	rng      *rand.Rand
	logf     Logf

	difficulty Difficulty
	canChange  bool
	interval   time.Duration

	score     int
	highScore int
	lastScore int

	state State
	seq   uint64
	armed bool
}

// New builds a session in StateReady. Persisted settings that fail to load or
// hold invalid values fall back to a zero high score on Normal.
func New(columns, rows, cellSize int, store SettingsStore, opts ...Option) (*Session, error) {
	if columns < 4 || rows < 4 || cellSize < 1 {
		return nil, fmt.Errorf("%w: %dx%d cell size %d", ErrInvalidDimensions, columns, rows, cellSize)
	}
	s := &Session{
		board:     NewBoard(columns, rows),
		cellSize:  cellSize,
		store:     store,
		logf:      func(string, ...any) {},
		canChange: true,
		state:     StateReady,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.store == nil {
		s.store = NewMemoryStore(Settings{})
	}

	settings, err := s.store.LoadSettings()
	if err != nil {
		s.logf("settings load error: %v", err)
		settings = Settings{}
	}
	settings = settings.Normalize()
	s.highScore = settings.HighScore
	s.difficulty = settings.Difficulty
	s.interval = s.difficulty.Preset().TickInterval
	s.piece = SpawnPiece(s.rng, columns)
	s.logf("session start %dx%d difficulty=%s highScore=%d", columns, rows, s.difficulty, s.highScore)
	return s, nil
}

func (s *Session) State() State                { return s.state }
func (s *Session) Running() bool               { return s.state == StateRunning }
func (s *Session) Score() int                  { return s.score }
func (s *Session) HighScore() int              { return s.highScore }
func (s *Session) Difficulty() Difficulty      { return s.difficulty }
func (s *Session) CanChangeDifficulty() bool   { return s.canChange }
func (s *Session) TickInterval() time.Duration { return s.interval }

// Piece returns a copy of the active piece.
func (s *Session) Piece() Piece { return s.piece }

// Resume starts or continues play and arms the next tick. Difficulty stays
// locked until the next game over.
func (s *Session) Resume() Tick {
	if s.state != StateRunning {
		s.logf("resume from %s", s.state)
		s.state = StateRunning
		s.canChange = false
	}
	return s.Arm()
}

// Pause stops play and cancels the outstanding tick.
func (s *Session) Pause() {
	if s.state != StateRunning {
		return
	}
	s.state = StatePaused
	s.armed = false
}

// TogglePause pauses a running session or resumes any other. The returned
// tick is only meaningful when the session ends up running.
func (s *Session) TogglePause() (Tick, bool) {
	if s.state == StateRunning {
		s.Pause()
		return Tick{}, false
	}
	return s.Resume(), true
}

// Arm replaces any outstanding tick with a new one at the current interval.
func (s *Session) Arm() Tick {
	s.seq++
	s.armed = s.state == StateRunning
	return Tick{Seq: s.seq, Interval: s.interval}
}

// Tick runs one gravity step for the armed tick seq. Stale or cancelled ticks
// and ticks arriving while not running are rejected with ok == false.
func (s *Session) Tick(seq uint64) (StepResult, bool) {
	if !s.armed || seq != s.seq || s.state != StateRunning {
		return StepResult{}, false
	}
	s.armed = false
	return s.step(true), true
}

// Apply dispatches a player action. Movement is ignored unless running.
func (s *Session) Apply(a Action) StepResult {
	switch a {
	case ActionMoveLeft:
		return s.MoveLeft()
	case ActionMoveRight:
		return s.MoveRight()
	case ActionSoftDrop:
		return s.SoftDrop()
	case ActionRotate:
		return s.Rotate()
	case ActionTogglePause:
		s.TogglePause()
	case ActionReset:
		s.Reset()
	}
	return StepResult{}
}

// MoveLeft shifts the piece one column left when no block is on column 0.
// Settled cells are not checked.
func (s *Session) MoveLeft() StepResult {
	if s.state != StateRunning || s.piece.Bound(MinX) <= 0 {
		return StepResult{}
	}
	s.piece.Translate(-1, 0)
	return s.step(false)
}

// MoveRight shifts the piece one column right when no block is on the last
// column. Settled cells are not checked.
func (s *Session) MoveRight() StepResult {
	if s.state != StateRunning || s.piece.Bound(MaxX) >= s.board.Columns()-1 {
		return StepResult{}
	}
	s.piece.Translate(1, 0)
	return s.step(false)
}

func (s *Session) SoftDrop() StepResult {
	if s.state != StateRunning {
		return StepResult{}
	}
	return s.step(true)
}

func (s *Session) Rotate() StepResult {
	if s.state != StateRunning {
		return StepResult{}
	}
	s.piece.Rotate()
	return s.step(false)
}

// step is the single update pass shared by ticks and input.
func (s *Session) step(moveDown bool) StepResult {
	var result StepResult
	if s.board.Overflowed() {
		s.gameOver()
		result.GameOver = true
		return result
	}
	if !s.board.Resting(&s.piece) {
		if moveDown {
			s.piece.Translate(0, 1)
			result.Moved = true
		}
		return result
	}

	result.Locked = true
	result.Exploded = s.piece.Kind == KindExplosive
	s.board.Lock(&s.piece)
	if s.board.Overflowed() {
		s.gameOver()
		result.GameOver = true
		return result
	}
	result.Cleared = s.board.ClearFullRows()
	if result.Cleared > 0 {
		preset := s.difficulty.Preset()
		result.ScoreDelta = preset.points(result.Cleared)
		s.score += result.ScoreDelta
		s.interval = preset.speedUp(s.interval, result.Cleared)
	}
	s.logf("locked %s piece cleared=%d score=%d", s.piece.Kind, result.Cleared, s.score)
	s.piece = SpawnPiece(s.rng, s.board.Columns())
	return result
}

func (s *Session) gameOver() {
	s.logf("game over score=%d highScore=%d", s.score, s.highScore)
	if s.score > s.highScore {
		s.highScore = s.score
		if err := s.store.SaveHighScore(s.highScore); err != nil {
			s.logf("save high score error: %v", err)
		}
	}
	s.lastScore = s.score
	s.canChange = true
	s.state = StateGameOver
	s.armed = false
	s.resetPlay()
}

// Reset clears the board, score, speed and piece. Pause state and the
// difficulty lock are kept, except that a finished game returns to ready.
func (s *Session) Reset() {
	s.logf("reset in state %s", s.state)
	s.resetPlay()
	if s.state == StateGameOver {
		s.state = StateReady
	}
}

func (s *Session) resetPlay() {
	s.interval = s.difficulty.Preset().TickInterval
	s.piece = SpawnPiece(s.rng, s.board.Columns())
	s.board.Reset()
	s.score = 0
}

// SelectDifficulty switches preset and resets the tick interval to its base.
// It fails while a game is in progress.
func (s *Session) SelectDifficulty(level Difficulty) error {
	if !level.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownDifficulty, string(level))
	}
	if !s.canChange {
		return ErrDifficultyLocked
	}
	s.difficulty = level
	s.interval = level.Preset().TickInterval
	if err := s.store.SaveDifficulty(level); err != nil {
		s.logf("save difficulty error: %v", err)
	}
	s.logf("difficulty=%s interval=%s", level, s.interval)
	return nil
}
