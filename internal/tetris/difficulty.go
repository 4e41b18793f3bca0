package tetris

import (
	"fmt"
	"strings"
	"time"
)

// Difficulty names a preset.
type Difficulty string

const (
	Easy    Difficulty = "easy"
	Normal  Difficulty = "normal"
	Hard    Difficulty = "hard"
	Extreme Difficulty = "extreme"
)

// Preset bundles the tick speed and scoring parameters of a difficulty.
// MinTickInterval never exceeds TickInterval.
type Preset struct {
	ScoreMultiplier   float64
	TickInterval      time.Duration
	MinTickInterval   time.Duration
	TickDecreaseClear time.Duration
}

var presets = map[Difficulty]Preset{
	Easy: {
		ScoreMultiplier:   0.75,
		TickInterval:      1000 * time.Millisecond,
		MinTickInterval:   1000 * time.Millisecond,
		TickDecreaseClear: 0,
	},
	Normal: {
		ScoreMultiplier:   1,
		TickInterval:      750 * time.Millisecond,
		MinTickInterval:   500 * time.Millisecond,
		TickDecreaseClear: 5 * time.Millisecond,
	},
	Hard: {
		ScoreMultiplier:   1.5,
		TickInterval:      500 * time.Millisecond,
		MinTickInterval:   300 * time.Millisecond,
		TickDecreaseClear: 10 * time.Millisecond,
	},
	Extreme: {
		ScoreMultiplier:   2,
		TickInterval:      250 * time.Millisecond,
		MinTickInterval:   100 * time.Millisecond,
		TickDecreaseClear: 10 * time.Millisecond,
	},
}

// Difficulties returns the presets in menu order.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Normal, Hard, Extreme}
}

func (d Difficulty) Valid() bool {
	_, ok := presets[d]
	return ok
}

// Preset returns the parameters for d, falling back to Normal.
func (d Difficulty) Preset() Preset {
	if p, ok := presets[d]; ok {
		return p
	}
	return presets[Normal]
}

// Title is the capitalized display name.
func (d Difficulty) Title() string {
	if d == "" {
		return ""
	}
	s := string(d)
	return strings.ToUpper(s[:1]) + s[1:]
}

// Next cycles through the presets in menu order.
func (d Difficulty) Next() Difficulty {
	levels := Difficulties()
	for i, level := range levels {
		if level == d {
			return levels[(i+1)%len(levels)]
		}
	}
	return Normal
}

// ParseDifficulty accepts a preset name in any letter case.
func ParseDifficulty(name string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(name)))
	if !d.Valid() {
		return Normal, fmt.Errorf("%w: %q", ErrUnknownDifficulty, name)
	}
	return d, nil
}

// speedUp lowers interval by the preset's per-clear step, stopping at its floor.
func (p Preset) speedUp(interval time.Duration, cleared int) time.Duration {
	next := interval - p.TickDecreaseClear*time.Duration(cleared)
	if next < p.MinTickInterval {
		return p.MinTickInterval
	}
	return next
}

// points is the score added for clearing rows in one lock.
func (p Preset) points(cleared int) int {
	return int(float64(100*cleared)*p.ScoreMultiplier + 0.5)
}
