package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaiqueGovani/blocktris/internal/tetris"
)

func TestApplyDifficulty(t *testing.T) {
	store := tetris.NewMemoryStore(tetris.Settings{Difficulty: tetris.Hard})

	tests := []struct {
		name    string
		flag    string
		want    tetris.Difficulty
		wantErr error
	}{
		{name: "empty keeps saved", flag: "", want: tetris.Hard},
		{name: "case insensitive", flag: " Extreme ", want: tetris.Extreme},
		{name: "unknown", flag: "nightmare", want: tetris.Hard, wantErr: tetris.ErrUnknownDifficulty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := tetris.New(10, 20, 2, store)
			require.NoError(t, err)
			require.NoError(t, session.SelectDifficulty(tetris.Hard))

			err = applyDifficulty(session, tt.flag)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, session.Difficulty())
		})
	}
}
