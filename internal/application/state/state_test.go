package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameState_String(t *testing.T) {
	tests := []struct {
		state    GameState
		expected string
	}{
		{StatePlaying, "Playing"},
		{StatePaused, "Paused"},
		{StateReplaying, "Replaying"},
		{GameState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestGameState_Simulating(t *testing.T) {
	assert.True(t, StatePlaying.Simulating())
	assert.True(t, StateReplaying.Simulating())
	assert.False(t, StatePaused.Simulating())
}

func TestFlow_TogglePause(t *testing.T) {
	tests := []struct {
		name  string
		start GameState
	}{
		{"from playing", StatePlaying},
		{"from replaying", StateReplaying},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFlow(tt.start)

			f.TogglePause()
			assert.Equal(t, StatePaused, f.Current())

			f.TogglePause()
			assert.Equal(t, tt.start, f.Current())
		})
	}
}

func TestFlow_SetWhilePaused(t *testing.T) {
	f := NewFlow(StateReplaying)
	f.TogglePause()

	// the replay ran out underneath the pause
	f.Set(StatePlaying)
	assert.Equal(t, StatePaused, f.Current())

	f.TogglePause()
	assert.Equal(t, StatePlaying, f.Current())
}
