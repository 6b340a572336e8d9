package replay

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/loppy/internal/domain/entity"
)

func TestFrameInput_PacksSnapshot(t *testing.T) {
	s := entity.InputState{Aim: cp.Vector{X: 3, Y: 4}}
	s.Hold(entity.ActionRight)
	s.Hold(entity.ActionJump)

	f := NewFrameInput(7, s)

	assert.Equal(t, 7, f.F)
	assert.Equal(t, uint16(1<<entity.ActionRight|1<<entity.ActionJump), f.H)
	assert.Equal(t, f.H, f.P)
	assert.Equal(t, s, f.State())
}

func TestRecorder_RoundTripThroughReplayer(t *testing.T) {
	rec := NewRecorder("demo", 1.0/60)

	first := entity.InputState{Aim: cp.Vector{X: 1, Y: 2}}
	first.Hold(entity.ActionDash)
	rec.Record(first)

	second := first
	second.Pressed = [entity.ActionCount]bool{}
	second.Release(entity.ActionDash)
	second.Hold(entity.ActionGlide)
	rec.Record(second)

	var buf bytes.Buffer
	require.NoError(t, rec.Encode(&buf))

	data, err := DecodeReplay(&buf)
	require.NoError(t, err)
	assert.Equal(t, "demo", data.Stage)
	assert.InDelta(t, 1.0/60, data.FixedDT, 1e-12)

	r := NewReplayer(*data)
	require.Equal(t, 2, r.TotalFrames())

	require.True(t, r.Advance())
	assert.True(t, r.IsActionPressed(entity.ActionDash))
	assert.True(t, r.IsActionHeld(entity.ActionDash))
	assert.Equal(t, cp.Vector{X: 1, Y: 2}, r.WorldAimPoint())

	require.True(t, r.Advance())
	assert.False(t, r.IsActionHeld(entity.ActionDash))
	assert.True(t, r.IsActionPressed(entity.ActionGlide))
	assert.True(t, r.Done())

	assert.False(t, r.Advance())
	assert.False(t, r.IsActionHeld(entity.ActionGlide), "an exhausted replay releases everything")
	assert.Equal(t, cp.Vector{X: 1, Y: 2}, r.WorldAimPoint(), "the aim point stays put")
	assert.Equal(t, 2, r.CurrentFrame())

	r.Reset()
	assert.Equal(t, 0, r.CurrentFrame())
	assert.False(t, r.Done())
}

func TestRecorder_Stop(t *testing.T) {
	rec := NewRecorder("demo", 1.0/60)
	rec.Record(entity.InputState{})
	rec.Stop()
	rec.Record(entity.InputState{})

	assert.False(t, rec.IsRecording())
	assert.Equal(t, 1, rec.FrameCount())
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")

	empty := NewRecorder("demo", 1.0/60)
	assert.ErrorIs(t, empty.Save(path), ErrEmptyRecording)

	rec := NewRecorder("demo", 1.0/60)
	rec.Record(entity.InputState{})
	require.NoError(t, rec.Save(path))

	data, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Len(t, data.Frames, 1)

	_, err = LoadReplay(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "failed to open replay")
}

func TestDecodeReplay_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"not json", "{", "failed to decode replay"},
		{"old version", `{"version":"1.0","frames":[]}`, "unsupported replay version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeReplay(strings.NewReader(tt.input))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestScript(t *testing.T) {
	data := NewScript("test", 1.0/60).
		Aim(cp.Vector{X: 9}).
		Hold(entity.ActionRight).
		Wait(2).
		Hold(entity.ActionJump).
		Wait(1).
		Release(entity.ActionRight, entity.ActionJump).
		Wait(1).
		Data()

	require.Len(t, data.Frames, 4)
	frames := make([]entity.InputState, len(data.Frames))
	for i, f := range data.Frames {
		assert.Equal(t, i, f.F)
		frames[i] = f.State()
	}

	assert.True(t, frames[0].IsActionPressed(entity.ActionRight))
	assert.False(t, frames[1].IsActionPressed(entity.ActionRight))
	assert.True(t, frames[1].IsActionHeld(entity.ActionRight))
	assert.True(t, frames[2].IsActionPressed(entity.ActionJump))
	assert.False(t, frames[2].IsActionPressed(entity.ActionRight), "holding again does not re-press")
	assert.False(t, frames[3].IsActionHeld(entity.ActionRight))
	assert.Equal(t, cp.Vector{X: 9}, frames[3].WorldAimPoint())
}
