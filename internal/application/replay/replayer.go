package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jakecoffman/cp"

	"github.com/younwookim/loppy/internal/domain/entity"
)

// Replayer plays recorded input back one fixed tick at a time.
// Between Advance calls it answers input queries for the current tick.
type Replayer struct {
	data    ReplayData
	frame   int
	current entity.InputState
}

// NewReplayer creates a new replayer from replay data.
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file.
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open replay: %w", err)
	}
	defer func() { _ = file.Close() }()

	return DecodeReplay(file)
}

// DecodeReplay reads replay data from r.
func DecodeReplay(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != Version {
		return nil, fmt.Errorf("unsupported replay version %q", data.Version)
	}
	return &data, nil
}

// Advance loads the next tick's input. It returns false once the
// recording is exhausted, after which every action reads as released.
func (r *Replayer) Advance() bool {
	if r.frame >= len(r.data.Frames) {
		r.current = entity.InputState{Aim: r.current.Aim}
		return false
	}
	r.current = r.data.Frames[r.frame].State()
	r.frame++
	return true
}

// Snapshot returns the current tick's input.
func (r *Replayer) Snapshot() entity.InputState {
	return r.current
}

func (r *Replayer) IsActionHeld(a entity.Action) bool {
	return r.current.IsActionHeld(a)
}

func (r *Replayer) IsActionPressed(a entity.Action) bool {
	return r.current.IsActionPressed(a)
}

func (r *Replayer) WorldAimPoint() cp.Vector {
	return r.current.WorldAimPoint()
}

// Done reports whether every frame has been played.
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the number of frames played so far.
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames.
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Data returns the recording being played.
func (r *Replayer) Data() ReplayData {
	return r.data
}

// Reset rewinds to the first frame.
func (r *Replayer) Reset() {
	r.frame = 0
	r.current = entity.InputState{}
}
