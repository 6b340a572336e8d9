package replay

import (
	"github.com/jakecoffman/cp"

	"github.com/younwookim/loppy/internal/domain/entity"
)

// Script builds replay data tick by tick, for scenario tests and demos.
//
//	data := replay.NewScript("demo", 1.0/60).Hold(entity.ActionRight).Wait(30).Data().
type Script struct {
	data    ReplayData
	held    [entity.ActionCount]bool
	pressed [entity.ActionCount]bool
	aim     cp.Vector
}

// NewScript starts an empty script.
func NewScript(stage string, fixedDT float64) *Script {
	return &Script{data: ReplayData{Version: Version, Stage: stage, FixedDT: fixedDT}}
}

// Hold presses actions from the next tick on.
func (s *Script) Hold(actions ...entity.Action) *Script {
	for _, a := range actions {
		if !s.held[a] {
			s.pressed[a] = true
		}
		s.held[a] = true
	}
	return s
}

// Release lets go of actions from the next tick on.
func (s *Script) Release(actions ...entity.Action) *Script {
	for _, a := range actions {
		s.held[a] = false
		s.pressed[a] = false
	}
	return s
}

// Aim moves the aim point.
func (s *Script) Aim(p cp.Vector) *Script {
	s.aim = p
	return s
}

// Wait appends ticks frames with the current input. Presses land on the first one.
func (s *Script) Wait(ticks int) *Script {
	for i := 0; i < ticks; i++ {
		state := entity.InputState{Held: s.held, Pressed: s.pressed, Aim: s.aim}
		s.data.Frames = append(s.data.Frames, NewFrameInput(len(s.data.Frames), state))
		s.pressed = [entity.ActionCount]bool{}
	}
	return s
}

// Data returns the scripted recording.
func (s *Script) Data() ReplayData {
	return s.data
}
