package entity

import "github.com/jakecoffman/cp"

// Action is a named input the controller understands.
type Action int

const (
	ActionUp Action = iota
	ActionDown
	ActionLeft
	ActionRight
	ActionJump
	ActionDash
	ActionGlide
	ActionGrapple
	ActionAlternateGrapple
	ActionCount
)

var actionNames = [ActionCount]string{
	ActionUp:               "up",
	ActionDown:             "down",
	ActionLeft:             "left",
	ActionRight:            "right",
	ActionJump:             "jump",
	ActionDash:             "dash",
	ActionGlide:            "glide",
	ActionGrapple:          "grapple",
	ActionAlternateGrapple: "alternateGrapple",
}

// String returns the action's binding name.
func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ParseAction resolves a binding name to an Action.
func ParseAction(name string) (Action, bool) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), true
		}
	}
	return 0, false
}

// InputState is one tick's input snapshot.
type InputState struct {
	Held    [ActionCount]bool
	Pressed [ActionCount]bool
	Aim     cp.Vector
}

// IsActionHeld reports whether the action is currently held.
func (s InputState) IsActionHeld(a Action) bool {
	if a < 0 || a >= ActionCount {
		return false
	}
	return s.Held[a]
}

// IsActionPressed reports whether the action became held this tick.
func (s InputState) IsActionPressed(a Action) bool {
	if a < 0 || a >= ActionCount {
		return false
	}
	return s.Pressed[a]
}

// WorldAimPoint returns the aim point in world space.
func (s InputState) WorldAimPoint() cp.Vector {
	return s.Aim
}

// Hold marks the action as held and, if it was not held before, pressed.
func (s *InputState) Hold(a Action) {
	if !s.Held[a] {
		s.Pressed[a] = true
	}
	s.Held[a] = true
}

// Release marks the action as no longer held.
func (s *InputState) Release(a Action) {
	s.Held[a] = false
}

// HeldMask packs the held flags into a bitmask.
func (s InputState) HeldMask() uint16 {
	return packMask(s.Held)
}

// PressedMask packs the pressed flags into a bitmask.
func (s InputState) PressedMask() uint16 {
	return packMask(s.Pressed)
}

// InputStateFromMasks rebuilds a snapshot from packed masks.
func InputStateFromMasks(held, pressed uint16, aim cp.Vector) InputState {
	return InputState{Held: unpackMask(held), Pressed: unpackMask(pressed), Aim: aim}
}

func packMask(flags [ActionCount]bool) uint16 {
	var m uint16
	for i, f := range flags {
		if f {
			m |= 1 << i
		}
	}
	return m
}

func unpackMask(m uint16) [ActionCount]bool {
	var flags [ActionCount]bool
	for i := range flags {
		flags[i] = m&(1<<i) != 0
	}
	return flags
}

// Axis combines two opposing actions into -1, 0 or +1.
func Axis(held func(Action) bool, negative, positive Action) float64 {
	var v float64
	if held(negative) {
		v--
	}
	if held(positive) {
		v++
	}
	return v
}
