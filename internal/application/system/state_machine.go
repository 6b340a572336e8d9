package system

import (
	"log/slog"

	"github.com/younwookim/loppy/internal/domain/entity"
)

// transitionFunc returns the next state given the actor's flags.
type transitionFunc func(a *entity.Actor) entity.ActorState

// StateMachine classifies the actor once per tick.
// Each state owns its own ordered transition checks.
type StateMachine struct {
	transitions map[entity.ActorState]transitionFunc
	logger      *slog.Logger
}

// NewStateMachine creates a new state machine.
func NewStateMachine(logger *slog.Logger) *StateMachine {
	return &StateMachine{
		transitions: map[entity.ActorState]transitionFunc{
			entity.StateIdle:          idleState,
			entity.StateRun:           runState,
			entity.StateAirborne:      airborneState,
			entity.StateOnWall:        onWallState,
			entity.StateOnLedge:       onLedgeState,
			entity.StateClimbingLedge: climbingLedgeState,
			entity.StateDashing:       dashingState,
			entity.StateGliding:       glidingState,
		},
		logger: logger,
	}
}

// Update evaluates the current state's transitions and returns the new state.
func (m *StateMachine) Update(a *entity.Actor) entity.ActorState {
	next, ok := m.transitions[a.State]
	if !ok {
		return a.State
	}

	state := next(a)
	if state != a.State {
		m.logger.Debug("actor state changed", "from", a.State, "to", state)
		a.State = state
	}
	return state
}

func idleState(a *entity.Actor) entity.ActorState {
	switch {
	case a.Dash.Dashing:
		return entity.StateDashing
	case !a.Contact.OnGround:
		return entity.StateAirborne
	case a.Input.X != 0:
		return entity.StateRun
	}
	return entity.StateIdle
}

func runState(a *entity.Actor) entity.ActorState {
	switch {
	case a.Dash.Dashing:
		return entity.StateDashing
	case !a.Contact.OnGround:
		return entity.StateAirborne
	case a.Velocity.X == 0:
		return entity.StateIdle
	}
	return entity.StateRun
}

func airborneState(a *entity.Actor) entity.ActorState {
	c := &a.Contact
	switch {
	case a.Dash.Dashing:
		return entity.StateDashing
	case a.Gliding:
		return entity.StateGliding
	case c.OnGround && a.Velocity.X == 0:
		return entity.StateIdle
	case c.OnGround:
		return entity.StateRun
	case c.OnWall:
		return entity.StateOnWall
	}
	return entity.StateAirborne
}

func onWallState(a *entity.Actor) entity.ActorState {
	c := &a.Contact
	switch {
	case c.ClimbingLedge:
		return entity.StateClimbingLedge
	case c.OnLedge:
		return entity.StateOnLedge
	case a.Dash.Dashing:
		return entity.StateDashing
	case !c.OnWall && !c.OnGround:
		return entity.StateAirborne
	case c.OnGround && a.Velocity.X == 0:
		return entity.StateIdle
	case c.OnGround:
		return entity.StateRun
	}
	return entity.StateOnWall
}

func onLedgeState(a *entity.Actor) entity.ActorState {
	c := &a.Contact
	switch {
	case c.ClimbingLedge:
		return entity.StateClimbingLedge
	case a.Dash.Dashing:
		return entity.StateDashing
	case !c.OnLedge && c.OnGround:
		return entity.StateIdle
	case !c.OnLedge && c.OnWall:
		return entity.StateOnWall
	case !c.OnLedge:
		return entity.StateAirborne
	}
	return entity.StateOnLedge
}

func climbingLedgeState(a *entity.Actor) entity.ActorState {
	if !a.Contact.ClimbingLedge {
		return entity.StateIdle
	}
	return entity.StateClimbingLedge
}

func dashingState(a *entity.Actor) entity.ActorState {
	c := &a.Contact
	switch {
	case a.Dash.Dashing:
		return entity.StateDashing
	case c.OnGround:
		return entity.StateRun
	case c.OnWall:
		return entity.StateOnWall
	}
	return entity.StateAirborne
}

func glidingState(a *entity.Actor) entity.ActorState {
	c := &a.Contact
	switch {
	case a.Dash.Dashing:
		return entity.StateDashing
	case c.OnGround:
		return entity.StateIdle
	case c.OnWall:
		return entity.StateOnWall
	case !a.Gliding:
		return entity.StateAirborne
	}
	return entity.StateGliding
}
