package system

import (
	"context"
	"log/slog"

	"github.com/jakecoffman/cp"

	"github.com/younwookim/loppy/internal/domain/entity"
	"github.com/younwookim/loppy/internal/infrastructure/config"
)

// VelocityMode selects which velocity component an outside force targets.
type VelocityMode int

const (
	// VelocityBurst targets the intentional velocity the abilities integrate.
	VelocityBurst VelocityMode = iota
	// VelocityDecay targets the external velocity, which fades on its own.
	VelocityDecay
)

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the controller's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Controller drives one actor: integration, collision, abilities and state.
type Controller struct {
	input    Input
	body     Body
	settings Settings
	clock    *TimeScale
	events   *Events
	logger   *slog.Logger

	actor *entity.Actor
	tick  Tick

	physics   *PhysicsSystem
	collision *CollisionSystem
	ledge     *LedgeClimbSystem
	jump      *JumpSystem
	dash      *DashSystem
	glide     *GlideSystem
	grapple   *GrappleSystem
	states    *StateMachine
}

// NewController creates a controller for an actor standing where body is.
func NewController(input Input, geometry Geometry, body Body, settings Settings, clock *TimeScale, opts ...Option) *Controller {
	c := &Controller{
		input:    input,
		body:     body,
		settings: settings,
		clock:    clock,
		events:   NewEvents(),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.actor = entity.NewActor(body.Position(), colliderShape(settings.Current().Physics))
	c.ledge = NewLedgeClimbSystem()
	c.physics = NewPhysicsSystem()
	c.collision = NewCollisionSystem(geometry, c.ledge)
	c.jump = NewJumpSystem()
	c.dash = NewDashSystem()
	c.glide = NewGlideSystem()
	c.grapple = NewGrappleSystem(geometry, clock)
	c.states = NewStateMachine(c.logger)

	if c.logger.Enabled(context.Background(), slog.LevelDebug) {
		c.events.Subscribe(func(ev entity.Event) {
			c.logger.Debug("actor event", "kind", ev.Kind, "active", ev.Active, "impact", ev.ImpactSpeed)
		})
	}
	return c
}

func colliderShape(p *config.PhysicsConfig) entity.CapsuleShape {
	return entity.CapsuleShape{
		Size:   p.Collider.Size.Vector(),
		Offset: p.Collider.Offset.Vector(),
	}
}

// Subscribe registers an observer for actor events.
func (c *Controller) Subscribe(fn Observer) ObserverID {
	return c.events.Subscribe(fn)
}

// Unsubscribe removes an observer.
func (c *Controller) Unsubscribe(id ObserverID) bool {
	return c.events.Unsubscribe(id)
}

// Actor exposes the actor state for read-only consumers such as renderers.
func (c *Controller) Actor() *entity.Actor {
	return c.actor
}

// State returns the actor's current state label.
func (c *Controller) State() entity.ActorState {
	return c.actor.State
}

// FocalPoint is the anchor a camera follows.
func (c *Controller) FocalPoint() cp.Vector {
	if c.actor.LedgeClimb.Active() {
		return c.actor.FocalPoint
	}
	return c.body.Position()
}

// ApplyVelocity adds v to the component selected by mode.
func (c *Controller) ApplyVelocity(v cp.Vector, mode VelocityMode) {
	if mode == VelocityBurst {
		c.actor.Velocity = c.actor.Velocity.Add(v)
		return
	}
	c.actor.ExternalVelocity = c.actor.ExternalVelocity.Add(v)
}

// SetVelocity overwrites the component selected by mode.
func (c *Controller) SetVelocity(v cp.Vector, mode VelocityMode) {
	if mode == VelocityBurst {
		c.actor.Velocity = v
		return
	}
	c.actor.ExternalVelocity = v
}

// ToggleControl grants or revokes player control.
// Without control no ability runs and the body keeps its last velocity.
func (c *Controller) ToggleControl(control bool) {
	c.actor.HasControl = control
}

// Reset puts a fresh actor at position.
func (c *Controller) Reset(position cp.Vector) {
	c.actor = entity.NewActor(position, colliderShape(c.settings.Current().Physics))
	c.body.SetPosition(position)
	c.body.SetVelocity(cp.Vector{})
	c.clock.Restore()
}

func (c *Controller) prepare(dt float64) *Tick {
	cfg := c.settings.Current()
	c.tick = Tick{
		DT:      dt,
		Actor:   c.actor,
		Body:    c.body,
		Input:   c.input,
		Events:  c.events,
		Physics: cfg.Physics,
		Unlocks: cfg.Unlocks,
	}
	return &c.tick
}

// FixedUpdate advances the actor by one fixed simulation step.
func (c *Controller) FixedUpdate(dt float64) {
	t := c.prepare(dt)
	a := c.actor

	a.Collider = colliderShape(t.Physics)
	a.Position = c.body.Position()
	c.readInput()

	a.Tick(dt)
	UpdateControlLoss(a, t.Physics)

	if a.LedgeClimb.Active() {
		c.ledge.Advance(t)
		c.states.Update(a)
		return
	}

	c.physics.Update(t)
	c.collision.Update(t)

	if a.HasControl {
		c.jump.Update(t)
		c.dash.Update(t)
		c.glide.Update(t)
		c.grapple.Update(t)
		c.grapple.UpdateAlternate(t)
		c.move(t)
	}

	c.states.Update(a)
}

// Frame advances per-rendered-frame work by unscaled frame time.
func (c *Controller) Frame(unscaledDT float64) {
	c.grapple.Frame(c.prepare(0), unscaledDT)
}

// readInput latches fresh presses into the ability gates and records the axes.
func (c *Controller) readInput() {
	a := c.actor
	if c.input.IsActionPressed(entity.ActionJump) {
		a.Jump.Gate.Press()
	}
	if c.input.IsActionPressed(entity.ActionDash) {
		a.Dash.Gate.Press()
	}
	if c.input.IsActionPressed(entity.ActionGrapple) {
		a.Grapple.Gate.Press()
	}
	if c.input.IsActionPressed(entity.ActionAlternateGrapple) {
		a.AlternateGrapple.Gate.Press()
	}
	a.SetInput(Axes(c.input))
}

// move hands the combined velocity to the body and lets external velocity fade.
func (c *Controller) move(t *Tick) {
	a := t.Actor
	c.body.SetVelocity(a.Velocity.Add(a.ExternalVelocity))
	a.ExternalVelocity = entity.MoveTowardsVector(a.ExternalVelocity, cp.Vector{}, t.Physics.External.VelocityDecay*t.DT)
}
