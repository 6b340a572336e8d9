package system

import (
	"github.com/jakecoffman/cp"

	"github.com/younwookim/loppy/internal/domain/entity"
	"github.com/younwookim/loppy/internal/infrastructure/config"
)

const testDT = 1.0 / 60

// fakeGeometry answers queries through optional callbacks; nil callbacks miss
type fakeGeometry struct {
	sweep   func(shape entity.Capsule, dir cp.Vector, maxDistance float64) (entity.Hit, bool)
	overlap func(shape entity.Capsule) bool
	raycast func(origin, dir cp.Vector, maxDistance float64, mask entity.LayerMask) (entity.Hit, bool)
}

func (g *fakeGeometry) SweepCapsule(shape entity.Capsule, dir cp.Vector, maxDistance float64, mask entity.LayerMask) (entity.Hit, bool) {
	if g.sweep == nil || !mask.Has(entity.LayerTerrain) {
		return entity.Hit{}, false
	}
	return g.sweep(shape, dir, maxDistance)
}

func (g *fakeGeometry) OverlapCapsule(shape entity.Capsule, mask entity.LayerMask) bool {
	if g.overlap == nil {
		return false
	}
	return g.overlap(shape)
}

func (g *fakeGeometry) Raycast(origin, dir cp.Vector, maxDistance float64, mask entity.LayerMask) (entity.Hit, bool) {
	if g.raycast == nil {
		return entity.Hit{}, false
	}
	return g.raycast(origin, dir, maxDistance, mask)
}

type fakeBody struct {
	position cp.Vector
	velocity cp.Vector
}

func (b *fakeBody) Position() cp.Vector     { return b.position }
func (b *fakeBody) SetPosition(p cp.Vector) { b.position = p }
func (b *fakeBody) SetVelocity(v cp.Vector) { b.velocity = v }

type fakeCollider struct {
	valid bool
	point cp.Vector
}

func (c *fakeCollider) Valid() bool                      { return c.valid }
func (c *fakeCollider) ClosestPoint(cp.Vector) cp.Vector { return c.point }

// eventLog records every event in emission order
type eventLog struct {
	events []entity.Event
}

func (l *eventLog) observe(ev entity.Event) {
	l.events = append(l.events, ev)
}

func (l *eventLog) kinds() []entity.EventKind {
	kinds := make([]entity.EventKind, 0, len(l.events))
	for _, ev := range l.events {
		kinds = append(kinds, ev.Kind)
	}
	return kinds
}

func (l *eventLog) last() entity.Event {
	if len(l.events) == 0 {
		return entity.Event{Kind: -1}
	}
	return l.events[len(l.events)-1]
}

// newTestTick builds a tick around a fresh actor at the origin using the default tuning
func newTestTick() (*Tick, *entity.InputState, *eventLog) {
	physics := config.DefaultPhysics()
	unlocks := config.DefaultUnlocks()
	in := &entity.InputState{}
	log := &eventLog{}
	events := NewEvents()
	events.Subscribe(log.observe)

	a := entity.NewActor(cp.Vector{}, colliderShape(&physics))
	return &Tick{
		DT:      testDT,
		Actor:   a,
		Body:    &fakeBody{},
		Input:   in,
		Events:  events,
		Physics: &physics,
		Unlocks: &unlocks,
	}, in, log
}
