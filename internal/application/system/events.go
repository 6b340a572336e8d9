package system

import "github.com/younwookim/loppy/internal/domain/entity"

// Observer receives controller notifications.
type Observer func(entity.Event)

// ObserverID identifies a subscription.
type ObserverID uint64

type subscription struct {
	id ObserverID
	fn Observer
}

// Events is an ordered observer list.
// Emit calls observers synchronously in subscription order.
type Events struct {
	subs   []subscription
	nextID ObserverID
}

// NewEvents creates an empty observer list.
func NewEvents() *Events {
	return &Events{}
}

// Subscribe registers fn and returns its id.
func (e *Events) Subscribe(fn Observer) ObserverID {
	e.nextID++
	e.subs = append(e.subs, subscription{id: e.nextID, fn: fn})
	return e.nextID
}

// Unsubscribe removes a subscription, reporting whether it existed.
func (e *Events) Unsubscribe(id ObserverID) bool {
	for i, s := range e.subs {
		if s.id == id {
			// copy so an Emit in progress keeps its snapshot intact
			next := make([]subscription, 0, len(e.subs)-1)
			next = append(next, e.subs[:i]...)
			e.subs = append(next, e.subs[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of observers.
func (e *Events) Len() int {
	return len(e.subs)
}

// Emit delivers ev to every observer.
func (e *Events) Emit(ev entity.Event) {
	for _, s := range e.subs {
		s.fn(ev)
	}
}

func (e *Events) emit(kind entity.EventKind, active bool, impactSpeed float64) {
	e.Emit(entity.Event{Kind: kind, Active: active, ImpactSpeed: impactSpeed})
}

func (e *Events) fire(kind entity.EventKind) {
	e.Emit(entity.Event{Kind: kind})
}
