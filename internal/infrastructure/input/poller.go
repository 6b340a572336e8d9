// Package input turns ebiten keyboard and mouse state into controller input snapshots.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/younwookim/loppy/internal/domain/entity"
)

// Device is the raw input source. The ebiten device is the default.
type Device interface {
	IsKeyPressed(key ebiten.Key) bool
	IsMouseButtonPressed(button ebiten.MouseButton) bool
	CursorPosition() (x, y int)
}

type ebitenDevice struct{}

func (ebitenDevice) IsKeyPressed(key ebiten.Key) bool { return ebiten.IsKeyPressed(key) }

func (ebitenDevice) IsMouseButtonPressed(button ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(button)
}

func (ebitenDevice) CursorPosition() (int, int) { return ebiten.CursorPosition() }

// ScreenToWorld converts a cursor position into world space.
type ScreenToWorld func(x, y float64) cp.Vector

// Poller samples bound controls once per rendered frame.
//
// Presses are latched until the next Snapshot, so a press on a frame
// that runs no fixed tick still reaches the controller.
type Poller struct {
	bindings *Bindings
	device   Device
	toWorld  ScreenToWorld

	held    [entity.ActionCount]bool
	pressed [entity.ActionCount]bool
	aim     cp.Vector

	pauseHeld    bool
	pausePressed bool
}

// Option configures a Poller.
type Option func(*Poller)

// WithDevice replaces the ebiten device.
func WithDevice(d Device) Option {
	return func(p *Poller) {
		p.device = d
	}
}

// NewPoller creates a poller reading the given bindings.
func NewPoller(bindings *Bindings, opts ...Option) *Poller {
	p := &Poller{
		bindings: bindings,
		device:   ebitenDevice{},
		toWorld:  func(x, y float64) cp.Vector { return cp.Vector{X: x, Y: y} },
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SetScreenToWorld sets the cursor transform, usually from the camera each frame.
func (p *Poller) SetScreenToWorld(fn ScreenToWorld) {
	if fn != nil {
		p.toWorld = fn
	}
}

// SetBindings swaps the bindings, for example after a config reload.
func (p *Poller) SetBindings(b *Bindings) {
	p.bindings = b
}

// Poll samples the device. Call once per rendered frame.
func (p *Poller) Poll() {
	for a := entity.Action(0); a < entity.ActionCount; a++ {
		held := p.anyPressed(p.bindings.Controls(a))
		if held && !p.held[a] {
			p.pressed[a] = true
		}
		p.held[a] = held
	}

	pause := p.anyPressed(p.bindings.pause)
	if pause && !p.pauseHeld {
		p.pausePressed = true
	}
	p.pauseHeld = pause

	x, y := p.device.CursorPosition()
	p.aim = p.toWorld(float64(x), float64(y))
}

func (p *Poller) anyPressed(controls []Control) bool {
	for _, c := range controls {
		if c.IsMouse {
			if p.device.IsMouseButtonPressed(c.Button) {
				return true
			}
			continue
		}
		if p.device.IsKeyPressed(c.Key) {
			return true
		}
	}
	return false
}

// Snapshot returns the input for one fixed tick and clears the latched presses.
func (p *Poller) Snapshot() entity.InputState {
	s := entity.InputState{Held: p.held, Pressed: p.pressed, Aim: p.aim}
	p.pressed = [entity.ActionCount]bool{}
	return s
}

// Held returns the held actions and aim of the last poll. Latched presses
// are left for the next Snapshot.
func (p *Poller) Held() entity.InputState {
	return entity.InputState{Held: p.held, Aim: p.aim}
}

// PausePressed reports, once, that pause was pressed since the last call.
func (p *Poller) PausePressed() bool {
	pressed := p.pausePressed
	p.pausePressed = false
	return pressed
}
