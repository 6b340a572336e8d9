package entity

import "math"

// Gate bundles the activation bookkeeping of one ability.
//
// Timers count up from zero. A buffer or coyote window is open while its
// timer is below the configured window and its usable flag is set; both
// flags are one-shot and only contact events re-arm them.
type Gate struct {
	// CanUse is the ability's resource (dash charge, grapple charge)
	CanUse bool

	BufferUsable bool
	BufferTimer  float64

	CoyoteUsable bool
	CoyoteTimer  float64

	// ToConsume is set by a fresh press and cleared by the ability each tick
	ToConsume bool
}

// NewGate returns a gate with both windows closed, as if the last press and
// the last lost contact were long ago.
func NewGate() Gate {
	return Gate{
		BufferTimer: math.Inf(1),
		CoyoteTimer: math.Inf(1),
	}
}

// Press registers a fresh input press.
func (g *Gate) Press() {
	g.ToConsume = true
	g.BufferTimer = 0
}

// Tick advances both windows.
func (g *Gate) Tick(dt float64) {
	g.BufferTimer += dt
	g.CoyoteTimer += dt
}

// Buffered reports whether an earlier press is still honored.
func (g *Gate) Buffered(window float64) bool {
	return g.BufferUsable && g.BufferTimer < window
}

// Coyote reports whether the lost enabling condition is still honored.
func (g *Gate) Coyote(window float64) bool {
	return g.CoyoteUsable && g.CoyoteTimer < window
}

// Requested reports whether a fresh or buffered press is pending.
func (g *Gate) Requested(bufferWindow float64) bool {
	return g.ToConsume || g.Buffered(bufferWindow)
}

// ArmCoyote restarts the coyote window from zero.
func (g *Gate) ArmCoyote() {
	g.CoyoteTimer = 0
}
