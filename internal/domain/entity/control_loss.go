package entity

import "math"

// ControlLoss is a recovering [0,1] multiplier on horizontal authority.
// It drops to 0 when its burst fires and climbs linearly back to 1.
type ControlLoss struct {
	Timer      float64
	Multiplier float64
}

// NewControlLoss returns a fully recovered multiplier.
func NewControlLoss() ControlLoss {
	return ControlLoss{Timer: math.Inf(1), Multiplier: 1}
}

// Reset starts a new loss at the instant of the burst.
func (c *ControlLoss) Reset() {
	c.Timer = 0
	c.Multiplier = 0
}

// Tick advances the recovery timer.
func (c *ControlLoss) Tick(dt float64) {
	c.Timer += dt
}

// Update recomputes the multiplier for the given ramp duration.
// A non-positive duration recovers instantly.
func (c *ControlLoss) Update(duration float64) {
	if duration <= 0 {
		c.Multiplier = 1
		return
	}
	c.Multiplier = Clamp01(c.Timer / duration)
}

// ControlLossSource identifies one burst that throttles control.
type ControlLossSource int

const (
	LossWallJump ControlLossSource = iota
	LossDashJump
	LossGrapple
	LossAlternateGrapple
	lossSourceCount
)

// String returns the source name.
func (s ControlLossSource) String() string {
	switch s {
	case LossWallJump:
		return "WallJump"
	case LossDashJump:
		return "DashJump"
	case LossGrapple:
		return "Grapple"
	case LossAlternateGrapple:
		return "AlternateGrapple"
	default:
		return "Unknown"
	}
}

// ControlLossSet holds one multiplier per source.
type ControlLossSet [lossSourceCount]ControlLoss

// NewControlLossSet returns a set with every source recovered.
func NewControlLossSet() ControlLossSet {
	var s ControlLossSet
	for i := range s {
		s[i] = NewControlLoss()
	}
	return s
}

// Tick advances every source.
func (s *ControlLossSet) Tick(dt float64) {
	for i := range s {
		s[i].Tick(dt)
	}
}

// Product combines all sources multiplicatively.
func (s *ControlLossSet) Product() float64 {
	p := 1.0
	for i := range s {
		p *= s[i].Multiplier
	}
	return p
}

// None reports whether every source is fully recovered.
func (s *ControlLossSet) None() bool {
	for i := range s {
		if s[i].Multiplier != 1 {
			return false
		}
	}
	return true
}
