package entity

import "github.com/jakecoffman/cp"

// Collider is a borrowed handle to a shape owned by the geometry backend.
// The shape may be destroyed at any time, so Valid must be checked on every use.
type Collider interface {
	Valid() bool
	ClosestPoint(p cp.Vector) cp.Vector
}

// GrappleTarget is what a grapple locks onto.
type GrappleTarget struct {
	Collider Collider
	Position cp.Vector
	IsEnemy  bool
}

// Acquired reports whether the target refers to a collider.
func (t GrappleTarget) Acquired() bool {
	return t.Collider != nil
}

// Indicator is the aiming feedback a renderer draws while a grapple is aimed.
type Indicator struct {
	Visible   bool
	Center    cp.Vector
	Radius    float64
	LineStart cp.Vector
	LineEnd   cp.Vector
}

// GrappleState is the per-variant grapple bookkeeping.
type GrappleState struct {
	Gate Gate

	Aiming    bool
	Grappling bool
	AimDir    cp.Vector
	Aim       GrappleTarget // candidate while aiming
	Target    GrappleTarget // locked on launch
	Indicator Indicator
}

// FreezeState tracks the slow-motion aiming window of the alternate grapple.
type FreezeState struct {
	Active    bool
	Timer     float64
	LerpTimer float64
}
