package entity

import "github.com/jakecoffman/cp"

// Contact holds the actor's terrain contact flags for the current tick.
type Contact struct {
	OnGround      bool
	OnWall        bool
	OnLedge       bool
	ClimbingLedge bool
	Ceiling       bool

	// WallDirection is +1 when the wall is to the right, -1 when to the left
	WallDirection float64

	GroundNormal  cp.Vector
	CeilingNormal cp.Vector
	WallNormal    cp.Vector

	// LedgeCorner is valid while OnLedge is true
	LedgeCorner cp.Vector
}

// LeaveWall clears wall contact along with everything that depends on it.
func (c *Contact) LeaveWall() {
	c.OnWall = false
	c.OnLedge = false
	c.ClimbingLedge = false
}

// Airborne reports whether the actor touches neither ground nor wall.
func (c *Contact) Airborne() bool {
	return !c.OnGround && !c.OnWall
}
