package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGate_BufferWindow(t *testing.T) {
	g := Gate{BufferUsable: true}
	g.Press()
	assert.True(t, g.ToConsume)

	g.ToConsume = false
	g.Tick(0.05)
	assert.True(t, g.Buffered(0.1))
	assert.True(t, g.Requested(0.1))

	g.Tick(0.05)
	assert.False(t, g.Buffered(0.1), "window is open only while timer < window")
}

func TestGate_BufferRequiresUsable(t *testing.T) {
	g := Gate{}
	g.Press()
	g.ToConsume = false

	assert.False(t, g.Buffered(1))
	assert.False(t, g.Requested(1))
}

func TestGate_CoyoteOneShot(t *testing.T) {
	g := Gate{CoyoteUsable: true}
	g.ArmCoyote()
	g.Tick(0.02)
	assert.True(t, g.Coyote(0.1))

	g.CoyoteUsable = false
	assert.False(t, g.Coyote(0.1))

	// rearming the timer alone does not reopen a consumed window
	g.ArmCoyote()
	assert.False(t, g.Coyote(0.1))
}

func TestJumpState_WallCoyote(t *testing.T) {
	j := JumpState{WallCoyoteUsable: true, WallCoyoteTimer: 0.05}
	assert.True(t, j.WallCoyote(0.1))

	j.WallCoyoteTimer = 0.1
	assert.False(t, j.WallCoyote(0.1))
}

func TestNewGate_WindowsStartClosed(t *testing.T) {
	g := NewGate()
	// contact re-arms both flags without any press or lost contact
	g.BufferUsable = true
	g.CoyoteUsable = true
	g.Tick(1.0 / 60)

	assert.False(t, g.Buffered(0.1))
	assert.False(t, g.Requested(0.1))
	assert.False(t, g.Coyote(0.1))

	g.Press()
	g.ToConsume = false
	assert.True(t, g.Buffered(0.1), "a real press opens the buffer")
}
