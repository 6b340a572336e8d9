package system

// TimeScale is the process-wide simulation speed the host multiplies frame time by.
// Only one owner may dilate time at a time; Restore returns it to normal once.
type TimeScale struct {
	scale   float64
	dilated bool
}

// NewTimeScale returns a clock running at normal speed.
func NewTimeScale() *TimeScale {
	return &TimeScale{scale: 1}
}

// Scale returns the current multiplier.
func (t *TimeScale) Scale() float64 {
	return t.scale
}

// Set changes the multiplier and marks time as dilated.
func (t *TimeScale) Set(scale float64) {
	if scale < 0 {
		scale = 0
	}
	t.scale = scale
	t.dilated = true
}

// Dilated reports whether the scale has been changed since the last restore.
func (t *TimeScale) Dilated() bool {
	return t.dilated
}

// Restore resets the scale to 1. It reports false when there was nothing to restore.
func (t *TimeScale) Restore() bool {
	if !t.dilated {
		return false
	}
	t.scale = 1
	t.dilated = false
	return true
}
