package entity

// EventKind identifies an outbound notification.
type EventKind int

const (
	EventGrounded EventKind = iota
	EventWallCling
	EventLedgeClimb
	EventJump
	EventWallJump
	EventAirJump
	EventDashJump
	EventDash
	EventGlide
	EventGrappleAim
	EventGrapple
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventGrounded:
		return "grounded"
	case EventWallCling:
		return "wallCling"
	case EventLedgeClimb:
		return "ledgeClimb"
	case EventJump:
		return "jump"
	case EventWallJump:
		return "wallJump"
	case EventAirJump:
		return "airJump"
	case EventDashJump:
		return "dashJump"
	case EventDash:
		return "dash"
	case EventGlide:
		return "glide"
	case EventGrappleAim:
		return "grappleAim"
	case EventGrapple:
		return "grapple"
	default:
		return "unknown"
	}
}

// Event is a fire-and-forget notification.
// Active is meaningful for toggling kinds, ImpactSpeed for grounded and wallCling.
type Event struct {
	Kind        EventKind
	Active      bool
	ImpactSpeed float64
}
