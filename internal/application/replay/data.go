package replay

import (
	"github.com/jakecoffman/cp"

	"github.com/younwookim/loppy/internal/domain/entity"
)

// Version is written into every recording.
const Version = "2.0"

// FrameInput records the input of one fixed tick.
type FrameInput struct {
	F  int     `json:"f"`           // Tick number
	H  uint16  `json:"h,omitempty"` // Held action mask
	P  uint16  `json:"p,omitempty"` // Pressed action mask
	AX float64 `json:"ax"`          // Aim point x
	AY float64 `json:"ay"`          // Aim point y
}

// NewFrameInput packs a snapshot.
func NewFrameInput(tick int, s entity.InputState) FrameInput {
	return FrameInput{
		F:  tick,
		H:  s.HeldMask(),
		P:  s.PressedMask(),
		AX: s.Aim.X,
		AY: s.Aim.Y,
	}
}

// State unpacks the snapshot.
func (f FrameInput) State() entity.InputState {
	return entity.InputStateFromMasks(f.H, f.P, cp.Vector{X: f.AX, Y: f.AY})
}

// ReplayData contains all data needed to replay a session.
type ReplayData struct {
	Version   string       `json:"version"`
	Stage     string       `json:"stage"`
	FixedDT   float64      `json:"fixedDt"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
