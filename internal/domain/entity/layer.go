package entity

// LayerMask selects which collision layers a query considers.
type LayerMask uint

const (
	LayerTerrain LayerMask = 1 << iota
	LayerEnemy
	LayerPlayer
)

// Has reports whether every bit of other is set in m.
func (m LayerMask) Has(other LayerMask) bool {
	return m&other == other
}
