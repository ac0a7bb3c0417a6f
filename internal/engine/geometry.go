package engine

import (
	"math"

	"elite-miner/internal/config"
	"elite-miner/internal/edapi"
)

// DockingOverheadMin is the flat deceleration/approach cost per leg-pair.
const DockingOverheadMin = 5.0

// Distance returns the 3D Euclidean distance between two coordinates.
func Distance(a, b edapi.Coordinate) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// TravelTimeMinutes returns jump time plus docking overhead for a trip of
// totalLY. A partial jump still costs a full jump's time.
func TravelTimeMinutes(totalLY float64, ship config.ShipProfile) float64 {
	numJumps := 0.0
	if totalLY > 0 {
		numJumps = math.Ceil(totalLY / ship.JumpRangeLY)
	}
	return numJumps*ship.JumpTimeMin + DockingOverheadMin
}
