package edapi

// Coordinate is a position in the galaxy, in light-years from Sol.
type Coordinate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Hotspot is a mining location for one commodity. Records without
// coordinates occur in upstream data and are skipped at evaluation time.
type Hotspot struct {
	Name   string      `json:"name"`
	Coords *Coordinate `json:"coords"`
}

// Buyer is a station buying a commodity, as reported by EDTools.
type Buyer struct {
	System  string      `json:"system"`
	Station string      `json:"station"`
	Coords  *Coordinate `json:"coords"`
	Price   float64     `json:"price"`
	Demand  float64     `json:"demand"`
	AgoSec  *float64    `json:"ago_sec"` // nil when upstream omits the age
	Pad     string      `json:"pad"`

	// AgeMinutes is derived from AgoSec by the client; records without an
	// age are treated as very old rather than fresh.
	AgeMinutes float64 `json:"-"`
}
