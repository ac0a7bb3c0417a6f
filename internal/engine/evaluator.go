package engine

import (
	"math"

	"elite-miner/internal/config"
	"elite-miner/internal/edapi"
)

// EvaluateRoute prices a single (hotspot, buyer) pair against the ship and
// game model. Returns nil when either record lacks coordinates — incomplete
// upstream data is filtered here, not treated as an error.
//
// All math runs on unrounded values; rounding happens once, when the
// result struct is assembled for display.
func EvaluateRoute(
	ref edapi.Coordinate,
	spot edapi.Hotspot,
	buyer edapi.Buyer,
	game config.GameConfig,
	ship config.ShipProfile,
	mode config.MiningMode,
) *RouteResult {
	if spot.Coords == nil || buyer.Coords == nil {
		return nil
	}

	distToMine := Distance(ref, *spot.Coords)
	distToSell := Distance(*spot.Coords, *buyer.Coords)
	totalLY := distToMine + distToSell
	travelMin := TravelTimeMinutes(totalLY, ship)

	// The cycle is throughput-limited by whichever stage is slower:
	// lasers chipping fragments off the rock, or limpets hauling them in.
	miningRate := game.LaserRatePerLaser * float64(ship.NumLasers) * game.MiningDowntimeFactor
	collectionRate := game.CollectionRatePerController * float64(ship.CollectorControllers)
	effectiveRate := math.Min(miningRate, collectionRate)
	boostedRate := effectiveRate * game.ProspectorBonus

	cargo := float64(ship.CargoTons)
	extractionTime := cargo / boostedRate

	// Prospecting, repositioning and fragment chasing dominate real play
	// time; the mode multiplier converts ideal throughput into elapsed time.
	multiplier := game.MultiplierFor(mode)
	realisticTime := extractionTime * multiplier

	limpetsNeeded := cargo * game.LimpetsPerTon * (1 + game.LimpetLossRate)
	limpetCost := limpetsNeeded * game.LimpetCost

	taxFactor := bulkTaxFactor(buyer.Demand, cargo)
	revenue := cargo * buyer.Price * taxFactor
	profit := revenue - limpetCost

	cycleHours := (realisticTime + travelMin) / 60
	crPerHour := 0.0
	if cycleHours > 0 {
		crPerHour = profit / cycleHours
	}

	pad := buyer.Pad
	if pad == "" {
		pad = "?"
	}

	return &RouteResult{
		MineSystem:  spot.Name,
		SellSystem:  buyer.System,
		SellStation: buyer.Station,
		Pad:         pad,

		Price:  buyer.Price,
		Demand: buyer.Demand,

		DistToMineLY:    round1(distToMine),
		DistToSellLY:    round1(distToSell),
		TotalDistanceLY: round1(totalLY),

		ExtractionTimeMin: round1(extractionTime),
		RealisticTimeMin:  round1(realisticTime),
		TravelTimeMin:     round1(travelMin),

		ExtractionRateTPM: round2(boostedRate),
		RealisticRateTPM:  round2(cargo / realisticTime),

		BulkTaxFactor: round2(taxFactor),
		Profit:        math.Round(profit),
		CrPerHour:     math.Round(crPerHour),

		Freshness:  ClassifyFreshness(buyer.AgeMinutes),
		Mode:       mode,
		Multiplier: multiplier,
	}
}

// bulkTaxFactor models diminishing per-unit price once a sale exceeds a
// quarter of the quoted demand. Zero demand means unknown and is left
// untaxed at factor 1.0.
func bulkTaxFactor(demand, cargoTons float64) float64 {
	if demand == 0 {
		return 1.0
	}
	return math.Min(1.0, (demand*0.25)/cargoTons)
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
